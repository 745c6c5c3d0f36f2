package builtin

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/dshills/steamer/internal/config"
	"github.com/dshills/steamer/internal/console"
	"github.com/dshills/steamer/internal/plugin"
)

// ConfigName is the full name of the config plugin.
const ConfigName = "steamer-plugin-config"

// Config manages the tool config and plugin config records.
type Config struct {
	plugin.Base
}

// NewConfig returns the config plugin.
func NewConfig(opts ...plugin.Option) *Config {
	return &Config{Base: plugin.NewBase(ConfigName, opts...)}
}

func (c *Config) Description() string {
	return "manage steamer configuration"
}

func (c *Config) Options() []console.Option {
	return []console.Option{
		{Option: "list", Alias: "l", Description: "list config keys and values"},
		{Option: "set", Alias: "s", Value: "<key>=<value>", Description: "set a config key"},
		{Option: "del", Alias: "d", Value: "<key>", Description: "delete a config key"},
		{Option: "init", Alias: "i", Description: "create the tool config with default values"},
		{Option: "force", Alias: "f", Description: "overwrite an existing config with --init"},
		{Option: "global", Alias: "g", Description: "use the global config in your home directory"},
		{Option: "plugin", Alias: "p", Value: "<name>", Description: "use a plugin's config instead of the tool config"},
	}
}

func (c *Config) Help() {
	c.Usage(c.Description())
	c.PrintOption(c.Options())
}

func (c *Config) Init(args plugin.Args) error {
	scope := config.Local
	if args.Bool("global") {
		scope = config.Global
	}
	name := config.ToolName
	if v := args.String("plugin"); v != "" {
		name = v
	}

	switch {
	case args.Bool("init"):
		return c.create(name, scope, args.Bool("force"))
	case args.Changed("set"):
		return c.set(name, scope, args.String("set"))
	case args.Changed("del"):
		return c.del(name, scope, args.String("del"))
	case args.Bool("list"):
		c.list(name, scope)
		return nil
	default:
		c.Help()
		return nil
	}
}

func (c *Config) create(name string, scope config.Scope, force bool) error {
	var err error
	if name == config.ToolName {
		err = c.CreateToolConfig(config.DefaultConfig(), scope, force)
	} else {
		err = c.CreateConfig(map[string]any{}, config.CreateOptions{
			Name:      name,
			Scope:     scope,
			Overwrite: force,
		})
	}
	if err != nil {
		return err
	}
	c.Success(fmt.Sprintf("%s config created at %s", scope, c.Path(scope, name, "")))
	return nil
}

func (c *Config) set(name string, scope config.Scope, pair string) error {
	key, value, ok := strings.Cut(pair, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return fmt.Errorf("--set expects <key>=<value>, got %q", pair)
	}
	opts := config.CreateOptions{Name: name, Scope: scope}
	if err := c.SetValue(key, config.ParseValue(value), opts); err != nil {
		return fmt.Errorf("setting %s: %w", key, err)
	}
	c.Success(fmt.Sprintf("%s=%s", key, value))
	return nil
}

func (c *Config) del(name string, scope config.Scope, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("--del expects a key")
	}
	opts := config.CreateOptions{Name: name, Scope: scope}
	if err := c.DeleteValue(key, opts); err != nil {
		return fmt.Errorf("deleting %s: %w", key, err)
	}
	c.Success(fmt.Sprintf("%s deleted", key))
	return nil
}

func (c *Config) list(name string, scope config.Scope) {
	var cfg map[string]any
	switch {
	case name != config.ToolName:
		cfg = c.ReadConfig(config.ReadOptions{Name: name, Scope: scope})
	case scope == config.Global:
		cfg = config.Merge(config.DefaultConfig(), c.ReadToolConfig(config.Global))
	default:
		cfg = c.ReadToolDefaultConfig()
	}

	keys := make([]string, 0, len(cfg))
	for k := range cfg {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	c.PrintTitle(fmt.Sprintf("%s %s config", scope, name), console.White)
	for _, k := range keys {
		c.Info(k + "=" + formatValue(cfg[k]))
	}
	c.PrintEnd(console.White)
}

func formatValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(data)
}
