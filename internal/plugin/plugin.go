package plugin

import (
	"fmt"
	"strings"

	"github.com/dshills/steamer/internal/config"
	"github.com/dshills/steamer/internal/console"
	"github.com/spf13/pflag"
)

// ConfigStore is the configuration capability available to plugins.
type ConfigStore interface {
	GlobalHome() string
	WorkDir() string
	Dir(scope config.Scope) string
	Path(scope config.Scope, name, extension string) string
	ReadRecord(path string) map[string]any
	ReadConfig(opts config.ReadOptions) map[string]any
	CreateConfig(payload map[string]any, opts config.CreateOptions) error
	ReadToolConfig(scope config.Scope) map[string]any
	ReadToolDefaultConfig() map[string]any
	CreateToolConfig(payload map[string]any, scope config.Scope, overwrite bool) error
	GetValue(key string, opts config.ReadOptions) (any, bool)
	SetValue(key string, value any, opts config.CreateOptions) error
	DeleteValue(key string, opts config.CreateOptions) error
}

// Reporter is the console capability available to plugins.
type Reporter interface {
	Log(v any, color string) string
	Error(v any) string
	Info(v any) string
	Warn(v any) string
	Success(v any) string
	PrintTitle(text, color string) string
	PrintEnd(color string) string
	PrintUsage(description, command string) string
	PrintOption(options []console.Option) string
}

var (
	_ ConfigStore = (*config.Store)(nil)
	_ Reporter    = (*console.Reporter)(nil)
)

// Plugin is a steamer command.
type Plugin interface {
	// Name is the full plugin name, e.g. "steamer-plugin-kit".
	Name() string
	// ShortName is the command-line name: Name without the configured
	// plugin prefix.
	ShortName() string
	Description() string
	Options() []console.Option
	Init(args Args) error
	Help()
}

// Args carries the command line a plugin was invoked with.
type Args struct {
	Positional []string
	Flags      *pflag.FlagSet
}

// String returns a string flag value, or "" when the flag is not defined.
func (a Args) String(name string) string {
	if a.Flags == nil {
		return ""
	}
	v, err := a.Flags.GetString(name)
	if err != nil {
		return ""
	}
	return v
}

// Bool returns a bool flag value, or false when the flag is not defined.
func (a Args) Bool(name string) bool {
	if a.Flags == nil {
		return false
	}
	v, err := a.Flags.GetBool(name)
	if err != nil {
		return false
	}
	return v
}

// Changed reports whether the flag was set on the command line.
func (a Args) Changed(name string) bool {
	return a.Flags != nil && a.Flags.Changed(name)
}

// BindFlags defines one flag per option: options with a value placeholder
// become string flags, the rest bool flags. Single-letter aliases become
// shorthands.
func BindFlags(fs *pflag.FlagSet, options []console.Option) {
	for _, o := range options {
		if o.Option == "" || fs.Lookup(o.Option) != nil {
			continue
		}
		short := ""
		if len(o.Alias) == 1 && fs.ShorthandLookup(o.Alias) == nil {
			short = o.Alias
		}
		if o.Value != "" {
			fs.StringP(o.Option, short, "", o.Description)
		} else {
			fs.BoolP(o.Option, short, false, o.Description)
		}
	}
}

// ParseArgs parses argv against the plugin's options.
func ParseArgs(p Plugin, argv []string) (Args, error) {
	fs := pflag.NewFlagSet(p.Name(), pflag.ContinueOnError)
	BindFlags(fs, p.Options())
	if err := fs.Parse(argv); err != nil {
		return Args{}, err
	}
	return Args{Positional: fs.Args(), Flags: fs}, nil
}

// Base supplies the shared capabilities and default hooks. Plugins embed it
// and override Init and Help.
type Base struct {
	ConfigStore
	Reporter
	name string
}

// Option configures a Base.
type Option func(*baseOptions)

type baseOptions struct {
	storeOpts    []config.StoreOption
	reporterOpts []console.ReporterOption
	store        ConfigStore
	reporter     Reporter
}

// WithStore replaces the default config store.
func WithStore(s ConfigStore) Option {
	return func(o *baseOptions) { o.store = s }
}

// WithReporter replaces the default console reporter.
func WithReporter(r Reporter) Option {
	return func(o *baseOptions) { o.reporter = r }
}

// WithStoreOptions configures the default config store.
func WithStoreOptions(opts ...config.StoreOption) Option {
	return func(o *baseOptions) { o.storeOpts = append(o.storeOpts, opts...) }
}

// WithReporterOptions configures the default console reporter.
func WithReporterOptions(opts ...console.ReporterOption) Option {
	return func(o *baseOptions) { o.reporterOpts = append(o.reporterOpts, opts...) }
}

// NewBase returns a Base for the named plugin. Unless replaced, the store owns
// records named after the plugin and reports failures through the reporter.
func NewBase(name string, opts ...Option) Base {
	var o baseOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.reporter == nil {
		o.reporter = console.New(o.reporterOpts...)
	}
	if o.store == nil {
		storeOpts := append([]config.StoreOption{config.WithReporter(o.reporter)}, o.storeOpts...)
		o.store = config.NewStore(name, storeOpts...)
	}
	return Base{ConfigStore: o.store, Reporter: o.reporter, name: name}
}

// Name returns the full plugin name.
func (b Base) Name() string {
	return b.name
}

// ShortName returns the name without the tool's plugin prefix, which is how
// the plugin is invoked on the command line.
func (b Base) ShortName() string {
	prefix, _ := b.ReadToolDefaultConfig()[config.KeyPluginPrefix].(string)
	if prefix == "" {
		return b.name
	}
	if short := strings.TrimPrefix(b.name, prefix); short != "" {
		return short
	}
	return b.name
}

// Usage prints the usage line with the plugin's short name as the command.
func (b Base) Usage(description string) string {
	return b.PrintUsage(description, b.ShortName())
}

// Init is the default hook for plugins without init logic.
func (b Base) Init(Args) error {
	b.Warn("You do not write any init logics.")
	return nil
}

// Help is the default hook for plugins without help content.
func (b Base) Help() {
	b.Warn("You do not add any help content.")
}

// Description is empty by default.
func (b Base) Description() string {
	return ""
}

// Options is empty by default.
func (b Base) Options() []console.Option {
	return nil
}

// Registry holds plugins in registration order.
type Registry struct {
	plugins []Plugin
	byName  map[string]Plugin
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Plugin)}
}

// Register adds p. Names must be unique.
func (r *Registry) Register(p Plugin) error {
	name := p.Name()
	if name == "" {
		return fmt.Errorf("plugin name must not be empty")
	}
	if _, ok := r.byName[name]; ok {
		return fmt.Errorf("plugin %q already registered", name)
	}
	r.byName[name] = p
	r.plugins = append(r.plugins, p)
	return nil
}

// Lookup finds a plugin by full name or by name without prefix.
func (r *Registry) Lookup(name, prefix string) (Plugin, bool) {
	if p, ok := r.byName[name]; ok {
		return p, true
	}
	p, ok := r.byName[prefix+name]
	return p, ok
}

// All returns the plugins in registration order.
func (r *Registry) All() []Plugin {
	out := make([]Plugin, len(r.plugins))
	copy(out, r.plugins)
	return out
}
