package builtin

import (
	"github.com/dshills/steamer/internal/config"
	"github.com/dshills/steamer/internal/console"
	"github.com/dshills/steamer/internal/plugin"
)

// EnvName is the full name of the env plugin.
const EnvName = "steamer-plugin-env"

// Env reports the directories steamer resolves.
type Env struct {
	plugin.Base
}

// NewEnv returns the env plugin.
func NewEnv(opts ...plugin.Option) *Env {
	return &Env{Base: plugin.NewBase(EnvName, opts...)}
}

func (e *Env) Description() string {
	return "show config and plugin directories"
}

func (e *Env) Help() {
	e.Usage(e.Description())
}

func (e *Env) Init(plugin.Args) error {
	modules, ok := config.GlobalModules()
	if !ok {
		modules = "not found"
	}

	e.PrintTitle("steamer env", console.White)
	e.Info("home:           " + e.GlobalHome())
	e.Info("working dir:    " + e.WorkDir())
	e.Info("global config:  " + e.Dir(config.Global))
	e.Info("local config:   " + e.Dir(config.Local))
	e.Info("global modules: " + modules)
	e.PrintEnd(console.White)
	return nil
}
