package builtin

import "github.com/dshills/steamer/internal/plugin"

// Register adds every built-in plugin to r, each built with opts.
func Register(r *plugin.Registry, opts ...plugin.Option) error {
	for _, p := range []plugin.Plugin{
		NewConfig(opts...),
		NewEnv(opts...),
	} {
		if err := r.Register(p); err != nil {
			return err
		}
	}
	return nil
}
