package cli

import (
	"errors"

	"github.com/dshills/steamer/internal/config"
	"github.com/dshills/steamer/internal/console"
	"github.com/dshills/steamer/internal/plugin"
	"github.com/spf13/cobra"
)

// commandName is the name a plugin is invoked by. It matches the command its
// usage line prints.
func commandName(p plugin.Plugin) string {
	return p.ShortName()
}

func commandFor(p plugin.Plugin, rep *console.Reporter) *cobra.Command {
	cmd := &cobra.Command{
		Use:     commandName(p),
		Short:   p.Description(),
		Aliases: []string{p.Name()},
		RunE: func(cmd *cobra.Command, args []string) error {
			err := p.Init(plugin.Args{Positional: args, Flags: cmd.Flags()})
			if err != nil {
				// The store already reported this one.
				if !errors.Is(err, config.ErrExists) {
					rep.Error(err)
				}
				exitCode = ExitRuntimeError
			}
			return nil
		},
	}
	plugin.BindFlags(cmd.Flags(), p.Options())
	cmd.SetHelpFunc(func(*cobra.Command, []string) {
		p.Help()
	})
	return cmd
}
