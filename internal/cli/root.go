package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dshills/steamer/internal/builtin"
	"github.com/dshills/steamer/internal/console"
	"github.com/dshills/steamer/internal/plugin"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

// Exit codes
const (
	ExitSuccess      = 0
	ExitUsageError   = 2
	ExitRuntimeError = 4
)

var flagVerbose bool

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

// Run executes the root command with the built-in plugins and returns an
// exit code.
func Run() int {
	reg := plugin.NewRegistry()
	if err := builtin.Register(reg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitRuntimeError
	}
	return execute(NewRootCmd(reg, console.New()), os.Args[1:])
}

func execute(root *cobra.Command, argv []string) int {
	exitCode = ExitSuccess
	root.SetArgs(argv)
	if err := root.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}
	return exitCode
}

// NewRootCmd builds the steamer command tree with one subcommand per
// registered plugin. rep reports plugin failures.
func NewRootCmd(reg *plugin.Registry, rep *console.Reporter) *cobra.Command {
	root := &cobra.Command{
		Use:   "steamer",
		Short: "Steamer scaffolding CLI",
		Long:  "Steamer runs plugins that scaffold projects, manage starter kits and share configuration.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(flagVerbose)
		},
	}
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "V", false, "Print diagnostic logs to stderr")

	root.AddCommand(newVersionCmd())
	for _, p := range reg.All() {
		root.AddCommand(commandFor(p, rep))
	}
	return root
}

func setupLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print steamer version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "steamer version %s\n", version)
		},
	}
}
