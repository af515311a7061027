package cli

import (
	"context"

	"github.com/alecthomas/kong"

	"github.com/okeefe/sublog/cli/cmd"
	"github.com/okeefe/sublog/log"
)

// CLI is the top-level command-line interface for sublog.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Emit cmd.Emit `cmd:"" default:"withargs" help:"Log one or more messages"`
	Path cmd.Path `cmd:"" help:"Print the resolved log file path"`
	Init cmd.Init `cmd:"" help:"Write a settings file with the current flag values"`
	Tail cmd.Tail `cmd:"" help:"Browse the log file interactively"`
}

// Run executes the sublog CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	vars := kong.Vars{
		cmd.SettingsIdentifier: settingsPath(),
	}.CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	parser, err := kong.New(&cli,
		kong.Name("sublog"),
		kong.Description(
			"Colored console and file logging with subsystem names.",
		),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact: true,
				Summary: true,
			}),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// [pprofConfig.start] is a no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start()()

	settings, err := cli.Log.settings()
	if err != nil {
		return err
	}

	// Execute the selected command with the registry and the merged
	// settings bound for command Run methods.
	return ktx.Run(log.Default(), settings)
}
