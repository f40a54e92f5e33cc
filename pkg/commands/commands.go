package commands

import (
	"context"
	"os"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/roster/pkg/commands/options"
	"tableflip.dev/roster/pkg/runner/repl"
)

var (
	oo = &options.OutputOptions{}
	lo = &options.LoggingOptions{}

	interactive = options.Interactive
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "roster",
		Short: base.Wrap80("Track contacts and the assignments handed to them."),
		Long: base.Wrap80("Run without arguments to start the interactive prompt. " +
			"Type help at the prompt to list the commands."),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return oo.HandleError(runREPL(cmd.Context()))
		},
	}

	options.AddOutputArg(cmd, oo)
	options.AddLoggingArgs(cmd, lo)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addExec(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
	addMCP(topLevel)
}

func runREPL(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	a, err := load(nil)
	if err != nil {
		return err
	}
	defer a.close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	events, err := a.storage.Watch(ctx)
	if err != nil {
		return err
	}

	r := repl.REPL{
		Logic:  a.logic,
		In:     os.Stdin,
		Out:    os.Stdout,
		Events: events,
		Reload: a.reload,
		Logger: a.logger,
	}
	if interactive() {
		r.Confirm = options.PromptConfirm
	}
	return r.Do(ctx)
}
