package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/roster/pkg/commands/options"
	"tableflip.dev/roster/pkg/runner/exec"
)

func addExec(topLevel *cobra.Command) {
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:   "exec COMMAND...",
		Short: "Run a single roster command and exit.",
		Example: `
roster exec list
roster exec add n/John Doe p/98765432 e/johnd@example.com a/311, Clementi Ave 2 t/friends
roster exec --yes delete 2
`,
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: commandWordCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			a, err := load(nil)
			if err != nil {
				return oo.HandleError(err)
			}
			defer a.close()

			e := exec.Exec{
				Logic: a.logic,
				Text:  strings.Join(args, " "),
				Out:   cmd.OutOrStdout(),
				Yes:   co.Yes,
			}
			if interactive() {
				e.Confirm = options.PromptConfirm
			}
			return oo.HandleError(e.Do(context.Background()))
		},
	}

	options.AddConfirmArgs(cmd, co)

	topLevel.AddCommand(cmd)
}
