package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/roster/pkg/logic/parser"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(roster completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(roster completion)
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return topLevel.GenBashCompletionV2(cmd.OutOrStdout(), true)
		},
	}

	topLevel.AddCommand(cmd)
}

// commandWordCompletions completes the first word of a command line.
func commandWordCompletions(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var words []string
	for _, w := range parser.Words() {
		if strings.HasPrefix(w.Word, toComplete) {
			words = append(words, w.Word+"\t"+w.Usage)
		}
	}
	return words, cobra.ShellCompDirectiveNoFileComp
}
