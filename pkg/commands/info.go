package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/roster/pkg/runner/info"
	"tableflip.dev/roster/pkg/store"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about where contacts and assignments are stored.",
		Example: `
roster info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			cfg, err := store.LoadConfig()
			if err != nil {
				return oo.HandleError(err)
			}
			s, err := store.Load(cfg)
			if err != nil {
				return oo.HandleError(err)
			}
			i := info.Info{
				Config:  cfg,
				Storage: s,
			}
			return oo.HandleError(i.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}
