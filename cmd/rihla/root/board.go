package root

import (
	"context"

	"github.com/spf13/cobra"

	"rihla/internal/tui"
)

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the TUI journey board",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			store, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.RunJourney(store, cmd.OutOrStdout())
		},
	}

	return cmd
}
