package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"rihla/internal/ui"
)

func newResetCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Erase all progress and start the journey over",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("this erases all progress; re-run with --yes to confirm")
			}

			ctx := context.Background()
			store, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			store.ResetProgress()
			fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconWarn+" Progress reset. The journey begins again at day 1."))
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the reset")
	return cmd
}
