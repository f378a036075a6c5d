package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"rihla/internal/ui"
)

func newRecoverCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recover",
		Short: "Restore a streak lost within the last 24 hours",
		Long: `Restore the streak you lost within the last 24 hours.

Recovery spends one freeze credit if you have any, otherwise 100 XP.
After the window closes the streak is gone for good.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			store, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if !store.RecoverStreak() {
				return errors.New("streak recovery is not available (no recent loss, window expired, or nothing to pay with)")
			}
			st := store.State()
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Good.Render(ui.IconFire+" Streak recovered:"), fmt.Sprintf("%d days", st.Streak))
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Complete a day today to keep it going."))
			return nil
		},
	}
}
