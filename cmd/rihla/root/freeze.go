package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"rihla/internal/ui"
)

func newFreezeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "freeze",
		Short: "Spend a freeze credit to protect today's streak",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			store, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if !store.UseStreakFreeze() {
				st := store.State()
				switch {
				case st.ActiveFreeze:
					return errors.New("a freeze is already active")
				case st.Streak <= 0:
					return errors.New("no streak to protect")
				default:
					return errors.New("no freeze credits available")
				}
			}
			st := store.State()
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Key.Render(ui.IconSnow+" Freeze active."), ui.Muted.Render(fmt.Sprintf("Your %d-day streak is safe for one missed day. %d credits left.", st.Streak, st.FreezeDaysAvailable)))
			return nil
		},
	}

	cmd.AddCommand(newFreezeEndCmd(), newFreezeAddCmd())
	return cmd
}

func newFreezeEndCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "end",
		Short: "End the active freeze early",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			store, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			store.EndStreakFreeze()
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Freeze ended. Complete a day today to keep the streak going."))
			return nil
		},
	}
}

func newFreezeAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <n>",
		Short: "Credit extra freeze days",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("count is required")
			}
			n, err := strconv.Atoi(args[0])
			if err != nil || n <= 0 {
				return errors.New("count must be a positive integer")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			store, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			n, _ := strconv.Atoi(args[0])
			store.AddFreezeDays(n)
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", ui.LabelValue("Freeze credits", store.State().FreezeDaysAvailable))
			return nil
		},
	}
}
