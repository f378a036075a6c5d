package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"rihla/internal/content"
	"rihla/internal/ui"
)

func newCompleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "complete [day]",
		Short: "Mark a journey day as complete (defaults to the current day)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errors.New("at most one day id")
			}
			if len(args) == 1 {
				if _, err := strconv.Atoi(args[0]); err != nil {
					return errors.New("day must be an integer")
				}
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

			dayID := store.State().CurrentDayID
			if len(args) == 1 {
				dayID, _ = strconv.Atoi(args[0])
			}

			res := store.MarkDayComplete(dayID)
			if !res.Applied {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render(fmt.Sprintf("Day %d is already complete (or out of range).", dayID)))
				return nil
			}

			d, _ := content.Get(res.DayID)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.Good.Render(ui.IconDone+" Completed"), d.Title, ui.Muted.Render(fmt.Sprintf("(+%d XP)", res.XPAwarded)))
			st := store.State()
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", ui.LabelValue("Streak", ui.StreakText(st.Streak, st.ActiveFreeze)))
			if res.LevelUp {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.BadgeLevelUp, ui.Muted.Render(fmt.Sprintf("level %d → %d", res.LevelBefore, res.LevelAfter)))
			}
			for _, b := range res.NewBadges {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n", ui.Gold.Render(ui.IconTrophy+" Badge unlocked:"), b.Icon, b.Name, ui.Muted.Render(b.Description))
			}
			return nil
		},
	}

	return cmd
}
