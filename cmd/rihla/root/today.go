package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"rihla/internal/content"
	"rihla/internal/ui"
)

func newTodayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show the current journey day",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			store, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			st := store.State()
			id := st.CurrentDayID
			if id > content.TotalDays {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Gold.Render(ui.IconTrophy+" You have finished the whole journey. Alhamdulillah!"))
				return nil
			}
			d, _ := content.Get(id)

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconBook, fmt.Sprintf("Day %d of %d", d.ID, content.TotalDays)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Phase", d.Phase))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Topic", d.Title))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Reflect", d.Reflection))
			if st.DayCompleted(id) {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Already completed."))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("When you are done, run: rihla complete"))
			}
			return nil
		},
	}

	return cmd
}
