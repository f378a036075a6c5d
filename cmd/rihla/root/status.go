package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"rihla/internal/content"
	"rihla/internal/engine"
	"rihla/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show level, streak, badges, and journey progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			store, repo, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			st := store.State()
			info := store.CurrentLevel()

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconCrescent, "Rihla Status"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Level", fmt.Sprintf("%d (%s)", info.Level, info.Name)))
			if info.NextMinXP > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("XP", fmt.Sprintf("%d (next level at %d, %.0f%%)", st.XP, info.NextMinXP, store.LevelProgress())))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("XP", fmt.Sprintf("%d (top level)", st.XP)))
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Journey", fmt.Sprintf("%d/%d days (%.1f%%)", len(st.CompletedDayIDs), content.TotalDays, store.JourneyProgress())))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Streak", fmt.Sprintf("%s (best %d)", ui.StreakText(st.Streak, st.ActiveFreeze), st.LongestStreak)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Freezes", fmt.Sprintf("%d available, %d used", st.FreezeDaysAvailable, st.FreezeDaysUsed)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Prayers today", fmt.Sprintf("%d/5 (total %d)", st.PrayerLog.Count(), st.TotalPrayersLogged)))
			if store.CanRecoverStreak() {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconWarn+" A lost streak can still be recovered: rihla recover"))
			}
			fmt.Fprintln(cmd.OutOrStdout(), "")

			fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render(ui.IconTrophy+" Badges"))
			for _, b := range engine.AllBadges() {
				mark := ui.Muted.Render("·")
				name := ui.Muted.Render(b.Name)
				if st.HasBadge(b.ID) {
					mark = ui.Good.Render("✓")
					name = b.Icon + " " + b.Name
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", mark, name, ui.Dim.Render(b.Description))
			}
			fmt.Fprintln(cmd.OutOrStdout(), "")

			events, err := repo.RecentXPEvents(ctx, 5)
			if err != nil {
				return err
			}
			if len(events) > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render(ui.IconSparkle+" Recent XP"))
				for _, e := range events {
					sign := "+"
					if e.Amount < 0 {
						sign = ""
					}
					fmt.Fprintf(cmd.OutOrStdout(), "- %s%d %s %s\n", sign, e.Amount, e.Reason, ui.Muted.Render(e.CreatedAt.Format("2006-01-02 15:04")))
				}
			}
			return nil
		},
	}

	return cmd
}
