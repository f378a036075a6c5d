package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"rihla/internal/engine"
	"rihla/internal/ui"
)

func newPrayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pray [name]",
		Short: "Log a prayer (fajr|dhuhr|asr|maghrib|isha); no name shows today's log",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errors.New("at most one prayer name")
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

			if len(args) == 1 {
				p := engine.ParsePrayer(args[0])
				if !p.IsValid() {
					return fmt.Errorf("unknown prayer %q", args[0])
				}
				if store.LogPrayer(string(p)) {
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Good.Render(ui.IconPray+" Logged"), p)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\n", ui.Muted.Render(fmt.Sprintf("%s is already logged today.", p)))
				}
			}

			st := store.State()
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconPray, fmt.Sprintf("Prayers today (%d/5)", st.PrayerLog.Count())))
			for _, p := range engine.Prayers {
				mark := ui.Muted.Render("·")
				if logged(st.PrayerLog, p) {
					mark = ui.Good.Render("✓")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", mark, p)
			}
			if st.PrayerLog.Complete() {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Gold.Render(ui.IconSparkle+" All five prayers logged. A perfect day."))
			}
			return nil
		},
	}

	return cmd
}

func logged(log engine.PrayerLog, p engine.Prayer) bool {
	switch p {
	case engine.PrayerFajr:
		return log.Fajr
	case engine.PrayerDhuhr:
		return log.Dhuhr
	case engine.PrayerAsr:
		return log.Asr
	case engine.PrayerMaghrib:
		return log.Maghrib
	case engine.PrayerIsha:
		return log.Isha
	default:
		return false
	}
}
