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

func newDayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "day <n>",
		Short: "Jump the journey cursor to a day (no XP, no streak changes)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("day number is required")
			}
			if _, err := strconv.Atoi(args[0]); err != nil {
				return errors.New("day must be an integer")
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

			id, _ := strconv.Atoi(args[0])
			d, ok := content.Get(id)
			if !ok {
				return fmt.Errorf("day %d is outside the journey (1-%d)", id, content.TotalDays)
			}

			store.SetCurrentDay(id)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Key.Render("Now at:"), d.Title)
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Run rihla today to read it."))
			return nil
		},
	}

	return cmd
}
