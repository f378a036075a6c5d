package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rihla/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "rihla",
	Short:         "Rihla, a 365-day journey companion for new Muslims",
	Long:          "Rihla is a local-first companion that walks new Muslims through a 365-day curriculum with streaks, levels, and badges.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newTodayCmd(),
		newCompleteCmd(),
		newStatusCmd(),
		newDayCmd(),
		newPrayCmd(),
		newFreezeCmd(),
		newRecoverCmd(),
		newResetCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
