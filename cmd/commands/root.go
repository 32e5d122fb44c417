package commands

// Root command: renders poker credit-history charts from tournament standings.

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "standings-chart",
	Short: "Render credit-history line charts from tournament standings",
	Long: `standings-chart draws one smoothed line per player showing credits after each hand.
Standings come from a JSON file or a tournament server; charts are written as SVG and PNG
and can be published to a Telegram chat.`,
	Version:       "1.0.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("log-dir", "", "Directory for app.log (env: CHART_LOG_DIR)")
	rootCmd.PersistentFlags().Bool("debug", false, "Write DEBUG records to the log file (env: CHART_LOG_DEBUG)")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(publishCmd)
}
