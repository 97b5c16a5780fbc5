package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/pipekit/internal/app"
)

//nolint:gochecknoglobals // Cobra command requires a global definition.
var sizeCmd = &cobra.Command{
	Use:   "size PATH...",
	Short: "Print friendly file sizes",
	Long: `Print an approximate, human-readable size for each path.

With --report, the exact byte counts are additionally saved as a JSON
document, one entry per path.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		report, _ := cmd.Flags().GetString("report")

		app.ExecuteSizeCommand(cmd.Context(), appConfig, args, report)
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	sizeCmd.Flags().String(
		"report",
		"",
		"file to save the exact byte counts to as JSON.")

	rootCmd.AddCommand(sizeCmd)
}
