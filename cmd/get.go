package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/pipekit/internal/app"
)

//nolint:gochecknoglobals // Cobra command requires a global definition.
var getCmd = &cobra.Command{
	Use:   "get FILE [KEY]",
	Short: "Print a value from a YAML config or JSON report",
	Long: `Read a YAML or JSON file and print the value at a dot-separated key.

Examples:
pipekit get params.yaml training.epochs
pipekit get artifacts/evaluation/scores.json accuracy

Without a key, the top-level keys of the document are listed.`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		var key string
		if len(args) > 1 {
			key = args[1]
		}

		app.ExecuteGetCommand(cmd.Context(), appConfig, args[0], key)
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	rootCmd.AddCommand(getCmd)
}
