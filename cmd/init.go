package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/pipekit/internal/app"
)

//nolint:gochecknoglobals // Cobra command requires a global definition.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the artifact directory layout",
	Long: `Create the artifacts root and one directory per configured pipeline stage.

The layout comes from 'artifacts_root' and 'artifact_dirs' in the
configuration file. Existing directories are left untouched, so the
command is safe to run repeatedly.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		app.ExecuteInitCommand(cmd.Context(), appConfig)
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	rootCmd.AddCommand(initCmd)
}
