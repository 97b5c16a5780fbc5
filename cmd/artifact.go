package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/pipekit/internal/app"
)

var (
	//nolint:gochecknoglobals // Cobra command requires a global definition.
	stashCmd = &cobra.Command{
		Use:   "stash FILE [DEST]",
		Short: "Copy a file into the artifact store as a binary blob",
		Long: `Stream a file into the artifact store.

Without DEST, the blob is placed under the artifacts root keeping the
source base name. Existing artifacts are preserved unless --replace
is set (or 'replace_blobs' is enabled in the configuration).`,
		Args: cobra.RangeArgs(1, 2),
		Run: func(cmd *cobra.Command, args []string) {
			var dest string
			if len(args) > 1 {
				dest = args[1]
			}

			app.ExecuteStashCommand(cmd.Context(), appConfig, args[0], dest)
		},
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition.
	fetchCmd = &cobra.Command{
		Use:   "fetch ARTIFACT DEST",
		Short: "Copy a binary blob out of the artifact store",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			app.ExecuteFetchCommand(cmd.Context(), appConfig, args[0], args[1])
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	rootCmd.AddCommand(stashCmd, fetchCmd)
}
