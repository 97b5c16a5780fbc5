package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/pipekit/internal/app"
)

var (
	//nolint:gochecknoglobals // Cobra command requires a global definition.
	encodeCmd = &cobra.Command{
		Use:   "encode IMAGE",
		Short: "Encode an image file into a base64 payload",
		Long: `Read an image file and print (or save) its base64 encoding.

Prediction endpoints accept images as base64 strings inside JSON bodies;
this command produces exactly that payload. The configured 'max_image_size'
caps how large an image may be encoded.`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			output, _ := cmd.Flags().GetString("output")

			app.ExecuteEncodeCommand(cmd.Context(), appConfig, args[0], output)
		},
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition.
	decodeCmd = &cobra.Command{
		Use:   "decode PAYLOAD",
		Short: "Decode a base64 payload file back into an image",
		Long: `Read a base64 payload from a file and write the decoded image.

The output path is required; parent directories are created as needed.`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			output, _ := cmd.Flags().GetString("output")

			app.ExecuteDecodeCommand(cmd.Context(), args[0], output)
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	encodeCmd.Flags().StringP(
		"output",
		"o",
		"",
		"file to write the base64 payload to (defaults to stdout).")

	decodeCmd.Flags().StringP(
		"output",
		"o",
		"",
		"file to write the decoded image to.")

	_ = decodeCmd.MarkFlagRequired("output")

	rootCmd.AddCommand(encodeCmd, decodeCmd)
}
