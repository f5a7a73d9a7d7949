package cmd

import (
	"github.com/spf13/cobra"

	"github.com/indrajit912/botkit/internal/app"
)

var (
	//nolint:gochecknoglobals // Bound to command-line flags.
	dataURLOptions app.DataURLOptions

	//nolint:gochecknoglobals // Cobra command requires a global definition for proper command-line parsing and execution.
	dataURLCmd = &cobra.Command{
		Use:   "dataurl [flags] {zip files}",
		Short: "Encode ZIP archives as base64 data URLs",
		Long: `Reads each archive and prints "data:application/zip;base64,<payload>" on its own line.

The MIME type is always application/zip; the file content is not inspected.`,
		Args: cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, paths []string) {
			opts := dataURLOptions
			opts.Paths = paths

			app.ExecuteDataURLCommand(cmd.Context(), appConfig, cmd.OutOrStdout(), opts)
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	flags := dataURLCmd.Flags()

	flags.StringVarP(
		&dataURLOptions.OutputPath,
		"output",
		"o",
		"",
		"write the data URLs to this file instead of stdout.")

	flags.BoolVar(
		&dataURLOptions.Verify,
		"verify",
		false,
		"decode every data URL and compare it with its archive.")

	flags.BoolP(
		"progress",
		"p",
		false,
		"show a progress bar on stderr while reading.")

	rootCmd.AddCommand(dataURLCmd)
}
