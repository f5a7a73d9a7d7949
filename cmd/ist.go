package cmd

import (
	"github.com/spf13/cobra"

	"github.com/indrajit912/botkit/internal/app"
)

var (
	//nolint:gochecknoglobals // Bound to command-line flags.
	istInputFilename string

	//nolint:gochecknoglobals // Cobra command requires a global definition for proper command-line parsing and execution.
	istCmd = &cobra.Command{
		Use:   "ist [flags] {timestamps}",
		Short: "Convert UTC timestamps to Indian Standard Time",
		Long: `Converts timestamps of the form "YYYY-MM-DD HH:MM:SS" (UTC) to "Mon DD, YYYY hh:MM AM/PM IST".

Example:
botkit ist "2023-12-13 19:00:00"
Dec 14, 2023 12:30 AM IST`,
		Run: func(cmd *cobra.Command, timestamps []string) {
			app.ExecuteISTCommand(cmd.Context(), appConfig, cmd.OutOrStdout(), timestamps, istInputFilename)
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	istCmd.Flags().StringVarP(
		&istInputFilename,
		"input",
		"i",
		"",
		"read additional timestamps from this file, one per line.")

	rootCmd.AddCommand(istCmd)
}
