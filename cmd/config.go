package cmd

import (
	"github.com/spf13/cobra"

	"github.com/indrajit912/botkit/internal/app"
)

var (
	//nolint:gochecknoglobals // Bound to command-line flags.
	forceConfigInit bool

	//nolint:gochecknoglobals // Cobra command requires a global definition for proper command-line parsing and execution.
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Configuration management commands",
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition for proper command-line parsing and execution.
	configShowCmd = &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration with credentials masked",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			app.ExecuteConfigShowCommand(cmd.Context(), appConfig, cmd.OutOrStdout())
		},
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition for proper command-line parsing and execution.
	configInitCmd = &cobra.Command{
		Use:   "init",
		Short: "Generate a secret key and store it in the configuration file",
		Long: `Stores a random secret key in the configuration file so that sessions survive restarts.

An existing secret_key is kept unless --force is given. The rest of the file,
including comments and key order, is left untouched.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			app.ExecuteConfigInitCommand(cmd.Context(), appConfig, forceConfigInit)
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	configInitCmd.Flags().BoolVarP(
		&forceConfigInit,
		"force",
		"f",
		false,
		"replace an existing secret key.")

	configCmd.AddCommand(configShowCmd, configInitCmd)
	rootCmd.AddCommand(configCmd)
}
