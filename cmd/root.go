package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/indrajit912/botkit/internal/config"
	"github.com/indrajit912/botkit/internal/logger"
	"github.com/indrajit912/botkit/internal/version"
)

var (
	//nolint:gochecknoglobals // It is required for configuration initialization before the application starts.
	configFilenameFromFlag string

	//nolint:gochecknoglobals // It is required for configuration initialization before the application starts.
	envFilenameFromFlag string

	//nolint:gochecknoglobals,lll // It is initialized once during the application's startup and shared across the command execution logic.
	appConfig *config.Config

	//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
	rootCmd = &cobra.Command{
		Use:   "botkit",
		Short: "Helpers for the mail bot: data URLs, IST timestamps and configuration.",
		Long: `Botkit bundles the small tools the mail bot relies on:
- packaging ZIP archives as base64 data URLs for email bodies
- rendering UTC timestamps in Indian Standard Time
- inspecting and initializing the application configuration

Settings are read from a YAML file, a .env file and the environment, in increasing priority.`,
		Version:          version.Short(),
		SilenceUsage:     true,
		PersistentPreRun: initConfig,
	}
)

// Execute executes the root command.
func Execute() {
	signals := []os.Signal{syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM}
	ctx, stop := signal.NotifyContext(context.Background(), signals...)

	ctx = logger.WithKV(ctx, "run_id", uuid.NewString())

	defer func() {
		_ = logger.Logger().Sync()
	}()

	defer stop()

	go func() {
		defer stop()

		err := rootCmd.ExecuteContext(ctx)
		cobra.CheckErr(err)
	}()

	<-ctx.Done()
}

//nolint:gochecknoinits // Cobra requires the init function to set up flags before the command is executed.
func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("botkit %s\n", version.Full()))

	persistentFlags := rootCmd.PersistentFlags()

	persistentFlags.StringVarP(
		&configFilenameFromFlag,
		"config",
		"c",
		"",
		fmt.Sprintf("path to the configuration file (default is '%s', optional)",
			config.DefaultConfigFilename))

	persistentFlags.StringVarP(
		&envFilenameFromFlag,
		"env-file",
		"e",
		"",
		fmt.Sprintf("path to the dotenv file (default is '%s', optional)",
			config.DefaultEnvFilename))

	persistentFlags.StringP(
		"log-level",
		"l",
		"",
		"log level: debug, info, warn, error.")
}

func initConfig(cmd *cobra.Command, _ []string) {
	var err error

	appConfig, err = config.LoadConfig(configFilenameFromFlag, envFilenameFromFlag)
	if err != nil {
		logger.Fatalf(cmd.Context(), "Failed to load configuration: %v", err)
	}

	if err = bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
		logger.Fatalf(cmd.Context(), "Invalid configuration: %v", err)
	}

	logger.SetLevel(appConfig.ParsedLogLevel)

	if appConfig.SecretKeyGenerated {
		logger.Debug(cmd.Context(), "SECRET_KEY is not set, using a generated key")
	}
}

func bindFlagsToConfig(flags *pflag.FlagSet, cfg *config.Config) error {
	if flag := flags.Lookup("log-level"); flag != nil && flag.Changed {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}

	if flag := flags.Lookup("progress"); flag != nil && flag.Changed {
		cfg.ShowProgress, _ = flags.GetBool("progress")
	}

	return config.ValidateConfig(cfg)
}
