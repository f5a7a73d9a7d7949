package app

import (
	"context"
	"fmt"
	"io"

	"github.com/indrajit912/botkit/internal/config"
	"github.com/indrajit912/botkit/internal/logger"
)

// ExecuteConfigShowCommand prints the effective configuration with credentials masked.
func ExecuteConfigShowCommand(ctx context.Context, cfg *config.Config, out io.Writer) {
	if err := RunConfigShow(cfg, out); err != nil {
		logger.Fatalf(ctx, "Failed to render configuration: %v", err)
	}
}

// RunConfigShow writes the redacted configuration as YAML to out.
func RunConfigShow(cfg *config.Config, out io.Writer) error {
	rendered, err := config.RenderRedacted(cfg)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(out, rendered)

	return err
}

// ExecuteConfigInitCommand persists a secret key into the configuration file.
func ExecuteConfigInitCommand(ctx context.Context, cfg *config.Config, force bool) {
	saved, err := RunConfigInit(cfg, force)
	if err != nil {
		logger.Fatalf(ctx, "Failed to save configuration: %v", err)
	}

	if !saved {
		logger.Info(ctx, "A secret key is already configured, use --force to replace it")

		return
	}

	logger.Infof(ctx, "Secret key saved to '%s'", cfg.ConfigFileUsed)
}

// RunConfigInit saves the secret key when it was generated, or always when force is set.
// It reports whether the file was written.
func RunConfigInit(cfg *config.Config, force bool) (bool, error) {
	if !cfg.SecretKeyGenerated && !force {
		return false, nil
	}

	if force && !cfg.SecretKeyGenerated {
		secretKey, err := config.GenerateSecretKey()
		if err != nil {
			return false, err
		}

		cfg.SecretKey = secretKey
	}

	if err := config.SaveSecretKey(cfg); err != nil {
		return false, err
	}

	return true, nil
}
