package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/indrajit912/botkit/internal/config"
	"github.com/indrajit912/botkit/internal/constants"
	"github.com/indrajit912/botkit/internal/logger"
	"github.com/indrajit912/botkit/internal/service/convert"
)

// DataURLOptions controls the dataurl command.
type DataURLOptions struct {
	// Paths are the archives to package.
	Paths []string
	// OutputPath receives the data URLs instead of the command output when set.
	OutputPath string
	// Verify decodes every produced data URL and compares it with its archive.
	Verify bool
}

// ExecuteDataURLCommand packages every archive in opts.Paths as a data URL.
func ExecuteDataURLCommand(ctx context.Context, cfg *config.Config, out io.Writer, opts DataURLOptions) {
	s := convert.NewService(cfg)

	if opts.OutputPath != "" {
		file, err := os.OpenFile(filepath.Clean(opts.OutputPath),
			os.O_CREATE|os.O_TRUNC|os.O_WRONLY, constants.DefaultFilePermissions)
		if err != nil {
			logger.Fatalf(ctx, "Failed to create output file: %v", err)
		}

		defer file.Close()

		out = file
	}

	if err := RunDataURL(ctx, s, out, opts); err != nil {
		logger.Fatalf(ctx, "Failed to package archive: %v", err)
	}

	if opts.OutputPath != "" {
		logger.Infof(ctx, "Wrote %d data URL(s) to '%s'", len(opts.Paths), opts.OutputPath)
	}
}

// RunDataURL writes one data URL per archive to out, stopping at the first failure.
func RunDataURL(ctx context.Context, s convert.Service, out io.Writer, opts DataURLOptions) error {
	for _, path := range opts.Paths {
		dataURL, err := s.ZIPToDataURL(ctx, path)
		if err != nil {
			return err
		}

		if opts.Verify {
			if err = s.VerifyDataURL(ctx, path, dataURL); err != nil {
				return err
			}
		}

		if _, err = fmt.Fprintln(out, dataURL); err != nil {
			return fmt.Errorf("failed to write data URL: %w", err)
		}
	}

	return nil
}
