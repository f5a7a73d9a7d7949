package app

import (
	"context"
	"fmt"
	"io"

	"github.com/indrajit912/botkit/internal/config"
	"github.com/indrajit912/botkit/internal/logger"
	"github.com/indrajit912/botkit/internal/service/convert"
	"github.com/indrajit912/botkit/internal/utils"
)

// ExecuteISTCommand converts the given UTC timestamps, plus those listed in inputPath, to IST.
func ExecuteISTCommand(ctx context.Context, cfg *config.Config, out io.Writer, timestamps []string, inputPath string) {
	if inputPath != "" {
		fromFile, err := utils.ReadLinesFromFile(inputPath)
		if err != nil {
			logger.Fatalf(ctx, "Failed to read timestamps from '%s': %v", inputPath, err)
		}

		timestamps = append(timestamps, fromFile...)
	}

	if len(timestamps) == 0 {
		logger.Fatal(ctx, "No timestamps given")
	}

	if err := RunIST(ctx, convert.NewService(cfg), out, timestamps); err != nil {
		logger.Fatalf(ctx, "Failed to convert timestamp: %v", err)
	}
}

// RunIST writes the IST form of every timestamp to out, stopping at the first failure.
func RunIST(ctx context.Context, s convert.Service, out io.Writer, timestamps []string) error {
	for _, timestamp := range timestamps {
		converted, err := s.UTCToIST(ctx, timestamp)
		if err != nil {
			return err
		}

		if _, err = fmt.Fprintln(out, converted); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
	}

	return nil
}
