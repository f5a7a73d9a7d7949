package convert

//go:generate $MOCKGEN -source=service.go -destination=mocks/service_mock.go

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/indrajit912/botkit/internal/config"
	"github.com/indrajit912/botkit/internal/logger"
	"github.com/indrajit912/botkit/internal/utils"
)

// Service converts archives to data URLs and UTC timestamps to IST.
type Service interface {
	// ZIPToDataURL reads the archive at path and returns it as a base64 data URL.
	ZIPToDataURL(ctx context.Context, path string) (string, error)
	// UTCToIST renders a "YYYY-MM-DD HH:MM:SS" UTC timestamp in Indian Standard Time.
	UTCToIST(ctx context.Context, timestamp string) (string, error)
	// VerifyDataURL checks that dataURL decodes to the exact content of the file at path.
	VerifyDataURL(ctx context.Context, path, dataURL string) error
}

// ErrDataURLMismatch indicates that a data URL does not decode to the file it was made from.
var ErrDataURLMismatch = errors.New("data URL does not match file content")

// ServiceImpl implements Service.
type ServiceImpl struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// progressOutput receives the progress bar; stdout is reserved for results.
	progressOutput io.Writer
}

// NewService creates a conversion service.
func NewService(cfg *config.Config) Service {
	return &ServiceImpl{
		cfg:            cfg,
		progressOutput: os.Stderr,
	}
}

// ZIPToDataURL reads the archive at path and returns it as a base64 data URL.
func (s *ServiceImpl) ZIPToDataURL(ctx context.Context, path string) (string, error) {
	if !s.isProgressEnabled() {
		dataURL, err := utils.ConvertZIPToBase64(path)
		if err != nil {
			return "", err
		}

		logger.Debugf(ctx, "Encoded '%s' into a %s data URL", path, humanize.Bytes(uint64(len(dataURL))))

		return dataURL, nil
	}

	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("failed to open zip file: %w", err)
	}

	defer file.Close() //nolint:errcheck // Read-only handle.

	stat, err := file.Stat()
	if err != nil {
		return "", fmt.Errorf("failed to stat zip file: %w", err)
	}

	logger.Debugf(ctx, "Reading '%s' (%s)", path, humanize.Bytes(uint64(stat.Size()))) //nolint:gosec // Size is non-negative.

	bar := progressbar.NewOptions64(
		stat.Size(),
		progressbar.OptionSetWriter(s.progressOutput),
		progressbar.OptionSetDescription("Encoding "+filepath.Base(path)),
		progressbar.OptionShowBytes(true),
		progressbar.OptionClearOnFinish(),
	)

	defer bar.Close() //nolint:errcheck // Rendering errors are irrelevant to the result.

	return utils.EncodeZIPDataURL(io.TeeReader(file, bar))
}

// UTCToIST renders a "YYYY-MM-DD HH:MM:SS" UTC timestamp in Indian Standard Time.
func (s *ServiceImpl) UTCToIST(ctx context.Context, timestamp string) (string, error) {
	converted, err := utils.ConvertUTCToIST(timestamp)
	if err != nil {
		return "", err
	}

	logger.DebugKV(ctx, "Converted timestamp", "utc", timestamp, "ist", converted)

	return converted, nil
}

// VerifyDataURL checks that dataURL decodes to the exact content of the file at path.
func (s *ServiceImpl) VerifyDataURL(ctx context.Context, path, dataURL string) error {
	decoded, err := utils.DecodeDataURL(dataURL)
	if err != nil {
		return err
	}

	original, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("failed to read zip file: %w", err)
	}

	if !bytes.Equal(decoded, original) {
		return fmt.Errorf("%w: '%s'", ErrDataURLMismatch, path)
	}

	logger.Debugf(ctx, "Verified data URL of '%s' (%s)", path, humanize.Bytes(uint64(len(original))))

	return nil
}

// isProgressEnabled reports whether a progress bar should be drawn.
func (s *ServiceImpl) isProgressEnabled() bool {
	return s.cfg != nil && s.cfg.ShowProgress && logger.Level() <= zap.InfoLevel
}
