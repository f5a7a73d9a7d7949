package convert

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/indrajit912/botkit/internal/config"
	"github.com/indrajit912/botkit/internal/constants"
	"github.com/indrajit912/botkit/internal/utils"
)

// newTestService creates a service whose progress output is captured.
func newTestService(cfg *config.Config) (*ServiceImpl, *bytes.Buffer) {
	progress := new(bytes.Buffer)

	return &ServiceImpl{cfg: cfg, progressOutput: progress}, progress
}

// writeArchive writes content to a temp file and returns its path.
func writeArchive(t *testing.T, content []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "bundle"+constants.ExtensionZIP)
	require.NoError(t, os.WriteFile(path, content, constants.DefaultFilePermissions))

	return path
}

// TestNewService tests the NewService function.
func TestNewService(t *testing.T) {
	t.Parallel()

	s := NewService(new(config.Config))
	assert.NotNil(t, s)
	assert.Implements(t, (*Service)(nil), s)
}

// TestZIPToDataURL tests the ZIPToDataURL method with and without progress.
func TestZIPToDataURL(t *testing.T) {
	t.Parallel()

	content := bytes.Repeat([]byte("PK\x03\x04payload"), 1024)

	tests := []struct {
		name         string
		showProgress bool
	}{
		{name: "without progress", showProgress: false},
		{name: "with progress", showProgress: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, _ := newTestService(&config.Config{ShowProgress: tt.showProgress})
			path := writeArchive(t, content)

			dataURL, err := s.ZIPToDataURL(context.Background(), path)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(dataURL, utils.ZIPDataURLPrefix))

			decoded, err := utils.DecodeDataURL(dataURL)
			require.NoError(t, err)
			assert.Equal(t, content, decoded)
		})
	}
}

// TestZIPToDataURL_NotFound tests that missing archives are reported in both modes.
func TestZIPToDataURL_NotFound(t *testing.T) {
	t.Parallel()

	for _, showProgress := range []bool{false, true} {
		s, _ := newTestService(&config.Config{ShowProgress: showProgress})

		dataURL, err := s.ZIPToDataURL(context.Background(), filepath.Join(t.TempDir(), "missing.zip"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, fs.ErrNotExist))
		assert.Empty(t, dataURL)
	}
}

// TestUTCToIST tests the UTCToIST method.
func TestUTCToIST(t *testing.T) {
	t.Parallel()

	s, _ := newTestService(new(config.Config))

	result, err := s.UTCToIST(context.Background(), "2023-12-13 19:00:00")
	require.NoError(t, err)
	assert.Equal(t, "Dec 14, 2023 12:30 AM IST", result)

	result, err = s.UTCToIST(context.Background(), "2023/12/13 07:06:16")
	require.ErrorIs(t, err, utils.ErrInvalidTimestamp)
	assert.Empty(t, result)
}

// TestVerifyDataURL tests the VerifyDataURL method.
func TestVerifyDataURL(t *testing.T) {
	t.Parallel()

	s, _ := newTestService(new(config.Config))
	path := writeArchive(t, []byte("PK\x05\x06"))
	otherPath := writeArchive(t, []byte("other"))

	dataURL, err := s.ZIPToDataURL(context.Background(), path)
	require.NoError(t, err)

	require.NoError(t, s.VerifyDataURL(context.Background(), path, dataURL))
	require.ErrorIs(t, s.VerifyDataURL(context.Background(), otherPath, dataURL), ErrDataURLMismatch)
	require.ErrorIs(t, s.VerifyDataURL(context.Background(), path, "data:text/plain;base64,"), utils.ErrInvalidDataURL)

	err = s.VerifyDataURL(context.Background(), filepath.Join(t.TempDir(), "gone.zip"), dataURL)
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}
