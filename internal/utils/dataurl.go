package utils

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const (
	// ZIPMimeType is the MIME type advertised by packaged archives.
	ZIPMimeType = "application/zip"

	// ZIPDataURLPrefix precedes the base64 payload of every packaged archive.
	ZIPDataURLPrefix = "data:" + ZIPMimeType + ";base64,"
)

// ErrInvalidDataURL indicates that a string is not a base64 ZIP data URL.
var ErrInvalidDataURL = errors.New("invalid zip data URL")

// ConvertZIPToBase64 reads the file at path and returns it as a base64 data URL.
// The MIME type is always application/zip; the content is not inspected.
// Open and read failures are returned wrapped, so errors.Is(err, fs.ErrNotExist) holds for missing files.
func ConvertZIPToBase64(path string) (string, error) {
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("failed to open zip file: %w", err)
	}

	defer file.Close() //nolint:errcheck // Read-only handle.

	return EncodeZIPDataURL(file)
}

// EncodeZIPDataURL reads r to the end and returns its content as a base64 data URL.
func EncodeZIPDataURL(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read zip data: %w", err)
	}

	var sb strings.Builder

	sb.Grow(len(ZIPDataURLPrefix) + base64.StdEncoding.EncodedLen(len(data)))
	sb.WriteString(ZIPDataURLPrefix)
	sb.WriteString(base64.StdEncoding.EncodeToString(data))

	return sb.String(), nil
}

// DecodeDataURL returns the bytes embedded in a ZIP data URL.
func DecodeDataURL(dataURL string) ([]byte, error) {
	payload, found := strings.CutPrefix(dataURL, ZIPDataURLPrefix)
	if !found {
		return nil, fmt.Errorf("%w: missing %q prefix", ErrInvalidDataURL, ZIPDataURLPrefix)
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataURL, err)
	}

	return data, nil
}
