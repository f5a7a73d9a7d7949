package utils

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// IsFileExist checks if a file exists at the specified path.
// It returns true if the file exists and is not a directory, false if the file does not exist,
// and an error if there was an issue accessing the file.
func IsFileExist(path string) (bool, error) {
	stat, err := os.Stat(path)
	if err == nil {
		return !stat.IsDir(), nil
	}

	if os.IsNotExist(err) {
		return false, nil
	}

	return false, err
}

// ReadLinesFromFile reads a text file and returns its non-empty lines in order.
// Surrounding whitespace is trimmed and lines starting with '#' are skipped.
func ReadLinesFromFile(path string) ([]string, error) {
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}

	defer file.Close() //nolint:errcheck // Error on close is not critical here.

	var (
		lines   []string
		scanner = bufio.NewScanner(file)
	)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		lines = append(lines, line)
	}

	if err = scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// MaskSecret hides all but the last four characters of a secret.
// Secrets of four characters or fewer are masked completely.
func MaskSecret(secret string) string {
	const visibleTail = 4

	if secret == "" {
		return ""
	}

	runes := []rune(secret)
	if len(runes) <= visibleTail {
		return strings.Repeat("*", len(runes))
	}

	return strings.Repeat("*", len(runes)-visibleTail) + string(runes[len(runes)-visibleTail:])
}
