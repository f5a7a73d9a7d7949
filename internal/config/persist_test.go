package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/indrajit912/botkit/internal/constants"
)

// TestSaveSecretKey tests that the secret key is updated in place.
func TestSaveSecretKey(t *testing.T) {
	t.Parallel()

	original := "# bot settings\nlog_level: info # verbosity\nsecret_key: old\ndebug: false\n"
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(original), constants.DefaultFilePermissions))

	cfg := &Config{SecretKey: "0123456789", ConfigFileUsed: path, SecretKeyGenerated: true}
	require.NoError(t, SaveSecretKey(cfg))
	assert.False(t, cfg.SecretKeyGenerated)

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	text := string(content)
	assert.Contains(t, text, "# bot settings")
	assert.Contains(t, text, `secret_key: "0123456789"`)
	assert.Less(t, strings.Index(text, "log_level"), strings.Index(text, "secret_key"))
	assert.Less(t, strings.Index(text, "secret_key"), strings.Index(text, "debug"))

	var parsed map[string]any
	require.NoError(t, yaml.Unmarshal(content, &parsed))
	assert.Equal(t, "0123456789", parsed["secret_key"])
}

// TestSaveSecretKey_AppendsMissingKey tests that an absent key is appended.
func TestSaveSecretKey_AppendsMissingKey(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: info\n"), constants.DefaultFilePermissions))

	require.NoError(t, SaveSecretKey(&Config{SecretKey: "abc", ConfigFileUsed: path}))

	var parsed map[string]any

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, yaml.Unmarshal(content, &parsed))
	assert.Equal(t, "info", parsed["log_level"])
	assert.Equal(t, "abc", parsed["secret_key"])
}

// TestSaveSecretKey_EmptyFile tests that an empty file becomes a mapping.
func TestSaveSecretKey_EmptyFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, nil, constants.DefaultFilePermissions))

	require.NoError(t, SaveSecretKey(&Config{SecretKey: "abc", ConfigFileUsed: path}))

	var parsed map[string]any

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, yaml.Unmarshal(content, &parsed))
	assert.Equal(t, "abc", parsed["secret_key"])
}

// TestSaveSecretKey_CreatesFile tests that a missing file is created.
func TestSaveSecretKey_CreatesFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "new.yaml")

	cfg := &Config{SecretKey: "fresh", ConfigFileUsed: path, SecretKeyGenerated: true}
	require.NoError(t, SaveSecretKey(cfg))
	assert.Equal(t, path, cfg.ConfigFileUsed)
	assert.False(t, cfg.SecretKeyGenerated)

	var parsed map[string]any

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, yaml.Unmarshal(content, &parsed))
	assert.Equal(t, "fresh", parsed["secret_key"])
}

// TestRenderRedacted tests that credentials never appear in the rendered view.
func TestRenderRedacted(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		SecretKey: "topsecretvalue",
		LogLevel:  "info",
		Database: DatabaseConfig{
			Host:     "db.example",
			Username: "bot",
			Password: "dbpassword",
			Name:     "main",
		},
		SMTP: SMTPConfig{
			Host:           DefaultSMTPHost,
			Port:           DefaultSMTPPort,
			SenderEmail:    "bot@example.com",
			SenderPassword: "smtppassword",
		},
	}
	require.NoError(t, ValidateConfig(cfg))

	out, err := RenderRedacted(cfg)
	require.NoError(t, err)

	assert.NotContains(t, out, "topsecretvalue")
	assert.NotContains(t, out, "dbpassword")
	assert.NotContains(t, out, "smtppassword")
	assert.Contains(t, out, "bot@example.com")
	assert.Contains(t, out, "smtp.gmail.com:587")
	assert.Contains(t, out, "secret_key_source: configured")

	database, ok := Redacted(cfg)["database"].(map[string]any)
	require.True(t, ok)
	dsn, ok := database["dsn"].(string)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(dsn, "bot:******word@tcp(db.example)/main?"), dsn)
}

// TestRenderRedacted_DSNError tests that an unusable CA bundle is reported instead of a DSN.
func TestRenderRedacted_DSNError(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		SecretKey: "topsecretvalue",
		LogLevel:  "info",
		Database: DatabaseConfig{
			Host:     "db.example",
			Username: "bot",
			Password: "dbpassword",
			Name:     "main",
			SSLCA:    filepath.Join(t.TempDir(), "absent.pem"),
		},
		SMTP: SMTPConfig{Host: DefaultSMTPHost, Port: DefaultSMTPPort},
	}
	require.NoError(t, ValidateConfig(cfg))

	database, ok := Redacted(cfg)["database"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, database["dsn"], "error: failed to read ssl ca")
	assert.NotContains(t, database["dsn"], "dbpassword")
}
