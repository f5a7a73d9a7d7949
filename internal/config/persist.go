package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/indrajit912/botkit/internal/constants"
	"github.com/indrajit912/botkit/internal/utils"
)

const secretKeyField = "secret_key"

// SaveSecretKey writes cfg.SecretKey to the configuration file while preserving the original format and order.
// The file is created when it does not exist yet.
func SaveSecretKey(cfg *Config) error {
	configFile := getConfigFilePath(cfg)

	// Read the original file content.
	originalContent, err := os.ReadFile(configFile)
	if err != nil {
		if err = handleMissingConfigFile(configFile, cfg.SecretKey, err); err != nil {
			return err
		}

		cfg.ConfigFileUsed = configFile
		cfg.SecretKeyGenerated = false

		return nil
	}

	// Parse YAML while preserving order using yaml.Node.
	var node yaml.Node
	if err = yaml.Unmarshal(originalContent, &node); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	setScalarInNode(&node, secretKeyField, cfg.SecretKey)

	newContent, err := yaml.Marshal(&node)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	if err = os.WriteFile(configFile, newContent, constants.SecretFilePermissions); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	cfg.ConfigFileUsed = configFile
	cfg.SecretKeyGenerated = false

	return nil
}

// getConfigFilePath returns the config file that was loaded or the default.
func getConfigFilePath(cfg *Config) string {
	if cfg.ConfigFileUsed == "" {
		return DefaultConfigFilename
	}

	return cfg.ConfigFileUsed
}

// handleMissingConfigFile creates a new config file if it doesn't exist.
func handleMissingConfigFile(configFile, secretKey string, err error) error {
	if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	content, err := yaml.Marshal(map[string]string{secretKeyField: secretKey})
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	if err = os.WriteFile(configFile, content, constants.SecretFilePermissions); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	return nil
}

// setScalarInNode sets a top-level scalar in the YAML node tree, appending the key if it is absent.
func setScalarInNode(node *yaml.Node, key, value string) {
	// An empty document has no content; turn it into a mapping.
	if node.Kind == 0 {
		node.Kind = yaml.DocumentNode
	}

	if len(node.Content) == 0 {
		node.Content = append(node.Content, &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"})
	}

	// The root node is a document node, content[0] is the actual map.
	mapNode := node.Content[0]
	if mapNode.Kind != yaml.MappingNode {
		return
	}

	// Iterate through key-value pairs (stored as alternating nodes).
	for i := 0; i+1 < len(mapNode.Content); i += 2 {
		if mapNode.Content[i].Value != key {
			continue
		}

		valueNode := mapNode.Content[i+1]
		valueNode.Kind = yaml.ScalarNode
		valueNode.Tag = "!!str"
		valueNode.Value = value

		// Ensure it's quoted so a numeric-looking key stays a string.
		if valueNode.Style == 0 {
			valueNode.Style = yaml.DoubleQuotedStyle
		}

		return
	}

	mapNode.Content = append(mapNode.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value, Style: yaml.DoubleQuotedStyle},
	)
}

// Redacted returns a printable view of the effective configuration with credentials masked.
func Redacted(cfg *Config) map[string]any {
	return map[string]any{
		"config_file":         cfg.ConfigFileUsed,
		secretKeyField:        utils.MaskSecret(cfg.SecretKey),
		"secret_key_source":   secretKeySource(cfg),
		"base_dir":            cfg.BaseDir,
		"app_data_dir":        cfg.AppDataDir,
		"log_level":           cfg.ParsedLogLevel.String(),
		"debug":               cfg.Debug,
		"track_modifications": cfg.TrackModifications,
		"show_progress":       cfg.ShowProgress,
		"database": map[string]any{
			"host":     cfg.Database.Host,
			"username": cfg.Database.Username,
			"password": utils.MaskSecret(cfg.Database.Password),
			"name":     cfg.Database.Name,
			"ssl_ca":   cfg.Database.SSLCA,
			"uri":      redactedURI(cfg),
			"dsn":      redactedDSN(cfg),
		},
		"smtp": map[string]any{
			"address":         cfg.SMTP.Address(),
			"sender_email":    cfg.SMTP.SenderEmail,
			"sender_password": utils.MaskSecret(cfg.SMTP.SenderPassword),
			"admin_email":     cfg.SMTP.AdminEmail,
		},
	}
}

// RenderRedacted returns the redacted configuration as YAML.
func RenderRedacted(cfg *Config) (string, error) {
	out, err := yaml.Marshal(Redacted(cfg))
	if err != nil {
		return "", fmt.Errorf("failed to marshal config: %w", err)
	}

	return string(out), nil
}

func secretKeySource(cfg *Config) string {
	if cfg.SecretKeyGenerated {
		return "generated"
	}

	return "configured"
}

func redactedURI(cfg *Config) string {
	masked := cfg.Database
	masked.Password = utils.MaskSecret(masked.Password)

	return masked.URI()
}

// redactedDSN renders the driver DSN with the password masked, or the reason it cannot be built.
func redactedDSN(cfg *Config) string {
	masked := cfg.Database
	masked.Password = utils.MaskSecret(masked.Password)

	dsn, err := masked.MySQLDSN()
	if err != nil {
		return "error: " + err.Error()
	}

	return dsn
}
