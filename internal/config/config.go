package config

import (
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"encoding/hex"
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/indrajit912/botkit/internal/logger"
	"github.com/indrajit912/botkit/internal/utils"
)

// Config holds all configuration settings.
type Config struct {
	// SecretKey signs sessions and tokens of the web application.
	SecretKey string `mapstructure:"secret_key"`
	// BaseDir is the application root; relative paths are resolved against it.
	BaseDir string `mapstructure:"base_dir"`
	// AppDataDir holds application data files. Defaults to "<base_dir>/app_data".
	AppDataDir string `mapstructure:"app_data_dir"`
	// LogLevel specifies the logging verbosity level.
	LogLevel string `mapstructure:"log_level"`
	// Debug enables the web application's debug mode.
	Debug bool `mapstructure:"debug"`
	// TrackModifications enables ORM change tracking.
	TrackModifications bool `mapstructure:"track_modifications"`
	// ShowProgress draws a progress bar while large archives are read.
	ShowProgress bool `mapstructure:"show_progress"`
	// Database holds the MySQL connection settings.
	Database DatabaseConfig `mapstructure:"database"`
	// SMTP holds the mail sender credentials.
	SMTP SMTPConfig `mapstructure:"smtp"`

	// ConfigFileUsed is the path of the YAML file that was read, if any.
	ConfigFileUsed string `mapstructure:"-"`
	// SecretKeyGenerated is true when SecretKey was not supplied and had to be generated.
	SecretKeyGenerated bool `mapstructure:"-"`
	// DatabaseURI is the SQLAlchemy-style connection URI derived from Database.
	DatabaseURI string `mapstructure:"-"`
	// ParsedLogLevel is the parsed zap log level.
	ParsedLogLevel zapcore.Level `mapstructure:"-"`
}

// DatabaseConfig describes the MySQL database.
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	// SSLCA is the CA bundle used to verify the server certificate.
	SSLCA string `mapstructure:"ssl_ca"`
	// SQLitePath is used when no Host is configured. Defaults to "<base_dir>/app.db".
	SQLitePath string `mapstructure:"sqlite_path"`
}

// SMTPConfig describes the mail sender.
type SMTPConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	SenderEmail    string `mapstructure:"sender_email"`
	SenderPassword string `mapstructure:"sender_password"`
	// AdminEmail receives administrative notifications.
	AdminEmail string `mapstructure:"admin_email"`
}

const (
	// DefaultConfigFilename is the default name of the configuration file.
	DefaultConfigFilename = ".botkit.yaml"

	// DefaultEnvFilename is the default name of the dotenv file.
	DefaultEnvFilename = ".env"

	// DefaultSMTPHost is the Gmail submission server.
	DefaultSMTPHost = "smtp.gmail.com"

	// DefaultSMTPPort is the STARTTLS submission port.
	DefaultSMTPPort = 587

	// DefaultSSLCA is the system CA bundle passed to the MySQL connector.
	DefaultSSLCA = "/etc/ssl/cert.pem"

	// DefaultLogLevel is used when no level is configured.
	DefaultLogLevel = "info"

	// MySQLURIScheme selects the mysql-connector dialect of the ORM.
	MySQLURIScheme = "mysql+mysqlconnector"

	// MySQLTLSConfigName is the driver TLS registry key of the config trusting Database.SSLCA.
	MySQLTLSConfigName = "botkit-ssl-ca"

	// secretKeyBytes is the amount of randomness in a generated secret key.
	secretKeyBytes = 16

	appDataDirName = "app_data"
	sqliteFilename = "app.db"
	maxPort        = 65535
)

// Static error definitions for better error handling.
var (
	// ErrUnknownLogLevel indicates that the log level is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrInvalidSMTPPort indicates that the SMTP port is out of range.
	ErrInvalidSMTPPort = errors.New("smtp port must be between 1 and 65535")
	// ErrMissingDatabaseName indicates that a database host was given without a database name.
	ErrMissingDatabaseName = errors.New("database name is required when a database host is set")
	// ErrInvalidSSLCA indicates that the CA bundle holds no usable PEM certificates.
	ErrInvalidSSLCA = errors.New("no certificates found in ssl ca bundle")
)

// envBindings maps configuration keys to the environment variables that override them.
//
//nolint:gochecknoglobals // Immutable lookup table.
var envBindings = map[string]string{
	"secret_key":           "SECRET_KEY",
	"base_dir":             "BASE_DIR",
	"app_data_dir":         "APP_DATA_DIR",
	"log_level":            "LOG_LEVEL",
	"debug":                "DEBUG",
	"database.host":        "DB_HOST",
	"database.username":    "DB_USERNAME",
	"database.password":    "DB_PASSWORD",
	"database.name":        "DB_NAME",
	"database.ssl_ca":      "DB_SSL_CA",
	"smtp.host":            "SMTP_HOST",
	"smtp.port":            "SMTP_PORT",
	"smtp.sender_email":    "INDRAJITS_BOT_EMAIL_ID",
	"smtp.sender_password": "INDRAJITS_BOT_APP_PASSWORD",
	"smtp.admin_email":     "INDRAJIT912_GMAIL",
}

// LoadConfig loads configuration settings from a dotenv file, a YAML file and the environment.
// Empty filenames select the defaults, which are allowed to be missing;
// explicitly named files must exist.
func LoadConfig(configFilename, envFilename string) (*Config, error) {
	if err := loadEnvFile(envFilename); err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	configFile, err := resolveConfigFile(configFilename)
	if err != nil {
		return nil, err
	}

	if configFile != "" {
		v.SetConfigFile(configFile)

		if err = v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config from file: %w", err)
		}
	}

	var cfg Config
	if err = v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.ConfigFileUsed = configFile

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("base_dir", ".")
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("debug", false)
	v.SetDefault("track_modifications", false)
	v.SetDefault("show_progress", false)
	v.SetDefault("database.ssl_ca", DefaultSSLCA)
	v.SetDefault("smtp.host", DefaultSMTPHost)
	v.SetDefault("smtp.port", DefaultSMTPPort)
}

func loadEnvFile(envFilename string) error {
	explicit := envFilename != ""
	if !explicit {
		envFilename = DefaultEnvFilename
	}

	// godotenv.Load never overrides variables that are already set.
	err := godotenv.Load(envFilename)
	if err == nil {
		return nil
	}

	if !explicit && errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("failed to load env file: %w", err)
}

func resolveConfigFile(configFilename string) (string, error) {
	if configFilename != "" {
		return configFilename, nil
	}

	exists, err := utils.IsFileExist(DefaultConfigFilename)
	if err != nil {
		return "", fmt.Errorf("failed to check config file: %w", err)
	}

	if !exists {
		return "", nil
	}

	return DefaultConfigFilename, nil
}

// ValidateConfig checks the configuration for validity and sets derived fields.
func ValidateConfig(cfg *Config) error {
	parsedLogLevel, isLogLevelCorrect := logger.ParseLogLevel(cfg.LogLevel)
	if !isLogLevelCorrect {
		return fmt.Errorf("%w: '%s'", ErrUnknownLogLevel, cfg.LogLevel)
	}

	cfg.ParsedLogLevel = parsedLogLevel

	baseDir := strings.TrimSpace(cfg.BaseDir)
	if baseDir == "" {
		baseDir = "."
	}

	absBaseDir, err := filepath.Abs(baseDir)
	if err != nil {
		return fmt.Errorf("failed to resolve base dir: %w", err)
	}

	cfg.BaseDir = absBaseDir

	if strings.TrimSpace(cfg.AppDataDir) == "" {
		cfg.AppDataDir = filepath.Join(cfg.BaseDir, appDataDirName)
	} else if !filepath.IsAbs(cfg.AppDataDir) {
		cfg.AppDataDir = filepath.Join(cfg.BaseDir, cfg.AppDataDir)
	}

	if strings.TrimSpace(cfg.SecretKey) == "" {
		cfg.SecretKey, err = GenerateSecretKey()
		if err != nil {
			return err
		}

		cfg.SecretKeyGenerated = true
	}

	if cfg.SMTP.Port < 1 || cfg.SMTP.Port > maxPort {
		return fmt.Errorf("%w: got %d", ErrInvalidSMTPPort, cfg.SMTP.Port)
	}

	if cfg.Database.Host != "" && cfg.Database.Name == "" {
		return ErrMissingDatabaseName
	}

	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = filepath.Join(cfg.BaseDir, sqliteFilename)
	}

	cfg.DatabaseURI = cfg.Database.URI()

	return nil
}

// GenerateSecretKey returns 16 random bytes encoded as 32 hex characters.
func GenerateSecretKey() (string, error) {
	buf := make([]byte, secretKeyBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate secret key: %w", err)
	}

	return hex.EncodeToString(buf), nil
}

// URI returns the ORM connection URI: MySQL when a host is configured, SQLite otherwise.
func (d DatabaseConfig) URI() string {
	if d.Host == "" {
		return "sqlite:///" + filepath.ToSlash(d.SQLitePath)
	}

	u := url.URL{
		Scheme: MySQLURIScheme,
		User:   url.UserPassword(d.Username, d.Password),
		Host:   d.Host,
		Path:   "/" + d.Name,
	}

	if d.SSLCA != "" {
		u.RawQuery = url.Values{"ssl_ca": {d.SSLCA}}.Encode()
	}

	return u.String()
}

// MySQLDSN returns a go-sql-driver/mysql DSN for the configured database,
// or an empty string when no host is configured.
// With SSLCA set, a TLS config trusting that bundle is registered with the driver
// under MySQLTLSConfigName and referenced from the DSN.
func (d DatabaseConfig) MySQLDSN() (string, error) {
	if d.Host == "" {
		return "", nil
	}

	dsn := mysql.NewConfig()
	dsn.User = d.Username
	dsn.Passwd = d.Password
	dsn.Net = "tcp"
	dsn.Addr = d.Host
	dsn.DBName = d.Name
	dsn.ParseTime = true
	dsn.Loc = time.UTC

	if d.SSLCA != "" {
		if err := registerMySQLTLS(d.Host, d.SSLCA); err != nil {
			return "", err
		}

		dsn.TLSConfig = MySQLTLSConfigName
	}

	return dsn.FormatDSN(), nil
}

func registerMySQLTLS(addr, caFile string) error {
	pem, err := os.ReadFile(caFile)
	if err != nil {
		return fmt.Errorf("failed to read ssl ca: %w", err)
	}

	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return fmt.Errorf("%w: %s", ErrInvalidSSLCA, caFile)
	}

	serverName := addr
	if host, _, splitErr := net.SplitHostPort(addr); splitErr == nil {
		serverName = host
	}

	err = mysql.RegisterTLSConfig(MySQLTLSConfigName, &tls.Config{
		RootCAs:    pool,
		ServerName: serverName,
		MinVersion: tls.VersionTLS12,
	})
	if err != nil {
		return fmt.Errorf("failed to register tls config: %w", err)
	}

	return nil
}

// Address returns the SMTP server address as host:port.
func (s SMTPConfig) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}
