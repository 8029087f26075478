package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/report-card/internal/logger"
)

// Config holds settings for the report-card utility.
type Config struct {
	// DataFile is the path to the JSON file storing the gradebook.
	DataFile string `yaml:"data_file"`
	// LogLevel is the minimum level for console log output.
	LogLevel string `yaml:"log_level"`
}

const (
	// DefaultConfigFilename is the default filename for settings.
	DefaultConfigFilename = "report-card-settings.yaml"

	// DefaultDataFilename is the default filename for the gradebook JSON.
	DefaultDataFilename = "grades.json"

	// DefaultLogLevel is used when no level is configured.
	DefaultLogLevel = "info"

	// DataFileEnvVar overrides the gradebook file path when set.
	DataFileEnvVar = "REPORT_CARD_DATA_FILE"

	// DefaultFilePermissions is the default file permission for written files.
	DefaultFilePermissions = 0o600

	// DefaultDirPermissions is the default permission for created directories.
	DefaultDirPermissions = 0o700
)

// errConfigIsNotSet is returned when a nil configuration is provided.
var errConfigIsNotSet = errors.New("configuration is not set")

// Load reads configuration from the provided path and validates it.
// A missing file is not an error: the tool works with defaults alone.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	var cfg Config

	contents, err := os.ReadFile(filepath.Clean(path))
	switch {
	case err == nil:
		if err = yaml.Unmarshal(contents, &cfg); err != nil {
			return nil, fmt.Errorf("unmarshal settings: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
		// Defaults apply.
	default:
		return nil, fmt.Errorf("read settings: %w", err)
	}

	if err = Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the configuration to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate fills defaults and rejects values that cannot be used.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	// Set default data file if not specified.
	if cfg.DataFile == "" {
		cfg.DataFile = DefaultDataFilename
	}

	// Set default log level if not specified.
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	if _, ok := logger.ParseLogLevel(cfg.LogLevel); !ok {
		return fmt.Errorf("unknown log level %q", cfg.LogLevel)
	}

	return nil
}

// ResolveDataFile picks the gradebook path with precedence:
// command-line override, then environment, then configuration.
// A .env file in the working directory is honored if present.
func ResolveDataFile(override string, cfg *Config) string {
	if override != "" {
		return override
	}

	// Ignore the error: a missing .env file is the normal case.
	_ = godotenv.Load()

	if fromEnv := os.Getenv(DataFileEnvVar); fromEnv != "" {
		return fromEnv
	}

	if cfg != nil && cfg.DataFile != "" {
		return cfg.DataFile
	}

	return DefaultDataFilename
}
