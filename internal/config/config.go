package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds local settings shared by the alarm-clock binaries.
type Config struct {
	// MediaFolder is the directory holding ringtone sound files.
	MediaFolder string `yaml:"media_folder"`
	// DefaultAlarmSound is the platform's well-known default-alarm locator.
	// Empty means no default is configured.
	DefaultAlarmSound string `yaml:"default_alarm_sound"`
	// LookupTimeout bounds a single ringtone title lookup.
	LookupTimeout time.Duration `yaml:"lookup_timeout"`
	// LogLevel is the minimum level for console logging.
	LogLevel string `yaml:"log_level"`
}

const (
	// DefaultConfigFilename is the default filename for alarm-clock settings.
	DefaultConfigFilename = "alarm-clock-settings.yaml"

	// DefaultLookupTimeout is the default bound for a title lookup.
	DefaultLookupTimeout = 5 * time.Second

	// DefaultLogLevel is used when the settings file names no level.
	DefaultLogLevel = "info"

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errMediaFolderRequired is returned when the media folder is missing.
	errMediaFolderRequired = errors.New("media folder must be provided")
)

// Default returns settings with every field at its default value.
func Default() *Config {
	return &Config{
		MediaFolder:   defaultMediaFolder(),
		LookupTimeout: DefaultLookupTimeout,
		LogLevel:      DefaultLogLevel,
	}
}

// Load reads configuration from the provided path and validates essential fields.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes settings to the provided path.
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

// Validate checks the provided settings for required fields and fills defaults.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if cfg.MediaFolder == "" {
		return errMediaFolderRequired
	}

	// Set default lookup timeout if not specified.
	if cfg.LookupTimeout <= 0 {
		cfg.LookupTimeout = DefaultLookupTimeout
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	return nil
}

// defaultMediaFolder picks a per-user ringtone directory,
// falling back to a relative folder when the home cannot be resolved.
func defaultMediaFolder() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "ringtones"
	}

	return filepath.Join(home, ".local", "share", "alarm-clock", "ringtones")
}
