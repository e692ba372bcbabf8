package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	// DB is the path of the sqlite database file.
	DB string `yaml:"db"`

	// Log is the path of the debug log file. The terminal is owned by the
	// UI, so all logging goes to a file.
	Log string `yaml:"log"`

	// LogLevel is a zerolog level string ("debug", "info", "warn", ...).
	LogLevel string `yaml:"log_level"`

	// WeekStart controls which weekday heads the calendar columns.
	// Supported values:
	//   - "sunday" (default)
	//   - "monday"
	WeekStart string `yaml:"week_start"`
}

// DefaultConfig returns an in-memory default configuration with all files
// placed under ~/.color-mood-log.
func DefaultConfig() *Config {
	dir := defaultDir()

	return &Config{
		DB:        filepath.Join(dir, "mood.sqlite"),
		Log:       filepath.Join(dir, "debug.log"),
		LogLevel:  "info",
		WeekStart: "sunday",
	}
}

func defaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// fall back to the working directory when there is no resolvable home
		return ".color-mood-log"
	}

	return filepath.Join(home, ".color-mood-log")
}

// Normalize fills in missing or unknown values with defaults so that
// partially-filled config files still behave correctly.
func (c *Config) Normalize() {
	defaults := DefaultConfig()

	if c.DB == "" {
		c.DB = defaults.DB
	}

	if c.Log == "" {
		c.Log = defaults.Log
	}

	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}

	switch c.WeekStart {
	case "sunday", "monday":
	default:
		c.WeekStart = "sunday"
	}
}

// FirstWeekday returns the configured week start as a time.Weekday.
func (c *Config) FirstWeekday() time.Weekday {
	if c.WeekStart == "monday" {
		return time.Monday
	}

	return time.Sunday
}

// Load loads configuration from the given YAML path. On first run the file
// does not exist yet: a default config is written with 0600 perms and
// returned.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			if err := Save(path, cfg); err != nil {
				return cfg, err
			}

			return cfg, nil
		}

		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.Normalize()

	return &cfg, nil
}

// Save writes the configuration to the given path, creating the parent
// directory if needed.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errors.New("config is nil")
	}

	cfg.Normalize()

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o600)
}
