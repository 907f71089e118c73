package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/kbtrack/internal/domain"
	"gopkg.in/yaml.v3"
)

// Config holds the runtime settings of kbtrack.
type Config struct {
	DBPath       string `yaml:"db_path"`
	LogLevel     string `yaml:"log_level"`
	LogFile      string `yaml:"log_file"`
	FirstWorkout string `yaml:"first_workout"`

	// Path is the config file that was read, empty when none existed.
	Path string `yaml:"-"`
}

// DefaultConfig returns the settings used when nothing is configured.
// All files live under ~/.kbtrack.
func DefaultConfig() (Config, error) {
	dir, err := Dir()
	if err != nil {
		return Config{}, err
	}
	return Config{
		DBPath:       filepath.Join(dir, "kbtrack.db"),
		LogLevel:     "warn",
		FirstWorkout: string(domain.WorkoutA),
	}, nil
}

// Dir is the per-user kbtrack directory.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".kbtrack"), nil
}

// Load builds the configuration from defaults, then the YAML file named by
// KBTRACK_CONFIG (default ~/.kbtrack/config.yaml), then environment
// variables:
//
//	KBTRACK_DB, KBTRACK_LOG_LEVEL, KBTRACK_LOG_FILE, KBTRACK_FIRST_WORKOUT
//
// A missing config file is not an error.
func Load() (Config, error) {
	cfg, err := DefaultConfig()
	if err != nil {
		return Config{}, err
	}

	path := os.Getenv("KBTRACK_CONFIG")
	if path == "" {
		dir, err := Dir()
		if err != nil {
			return Config{}, err
		}
		path = filepath.Join(dir, "config.yaml")
	}
	if err := readFile(path, &cfg); err != nil {
		return Config{}, err
	}

	applyEnvOverrides(&cfg)

	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

func readFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	cfg.Path = path
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("KBTRACK_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("KBTRACK_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("KBTRACK_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("KBTRACK_FIRST_WORKOUT"); v != "" {
		cfg.FirstWorkout = v
	}
}

func (c Config) validate() error {
	if strings.TrimSpace(c.DBPath) == "" {
		return fmt.Errorf("db_path is required")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if _, err := c.Workout(); err != nil {
		return fmt.Errorf("first_workout: %w", err)
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("log_level %q: want debug, info, warn or error", c.LogLevel)
	}
	return lvl, nil
}

// Workout parses FirstWorkout.
func (c Config) Workout() (domain.WorkoutType, error) {
	return domain.ParseWorkoutType(c.FirstWorkout)
}
