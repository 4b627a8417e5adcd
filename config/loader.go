package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
)

const (
	// ProjectConfigFile is the name of the project-level config file
	ProjectConfigFile = "semowl.yaml"
	// UserConfigDir is the directory for user-level config
	UserConfigDir = ".config/semowl"
	// UserConfigFile is the name of the user-level config file
	UserConfigFile = "config.yaml"
)

// Loader handles configuration loading with layered precedence
type Loader struct {
	logger *slog.Logger
	home   string
	cwd    string
}

// NewLoader creates a new configuration loader
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	l := &Loader{logger: logger}
	if home, err := os.UserHomeDir(); err == nil {
		l.home = home
	}
	if cwd, err := os.Getwd(); err == nil {
		l.cwd = cwd
	}
	return l
}

// Load loads configuration with layered precedence:
// 1. Default config
// 2. User config (~/.config/semowl/config.yaml)
// 3. Project config (semowl.yaml in current or parent directories)
// 4. Explicit files, in order
//
// Each layer overrides only the keys it sets. Missing user and project
// files are skipped; a missing explicit file is an error.
func (l *Loader) Load(explicit ...string) (*Config, error) {
	// Start with defaults
	config := DefaultConfig()

	// Load user config
	userConfigPath := l.userConfigPath()
	if userConfigPath != "" {
		if err := config.apply(userConfigPath); err == nil {
			l.logger.Debug("Loaded user config", slog.String("path", userConfigPath))
		} else if !errors.Is(err, os.ErrNotExist) {
			l.logger.Warn("Failed to load user config", slog.String("path", userConfigPath), slog.String("error", err.Error()))
		}
	}

	// Load project config
	projectConfigPath := l.findProjectConfig()
	if projectConfigPath != "" {
		if err := config.apply(projectConfigPath); err == nil {
			l.logger.Debug("Loaded project config", slog.String("path", projectConfigPath))
		} else {
			l.logger.Warn("Failed to load project config", slog.String("path", projectConfigPath), slog.String("error", err.Error()))
		}
	} else {
		l.logger.Debug("No project config found")
	}

	for _, path := range explicit {
		if err := config.apply(path); err != nil {
			return nil, err
		}
		l.logger.Debug("Loaded config", slog.String("path", path))
	}

	// Validate final config
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// EnsureUserConfig creates the user config file with defaults if it doesn't exist
func (l *Loader) EnsureUserConfig() error {
	userConfigPath := l.userConfigPath()

	// Check if it already exists
	if _, err := os.Stat(userConfigPath); err == nil {
		return nil // Already exists
	}

	// Create default config
	config := DefaultConfig()
	if err := config.SaveToFile(userConfigPath); err != nil {
		return err
	}

	l.logger.Info("Created default user config", slog.String("path", userConfigPath))
	return nil
}

// userConfigPath returns the path to the user config file
func (l *Loader) userConfigPath() string {
	if l.home == "" {
		return ""
	}
	return filepath.Join(l.home, UserConfigDir, UserConfigFile)
}

// findProjectConfig searches for semowl.yaml in current and parent directories
func (l *Loader) findProjectConfig() string {
	if l.cwd == "" {
		return ""
	}

	dir := l.cwd
	for {
		configPath := filepath.Join(dir, ProjectConfigFile)
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		// Move to parent directory
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root
			break
		}
		dir = parent
	}

	return ""
}
