package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	// EnvConfigDir overrides the settings directory (mainly for tests).
	EnvConfigDir = "SHUTTLE_CONFIG_DIR"

	settingsFile = "settings.yaml"
	envPrefix    = "SHUTTLE"
)

// DefaultRedrawInterval mirrors the progress engine default; registered as
// the viper default so the settings file may omit it.
const DefaultRedrawInterval = 200 * time.Millisecond

// SettingsLoader reads settings.yaml with env overrides.
type SettingsLoader struct {
	dir string
}

// NewSettingsLoader creates a loader rooted at the user config directory,
// honoring SHUTTLE_CONFIG_DIR.
func NewSettingsLoader() (*SettingsLoader, error) {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return &SettingsLoader{dir: dir}, nil
	}

	base, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("resolve user config dir: %w", err)
	}
	return &SettingsLoader{dir: filepath.Join(base, "shuttle")}, nil
}

// Path returns the settings file path.
func (l *SettingsLoader) Path() string {
	return filepath.Join(l.dir, settingsFile)
}

// Load reads settings, applying defaults and SHUTTLE_* env overrides.
// A missing settings file is not an error; defaults apply.
func (l *SettingsLoader) Load() (*Settings, error) {
	v := viper.New()

	v.SetDefault("color", ColorAuto)
	v.SetDefault("redraw_interval", DefaultRedrawInterval)
	v.SetDefault("logging.max_size_mb", 50)
	v.SetDefault("logging.max_age_days", 7)
	v.SetDefault("logging.max_backups", 3)

	v.SetConfigFile(l.Path())
	v.SetConfigType("yaml")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read settings %s: %w", l.Path(), err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("parse settings %s: %w", l.Path(), err)
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("settings %s: %w", l.Path(), err)
	}

	return &s, nil
}
