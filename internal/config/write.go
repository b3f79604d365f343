package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Write persists settings to the loader's settings file, creating the
// directory if needed. Used by `shuttle config init` style tooling and
// tests; the engine itself never writes configuration.
func (l *SettingsLoader) Write(s *Settings) error {
	if err := os.MkdirAll(l.dir, 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	tmp := l.Path() + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	if err := os.Rename(tmp, l.Path()); err != nil {
		os.Remove(tmp) //nolint:errcheck
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

// LogsDir returns the directory for log files: the configured one, or
// <config dir>/logs.
func (l *SettingsLoader) LogsDir(s *Settings) string {
	if s != nil && s.Logging.Dir != "" {
		return s.Logging.Dir
	}
	return filepath.Join(l.dir, "logs")
}
