// Package config loads shuttle's user settings: display preferences, label
// overrides and logging knobs. Settings live in
// ~/.config/shuttle/settings.yaml and can be overridden via SHUTTLE_* env
// vars.
package config

import (
	"fmt"
	"time"

	"github.com/schmitthub/shuttle/internal/logger"
)

// Color modes accepted by the "color" setting.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Settings is the root of the user configuration.
type Settings struct {
	// Color controls colored output: auto, always or never.
	Color string `mapstructure:"color" yaml:"color"`

	// RedrawInterval throttles live progress repaints.
	RedrawInterval time.Duration `mapstructure:"redraw_interval" yaml:"redraw_interval"`

	// Labels overrides display strings by identifier.
	Labels map[string]string `mapstructure:"labels" yaml:"labels,omitempty"`

	// Logging configures the rotating log file.
	Logging LoggingSettings `mapstructure:"logging" yaml:"logging"`
}

// LoggingSettings configures file logging.
type LoggingSettings struct {
	FileEnabled *bool  `mapstructure:"file_enabled" yaml:"file_enabled,omitempty"`
	Dir         string `mapstructure:"dir" yaml:"dir,omitempty"`
	MaxSizeMB   int    `mapstructure:"max_size_mb" yaml:"max_size_mb,omitempty"`
	MaxAgeDays  int    `mapstructure:"max_age_days" yaml:"max_age_days,omitempty"`
	MaxBackups  int    `mapstructure:"max_backups" yaml:"max_backups,omitempty"`
}

// Validate checks enum fields and ranges.
func (s *Settings) Validate() error {
	switch s.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color mode %q (want auto, always or never)", s.Color)
	}

	if s.RedrawInterval < 0 {
		return fmt.Errorf("redraw_interval must not be negative, got %s", s.RedrawInterval)
	}

	return nil
}

// ToLoggerConfig converts to the logger package's config type. The types are
// kept separate to avoid an import cycle between config and logger.
func (l LoggingSettings) ToLoggerConfig() *logger.LoggingConfig {
	return &logger.LoggingConfig{
		FileEnabled: l.FileEnabled,
		MaxSizeMB:   l.MaxSizeMB,
		MaxAgeDays:  l.MaxAgeDays,
		MaxBackups:  l.MaxBackups,
	}
}
