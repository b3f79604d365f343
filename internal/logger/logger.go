// Package logger provides the global structured logger for shuttle.
//
// Console output is suppressed while a live progress display owns the
// terminal (interactive mode) — anchored redraws and interleaved log lines
// would corrupt each other. File logging is unaffected by interactive mode.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	// Log is the global logger instance
	Log zerolog.Logger

	// fileWriter is the file output for logging (with rotation)
	fileWriter *lumberjack.Logger

	// fileOnlyLog is a cached logger that writes only to file (no console).
	// Used in interactive mode to avoid creating a new logger per log event.
	fileOnlyLog zerolog.Logger

	// interactiveMode controls whether console logs are suppressed.
	// When true, INFO/WARN/ERROR console logs are dropped so they cannot
	// interleave with anchored terminal redraws.
	interactiveMode bool
	interactiveMu   sync.RWMutex

	// runContext holds the current run identifier, attached to every entry.
	runContext   string
	runContextMu sync.RWMutex
)

func init() {
	// Safe default so package-level log calls before Init do no harm.
	Log = zerolog.Nop()
	fileOnlyLog = zerolog.Nop()
}

// SetRunContext attaches a run identifier to all subsequent log entries.
// Pass an empty string to clear. Thread-safe.
func SetRunContext(runID string) {
	runContextMu.Lock()
	defer runContextMu.Unlock()
	runContext = runID
}

// addContext adds the run field to an event if set.
func addContext(event *zerolog.Event) *zerolog.Event {
	runContextMu.RLock()
	run := runContext
	runContextMu.RUnlock()
	if run != "" {
		event = event.Str("run", run)
	}
	return event
}

// LoggingConfig holds configuration for file-based logging.
// This mirrors internal/config.LoggingSettings but is duplicated here
// to avoid circular imports.
type LoggingConfig struct {
	FileEnabled *bool
	MaxSizeMB   int
	MaxAgeDays  int
	MaxBackups  int
}

// IsFileEnabled returns whether file logging is enabled.
// Defaults to true if not explicitly set.
func (c *LoggingConfig) IsFileEnabled() bool {
	if c.FileEnabled == nil {
		return true
	}
	return *c.FileEnabled
}

// GetMaxSizeMB returns the max size in MB, defaulting to 50 if not set.
func (c *LoggingConfig) GetMaxSizeMB() int {
	if c.MaxSizeMB <= 0 {
		return 50
	}
	return c.MaxSizeMB
}

// GetMaxAgeDays returns the max age in days, defaulting to 7 if not set.
func (c *LoggingConfig) GetMaxAgeDays() int {
	if c.MaxAgeDays <= 0 {
		return 7
	}
	return c.MaxAgeDays
}

// GetMaxBackups returns the max backups, defaulting to 3 if not set.
func (c *LoggingConfig) GetMaxBackups() int {
	if c.MaxBackups <= 0 {
		return 3
	}
	return c.MaxBackups
}

// SetInteractiveMode enables or disables interactive mode.
// When enabled, INFO/WARN/ERROR console logs are suppressed so they cannot
// interfere with the live display. Debug is never suppressed on console.
func SetInteractiveMode(enabled bool) {
	interactiveMu.Lock()
	defer interactiveMu.Unlock()
	interactiveMode = enabled
}

// Init initializes the global logger with console-only output.
// Use InitWithFile for file logging.
func Init(debug bool) {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    false,
	}

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	Log = zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// InitWithFile initializes the logger with optional file output.
// File logging captures all logs regardless of interactive mode.
// If logsDir is empty or cfg indicates file logging is disabled,
// this behaves like Init (console-only).
func InitWithFile(debug bool, logsDir string, cfg *LoggingConfig) error {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    false,
	}

	if logsDir == "" || cfg == nil || !cfg.IsFileEnabled() {
		Log = zerolog.New(consoleWriter).
			Level(level).
			With().
			Timestamp().
			Logger()
		return nil
	}

	if err := os.MkdirAll(logsDir, 0o755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	logPath := filepath.Join(logsDir, "shuttle.log")

	fileWriter = &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    cfg.GetMaxSizeMB(),
		MaxAge:     cfg.GetMaxAgeDays(),
		MaxBackups: cfg.GetMaxBackups(),
		LocalTime:  true,
		Compress:   false,
	}

	// Cached file-only logger for use in interactive mode. Avoids allocating
	// a new logger on each suppressed log event.
	fileOnlyLog = zerolog.New(fileWriter).
		Level(level).
		With().
		Timestamp().
		Logger()

	// Console uses human-readable format, file uses JSON. Interactive mode
	// filtering happens at the log function level (Info, Warn, Error).
	multi := io.MultiWriter(consoleWriter, fileWriter)

	Log = zerolog.New(multi).
		Level(level).
		With().
		Timestamp().
		Logger()

	return nil
}

// CloseFileWriter closes the file writer if it exists.
// Call this on program shutdown for clean log file closure.
func CloseFileWriter() error {
	if fileWriter != nil {
		err := fileWriter.Close()
		fileWriter = nil // Prevent double-close and writes to closed file
		return err
	}
	return nil
}

// GetLogFilePath returns the path to the current log file, or empty string
// if file logging is disabled.
func GetLogFilePath() string {
	if fileWriter != nil {
		return fileWriter.Filename
	}
	return ""
}

// shouldSuppress returns true if console logs should be suppressed
// (interactive mode, non-debug level).
func shouldSuppress() bool {
	interactiveMu.RLock()
	interactive := interactiveMode
	interactiveMu.RUnlock()
	return interactive && Log.GetLevel() != zerolog.DebugLevel
}

// Debug logs a debug message (never suppressed — used for debugging).
func Debug() *zerolog.Event {
	return addContext(Log.Debug())
}

// Info logs an info message (suppressed on console in interactive mode,
// still written to file).
func Info() *zerolog.Event {
	if shouldSuppress() {
		return addContext(fileOnlyLog.Info())
	}
	return addContext(Log.Info())
}

// Warn logs a warning (suppressed on console in interactive mode,
// still written to file).
func Warn() *zerolog.Event {
	if shouldSuppress() {
		return addContext(fileOnlyLog.Warn())
	}
	return addContext(Log.Warn())
}

// Error logs an error (suppressed on console in interactive mode,
// still written to file).
func Error() *zerolog.Event {
	if shouldSuppress() {
		return addContext(fileOnlyLog.Error())
	}
	return addContext(Log.Error())
}
