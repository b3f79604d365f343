package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingConfigDefaults(t *testing.T) {
	cfg := &LoggingConfig{}

	assert.True(t, cfg.IsFileEnabled())
	assert.Equal(t, 50, cfg.GetMaxSizeMB())
	assert.Equal(t, 7, cfg.GetMaxAgeDays())
	assert.Equal(t, 3, cfg.GetMaxBackups())
}

func TestLoggingConfigExplicit(t *testing.T) {
	disabled := false
	cfg := &LoggingConfig{
		FileEnabled: &disabled,
		MaxSizeMB:   10,
		MaxAgeDays:  1,
		MaxBackups:  5,
	}

	assert.False(t, cfg.IsFileEnabled())
	assert.Equal(t, 10, cfg.GetMaxSizeMB())
	assert.Equal(t, 1, cfg.GetMaxAgeDays())
	assert.Equal(t, 5, cfg.GetMaxBackups())
}

func TestSetRunContextAttachesField(t *testing.T) {
	old := Log
	t.Cleanup(func() { Log = old; SetRunContext("") })

	var buf bytes.Buffer
	Log = zerolog.New(&buf)

	SetRunContext("run-123")
	Info().Msg("working")
	assert.Contains(t, buf.String(), `"run":"run-123"`)

	buf.Reset()
	SetRunContext("")
	Info().Msg("idle")
	assert.NotContains(t, buf.String(), `"run"`)
}

func TestInitWithFileWritesLogFile(t *testing.T) {
	old := Log
	t.Cleanup(func() {
		Log = old
		require.NoError(t, CloseFileWriter())
	})

	dir := t.TempDir()
	require.NoError(t, InitWithFile(true, dir, &LoggingConfig{}))
	require.Equal(t, filepath.Join(dir, "shuttle.log"), GetLogFilePath())

	Info().Str("entity", "BusinessPartner").Msg("file sink check")

	data, err := os.ReadFile(GetLogFilePath())
	require.NoError(t, err)
	assert.Contains(t, string(data), "file sink check")
	assert.Contains(t, string(data), `"entity":"BusinessPartner"`)
}

func TestInitWithFileDisabled(t *testing.T) {
	old := Log
	t.Cleanup(func() { Log = old })

	disabled := false
	require.NoError(t, InitWithFile(false, t.TempDir(), &LoggingConfig{FileEnabled: &disabled}))
	assert.Empty(t, GetLogFilePath())
}

func TestInteractiveModeKeepsFileLogging(t *testing.T) {
	old := Log
	t.Cleanup(func() {
		Log = old
		SetInteractiveMode(false)
		require.NoError(t, CloseFileWriter())
	})

	dir := t.TempDir()
	require.NoError(t, InitWithFile(false, dir, &LoggingConfig{}))

	SetInteractiveMode(true)
	Info().Msg("suppressed on console")

	data, err := os.ReadFile(filepath.Join(dir, "shuttle.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "suppressed on console",
		"interactive mode drops console output only; the file gets everything")
}

func TestCloseFileWriterIdempotent(t *testing.T) {
	assert.NoError(t, CloseFileWriter())
	assert.NoError(t, CloseFileWriter())
}
