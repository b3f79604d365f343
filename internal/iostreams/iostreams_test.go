package iostreams_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/schmitthub/shuttle/internal/iostreams/iostreamstest"
)

func TestTestStreamsAreNonInteractive(t *testing.T) {
	ios := iostreamstest.New()

	assert.False(t, ios.IsInputTTY())
	assert.False(t, ios.IsOutputTTY())
	assert.False(t, ios.IsStderrTTY())
	assert.False(t, ios.ColorEnabled())
	assert.False(t, ios.ProgressEnabled())
}

func TestSetInteractiveEnablesAutoDetection(t *testing.T) {
	ios := iostreamstest.New()
	ios.SetInteractive(true)

	assert.True(t, ios.IsOutputTTY())
	assert.True(t, ios.ProgressEnabled(), "progress follows stdout TTY by default")
}

func TestProgressEnabledExplicitOverride(t *testing.T) {
	ios := iostreamstest.New()

	ios.SetProgressEnabled(true)
	assert.True(t, ios.ProgressEnabled(), "explicit enable wins over a redirected stream")

	ios.SetInteractive(true)
	ios.SetProgressEnabled(false)
	assert.False(t, ios.ProgressEnabled(), "explicit disable wins over a TTY")
}

func TestColorSchemeFollowsColorEnabled(t *testing.T) {
	ios := iostreamstest.New()

	cs := ios.ColorScheme()
	assert.False(t, cs.Enabled())
	assert.Equal(t, "plain", cs.Cyan("plain"))

	ios.SetColorEnabled(true)
	cs = ios.ColorScheme()
	assert.True(t, cs.Enabled(), "changing color mode invalidates the cached scheme")
}

func TestTerminalSizeCache(t *testing.T) {
	ios := iostreamstest.New()

	w, h := ios.TerminalSize()
	assert.Equal(t, 80, w, "non-terminal output falls back to 80x24")
	assert.Equal(t, 24, h)

	ios.SetTerminalSize(120, 40)
	w, h = ios.TerminalSize()
	assert.Equal(t, 120, w)
	assert.Equal(t, 40, h)
}

func TestPrintMessagesGoToStderr(t *testing.T) {
	ios := iostreamstest.New()

	assert.NoError(t, ios.PrintSuccess("migrated %d entities", 12))
	assert.NoError(t, ios.PrintWarning("slow destination"))
	assert.NoError(t, ios.PrintInfo("created: %d", 7))
	assert.NoError(t, ios.PrintFailure("segment aborted"))

	assert.Empty(t, ios.OutBuf.String())
	err := ios.ErrBuf.String()
	assert.Contains(t, err, "[ok] migrated 12 entities\n")
	assert.Contains(t, err, "[warn] slow destination\n")
	assert.Contains(t, err, "[info] created: 7\n")
	assert.Contains(t, err, "[error] segment aborted\n")
}
