package iostreams

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestColorSchemeDisabled(t *testing.T) {
	cs := NewColorScheme(false)

	assert.Equal(t, "hello", cs.Red("hello"))
	assert.Equal(t, "hello", cs.Green("hello"))
	assert.Equal(t, "hello", cs.Cyan("hello"))
	assert.Equal(t, "hello", cs.Bold("hello"))
	assert.Equal(t, "hello", cs.Muted("hello"))
	assert.Equal(t, "n=5", cs.Cyanf("n=%d", 5))

	assert.Equal(t, "[ok]", cs.SuccessIcon())
	assert.Equal(t, "[warn]", cs.WarningIcon())
	assert.Equal(t, "[error]", cs.FailureIcon())
	assert.Equal(t, "[info]", cs.InfoIcon())
	assert.Equal(t, "[ok] done", cs.SuccessIconWithColor("done"))
}

func TestColorSchemeEnabled(t *testing.T) {
	restore := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.ANSI)
	defer lipgloss.SetColorProfile(restore)

	cs := NewColorScheme(true)

	assert.Contains(t, cs.Green("ok"), "\x1b[")
	assert.Contains(t, cs.Green("ok"), "ok")
	assert.Contains(t, cs.Cyanf("%d", 42), "42")
	assert.Contains(t, cs.SuccessIcon(), "✓")
	assert.Contains(t, cs.FailureIcon(), "✗")
}
