// Package iostreams provides access to standard input/output/error streams
// with terminal capability detection, color formatting and anchored in-place
// rewriting. It follows the GitHub CLI pattern for testable I/O.
package iostreams

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"

	"github.com/schmitthub/shuttle/internal/logger"
	"github.com/schmitthub/shuttle/internal/term"
)

// Logger is the narrow logging surface iostreams consumers need.
// Satisfied by the global logger adapter and by loggertest.TestLogger.
type Logger interface {
	Debug() *zerolog.Event
	Info() *zerolog.Event
	Warn() *zerolog.Event
	Error() *zerolog.Event
}

// IOStreams provides access to standard input/output/error streams.
type IOStreams struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer

	// Logger receives diagnostics from widgets (anchor capture failures etc.).
	Logger Logger

	// isInputTTY caches whether stdin is a terminal.
	// -1 = unchecked, 0 = false, 1 = true
	isInputTTY int

	// isOutputTTY caches whether stdout is a terminal.
	isOutputTTY int

	// isStderrTTY caches whether stderr is a terminal.
	isStderrTTY int

	// colorEnabled controls color output.
	// -1 = auto (detect from TTY), 0 = disabled, 1 = enabled
	colorEnabled int

	// progressEnabled controls live redraws.
	// -1 = auto (detect from TTY), 0 = disabled, 1 = enabled
	progressEnabled int

	// colorScheme is lazily constructed from colorEnabled.
	colorScheme *ColorScheme

	// termOut issues ANSI control sequences (cursor movement/visibility) to Out.
	termOut *termenv.Output

	// cursorQuery reports the current cursor position. Overridable for tests
	// via SetCursorQuery; defaults to a DSR query against In/Out.
	cursorQuery func() (row, col int, err error)

	// Terminal size cache
	termWidthCache  int
	termHeightCache int
	termSizeCached  bool
}

// globalLogger adapts the package-level logger to the Logger interface.
type globalLogger struct{}

func (globalLogger) Debug() *zerolog.Event { return logger.Debug() }
func (globalLogger) Info() *zerolog.Event  { return logger.Info() }
func (globalLogger) Warn() *zerolog.Event  { return logger.Warn() }
func (globalLogger) Error() *zerolog.Event { return logger.Error() }

// NewIOStreams creates an IOStreams connected to standard streams.
func NewIOStreams() *IOStreams {
	return &IOStreams{
		In:              os.Stdin,
		Out:             os.Stdout,
		ErrOut:          os.Stderr,
		Logger:          globalLogger{},
		isInputTTY:      -1,
		isOutputTTY:     -1,
		isStderrTTY:     -1,
		colorEnabled:    -1,
		progressEnabled: -1,
	}
}

// IsInputTTY returns true if stdin is a terminal.
func (s *IOStreams) IsInputTTY() bool {
	if s.isInputTTY == -1 {
		if f, ok := s.In.(*os.File); ok {
			s.isInputTTY = boolToInt(term.IsTerminalFd(int(f.Fd())))
		} else {
			s.isInputTTY = 0
		}
	}
	return s.isInputTTY == 1
}

// IsOutputTTY returns true if stdout is a terminal.
func (s *IOStreams) IsOutputTTY() bool {
	if s.isOutputTTY == -1 {
		if f, ok := s.Out.(*os.File); ok {
			s.isOutputTTY = boolToInt(term.IsTerminalFd(int(f.Fd())))
		} else {
			s.isOutputTTY = 0
		}
	}
	return s.isOutputTTY == 1
}

// IsStderrTTY returns true if stderr is a terminal.
func (s *IOStreams) IsStderrTTY() bool {
	if s.isStderrTTY == -1 {
		if f, ok := s.ErrOut.(*os.File); ok {
			s.isStderrTTY = boolToInt(term.IsTerminalFd(int(f.Fd())))
		} else {
			s.isStderrTTY = 0
		}
	}
	return s.isStderrTTY == 1
}

// SetStdinTTY overrides stdin TTY detection (for tests).
func (s *IOStreams) SetStdinTTY(isTTY bool) {
	s.isInputTTY = boolToInt(isTTY)
}

// SetStdoutTTY overrides stdout TTY detection (for tests).
func (s *IOStreams) SetStdoutTTY(isTTY bool) {
	s.isOutputTTY = boolToInt(isTTY)
}

// SetStderrTTY overrides stderr TTY detection (for tests).
func (s *IOStreams) SetStderrTTY(isTTY bool) {
	s.isStderrTTY = boolToInt(isTTY)
}

// ColorEnabled returns whether color output is enabled.
// Auto-detect mode follows stdout TTY status.
func (s *IOStreams) ColorEnabled() bool {
	if s.colorEnabled == -1 {
		return s.IsOutputTTY()
	}
	return s.colorEnabled == 1
}

// SetColorEnabled explicitly enables or disables color output.
func (s *IOStreams) SetColorEnabled(enabled bool) {
	s.colorEnabled = boolToInt(enabled)
	s.colorScheme = nil
}

// ColorScheme returns the color scheme for this stream's capabilities.
func (s *IOStreams) ColorScheme() *ColorScheme {
	if s.colorScheme == nil {
		s.colorScheme = NewColorScheme(s.ColorEnabled())
	}
	return s.colorScheme
}

// ProgressEnabled returns whether live progress redraws should happen.
// Auto-detect mode follows stdout TTY status; a redirected stream gets the
// final values only, never intermediate repaints.
func (s *IOStreams) ProgressEnabled() bool {
	if s.progressEnabled == -1 {
		return s.IsOutputTTY()
	}
	return s.progressEnabled == 1
}

// SetProgressEnabled explicitly enables or disables live redraws.
func (s *IOStreams) SetProgressEnabled(enabled bool) {
	s.progressEnabled = boolToInt(enabled)
}

// TerminalSize returns the terminal width and height, caching the result.
// Falls back to 80x24 when the size cannot be determined.
func (s *IOStreams) TerminalSize() (width, height int) {
	if s.termSizeCached {
		return s.termWidthCache, s.termHeightCache
	}

	width, height = 80, 24
	if f, ok := s.Out.(*os.File); ok {
		if w, h, err := term.GetTerminalSize(int(f.Fd())); err == nil && w > 0 {
			width, height = w, h
		}
	}

	s.termWidthCache, s.termHeightCache = width, height
	s.termSizeCached = true
	return width, height
}

// SetTerminalSizeCache overrides the detected terminal size (for tests).
func (s *IOStreams) SetTerminalSizeCache(width, height int) {
	s.termWidthCache = width
	s.termHeightCache = height
	s.termSizeCached = true
}

// SetCursorQuery overrides cursor position detection (for tests).
func (s *IOStreams) SetCursorQuery(fn func() (row, col int, err error)) {
	s.cursorQuery = fn
}

// cursorPosition reports the current 1-based cursor row and column.
func (s *IOStreams) cursorPosition() (row, col int, err error) {
	if s.cursorQuery != nil {
		return s.cursorQuery()
	}

	in, inOK := s.In.(*os.File)
	out, outOK := s.Out.(*os.File)
	if !inOK || !outOK {
		return 0, 0, term.ErrNotTerminal
	}
	return term.QueryCursorPosition(in, out)
}

// terminal returns the termenv output used for cursor control sequences.
func (s *IOStreams) terminal() *termenv.Output {
	if s.termOut == nil {
		s.termOut = termenv.NewOutput(s.Out)
	}
	return s.termOut
}

// log returns the configured logger, or the global adapter when unset.
// Keeps zero-value IOStreams literals (tests) from panicking.
func (s *IOStreams) log() Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return globalLogger{}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
