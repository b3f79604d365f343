// Package term wraps low-level terminal operations: raw mode, size and
// cursor-position queries. It is the only package that imports
// golang.org/x/term directly.
package term

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrNotTerminal is returned when a terminal operation is attempted on a
// file descriptor that is not attached to a terminal.
var ErrNotTerminal = errors.New("not a terminal")

// IsTerminalFd checks if a file descriptor is a terminal.
func IsTerminalFd(fd int) bool {
	return term.IsTerminal(fd)
}

// IsStdoutTerminal checks if stdout is a terminal.
func IsStdoutTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// GetTerminalSize returns the terminal size for the given file descriptor.
// This is the canonical wrapper for x/term.GetSize — use this instead of
// importing golang.org/x/term directly.
func GetTerminalSize(fd int) (width, height int, err error) {
	return term.GetSize(fd)
}

// RawMode manages putting the terminal into raw mode
type RawMode struct {
	fd       int
	oldState *term.State
	isRaw    bool
}

// NewRawMode creates a new RawMode manager for the given file descriptor
func NewRawMode(fd int) *RawMode {
	return &RawMode{
		fd:    fd,
		isRaw: false,
	}
}

// Enable puts the terminal into raw mode
func (r *RawMode) Enable() error {
	if r.isRaw {
		return nil
	}

	oldState, err := term.MakeRaw(r.fd)
	if err != nil {
		return err
	}

	r.oldState = oldState
	r.isRaw = true
	return nil
}

// Restore returns the terminal to its original state
func (r *RawMode) Restore() error {
	if !r.isRaw || r.oldState == nil {
		return nil
	}

	err := term.Restore(r.fd, r.oldState)
	if err == nil {
		r.isRaw = false
	}
	return err
}

// IsRaw returns true if the terminal is currently in raw mode
func (r *RawMode) IsRaw() bool {
	return r.isRaw
}

// QueryCursorPosition asks the terminal for the current cursor position
// using a DSR (Device Status Report) escape. The terminal replies on stdin
// with ESC[<row>;<col>R; stdin must be in raw mode so the reply is neither
// echoed nor line-buffered. Row and column are 1-based.
func QueryCursorPosition(in, out *os.File) (row, col int, err error) {
	if !term.IsTerminal(int(in.Fd())) || !term.IsTerminal(int(out.Fd())) {
		return 0, 0, ErrNotTerminal
	}

	raw := NewRawMode(int(in.Fd()))
	if err := raw.Enable(); err != nil {
		return 0, 0, err
	}
	defer raw.Restore() //nolint:errcheck

	if _, err := out.WriteString("\x1b[6n"); err != nil {
		return 0, 0, err
	}

	return readCursorReport(in)
}

// readCursorReport reads bytes until the 'R' terminator and parses the
// cursor report. Replies longer than replyLimit bytes are rejected to avoid
// blocking forever on a terminal that never answers properly.
func readCursorReport(in *os.File) (row, col int, err error) {
	const replyLimit = 32

	var reply []byte
	b := make([]byte, 1)
	for {
		n, err := in.Read(b)
		if err != nil {
			return 0, 0, err
		}
		if n == 0 {
			continue
		}
		reply = append(reply, b[0])
		if b[0] == 'R' {
			break
		}
		if len(reply) > replyLimit {
			return 0, 0, fmt.Errorf("malformed cursor report: %q", reply)
		}
	}

	return ParseCursorReport(string(reply))
}

// ParseCursorReport parses a DSR cursor report of the form ESC[<row>;<col>R.
// Leading bytes before the escape (queued keystrokes) are skipped.
func ParseCursorReport(s string) (row, col int, err error) {
	i := strings.Index(s, "\x1b[")
	if i < 0 {
		return 0, 0, fmt.Errorf("malformed cursor report: %q", s)
	}
	if _, err := fmt.Sscanf(s[i:], "\x1b[%d;%dR", &row, &col); err != nil {
		return 0, 0, fmt.Errorf("malformed cursor report: %q", s)
	}
	if row < 1 || col < 1 {
		return 0, 0, fmt.Errorf("cursor report out of range: %q", s)
	}
	return row, col, nil
}
