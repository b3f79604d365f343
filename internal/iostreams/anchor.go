package iostreams

import (
	"fmt"

	"github.com/mattn/go-runewidth"
)

// ColorFunc colors a string for emphasis. ColorScheme methods (cs.Cyan,
// cs.Green, ...) satisfy this signature; nil means no emphasis.
type ColorFunc func(string) string

// Anchor is a saved terminal position that supports repeated in-place
// overwriting of a composite field. The (row, col) origin is fixed at
// capture time; the offset advances by the visible width of each written
// chunk so successive fragments line up left-to-right without colliding.
//
// On a non-addressable stream (redirected output, failed cursor query) an
// anchor degrades to plain sequential writes: positioning becomes a
// best-effort hint, never a correctness requirement.
type Anchor struct {
	ios *IOStreams

	// row and col are the 1-based origin captured from the terminal.
	row int
	col int

	// offset is the horizontal distance written since the last reset.
	offset int

	addressable bool
}

// CaptureAnchor records the current cursor position as a new anchor with
// offset 0. When the output is not a terminal or the position cannot be
// determined, the returned anchor is non-addressable.
func (s *IOStreams) CaptureAnchor() *Anchor {
	if !s.IsOutputTTY() {
		return &Anchor{ios: s}
	}

	row, col, err := s.cursorPosition()
	if err != nil {
		s.log().Debug().Err(err).Msg("cursor position query failed, anchor degrades to sequential writes")
		return &Anchor{ios: s}
	}

	return &Anchor{ios: s, row: row, col: col, addressable: true}
}

// Addressable reports whether the anchor can reposition the cursor.
func (a *Anchor) Addressable() bool {
	return a.addressable
}

// Offset returns the horizontal offset accumulated since the last reset.
func (a *Anchor) Offset() int {
	return a.offset
}

// Write places text at the anchor origin plus the current offset, then
// advances the offset by the text's visible width. The cursor is saved,
// hidden during the write, and restored afterwards so the caller's position
// is unaffected.
func (a *Anchor) Write(text string, color ColorFunc) {
	width := runewidth.StringWidth(text)

	styled := text
	if color != nil {
		styled = color(text)
	}

	if !a.addressable {
		fmt.Fprint(a.ios.Out, styled)
		a.offset += width
		return
	}

	t := a.ios.terminal()
	t.SaveCursorPosition()
	t.MoveCursor(a.row, a.col+a.offset)
	t.HideCursor()
	fmt.Fprint(a.ios.Out, styled)
	t.RestoreCursorPosition()
	t.ShowCursor()

	a.offset += width
}

// WriteAndReset writes like Write, then resets the offset to 0 so the next
// redraw cycle overwrites the field from its start column.
func (a *Anchor) WriteAndReset(text string, color ColorFunc) {
	a.Write(text, color)
	a.offset = 0
}

// Reset moves the offset back to the anchor origin without writing.
func (a *Anchor) Reset() {
	a.offset = 0
}
