package progress

import "time"

// DefaultRedrawInterval bounds repaints to at most 5 per second under
// steady load.
const DefaultRedrawInterval = 200 * time.Millisecond

// redrawDue is the throttle rule: a repaint is due when the interval has
// elapsed since the last one, or unconditionally at completion so the final
// displayed value is exact, never left stale by a skipped tick.
func redrawDue(last, now time.Time, processed, total int64, interval time.Duration) bool {
	if processed == total {
		return true
	}
	return now.Sub(last) >= interval
}

// Throttle gates how often a progress track may repaint. Not safe for
// concurrent use; the engine dispatches events from a single goroutine.
type Throttle struct {
	interval time.Duration
	last     time.Time
	now      func() time.Time
}

// NewThrottle creates a throttle with the given minimum repaint interval.
// Non-positive intervals fall back to DefaultRedrawInterval.
func NewThrottle(interval time.Duration) *Throttle {
	if interval <= 0 {
		interval = DefaultRedrawInterval
	}
	return &Throttle{interval: interval, now: time.Now}
}

// SetClock overrides the time source (for tests).
func (t *Throttle) SetClock(now func() time.Time) {
	t.now = now
}

// Start resets the throttle clock at the beginning of a progress track.
func (t *Throttle) Start() {
	t.last = t.now()
}

// ShouldRedraw reports whether a repaint is allowed now, and if so marks
// the repaint as taken. Completion (processed == total) always allows one.
func (t *Throttle) ShouldRedraw(processed, total int64) bool {
	now := t.now()
	if !redrawDue(t.last, now, processed, total, t.interval) {
		return false
	}
	t.last = now
	return true
}
