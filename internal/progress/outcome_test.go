package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultOutcomesOrder(t *testing.T) {
	want := []Outcome{OutcomeCreated, OutcomeUpdated, OutcomeDeleted, OutcomeFailed, OutcomeUnchanged}
	assert.Equal(t, want, DefaultOutcomes())

	// Callers may reorder their copy without affecting the default.
	got := DefaultOutcomes()
	got[0] = OutcomeFailed
	assert.Equal(t, want, DefaultOutcomes())
}

func TestSegmentLast(t *testing.T) {
	assert.False(t, Segment{Index: 1, Count: 3}.Last())
	assert.True(t, Segment{Index: 3, Count: 3}.Last())
	assert.True(t, Segment{Index: 1, Count: 1}.Last())
}
