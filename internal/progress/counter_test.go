package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounterStoreRecordIncrementsBothScopes(t *testing.T) {
	c := NewCounterStore(nil)

	c.Record(OutcomeCreated)
	c.Record(OutcomeCreated)
	c.Record(OutcomeFailed)

	assert.Equal(t, int64(2), c.Get(OutcomeCreated, ScopeSegment))
	assert.Equal(t, int64(2), c.Get(OutcomeCreated, ScopeAggregate))
	assert.Equal(t, int64(1), c.Get(OutcomeFailed, ScopeSegment))
	assert.Equal(t, int64(1), c.Get(OutcomeFailed, ScopeAggregate))
	assert.Equal(t, int64(0), c.Get(OutcomeDeleted, ScopeSegment))
}

func TestCounterStoreResetPreservesAggregate(t *testing.T) {
	c := NewCounterStore(nil)

	// Segment one: two updates.
	c.Record(OutcomeUpdated)
	c.Record(OutcomeUpdated)

	c.Reset()

	// Segment two: one update.
	c.Record(OutcomeUpdated)

	assert.Equal(t, int64(1), c.Get(OutcomeUpdated, ScopeSegment))
	assert.Equal(t, int64(3), c.Get(OutcomeUpdated, ScopeAggregate))
}

func TestCounterStoreSharedAggregate(t *testing.T) {
	agg := NewAggregateCounters()
	a := NewCounterStore(agg)
	b := NewCounterStore(agg)

	a.Record(OutcomeCreated)
	b.Record(OutcomeCreated)
	b.Record(OutcomeUnchanged)

	assert.Equal(t, int64(1), a.Get(OutcomeCreated, ScopeSegment))
	assert.Equal(t, int64(1), b.Get(OutcomeCreated, ScopeSegment))
	assert.Equal(t, int64(2), a.Get(OutcomeCreated, ScopeAggregate))
	assert.Equal(t, int64(2), b.Get(OutcomeCreated, ScopeAggregate))
	assert.Equal(t, int64(1), a.Get(OutcomeUnchanged, ScopeAggregate))
}

func TestAggregateSnapshotIsACopy(t *testing.T) {
	agg := NewAggregateCounters()
	c := NewCounterStore(agg)
	c.Record(OutcomeDeleted)

	snap := agg.Snapshot()
	assert.Equal(t, int64(1), snap[OutcomeDeleted])

	snap[OutcomeDeleted] = 99
	assert.Equal(t, int64(1), agg.Get(OutcomeDeleted))
}

func TestAggregateNeverBelowSegment(t *testing.T) {
	c := NewCounterStore(nil)
	for i := 0; i < 10; i++ {
		c.Record(OutcomeCreated)
		seg := c.Get(OutcomeCreated, ScopeSegment)
		agg := c.Get(OutcomeCreated, ScopeAggregate)
		assert.GreaterOrEqual(t, agg, seg)
	}
}
