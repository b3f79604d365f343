package progress

import "sync"

// Scope selects which counter a read refers to.
type Scope int

const (
	// ScopeSegment reads the counter reset at each segment start.
	ScopeSegment Scope = iota
	// ScopeAggregate reads the run-wide counter, never reset.
	ScopeAggregate
)

// AggregateCounters accumulates outcome counts across all segments of a run.
// One instance is shared by every CounterStore of the run, so reporters
// handling different entity types see a single aggregate view.
type AggregateCounters struct {
	mu     sync.Mutex
	counts map[Outcome]int64
}

// NewAggregateCounters creates an empty run-wide counter set.
func NewAggregateCounters() *AggregateCounters {
	return &AggregateCounters{counts: make(map[Outcome]int64)}
}

func (a *AggregateCounters) add(outcome Outcome) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.counts[outcome]++
}

// Get returns the run-wide count for an outcome.
func (a *AggregateCounters) Get(outcome Outcome) int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.counts[outcome]
}

// Snapshot returns a copy of all run-wide counts.
func (a *AggregateCounters) Snapshot() map[Outcome]int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make(map[Outcome]int64, len(a.counts))
	for k, v := range a.counts {
		out[k] = v
	}
	return out
}

// CounterStore tracks per-segment counts alongside a shared run-wide
// aggregate. Record increments both under one lock, so the invariant
// aggregate ≥ segment holds at every observable point.
type CounterStore struct {
	mu        sync.Mutex
	segment   map[Outcome]int64
	aggregate *AggregateCounters
}

// NewCounterStore creates a store feeding the given aggregate handle.
// A nil aggregate gets a private one (convenient for tests).
func NewCounterStore(aggregate *AggregateCounters) *CounterStore {
	if aggregate == nil {
		aggregate = NewAggregateCounters()
	}
	return &CounterStore{
		segment:   make(map[Outcome]int64),
		aggregate: aggregate,
	}
}

// Reset zeroes all per-segment counters. Called once per segment before
// processing begins; the aggregate is untouched.
func (c *CounterStore) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.segment = make(map[Outcome]int64)
}

// Record increments the per-segment and aggregate counters for an outcome.
func (c *CounterStore) Record(outcome Outcome) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.segment[outcome]++
	c.aggregate.add(outcome)
}

// Get returns the count for an outcome in the requested scope.
func (c *CounterStore) Get(outcome Outcome, scope Scope) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if scope == ScopeAggregate {
		return c.aggregate.Get(outcome)
	}
	return c.segment[outcome]
}

// Aggregate returns the shared run-wide counter handle.
func (c *CounterStore) Aggregate() *AggregateCounters {
	return c.aggregate
}
