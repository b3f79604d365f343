// Package progress implements the terminal progress engine for migration
// runs: per-outcome counters, throttled anchored redraws, and the lifecycle
// event state machine that drives them.
package progress

// Outcome classifies the result of processing one entity. The engine treats
// the outcome set as opaque: members and their display order are supplied by
// the host pipeline.
type Outcome string

// Default outcomes used by the built-in simulator and tests. Their slice
// order is the vertical order of rows in the results table.
const (
	OutcomeCreated   Outcome = "created"
	OutcomeUpdated   Outcome = "updated"
	OutcomeDeleted   Outcome = "deleted"
	OutcomeFailed    Outcome = "failed"
	OutcomeUnchanged Outcome = "unchanged"
)

// DefaultOutcomes is the ordered outcome set used when the host does not
// supply its own.
func DefaultOutcomes() []Outcome {
	return []Outcome{OutcomeCreated, OutcomeUpdated, OutcomeDeleted, OutcomeFailed, OutcomeUnchanged}
}

// SegmentKind distinguishes the two phase types of a run.
type SegmentKind string

const (
	SegmentMigration         SegmentKind = "migration"
	SegmentGarbageCollection SegmentKind = "garbage-collection"
)

// Segment describes one phase of a run. Index is 1-based; Index and Count
// are supplied by the host pipeline, never computed here.
type Segment struct {
	Index       int
	Count       int
	Kind        SegmentKind
	Source      string
	Destination string
	EntityType  string
}

// Last reports whether this is the final segment of the run.
func (s Segment) Last() bool {
	return s.Index >= s.Count
}
