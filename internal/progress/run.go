package progress

import (
	"time"

	"github.com/google/uuid"
)

// Run is the unit of aggregate scope: one invocation of the migration
// pipeline, spanning an ordered sequence of segments. All counters live
// only for the duration of the run; nothing persists across restarts.
type Run struct {
	// ID identifies the run in log entries.
	ID uuid.UUID

	// Segments is the total segment count announced by the pipeline.
	Segments int

	// Aggregate is the run-wide counter handle shared by every reporter
	// of the run.
	Aggregate *AggregateCounters

	// Started is when the run began.
	Started time.Time
}

// NewRun creates a run with a fresh identifier and aggregate counters.
func NewRun(segments int) *Run {
	return &Run{
		ID:        uuid.New(),
		Segments:  segments,
		Aggregate: NewAggregateCounters(),
		Started:   time.Now(),
	}
}
