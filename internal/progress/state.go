package progress

// State tracks where in the segment lifecycle the reporter is. Transitions
// are driven one-to-one by lifecycle events; the reporter has no timers of
// its own. Garbage-collection segments skip the load/cache/process states,
// migration segments skip the sweep/delete states.
type State int

const (
	StateIdle State = iota
	StateSegmentStarting
	StateInitializing
	StateCaching
	StateLoading
	StateProcessing
	StateOrphanProcessing
	StateSweepInitializing
	StateDeleting
	StateSegmentDone
)

var stateNames = map[State]string{
	StateIdle:              "idle",
	StateSegmentStarting:   "segment-starting",
	StateInitializing:      "initializing",
	StateCaching:           "caching",
	StateLoading:           "loading",
	StateProcessing:        "processing",
	StateOrphanProcessing:  "orphan-processing",
	StateSweepInitializing: "sweep-initializing",
	StateDeleting:          "deleting",
	StateSegmentDone:       "segment-done",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}
