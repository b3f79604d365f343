package progress

import "time"

// Listener receives the ordered lifecycle events of a migration run, one
// method per event. The pipeline dispatches synchronously: each call runs to
// completion before the next event is raised.
type Listener interface {
	// SegmentStarted begins a new segment. Counters for the segment reset;
	// the segment header is printed.
	SegmentStarted(seg Segment, at time.Time)

	// SegmentFinished ends the current segment. Migration segments with at
	// least one entity get a final forced results render.
	SegmentFinished(at time.Time)

	// SubsystemInitializing announces a subsystem starting up. The message
	// is printed without a trailing newline; the newline is owed until
	// SubsystemInitialized.
	SubsystemInitializing(message string)

	// SubsystemInitialized completes a subsystem announcement. An empty
	// message settles the owed newline only.
	SubsystemInitialized(message string)

	// MappingCacheLoading / MappingCacheLoaded bracket the identifier
	// mapping cache load.
	MappingCacheLoading()
	MappingCacheLoaded(count int64)

	// DestinationCachePopulating / DestinationCachePopulated bracket the
	// destination record cache fill.
	DestinationCachePopulating()
	DestinationCachePopulated(count int64)

	// EntitiesLoading / EntitiesLoaded bracket entity loading. The loaded
	// count becomes the segment's migration-progress total.
	EntitiesLoading()
	EntitiesLoaded(count int64)

	// ProcessingStarted precedes the first EntityProcessed of a segment.
	ProcessingStarted()

	// EntityProcessed records one processed entity and its outcome.
	EntityProcessed(outcome Outcome)

	// OrphanProcessingStarted begins orphan identifier-mapping cleanup.
	// The behavior identifier selects the display format.
	OrphanProcessingStarted(behavior string, total int64)

	// OrphanProcessed records one handled orphan mapping.
	OrphanProcessed()

	// SweepIdentifying / SweepIdentified bracket the garbage-collection
	// scan for entities to delete.
	SweepIdentifying()
	SweepIdentified(count int64)

	// EntityDeleted records one deleted entity.
	EntityDeleted()
}
