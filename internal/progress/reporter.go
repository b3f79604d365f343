package progress

import (
	"fmt"
	"strings"
	"time"

	"github.com/schmitthub/shuttle/internal/iostreams"
	"github.com/schmitthub/shuttle/internal/logger"
	"github.com/schmitthub/shuttle/internal/text"
)

// separatorWidth is the length of the muted rule between segments.
const separatorWidth = 48

// Options configures a Reporter.
type Options struct {
	// Outcomes is the ordered outcome set; row order in the results table.
	// Empty means DefaultOutcomes.
	Outcomes []Outcome

	// Labels overrides display strings. Nil means built-in defaults.
	Labels *Labels

	// Aggregate is the run-wide counter handle. Nil gets a private one.
	Aggregate *AggregateCounters

	// RedrawInterval throttles repaints. Non-positive means the default
	// 200ms.
	RedrawInterval time.Duration

	// Clock overrides the time source (for tests).
	Clock func() time.Time
}

// Reporter renders live migration progress to the terminal. It implements
// Listener and is driven synchronously by the pipeline; it must not be
// shared across goroutines without external serialization, since anchors
// encode absolute screen coordinates.
type Reporter struct {
	ios      *iostreams.IOStreams
	labels   *Labels
	counters *CounterStore
	throttle *Throttle
	outcomes []Outcome

	state          State
	segment        Segment
	segmentStart   time.Time
	pendingNewline bool

	// Three independent progress tracks: entity migration, orphan mapping
	// cleanup, entity deletion. Each has a total fixed at phase start and
	// a monotonically increasing processed count clamped to the total.
	entityTotal int64
	processed   int64
	orphanTotal int64
	orphanDone  int64
	deleteTotal int64
	deleted     int64

	rowAnchors      map[Outcome]*iostreams.Anchor
	migrationAnchor *iostreams.Anchor
	orphanAnchor    *iostreams.Anchor
	deletionAnchor  *iostreams.Anchor
}

var _ Listener = (*Reporter)(nil)

// NewReporter creates a reporter writing to the given streams.
func NewReporter(ios *iostreams.IOStreams, opts Options) *Reporter {
	outcomes := opts.Outcomes
	if len(outcomes) == 0 {
		outcomes = DefaultOutcomes()
	}

	labels := opts.Labels
	if labels == nil {
		labels = NewLabels(nil)
	}

	throttle := NewThrottle(opts.RedrawInterval)
	if opts.Clock != nil {
		throttle.SetClock(opts.Clock)
	}

	return &Reporter{
		ios:      ios,
		labels:   labels,
		counters: NewCounterStore(opts.Aggregate),
		throttle: throttle,
		outcomes: outcomes,
		state:    StateIdle,
	}
}

// Counters exposes the counter store (for summaries and tests).
func (r *Reporter) Counters() *CounterStore {
	return r.counters
}

// State returns the current lifecycle state.
func (r *Reporter) State() State {
	return r.state
}

// SegmentStarted prints the segment header and resets per-segment state.
func (r *Reporter) SegmentStarted(seg Segment, at time.Time) {
	r.setState(StateSegmentStarting)
	r.segment = seg
	r.segmentStart = at
	r.pendingNewline = false

	r.counters.Reset()
	r.entityTotal, r.processed = 0, 0
	r.orphanTotal, r.orphanDone = 0, 0
	r.deleteTotal, r.deleted = 0, 0
	r.rowAnchors = nil
	r.migrationAnchor, r.orphanAnchor, r.deletionAnchor = nil, nil, nil

	cs := r.ios.ColorScheme()
	var route string
	if seg.Source != "" || seg.Destination != "" {
		route = text.JoinNonEmpty(" → ", seg.Source, seg.Destination)
	}
	header := text.JoinNonEmpty("  ",
		cs.Boldf("Segment %d/%d", seg.Index, seg.Count),
		r.labels.Resolve(string(seg.Kind)),
		route,
		seg.EntityType,
		cs.Muted("started "+at.Format("15:04:05")),
	)
	fmt.Fprintln(r.ios.Out, header)

	logger.Debug().
		Int("segment", seg.Index).
		Int("of", seg.Count).
		Str("kind", string(seg.Kind)).
		Str("entity_type", seg.EntityType).
		Msg("segment started")
}

// SegmentFinished forces a final accurate render for migration segments,
// prints the elapsed time, and separates from the next segment.
func (r *Reporter) SegmentFinished(at time.Time) {
	r.settleLine()

	if r.segment.Kind == SegmentMigration && r.entityTotal > 0 {
		r.renderResults()
		r.renderTrack(r.migrationAnchor, r.processed, r.entityTotal)
	}

	cs := r.ios.ColorScheme()
	elapsed := at.Sub(r.segmentStart)
	fmt.Fprintln(r.ios.Out, cs.Mutedf("completed in %ds", int(elapsed.Seconds())))

	if !r.segment.Last() {
		fmt.Fprintln(r.ios.Out, cs.Muted(strings.Repeat("─", separatorWidth)))
	}

	r.setState(StateSegmentDone)

	logger.Debug().
		Int("segment", r.segment.Index).
		Dur("elapsed", elapsed).
		Int64("processed", r.processed).
		Msg("segment finished")
}

// SubsystemInitializing prints the message without a newline; the newline
// is owed until SubsystemInitialized.
func (r *Reporter) SubsystemInitializing(message string) {
	r.setState(StateInitializing)
	fmt.Fprintf(r.ios.Out, "%s ... ", message)
	r.pendingNewline = true
}

// SubsystemInitialized prints the completion message if supplied, otherwise
// settles the owed newline.
func (r *Reporter) SubsystemInitialized(message string) {
	if message != "" {
		fmt.Fprintln(r.ios.Out, message)
		r.pendingNewline = false
		return
	}
	r.settleLine()
}

// MappingCacheLoading announces the identifier-mapping cache load.
func (r *Reporter) MappingCacheLoading() {
	r.setState(StateCaching)
	r.phaseStart("mappings.loading")
}

// MappingCacheLoaded completes the mapping cache load announcement.
func (r *Reporter) MappingCacheLoaded(count int64) {
	r.phaseEnd("mappings.loaded", count)
}

// DestinationCachePopulating announces the destination cache fill.
func (r *Reporter) DestinationCachePopulating() {
	r.setState(StateCaching)
	r.phaseStart("cache.populating")
}

// DestinationCachePopulated completes the destination cache announcement.
func (r *Reporter) DestinationCachePopulated(count int64) {
	r.phaseEnd("cache.populated", count)
}

// EntitiesLoading announces entity loading.
func (r *Reporter) EntitiesLoading() {
	r.setState(StateLoading)
	r.phaseStart("entities.loading")
}

// EntitiesLoaded completes the load announcement; the count becomes the
// total for all later migration-progress percentages.
func (r *Reporter) EntitiesLoaded(count int64) {
	r.phaseEnd("entities.loaded", count)
	r.entityTotal = count
}

// ProcessingStarted prints the results-table header and progress label with
// their anchors, renders the initial values, and starts the throttle clock.
// Segments that loaded nothing get no table.
func (r *Reporter) ProcessingStarted() {
	r.setState(StateProcessing)
	if r.entityTotal == 0 {
		return
	}

	r.printResultsHeader()
	r.renderResults()
	r.renderTrack(r.migrationAnchor, 0, r.entityTotal)
	r.throttle.Start()
}

// EntityProcessed records the outcome in both scopes and repaints when the
// throttle allows. Reaching the total always forces an exact final repaint.
func (r *Reporter) EntityProcessed(outcome Outcome) {
	r.counters.Record(outcome)
	if r.entityTotal == 0 || r.processed < r.entityTotal {
		r.processed++
	}

	if r.redrawDue(r.processed, r.entityTotal) {
		r.renderResults()
		r.renderTrack(r.migrationAnchor, r.processed, r.entityTotal)
	}
}

// OrphanProcessingStarted prints the behavior-specific label, captures the
// percentage anchor, and renders the initial value.
func (r *Reporter) OrphanProcessingStarted(behavior string, total int64) {
	r.setState(StateOrphanProcessing)
	r.orphanTotal, r.orphanDone = total, 0

	fmt.Fprintf(r.ios.Out, "%s: ", r.labels.OrphanLine(behavior, total))
	r.orphanAnchor = r.ios.CaptureAnchor()
	fmt.Fprintln(r.ios.Out)

	r.renderTrack(r.orphanAnchor, 0, total)
	r.throttle.Start()
}

// OrphanProcessed advances the orphan track and repaints when due.
func (r *Reporter) OrphanProcessed() {
	if r.orphanTotal == 0 || r.orphanDone < r.orphanTotal {
		r.orphanDone++
	}

	if r.redrawDue(r.orphanDone, r.orphanTotal) {
		r.renderTrack(r.orphanAnchor, r.orphanDone, r.orphanTotal)
	}
}

// SweepIdentifying announces the garbage-collection scan.
func (r *Reporter) SweepIdentifying() {
	r.setState(StateSweepInitializing)
	r.phaseStart("sweep.identifying")
}

// SweepIdentified completes the scan announcement. A nonzero count sets up
// the deletion-progress anchor.
func (r *Reporter) SweepIdentified(count int64) {
	r.phaseEnd("sweep.identified", count)
	r.deleteTotal, r.deleted = count, 0

	if count == 0 {
		return
	}

	fmt.Fprintf(r.ios.Out, "%s ", r.labels.Resolve("progress.deletion"))
	r.deletionAnchor = r.ios.CaptureAnchor()
	fmt.Fprintln(r.ios.Out)

	r.renderTrack(r.deletionAnchor, 0, count)
	r.throttle.Start()
	r.setState(StateDeleting)
}

// EntityDeleted advances the deletion track and repaints when due.
func (r *Reporter) EntityDeleted() {
	if r.deleteTotal == 0 || r.deleted < r.deleteTotal {
		r.deleted++
	}

	if r.redrawDue(r.deleted, r.deleteTotal) {
		r.renderTrack(r.deletionAnchor, r.deleted, r.deleteTotal)
	}
}

// phaseStart prints a phase label without a newline; the outcome line from
// the matching end event completes it.
func (r *Reporter) phaseStart(labelID string) {
	fmt.Fprintf(r.ios.Out, "%s ... ", r.labels.Resolve(labelID))
	r.pendingNewline = true
}

// phaseEnd prints the count-dependent outcome line for a phase.
func (r *Reporter) phaseEnd(base string, count int64) {
	fmt.Fprintln(r.ios.Out, r.labels.CountLine(base, count))
	r.pendingNewline = false
}

// settleLine prints the owed newline, if any.
func (r *Reporter) settleLine() {
	if r.pendingNewline {
		fmt.Fprintln(r.ios.Out)
		r.pendingNewline = false
	}
}

// printResultsHeader writes one row per outcome with a reserved anchor for
// its counts, then the migration-progress label with its own anchor.
func (r *Reporter) printResultsHeader() {
	labelWidth := 0
	for _, o := range r.outcomes {
		if w := text.CountVisibleWidth(r.labels.Resolve(string(o))); w > labelWidth {
			labelWidth = w
		}
	}

	r.rowAnchors = make(map[Outcome]*iostreams.Anchor, len(r.outcomes))
	for _, o := range r.outcomes {
		fmt.Fprintf(r.ios.Out, "  %s  ", text.PadRight(r.labels.Resolve(string(o)), labelWidth))
		r.rowAnchors[o] = r.ios.CaptureAnchor()
		fmt.Fprintln(r.ios.Out)
	}

	fmt.Fprintf(r.ios.Out, "%s ", r.labels.Resolve("progress.migration"))
	r.migrationAnchor = r.ios.CaptureAnchor()
	fmt.Fprintln(r.ios.Out)
}

// renderResults overwrites each outcome row with "<segment> ( <aggregate> ) ".
// Rows where both scopes are zero are never rendered, keeping the table
// sparse. Nonzero counts get the count emphasis color.
func (r *Reporter) renderResults() {
	cs := r.ios.ColorScheme()
	for _, o := range r.outcomes {
		seg := r.counters.Get(o, ScopeSegment)
		agg := r.counters.Get(o, ScopeAggregate)
		if seg == 0 && agg == 0 {
			continue
		}

		a := r.rowAnchors[o]
		if a == nil {
			continue
		}

		a.Write(FormatCount(seg), emphasisIf(cs.Cyan, seg > 0))
		a.Write(" ( ", nil)
		a.Write(FormatCount(agg), emphasisIf(cs.Cyan, agg > 0))
		a.WriteAndReset(" ) ", nil)
	}
}

// renderTrack overwrites a percentage anchor with the current value.
func (r *Reporter) renderTrack(a *iostreams.Anchor, processed, total int64) {
	if a == nil {
		return
	}
	a.WriteAndReset(FormatPercent(processed, total), r.ios.ColorScheme().Green)
}

// redrawDue decides whether to repaint a track now. Completion always
// repaints so the display terminates at the exact final value; otherwise
// repaints require live redraws to be enabled and the throttle to agree.
func (r *Reporter) redrawDue(processed, total int64) bool {
	if total > 0 && processed == total {
		return true
	}
	if !r.ios.ProgressEnabled() {
		return false
	}
	return r.throttle.ShouldRedraw(processed, total)
}

func (r *Reporter) setState(next State) {
	if r.state == next {
		return
	}
	logger.Debug().
		Stringer("from", r.state).
		Stringer("to", next).
		Msg("reporter state change")
	r.state = next
}

// emphasisIf returns the color for a count: emphasized when nonzero,
// plain otherwise.
func emphasisIf(color iostreams.ColorFunc, nonzero bool) iostreams.ColorFunc {
	if !nonzero {
		return nil
	}
	return color
}
