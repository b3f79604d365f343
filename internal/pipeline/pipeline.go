// Package pipeline provides a scripted in-process migration pipeline. It
// emits the full lifecycle event sequence of a real run against a
// progress.Listener, with a seeded pseudo-random outcome distribution.
// Used by `shuttle simulate` and the end-to-end tests.
package pipeline

import (
	"math/rand"
	"time"

	"github.com/schmitthub/shuttle/internal/logger"
	"github.com/schmitthub/shuttle/internal/progress"
)

// Config controls the shape of a simulated run.
type Config struct {
	// Segments is the number of migration segments.
	Segments int

	// Entities is the base entity count per migration segment; the actual
	// count jitters around it.
	Entities int

	// Orphans is the base orphan-mapping count per segment. Zero disables
	// the orphan phase on roughly every other segment anyway, exercising
	// the nothing-to-do path.
	Orphans int

	// GarbageCollect appends a trailing garbage-collection segment.
	GarbageCollect bool

	// Delay is slept between entities so live rendering is visible.
	Delay time.Duration

	// Seed makes the run reproducible. Zero seeds from the clock.
	Seed int64

	// Source and Destination are the system names shown in segment headers.
	Source      string
	Destination string

	// EntityTypes cycles across migration segments.
	EntityTypes []string
}

// Pipeline drives a Listener through a scripted run.
type Pipeline struct {
	cfg Config
	rng *rand.Rand
	now func() time.Time
}

// New creates a pipeline, filling config defaults.
func New(cfg Config) *Pipeline {
	if cfg.Segments <= 0 {
		cfg.Segments = 2
	}
	if cfg.Entities <= 0 {
		cfg.Entities = 250
	}
	if cfg.Orphans < 0 {
		cfg.Orphans = 0
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.Source == "" {
		cfg.Source = "LEGACY"
	}
	if cfg.Destination == "" {
		cfg.Destination = "UNIFIED"
	}
	if len(cfg.EntityTypes) == 0 {
		cfg.EntityTypes = []string{"BusinessPartner", "SalesOrder", "Product"}
	}

	return &Pipeline{
		cfg: cfg,
		rng: rand.New(rand.NewSource(cfg.Seed)),
		now: time.Now,
	}
}

// SetClock overrides the time source (for tests).
func (p *Pipeline) SetClock(now func() time.Time) {
	p.now = now
}

// SegmentCount returns the total segments the run will announce.
func (p *Pipeline) SegmentCount() int {
	if p.cfg.GarbageCollect {
		return p.cfg.Segments + 1
	}
	return p.cfg.Segments
}

// Run emits the full event sequence for one run.
func (p *Pipeline) Run(l progress.Listener) {
	total := p.SegmentCount()

	for i := 1; i <= p.cfg.Segments; i++ {
		p.migrationSegment(l, i, total)
	}

	if p.cfg.GarbageCollect {
		p.gcSegment(l, total)
	}
}

func (p *Pipeline) migrationSegment(l progress.Listener, index, total int) {
	seg := progress.Segment{
		Index:       index,
		Count:       total,
		Kind:        progress.SegmentMigration,
		Source:      p.cfg.Source,
		Destination: p.cfg.Destination,
		EntityType:  p.cfg.EntityTypes[(index-1)%len(p.cfg.EntityTypes)],
	}
	l.SegmentStarted(seg, p.now())

	l.SubsystemInitializing("Connecting to " + p.cfg.Destination)
	l.SubsystemInitialized("connected")

	l.MappingCacheLoading()
	l.MappingCacheLoaded(p.jitter(p.cfg.Entities * 2))

	l.DestinationCachePopulating()
	l.DestinationCachePopulated(p.jitter(p.cfg.Entities))

	l.EntitiesLoading()
	entities := p.jitter(p.cfg.Entities)
	l.EntitiesLoaded(entities)

	l.ProcessingStarted()
	for j := int64(0); j < entities; j++ {
		p.sleep()
		l.EntityProcessed(p.outcome())
	}

	// Every other segment has orphans to clean; the rest exercise the
	// zero-total path.
	var orphans int64
	if index%2 == 1 && p.cfg.Orphans > 0 {
		orphans = p.jitter(p.cfg.Orphans)
	}
	l.OrphanProcessingStarted(p.behavior(index), orphans)
	for j := int64(0); j < orphans; j++ {
		p.sleep()
		l.OrphanProcessed()
	}

	l.SegmentFinished(p.now())

	logger.Debug().
		Int("segment", index).
		Int64("entities", entities).
		Int64("orphans", orphans).
		Msg("simulated migration segment complete")
}

func (p *Pipeline) gcSegment(l progress.Listener, total int) {
	seg := progress.Segment{
		Index:       total,
		Count:       total,
		Kind:        progress.SegmentGarbageCollection,
		Source:      p.cfg.Source,
		Destination: p.cfg.Destination,
	}
	l.SegmentStarted(seg, p.now())

	l.SweepIdentifying()
	doomed := p.jitter(p.cfg.Entities / 5)
	l.SweepIdentified(doomed)

	for j := int64(0); j < doomed; j++ {
		p.sleep()
		l.EntityDeleted()
	}

	l.SegmentFinished(p.now())

	logger.Debug().Int64("deleted", doomed).Msg("simulated gc segment complete")
}

// outcome draws from a fixed distribution: mostly creates and updates, a
// thin tail of deletes and failures.
func (p *Pipeline) outcome() progress.Outcome {
	switch n := p.rng.Intn(100); {
	case n < 45:
		return progress.OutcomeCreated
	case n < 75:
		return progress.OutcomeUpdated
	case n < 90:
		return progress.OutcomeUnchanged
	case n < 95:
		return progress.OutcomeDeleted
	default:
		return progress.OutcomeFailed
	}
}

// behavior alternates orphan handling so both display formats appear.
func (p *Pipeline) behavior(index int) string {
	if index%4 == 1 {
		return "delete"
	}
	return "keep"
}

// jitter returns base ±20%, never below zero.
func (p *Pipeline) jitter(base int) int64 {
	if base <= 0 {
		return 0
	}
	spread := base / 5
	if spread == 0 {
		return int64(base)
	}
	return int64(base - spread + p.rng.Intn(2*spread+1))
}

func (p *Pipeline) sleep() {
	if p.cfg.Delay > 0 {
		time.Sleep(p.cfg.Delay)
	}
}
