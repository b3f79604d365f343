// Package simulate implements the "simulate" subcommand: a scripted
// migration run rendered live, exercising every progress event.
package simulate

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/schmitthub/shuttle/internal/cmdutil"
	"github.com/schmitthub/shuttle/internal/config"
	"github.com/schmitthub/shuttle/internal/iostreams"
	"github.com/schmitthub/shuttle/internal/logger"
	"github.com/schmitthub/shuttle/internal/pipeline"
	"github.com/schmitthub/shuttle/internal/progress"
)

// Options holds the simulate command's dependencies and flags.
type Options struct {
	IO       *iostreams.IOStreams
	Settings func() (*config.Settings, error)

	Segments       int
	Entities       int
	Orphans        int
	GarbageCollect bool
	Delay          time.Duration
	Seed           int64
	Source         string
	Destination    string

	// Color overrides the settings-file color mode when ColorSet is true.
	Color    string
	ColorSet bool
}

// NewCmdSimulate creates the "simulate" subcommand.
func NewCmdSimulate(f *cmdutil.Factory) *cobra.Command {
	opts := &Options{
		IO:       f.IOStreams,
		Settings: f.Settings,
	}

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a simulated migration and render its progress live",
		Long: `Simulate drives the progress console through a scripted migration run:
entity loading, record-by-record processing, orphan identifier-mapping
cleanup, and an optional trailing garbage-collection segment.

Useful for checking terminal rendering and label overrides without a
real pipeline attached.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Segments < 1 {
				return cmdutil.FlagErrorf("--segments must be at least 1, got %d", opts.Segments)
			}
			if opts.Entities < 0 {
				return cmdutil.FlagErrorf("--entities must not be negative, got %d", opts.Entities)
			}
			opts.ColorSet = cmd.Flags().Changed("color")
			return run(opts)
		},
	}

	cmd.Flags().IntVar(&opts.Segments, "segments", 2, "Number of migration segments")
	cmd.Flags().IntVar(&opts.Entities, "entities", 250, "Entities per segment (jittered)")
	cmd.Flags().IntVar(&opts.Orphans, "orphans", 40, "Orphan mappings per segment (jittered)")
	cmd.Flags().BoolVar(&opts.GarbageCollect, "gc", true, "Append a garbage-collection segment")
	cmd.Flags().DurationVar(&opts.Delay, "delay", 5*time.Millisecond, "Delay between entities")
	cmd.Flags().Int64Var(&opts.Seed, "seed", 0, "Random seed (0 seeds from the clock)")
	cmd.Flags().StringVar(&opts.Source, "source", "LEGACY", "Source system name")
	cmd.Flags().StringVar(&opts.Destination, "destination", "UNIFIED", "Destination system name")
	cmdutil.StringEnumFlag(cmd, &opts.Color, "color", "", config.ColorAuto,
		[]string{config.ColorAuto, config.ColorAlways, config.ColorNever}, "Color output mode")

	return cmd
}

func run(opts *Options) error {
	settings, err := opts.Settings()
	if err != nil {
		return err
	}

	colorMode := settings.Color
	if opts.ColorSet {
		colorMode = opts.Color
	}
	switch colorMode {
	case config.ColorAlways:
		opts.IO.SetColorEnabled(true)
	case config.ColorNever:
		opts.IO.SetColorEnabled(false)
	}

	p := pipeline.New(pipeline.Config{
		Segments:       opts.Segments,
		Entities:       opts.Entities,
		Orphans:        opts.Orphans,
		GarbageCollect: opts.GarbageCollect,
		Delay:          opts.Delay,
		Seed:           opts.Seed,
		Source:         opts.Source,
		Destination:    opts.Destination,
	})

	migrationRun := progress.NewRun(p.SegmentCount())
	logger.SetRunContext(migrationRun.ID.String())
	defer logger.SetRunContext("")

	// The live display owns the terminal for the duration of the run.
	logger.SetInteractiveMode(opts.IO.IsOutputTTY())
	defer logger.SetInteractiveMode(false)

	labels := progress.NewLabels(settings.Labels)
	reporter := progress.NewReporter(opts.IO, progress.Options{
		Labels:         labels,
		Aggregate:      migrationRun.Aggregate,
		RedrawInterval: settings.RedrawInterval,
	})

	logger.Info().
		Int("segments", migrationRun.Segments).
		Int64("seed", opts.Seed).
		Msg("simulated run starting")

	started := time.Now()
	p.Run(reporter)
	elapsed := time.Since(started).Round(time.Millisecond)

	opts.IO.PrintSuccess("run %s finished in %s", migrationRun.ID, elapsed) //nolint:errcheck
	for _, o := range progress.DefaultOutcomes() {
		if n := migrationRun.Aggregate.Get(o); n > 0 {
			opts.IO.PrintInfo("%s: %s", labels.Resolve(string(o)), progress.FormatCount(n)) //nolint:errcheck
		}
	}

	return nil
}
