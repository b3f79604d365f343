// Package root builds the shuttle root command.
package root

import (
	"github.com/spf13/cobra"

	"github.com/schmitthub/shuttle/internal/cmd/simulate"
	versioncmd "github.com/schmitthub/shuttle/internal/cmd/version"
	"github.com/schmitthub/shuttle/internal/cmdutil"
	"github.com/schmitthub/shuttle/internal/logger"
)

// NewCmdRoot creates the root command for the shuttle CLI.
func NewCmdRoot(f *cmdutil.Factory) *cobra.Command {
	var (
		debug   bool
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "shuttle",
		Short: "Live terminal progress console for data-migration runs",
		Long: `Shuttle renders the progress of a data-migration pipeline live in the
terminal: per-outcome result tables, migration/cleanup/deletion
percentages, all updated in place with throttled repaints.

Attach it to a pipeline via the progress.Listener interface, or try it
standalone:

  shuttle simulate       # scripted demo run
  shuttle simulate --segments 4 --entities 1000 --delay 2ms`,
		SilenceUsage: true,
		Annotations: map[string]string{
			"versionInfo": versioncmd.Format(f.Version, f.BuildDate),
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				f.IOStreams.SetColorEnabled(false)
			}

			initializeLogger(f, debug)

			logger.Debug().
				Str("version", f.Version).
				Bool("debug", debug).
				Msg("shuttle starting")

			return nil
		},
		Version: f.Version,
	}

	cmd.SetVersionTemplate(`{{index .Annotations "versionInfo"}}`)

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	cmd.AddCommand(versioncmd.NewCmdVersion(f))
	cmd.AddCommand(simulate.NewCmdSimulate(f))

	return cmd
}

// initializeLogger sets up file logging from settings when possible,
// falling back to console-only. Settings failures are not fatal here; the
// command itself will surface them.
func initializeLogger(f *cmdutil.Factory, debug bool) {
	loader, err := f.SettingsLoader()
	if err != nil {
		logger.Init(debug)
		return
	}

	settings, err := f.Settings()
	if err != nil {
		logger.Init(debug)
		return
	}

	if err := logger.InitWithFile(debug, loader.LogsDir(settings), settings.Logging.ToLoggerConfig()); err != nil {
		logger.Init(debug)
	}
}
