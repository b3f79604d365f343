// Package shuttle is the CLI entry point: factory wiring, root command
// execution and exit-code mapping.
package shuttle

import (
	"errors"

	"github.com/schmitthub/shuttle/internal/cmd/factory"
	"github.com/schmitthub/shuttle/internal/cmd/root"
	"github.com/schmitthub/shuttle/internal/cmdutil"
	"github.com/schmitthub/shuttle/internal/logger"
)

// Build-time variables injected via ldflags
var (
	Version   = "dev"
	BuildDate = ""
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// Main is the entry point for the shuttle CLI.
// It initializes the Factory, creates the root command, and executes it.
func Main() int {
	// Ensure logs are flushed on exit
	defer logger.CloseFileWriter() //nolint:errcheck

	f := factory.New(Version, BuildDate)

	rootCmd := root.NewCmdRoot(f)

	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, cmdutil.SilentError) {
			return exitError
		}

		var flagErr *cmdutil.FlagError
		if errors.As(err, &flagErr) {
			return exitUsage
		}

		return exitError
	}

	return exitOK
}
