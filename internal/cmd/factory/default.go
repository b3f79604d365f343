// Package factory wires the real dependencies behind cmdutil.Factory.
package factory

import (
	"os"
	"sync"

	"github.com/schmitthub/shuttle/internal/cmdutil"
	"github.com/schmitthub/shuttle/internal/config"
	"github.com/schmitthub/shuttle/internal/iostreams"
)

// New creates a fully-wired Factory with lazy-initialized dependency
// closures. Called exactly once at the CLI entry point. Tests should NOT
// import this package — construct &cmdutil.Factory{} directly.
func New(version, buildDate string) *cmdutil.Factory {
	ios := iostreams.NewIOStreams()

	// Respect NO_COLOR (https://no-color.org/) and redirected output.
	if !ios.IsOutputTTY() || os.Getenv("NO_COLOR") != "" {
		ios.SetColorEnabled(false)
	}

	f := &cmdutil.Factory{
		Version:   version,
		BuildDate: buildDate,
		IOStreams: ios,
	}

	// --- Lazy dependency closures ---

	var (
		loaderOnce sync.Once
		loader     *config.SettingsLoader
		loaderErr  error
	)
	f.SettingsLoader = func() (*config.SettingsLoader, error) {
		loaderOnce.Do(func() {
			loader, loaderErr = config.NewSettingsLoader()
		})
		return loader, loaderErr
	}

	var (
		settingsOnce sync.Once
		settings     *config.Settings
		settingsErr  error
	)
	f.Settings = func() (*config.Settings, error) {
		settingsOnce.Do(func() {
			l, err := f.SettingsLoader()
			if err != nil {
				settingsErr = err
				return
			}
			settings, settingsErr = l.Load()
		})
		return settings, settingsErr
	}

	return f
}
