package simulate

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schmitthub/shuttle/internal/cmdutil"
	"github.com/schmitthub/shuttle/internal/config"
	"github.com/schmitthub/shuttle/internal/iostreams/iostreamstest"
)

func testFactory(ios *iostreamstest.TestIOStreams, settings *config.Settings) *cmdutil.Factory {
	if settings == nil {
		settings = &config.Settings{
			Color:          config.ColorAuto,
			RedrawInterval: config.DefaultRedrawInterval,
		}
	}
	return &cmdutil.Factory{
		IOStreams: ios.IOStreams,
		Settings: func() (*config.Settings, error) {
			return settings, nil
		},
	}
}

func runCommand(t *testing.T, ios *iostreamstest.TestIOStreams, settings *config.Settings, args ...string) error {
	t.Helper()
	cmd := NewCmdSimulate(testFactory(ios, settings))
	cmd.SetArgs(args)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	return cmd.Execute()
}

func TestSimulateRunsToCompletion(t *testing.T) {
	ios := iostreamstest.New()

	err := runCommand(t, ios, nil,
		"--segments", "1",
		"--entities", "20",
		"--orphans", "5",
		"--gc=false",
		"--delay", "0s",
		"--seed", "42",
	)
	require.NoError(t, err)

	out := ios.OutBuf.String()
	assert.Contains(t, out, "Segment 1/1")
	assert.Contains(t, out, "LEGACY → UNIFIED")
	assert.Contains(t, out, "Migration progress:")
	assert.Contains(t, out, "100.00%")

	errOut := ios.ErrBuf.String()
	assert.Contains(t, errOut, "[ok] run")
	assert.Contains(t, errOut, "finished in")
}

func TestSimulateWithGarbageCollection(t *testing.T) {
	ios := iostreamstest.New()

	err := runCommand(t, ios, nil,
		"--segments", "1",
		"--entities", "20",
		"--delay", "0s",
		"--seed", "7",
	)
	require.NoError(t, err)

	out := ios.OutBuf.String()
	assert.Contains(t, out, "Segment 2/2")
	assert.Contains(t, out, "garbage collection")
}

func TestSimulateLabelOverridesFromSettings(t *testing.T) {
	ios := iostreamstest.New()
	settings := &config.Settings{
		Color:          config.ColorAuto,
		RedrawInterval: config.DefaultRedrawInterval,
		Labels:         map[string]string{"migration": "Datenmigration"},
	}

	err := runCommand(t, ios, settings,
		"--segments", "1", "--gc=false", "--entities", "5", "--delay", "0s", "--seed", "1",
	)
	require.NoError(t, err)
	assert.Contains(t, ios.OutBuf.String(), "Datenmigration")
}

func TestSimulateColorNeverFromSettings(t *testing.T) {
	ios := iostreamstest.New()
	ios.SetColorEnabled(true)
	settings := &config.Settings{
		Color:          config.ColorNever,
		RedrawInterval: config.DefaultRedrawInterval,
	}

	err := runCommand(t, ios, settings,
		"--segments", "1", "--gc=false", "--entities", "5", "--delay", "0s", "--seed", "1",
	)
	require.NoError(t, err)
	assert.False(t, ios.ColorEnabled())
}

func TestSimulateColorFlagOverridesSettings(t *testing.T) {
	ios := iostreamstest.New()
	settings := &config.Settings{
		Color:          config.ColorAlways,
		RedrawInterval: config.DefaultRedrawInterval,
	}

	err := runCommand(t, ios, settings,
		"--color", "never",
		"--segments", "1", "--gc=false", "--entities", "5", "--delay", "0s", "--seed", "1",
	)
	require.NoError(t, err)
	assert.False(t, ios.ColorEnabled(), "the flag wins over the settings file")
}

func TestSimulateFlagValidation(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"zero segments", []string{"--segments", "0"}, "--segments must be at least 1"},
		{"negative entities", []string{"--entities", "-5"}, "--entities must not be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ios := iostreamstest.New()
			err := runCommand(t, ios, nil, tt.args...)
			require.Error(t, err)

			var flagErr *cmdutil.FlagError
			require.ErrorAs(t, err, &flagErr)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
