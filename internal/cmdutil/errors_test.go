package cmdutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlagErrorf(t *testing.T) {
	err := FlagErrorf("--segments must be at least 1, got %d", 0)

	var flagErr *FlagError
	require.ErrorAs(t, err, &flagErr)
	assert.Equal(t, "--segments must be at least 1, got 0", err.Error())
}

func TestFlagErrorWrapPreservesChain(t *testing.T) {
	inner := errors.New("bad duration")
	err := FlagErrorWrap(fmt.Errorf("parse --delay: %w", inner))

	var flagErr *FlagError
	require.ErrorAs(t, err, &flagErr)
	assert.ErrorIs(t, err, inner)
}

func TestSilentError(t *testing.T) {
	wrapped := fmt.Errorf("context: %w", SilentError)
	assert.ErrorIs(t, wrapped, SilentError)
}
