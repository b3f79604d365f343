package cmdutil

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringEnumFlag(t *testing.T) {
	newCmd := func(p *string) *cobra.Command {
		cmd := &cobra.Command{
			Use: "probe",
			Run: func(*cobra.Command, []string) {},
		}
		StringEnumFlag(cmd, p, "color", "", "auto", []string{"auto", "always", "never"}, "Color mode")
		return cmd
	}

	t.Run("default applies", func(t *testing.T) {
		var got string
		cmd := newCmd(&got)
		cmd.SetArgs([]string{})
		require.NoError(t, cmd.Execute())
		assert.Equal(t, "auto", got)
		assert.False(t, cmd.Flags().Changed("color"))
	})

	t.Run("accepts listed value", func(t *testing.T) {
		var got string
		cmd := newCmd(&got)
		cmd.SetArgs([]string{"--color", "never"})
		require.NoError(t, cmd.Execute())
		assert.Equal(t, "never", got)
		assert.True(t, cmd.Flags().Changed("color"))
	})

	t.Run("rejects unlisted value", func(t *testing.T) {
		var got string
		cmd := newCmd(&got)
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		cmd.SetArgs([]string{"--color", "sometimes"})
		err := cmd.Execute()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "valid values are {auto|always|never}")
	})

	t.Run("usage names the valid set", func(t *testing.T) {
		var got string
		cmd := newCmd(&got)
		flag := cmd.Flags().Lookup("color")
		require.NotNil(t, flag)
		assert.Equal(t, "Color mode: {auto|always|never}", flag.Usage)
	})
}
