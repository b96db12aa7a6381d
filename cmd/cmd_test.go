package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubcommandsRegistered(t *testing.T) {
	for _, name := range []string{"score", "axes", "weights", "version"} {
		found, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, found.Name())
	}
}

func TestRootFlagsDefaults(t *testing.T) {
	flags := rootCmd.PersistentFlags()

	alpha, err := flags.GetFloat64("alpha")
	require.NoError(t, err)
	assert.InDelta(t, 1.7, alpha, 1e-12)

	idColumn, err := flags.GetString("id-column")
	require.NoError(t, err)
	assert.Equal(t, "Code", idColumn)

	ignored, err := flags.GetString("ignore-columns")
	require.NoError(t, err)
	assert.Equal(t, "Patient", ignored)

	weights, err := flags.GetStringArray("weight")
	require.NoError(t, err)
	assert.Empty(t, weights)

	assert.NotNil(t, scoreCmd.Flags().Lookup("sheet"))
}

func TestScoreRequiresOneFile(t *testing.T) {
	assert.Error(t, scoreCmd.Args(scoreCmd, nil))
	assert.Error(t, scoreCmd.Args(scoreCmd, []string{"a.csv", "b.csv"}))
	assert.NoError(t, scoreCmd.Args(scoreCmd, []string{"a.csv"}))
}
