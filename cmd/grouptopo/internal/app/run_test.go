package app

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCmd_ReadsStdinWritesStdout(t *testing.T) {
	input := `[
		{"provides": "a", "ddeps": [], "ideal_path": ["x"]},
		{"provides": "b", "ddeps": [], "ideal_path": ["y"]}
	]`

	cmd := runCmd
	cmd.SetIn(strings.NewReader(input))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	err := cmd.RunE(cmd, nil)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", out.String())
}

func TestRunCmd_MissingFileReturnsError(t *testing.T) {
	cmd := runCmd
	var out bytes.Buffer
	cmd.SetOut(&out)

	err := cmd.RunE(cmd, []string{"/no/such/file.json"})
	assert.Error(t, err)
}

// TestRunCmd_DefaultWarnThresholdWarnsOnStderr asserts that the default
// --warn-threshold of 0 still wires the diagnostic writer in, so the
// permutation-search warning reaches stderr without any flag passed.
func TestRunCmd_DefaultWarnThresholdWarnsOnStderr(t *testing.T) {
	input := `[
		{"provides": "foo", "ddeps": ["bar", "other"], "ideal_path": ["top", "midShared", "bottom"]},
		{"provides": "bar", "ddeps": [], "ideal_path": ["top", "midShared"]},
		{"provides": "other", "ddeps": ["bar"], "ideal_path": ["top", "midOther"]}
	]`

	cmd := runCmd
	flagWarnThreshold = 0
	cmd.SetIn(strings.NewReader(input))
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	err := cmd.RunE(cmd, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, errOut.String(), "the default threshold must still warn on stderr, not silently disable the diagnostic")
}
