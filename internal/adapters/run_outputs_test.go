package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunOutputsWritesSortedPairs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "outputs")
	outputs := NewRunOutputsAdapter(path)

	require.NoError(t, outputs.WriteOutputs(map[string]string{
		"violations-count": "2",
		"has-violations":   "true",
		"report-path":      "/tmp/license-report.md",
	}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"has-violations=true\nreport-path=/tmp/license-report.md\nviolations-count=2\n",
		string(data))
}

func TestRunOutputsAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "outputs")
	require.NoError(t, os.WriteFile(path, []byte("existing=1\n"), 0644))
	outputs := NewRunOutputsAdapter(path)

	require.NoError(t, outputs.WriteOutputs(map[string]string{"new": "2"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "existing=1\nnew=2\n", string(data))
}

func TestRunOutputsDisabledWithoutPath(t *testing.T) {
	outputs := NewRunOutputsAdapter("")
	assert.NoError(t, outputs.WriteOutputs(map[string]string{"k": "v"}))
}
