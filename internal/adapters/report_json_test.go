package adapters

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"license-audit/internal/types"
)

type jsonReportPayload struct {
	Timestamp  string                    `json:"timestamp"`
	Summary    types.Summary             `json:"summary"`
	Violations []types.ClassifiedPackage `json:"violations"`
	Allowed    []types.ClassifiedPackage `json:"allowed"`
	Unknown    []types.ClassifiedPackage `json:"unknown"`
}

func TestJSONReportRoundTrip(t *testing.T) {
	content, err := NewJSONReportAdapter().Render(reportFixture, fixedTime)
	require.NoError(t, err)

	var payload jsonReportPayload
	require.NoError(t, json.Unmarshal([]byte(content), &payload))

	assert.Equal(t, "2026-02-03T04:05:06Z", payload.Timestamp)
	assert.Equal(t, payload.Summary.Total,
		len(payload.Violations)+len(payload.Allowed)+len(payload.Unknown))
	if diff := cmp.Diff(reportFixture.Violations, payload.Violations); diff != "" {
		t.Fatalf("unexpected violations (-want +got):\n%s", diff)
	}
}

func TestJSONReportEmptyBucketsAreArrays(t *testing.T) {
	report := types.Report{
		Violations: []types.ClassifiedPackage{},
		Allowed:    []types.ClassifiedPackage{},
		Unknown:    []types.ClassifiedPackage{},
	}
	content, err := NewJSONReportAdapter().Render(report, fixedTime)
	require.NoError(t, err)

	assert.Contains(t, content, `"violations": []`)
	assert.Contains(t, content, `"allowed": []`)
	assert.Contains(t, content, `"unknown": []`)
	assert.NotContains(t, content, "null")
}
