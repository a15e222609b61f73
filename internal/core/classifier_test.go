package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"license-audit/internal/policies"
	"license-audit/internal/types"
)

func newTestClassifier(t *testing.T) Classifier {
	t.Helper()
	policy, err := policies.NewLicensePolicy([]string{"MIT"}, []string{"GPL-3.0"})
	require.NoError(t, err)
	return NewClassifier(policy)
}

func TestClassifyPartitionsPackages(t *testing.T) {
	classifier := newTestClassifier(t)
	state := NewReportState()

	classifier.Classify(t.Context(), state, "a", "MIT")
	classifier.Classify(t.Context(), state, "b", "GPL-3.0")
	classifier.Classify(t.Context(), state, "c", "")

	report := FinalizeReport(state)
	assert.Equal(t, 3, report.Summary.Total)
	assert.Equal(t, report.Summary.Total,
		report.Summary.Violations+report.Summary.Allowed+report.Summary.Unknown)

	want := types.Report{
		Summary:    types.Summary{Total: 3, Violations: 1, Allowed: 1, Unknown: 1},
		Violations: []types.ClassifiedPackage{{Name: "b", License: "GPL-3.0", NormalizedLicense: "GPL30"}},
		Allowed:    []types.ClassifiedPackage{{Name: "a", License: "MIT", NormalizedLicense: "MIT"}},
		Unknown:    []types.ClassifiedPackage{{Name: "c", License: "", NormalizedLicense: ""}},
	}
	if diff := cmp.Diff(want, report); diff != "" {
		t.Fatalf("unexpected report (-want +got):\n%s", diff)
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	classifier := newTestClassifier(t)
	pairs := []struct{ name, license string }{
		{"a", "MIT"}, {"b", "GPL-3.0"}, {"c", "MIT-0"}, {"d", "Unknown"},
	}

	first := NewReportState()
	second := NewReportState()
	for _, pair := range pairs {
		classifier.Classify(t.Context(), first, pair.name, pair.license)
	}
	for _, pair := range pairs {
		classifier.Classify(t.Context(), second, pair.name, pair.license)
	}

	if diff := cmp.Diff(FinalizeReport(first), FinalizeReport(second)); diff != "" {
		t.Fatalf("classification not deterministic (-first +second):\n%s", diff)
	}
}

func TestClassifyBlockedPrecedence(t *testing.T) {
	policy, err := policies.NewLicensePolicy([]string{"MIT"}, []string{"MIT"})
	require.NoError(t, err)
	classifier := NewClassifier(policy)
	state := NewReportState()

	status := classifier.Classify(t.Context(), state, "a", "MIT")
	assert.Equal(t, types.LicenseStatusViolation, status)
	assert.Len(t, state.Violations, 1)
	assert.Empty(t, state.Allowed)
}

func TestFinalizeReportSnapshotsState(t *testing.T) {
	classifier := newTestClassifier(t)
	state := NewReportState()
	classifier.Classify(t.Context(), state, "a", "MIT")

	report := FinalizeReport(state)
	classifier.Classify(t.Context(), state, "b", "MIT")

	assert.Len(t, report.Allowed, 1)
	assert.Equal(t, 1, report.Summary.Total)
}

func TestFinalizeReportEmptyBucketsAreNonNil(t *testing.T) {
	report := FinalizeReport(NewReportState())
	assert.NotNil(t, report.Violations)
	assert.NotNil(t, report.Allowed)
	assert.NotNil(t, report.Unknown)
	assert.Equal(t, 0, report.Summary.Total)
}
