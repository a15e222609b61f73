package adapters

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"license-audit/internal/types"
)

var reportFixture = types.Report{
	Summary: types.Summary{Total: 3, Violations: 1, Allowed: 1, Unknown: 1},
	Violations: []types.ClassifiedPackage{
		{Name: "b", License: "GPL-3.0", NormalizedLicense: "GPL30"},
	},
	Allowed: []types.ClassifiedPackage{
		{Name: "a", License: "MIT", NormalizedLicense: "MIT"},
	},
	Unknown: []types.ClassifiedPackage{
		{Name: "c", License: "Unknown", NormalizedLicense: "UNKNOWN"},
	},
}

var fixedTime = time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)

func TestTableReportSections(t *testing.T) {
	content, err := NewTableReportAdapter().Render(reportFixture, fixedTime)
	require.NoError(t, err)

	assert.Contains(t, content, "**Total Dependencies:** 3")
	assert.Contains(t, content, "**License Violations:** 1")
	assert.Contains(t, content, "**Allowed Licenses:** 1")
	assert.Contains(t, content, "**Unknown Licenses:** 1")
	assert.Contains(t, content, "| b | GPL-3.0 | ❌ Blocked |")
	assert.Contains(t, content, "| c | Unknown | ⚠️ Unknown |")
	assert.Contains(t, content, "| a | MIT | ✅ Allowed |")

	// Fixed section order: violations, unknown, allowed.
	violationsAt := strings.Index(content, "## ❌ License Violations")
	unknownAt := strings.Index(content, "## ⚠️ Unknown Licenses")
	allowedAt := strings.Index(content, "## ✅ Allowed Licenses")
	assert.Less(t, violationsAt, unknownAt)
	assert.Less(t, unknownAt, allowedAt)
}

func TestTableReportOmitsEmptySections(t *testing.T) {
	report := types.Report{
		Summary: types.Summary{Total: 1, Allowed: 1},
		Allowed: []types.ClassifiedPackage{{Name: "a", License: "MIT", NormalizedLicense: "MIT"}},
	}
	content, err := NewTableReportAdapter().Render(report, fixedTime)
	require.NoError(t, err)

	assert.NotContains(t, content, "## ❌ License Violations")
	assert.NotContains(t, content, "## ⚠️ Unknown Licenses")
	assert.Contains(t, content, "## ✅ Allowed Licenses")
}

func TestTableReportTimestamp(t *testing.T) {
	content, err := NewTableReportAdapter().Render(reportFixture, fixedTime)
	require.NoError(t, err)
	assert.Contains(t, content, "2026-02-03T04:05:06Z")
}
