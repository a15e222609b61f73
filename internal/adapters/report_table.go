package adapters

import (
	"fmt"
	"strings"
	"time"

	"license-audit/internal/ports"
	"license-audit/internal/types"
)

// TableReportAdapter renders the report as a Markdown document. Section
// order is fixed (violations, unknown, allowed) and empty sections are
// omitted entirely.
type TableReportAdapter struct{}

func NewTableReportAdapter() TableReportAdapter {
	return TableReportAdapter{}
}

func (a TableReportAdapter) Render(report types.Report, generatedAt time.Time) (string, error) {
	var b strings.Builder
	b.WriteString("# 📦 License Compliance Report\n\n")
	fmt.Fprintf(&b, "**Total Dependencies:** %d\n", report.Summary.Total)
	fmt.Fprintf(&b, "**License Violations:** %d\n", report.Summary.Violations)
	fmt.Fprintf(&b, "**Allowed Licenses:** %d\n", report.Summary.Allowed)
	fmt.Fprintf(&b, "**Unknown Licenses:** %d\n", report.Summary.Unknown)

	writeSection(&b, "## ❌ License Violations", "❌ Blocked", report.Violations)
	writeSection(&b, "## ⚠️ Unknown Licenses", "⚠️ Unknown", report.Unknown)
	writeSection(&b, "## ✅ Allowed Licenses", "✅ Allowed", report.Allowed)

	fmt.Fprintf(&b, "\n_Generated at %s_\n", generatedAt.UTC().Format(time.RFC3339))
	return b.String(), nil
}

func writeSection(b *strings.Builder, heading string, status string, packages []types.ClassifiedPackage) {
	if len(packages) == 0 {
		return
	}
	b.WriteString("\n" + heading + "\n\n")
	b.WriteString("| Package | License | Status |\n")
	b.WriteString("|---------|---------|--------|\n")
	for _, pkg := range packages {
		fmt.Fprintf(b, "| %s | %s | %s |\n", pkg.Name, pkg.License, status)
	}
}

var _ ports.ReportRendererPort = TableReportAdapter{}
