package adapters

import (
	"encoding/json"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"license-audit/internal/ports"
	"license-audit/internal/types"
)

// JSONReportAdapter renders the report as a single JSON object with a
// generation timestamp, summary counts and the three buckets verbatim.
type JSONReportAdapter struct{}

func NewJSONReportAdapter() JSONReportAdapter {
	return JSONReportAdapter{}
}

func (a JSONReportAdapter) Render(report types.Report, generatedAt time.Time) (string, error) {
	payload := struct {
		Timestamp  string                    `json:"timestamp"`
		Summary    types.Summary             `json:"summary"`
		Violations []types.ClassifiedPackage `json:"violations"`
		Allowed    []types.ClassifiedPackage `json:"allowed"`
		Unknown    []types.ClassifiedPackage `json:"unknown"`
	}{
		Timestamp:  generatedAt.UTC().Format(time.RFC3339),
		Summary:    report.Summary,
		Violations: report.Violations,
		Allowed:    report.Allowed,
		Unknown:    report.Unknown,
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to marshal json report").
			WithCause(err)
	}
	return string(data) + "\n", nil
}

var _ ports.ReportRendererPort = JSONReportAdapter{}
