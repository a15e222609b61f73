package ports

import (
	"time"

	"license-audit/internal/types"
)

// ReportRendererPort renders a finished report into one output format.
type ReportRendererPort interface {
	Render(report types.Report, generatedAt time.Time) (string, error)
}

// ReportWriterPort persists a rendered report and returns the path it
// was written to.
type ReportWriterPort interface {
	WriteReport(dir string, format types.ReportFormat, content string) (string, error)
}

// RunOutputsPort publishes run outputs to the hosting CI environment.
type RunOutputsPort interface {
	WriteOutputs(values map[string]string) error
}
