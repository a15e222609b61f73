package adapters

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"license-audit/internal/ports"
	"license-audit/internal/types"
)

const reportBaseName = "license-report"

// ReportFileAdapter persists a rendered report with an extension that
// matches its format.
type ReportFileAdapter struct{}

func NewReportFileAdapter() ReportFileAdapter {
	return ReportFileAdapter{}
}

func (a ReportFileAdapter) WriteReport(dir string, format types.ReportFormat, content string) (string, error) {
	if strings.TrimSpace(dir) == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is empty")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create output directory").
			WithCause(err)
	}
	path := filepath.Join(dir, reportBaseName+reportExtension(format))
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write report file").
			WithCause(err)
	}
	return path, nil
}

func reportExtension(format types.ReportFormat) string {
	switch format {
	case types.ReportFormatJSON:
		return ".json"
	case types.ReportFormatSarif:
		return ".sarif"
	default:
		return ".md"
	}
}

var _ ports.ReportWriterPort = ReportFileAdapter{}
