package app

import (
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"license-audit/internal/types"
)

// parseReportFormat validates the requested output format before any
// scanning work begins. Matching is case-insensitive.
func parseReportFormat(value string) (types.ReportFormat, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", string(types.ReportFormatTable):
		return types.ReportFormatTable, nil
	case string(types.ReportFormatJSON):
		return types.ReportFormatJSON, nil
	case string(types.ReportFormatSarif):
		return types.ReportFormatSarif, nil
	default:
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output format must be table, json or sarif")
	}
}

func parsePackageManager(value string) (types.PackageManager, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", string(types.PackageManagerAuto):
		return types.PackageManagerAuto, nil
	case string(types.PackageManagerNpm):
		return types.PackageManagerNpm, nil
	case string(types.PackageManagerYarn):
		return types.PackageManagerYarn, nil
	case string(types.PackageManagerPnpm):
		return types.PackageManagerPnpm, nil
	default:
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("package manager must be npm, yarn, pnpm or auto")
	}
}
