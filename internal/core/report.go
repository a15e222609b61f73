package core

import "license-audit/internal/types"

// FinalizeReport snapshots the accumulated state into an immutable
// report. Buckets are copied so later state mutation cannot leak into a
// rendered report, and empty buckets come out as non-nil slices so JSON
// renders them as [] rather than null.
func FinalizeReport(state *ReportState) types.Report {
	report := types.Report{
		Violations: append([]types.ClassifiedPackage{}, state.Violations...),
		Allowed:    append([]types.ClassifiedPackage{}, state.Allowed...),
		Unknown:    append([]types.ClassifiedPackage{}, state.Unknown...),
	}
	report.Summary = types.Summary{
		Violations: len(report.Violations),
		Allowed:    len(report.Allowed),
		Unknown:    len(report.Unknown),
	}
	report.Summary.Total = report.Summary.Violations + report.Summary.Allowed + report.Summary.Unknown
	return report
}
