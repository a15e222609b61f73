package app

import (
	"time"

	"license-audit/internal/adapters"
	"license-audit/internal/ports"
	"license-audit/internal/types"
)

type Service struct {
	Runner          ports.ProcessRunnerPort
	Detector        ports.ManagerDetectorPort
	LicenseResolver ports.LicenseResolverPort
	PolicySource    ports.PolicySourcePort
	ReportWriter    ports.ReportWriterPort
	RunOutputs      ports.RunOutputsPort
	IssueCreator    ports.IssueCreatorPort
	Clock           func() time.Time
}

func NewService() Service {
	return Service{
		Runner:          adapters.NewExecRunnerAdapter(),
		Detector:        adapters.NewManagerDetectAdapter(),
		LicenseResolver: adapters.NewNodeModulesLicenseAdapter(),
		PolicySource:    adapters.NewPolicyFileAdapter(),
		ReportWriter:    adapters.NewReportFileAdapter(),
		Clock:           time.Now,
	}
}

func (s Service) treeLister(manager types.PackageManager) ports.TreeListerPort {
	if manager == types.PackageManagerYarn {
		return adapters.NewYarnTreeAdapter(s.Runner)
	}
	return adapters.NewNestedTreeAdapter(s.Runner, manager)
}

func rendererFor(format types.ReportFormat) ports.ReportRendererPort {
	switch format {
	case types.ReportFormatJSON:
		return adapters.NewJSONReportAdapter()
	case types.ReportFormatSarif:
		return adapters.NewSarifReportAdapter()
	default:
		return adapters.NewTableReportAdapter()
	}
}
