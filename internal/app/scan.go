package app

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"license-audit/internal/adapters"
	"license-audit/internal/core"
	"license-audit/internal/policies"
	"license-audit/internal/types"
)

const violationIssueTitle = "License policy violations detected"

// Scan runs the full audit: detect the package manager, flatten the
// dependency tree, resolve and classify every license, render and
// persist the report, publish run outputs, optionally file an issue,
// and finally fail on violations when requested. The report artifact
// and outputs are always written before the policy failure is raised.
func (s Service) Scan(ctx context.Context, req ScanRequest) (ScanResult, error) {
	format, err := parseReportFormat(req.OutputFormat)
	if err != nil {
		return ScanResult{}, err
	}
	configured, err := parsePackageManager(req.PackageManager)
	if err != nil {
		return ScanResult{}, err
	}
	policy, err := s.buildPolicy(req.AllowedLicenses, req.BlockedLicenses, req.PolicyFile)
	if err != nil {
		return ScanResult{}, err
	}
	dir := strings.TrimSpace(req.Path)
	if dir == "" {
		dir = "."
	}
	outputDir := strings.TrimSpace(req.OutputDir)
	if outputDir == "" {
		outputDir = "."
	}

	manager, err := s.Detector.Detect(dir, configured)
	if err != nil {
		return ScanResult{}, err
	}
	log.Ctx(ctx).Info().Str("manager", string(manager)).Str("path", dir).Msg("scanning dependencies")

	packages, err := s.listPackages(ctx, dir, manager, req.IncludeDevDependencies)
	if err != nil {
		return ScanResult{}, err
	}

	// Resolution runs one package at a time, in name order, so logs and
	// bucket contents are deterministic.
	names := make([]string, 0, len(packages))
	for name := range packages {
		names = append(names, name)
	}
	sort.Strings(names)

	classifier := core.NewClassifier(policy)
	state := core.NewReportState()
	for _, name := range names {
		license := s.LicenseResolver.ResolveLicense(ctx, dir, name)
		classifier.Classify(ctx, state, name, license)
	}
	report := core.FinalizeReport(state)

	renderer := rendererFor(format)
	content, err := renderer.Render(report, s.Clock())
	if err != nil {
		return ScanResult{}, err
	}
	reportPath, err := s.ReportWriter.WriteReport(outputDir, format, content)
	if err != nil {
		return ScanResult{}, err
	}
	result := ScanResult{Manager: manager, Report: report, ReportPath: reportPath}

	s.publishOutputs(ctx, report, reportPath)
	s.maybeCreateIssue(ctx, req, report)

	if req.FailOnBlocked && report.Summary.Violations > 0 {
		return result, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("%d license violations found", report.Summary.Violations))
	}
	return result, nil
}

// buildPolicy merges flag tokens with an optional policy file.
func (s Service) buildPolicy(allowed []string, blocked []string, policyFile string) (policies.LicensePolicy, error) {
	if strings.TrimSpace(policyFile) != "" {
		filePolicy, err := s.PolicySource.LoadPolicy(policyFile)
		if err != nil {
			return policies.LicensePolicy{}, err
		}
		allowed = append(append([]string{}, allowed...), filePolicy.Allowed...)
		blocked = append(append([]string{}, blocked...), filePolicy.Blocked...)
	}
	return policies.NewLicensePolicy(allowed, blocked)
}

// listPackages flattens the dependency tree, falling back to the direct
// dependencies in package.json when the manager listing fails.
func (s Service) listPackages(ctx context.Context, dir string, manager types.PackageManager, includeDev bool) (map[string]string, error) {
	packages, err := s.treeLister(manager).ListPackages(ctx, dir, includeDev)
	if err == nil {
		return packages, nil
	}
	log.Ctx(ctx).Warn().Err(err).Msg("dependency listing failed, falling back to manifest dependencies")
	packages, fallbackErr := adapters.NewManifestFallbackAdapter().ListDirect(dir, includeDev)
	if fallbackErr != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to list dependencies").
			WithCause(fallbackErr)
	}
	return packages, nil
}

func (s Service) publishOutputs(ctx context.Context, report types.Report, reportPath string) {
	if s.RunOutputs == nil {
		return
	}
	err := s.RunOutputs.WriteOutputs(map[string]string{
		"violations-count": strconv.Itoa(report.Summary.Violations),
		"allowed-count":    strconv.Itoa(report.Summary.Allowed),
		"unknown-count":    strconv.Itoa(report.Summary.Unknown),
		"has-violations":   strconv.FormatBool(report.Summary.Violations > 0),
		"report-path":      reportPath,
	})
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Msg("failed to publish run outputs")
	}
}

// maybeCreateIssue files a tracker issue with the table report as body.
// Issue creation failures are logged and never abort the run.
func (s Service) maybeCreateIssue(ctx context.Context, req ScanRequest, report types.Report) {
	if !req.CreateIssue || report.Summary.Violations == 0 || s.IssueCreator == nil {
		return
	}
	body, err := adapters.NewTableReportAdapter().Render(report, s.Clock())
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Msg("failed to render issue body")
		return
	}
	if err := s.IssueCreator.CreateIssue(ctx, violationIssueTitle, body); err != nil {
		log.Ctx(ctx).Warn().Err(err).Msg("failed to create issue")
		return
	}
	log.Ctx(ctx).Info().Msg("violation issue created")
}
