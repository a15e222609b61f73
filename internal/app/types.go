package app

import "license-audit/internal/types"

type ScanRequest struct {
	Path                   string
	PackageManager         string
	AllowedLicenses        []string
	BlockedLicenses        []string
	PolicyFile             string
	IncludeDevDependencies bool
	OutputFormat           string
	OutputDir              string
	FailOnBlocked          bool
	CreateIssue            bool
}

type ScanResult struct {
	Manager    types.PackageManager
	Report     types.Report
	ReportPath string
}

type ValidateRequest struct {
	OutputFormat    string
	PackageManager  string
	AllowedLicenses []string
	BlockedLicenses []string
	PolicyFile      string
}

type ValidateResult struct {
	AllowedTokens int
	BlockedTokens int
}
