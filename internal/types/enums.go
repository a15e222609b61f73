package types

type PackageManager string

const (
	PackageManagerNpm  PackageManager = "npm"
	PackageManagerYarn PackageManager = "yarn"
	PackageManagerPnpm PackageManager = "pnpm"
	PackageManagerAuto PackageManager = "auto"
)

type ReportFormat string

const (
	ReportFormatTable ReportFormat = "table"
	ReportFormatJSON  ReportFormat = "json"
	ReportFormatSarif ReportFormat = "sarif"
)

type LicenseStatus string

const (
	LicenseStatusViolation LicenseStatus = "violation"
	LicenseStatusAllowed   LicenseStatus = "allowed"
	LicenseStatusUnknown   LicenseStatus = "unknown"
)
