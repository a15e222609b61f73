package ports

import "context"

// LicenseResolverPort determines the declared license of an installed
// package. It never fails; unresolvable licenses come back as the
// "Unknown" sentinel.
type LicenseResolverPort interface {
	ResolveLicense(ctx context.Context, projectDir string, pkg string) string
}
