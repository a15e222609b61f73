package ports

import (
	"context"

	"license-audit/internal/types"
)

// TreeListerPort flattens a package manager's dependency tree into a
// package name to version mapping, deduplicating repeated packages.
type TreeListerPort interface {
	ListPackages(ctx context.Context, dir string, includeDev bool) (map[string]string, error)
}

// ManagerDetectorPort picks the package manager for a project directory.
type ManagerDetectorPort interface {
	Detect(dir string, configured types.PackageManager) (types.PackageManager, error)
}
