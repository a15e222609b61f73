package adapters

import (
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"license-audit/internal/ports"
	"license-audit/internal/types"
)

// ManagerDetectAdapter picks the package manager from lockfiles when the
// configuration says "auto". Probe order matters: yarn and pnpm projects
// usually also carry a package.json, so their lockfiles win.
type ManagerDetectAdapter struct{}

func NewManagerDetectAdapter() ManagerDetectAdapter {
	return ManagerDetectAdapter{}
}

func (a ManagerDetectAdapter) Detect(dir string, configured types.PackageManager) (types.PackageManager, error) {
	if configured != "" && configured != types.PackageManagerAuto {
		return configured, nil
	}
	if fileExists(filepath.Join(dir, "yarn.lock")) {
		return types.PackageManagerYarn, nil
	}
	if fileExists(filepath.Join(dir, "pnpm-lock.yaml")) {
		return types.PackageManagerPnpm, nil
	}
	if fileExists(filepath.Join(dir, "package.json")) || fileExists(filepath.Join(dir, "package-lock.json")) {
		return types.PackageManagerNpm, nil
	}
	return "", errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg("no supported package manager found in " + dir)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

var _ ports.ManagerDetectorPort = ManagerDetectAdapter{}
