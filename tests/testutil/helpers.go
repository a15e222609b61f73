// Package testutil provides shared test helpers used across integration
// and unit test packages.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteManifest writes a package.json into dir with the given direct and
// development dependencies.
func WriteManifest(t *testing.T, dir string, deps map[string]string, devDeps map[string]string) {
	t.Helper()
	manifest := map[string]interface{}{
		"name":    filepath.Base(dir),
		"version": "1.0.0",
	}
	if len(deps) > 0 {
		manifest["dependencies"] = deps
	}
	if len(devDeps) > 0 {
		manifest["devDependencies"] = devDeps
	}
	content, err := json.Marshal(manifest)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), content, 0644))
}

// InstallPackage creates node_modules/<name> in projectDir with a
// package.json carrying the given license value. A nil license omits
// the field entirely.
func InstallPackage(t *testing.T, projectDir string, name string, license interface{}) string {
	t.Helper()
	pkgDir := filepath.Join(projectDir, "node_modules", filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(pkgDir, 0755))
	manifest := map[string]interface{}{
		"name":    name,
		"version": "1.0.0",
	}
	if license != nil {
		manifest["license"] = license
	}
	content, err := json.Marshal(manifest)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(pkgDir, "package.json"), content, 0644))
	return pkgDir
}

// WriteLicenseFile drops a license file with the given name and content
// into an installed package directory.
func WriteLicenseFile(t *testing.T, pkgDir string, fileName string, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(pkgDir, fileName), []byte(content), 0644))
}
