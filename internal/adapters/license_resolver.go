package adapters

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"license-audit/internal/ports"
	"license-audit/internal/types"
)

// licenseFileProbeLimit bounds how much of a license file is inspected.
const licenseFileProbeLimit = 500

// Conventional license file names, in probe order.
var licenseFileNames = []string{"LICENSE", "LICENSE.txt", "LICENSE.md", "LICENCE", "COPYING"}

// Content markers checked in priority order; the first match wins.
var licenseContentPatterns = []struct {
	Marker  string
	License string
}{
	{"MIT LICENSE", "MIT"},
	{"APACHE LICENSE", "Apache-2.0"},
	{"BSD LICENSE", "BSD-3-Clause"},
	{"GPL", "GPL"},
	{"MOZILLA PUBLIC LICENSE", "MPL-2.0"},
}

// NodeModulesLicenseAdapter resolves a package's license from its
// installed copy under node_modules. The fallback chain is: manifest
// license field, manifest licenses array, license file content
// heuristics, "Unknown". Every internal failure moves to the next step;
// resolution never errors.
type NodeModulesLicenseAdapter struct{}

func NewNodeModulesLicenseAdapter() NodeModulesLicenseAdapter {
	return NodeModulesLicenseAdapter{}
}

func (a NodeModulesLicenseAdapter) ResolveLicense(ctx context.Context, projectDir string, pkg string) string {
	pkgDir := filepath.Join(projectDir, "node_modules", filepath.FromSlash(pkg))

	if license, ok := licenseFromManifest(filepath.Join(pkgDir, "package.json")); ok {
		return license
	}
	if license, ok := licenseFromFiles(pkgDir); ok {
		return license
	}
	log.Ctx(ctx).Debug().Str("package", pkg).Msg("no license resolved")
	return types.UnknownLicense
}

func licenseFromManifest(path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	var manifest map[string]interface{}
	if err := json.Unmarshal(data, &manifest); err != nil {
		return "", false
	}
	switch license := manifest["license"].(type) {
	case string:
		if license != "" {
			return license, true
		}
	case map[string]interface{}:
		if kind, ok := license["type"].(string); ok && kind != "" {
			return kind, true
		}
	}
	// Legacy manifests carry a "licenses" array instead.
	if licenses, ok := manifest["licenses"].([]interface{}); ok && len(licenses) > 0 {
		if first, ok := licenses[0].(map[string]interface{}); ok {
			if kind, ok := first["type"].(string); ok && kind != "" {
				return kind, true
			}
		}
	}
	return "", false
}

func licenseFromFiles(pkgDir string) (string, bool) {
	for _, name := range licenseFileNames {
		data, err := os.ReadFile(filepath.Join(pkgDir, name))
		if err != nil {
			continue
		}
		if len(data) > licenseFileProbeLimit {
			data = data[:licenseFileProbeLimit]
		}
		return detectLicenseContent(string(data)), true
	}
	return "", false
}

func detectLicenseContent(content string) string {
	upper := strings.ToUpper(content)
	for _, pattern := range licenseContentPatterns {
		if strings.Contains(upper, pattern.Marker) {
			return pattern.License
		}
	}
	return types.UnknownLicense
}

var _ ports.LicenseResolverPort = NodeModulesLicenseAdapter{}
