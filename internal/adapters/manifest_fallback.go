package adapters

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/ZanzyTHEbar/errbuilder-go"
)

// ManifestFallbackAdapter reads direct dependencies straight from
// package.json. It is the degraded path used when the package manager
// listing fails: transitive dependencies are lost by design.
type ManifestFallbackAdapter struct{}

func NewManifestFallbackAdapter() ManifestFallbackAdapter {
	return ManifestFallbackAdapter{}
}

type packageManifest struct {
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

func (a ManifestFallbackAdapter) ListDirect(dir string, includeDev bool) (map[string]string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "package.json"))
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("no package.json for dependency fallback").
			WithCause(err)
	}
	var manifest packageManifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("invalid package.json").
			WithCause(err)
	}
	packages := map[string]string{}
	for name, version := range manifest.Dependencies {
		packages[name] = cleanVersionRange(version)
	}
	if includeDev {
		for name, version := range manifest.DevDependencies {
			if _, exists := packages[name]; !exists {
				packages[name] = cleanVersionRange(version)
			}
		}
	}
	return packages, nil
}

// cleanVersionRange strips common range operators and keeps the result
// only when it parses as a semantic version; otherwise the raw range is
// reported as-is.
func cleanVersionRange(value string) string {
	trimmed := strings.TrimSpace(value)
	for _, prefix := range []string{"^", "~", ">=", "<=", ">", "<", "="} {
		trimmed = strings.TrimPrefix(trimmed, prefix)
	}
	trimmed = strings.Split(trimmed, " ")[0]
	if parsed, err := semver.NewVersion(trimmed); err == nil {
		return parsed.String()
	}
	return value
}
