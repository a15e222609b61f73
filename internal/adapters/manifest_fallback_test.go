package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, dir string, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte(content), 0644))
}

func TestManifestFallbackDirectDependencies(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `{
		"dependencies": {"a": "^1.2.3", "b": "~0.4.0", "c": "git+https://example.com/c.git"},
		"devDependencies": {"d": ">=2.0.0"}
	}`)
	fallback := NewManifestFallbackAdapter()

	packages, err := fallback.ListDirect(dir, false)
	require.NoError(t, err)

	want := map[string]string{
		"a": "1.2.3",
		"b": "0.4.0",
		"c": "git+https://example.com/c.git",
	}
	if diff := cmp.Diff(want, packages); diff != "" {
		t.Fatalf("unexpected packages (-want +got):\n%s", diff)
	}
}

func TestManifestFallbackIncludesDevDependencies(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `{
		"dependencies": {"a": "1.0.0"},
		"devDependencies": {"d": "2.0.0", "a": "9.9.9"}
	}`)
	fallback := NewManifestFallbackAdapter()

	packages, err := fallback.ListDirect(dir, true)
	require.NoError(t, err)

	want := map[string]string{"a": "1.0.0", "d": "2.0.0"}
	if diff := cmp.Diff(want, packages); diff != "" {
		t.Fatalf("unexpected packages (-want +got):\n%s", diff)
	}
}

func TestManifestFallbackMissingManifest(t *testing.T) {
	fallback := NewManifestFallbackAdapter()
	_, err := fallback.ListDirect(t.TempDir(), false)
	require.Error(t, err)
}

func TestManifestFallbackInvalidManifest(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `{"dependencies":`)
	fallback := NewManifestFallbackAdapter()
	_, err := fallback.ListDirect(dir, false)
	require.Error(t, err)
}
