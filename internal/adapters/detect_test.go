package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"license-audit/internal/types"
)

func touch(t *testing.T, dir string, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0644))
}

func TestDetectConfiguredManagerWins(t *testing.T) {
	detector := NewManagerDetectAdapter()
	manager, err := detector.Detect(t.TempDir(), types.PackageManagerPnpm)
	require.NoError(t, err)
	assert.Equal(t, types.PackageManagerPnpm, manager)
}

func TestDetectLockfilePrecedence(t *testing.T) {
	tests := []struct {
		name  string
		files []string
		want  types.PackageManager
	}{
		{name: "yarn wins over pnpm and npm", files: []string{"yarn.lock", "pnpm-lock.yaml", "package.json"}, want: types.PackageManagerYarn},
		{name: "pnpm wins over npm", files: []string{"pnpm-lock.yaml", "package.json"}, want: types.PackageManagerPnpm},
		{name: "package.json means npm", files: []string{"package.json"}, want: types.PackageManagerNpm},
		{name: "package-lock.json means npm", files: []string{"package-lock.json"}, want: types.PackageManagerNpm},
	}
	detector := NewManagerDetectAdapter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for _, file := range tt.files {
				touch(t, dir, file)
			}
			manager, err := detector.Detect(dir, types.PackageManagerAuto)
			require.NoError(t, err)
			assert.Equal(t, tt.want, manager)
		})
	}
}

func TestDetectNothingFound(t *testing.T) {
	detector := NewManagerDetectAdapter()
	_, err := detector.Detect(t.TempDir(), types.PackageManagerAuto)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}
