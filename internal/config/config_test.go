package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/stencil/internal/model"
)

// TestLoad_NoFileUsesDefaults verifies the built-in defaults when no rc
// file exists in either search location. HOME is pointed at an empty temp
// dir so a developer's real rc file cannot leak into the test.
func TestLoad_NoFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "npm", cfg.PackageManager)
	assert.False(t, cfg.Install)
	assert.Equal(t, DefaultPreferredPort, cfg.PreferredPort)
}

// TestLoad_BaseDirFile verifies that an rc file in the base directory is
// picked up and that omitted keys keep their defaults.
func TestLoad_BaseDirFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	base := t.TempDir()
	rc := "packageManager: pnpm\ninstall: true\n"
	require.NoError(t, os.WriteFile(filepath.Join(base, FileName), []byte(rc), 0o644))

	cfg, err := Load(base)
	require.NoError(t, err)

	assert.Equal(t, "pnpm", cfg.PackageManager)
	assert.True(t, cfg.Install)
	assert.Equal(t, DefaultPreferredPort, cfg.PreferredPort, "omitted key keeps default")
}

// TestLoad_BaseDirWinsOverHome verifies the search order: a project-local
// rc file shadows the user-wide one.
func TestLoad_BaseDirWinsOverHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, FileName),
		[]byte("packageManager: yarn\n"), 0o644))

	base := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(base, FileName),
		[]byte("packageManager: pnpm\n"), 0o644))

	cfg, err := Load(base)
	require.NoError(t, err)
	assert.Equal(t, "pnpm", cfg.PackageManager)
}

// TestLoad_HomeFallback verifies the home directory is consulted when the
// base directory has no rc file.
func TestLoad_HomeFallback(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, FileName),
		[]byte("preferredPort: 8080\n"), 0o644))

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.PreferredPort)
}

// TestLoad_MalformedFile verifies a broken rc file is not silently
// ignored: the error carries the config exit code.
func TestLoad_MalformedFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	base := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(base, FileName),
		[]byte("packageManager: [unclosed\n"), 0o644))

	_, err := Load(base)
	require.Error(t, err)

	var cliErr *model.CLIError
	require.ErrorAs(t, err, &cliErr)
	assert.Equal(t, model.ExitConfigError, cliErr.Code)
}

// TestParse_EmptyPackageManagerFallsBack verifies that an explicitly empty
// packageManager value cannot produce an empty exec binary name.
func TestParse_EmptyPackageManagerFallsBack(t *testing.T) {
	cfg, err := parse("test", []byte(`packageManager: ""`))
	require.NoError(t, err)
	assert.Equal(t, "npm", cfg.PackageManager)
}
