// Package cli — check_test.go tests the check command's preferred-port
// resolution and an end-to-end preflight against a generated project.
package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/stencil/internal/config"
	"github.com/mmr-tortoise/stencil/internal/model"
)

// TestResolvePreferredPort verifies the precedence chain: PORT environment
// value, then the rc-file setting, then the built-in 3000 default, with
// garbage PORT values ignored.
func TestResolvePreferredPort(t *testing.T) {
	tests := []struct {
		name    string
		portEnv string
		cfg     config.Config
		want    int
	}{
		{name: "default", portEnv: "", cfg: config.Default(), want: 3000},
		{name: "env wins", portEnv: "8080", cfg: config.Default(), want: 8080},
		{name: "env wins over rc", portEnv: "8080", cfg: config.Config{PreferredPort: 4000}, want: 8080},
		{name: "rc beats default", portEnv: "", cfg: config.Config{PreferredPort: 4000}, want: 4000},
		{name: "non-numeric env ignored", portEnv: "eighty", cfg: config.Default(), want: 3000},
		{name: "negative env ignored", portEnv: "-1", cfg: config.Default(), want: 3000},
		{name: "out-of-range env ignored", portEnv: "70000", cfg: config.Default(), want: 3000},
		{name: "zero rc falls back", portEnv: "", cfg: config.Config{PreferredPort: 0}, want: 3000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolvePreferredPort(tt.portEnv, tt.cfg)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestCheckCommand_EndToEnd generates a project, then runs check against
// it. With a high preferred port the probe should succeed and exit clean.
func TestCheckCommand_EndToEnd(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	base := t.TempDir()

	create := NewCreateCommand()
	create.SetArgs([]string{"demo", "--dir", base})
	require.NoError(t, create.Execute())

	// Use a high preferred port so the linear search terminates quickly
	// even on a busy host.
	t.Setenv("PORT", "55123")

	check := NewCheckCommand()
	check.SetArgs([]string{filepath.Join(base, "demo")})
	require.NoError(t, check.Execute())
}

// TestCheckCommand_MissingManifest verifies the dedicated exit code when
// the target directory is not a generated project.
func TestCheckCommand_MissingManifest(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	check := NewCheckCommand()
	check.SetArgs([]string{t.TempDir()})
	err := check.Execute()
	require.Error(t, err)

	var cliErr *model.CLIError
	require.ErrorAs(t, err, &cliErr)
	assert.Equal(t, model.ExitManifestNotFound, cliErr.Code)
}
