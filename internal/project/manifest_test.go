package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/stencil/internal/model"
)

// writeManifest writes content as package.json into a fresh temp dir and
// returns the dir.
func writeManifest(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte(content), 0o644))
	return dir
}

// TestReadManifest_PlainJSON verifies parsing of a manifest exactly as the
// generator writes it.
func TestReadManifest_PlainJSON(t *testing.T) {
	dir := writeManifest(t, `{
  "name": "demo",
  "version": "1.0.0",
  "main": "server.js",
  "scripts": {
    "dev": "nodemon server.js",
    "start": "node server.js"
  }
}
`)

	m, err := ReadManifest(dir)
	require.NoError(t, err)

	assert.Equal(t, "demo", m.Name)
	assert.Equal(t, "1.0.0", m.Version)
	assert.Equal(t, "server.js", m.Main)
	assert.Equal(t, "node server.js", m.Scripts["start"])
}

// TestReadManifest_JSONCTolerated verifies that comments and trailing
// commas from hand edits do not break parsing.
func TestReadManifest_JSONCTolerated(t *testing.T) {
	dir := writeManifest(t, `{
  // local tweak: renamed after generation
  "name": "demo-renamed",
  "version": "1.0.0",
  "main": "server.js",
  "scripts": {
    "start": "node server.js",
  },
}
`)

	m, err := ReadManifest(dir)
	require.NoError(t, err)
	assert.Equal(t, "demo-renamed", m.Name)
}

// TestReadManifest_Missing verifies the dedicated exit code for a missing
// manifest.
func TestReadManifest_Missing(t *testing.T) {
	_, err := ReadManifest(t.TempDir())
	require.Error(t, err)

	var cliErr *model.CLIError
	require.ErrorAs(t, err, &cliErr)
	assert.Equal(t, model.ExitManifestNotFound, cliErr.Code)
}

// TestReadManifest_Malformed verifies that syntactically broken JSON (even
// after JSONC cleanup) surfaces as a parse error.
func TestReadManifest_Malformed(t *testing.T) {
	dir := writeManifest(t, `{"name": "demo", "version": `)

	_, err := ReadManifest(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}
