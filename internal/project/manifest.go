// Package project inspects an already-generated project on disk.
//
// Its single responsibility is reading the package.json manifest back for
// the check command. Hand-edited manifests in the wild frequently contain
// comments and trailing commas (editors tolerate them even though npm does
// not), so this package uses github.com/tidwall/jsonc to strip JSONC
// syntax before parsing with the standard encoding/json library.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"

	"github.com/mmr-tortoise/stencil/internal/model"
)

// Manifest is the subset of package.json fields the check command needs.
// Unknown fields are silently ignored during parsing.
type Manifest struct {
	// Name is the project name.
	Name string `json:"name"`

	// Version is the declared project version.
	Version string `json:"version"`

	// Main is the entry point file.
	Main string `json:"main"`

	// Scripts maps command names to shell commands. Used to report the
	// start command alongside the port preflight result.
	Scripts map[string]string `json:"scripts"`
}

// ReadManifest reads and parses <projectDir>/package.json.
//
// Returns a CLIError with ExitManifestNotFound when the file does not
// exist, which the CLI layer translates into its exit code.
func ReadManifest(projectDir string) (*Manifest, error) {
	manifestPath := filepath.Join(projectDir, "package.json")

	// os.ReadFile is preferred over os.Open+io.ReadAll because it handles
	// the open-read-close lifecycle in a single call.
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, model.WrapCLIError(
				model.ExitManifestNotFound,
				fmt.Sprintf("package.json not found in %s (is this a generated project?)", projectDir),
				err,
			)
		}
		return nil, fmt.Errorf("failed to read %s: %w", manifestPath, err)
	}

	// Strip JSONC comments (// and /* */) and trailing commas before
	// parsing. The generator never writes them, but users edit manifests
	// by hand and the check command should not choke on that.
	cleanJSON := jsonc.ToJSON(data)

	var m Manifest
	if err := json.Unmarshal(cleanJSON, &m); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", manifestPath, err)
	}

	return &m, nil
}
