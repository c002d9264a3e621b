// manifest.go builds and serializes the package.json manifest for a
// generated project. The manifest is the only name-sensitive output:
// everything except the "name" field is static.
package scaffold

import (
	"encoding/json"
	"fmt"
)

// ManifestFileName is the manifest path relative to the project root.
const ManifestFileName = "package.json"

// Manifest mirrors the package.json structure the generator emits.
//
// Struct field order controls the serialized key order for the top-level
// fields (encoding/json preserves struct order), which keeps the output
// byte-stable across runs. Map-valued fields serialize with sorted keys,
// which is equally deterministic.
type Manifest struct {
	// Name is the project name, copied verbatim from the ProjectSpec.
	// It is not validated or escaped beyond standard JSON string encoding.
	Name string `json:"name"`

	// Version is always "1.0.0" for a fresh project.
	Version string `json:"version"`

	// Main is the service entry point.
	Main string `json:"main"`

	// Scripts maps runnable command names to shell commands.
	Scripts map[string]string `json:"scripts"`

	// Dependencies declares the production dependency ranges.
	Dependencies map[string]string `json:"dependencies"`

	// DevDependencies declares development-only dependency ranges.
	DevDependencies map[string]string `json:"devDependencies"`
}

// NewManifest constructs the manifest for a project with the given name.
// Everything except Name is fixed: the dependency set is the conventional
// Express stack (routing, CORS middleware, env loader, MongoDB ODM) plus
// nodemon for auto-restart during development.
func NewManifest(name string) Manifest {
	return Manifest{
		Name:    name,
		Version: "1.0.0",
		Main:    "server.js",
		Scripts: map[string]string{
			"start": "node server.js",
			"dev":   "nodemon server.js",
		},
		Dependencies: map[string]string{
			"express":  "^4.18.2",
			"cors":     "^2.8.5",
			"dotenv":   "^16.3.1",
			"mongoose": "^7.5.0",
		},
		DevDependencies: map[string]string{
			"nodemon": "^3.0.1",
		},
	}
}

// Render serializes the manifest as 2-space indented JSON with a trailing
// newline, matching the formatting npm itself writes.
func (m Manifest) Render() ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize manifest: %w", err)
	}

	// Append trailing newline for POSIX compliance.
	return append(data, '\n'), nil
}
