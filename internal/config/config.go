// Package config loads the optional .stencilrc.yaml file that tunes
// per-user defaults for the stencil CLI.
//
// Lookup order: the base directory passed to the command, then the user's
// home directory. The first file found wins; when neither exists the
// built-in defaults apply. Command-line flags always override the file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mmr-tortoise/stencil/internal/model"
)

// FileName is the rc file name searched for in the base and home dirs.
const FileName = ".stencilrc.yaml"

// DefaultPreferredPort is the port the check command assumes when neither
// the PORT environment variable nor the rc file specifies one. It matches
// the default baked into the generated server template.
const DefaultPreferredPort = 3000

// Config holds the user-tunable defaults.
type Config struct {
	// PackageManager is the binary used for dependency installation:
	// "npm" (default), "yarn", or "pnpm".
	PackageManager string `yaml:"packageManager"`

	// Install makes `create` run the package manager automatically after
	// generation, as if --install were passed.
	Install bool `yaml:"install"`

	// PreferredPort is the port the check command probes first when the
	// PORT environment variable is unset.
	PreferredPort int `yaml:"preferredPort"`
}

// Default returns the configuration used when no rc file exists.
func Default() Config {
	return Config{
		PackageManager: "npm",
		Install:        false,
		PreferredPort:  DefaultPreferredPort,
	}
}

// Load returns the effective configuration for a command running against
// baseDir.
//
// It searches baseDir first so a project checkout can pin its own
// defaults, then falls back to the home directory for user-wide settings.
// A missing file is not an error; a file that exists but fails to parse is
// a CLIError with ExitConfigError, because silently ignoring a broken rc
// file would make its settings appear to be randomly dropped.
func Load(baseDir string) (Config, error) {
	candidates := []string{filepath.Join(baseDir, FileName)}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, FileName))
	}

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return Config{}, model.WrapCLIError(model.ExitConfigError,
				fmt.Sprintf("failed to read %s", path), err)
		}
		return parse(path, data)
	}

	return Default(), nil
}

// parse decodes rc file bytes over the defaults, so omitted keys keep
// their built-in values.
func parse(path string, data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, model.WrapCLIError(model.ExitConfigError,
			fmt.Sprintf("failed to parse %s", path), err)
	}

	// An explicit empty packageManager would exec an empty binary name;
	// fall back to the default instead.
	if cfg.PackageManager == "" {
		cfg.PackageManager = "npm"
	}
	if cfg.PreferredPort == 0 {
		cfg.PreferredPort = DefaultPreferredPort
	}

	return cfg, nil
}
