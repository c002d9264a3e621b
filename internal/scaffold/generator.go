// generator.go implements the project-generation procedure.
//
// Generation is a short, strictly sequential series of filesystem calls:
//  1. Ensure the target directory and every planned subdirectory exist
//  2. Build and write the package.json manifest
//  3. Write each template file, overwriting unconditionally
//  4. Optionally run the dependency installer (failure is non-fatal)
//
// The first filesystem failure aborts with a CLIError naming the failing
// path. Partial output is possible — this is a one-shot best-effort
// generator, not a transactional system, and no rollback is attempted.
package scaffold

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mmr-tortoise/stencil/internal/model"
)

// Generator creates new project trees. It holds the optional installer
// collaborator; everything else about a run comes in via the ProjectSpec.
type Generator struct {
	// installer runs the dependency-installation step. May be nil, in
	// which case installation is skipped entirely and the caller is
	// expected to print manual instructions instead.
	installer Installer
}

// NewGenerator creates a Generator. Pass a nil installer to skip the
// dependency-installation step (the default CLI behavior).
func NewGenerator(installer Installer) *Generator {
	return &Generator{installer: installer}
}

// DirectoryPlan returns a copy of the relative directory paths every
// generated project contains. Exposed for tests and for the CLI's
// verbose output.
func DirectoryPlan() []string {
	plan := make([]string, len(directoryPlan))
	copy(plan, directoryPlan)
	return plan
}

// Generate creates the project described by spec under spec.BaseDir.
//
// The base directory is an explicit parameter of the spec rather than the
// process working directory, so callers (and tests) control exactly where
// output lands. Creating an already-existing directory is not an error;
// existing files at template paths are overwritten without diffing. The
// returned result lists everything that was written.
//
// Filesystem failures return a *model.CLIError with ExitFileSystemError.
// Installation failures do NOT fail generation: they are recorded in the
// result's InstallErr and left to the caller to report.
func (g *Generator) Generate(ctx context.Context, spec model.ProjectSpec) (*model.GenerateResult, error) {
	if spec.Name == "" {
		return nil, model.NewCLIError(model.ExitGeneralError, "project name must not be empty")
	}

	targetDir := spec.TargetDir()
	result := &model.GenerateResult{
		ProjectDir: targetDir,
	}

	// Step 1: Ensure the target directory and every planned subdirectory
	// exist. MkdirAll is idempotent for existing directories but fails if
	// any path element is a regular file, which covers the "path collision
	// with a non-directory file" case.
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return nil, model.WrapCLIError(model.ExitFileSystemError,
			fmt.Sprintf("failed to create project directory %s", targetDir), err)
	}

	for _, dir := range directoryPlan {
		fullDir := filepath.Join(targetDir, filepath.FromSlash(dir))
		if err := os.MkdirAll(fullDir, 0o755); err != nil {
			return nil, model.WrapCLIError(model.ExitFileSystemError,
				fmt.Sprintf("failed to create directory %s", fullDir), err)
		}
		result.DirsCreated = append(result.DirsCreated, dir)
	}

	// Step 2: Build and write the manifest. The project name is copied
	// into the "name" field verbatim; this is the only interpolation the
	// generator performs.
	manifest, err := NewManifest(spec.Name).Render()
	if err != nil {
		return nil, model.WrapCLIError(model.ExitGeneralError, "failed to build manifest", err)
	}
	if err := writeFile(filepath.Join(targetDir, ManifestFileName), manifest); err != nil {
		return nil, err
	}
	result.FilesWritten = append(result.FilesWritten, ManifestFileName)

	// Step 3: Write every template file. Order does not matter (no file
	// depends on another), but ranging the fixed list keeps the output
	// and the result's FilesWritten deterministic.
	for _, tf := range templateFiles {
		fullPath := filepath.Join(targetDir, filepath.FromSlash(tf.RelativePath))
		if err := writeFile(fullPath, []byte(tf.Content)); err != nil {
			return nil, err
		}
		result.FilesWritten = append(result.FilesWritten, tf.RelativePath)
	}

	// Step 4: Run the installer if one was provided. A failure here is
	// recorded but never propagated — the generated tree is complete and
	// the user can install by hand.
	if g.installer != nil {
		result.InstallRan = true
		result.InstallErr = g.installer.Install(ctx, targetDir)
	}

	return result, nil
}

// writeFile writes data to path with 0644 permissions, translating any
// failure into a filesystem CLIError that names the path. os.WriteFile
// truncates existing files, which implements the last-write-wins
// overwrite policy.
func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return model.WrapCLIError(model.ExitFileSystemError,
			fmt.Sprintf("failed to write %s", path), err)
	}
	return nil
}
