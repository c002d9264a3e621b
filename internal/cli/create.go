// Package cli — create.go implements the "stencil create" command.
//
// The create command is the primary user-facing operation. It orchestrates
// the full project-generation workflow:
//  1. Load the rc-file configuration (if any)
//  2. Resolve the base directory and build the project spec
//  3. Decide whether the dependency installer runs
//  4. Generate the directory tree, manifest, and template files
//  5. Output results (text or JSON), including install status
package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/stencil/internal/config"
	"github.com/mmr-tortoise/stencil/internal/model"
	"github.com/mmr-tortoise/stencil/internal/scaffold"
)

// createFlags holds the flag values for the create command.
// These are bound to cobra flags in NewCreateCommand.
type createFlags struct {
	dir         string // --dir: base directory the project is created under
	install     bool   // --install: run the package manager after generation
	skipInstall bool   // --skip-install: never run it, even if the rc file says so
}

// NewCreateCommand creates the "create" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewCreateCommand() *cobra.Command {
	flags := &createFlags{}

	cmd := &cobra.Command{
		Use:   "create <project-name>",
		Short: "Scaffold a new backend service project",
		Long: `Create a new backend service project with a conventional folder layout.

The command writes:
  - package.json declaring the Express/CORS/dotenv/mongoose stack
  - server.js with automatic port discovery at startup
  - src/config/db.js with the MongoDB connection module
  - src/routes/ with a users placeholder router
  - empty public/, src/controllers/, src/models/, src/utils/ directories

By default the declared dependencies are NOT installed; the command prints
the manual install step instead. Pass --install (or set "install: true" in
.stencilrc.yaml) to run the package manager automatically. An installation
failure is reported but does not fail the command.

Examples:
  stencil create demo
  stencil create --dir ~/projects demo
  stencil create --install demo`,

		// Args validates that exactly one positional argument (project name)
		// is provided. The name itself is not validated: it is copied into
		// the manifest and the directory name verbatim.
		Args: cobra.ExactArgs(1),

		// RunE is used instead of Run so we can return errors. Cobra will
		// pass them to the Execute error handler in root.go.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, args[0], flags)
		},
	}

	// Register command-specific flags.
	cmd.Flags().StringVar(&flags.dir, "dir", ".", "Base directory to create the project under")
	cmd.Flags().BoolVar(&flags.install, "install", false, "Run the package manager after generation")
	cmd.Flags().BoolVar(&flags.skipInstall, "skip-install", false, "Never run the package manager, overriding the rc file")

	return cmd
}

// runCreate is the main orchestration function for the create command.
func runCreate(cmd *cobra.Command, projectName string, flags *createFlags) error {
	// Step 1: Load configuration. Flags override the rc file below.
	cfg, err := config.Load(flags.dir)
	if err != nil {
		return err // config.Load already returns CLIError
	}
	VerboseLog("Package manager: %s", cfg.PackageManager)

	// Step 2: Build the project spec. The base directory is passed through
	// explicitly — the generator never reads the working directory itself.
	spec := model.ProjectSpec{
		Name:    projectName,
		BaseDir: flags.dir,
	}
	VerboseLog("Target directory: %s", spec.TargetDir())

	// Step 3: Decide whether the installer runs. Precedence:
	// --skip-install > --install > rc file > default (off).
	installer := resolveInstaller(flags, cfg)
	if installer != nil {
		VerboseLog("Dependency installation enabled (%s install)", cfg.PackageManager)
	}

	// Step 4: Generate. Filesystem failures abort here with a CLIError
	// carrying the filesystem exit code; an install failure does not.
	gen := scaffold.NewGenerator(installer)
	result, err := gen.Generate(cmd.Context(), spec)
	if err != nil {
		return err
	}

	for _, f := range result.FilesWritten {
		VerboseLog("Wrote %s", f)
	}

	// Step 5: Output results.
	printCreateResult(projectName, cfg.PackageManager, result)
	return nil
}

// resolveInstaller applies the install-decision precedence and returns the
// installer to use, or nil when installation is skipped.
func resolveInstaller(flags *createFlags, cfg config.Config) scaffold.Installer {
	if flags.skipInstall {
		return nil
	}
	if flags.install || cfg.Install {
		return scaffold.NewExecInstaller(cfg.PackageManager)
	}
	return nil
}

// formatNextSteps renders the manual follow-up instructions shown when
// dependency installation did not run (or failed). Split out as a pure
// function for testability.
func formatNextSteps(projectName, packageManager string) string {
	var b strings.Builder
	b.WriteString("Next steps:\n")
	fmt.Fprintf(&b, "  1) cd %s\n", projectName)
	fmt.Fprintf(&b, "  2) %s install\n", packageManager)
	fmt.Fprintf(&b, "  3) %s run dev\n", packageManager)
	return b.String()
}

// printCreateResult outputs the create command results in text or JSON
// format based on the --json global flag.
func printCreateResult(projectName, packageManager string, result *model.GenerateResult) {
	if IsJSONOutput() {
		printCreateResultJSON(projectName, result)
	} else {
		printCreateResultText(projectName, packageManager, result)
	}
}

// printCreateResultJSON outputs the create result as structured JSON.
func printCreateResultJSON(projectName string, result *model.GenerateResult) {
	type resultJSON struct {
		Name         string   `json:"name"`
		ProjectDir   string   `json:"projectDir"`
		FilesWritten []string `json:"filesWritten"`
		DirsCreated  []string `json:"dirsCreated"`
		InstallRan   bool     `json:"installRan"`
		InstallError string   `json:"installError,omitempty"`
	}

	out := resultJSON{
		Name:         projectName,
		ProjectDir:   result.ProjectDir,
		FilesWritten: result.FilesWritten,
		DirsCreated:  result.DirsCreated,
		InstallRan:   result.InstallRan,
	}
	if result.InstallErr != nil {
		out.InstallError = result.InstallErr.Error()
	}

	data, _ := json.MarshalIndent(out, "", "  ")
	fmt.Println(string(data))
}

// printCreateResultText outputs the create result as human-readable text.
func printCreateResultText(projectName, packageManager string, result *model.GenerateResult) {
	fmt.Printf("Created project %q at %s\n", projectName, result.ProjectDir)
	fmt.Printf("  Files:       %d written\n", len(result.FilesWritten))
	fmt.Printf("  Directories: %d created\n", len(result.DirsCreated))
	fmt.Println()

	switch {
	case result.InstallRan && result.InstallErr == nil:
		fmt.Println("Dependencies installed.")
		fmt.Printf("Run the dev server with: cd %s && %s run dev\n", projectName, packageManager)
	case result.InstallRan && result.InstallErr != nil:
		// Non-fatal: the tree is complete, the user just installs by hand.
		fmt.Printf("Warning: dependency installation failed: %v\n", result.InstallErr)
		fmt.Print(formatNextSteps(projectName, packageManager))
	default:
		fmt.Print(formatNextSteps(projectName, packageManager))
	}
}
