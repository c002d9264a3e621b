// installer.go defines the dependency-installation collaborator.
//
// Installation is a side-effecting external-process invocation (npm, yarn,
// or pnpm), so it sits behind a small interface: the generator only knows
// that "something installs dependencies into a directory". Tests substitute
// a recording stub; the CLI wires in the exec-backed implementation.
package scaffold

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Installer installs the declared dependencies of a generated project.
type Installer interface {
	// Install runs the installation inside projectDir. It blocks until
	// the package manager finishes. A non-nil error is reported to the
	// user but never aborts generation.
	Install(ctx context.Context, projectDir string) error
}

// ExecInstaller shells out to a package manager binary. The zero value is
// not usable; construct it with NewExecInstaller.
type ExecInstaller struct {
	// packageManager is the binary to invoke: "npm", "yarn", or "pnpm".
	packageManager string
}

// NewExecInstaller creates an ExecInstaller for the given package manager
// command. An empty string defaults to npm.
func NewExecInstaller(packageManager string) *ExecInstaller {
	if packageManager == "" {
		packageManager = "npm"
	}
	return &ExecInstaller{packageManager: packageManager}
}

// installCommand returns the binary and argv for an installation run with
// the given package manager, defaulting to npm when empty. Split out as a
// pure function so the command construction is testable without spawning
// processes.
func installCommand(packageManager string) (string, []string) {
	if packageManager == "" {
		packageManager = "npm"
	}
	// All three mainstream package managers accept a bare "install".
	return packageManager, []string{"install"}
}

// Install runs "<packageManager> install" as a child process inside
// projectDir, inheriting the parent environment.
//
// The command runs with context so a cancelled CLI invocation kills the
// child. CombinedOutput captures stdout and stderr together for the error
// message; on success the package manager's own output is discarded
// because the CLI prints its own summary.
func (i *ExecInstaller) Install(ctx context.Context, projectDir string) error {
	bin, args := installCommand(i.packageManager)
	cmd := exec.CommandContext(ctx, bin, args...)

	// The package manager resolves package.json relative to its working
	// directory, so it must run inside the generated project.
	cmd.Dir = projectDir
	cmd.Env = os.Environ()

	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s install failed: %s: %w",
			i.packageManager, strings.TrimSpace(string(output)), err)
	}

	return nil
}
