// Package model defines the domain types shared across the stencil CLI.
//
// All entities here are transient and single-use: a ProjectSpec is built
// once from CLI arguments, consumed by the generator, and discarded when
// the process exits. There is no persistent state anywhere in the tool —
// the only durable output is the generated project tree itself.
package model

import (
	"fmt"
	"path/filepath"
)

// ProjectSpec describes one project-generation request.
//
// BaseDir is always explicit. The generator never reads the process
// working directory; the CLI layer resolves the default (".") before
// constructing the spec. This keeps the library side free of ambient
// global state and makes generation trivially testable with t.TempDir.
type ProjectSpec struct {
	// Name is the project name exactly as the user typed it. It becomes
	// both the target directory name and the manifest "name" field.
	// No validation or escaping is applied.
	Name string `json:"name"`

	// BaseDir is the directory the project directory is created under.
	// The project lands at <BaseDir>/<Name>.
	BaseDir string `json:"baseDir"`
}

// TargetDir returns the directory the project is generated into.
func (s ProjectSpec) TargetDir() string {
	return filepath.Join(s.BaseDir, s.Name)
}

// GenerateResult reports what a generation run produced. It is consumed
// by the CLI layer for text/JSON output and by tests for assertions.
type GenerateResult struct {
	// ProjectDir is the directory the project was written to.
	ProjectDir string `json:"projectDir"`

	// FilesWritten lists the project-relative paths of every file the
	// generator wrote, in write order. The manifest is always first.
	FilesWritten []string `json:"filesWritten"`

	// DirsCreated lists the project-relative directory paths the generator
	// ensured exist, in plan order.
	DirsCreated []string `json:"dirsCreated"`

	// InstallRan reports whether the dependency-installation step was
	// attempted at all (it is skipped by default).
	InstallRan bool `json:"installRan"`

	// InstallErr holds the installation failure, if any. Installation
	// failure is deliberately non-fatal: the generated tree is complete
	// and usable, the user just has to run the install step by hand.
	InstallErr error `json:"-"`
}

// PortProbe is the outcome of a port preflight performed by the check
// command. It mirrors the decision the generated service's own startup
// logic would make at that moment.
type PortProbe struct {
	// ProjectName is the "name" field read from the project manifest.
	ProjectName string `json:"projectName"`

	// PreferredPort is the port the service would try first.
	PreferredPort int `json:"preferredPort"`

	// Port is the first available port at or above PreferredPort.
	// Only meaningful when Found is true.
	Port int `json:"port"`

	// Found is false when every port in [PreferredPort, 65535] was busy.
	Found bool `json:"found"`
}

// ExitCode defines the CLI exit codes. These codes allow scripts and CI
// systems to programmatically determine the outcome of a command.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitFileSystemError indicates directory creation or a file write
	// failed during generation (permissions, path collisions, disk full).
	ExitFileSystemError ExitCode = 2

	// ExitManifestNotFound indicates the check command could not find a
	// package.json in the target directory.
	ExitManifestNotFound ExitCode = 3

	// ExitPortSearchFailed indicates no available port was found between
	// the preferred port and the ceiling (65535).
	ExitPortSearchFailed ExitCode = 4

	// ExitConfigError indicates a .stencilrc.yaml file exists but
	// could not be parsed.
	ExitConfigError ExitCode = 5
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
// This follows Go's error wrapping convention introduced in Go 1.13.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
