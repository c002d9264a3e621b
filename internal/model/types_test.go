package model

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestProjectSpec_TargetDir verifies the single derived path: the project
// lands at <BaseDir>/<Name>.
func TestProjectSpec_TargetDir(t *testing.T) {
	tests := []struct {
		name string
		spec ProjectSpec
		want string
	}{
		{
			name: "relative base",
			spec: ProjectSpec{Name: "demo", BaseDir: "."},
			want: "demo",
		},
		{
			name: "nested base",
			spec: ProjectSpec{Name: "demo", BaseDir: filepath.Join("some", "dir")},
			want: filepath.Join("some", "dir", "demo"),
		},
		{
			name: "absolute base",
			spec: ProjectSpec{Name: "api", BaseDir: string(filepath.Separator) + "tmp"},
			want: filepath.Join(string(filepath.Separator)+"tmp", "api"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.spec.TargetDir())
		})
	}
}

// TestCLIError_Error verifies message formatting with and without an
// underlying error.
func TestCLIError_Error(t *testing.T) {
	plain := NewCLIError(ExitFileSystemError, "failed to write package.json")
	assert.Equal(t, "failed to write package.json", plain.Error())

	wrapped := WrapCLIError(ExitFileSystemError, "failed to write package.json", errors.New("permission denied"))
	assert.Equal(t, "failed to write package.json: permission denied", wrapped.Error())
}

// TestCLIError_Unwrap verifies errors.Is/errors.As work through CLIError,
// which the CLI layer relies on for exit-code translation.
func TestCLIError_Unwrap(t *testing.T) {
	underlying := errors.New("disk full")
	err := WrapCLIError(ExitFileSystemError, "failed to write server.js", underlying)

	assert.ErrorIs(t, err, underlying)

	var cliErr *CLIError
	require.ErrorAs(t, error(err), &cliErr)
	assert.Equal(t, ExitFileSystemError, cliErr.Code)
}
