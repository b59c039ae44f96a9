// pkg/testutil/environment.go
// DEPENDENCIES: pkg/filesystem
// PURPOSE: Orchestrate isolated test environments with a source and a target worktree

package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/swt/pkg/filesystem"
	"github.com/spf13/afero"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// swtEnvVars are cleared so the developer's environment never leaks into tests
var swtEnvVars = []string{
	"SWT_DEFAULT_WORKTREE_DIR",
	"SWT_ADD_TO_GITIGNORE",
	"SWT_IGNORE_ORACLE",
	"SWT_FILES_TO_SYNC",
	"SWT_FILES_TO_COPY",
}

// TestEnvironment provides a source worktree, a target worktree and a home directory
type TestEnvironment struct {
	SourceRoot string
	TargetRoot string
	HomeDir    string

	FS   afero.Fs
	Type EnvType

	t *testing.T
}

// NewTestEnvironment creates a new test environment
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{t: t, Type: envType}

	switch envType {
	case EnvMemoryOnly:
		env.FS = filesystem.NewMemory()
		env.SourceRoot = "/virtual/repo"
		env.TargetRoot = "/virtual/repo-feature"
		env.HomeDir = "/virtual/home"
	case EnvIsolated:
		tempDir := resolvedTempDir(t)
		env.FS = filesystem.NewOS()
		env.SourceRoot = filepath.Join(tempDir, "repo")
		env.TargetRoot = filepath.Join(tempDir, "repo-feature")
		env.HomeDir = filepath.Join(tempDir, "home")

		t.Setenv("HOME", env.HomeDir)
		t.Setenv("XDG_CONFIG_HOME", filepath.Join(env.HomeDir, ".config"))
		t.Setenv("XDG_STATE_HOME", filepath.Join(env.HomeDir, ".local", "state"))
	}

	for _, key := range swtEnvVars {
		t.Setenv(key, "")
	}

	for _, dir := range []string{env.SourceRoot, env.TargetRoot, env.HomeDir} {
		if err := env.FS.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create directory %s: %v", dir, err)
		}
	}

	return env
}

// WithSourceTree writes tree into the source worktree
func (env *TestEnvironment) WithSourceTree(tree FileTree) *TestEnvironment {
	env.t.Helper()
	CreateFileTree(env.t, env.FS, env.SourceRoot, tree)
	return env
}

// WithTargetTree writes tree into the target worktree
func (env *TestEnvironment) WithTargetTree(tree FileTree) *TestEnvironment {
	env.t.Helper()
	CreateFileTree(env.t, env.FS, env.TargetRoot, tree)
	return env
}

// SourcePath joins rel onto the source root
func (env *TestEnvironment) SourcePath(rel string) string {
	return filepath.Join(env.SourceRoot, filepath.FromSlash(rel))
}

// TargetPath joins rel onto the target root
func (env *TestEnvironment) TargetPath(rel string) string {
	return filepath.Join(env.TargetRoot, filepath.FromSlash(rel))
}

// ReadTarget returns the content of a file in the target worktree, or "" if it is missing
func (env *TestEnvironment) ReadTarget(rel string) string {
	env.t.Helper()
	data, err := afero.ReadFile(env.FS, env.TargetPath(rel))
	if err != nil {
		return ""
	}
	return string(data)
}

// resolvedTempDir returns t.TempDir with symlinks resolved so paths compare
// equal to what git reports (macOS /var vs /private/var)
func resolvedTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if resolved, err := filepath.EvalSymlinks(dir); err == nil {
		return resolved
	}
	return dir
}
