// Package testutil provides shared helpers for swt tests.
//
// Key components:
//   - TestEnvironment: isolated HOME/XDG directories and a source/target worktree pair
//   - FileTree: declarative directory trees written to any afero filesystem
//   - Git helpers: RequireGit and InitRepo for tests that need a real repository
//
// Usage guidelines:
//   - Engine tests prefer EnvMemoryOnly; symlink behaviour needs EnvIsolated
//   - Tests that shell out to git call RequireGit first
package testutil
