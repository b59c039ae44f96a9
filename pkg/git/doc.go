// Package git wraps the git command line for the operations swt needs:
// repository discovery, worktree listing and management, and ignore checks.
package git
