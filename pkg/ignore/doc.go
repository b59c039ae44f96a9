// Package ignore keeps a worktree's .gitignore in step with the files swt
// syncs into it. It provides the Reconciler, which appends new entries, and
// the oracles it consults to learn whether a path is already ignored.
package ignore
