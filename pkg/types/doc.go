// Package types defines the data that flows through the swt file sync engine:
// sync patterns parsed from configuration, entries resolved against a source
// worktree, and the outcome of each transfer.
package types
