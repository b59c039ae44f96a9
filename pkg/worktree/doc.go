// Package worktree implements the swt workflows on top of git worktrees:
// create (with file sync), list, find, home, delete, delete-all and an
// explicit sync between two worktrees.
package worktree
