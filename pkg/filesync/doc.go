// Package filesync propagates untracked local files from one worktree to
// another. The Matcher resolves configured patterns against the source tree,
// the Executor links or copies each match, and Sync drives both and hands the
// transferred paths to the ignore reconciler.
package filesync
