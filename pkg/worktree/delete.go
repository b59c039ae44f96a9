package worktree

import (
	"context"
	"fmt"

	"github.com/arthur-debert/swt/pkg/errors"
)

// DeleteResult describes the outcome of Delete
type DeleteResult struct {
	Path     string
	MainPath string

	// Cancelled is set when the user declined the confirmation
	Cancelled bool
}

// Delete removes the linked worktree the manager runs in. Without force the
// user is asked first; declining is not an error.
func (m *Manager) Delete(ctx context.Context, force bool) (*DeleteResult, error) {
	linked, err := m.git.IsLinkedWorktree(ctx)
	if err != nil {
		return nil, err
	}
	if !linked {
		return nil, errors.New(errors.ErrNotWorktree, "not inside a linked worktree; run delete from the worktree you want to remove")
	}

	current, err := m.git.TopLevel(ctx)
	if err != nil {
		return nil, err
	}
	mainPath, err := m.git.MainWorktreePath(ctx)
	if err != nil {
		return nil, err
	}

	result := &DeleteResult{Path: current, MainPath: mainPath}
	if !force && !m.confirm(fmt.Sprintf("Delete worktree %s?", current)) {
		result.Cancelled = true
		return result, nil
	}

	m.logger.Info().Str("path", current).Msg("Removing worktree")
	if err := m.git.In(mainPath).RemoveWorktree(ctx, current, true); err != nil {
		return nil, err
	}
	return result, nil
}

// Failure records a worktree that could not be removed
type Failure struct {
	Path string
	Err  error
}

// DeleteAllResult describes the outcome of DeleteAll
type DeleteAllResult struct {
	MainPath  string
	Removed   []string
	Failures  []Failure
	Cancelled bool

	// PruneErr is set when `git worktree prune` failed after the removals
	PruneErr error
}

// DeleteAll removes every worktree except the main one, then prunes git's
// bookkeeping once. Individual failures are collected, not returned.
func (m *Manager) DeleteAll(ctx context.Context, force bool) (*DeleteAllResult, error) {
	entries, err := m.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, errors.New(errors.ErrNotInRepo, "no worktrees reported by git")
	}

	result := &DeleteAllResult{MainPath: entries[0].Path}
	targets := entries[1:]
	if len(targets) == 0 {
		return result, nil
	}

	if !force && !m.confirm(fmt.Sprintf("Delete %d worktree(s)?", len(targets))) {
		result.Cancelled = true
		return result, nil
	}

	for _, wt := range targets {
		if err := m.fs.RemoveAll(wt.Path); err != nil {
			m.logger.Warn().Err(err).Str("path", wt.Path).Msg("Failed to remove worktree")
			result.Failures = append(result.Failures, Failure{Path: wt.Path, Err: err})
			continue
		}
		m.logger.Info().Str("path", wt.Path).Msg("Removed worktree")
		result.Removed = append(result.Removed, wt.Path)
	}

	if err := m.git.In(result.MainPath).Prune(ctx); err != nil {
		m.logger.Warn().Err(err).Msg("git worktree prune failed")
		result.PruneErr = err
	}

	return result, nil
}
