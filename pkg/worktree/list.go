package worktree

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/swt/pkg/errors"
	"github.com/arthur-debert/swt/pkg/git"
)

// Entry is a worktree annotated for display
type Entry struct {
	git.Worktree
	IsMain    bool `json:"main"`
	IsCurrent bool `json:"current"`
}

// List returns every worktree, main first, marking the one the manager runs in
func (m *Manager) List(ctx context.Context) ([]Entry, error) {
	worktrees, err := m.git.Worktrees(ctx)
	if err != nil {
		return nil, err
	}

	current, err := m.git.TopLevel(ctx)
	if err != nil {
		current = ""
	}

	entries := make([]Entry, 0, len(worktrees))
	for i, wt := range worktrees {
		entries = append(entries, Entry{
			Worktree:  wt,
			IsMain:    i == 0,
			IsCurrent: current != "" && samePath(wt.Path, current),
		})
	}
	return entries, nil
}

// Find returns the worktree whose directory name or branch equals name
func (m *Manager) Find(ctx context.Context, name string) (git.Worktree, error) {
	worktrees, err := m.git.Worktrees(ctx)
	if err != nil {
		return git.Worktree{}, err
	}

	for _, wt := range worktrees {
		if wt.Name() == name || (wt.Branch != "" && wt.ShortBranch() == name) {
			return wt, nil
		}
	}

	available := make([]string, 0, len(worktrees))
	for _, wt := range worktrees {
		label := wt.Name()
		if wt.Branch != "" && wt.ShortBranch() != label {
			label += " (" + wt.ShortBranch() + ")"
		}
		available = append(available, label)
	}

	return git.Worktree{}, errors.Newf(errors.ErrWorktreeNotFound, "worktree %q not found", name).
		WithDetail("available", strings.Join(available, ", "))
}

// Home returns the main worktree path
func (m *Manager) Home(ctx context.Context) (string, error) {
	return m.git.MainWorktreePath(ctx)
}

func samePath(a, b string) bool {
	if ra, err := filepath.EvalSymlinks(a); err == nil {
		a = ra
	}
	if rb, err := filepath.EvalSymlinks(b); err == nil {
		b = rb
	}
	return filepath.Clean(a) == filepath.Clean(b)
}
