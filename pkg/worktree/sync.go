package worktree

import (
	"context"

	"github.com/arthur-debert/swt/pkg/config"
	"github.com/arthur-debert/swt/pkg/errors"
	"github.com/arthur-debert/swt/pkg/filesync"
)

// SyncResult is a sync run together with the roots it resolved
type SyncResult struct {
	*filesync.Result
	Source string
	Target string
}

// Sync propagates configured files from source to target. An empty source
// means the main worktree, an empty target the worktree the manager runs in.
// Configuration is read from the source.
func (m *Manager) Sync(ctx context.Context, source, target string) (*SyncResult, error) {
	var err error
	if source == "" {
		if source, err = m.git.MainWorktreePath(ctx); err != nil {
			return nil, err
		}
	}
	if target == "" {
		if target, err = m.git.TopLevel(ctx); err != nil {
			return nil, err
		}
	}

	if source, err = m.absPath(source); err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "invalid source path")
	}
	if target, err = m.absPath(target); err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "invalid target path")
	}

	cfg := config.LoadOrDefault(source, m.overrides)
	return &SyncResult{
		Result: m.syncInto(source, target, cfg),
		Source: source,
		Target: target,
	}, nil
}
