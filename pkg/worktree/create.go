package worktree

import (
	"context"
	"strings"

	"github.com/arthur-debert/swt/pkg/config"
	"github.com/arthur-debert/swt/pkg/errors"
	"github.com/arthur-debert/swt/pkg/filesync"
	"github.com/arthur-debert/swt/pkg/filesystem"
	"github.com/arthur-debert/swt/pkg/logging"
)

// CreateOptions describe a new worktree
type CreateOptions struct {
	Name string

	// Branch defaults to Name
	Branch string

	// Path overrides the configured worktree directory
	Path string
}

// CreateResult describes a created worktree
type CreateResult struct {
	Source    string
	Path      string
	Branch    string
	NewBranch bool

	// Sync is nil when no files are configured for syncing
	Sync *filesync.Result
}

// Create adds a worktree and syncs configured files into it. Sync problems
// are reported in the result and never fail the creation.
func (m *Manager) Create(ctx context.Context, opts CreateOptions) (*CreateResult, error) {
	name := strings.TrimSpace(opts.Name)
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	root, err := m.git.TopLevel(ctx)
	if err != nil {
		return nil, err
	}
	defer logging.LogOperationStart(m.logger, "create")()

	cfg := config.LoadOrDefault(root, m.overrides)
	m.logger.Debug().Str("config", cfg.Describe()).Msg("Configuration loaded")

	branch := opts.Branch
	if branch == "" {
		branch = name
	}

	path, err := m.absPath(config.ResolveWorktreeDir(cfg, root, name, opts.Path))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "invalid worktree path")
	}

	exists, err := filesystem.Exists(m.fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot inspect %s", path)
	}
	if exists {
		return nil, errors.Newf(errors.ErrWorktreeExists, "directory already exists: %s", path).
			WithDetail("path", path)
	}

	newBranch := !m.git.BranchExists(ctx, branch)
	m.logger.Info().Str("path", path).Str("branch", branch).Bool("newBranch", newBranch).Msg("Creating worktree")

	if err := m.git.AddWorktree(ctx, path, branch, newBranch); err != nil {
		m.cleanupFailedCreate(ctx, path)
		return nil, err
	}

	result := &CreateResult{Source: root, Path: path, Branch: branch, NewBranch: newBranch}
	if cfg.HasPatterns() {
		result.Sync = m.syncInto(root, path, cfg)
	}

	return result, nil
}

// cleanupFailedCreate removes whatever a failed `git worktree add` left behind
func (m *Manager) cleanupFailedCreate(ctx context.Context, path string) {
	exists, err := filesystem.Exists(m.fs, path)
	if err != nil || !exists {
		return
	}
	if err := m.git.RemoveWorktree(ctx, path, true); err != nil {
		m.logger.Warn().Err(err).Str("path", path).Msg("Could not clean up partially created worktree")
	}
}
