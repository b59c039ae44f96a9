package worktree

import (
	"context"
	"path/filepath"

	"github.com/arthur-debert/swt/pkg/config"
	"github.com/arthur-debert/swt/pkg/filesync"
	"github.com/arthur-debert/swt/pkg/git"
	"github.com/arthur-debert/swt/pkg/ignore"
	"github.com/arthur-debert/swt/pkg/logging"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// ConfirmFunc asks the user a yes/no question
type ConfirmFunc func(prompt string) bool

// Manager runs worktree workflows from a working directory
type Manager struct {
	git       *git.Client
	fs        afero.Fs
	confirm   ConfirmFunc
	oracle    func(kind string) ignore.Oracle
	overrides config.Overrides
	logger    zerolog.Logger
}

// Option customises a Manager
type Option func(*Manager)

// WithConfirm sets the function used for confirmations. Without it every
// confirmation is declined unless the workflow is forced.
func WithConfirm(fn ConfirmFunc) Option {
	return func(m *Manager) { m.confirm = fn }
}

// WithFS replaces the filesystem used for syncing and removals
func WithFS(fs afero.Fs) Option {
	return func(m *Manager) { m.fs = fs }
}

// WithOracle replaces ignore oracle selection
func WithOracle(oracle ignore.Oracle) Option {
	return func(m *Manager) {
		m.oracle = func(string) ignore.Oracle { return oracle }
	}
}

// WithOverrides sets configuration values that win over files and environment
func WithOverrides(overrides config.Overrides) Option {
	return func(m *Manager) { m.overrides = overrides }
}

// NewManager returns a manager operating from dir
func NewManager(dir string, opts ...Option) *Manager {
	m := &Manager{
		git:     git.New(dir),
		fs:      afero.NewOsFs(),
		confirm: func(string) bool { return false },
		oracle:  ignore.Select,
		logger:  logging.GetLogger("worktree"),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Root returns the top level of the work tree the manager runs in
func (m *Manager) Root(ctx context.Context) (string, error) {
	return m.git.TopLevel(ctx)
}

// absPath resolves path against the directory the manager runs in, not the
// process working directory
func (m *Manager) absPath(path string) (string, error) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(m.git.Dir(), path)
	}
	return filepath.Abs(path)
}

// syncInto propagates configured files from source into target
func (m *Manager) syncInto(source, target string, cfg *config.Config) *filesync.Result {
	syncer := filesync.New(m.fs, m.oracle(cfg.IgnoreOracle))
	return syncer.Sync(filesync.Options{
		SourceRoot: source,
		TargetRoot: target,
		Config:     cfg,
	})
}
