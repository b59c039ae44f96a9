package filesync

import (
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/swt/pkg/config"
	"github.com/arthur-debert/swt/pkg/ignore"
	"github.com/arthur-debert/swt/pkg/logging"
	"github.com/arthur-debert/swt/pkg/types"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Options are the inputs of one sync run
type Options struct {
	SourceRoot string
	TargetRoot string
	Config     *config.Config
}

// Result aggregates everything one sync run did
type Result struct {
	Transfers []types.TransferResult
	Ignore    []ignore.Result
	Warnings  []string
}

// Performed returns the transfers that created something in the target
func (r *Result) Performed() []types.TransferResult {
	var performed []types.TransferResult
	for _, t := range r.Transfers {
		if t.Performed {
			performed = append(performed, t)
		}
	}
	return performed
}

// Failed returns the transfers that raised an error
func (r *Result) Failed() []types.TransferResult {
	var failed []types.TransferResult
	for _, t := range r.Transfers {
		if t.Failed() {
			failed = append(failed, t)
		}
	}
	return failed
}

// Syncer drives the matcher, executor and ignore reconciler
type Syncer struct {
	matcher    *Matcher
	executor   *Executor
	reconciler *ignore.Reconciler
	logger     zerolog.Logger
}

// New returns a syncer working on fs and consulting oracle for ignore checks
func New(fs afero.Fs, oracle ignore.Oracle) *Syncer {
	return &Syncer{
		matcher:    NewMatcher(fs),
		executor:   NewExecutor(fs),
		reconciler: ignore.NewReconciler(fs, oracle),
		logger:     logging.GetLogger("filesync"),
	}
}

// Sync propagates configured files from the source to the target worktree.
// Copy patterns run before link patterns, and each group that transferred
// something gets its own ignore update. Nothing here is fatal: every problem
// ends up in Result.Warnings.
func (s *Syncer) Sync(opts Options) *Result {
	result := &Result{}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	defer logging.LogOperationStart(s.logger, "sync")()

	if sameDir(opts.SourceRoot, opts.TargetRoot) {
		s.warn(result, fmt.Sprintf("source and target are the same directory (%s), nothing to sync", opts.SourceRoot))
		return result
	}

	groups := []struct {
		mode types.Mode
		raw  []string
	}{
		{types.ModeCopy, cfg.CopyPatterns()},
		{types.ModeLink, cfg.LinkPatterns()},
	}

	for _, group := range groups {
		if len(group.raw) == 0 {
			continue
		}

		var transferred []string
		for _, pattern := range types.ParsePatterns(group.raw, group.mode) {
			if pattern.Negated {
				s.warn(result, fmt.Sprintf("negated pattern %q is not supported and was skipped", pattern.Raw))
				continue
			}

			entries, warnings := s.matcher.Resolve(opts.SourceRoot, pattern)
			for _, w := range warnings {
				s.warn(result, w)
			}

			for _, entry := range entries {
				tr := s.executor.TransferEntry(opts.SourceRoot, opts.TargetRoot, entry, group.mode)
				result.Transfers = append(result.Transfers, tr)
				result.Warnings = append(result.Warnings, tr.Warnings...)
				if tr.Err != nil {
					result.Warnings = append(result.Warnings, failureWarning(tr))
					continue
				}
				if tr.Performed {
					transferred = append(transferred, tr.IgnorePath())
				}
			}
		}

		if !cfg.AddToGitignore || len(transferred) == 0 {
			continue
		}

		ir, err := s.reconciler.Reconcile(opts.TargetRoot, transferred)
		if err != nil {
			s.warn(result, fmt.Sprintf("could not update .gitignore: %v", err))
			continue
		}
		result.Ignore = append(result.Ignore, ir)
	}

	s.logger.Info().
		Int("transfers", len(result.Transfers)).
		Int("performed", len(result.Performed())).
		Int("warnings", len(result.Warnings)).
		Msg("Sync finished")

	return result
}

// GeneralWarnings returns the warnings not tied to a single transfer, such
// as unsupported patterns or a failed .gitignore update
func (r *Result) GeneralWarnings() []string {
	owned := mapset.NewThreadUnsafeSet[string]()
	for _, t := range r.Transfers {
		for _, w := range t.Warnings {
			owned.Add(w)
		}
		if t.Failed() {
			owned.Add(failureWarning(t))
		}
	}

	var general []string
	for _, w := range r.Warnings {
		if !owned.Contains(w) {
			general = append(general, w)
		}
	}
	return general
}

func failureWarning(tr types.TransferResult) string {
	return fmt.Sprintf("%s %s: %v", tr.Mode, tr.RelativePath, tr.Err)
}

func (s *Syncer) warn(result *Result, msg string) {
	s.logger.Warn().Msg(msg)
	result.Warnings = append(result.Warnings, msg)
}

func sameDir(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	if ra, err := filepath.EvalSymlinks(absA); err == nil {
		absA = ra
	}
	if rb, err := filepath.EvalSymlinks(absB); err == nil {
		absB = rb
	}
	return absA == absB
}
