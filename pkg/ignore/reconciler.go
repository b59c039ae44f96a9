package ignore

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	swterrors "github.com/arthur-debert/swt/pkg/errors"
	"github.com/arthur-debert/swt/pkg/logging"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// SectionMarker introduces every block of entries appended by swt
const SectionMarker = "# swt synced files"

// Result describes what one reconciliation did to the ignore file
type Result struct {
	Path string

	// Added are the entries appended, in transfer order
	Added []string

	// Covered were skipped because existing rules already ignore them
	Covered []string

	// Listed were skipped because the file already has a matching line
	Listed []string

	Written bool
}

// Reconciler appends transferred paths to a worktree's .gitignore
type Reconciler struct {
	fs     afero.Fs
	oracle Oracle
	logger zerolog.Logger
}

// NewReconciler returns a reconciler editing files on fs and consulting oracle
func NewReconciler(fs afero.Fs, oracle Oracle) *Reconciler {
	return &Reconciler{
		fs:     fs,
		oracle: oracle,
		logger: logging.GetLogger("ignore.reconciler"),
	}
}

// Reconcile makes sure every path in paths is ignored in targetRoot. Paths
// already ignored by inherited rules or already listed are skipped; the rest
// are appended under SectionMarker. The file is only written when something
// new is appended.
func (r *Reconciler) Reconcile(targetRoot string, paths []string) (Result, error) {
	result := Result{Path: filepath.Join(targetRoot, gitignoreFile)}
	if len(paths) == 0 {
		return result, nil
	}

	content, mode, err := r.read(result.Path)
	if err != nil {
		return result, swterrors.Wrapf(err, swterrors.ErrIgnoreUpdate, "failed to read %s", result.Path).
			WithDetail("path", result.Path)
	}

	existing := existingPatterns(content)
	for _, path := range paths {
		if r.oracle != nil && r.oracle.IsIgnored(path, targetRoot) {
			r.logger.Info().Str("path", path).Msg("Already covered by existing ignore rules")
			result.Covered = append(result.Covered, path)
			continue
		}

		normalized := strings.TrimSuffix(path, "/")
		if existing.Contains(normalized) {
			result.Listed = append(result.Listed, path)
			continue
		}
		existing.Add(normalized)
		result.Added = append(result.Added, path)
	}

	if len(result.Added) == 0 {
		return result, nil
	}

	var b strings.Builder
	b.WriteString(content)
	if content != "" {
		if !strings.HasSuffix(content, "\n") {
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	b.WriteString(SectionMarker + "\n")
	for _, path := range result.Added {
		b.WriteString(path + "\n")
	}

	if err := afero.WriteFile(r.fs, result.Path, []byte(b.String()), mode); err != nil {
		return result, swterrors.Wrapf(err, swterrors.ErrIgnoreUpdate, "failed to write %s", result.Path).
			WithDetail("path", result.Path)
	}
	result.Written = true

	r.logger.Info().
		Str("path", result.Path).
		Strs("added", result.Added).
		Msg("Updated ignore file")

	return result, nil
}

// read returns the current content and mode; a missing file is empty
func (r *Reconciler) read(path string) (string, fs.FileMode, error) {
	info, err := r.fs.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", 0644, nil
		}
		return "", 0, err
	}

	data, err := afero.ReadFile(r.fs, path)
	if err != nil {
		return "", 0, err
	}
	return string(data), info.Mode().Perm(), nil
}

// existingPatterns collects non-blank, non-comment lines with any trailing
// slash removed
func existingPatterns(content string) mapset.Set[string] {
	set := mapset.NewThreadUnsafeSet[string]()
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		set.Add(strings.TrimSuffix(trimmed, "/"))
	}
	return set
}
