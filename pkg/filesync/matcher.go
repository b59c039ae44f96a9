package filesync

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/swt/pkg/filesystem"
	"github.com/arthur-debert/swt/pkg/logging"
	"github.com/arthur-debert/swt/pkg/types"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

const gitDirName = ".git"

// Matcher resolves sync patterns against a source tree
type Matcher struct {
	fs     afero.Fs
	logger zerolog.Logger
}

// NewMatcher returns a matcher reading from fs
func NewMatcher(fs afero.Fs) *Matcher {
	return &Matcher{
		fs:     fs,
		logger: logging.GetLogger("filesync.matcher"),
	}
}

// Resolve returns the entries under sourceRoot matched by pattern, in walk
// order. No match is not an error. Problems that prevent part of the tree
// from being examined are returned as warnings.
//
//   - "!x" patterns are unsupported and resolve to nothing.
//   - "dir/" resolves to the single directory entry when sourceRoot/dir is a directory.
//   - Anything else is a glob matched against regular files. Unanchored
//     globs match at any depth, "/x" only at the root. Directories matching
//     the glob are neither entered nor returned.
func (m *Matcher) Resolve(sourceRoot string, pattern types.SyncPattern) ([]types.ResolvedEntry, []string) {
	if pattern.Negated {
		m.logger.Debug().Str("pattern", pattern.Raw).Msg("Negated patterns are not supported, skipping")
		return nil, nil
	}

	if pattern.IsDirectory {
		return m.resolveDirectory(sourceRoot, pattern)
	}
	return m.resolveGlob(sourceRoot, pattern)
}

func (m *Matcher) resolveDirectory(sourceRoot string, pattern types.SyncPattern) ([]types.ResolvedEntry, []string) {
	rel := strings.Trim(pattern.Raw, "/")
	if rel == "" || escapesRoot(rel) {
		return nil, []string{fmt.Sprintf("pattern %q does not name a directory inside the worktree", pattern.Raw)}
	}

	info, err := m.fs.Stat(filepath.Join(sourceRoot, filepath.FromSlash(rel)))
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, []string{fmt.Sprintf("cannot inspect %s: %v", rel, err)}
		}
		m.logger.Debug().Str("pattern", pattern.Raw).Msg("Directory not present in source")
		return nil, nil
	}
	if !info.IsDir() {
		m.logger.Debug().Str("pattern", pattern.Raw).Msg("Directory pattern matches a non-directory, skipping")
		return nil, nil
	}

	return []types.ResolvedEntry{{RelativePath: rel, Kind: types.KindDirectory}}, nil
}

func (m *Matcher) resolveGlob(sourceRoot string, pattern types.SyncPattern) ([]types.ResolvedEntry, []string) {
	glob := globFor(pattern.Raw)
	if !doublestar.ValidatePattern(glob) {
		return nil, []string{fmt.Sprintf("invalid pattern %q", pattern.Raw)}
	}

	// Walk does not descend into a root that is itself a symlink
	root, err := filesystem.ResolveLink(m.fs, sourceRoot)
	if err != nil {
		return nil, []string{fmt.Sprintf("cannot resolve source %s: %v", sourceRoot, err)}
	}
	if !filesystem.IsDir(m.fs, root) {
		return nil, []string{fmt.Sprintf("source %s is not a directory", sourceRoot)}
	}

	var entries []types.ResolvedEntry
	var warnings []string

	walkErr := afero.Walk(m.fs, root, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			if p == root {
				return err
			}
			warnings = append(warnings, fmt.Sprintf("cannot read %s: %v", p, err))
			if info != nil && info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		rel, relErr := filepath.Rel(root, p)
		if relErr != nil || rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if info.Name() == gitDirName {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if info.IsDir() {
			if match(glob, rel) || match(glob, rel+"/") {
				m.logger.Debug().Str("pattern", pattern.Raw).Str("dir", rel).
					Msg("Glob matches a directory, not descending")
				return filepath.SkipDir
			}
			return nil
		}

		if info.Mode().IsRegular() && match(glob, rel) {
			entries = append(entries, types.ResolvedEntry{RelativePath: rel, Kind: types.KindFile})
		}
		return nil
	})
	if walkErr != nil {
		warnings = append(warnings, fmt.Sprintf("cannot walk %s: %v", sourceRoot, walkErr))
	}

	m.logger.Debug().Str("pattern", pattern.Raw).Int("matches", len(entries)).Msg("Resolved pattern")
	return entries, warnings
}

// globFor turns a gitignore-style pattern into a doublestar glob: a leading
// slash anchors to the root, otherwise the pattern may match at any depth.
func globFor(raw string) string {
	if strings.HasPrefix(raw, "/") {
		return strings.TrimPrefix(raw, "/")
	}
	return "**/" + raw
}

func match(glob, rel string) bool {
	ok, err := doublestar.Match(glob, rel)
	return err == nil && ok
}

func escapesRoot(rel string) bool {
	cleaned := path.Clean(rel)
	return cleaned == ".." || strings.HasPrefix(cleaned, "../")
}
