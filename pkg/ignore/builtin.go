package ignore

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/swt/pkg/logging"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
	"github.com/rs/zerolog"
)

const (
	gitignoreFile = ".gitignore"
	dotGit        = ".git"
)

// BuiltinOracle evaluates ignore rules in-process: system and global excludes,
// the repository's info/exclude and every .gitignore from the worktree root
// down to the entry's parent directory.
type BuiltinOracle struct {
	fs     billy.Filesystem
	logger zerolog.Logger
}

// NewBuiltinOracle returns an oracle reading from the real filesystem
func NewBuiltinOracle() *BuiltinOracle {
	return &BuiltinOracle{
		fs:     osfs.New("/"),
		logger: logging.GetLogger("ignore.builtin"),
	}
}

func (o *BuiltinOracle) IsIgnored(relPath, workDir string) bool {
	rel := strings.Trim(filepath.ToSlash(relPath), "/")
	if rel == "" {
		return false
	}
	parts := strings.Split(rel, "/")

	isDir := strings.HasSuffix(relPath, "/")
	if info, err := o.fs.Lstat(filepath.Join(workDir, rel)); err == nil && info.IsDir() {
		isDir = true
	}

	matcher := gitignore.NewMatcher(o.patterns(workDir, parts[:len(parts)-1]))

	// An excluded parent directory excludes everything below it
	for i := 1; i <= len(parts); i++ {
		dir := i < len(parts) || isDir
		if matcher.Match(parts[:i], dir) {
			return true
		}
	}
	return false
}

// patterns collects rules in ascending priority
func (o *BuiltinOracle) patterns(workDir string, dirParts []string) []gitignore.Pattern {
	var ps []gitignore.Pattern

	if system, err := gitignore.LoadSystemPatterns(o.fs); err == nil {
		ps = append(ps, system...)
	}
	if global, err := gitignore.LoadGlobalPatterns(o.fs); err == nil {
		ps = append(ps, global...)
	} else {
		o.logger.Debug().Err(err).Msg("Could not load global excludes")
	}

	if commonDir := o.commonGitDir(workDir); commonDir != "" {
		ps = append(ps, o.readFile(filepath.Join(commonDir, "info", "exclude"), nil)...)
	}

	for i := 0; i <= len(dirParts); i++ {
		domain := dirParts[:i]
		path := filepath.Join(append([]string{workDir}, domain...)...)
		ps = append(ps, o.readFile(filepath.Join(path, gitignoreFile), domain)...)
	}

	return ps
}

// readFile parses one ignore file; missing or unreadable files yield nothing
func (o *BuiltinOracle) readFile(path string, domain []string) []gitignore.Pattern {
	f, err := o.fs.Open(path)
	if err != nil {
		if !os.IsNotExist(err) {
			o.logger.Debug().Err(err).Str("path", path).Msg("Skipping unreadable ignore file")
		}
		return nil
	}
	defer f.Close()

	var ps []gitignore.Pattern
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}
		ps = append(ps, gitignore.ParsePattern(line, domain))
	}
	return ps
}

// commonGitDir finds the git directory shared by all worktrees. In a linked
// worktree .git is a file pointing at .git/worktrees/<name>, whose commondir
// file points back at the shared directory.
func (o *BuiltinOracle) commonGitDir(workDir string) string {
	dotGitPath := filepath.Join(workDir, dotGit)
	info, err := o.fs.Stat(dotGitPath)
	if err != nil {
		return ""
	}
	if info.IsDir() {
		return dotGitPath
	}

	data, err := util.ReadFile(o.fs, dotGitPath)
	if err != nil {
		return ""
	}
	gitDir, ok := strings.CutPrefix(strings.TrimSpace(string(data)), "gitdir:")
	if !ok {
		return ""
	}
	gitDir = absFrom(workDir, strings.TrimSpace(gitDir))

	common, err := util.ReadFile(o.fs, filepath.Join(gitDir, "commondir"))
	if err != nil {
		return gitDir
	}
	return absFrom(gitDir, strings.TrimSpace(string(common)))
}

func absFrom(base, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(base, path)
}
