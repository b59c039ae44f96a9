package ignore

import (
	"context"

	"github.com/arthur-debert/swt/pkg/config"
	"github.com/arthur-debert/swt/pkg/git"
	"github.com/arthur-debert/swt/pkg/logging"
	sabhiram "github.com/sabhiram/go-gitignore"
)

// Oracle answers whether relPath, relative to workDir, is already ignored by
// rules that exist in the worktree. Implementations fail open: when they
// cannot tell, the path is reported as not ignored.
type Oracle interface {
	IsIgnored(relPath, workDir string) bool
}

// Select returns the oracle named by the ignoreOracle setting. "git" falls
// back to the builtin oracle when no git binary is installed.
func Select(kind string) Oracle {
	logger := logging.GetLogger("ignore")
	if kind != config.OracleBuiltin && git.Available() {
		logger.Debug().Msg("Using git check-ignore oracle")
		return NewGitOracle()
	}
	logger.Debug().Str("requested", kind).Msg("Using builtin ignore oracle")
	return NewBuiltinOracle()
}

// GitOracle asks `git check-ignore`
type GitOracle struct{}

// NewGitOracle returns an oracle backed by the git binary
func NewGitOracle() *GitOracle {
	return &GitOracle{}
}

func (o *GitOracle) IsIgnored(relPath, workDir string) bool {
	ignored, err := git.New(workDir).CheckIgnore(context.Background(), relPath)
	if err != nil {
		logger := logging.GetLogger("ignore")
		logger.Debug().Err(err).Str("path", relPath).
			Msg("check-ignore failed, treating path as not ignored")
		return false
	}
	return ignored
}

// StaticOracle evaluates a fixed set of gitignore lines and ignores the
// filesystem entirely
type StaticOracle struct {
	matcher *sabhiram.GitIgnore
}

// NewStaticOracle compiles lines in .gitignore syntax
func NewStaticOracle(lines ...string) *StaticOracle {
	return &StaticOracle{matcher: sabhiram.CompileIgnoreLines(lines...)}
}

func (o *StaticOracle) IsIgnored(relPath, _ string) bool {
	return o.matcher.MatchesPath(relPath)
}
