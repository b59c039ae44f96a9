package git

import (
	"bytes"
	"context"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/arthur-debert/swt/pkg/errors"
	"github.com/arthur-debert/swt/pkg/logging"
	"github.com/rs/zerolog"
)

// DefaultTimeout bounds every git invocation
const DefaultTimeout = 30 * time.Second

// Client runs git commands in a fixed working directory
type Client struct {
	dir     string
	timeout time.Duration
	logger  zerolog.Logger
}

// New returns a client running git in dir
func New(dir string) *Client {
	return &Client{
		dir:     dir,
		timeout: DefaultTimeout,
		logger:  logging.GetLogger("git"),
	}
}

// WithTimeout returns a copy of the client using timeout for each command
func (c *Client) WithTimeout(timeout time.Duration) *Client {
	clone := *c
	clone.timeout = timeout
	return &clone
}

// In returns a client for another working directory
func (c *Client) In(dir string) *Client {
	clone := *c
	clone.dir = dir
	return &clone
}

// Dir returns the working directory commands run in
func (c *Client) Dir() string {
	return c.dir
}

// Available reports whether a git binary is on PATH
func Available() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

// run executes git with args and returns trimmed stdout.
// stderr is folded into the returned error.
func (c *Client) run(ctx context.Context, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	logging.LogCommand("git", args)

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = c.dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return "", errors.Wrapf(err, errors.ErrGitCommand, "git %s: %s", args[0], msg).
			WithDetail("args", args).
			WithDetail("dir", c.dir)
	}

	return strings.TrimRight(stdout.String(), "\n"), nil
}

// IsRepo reports whether the working directory is inside a git work tree
func (c *Client) IsRepo(ctx context.Context) bool {
	out, err := c.run(ctx, "rev-parse", "--is-inside-work-tree")
	return err == nil && out == "true"
}

// TopLevel returns the root of the work tree containing the working directory
func (c *Client) TopLevel(ctx context.Context) (string, error) {
	out, err := c.run(ctx, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", errors.Wrap(err, errors.ErrNotInRepo, "not inside a git repository").
			WithDetail("dir", c.dir)
	}
	return filepath.Clean(out), nil
}

// GitDir returns the absolute git directory of the current work tree.
// For a linked worktree this is .git/worktrees/<name> in the main repository.
func (c *Client) GitDir(ctx context.Context) (string, error) {
	out, err := c.run(ctx, "rev-parse", "--absolute-git-dir")
	if err != nil {
		return "", errors.Wrap(err, errors.ErrNotInRepo, "not inside a git repository")
	}
	return filepath.Clean(out), nil
}

// CommonDir returns the absolute git directory shared by all worktrees
func (c *Client) CommonDir(ctx context.Context) (string, error) {
	out, err := c.run(ctx, "rev-parse", "--path-format=absolute", "--git-common-dir")
	if err != nil {
		return "", errors.Wrap(err, errors.ErrNotInRepo, "not inside a git repository")
	}
	if !filepath.IsAbs(out) {
		out = filepath.Join(c.dir, out)
	}
	return filepath.Clean(out), nil
}

// IsLinkedWorktree reports whether the working directory belongs to a
// worktree created with `git worktree add` rather than the main one.
func (c *Client) IsLinkedWorktree(ctx context.Context) (bool, error) {
	gitDir, err := c.GitDir(ctx)
	if err != nil {
		return false, err
	}
	commonDir, err := c.CommonDir(ctx)
	if err != nil {
		return false, err
	}
	return realPath(gitDir) != realPath(commonDir), nil
}

// BranchExists reports whether a local branch with this name exists
func (c *Client) BranchExists(ctx context.Context, branch string) bool {
	_, err := c.run(ctx, "show-ref", "--verify", "--quiet", "refs/heads/"+branch)
	return err == nil
}

// CheckIgnore asks git whether path, relative to the working directory, is
// ignored. Exit status 1 means not ignored; anything else is an error.
func (c *Client) CheckIgnore(ctx context.Context, path string) (bool, error) {
	_, err := c.run(ctx, "check-ignore", "-q", "--", path)
	if err == nil {
		return true, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
		return false, nil
	}
	return false, err
}

func realPath(path string) string {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		return resolved
	}
	return path
}
