package git

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/swt/pkg/errors"
)

// Worktree is one record of `git worktree list --porcelain`
type Worktree struct {
	Path     string `json:"path"`
	Head     string `json:"head,omitempty"`
	Branch   string `json:"branch,omitempty"`
	Bare     bool   `json:"bare,omitempty"`
	Detached bool   `json:"detached,omitempty"`
	Locked   bool   `json:"locked,omitempty"`
	Prunable bool   `json:"prunable,omitempty"`
}

// Name is the worktree directory's base name
func (w Worktree) Name() string {
	return filepath.Base(w.Path)
}

// ShortBranch is the branch without its refs/heads/ prefix
func (w Worktree) ShortBranch() string {
	return strings.TrimPrefix(w.Branch, "refs/heads/")
}

// ParseWorktreeList parses porcelain output. Records are separated by blank
// lines; the first record is always the main worktree.
func ParseWorktreeList(output string) []Worktree {
	var worktrees []Worktree
	var current *Worktree

	flush := func() {
		if current != nil && current.Path != "" {
			worktrees = append(worktrees, *current)
		}
		current = nil
	}

	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			flush()
			continue
		}

		key, value, _ := strings.Cut(line, " ")
		if key == "worktree" {
			flush()
			current = &Worktree{Path: value}
			continue
		}
		if current == nil {
			continue
		}

		switch key {
		case "HEAD":
			current.Head = value
		case "branch":
			current.Branch = value
		case "bare":
			current.Bare = true
		case "detached":
			current.Detached = true
		case "locked":
			current.Locked = true
		case "prunable":
			current.Prunable = true
		}
	}
	flush()

	return worktrees
}

// Worktrees lists all worktrees of the repository, main first
func (c *Client) Worktrees(ctx context.Context) ([]Worktree, error) {
	out, err := c.run(ctx, "worktree", "list", "--porcelain")
	if err != nil {
		return nil, err
	}
	return ParseWorktreeList(out), nil
}

// MainWorktreePath returns the path of the main worktree
func (c *Client) MainWorktreePath(ctx context.Context) (string, error) {
	worktrees, err := c.Worktrees(ctx)
	if err != nil {
		return "", err
	}
	if len(worktrees) == 0 {
		return "", errors.New(errors.ErrNotInRepo, "no worktrees reported by git")
	}
	return worktrees[0].Path, nil
}

// AddWorktree creates a worktree at path. With newBranch the branch is
// created from the current HEAD, otherwise the existing branch is checked out.
func (c *Client) AddWorktree(ctx context.Context, path, branch string, newBranch bool) error {
	args := []string{"worktree", "add"}
	if newBranch {
		args = append(args, "-b", branch, path)
	} else {
		args = append(args, path, branch)
	}
	_, err := c.run(ctx, args...)
	return err
}

// RemoveWorktree removes the worktree at path
func (c *Client) RemoveWorktree(ctx context.Context, path string, force bool) error {
	args := []string{"worktree", "remove"}
	if force {
		args = append(args, "--force")
	}
	args = append(args, path)
	_, err := c.run(ctx, args...)
	return err
}

// Prune removes administrative data of worktrees whose directories are gone
func (c *Client) Prune(ctx context.Context) error {
	_, err := c.run(ctx, "worktree", "prune")
	return err
}
