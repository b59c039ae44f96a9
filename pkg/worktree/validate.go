package worktree

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/swt/pkg/errors"
)

// ValidateName checks a worktree name before it becomes a directory and a
// branch. Names may contain slashes (feat/login) but no "." or ".."
// component, and may not be absolute.
func ValidateName(name string) error {
	if name == "" {
		return errors.New(errors.ErrInvalidInput, "worktree name is required")
	}

	if filepath.IsAbs(name) || strings.HasPrefix(name, "/") {
		return errors.Newf(errors.ErrInvalidInput, "worktree name %q must be relative; use --path for a location", name)
	}

	for _, r := range name {
		if r < 32 || r == 127 {
			return errors.Newf(errors.ErrInvalidInput, "worktree name %q contains control characters", name)
		}
	}

	if strings.ContainsAny(name, `\:*?"<>|`) {
		return errors.Newf(errors.ErrInvalidInput, "worktree name %q contains invalid characters", name)
	}

	for _, part := range strings.Split(name, "/") {
		if part == "" || part == "." || part == ".." {
			return errors.Newf(errors.ErrInvalidInput, "worktree name %q has an empty, '.' or '..' component", name)
		}
	}

	return nil
}
