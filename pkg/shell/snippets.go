// Package shell provides the shell integration snippet. The snippet is only
// printed; adding it to a profile is left to the user.
package shell

import (
	_ "embed"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/swt/pkg/errors"
)

var (
	//go:embed scripts/swt.sh
	posixSnippet string

	//go:embed scripts/swt.fish
	fishSnippet string
)

// Supported lists the shells Snippet knows about
var Supported = []string{"bash", "zsh", "fish"}

// Snippet returns the integration function for shell. A path such as
// /bin/zsh is accepted and reduced to its base name.
func Snippet(shell string) (string, error) {
	switch normalize(shell) {
	case "bash", "zsh", "sh":
		return posixSnippet, nil
	case "fish":
		return fishSnippet, nil
	default:
		return "", errors.Newf(errors.ErrUnsupportedShell, "unsupported shell %q", shell).
			WithDetail("supported", strings.Join(Supported, ", "))
	}
}

// Detect guesses the user's shell from $SHELL, falling back to bash
func Detect(envShell string) string {
	name := normalize(envShell)
	for _, s := range Supported {
		if s == name {
			return s
		}
	}
	return "bash"
}

func normalize(shell string) string {
	return strings.ToLower(filepath.Base(strings.TrimSpace(shell)))
}
