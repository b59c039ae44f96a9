package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/swt/pkg/errors"
	"github.com/pelletier/go-toml/v2"
)

const configHeader = `# swt configuration
#
# Layers, later wins: built-in defaults, ~/.swtconfig.toml, this file,
# SWT_* environment variables.
`

// keyComments documents each key in generated files
var keyComments = map[string]string{
	"defaultWorktreeDir": `Where to create worktrees by default
Relative paths ("../", "../../worktrees/") resolve from the repository root,
absolute paths ("/home/user/worktrees/") are used as-is`,
	"addToGitignore": `Add synced files to the new worktree's .gitignore`,
	"ignoreOracle": `How to tell whether a path is already ignored: "git" asks the git binary,
"builtin" evaluates .gitignore files in-process`,
	"filesToSync": `Files to symlink into new worktrees (gitignore syntax)
Only list files that are NOT committed to git, for example:
  filesToSync = [".env", ".env.local", ".vscode/settings.json", ".idea/"]`,
	"filesToCopy": `Files to copy into new worktrees instead of linking them
Use this for files each worktree should be able to change independently`,
}

// GenerateConfigContent renders the default configuration as a commented TOML document
func GenerateConfigContent() (string, error) {
	body, err := toml.Marshal(Default())
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to marshal default configuration")
	}

	var out bytes.Buffer
	out.WriteString(configHeader)

	for _, line := range strings.Split(strings.TrimRight(string(body), "\n"), "\n") {
		key := strings.TrimSpace(strings.SplitN(line, "=", 2)[0])
		if comment, ok := keyComments[key]; ok {
			out.WriteString("\n")
			for _, c := range strings.Split(comment, "\n") {
				out.WriteString("# " + c + "\n")
			}
		}
		out.WriteString(line + "\n")
	}

	return out.String(), nil
}

// InitConfig writes a commented swtconfig.toml into dir and returns its path.
// An existing file is never overwritten.
func InitConfig(dir string) (string, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err == nil {
		return path, errors.Newf(errors.ErrConfigExists, "config file already exists: %s", path).
			WithDetail("path", path)
	}

	content, err := GenerateConfigContent()
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to write %s", path)
	}
	return path, nil
}
