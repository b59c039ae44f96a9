package testutil

import (
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// RequireGit skips the test when no git binary is available
func RequireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}
}

// RunGit runs git in dir and fails the test on error
func RunGit(t *testing.T, dir string, args ...string) string {
	t.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(cmd.Environ(),
		"GIT_AUTHOR_NAME=swt test",
		"GIT_AUTHOR_EMAIL=test@example.com",
		"GIT_COMMITTER_NAME=swt test",
		"GIT_COMMITTER_EMAIL=test@example.com",
		"GIT_CONFIG_NOSYSTEM=1",
	)
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("git %s failed: %v\n%s", strings.Join(args, " "), err, out)
	}
	return strings.TrimSpace(string(out))
}

// InitRepo creates a repository called name in a fresh temp directory with
// one commit on branch main, and returns its path
func InitRepo(t *testing.T, name string) string {
	t.Helper()
	RequireGit(t)

	t.Setenv("HOME", filepath.Join(resolvedTempDir(t), "home"))
	repo := filepath.Join(resolvedTempDir(t), name)

	RunGit(t, filepath.Dir(repo), "init", "-q", "-b", "main", name)
	RunGit(t, repo, "config", "user.name", "swt test")
	RunGit(t, repo, "config", "user.email", "test@example.com")
	RunGit(t, repo, "config", "commit.gpgsign", "false")
	RunGit(t, repo, "commit", "-q", "--allow-empty", "-m", "initial")

	return repo
}
