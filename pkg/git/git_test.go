package git

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/arthur-debert/swt/pkg/errors"
	"github.com/arthur-debert/swt/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepositoryDiscovery(t *testing.T) {
	repo := testutil.InitRepo(t, "app")
	ctx := context.Background()

	sub := filepath.Join(repo, "src", "pkg")
	require.NoError(t, os.MkdirAll(sub, 0755))

	c := New(sub)
	assert.True(t, c.IsRepo(ctx))

	top, err := c.TopLevel(ctx)
	require.NoError(t, err)
	assert.Equal(t, repo, top)

	linked, err := c.IsLinkedWorktree(ctx)
	require.NoError(t, err)
	assert.False(t, linked)
}

func TestNotARepository(t *testing.T) {
	testutil.RequireGit(t)
	dir := t.TempDir()
	t.Setenv("GIT_CEILING_DIRECTORIES", filepath.Dir(dir))

	c := New(dir)
	assert.False(t, c.IsRepo(context.Background()))

	_, err := c.TopLevel(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotInRepo))
}

func TestWorktreeLifecycle(t *testing.T) {
	repo := testutil.InitRepo(t, "app")
	ctx := context.Background()
	c := New(repo)

	assert.False(t, c.BranchExists(ctx, "feature"))

	featurePath := filepath.Join(filepath.Dir(repo), "feature")
	require.NoError(t, c.AddWorktree(ctx, featurePath, "feature", true))
	assert.True(t, c.BranchExists(ctx, "feature"))

	worktrees, err := c.Worktrees(ctx)
	require.NoError(t, err)
	require.Len(t, worktrees, 2)
	assert.Equal(t, repo, worktrees[0].Path)
	assert.Equal(t, featurePath, worktrees[1].Path)
	assert.Equal(t, "feature", worktrees[1].ShortBranch())

	inFeature := c.In(featurePath)
	linked, err := inFeature.IsLinkedWorktree(ctx)
	require.NoError(t, err)
	assert.True(t, linked)

	mainPath, err := inFeature.MainWorktreePath(ctx)
	require.NoError(t, err)
	assert.Equal(t, repo, mainPath)

	commonDir, err := inFeature.CommonDir(ctx)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(repo, ".git"), commonDir)

	require.NoError(t, c.RemoveWorktree(ctx, featurePath, true))
	worktrees, err = c.Worktrees(ctx)
	require.NoError(t, err)
	assert.Len(t, worktrees, 1)
}

func TestPruneAfterManualRemoval(t *testing.T) {
	repo := testutil.InitRepo(t, "app")
	ctx := context.Background()
	c := New(repo)

	path := filepath.Join(filepath.Dir(repo), "scratch")
	require.NoError(t, c.AddWorktree(ctx, path, "scratch", true))
	require.NoError(t, os.RemoveAll(path))

	require.NoError(t, c.Prune(ctx))

	worktrees, err := c.Worktrees(ctx)
	require.NoError(t, err)
	assert.Len(t, worktrees, 1)
}

func TestAddWorktreeExistingBranch(t *testing.T) {
	repo := testutil.InitRepo(t, "app")
	ctx := context.Background()
	testutil.RunGit(t, repo, "branch", "existing")

	c := New(repo)
	path := filepath.Join(filepath.Dir(repo), "existing")
	require.NoError(t, c.AddWorktree(ctx, path, "existing", false))

	err := c.AddWorktree(ctx, filepath.Join(filepath.Dir(repo), "again"), "existing", false)
	require.Error(t, err, "a branch can only be checked out once")
	assert.True(t, errors.IsErrorCode(err, errors.ErrGitCommand))
}

func TestCheckIgnore(t *testing.T) {
	repo := testutil.InitRepo(t, "app")
	ctx := context.Background()
	require.NoError(t, os.WriteFile(filepath.Join(repo, ".gitignore"), []byte("node_modules\n*.log\n"), 0644))

	c := New(repo)

	tests := []struct {
		path string
		want bool
	}{
		{"node_modules/tmp.lock", true},
		{"debug.log", true},
		{".env", false},
	}
	for _, tt := range tests {
		got, err := c.CheckIgnore(ctx, tt.path)
		require.NoError(t, err, tt.path)
		assert.Equal(t, tt.want, got, tt.path)
	}
}

func TestCheckIgnoreOutsideRepo(t *testing.T) {
	testutil.RequireGit(t)
	dir := t.TempDir()
	t.Setenv("GIT_CEILING_DIRECTORIES", filepath.Dir(dir))

	ignored, err := New(dir).CheckIgnore(context.Background(), ".env")
	assert.False(t, ignored)
	assert.Error(t, err)
}

func TestTimeout(t *testing.T) {
	repo := testutil.InitRepo(t, "app")

	c := New(repo).WithTimeout(time.Nanosecond)
	time.Sleep(time.Millisecond)
	_, err := c.TopLevel(context.Background())
	assert.Error(t, err)
}
