// pkg/filesync/sync_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: real filesystem (symlinks), StaticOracle
// PURPOSE: Test the full sync flow between two worktrees

package filesync

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/swt/pkg/config"
	"github.com/arthur-debert/swt/pkg/ignore"
	"github.com/arthur-debert/swt/pkg/testutil"
	"github.com/arthur-debert/swt/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConfig(link, copy []string) *config.Config {
	cfg := config.Default()
	cfg.FilesToSync = link
	cfg.FilesToCopy = copy
	return cfg
}

func isSymlinkTo(t *testing.T, path, want string) bool {
	t.Helper()
	dest, err := os.Readlink(path)
	return err == nil && dest == want
}

func TestSyncEndToEnd(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated).WithSourceTree(testutil.FileTree{
		".env":                "A=1",
		".idea/workspace.xml": "<w/>",
		".idea/misc.xml":      "<m/>",
	})

	result := New(env.FS, ignore.NewStaticOracle()).Sync(Options{
		SourceRoot: env.SourceRoot,
		TargetRoot: env.TargetRoot,
		Config:     newConfig([]string{".env", ".idea/"}, nil),
	})

	assert.Empty(t, result.Warnings)
	require.Len(t, result.Transfers, 2)
	assert.Len(t, result.Performed(), 2)

	assert.True(t, isSymlinkTo(t, env.TargetPath(".env"), env.SourcePath(".env")))
	assert.True(t, isSymlinkTo(t, env.TargetPath(".idea"), env.SourcePath(".idea")))
	assert.Equal(t, "# swt synced files\n.env\n.idea/\n", env.ReadTarget(".gitignore"))
}

func TestSyncIsIdempotent(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated).WithSourceTree(testutil.FileTree{
		".env":               "A=1",
		"config/local.json":  "{}",
		".vscode/tasks.json": "{}",
	})
	s := New(env.FS, ignore.NewStaticOracle())
	opts := Options{
		SourceRoot: env.SourceRoot,
		TargetRoot: env.TargetRoot,
		Config:     newConfig([]string{".env", ".vscode/"}, []string{"local.json"}),
	}

	first := s.Sync(opts)
	assert.Len(t, first.Performed(), 3)
	gitignore := env.ReadTarget(".gitignore")

	second := s.Sync(opts)
	assert.Empty(t, second.Warnings)
	assert.Len(t, second.Transfers, 3)
	assert.Empty(t, second.Performed())
	assert.Empty(t, second.Ignore, "nothing transferred, nothing to reconcile")
	assert.Equal(t, gitignore, env.ReadTarget(".gitignore"))
}

func TestSyncCopyBeforeLink(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated).WithSourceTree(testutil.FileTree{
		".env":       "A=1",
		".npmrc":     "registry=x",
		"notes.todo": "x",
	})

	result := New(env.FS, ignore.NewStaticOracle()).Sync(Options{
		SourceRoot: env.SourceRoot,
		TargetRoot: env.TargetRoot,
		Config:     newConfig([]string{".env", "notes.todo"}, []string{".env", ".npmrc"}),
	})

	require.Len(t, result.Transfers, 4)
	assert.Equal(t, types.ModeCopy, result.Transfers[0].Mode)
	assert.Equal(t, types.ModeLink, result.Transfers[3].Mode)

	info, err := os.Lstat(env.TargetPath(".env"))
	require.NoError(t, err)
	assert.True(t, info.Mode().IsRegular(), "copy wins when both groups name a path")

	require.Len(t, result.Ignore, 2, "one ignore update per group")
	assert.Equal(t, []string{".env", ".npmrc"}, result.Ignore[0].Added)
	assert.Equal(t, []string{"notes.todo"}, result.Ignore[1].Added)
	assert.Equal(t,
		"# swt synced files\n.env\n.npmrc\n\n# swt synced files\nnotes.todo\n",
		env.ReadTarget(".gitignore"))
}

func TestSyncNonDestructive(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated).
		WithSourceTree(testutil.FileTree{"foo.txt": "source"}).
		WithTargetTree(testutil.FileTree{"foo.txt": "mine"})

	result := New(env.FS, ignore.NewStaticOracle()).Sync(Options{
		SourceRoot: env.SourceRoot,
		TargetRoot: env.TargetRoot,
		Config:     newConfig([]string{"foo.txt"}, nil),
	})

	require.Len(t, result.Transfers, 1)
	assert.False(t, result.Transfers[0].Performed)
	assert.NoError(t, result.Transfers[0].Err)
	assert.Equal(t, "mine", env.ReadTarget("foo.txt"))
	assert.Equal(t, "", env.ReadTarget(".gitignore"))
}

func TestSyncAlreadyIgnored(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated).
		WithSourceTree(testutil.FileTree{"node_modules/tmp.lock": "x"}).
		WithTargetTree(testutil.FileTree{".gitignore": "node_modules\n"})

	cfg := newConfig(nil, []string{"/node_modules/tmp.lock"})
	result := New(env.FS, ignore.NewStaticOracle("node_modules")).Sync(Options{
		SourceRoot: env.SourceRoot,
		TargetRoot: env.TargetRoot,
		Config:     cfg,
	})

	require.Len(t, result.Performed(), 1)
	require.Len(t, result.Ignore, 1)
	assert.Equal(t, []string{"node_modules/tmp.lock"}, result.Ignore[0].Covered)
	assert.Equal(t, "node_modules\n", env.ReadTarget(".gitignore"))
}

func TestSyncGitignoreDisabled(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated).
		WithSourceTree(testutil.FileTree{".env": "x"})

	cfg := newConfig([]string{".env"}, nil)
	cfg.AddToGitignore = false
	result := New(env.FS, ignore.NewStaticOracle()).Sync(Options{
		SourceRoot: env.SourceRoot,
		TargetRoot: env.TargetRoot,
		Config:     cfg,
	})

	assert.Len(t, result.Performed(), 1)
	assert.Empty(t, result.Ignore)
	_, err := os.Stat(env.TargetPath(".gitignore"))
	assert.True(t, os.IsNotExist(err))
}

func TestSyncNoPatterns(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)

	result := New(env.FS, ignore.NewStaticOracle()).Sync(Options{
		SourceRoot: env.SourceRoot,
		TargetRoot: env.TargetRoot,
		Config: newConfig(
			[]string{"", "# comment only"},
			nil,
		),
	})

	assert.Empty(t, result.Transfers)
	assert.Empty(t, result.Warnings)
}

func TestSyncNilConfigUsesDefaults(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)

	result := New(env.FS, nil).Sync(Options{SourceRoot: env.SourceRoot, TargetRoot: env.TargetRoot})
	assert.Empty(t, result.Transfers)
}

func TestSyncNegatedPatternWarns(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly).
		WithSourceTree(testutil.FileTree{"keep.txt": "x"})

	result := New(env.FS, ignore.NewStaticOracle()).Sync(Options{
		SourceRoot: env.SourceRoot,
		TargetRoot: env.TargetRoot,
		Config:     newConfig([]string{"!keep.txt"}, nil),
	})

	assert.Empty(t, result.Transfers)
	assert.Len(t, result.Warnings, 1)
	assert.Equal(t, result.Warnings, result.GeneralWarnings())
}

func TestSyncFailuresDoNotAbortBatch(t *testing.T) {
	// In-memory filesystems cannot hold symlinks, so every link fails while copies succeed
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly).WithSourceTree(testutil.FileTree{
		".env":   "x",
		".npmrc": "y",
	})

	result := New(env.FS, ignore.NewStaticOracle()).Sync(Options{
		SourceRoot: env.SourceRoot,
		TargetRoot: env.TargetRoot,
		Config:     newConfig([]string{".env"}, []string{".npmrc"}),
	})

	assert.Len(t, result.Failed(), 1)
	assert.Len(t, result.Performed(), 1)
	assert.Len(t, result.Warnings, 1)
	assert.Empty(t, result.GeneralWarnings(), "the failure belongs to its transfer")
	assert.Equal(t, "# swt synced files\n.npmrc\n", env.ReadTarget(".gitignore"))
}

func TestSyncSameDirectory(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated).
		WithSourceTree(testutil.FileTree{".env": "x"})

	result := New(env.FS, ignore.NewStaticOracle()).Sync(Options{
		SourceRoot: env.SourceRoot,
		TargetRoot: env.SourceRoot + "/.",
		Config:     newConfig([]string{".env"}, nil),
	})

	assert.Empty(t, result.Transfers)
	assert.Len(t, result.Warnings, 1)
}

func TestSyncCopiesSymlinkedDirectoryOnce(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated).WithSourceTree(testutil.FileTree{
		"README.md": "x",
	})
	shared := filepath.Join(filepath.Dir(env.SourceRoot), "shared-idea")
	require.NoError(t, os.MkdirAll(shared, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(shared, "a.txt"), []byte("a"), 0644))
	require.NoError(t, os.Symlink(shared, env.SourcePath(".idea")))

	s := New(env.FS, ignore.NewStaticOracle())
	opts := Options{
		SourceRoot: env.SourceRoot,
		TargetRoot: env.TargetRoot,
		Config:     newConfig(nil, []string{".idea/"}),
	}

	first := s.Sync(opts)
	require.Len(t, first.Performed(), 1)
	assert.Empty(t, first.Warnings)
	assert.Equal(t, "a", env.ReadTarget(".idea/a.txt"))
	assert.Equal(t, "# swt synced files\n.idea/\n", env.ReadTarget(".gitignore"))

	second := s.Sync(opts)
	assert.Empty(t, second.Performed())
	assert.Empty(t, second.Ignore)
}

func TestSyncThroughSymlinkedSourceRoot(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated).WithSourceTree(testutil.FileTree{
		".env": "A=1",
	})
	via := filepath.Join(filepath.Dir(env.SourceRoot), "via-link")
	require.NoError(t, os.Symlink(env.SourceRoot, via))

	result := New(env.FS, ignore.NewStaticOracle()).Sync(Options{
		SourceRoot: via,
		TargetRoot: env.TargetRoot,
		Config:     newConfig([]string{".env"}, nil),
	})
	require.Len(t, result.Performed(), 1)
	assert.Empty(t, result.Warnings)
	assert.Equal(t, "A=1", env.ReadTarget(".env"))
}
