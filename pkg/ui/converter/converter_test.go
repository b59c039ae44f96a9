// pkg/ui/converter/converter_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: None
// PURPOSE: Test conversion of workflow results into display models

package converter

import (
	"errors"
	"testing"

	"github.com/arthur-debert/swt/pkg/filesync"
	"github.com/arthur-debert/swt/pkg/git"
	"github.com/arthur-debert/swt/pkg/ignore"
	"github.com/arthur-debert/swt/pkg/types"
	"github.com/arthur-debert/swt/pkg/ui/display"
	"github.com/arthur-debert/swt/pkg/worktree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorktreeList(t *testing.T) {
	entries := []worktree.Entry{
		{Worktree: git.Worktree{Path: "/src/repo", Branch: "refs/heads/main", Head: "abc"}, IsMain: true},
		{Worktree: git.Worktree{Path: "/src/feature", Branch: "refs/heads/feat/login"}, IsCurrent: true},
		{Worktree: git.Worktree{Path: "/src/detached", Head: "0123456789", Detached: true}},
	}

	list := WorktreeList(entries)
	require.Len(t, list.Worktrees, 3)

	assert.Equal(t, "repo", list.Worktrees[0].Name)
	assert.Equal(t, "main", list.Worktrees[0].Branch)
	assert.True(t, list.Worktrees[0].Main)

	assert.Equal(t, "feature", list.Worktrees[1].Name)
	assert.Equal(t, "feat/login", list.Worktrees[1].Branch)
	assert.True(t, list.Worktrees[1].Current)

	assert.Equal(t, "detached 0123456", list.Worktrees[2].Label())
	assert.Equal(t, 8, list.NameWidth())
}

func TestSyncReport(t *testing.T) {
	t.Run("nil result", func(t *testing.T) {
		assert.Nil(t, SyncReport("/a", "/b", nil))
	})

	t.Run("statuses", func(t *testing.T) {
		result := &filesync.Result{
			Transfers: []types.TransferResult{
				{RelativePath: ".env", Kind: types.KindFile, Mode: types.ModeLink, Performed: true},
				{RelativePath: "data", Kind: types.KindDirectory, Mode: types.ModeCopy, Performed: true, Bytes: 2048},
				{RelativePath: "local.json", Kind: types.KindFile, Mode: types.ModeLink},
				{RelativePath: "secret", Kind: types.KindFile, Mode: types.ModeCopy, Err: errors.New("permission denied")},
			},
			Ignore: []ignore.Result{
				{Path: "/b/.gitignore", Added: []string{".env", "data/"}, Written: true},
				{Path: "/b/.gitignore"},
			},
			Warnings: []string{"pattern \"!x\" ignored"},
		}

		report := SyncReport("/a", "/b", result)
		require.Len(t, report.Lines, 4)

		assert.Equal(t, display.StatusCreated, report.Lines[0].Status)
		assert.Equal(t, "data/", report.Lines[1].Path)
		assert.Equal(t, "2.0 kB", report.Lines[1].Size)
		assert.Equal(t, display.StatusSkipped, report.Lines[2].Status)
		assert.Equal(t, display.StatusFailed, report.Lines[3].Status)
		assert.Equal(t, "permission denied", report.Lines[3].Error)

		assert.Equal(t, 2, report.Count(display.StatusCreated))
		require.Len(t, report.Ignore, 1)
		assert.Equal(t, []string{".env", "data/"}, report.Ignore[0].Added)
		assert.Len(t, report.Warnings, 1)
	})
}

func TestWorktreeSync(t *testing.T) {
	assert.Nil(t, WorktreeSync(nil))

	report := WorktreeSync(&worktree.SyncResult{
		Result: &filesync.Result{},
		Source: "/src/repo",
		Target: "/src/feature",
	})
	assert.Equal(t, "/src/repo", report.Source)
	assert.Equal(t, "/src/feature", report.Target)
	assert.Empty(t, report.Lines)
}

func TestDeleteAllReport(t *testing.T) {
	result := &worktree.DeleteAllResult{
		MainPath: "/src/repo",
		Failures: []worktree.Failure{{Path: "/src/x", Err: errors.New("busy")}},
		PruneErr: errors.New("prune failed"),
	}

	report := DeleteAllReport(result)
	assert.Equal(t, []string{}, report.Removed)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, "busy", report.Failures[0].Error)
	assert.Equal(t, "prune failed", report.PruneError)
}

func TestCreateReport(t *testing.T) {
	result := &worktree.CreateResult{Source: "/src/repo", Path: "/src/feature", Branch: "feature", NewBranch: true}
	report := CreateReport("feature", result)
	assert.Equal(t, "/src/feature", report.Path)
	assert.True(t, report.NewBranch)
	assert.Nil(t, report.Sync)

	del := DeleteReport(&worktree.DeleteResult{Path: "/src/feature", MainPath: "/src/repo", Cancelled: true})
	assert.True(t, del.Cancelled)
	assert.Equal(t, "/src/repo", del.MainPath)
}
