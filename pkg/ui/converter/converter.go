// Package converter turns workflow results into display view models.
package converter

import (
	"github.com/arthur-debert/swt/pkg/filesync"
	"github.com/arthur-debert/swt/pkg/types"
	"github.com/arthur-debert/swt/pkg/ui/display"
	"github.com/arthur-debert/swt/pkg/worktree"
	"github.com/dustin/go-humanize"
)

// WorktreeList converts listed worktrees
func WorktreeList(entries []worktree.Entry) *display.WorktreeList {
	list := &display.WorktreeList{Worktrees: make([]display.WorktreeRow, 0, len(entries))}
	for _, e := range entries {
		list.Worktrees = append(list.Worktrees, display.WorktreeRow{
			Name:     e.Name(),
			Path:     e.Path,
			Branch:   e.ShortBranch(),
			Head:     e.Head,
			Main:     e.IsMain,
			Current:  e.IsCurrent,
			Detached: e.Detached,
			Locked:   e.Locked,
			Prunable: e.Prunable,
		})
	}
	return list
}

// SyncReport converts a sync result. A nil result yields nil.
func SyncReport(source, target string, result *filesync.Result) *display.SyncReport {
	if result == nil {
		return nil
	}

	report := &display.SyncReport{
		Source:   source,
		Target:   target,
		Lines:    make([]display.SyncLine, 0, len(result.Transfers)),
		Warnings: result.GeneralWarnings(),
	}
	for _, t := range result.Transfers {
		report.Lines = append(report.Lines, syncLine(t))
	}
	for _, ig := range result.Ignore {
		if len(ig.Added) == 0 && len(ig.Covered) == 0 {
			continue
		}
		report.Ignore = append(report.Ignore, display.IgnoreUpdate{
			Path:    ig.Path,
			Added:   ig.Added,
			Covered: ig.Covered,
		})
	}
	return report
}

func syncLine(t types.TransferResult) display.SyncLine {
	line := display.SyncLine{
		Path:     t.IgnorePath(),
		Kind:     string(t.Kind),
		Mode:     string(t.Mode),
		Warnings: t.Warnings,
	}
	switch {
	case t.Failed():
		line.Status = display.StatusFailed
		line.Error = t.Err.Error()
	case t.Performed:
		line.Status = display.StatusCreated
		if t.Mode == types.ModeCopy {
			line.Size = humanize.Bytes(uint64(t.Bytes))
		}
	default:
		line.Status = display.StatusSkipped
	}
	return line
}

// CreateReport converts the result of a create
func CreateReport(name string, result *worktree.CreateResult) *display.CreateReport {
	return &display.CreateReport{
		Name:      name,
		Path:      result.Path,
		Branch:    result.Branch,
		NewBranch: result.NewBranch,
		Sync:      SyncReport(result.Source, result.Path, result.Sync),
	}
}

// WorktreeSync converts the result of an explicit sync
func WorktreeSync(result *worktree.SyncResult) *display.SyncReport {
	if result == nil {
		return nil
	}
	return SyncReport(result.Source, result.Target, result.Result)
}

// DeleteReport converts the result of a delete
func DeleteReport(result *worktree.DeleteResult) *display.DeleteReport {
	return &display.DeleteReport{
		Path:      result.Path,
		MainPath:  result.MainPath,
		Cancelled: result.Cancelled,
	}
}

// DeleteAllReport converts the result of a delete-all
func DeleteAllReport(result *worktree.DeleteAllResult) *display.DeleteAllReport {
	report := &display.DeleteAllReport{
		MainPath:  result.MainPath,
		Removed:   result.Removed,
		Cancelled: result.Cancelled,
	}
	if report.Removed == nil {
		report.Removed = []string{}
	}
	for _, f := range result.Failures {
		report.Failures = append(report.Failures, display.DeleteFailure{Path: f.Path, Error: f.Err.Error()})
	}
	if result.PruneErr != nil {
		report.PruneError = result.PruneErr.Error()
	}
	return report
}
