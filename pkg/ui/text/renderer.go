// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/swt/pkg/errors"
	"github.com/arthur-debert/swt/pkg/ui/display"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderResult renders any result type as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *display.WorktreeList:
		return r.renderList(v)
	case *display.SyncReport:
		return r.renderSync(v)
	case *display.CreateReport:
		return r.renderCreate(v)
	case *display.DeleteReport:
		return r.renderDelete(v)
	case *display.DeleteAllReport:
		return r.renderDeleteAll(v)
	default:
		// For unknown types, just print them
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	if _, werr := fmt.Fprintf(r.output, "Error: %v\n", err); werr != nil {
		return werr
	}
	if available, ok := errors.GetErrorDetails(err)["available"]; ok && available != "" {
		_, werr := fmt.Fprintf(r.output, "Available worktrees: %v\n", available)
		return werr
	}
	return nil
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

func (r *Renderer) renderList(list *display.WorktreeList) error {
	width := list.NameWidth()
	for _, row := range list.Worktrees {
		marker := " "
		if row.Current {
			marker = "→"
		}
		tag := ""
		if row.Main {
			tag = " (main)"
		}
		line := fmt.Sprintf("%s %-*s  %s%s  %s", marker, width, row.Name, row.Label(), tag, row.Path)
		if _, err := fmt.Fprintln(r.output, strings.TrimRight(line, " ")); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderSync(report *display.SyncReport) error {
	if report == nil {
		return nil
	}
	var b strings.Builder
	if report.Target != "" {
		fmt.Fprintf(&b, "Synced files into %s\n", report.Target)
	}
	for _, line := range report.Lines {
		switch line.Status {
		case display.StatusCreated:
			if line.Size != "" {
				fmt.Fprintf(&b, "  + %-4s %s (%s)\n", line.Mode, line.Path, line.Size)
			} else {
				fmt.Fprintf(&b, "  + %-4s %s\n", line.Mode, line.Path)
			}
		case display.StatusSkipped:
			fmt.Fprintf(&b, "  = %-4s %s (exists)\n", line.Mode, line.Path)
		case display.StatusFailed:
			fmt.Fprintf(&b, "  ! %-4s %s: %s\n", line.Mode, line.Path, line.Error)
		}
		for _, w := range line.Warnings {
			fmt.Fprintf(&b, "      warning: %s\n", w)
		}
	}
	if len(report.Lines) == 0 {
		b.WriteString("  nothing to sync\n")
	}
	for _, ig := range report.Ignore {
		if len(ig.Added) > 0 {
			fmt.Fprintf(&b, "Added %d entries to %s\n", len(ig.Added), ig.Path)
		}
	}
	for _, w := range report.Warnings {
		fmt.Fprintf(&b, "Warning: %s\n", w)
	}
	_, err := io.WriteString(r.output, b.String())
	return err
}

func (r *Renderer) renderCreate(report *display.CreateReport) error {
	branch := report.Branch
	if report.NewBranch {
		branch += " (new branch)"
	}
	if _, err := fmt.Fprintf(r.output, "Created worktree %s on %s\n", report.Name, branch); err != nil {
		return err
	}
	if err := r.renderSync(report.Sync); err != nil {
		return err
	}
	_, err := fmt.Fprintf(r.output, "Location: %s\n", report.Path)
	return err
}

func (r *Renderer) renderDelete(report *display.DeleteReport) error {
	if report.Cancelled {
		_, err := fmt.Fprintln(r.output, "Cancelled")
		return err
	}
	_, err := fmt.Fprintf(r.output, "Deleted worktree %s\nMain worktree: %s\n", report.Path, report.MainPath)
	return err
}

func (r *Renderer) renderDeleteAll(report *display.DeleteAllReport) error {
	if report.Cancelled {
		_, err := fmt.Fprintln(r.output, "Cancelled")
		return err
	}
	var b strings.Builder
	if len(report.Removed) == 0 && len(report.Failures) == 0 {
		b.WriteString("No worktrees to delete\n")
	}
	for _, path := range report.Removed {
		fmt.Fprintf(&b, "  - %s\n", path)
	}
	for _, f := range report.Failures {
		fmt.Fprintf(&b, "  ! %s: %s\n", f.Path, f.Error)
	}
	if len(report.Removed) > 0 || len(report.Failures) > 0 {
		fmt.Fprintf(&b, "Deleted %d worktrees, %d failed\n", len(report.Removed), len(report.Failures))
	}
	if report.PruneError != "" {
		fmt.Fprintf(&b, "Warning: prune failed: %s\n", report.PruneError)
	}
	fmt.Fprintf(&b, "Main worktree: %s\n", report.MainPath)
	_, err := io.WriteString(r.output, b.String())
	return err
}
