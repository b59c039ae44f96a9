// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/swt/pkg/errors"
	"github.com/arthur-debert/swt/pkg/style"
	"github.com/arthur-debert/swt/pkg/ui/display"
)

// Renderer provides rich terminal output using lipgloss styles
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{output: w}, nil
}

// RenderResult renders any result type with rich terminal formatting
func (r *Renderer) RenderResult(result interface{}) error {
	var out string
	switch v := result.(type) {
	case *display.WorktreeList:
		out = renderList(v)
	case *display.SyncReport:
		out = renderSync(v)
	case *display.CreateReport:
		out = renderCreate(v)
	case *display.DeleteReport:
		out = renderDelete(v)
	case *display.DeleteAllReport:
		out = renderDeleteAll(v)
	default:
		// For unknown types, just print them
		out = fmt.Sprintf("%+v\n", result)
	}
	_, err := io.WriteString(r.output, out)
	return err
}

// RenderError renders an error with the error style
func (r *Renderer) RenderError(err error) error {
	msg := err.Error()
	var swtErr *errors.SwtError
	if errors.As(err, &swtErr) {
		msg = swtErr.Message
		if swtErr.Wrapped != nil {
			msg = fmt.Sprintf("%s: %v", msg, swtErr.Wrapped)
		}
	}

	out := style.ErrorLine(msg) + "\n"
	if available, ok := errors.GetErrorDetails(err)["available"]; ok && available != "" {
		out += style.MutedStyle.Render(fmt.Sprintf("Available worktrees: %v", available)) + "\n"
	}
	_, werr := io.WriteString(r.output, out)
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

func renderList(list *display.WorktreeList) string {
	width := list.NameWidth()
	var b strings.Builder
	for _, row := range list.Worktrees {
		marker := " "
		name := fmt.Sprintf("%-*s", width, row.Name)
		switch {
		case row.Current:
			marker = style.CurrentStyle.Render(style.CurrentMarker)
			name = style.CurrentStyle.Render(name)
		case row.Main:
			name = style.MainStyle.Render(name)
		}

		line := fmt.Sprintf("%s %s  %s", marker, name, style.BranchStyle.Render(row.Label()))
		if row.Main {
			line += " " + style.MainStyle.Render("(main)")
		}
		if row.Locked {
			line += " " + style.WarningStyle.Render("locked")
		}
		if row.Prunable {
			line += " " + style.WarningStyle.Render("prunable")
		}
		line += "  " + style.PathStyle.Render(row.Path)
		b.WriteString(line + "\n")
	}
	return b.String()
}

func renderSync(report *display.SyncReport) string {
	if report == nil {
		return ""
	}
	var b strings.Builder
	if report.Target != "" {
		b.WriteString(style.TitleStyle.Render("Synced files into") + " " + style.PathStyle.Render(report.Target) + "\n")
	}
	for _, line := range report.Lines {
		mode := style.ModeStyle(line.Mode).Render(fmt.Sprintf("%-4s", line.Mode))
		switch line.Status {
		case display.StatusCreated:
			size := ""
			if line.Size != "" {
				size = " " + style.MutedStyle.Render("("+line.Size+")")
			}
			fmt.Fprintf(&b, "  %s %s %s%s\n", style.SuccessStyle.Render(style.SuccessIndicator), mode, line.Path, size)
		case display.StatusSkipped:
			fmt.Fprintf(&b, "  %s %s %s\n", style.MutedStyle.Render(style.SkipIndicator), mode, style.MutedStyle.Render(line.Path+" (exists)"))
		case display.StatusFailed:
			fmt.Fprintf(&b, "  %s %s %s %s\n", style.ErrorStyle.Render(style.FailureIndicator), mode, line.Path, style.ErrorStyle.Render(line.Error))
		}
		for _, w := range line.Warnings {
			b.WriteString("      " + style.WarningStyle.Render(w) + "\n")
		}
	}
	if len(report.Lines) == 0 {
		b.WriteString("  " + style.MutedStyle.Render("nothing to sync") + "\n")
	}
	for _, ig := range report.Ignore {
		if len(ig.Added) > 0 {
			b.WriteString(style.MutedStyle.Render(fmt.Sprintf("Added %d entries to %s", len(ig.Added), ig.Path)) + "\n")
		}
	}
	for _, w := range report.Warnings {
		b.WriteString(style.WarningLine(w) + "\n")
	}
	return b.String()
}

func renderCreate(report *display.CreateReport) string {
	var b strings.Builder
	branch := style.BranchStyle.Render(report.Branch)
	if report.NewBranch {
		branch += " " + style.MutedStyle.Render("(new branch)")
	}
	fmt.Fprintf(&b, "%s Created worktree %s on %s\n", style.SuccessStyle.Render(style.SuccessIndicator), style.TitleStyle.Render(report.Name), branch)
	b.WriteString(renderSync(report.Sync))
	// Kept unstyled: the shell integration greps for this line.
	fmt.Fprintf(&b, "Location: %s\n", report.Path)
	return b.String()
}

func renderDelete(report *display.DeleteReport) string {
	if report.Cancelled {
		return style.MutedStyle.Render("Cancelled") + "\n"
	}
	return fmt.Sprintf("%s Deleted worktree %s\nMain worktree: %s\n",
		style.SuccessStyle.Render(style.SuccessIndicator),
		style.PathStyle.Render(report.Path),
		style.PathStyle.Render(report.MainPath))
}

func renderDeleteAll(report *display.DeleteAllReport) string {
	if report.Cancelled {
		return style.MutedStyle.Render("Cancelled") + "\n"
	}
	var b strings.Builder
	if len(report.Removed) == 0 && len(report.Failures) == 0 {
		b.WriteString(style.MutedStyle.Render("No worktrees to delete") + "\n")
	}
	for _, path := range report.Removed {
		fmt.Fprintf(&b, "  %s %s\n", style.SuccessStyle.Render(style.SuccessIndicator), style.PathStyle.Render(path))
	}
	for _, f := range report.Failures {
		fmt.Fprintf(&b, "  %s %s %s\n", style.ErrorStyle.Render(style.FailureIndicator), style.PathStyle.Render(f.Path), style.ErrorStyle.Render(f.Error))
	}
	if len(report.Removed) > 0 || len(report.Failures) > 0 {
		summary := fmt.Sprintf("Deleted %d worktrees", len(report.Removed))
		if len(report.Failures) > 0 {
			summary += style.ErrorStyle.Render(fmt.Sprintf(", %d failed", len(report.Failures)))
		}
		b.WriteString(summary + "\n")
	}
	if report.PruneError != "" {
		b.WriteString(style.WarningLine("prune failed: "+report.PruneError) + "\n")
	}
	fmt.Fprintf(&b, "Main worktree: %s\n", style.PathStyle.Render(report.MainPath))
	return b.String()
}
