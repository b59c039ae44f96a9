// Package style holds the lipgloss and pterm styles used for terminal output.
package style

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"
)

// Indicators
const (
	CurrentMarker    = "→"
	SuccessIndicator = "✓"
	SkipIndicator    = "•"
	FailureIndicator = "✗"
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	PathStyle = lipgloss.NewStyle().
			Foreground(PathColor).
			Italic(true)

	// Status styles
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)
)

// Worktree styles
var (
	MainStyle = lipgloss.NewStyle().
			Foreground(MainColor).
			Bold(true)

	CurrentStyle = lipgloss.NewStyle().
			Foreground(CurrentColor).
			Bold(true)

	BranchStyle = lipgloss.NewStyle().
			Foreground(BranchColor)
)

// ModeStyle returns the style for a transfer mode label.
func ModeStyle(mode string) lipgloss.Style {
	switch mode {
	case "copy":
		return BranchStyle
	default:
		return CurrentStyle
	}
}

// ErrorLine formats msg behind pterm's error prefix.
func ErrorLine(msg string) string {
	return fmt.Sprintf("%s %s", pterm.Error.Prefix.Text, pterm.Error.MessageStyle.Sprint(msg))
}

// WarningLine formats msg behind pterm's warning prefix.
func WarningLine(msg string) string {
	return fmt.Sprintf("%s %s", pterm.Warning.Prefix.Text, pterm.Warning.MessageStyle.Sprint(msg))
}

// InfoLine formats msg behind pterm's info prefix.
func InfoLine(msg string) string {
	return fmt.Sprintf("%s %s", pterm.Info.Prefix.Text, pterm.Info.MessageStyle.Sprint(msg))
}
