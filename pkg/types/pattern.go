package types

import "strings"

// Mode is the transfer mode attached to a sync pattern
type Mode string

const (
	// ModeLink shares the source entry through a symbolic link
	ModeLink Mode = "link"

	// ModeCopy duplicates the source entry into the target worktree
	ModeCopy Mode = "copy"
)

// SyncPattern is one gitignore-style entry from configuration, tagged with
// the way matched paths are transferred.
type SyncPattern struct {
	Raw         string
	Mode        Mode
	Negated     bool
	IsDirectory bool
}

// ParsePattern builds a SyncPattern from a raw configuration entry.
// The raw string is kept as-is; callers are expected to have trimmed it.
func ParsePattern(raw string, mode Mode) SyncPattern {
	return SyncPattern{
		Raw:         raw,
		Mode:        mode,
		Negated:     strings.HasPrefix(raw, "!"),
		IsDirectory: strings.HasSuffix(raw, "/"),
	}
}

// ParsePatterns parses every raw entry with the same mode
func ParsePatterns(raws []string, mode Mode) []SyncPattern {
	patterns := make([]SyncPattern, 0, len(raws))
	for _, raw := range raws {
		patterns = append(patterns, ParsePattern(raw, mode))
	}
	return patterns
}

func (p SyncPattern) String() string {
	return string(p.Mode) + ":" + p.Raw
}
