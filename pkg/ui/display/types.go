// Package display defines the renderer-neutral view models for command output.
// Every type serialises cleanly to JSON so the json renderer can emit it as is.
package display

// WorktreeRow is one line of `swt list`
type WorktreeRow struct {
	Name     string `json:"name"`
	Path     string `json:"path"`
	Branch   string `json:"branch,omitempty"`
	Head     string `json:"head,omitempty"`
	Main     bool   `json:"main"`
	Current  bool   `json:"current"`
	Detached bool   `json:"detached,omitempty"`
	Locked   bool   `json:"locked,omitempty"`
	Prunable bool   `json:"prunable,omitempty"`
}

// Label is the branch name, or a short commit for detached worktrees
func (r WorktreeRow) Label() string {
	if r.Branch != "" {
		return r.Branch
	}
	if r.Detached && len(r.Head) >= 7 {
		return "detached " + r.Head[:7]
	}
	if r.Detached {
		return "detached"
	}
	return ""
}

// WorktreeList is the output of `swt list`
type WorktreeList struct {
	Worktrees []WorktreeRow `json:"worktrees"`
}

// NameWidth returns the widest worktree name, for column alignment
func (l *WorktreeList) NameWidth() int {
	width := 0
	for _, row := range l.Worktrees {
		if len(row.Name) > width {
			width = len(row.Name)
		}
	}
	return width
}

// Transfer statuses
const (
	StatusCreated = "created"
	StatusSkipped = "skipped"
	StatusFailed  = "failed"
)

// SyncLine is one transferred entry
type SyncLine struct {
	Path     string   `json:"path"`
	Kind     string   `json:"kind"`
	Mode     string   `json:"mode"`
	Status   string   `json:"status"`
	Size     string   `json:"size,omitempty"`
	Error    string   `json:"error,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// IgnoreUpdate summarises one reconciliation of the target's .gitignore
type IgnoreUpdate struct {
	Path    string   `json:"path"`
	Added   []string `json:"added,omitempty"`
	Covered []string `json:"covered,omitempty"`
}

// SyncReport is the output of a sync run
type SyncReport struct {
	Source   string         `json:"source,omitempty"`
	Target   string         `json:"target,omitempty"`
	Lines    []SyncLine     `json:"transfers"`
	Ignore   []IgnoreUpdate `json:"ignore,omitempty"`
	Warnings []string       `json:"warnings,omitempty"`
}

// Count returns how many lines carry the given status
func (r *SyncReport) Count(status string) int {
	n := 0
	for _, line := range r.Lines {
		if line.Status == status {
			n++
		}
	}
	return n
}

// CreateReport is the output of `swt create`
type CreateReport struct {
	Name      string      `json:"name"`
	Path      string      `json:"path"`
	Branch    string      `json:"branch"`
	NewBranch bool        `json:"newBranch"`
	Sync      *SyncReport `json:"sync,omitempty"`
}

// DeleteReport is the output of `swt delete`
type DeleteReport struct {
	Path      string `json:"path"`
	MainPath  string `json:"mainPath"`
	Cancelled bool   `json:"cancelled"`
}

// DeleteFailure is a worktree delete-all could not remove
type DeleteFailure struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}

// DeleteAllReport is the output of `swt delete-all`
type DeleteAllReport struct {
	MainPath   string          `json:"mainPath"`
	Removed    []string        `json:"removed"`
	Failures   []DeleteFailure `json:"failures,omitempty"`
	Cancelled  bool            `json:"cancelled"`
	PruneError string          `json:"pruneError,omitempty"`
}
