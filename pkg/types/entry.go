package types

// EntryKind tells whether a resolved entry is a single file or a whole directory
type EntryKind string

const (
	KindFile      EntryKind = "file"
	KindDirectory EntryKind = "directory"
)

// ResolvedEntry is a path, relative to the source root and using forward
// slashes, that matched a sync pattern.
type ResolvedEntry struct {
	RelativePath string
	Kind         EntryKind
}

// TransferResult is the outcome of transferring one resolved entry.
// Performed is false when the target already existed or the transfer failed;
// Err is set only in the latter case.
type TransferResult struct {
	RelativePath string
	Kind         EntryKind
	Mode         Mode
	Performed    bool
	Err          error

	// Bytes is the amount of data written by a copy
	Bytes int64

	// Warnings are non-fatal problems met while copying a directory
	Warnings []string
}

// IgnorePath returns the line used to ignore this entry in the target
// worktree. Directories carry a trailing slash.
func (r TransferResult) IgnorePath() string {
	if r.Kind == KindDirectory {
		return r.RelativePath + "/"
	}
	return r.RelativePath
}

// Failed reports whether the transfer raised an error
func (r TransferResult) Failed() bool {
	return r.Err != nil
}
