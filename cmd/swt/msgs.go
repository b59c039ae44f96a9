package swt

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Git worktrees with your untracked files along"
	MsgCreateShort     = "Create a worktree and sync configured files into it"
	MsgListShort       = "List worktrees"
	MsgCdShort         = "Print the path of a worktree"
	MsgCdLong          = "Print the path of the worktree whose directory or branch is NAME. The shell integration uses it to cd."
	MsgHomeShort       = "Print the path of the main worktree"
	MsgDeleteShort     = "Delete the current worktree"
	MsgDeleteAllShort  = "Delete every worktree except the main one"
	MsgSyncShort       = "Link and copy configured files into a worktree"
	MsgInitShort       = "Write a commented swtconfig.toml"
	MsgInitLong        = "Write a commented swtconfig.toml at the repository root (or the current directory outside a repository). An existing file is never overwritten."
	MsgSnippetShort    = "Output shell integration snippet"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgConfigCreated  = "Created %s"
	MsgVersionFormat  = "swt version %s\n  commit: %s\n  built:  %s\n"
	MsgNoCommandGiven = "no command specified"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagFormat  = "Output format (auto, term, text, json)"
	MsgFlagDir     = "Run as if swt was started in this directory"
	MsgFlagBranch  = "Branch to check out (default: NAME)"
	MsgFlagPath    = "Where to create the worktree (default: defaultWorktreeDir/NAME)"
	MsgFlagForce   = "Do not ask for confirmation"
	MsgFlagShell   = "Shell type: bash, zsh or fish (default: from $SHELL)"

	MsgFlagNoGitignore = "Do not add synced files to the worktree's .gitignore"
	MsgFlagOracle      = "How to check existing ignore rules: git or builtin"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/create-long.txt
	msgCreateLongRaw string
	MsgCreateLong    = strings.TrimSpace(msgCreateLongRaw)

	//go:embed msgs/create-example.txt
	msgCreateExampleRaw string
	MsgCreateExample    = strings.TrimRight(msgCreateExampleRaw, "\n")

	//go:embed msgs/sync-long.txt
	msgSyncLongRaw string
	MsgSyncLong    = strings.TrimSpace(msgSyncLongRaw)

	//go:embed msgs/delete-long.txt
	msgDeleteLongRaw string
	MsgDeleteLong    = strings.TrimSpace(msgDeleteLongRaw)

	//go:embed msgs/delete-all-long.txt
	msgDeleteAllLongRaw string
	MsgDeleteAllLong    = strings.TrimSpace(msgDeleteAllLongRaw)

	//go:embed msgs/snippet-long.txt
	msgSnippetLongRaw string
	MsgSnippetLong    = strings.TrimSpace(msgSnippetLongRaw)

	//go:embed msgs/snippet-example.txt
	msgSnippetExampleRaw string
	MsgSnippetExample    = strings.TrimRight(msgSnippetExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
