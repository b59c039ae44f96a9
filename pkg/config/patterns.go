package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ParsePatterns trims raw configuration entries and drops blanks and
// "#" comment entries. Order is preserved.
func ParsePatterns(raw []string) []string {
	patterns := make([]string, 0, len(raw))
	for _, item := range raw {
		trimmed := strings.TrimSpace(item)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		patterns = append(patterns, trimmed)
	}
	return patterns
}

// LinkPatterns returns the normalised filesToSync entries
func (c *Config) LinkPatterns() []string {
	return ParsePatterns(c.FilesToSync)
}

// CopyPatterns returns the normalised filesToCopy entries
func (c *Config) CopyPatterns() []string {
	return ParsePatterns(c.FilesToCopy)
}

// HasPatterns reports whether anything is configured for syncing
func (c *Config) HasPatterns() bool {
	return len(c.LinkPatterns()) > 0 || len(c.CopyPatterns()) > 0
}

// ResolveWorktreeDir returns where the worktree called name should live.
// A custom path always wins. A relative defaultWorktreeDir is resolved
// against the repository root.
func ResolveWorktreeDir(cfg *Config, repoRoot, name, customPath string) string {
	if customPath != "" {
		return customPath
	}

	dir := "../"
	if cfg != nil && cfg.DefaultWorktreeDir != "" {
		dir = cfg.DefaultWorktreeDir
	}
	dir = expandHome(dir)

	if !filepath.IsAbs(dir) {
		return filepath.Join(repoRoot, dir, name)
	}
	return filepath.Join(dir, name)
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
