package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/swt/pkg/errors"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateConfigContent(t *testing.T) {
	content, err := GenerateConfigContent()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(content, "# swt configuration"))
	assert.Contains(t, content, "# Files to symlink into new worktrees")
	assert.Contains(t, content, "# Add synced files to the new worktree's .gitignore")

	// The generated file must decode back to the defaults
	var decoded Config
	require.NoError(t, toml.Unmarshal([]byte(content), &decoded))
	assert.Equal(t, "../", decoded.DefaultWorktreeDir)
	assert.True(t, decoded.AddToGitignore)
	assert.Equal(t, OracleGit, decoded.IgnoreOracle)
	assert.Empty(t, decoded.FilesToSync)
}

func TestInitConfig(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	path, err := InitConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, FileName), path)

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{path}, cfg.Sources)

	t.Run("refuses_to_overwrite", func(t *testing.T) {
		require.NoError(t, os.WriteFile(path, []byte("# mine\n"), 0644))

		_, err := InitConfig(dir)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigExists))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "# mine\n", string(data))
	})
}
