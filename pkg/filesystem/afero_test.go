package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymlinkOnOS(t *testing.T) {
	fs := NewOS()
	dir := t.TempDir()
	source := filepath.Join(dir, "source.txt")
	link := filepath.Join(dir, "link.txt")
	require.NoError(t, afero.WriteFile(fs, source, []byte("hello"), 0644))

	require.NoError(t, Symlink(fs, source, link))

	info, err := Lstat(fs, link)
	require.NoError(t, err)
	assert.True(t, IsSymlink(info))

	target, err := Readlink(fs, link)
	require.NoError(t, err)
	assert.Equal(t, source, target)
}

func TestExists(t *testing.T) {
	fs := NewOS()
	dir := t.TempDir()

	exists, err := Exists(fs, filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.False(t, exists)

	// A dangling symlink still counts as present
	dangling := filepath.Join(dir, "dangling")
	require.NoError(t, os.Symlink(filepath.Join(dir, "nowhere"), dangling))
	exists, err = Exists(fs, dangling)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestMemoryFilesystem(t *testing.T) {
	fs := NewMemory()
	require.NoError(t, fs.MkdirAll("/repo/.idea", 0755))

	assert.True(t, IsDir(fs, "/repo/.idea"))
	assert.False(t, IsDir(fs, "/repo/missing"))

	info, err := Lstat(fs, "/repo/.idea")
	require.NoError(t, err)
	assert.False(t, IsSymlink(info))

	err = Symlink(fs, "/repo/.idea", "/other/.idea")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSymlinkUnsupported)
}

func TestResolveLink(t *testing.T) {
	fs := NewOS()
	dir := t.TempDir()
	real := filepath.Join(dir, "real")
	require.NoError(t, fs.MkdirAll(real, 0755))

	// relative link, then an absolute link to it
	require.NoError(t, os.Symlink("real", filepath.Join(dir, "hop")))
	require.NoError(t, os.Symlink(filepath.Join(dir, "hop"), filepath.Join(dir, "entry")))

	resolved, err := ResolveLink(fs, filepath.Join(dir, "entry"))
	require.NoError(t, err)
	assert.Equal(t, real, resolved)
	assert.True(t, IsDir(fs, resolved))

	resolved, err = ResolveLink(fs, real)
	require.NoError(t, err)
	assert.Equal(t, real, resolved, "a plain path resolves to itself")

	_, err = ResolveLink(fs, filepath.Join(dir, "missing"))
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, os.Symlink("loop-b", filepath.Join(dir, "loop-a")))
	require.NoError(t, os.Symlink("loop-a", filepath.Join(dir, "loop-b")))
	_, err = ResolveLink(fs, filepath.Join(dir, "loop-a"))
	assert.ErrorIs(t, err, ErrTooManyLinks)
}
