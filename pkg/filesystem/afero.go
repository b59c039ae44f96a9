package filesystem

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// ErrSymlinkUnsupported is returned when the filesystem cannot create or read symlinks
var ErrSymlinkUnsupported = errors.New("filesystem does not support symlinks")

// ErrTooManyLinks is returned when a chain of symlinks does not end
var ErrTooManyLinks = errors.New("too many levels of symbolic links")

const maxLinkHops = 40

// NewOS returns the real filesystem
func NewOS() afero.Fs {
	return afero.NewOsFs()
}

// NewMemory returns an in-memory filesystem
func NewMemory() afero.Fs {
	return afero.NewMemMapFs()
}

// Lstat returns file info without following a final symlink when the
// filesystem supports it, and falls back to Stat otherwise.
func Lstat(afs afero.Fs, name string) (fs.FileInfo, error) {
	if lstater, ok := afs.(afero.Lstater); ok {
		info, _, err := lstater.LstatIfPossible(name)
		return info, err
	}
	return afs.Stat(name)
}

// Exists reports whether anything, including a dangling symlink, is present at name
func Exists(afs afero.Fs, name string) (bool, error) {
	_, err := Lstat(afs, name)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// IsDir reports whether name exists and is a directory, following symlinks
func IsDir(afs afero.Fs, name string) bool {
	info, err := afs.Stat(name)
	return err == nil && info.IsDir()
}

// IsSymlink reports whether info describes a symbolic link
func IsSymlink(info fs.FileInfo) bool {
	return info != nil && info.Mode()&os.ModeSymlink != 0
}

// Symlink creates newname as a symbolic link to oldname
func Symlink(afs afero.Fs, oldname, newname string) error {
	linker, ok := afs.(afero.Linker)
	if !ok {
		return &os.LinkError{Op: "symlink", Old: oldname, New: newname, Err: ErrSymlinkUnsupported}
	}
	return linker.SymlinkIfPossible(oldname, newname)
}

// Readlink returns the destination of the named symbolic link
func Readlink(afs afero.Fs, name string) (string, error) {
	reader, ok := afs.(afero.LinkReader)
	if !ok {
		return "", &os.PathError{Op: "readlink", Path: name, Err: ErrSymlinkUnsupported}
	}
	return reader.ReadlinkIfPossible(name)
}

// ResolveLink follows name while it is a symbolic link and returns the first
// path in the chain that is not one. Relative destinations resolve against
// the directory of the link. Only the final component is followed.
func ResolveLink(afs afero.Fs, name string) (string, error) {
	current := name
	for i := 0; i < maxLinkHops; i++ {
		info, err := Lstat(afs, current)
		if err != nil {
			return "", err
		}
		if !IsSymlink(info) {
			return current, nil
		}
		dest, err := Readlink(afs, current)
		if err != nil {
			return "", err
		}
		if !filepath.IsAbs(dest) {
			dest = filepath.Join(filepath.Dir(current), dest)
		}
		current = dest
	}
	return "", &os.PathError{Op: "resolve", Path: name, Err: ErrTooManyLinks}
}
