package filesync

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/arthur-debert/swt/pkg/errors"
	"github.com/arthur-debert/swt/pkg/filesystem"
	"github.com/arthur-debert/swt/pkg/logging"
	"github.com/arthur-debert/swt/pkg/types"
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Executor links or copies resolved entries into a target worktree.
// Existing targets are never touched.
type Executor struct {
	fs     afero.Fs
	logger zerolog.Logger
}

// NewExecutor returns an executor operating on fs
func NewExecutor(fs afero.Fs) *Executor {
	return &Executor{
		fs:     fs,
		logger: logging.GetLogger("filesync.executor"),
	}
}

// TransferEntry transfers entry from sourceRoot to the same relative path under targetRoot
func (e *Executor) TransferEntry(sourceRoot, targetRoot string, entry types.ResolvedEntry, mode types.Mode) types.TransferResult {
	rel := filepath.FromSlash(entry.RelativePath)
	result := e.Transfer(filepath.Join(sourceRoot, rel), filepath.Join(targetRoot, rel), entry.Kind, mode)
	result.RelativePath = entry.RelativePath
	return result
}

// Transfer makes targetPath a link to, or a copy of, sourcePath. Failures are
// reported in the result and never returned.
func (e *Executor) Transfer(sourcePath, targetPath string, kind types.EntryKind, mode types.Mode) types.TransferResult {
	result := types.TransferResult{Kind: kind, Mode: mode}
	logger := e.logger.With().Str("source", sourcePath).Str("target", targetPath).Str("mode", string(mode)).Logger()

	exists, err := filesystem.Exists(e.fs, targetPath)
	if err != nil {
		result.Err = errors.Wrapf(err, errors.ErrFileAccess, "cannot inspect %s", targetPath).
			WithDetail("path", targetPath)
		logger.Warn().Err(result.Err).Msg("Transfer failed")
		return result
	}
	if exists {
		logger.Debug().Msg("Target exists, skipping")
		return result
	}

	switch mode {
	case types.ModeLink:
		err = e.link(sourcePath, targetPath)
	case types.ModeCopy:
		if kind == types.KindDirectory {
			result.Bytes, result.Warnings, err = e.copyDir(sourcePath, targetPath)
		} else {
			result.Bytes, err = e.copyFile(sourcePath, targetPath)
		}
	default:
		err = errors.Newf(errors.ErrInvalidInput, "unknown transfer mode %q", mode)
	}

	for _, w := range result.Warnings {
		logger.Warn().Msg(w)
	}
	if err != nil {
		result.Err = err
		logger.Warn().Err(err).Msg("Transfer failed")
		return result
	}

	// A transfer that wrote nothing must not be reported, or it is retried forever
	if written, _ := filesystem.Exists(e.fs, targetPath); !written {
		msg := fmt.Sprintf("nothing was written to %s", targetPath)
		result.Warnings = append(result.Warnings, msg)
		logger.Warn().Msg(msg)
		return result
	}

	result.Performed = true
	if mode == types.ModeCopy {
		logger.Info().Str("size", humanize.Bytes(uint64(result.Bytes))).Msg("Copied")
	} else {
		logger.Info().Msg("Linked")
	}
	return result
}

func (e *Executor) link(sourcePath, targetPath string) error {
	absSource, err := filepath.Abs(sourcePath)
	if err != nil {
		return errors.Wrapf(err, errors.ErrSymlinkCreate, "cannot resolve %s", sourcePath)
	}
	if err := e.fs.MkdirAll(filepath.Dir(targetPath), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrSymlinkCreate, "cannot create parent of %s", targetPath).
			WithDetail("path", targetPath)
	}
	if err := filesystem.Symlink(e.fs, absSource, targetPath); err != nil {
		return errors.Wrapf(err, errors.ErrSymlinkCreate, "cannot link %s", targetPath).
			WithDetail("path", targetPath)
	}
	return nil
}

// copyFile copies content and permission bits. A partially written target is removed.
func (e *Executor) copyFile(sourcePath, targetPath string) (int64, error) {
	n, err := e.copyFileContents(sourcePath, targetPath)
	if err != nil {
		_ = e.fs.Remove(targetPath)
		return 0, errors.Wrapf(err, errors.ErrFileCopy, "cannot copy %s", sourcePath).
			WithDetail("path", targetPath)
	}
	return n, nil
}

func (e *Executor) copyFileContents(sourcePath, targetPath string) (int64, error) {
	src, err := e.fs.Open(sourcePath)
	if err != nil {
		return 0, err
	}
	defer src.Close()

	info, err := src.Stat()
	if err != nil {
		return 0, err
	}
	if info.IsDir() {
		return 0, fmt.Errorf("%s is a directory", sourcePath)
	}

	if err := e.fs.MkdirAll(filepath.Dir(targetPath), 0755); err != nil {
		return 0, err
	}

	perm := info.Mode().Perm()
	dst, err := e.fs.OpenFile(targetPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return 0, err
	}

	n, err := io.Copy(dst, src)
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return n, err
	}

	// OpenFile permissions are subject to the umask
	return n, e.fs.Chmod(targetPath, perm)
}

// copyDir recreates sourcePath under targetPath. A symlinked sourcePath is
// copied from the directory it points to. Below it, symlinked files are
// copied as regular files; symlinked directories and special files are
// skipped with a warning. On error the partial copy is removed.
func (e *Executor) copyDir(sourcePath, targetPath string) (int64, []string, error) {
	var total int64
	var warnings []string

	root, err := filesystem.ResolveLink(e.fs, sourcePath)
	if err != nil {
		return 0, nil, errors.Wrapf(err, errors.ErrFileCopy, "cannot resolve %s", sourcePath).
			WithDetail("path", targetPath)
	}
	if !filesystem.IsDir(e.fs, root) {
		return 0, nil, errors.Newf(errors.ErrFileCopy, "%s is not a directory", sourcePath).
			WithDetail("path", targetPath)
	}

	err = afero.Walk(e.fs, root, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		dst := filepath.Join(targetPath, rel)

		switch {
		case info.IsDir():
			if err := e.fs.MkdirAll(dst, info.Mode().Perm()|0700); err != nil {
				return err
			}
			return e.fs.Chmod(dst, info.Mode().Perm()|0700)

		case filesystem.IsSymlink(info):
			resolved, err := e.fs.Stat(p)
			if err != nil {
				warnings = append(warnings, fmt.Sprintf("skipping dangling symlink %s", p))
				return nil
			}
			if resolved.IsDir() {
				warnings = append(warnings, fmt.Sprintf("skipping symlinked directory %s", p))
				return nil
			}
			n, err := e.copyFileContents(p, dst)
			total += n
			return err

		case info.Mode().IsRegular():
			n, err := e.copyFileContents(p, dst)
			total += n
			return err

		default:
			warnings = append(warnings, fmt.Sprintf("skipping special file %s", p))
			return nil
		}
	})
	if err != nil {
		_ = e.fs.RemoveAll(targetPath)
		return 0, warnings, errors.Wrapf(err, errors.ErrFileCopy, "cannot copy directory %s", sourcePath).
			WithDetail("path", targetPath)
	}

	return total, warnings, nil
}
