// Package filesystem provides the small set of filesystem helpers swt needs
// on top of afero: lstat, symlink creation and existence checks that work on
// both the real filesystem and in-memory filesystems used in tests.
package filesystem
