// pkg/ignore/reconciler_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: afero MemMapFs, StaticOracle
// PURPOSE: Test .gitignore reconciliation without a real repository

package ignore

import (
	"testing"

	"github.com/arthur-debert/swt/pkg/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const target = "/work/feature"

func newReconciler(t *testing.T, existing *string, oracle Oracle) (*Reconciler, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(target, 0755))
	if existing != nil {
		require.NoError(t, afero.WriteFile(fs, target+"/.gitignore", []byte(*existing), 0600))
	}
	if oracle == nil {
		oracle = NewStaticOracle()
	}
	return NewReconciler(fs, oracle), fs
}

func readIgnore(t *testing.T, fs afero.Fs) string {
	t.Helper()
	data, err := afero.ReadFile(fs, target+"/.gitignore")
	require.NoError(t, err)
	return string(data)
}

func strPtr(s string) *string { return &s }

func TestReconcileCreatesFile(t *testing.T) {
	r, fs := newReconciler(t, nil, nil)

	result, err := r.Reconcile(target, []string{".env", ".idea/"})
	require.NoError(t, err)

	assert.True(t, result.Written)
	assert.Equal(t, []string{".env", ".idea/"}, result.Added)
	assert.Equal(t, "# swt synced files\n.env\n.idea/\n", readIgnore(t, fs))
}

func TestReconcileAppendsToExisting(t *testing.T) {
	tests := []struct {
		name     string
		existing string
		want     string
	}{
		{
			name:     "with trailing newline",
			existing: "node_modules\n",
			want:     "node_modules\n\n# swt synced files\n.env\n",
		},
		{
			name:     "without trailing newline",
			existing: "node_modules",
			want:     "node_modules\n\n# swt synced files\n.env\n",
		},
		{
			name:     "empty file",
			existing: "",
			want:     "# swt synced files\n.env\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, fs := newReconciler(t, strPtr(tt.existing), nil)

			_, err := r.Reconcile(target, []string{".env"})
			require.NoError(t, err)
			assert.Equal(t, tt.want, readIgnore(t, fs))
		})
	}
}

func TestReconcileSkipsListedEntries(t *testing.T) {
	existing := "# local\n.env\n  .idea  \nbuild/\n"
	r, fs := newReconciler(t, strPtr(existing), nil)

	result, err := r.Reconcile(target, []string{".env", ".idea/", "build", "dist/"})
	require.NoError(t, err)

	assert.Equal(t, []string{".env", ".idea/", "build"}, result.Listed)
	assert.Equal(t, []string{"dist/"}, result.Added)
	assert.Equal(t, existing+"\n# swt synced files\ndist/\n", readIgnore(t, fs))
}

func TestReconcileSkipsCoveredPaths(t *testing.T) {
	existing := "node_modules\n"
	r, fs := newReconciler(t, strPtr(existing), NewStaticOracle("node_modules"))

	result, err := r.Reconcile(target, []string{"node_modules/tmp.lock"})
	require.NoError(t, err)

	assert.Equal(t, []string{"node_modules/tmp.lock"}, result.Covered)
	assert.Empty(t, result.Added)
	assert.False(t, result.Written)
	assert.Equal(t, existing, readIgnore(t, fs), "file must be untouched")
}

func TestReconcileDeduplicatesWithinBatch(t *testing.T) {
	r, fs := newReconciler(t, nil, nil)

	result, err := r.Reconcile(target, []string{".vscode/", ".vscode", ".env"})
	require.NoError(t, err)

	assert.Equal(t, []string{".vscode/", ".env"}, result.Added)
	assert.Equal(t, "# swt synced files\n.vscode/\n.env\n", readIgnore(t, fs))
}

func TestReconcileIsIdempotent(t *testing.T) {
	r, fs := newReconciler(t, strPtr("*.log\n"), nil)

	_, err := r.Reconcile(target, []string{".env", "config/local.json"})
	require.NoError(t, err)
	first := readIgnore(t, fs)

	result, err := r.Reconcile(target, []string{".env", "config/local.json"})
	require.NoError(t, err)
	assert.False(t, result.Written)
	assert.Equal(t, first, readIgnore(t, fs))
}

func TestReconcilePreservesMode(t *testing.T) {
	r, fs := newReconciler(t, strPtr("a\n"), nil)

	_, err := r.Reconcile(target, []string{"b"})
	require.NoError(t, err)

	info, err := fs.Stat(target + "/.gitignore")
	require.NoError(t, err)
	assert.Equal(t, "-rw-------", info.Mode().Perm().String())
}

func TestReconcileNothingToDo(t *testing.T) {
	r, fs := newReconciler(t, nil, nil)

	result, err := r.Reconcile(target, nil)
	require.NoError(t, err)
	assert.False(t, result.Written)

	exists, err := afero.Exists(fs, target+"/.gitignore")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestReconcileWriteFailure(t *testing.T) {
	base := afero.NewMemMapFs()
	require.NoError(t, base.MkdirAll(target, 0755))
	r := NewReconciler(afero.NewReadOnlyFs(base), NewStaticOracle())

	result, err := r.Reconcile(target, []string{".env"})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrIgnoreUpdate))
	assert.False(t, result.Written)
	assert.Equal(t, []string{".env"}, result.Added)
}
