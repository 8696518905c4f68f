package rename_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/internetimagery/nametag/internal/rename"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
}

func TestApply(t *testing.T) {
	t.Run("renames file", func(t *testing.T) {
		dir := t.TempDir()
		from := filepath.Join(dir, "a.txt")
		to := filepath.Join(dir, "a[tag].txt")
		touch(t, from)

		require.NoError(t, rename.Apply(rename.Plan{From: from, To: to}, rename.Options{}))

		assert.NoFileExists(t, from)
		assert.FileExists(t, to)
	})

	t.Run("no-op skips filesystem", func(t *testing.T) {
		dir := t.TempDir()
		from := filepath.Join(dir, "missing.txt")
		// From does not exist; a no-op plan must still succeed.
		assert.NoError(t, rename.Apply(rename.Plan{From: from, To: from}, rename.Options{}))
	})

	t.Run("refuses to overwrite", func(t *testing.T) {
		dir := t.TempDir()
		from := filepath.Join(dir, "a.txt")
		to := filepath.Join(dir, "b.txt")
		touch(t, from)
		touch(t, to)

		err := rename.Apply(rename.Plan{From: from, To: to}, rename.Options{})
		assert.ErrorIs(t, err, rename.ErrDestinationExists)
		assert.FileExists(t, from, "source untouched on failure")
	})

	t.Run("overwrite replaces destination", func(t *testing.T) {
		dir := t.TempDir()
		from := filepath.Join(dir, "a.txt")
		to := filepath.Join(dir, "b.txt")
		touch(t, from)
		touch(t, to)

		err := rename.Apply(rename.Plan{From: from, To: to}, rename.Options{Overwrite: true})
		assert.NoError(t, err)
		assert.NoFileExists(t, from)
		assert.FileExists(t, to)
	})
}

func TestApplyAll(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	blocked := filepath.Join(dir, "taken.txt")
	touch(t, a)
	touch(t, b)
	touch(t, blocked)

	plans := []rename.Plan{
		{From: a, To: filepath.Join(dir, "a[x].txt")},
		{From: b, To: blocked},
	}

	applied, err := rename.ApplyAll(plans, rename.Options{})
	assert.ErrorIs(t, err, rename.ErrDestinationExists)
	assert.Equal(t, 1, applied, "first plan applied before failure")
	assert.FileExists(t, filepath.Join(dir, "a[x].txt"))
	assert.FileExists(t, b, "failed plan leaves its source alone")
}
