package browse_test

import (
	"os"
	"path/filepath"
	"testing"

	"ferry/internal/browse"
	"ferry/internal/errors"
	"ferry/pkg/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLister serves canned listings and fails for paths it doesn't know.
type fakeLister struct {
	dirs map[string][]browse.Entry
}

func (f fakeLister) List(path string) ([]browse.Entry, error) {
	entries, ok := f.dirs[path]
	if !ok {
		return nil, errors.NewListingError("cannot read directory", path, errors.ListingUnreadable, nil)
	}
	return entries, nil
}

func noFilter(t *testing.T) browse.Filter {
	t.Helper()
	f, err := browse.NewFilter(true, nil)
	require.NoError(t, err)
	return f
}

func TestRefreshSentinelInvariant(t *testing.T) {
	tmpDir := t.TempDir()
	testutils.CreateTestFilesWithContent(t, tmpDir, map[string]string{
		"one.txt":   "1",
		"two.txt":   "2",
		"three.txt": "3",
	})
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, "sub"), 0755))

	l := browse.NewListing(tmpDir, browse.OSLister{}, noFilter(t), "/")

	entries := l.Entries()
	require.Len(t, entries, 5, "4 real entries plus the parent sentinel")
	assert.Equal(t, browse.ParentName, entries[0].Name)
	assert.False(t, entries[0].Dir, "the sentinel is never a directory")
	assert.Equal(t, 0, l.Selected())

	// Refreshing again keeps the invariant
	l.Refresh()
	assert.Len(t, l.Entries(), 5)
	assert.Equal(t, browse.ParentName, l.Entries()[0].Name)
}

func TestMoveSelectionClamping(t *testing.T) {
	tmpDir := t.TempDir()
	testutils.CreateTestFilesWithContent(t, tmpDir, map[string]string{
		"a.txt": "a",
		"b.txt": "b",
	})

	l := browse.NewListing(tmpDir, browse.OSLister{}, noFilter(t), "/")
	last := len(l.Entries()) - 1

	t.Run("previous clamps at the first entry", func(t *testing.T) {
		for i := 0; i < 10; i++ {
			l.MoveSelection(browse.Previous)
		}
		assert.Equal(t, 0, l.Selected())
	})

	t.Run("next clamps at the last entry", func(t *testing.T) {
		for i := 0; i < 10; i++ {
			l.MoveSelection(browse.Next)
		}
		assert.Equal(t, last, l.Selected())

		l.MoveSelection(browse.Next)
		assert.Equal(t, last, l.Selected())
	})
}

func TestEnterSelected(t *testing.T) {
	tmpDir := t.TempDir()
	subDir := filepath.Join(tmpDir, "sub")
	require.NoError(t, os.Mkdir(subDir, 0755))
	testutils.CreateTestFilesWithContent(t, tmpDir, map[string]string{"plain.txt": "x"})
	testutils.CreateTestFilesWithContent(t, subDir, map[string]string{"inner.txt": "y"})

	l := browse.NewListing(tmpDir, browse.OSLister{}, noFilter(t), "/")

	t.Run("entering a file is a no-op", func(t *testing.T) {
		selectEntry(t, l, "plain.txt")
		assert.False(t, l.EnterSelected())
		assert.Equal(t, tmpDir, l.Path())
	})

	t.Run("entering a directory descends and resets selection", func(t *testing.T) {
		selectEntry(t, l, "sub")
		assert.True(t, l.EnterSelected())
		assert.Equal(t, subDir, l.Path())
		assert.Equal(t, 0, l.Selected())

		names := entryNames(l)
		assert.Contains(t, names, "inner.txt")
	})

	t.Run("entering the sentinel goes to the parent", func(t *testing.T) {
		require.Equal(t, browse.ParentName, l.Entries()[0].Name)
		assert.True(t, l.EnterSelected())
		assert.Equal(t, tmpDir, l.Path())
	})
}

func TestParentRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	deep := filepath.Join(tmpDir, "b", "c")
	require.NoError(t, os.MkdirAll(deep, 0755))

	l := browse.NewListing(deep, browse.OSLister{}, noFilter(t), "/")

	assert.True(t, l.GoToParent())
	assert.Equal(t, filepath.Join(tmpDir, "b"), l.Path())

	selectEntry(t, l, "c")
	assert.True(t, l.EnterSelected())
	assert.Equal(t, deep, l.Path())
}

func TestRootBoundary(t *testing.T) {
	lister := fakeLister{dirs: map[string][]browse.Entry{
		"/": {{Name: "etc", Dir: true}},
	}}
	l := browse.NewListing("/", lister, noFilter(t), "/")

	assert.False(t, l.GoToParent())
	assert.Equal(t, "/", l.Path())
}

func TestRefreshFallsBackWhenUnreadable(t *testing.T) {
	lister := fakeLister{dirs: map[string][]browse.Entry{
		"/fallback": {{Name: "rescue.txt"}},
	}}

	l := browse.NewListing("/gone", lister, noFilter(t), "/fallback")

	assert.Equal(t, "/fallback", l.Path())
	assert.Equal(t, []string{browse.ParentName, "rescue.txt"}, entryNames(l))
	assert.Equal(t, 0, l.Selected())
}

func TestRefreshFallbackAlsoUnreadable(t *testing.T) {
	lister := fakeLister{dirs: map[string][]browse.Entry{}}

	l := browse.NewListing("/gone", lister, noFilter(t), "/also-gone")

	// Pane still shows something: the bare sentinel
	require.Len(t, l.Entries(), 1)
	assert.Equal(t, browse.ParentName, l.Entries()[0].Name)
	sel, ok := l.SelectedEntry()
	require.True(t, ok)
	assert.True(t, sel.IsParent())
}

func TestHiddenAndGlobFiltering(t *testing.T) {
	tmpDir := t.TempDir()
	testutils.CreateTestFilesWithContent(t, tmpDir, map[string]string{
		"keep.txt":    "k",
		".hidden":     "h",
		"scratch.tmp": "s",
	})

	t.Run("dotfiles hidden by default", func(t *testing.T) {
		f, err := browse.NewFilter(false, nil)
		require.NoError(t, err)
		l := browse.NewListing(tmpDir, browse.OSLister{}, f, "/")
		names := entryNames(l)
		assert.Contains(t, names, "keep.txt")
		assert.NotContains(t, names, ".hidden")
	})

	t.Run("hide patterns drop matching entries", func(t *testing.T) {
		f, err := browse.NewFilter(true, []string{"*.tmp"})
		require.NoError(t, err)
		l := browse.NewListing(tmpDir, browse.OSLister{}, f, "/")
		names := entryNames(l)
		assert.Contains(t, names, "keep.txt")
		assert.Contains(t, names, ".hidden")
		assert.NotContains(t, names, "scratch.tmp")
	})

	t.Run("invalid pattern is rejected", func(t *testing.T) {
		_, err := browse.NewFilter(true, []string{"[unclosed"})
		assert.Error(t, err)
	})
}

// selectEntry moves the cursor onto the named entry
func selectEntry(t *testing.T, l *browse.Listing, name string) {
	t.Helper()
	for i := 0; i < len(l.Entries()); i++ {
		l.MoveSelection(browse.Previous)
	}
	for i := 0; i < len(l.Entries()); i++ {
		entry, ok := l.SelectedEntry()
		require.True(t, ok)
		if entry.Name == name {
			return
		}
		l.MoveSelection(browse.Next)
	}
	t.Fatalf("entry %q not found in %v", name, entryNames(l))
}

func entryNames(l *browse.Listing) []string {
	names := make([]string, 0, len(l.Entries()))
	for _, e := range l.Entries() {
		names = append(names, e.Name)
	}
	return names
}
