package browse

import (
	"path/filepath"

	"ferry/internal/log"
)

// Direction selects which way MoveSelection moves the cursor.
type Direction int

const (
	Next Direction = iota
	Previous
)

// Listing is one pane's view of a directory: the entry list (parent sentinel
// first), the selection cursor, and the current path. Every navigation
// operation re-reads the directory rather than patching the entry list, so
// concurrent changes by other processes (or the other pane's copies) are
// picked up on the next move.
type Listing struct {
	lister   Lister
	filter   Filter
	fallback string

	path     string
	entries  []Entry
	selected int
}

// NewListing creates a pane listing rooted at the given path and performs
// the initial read. fallback is where the pane lands when its directory
// becomes unreadable.
func NewListing(root string, lister Lister, filter Filter, fallback string) *Listing {
	l := &Listing{
		lister:   lister,
		filter:   filter,
		fallback: fallback,
		path:     root,
	}
	l.Refresh()
	return l
}

// Refresh re-reads the current directory. If it cannot be read the pane
// moves to the fallback root so the path and the entries stay consistent;
// the failure is logged, never surfaced. Selection resets to the sentinel.
func (l *Listing) Refresh() {
	entries, err := l.lister.List(l.path)
	if err != nil {
		log.LogWithError(err).Warn("directory unreadable, falling back")
		l.path = l.fallback
		if entries, err = l.lister.List(l.path); err != nil {
			log.LogWithError(err).Error("fallback root unreadable")
			entries = nil
		}
	}

	filtered := entries[:0]
	for _, e := range entries {
		if l.filter.Allow(e.Name) {
			filtered = append(filtered, e)
		}
	}

	l.entries = append([]Entry{{Name: ParentName}}, filtered...)
	l.selected = 0
}

// MoveSelection moves the cursor one entry in the given direction, clamped
// at both ends. No wraparound.
func (l *Listing) MoveSelection(dir Direction) {
	switch dir {
	case Next:
		if l.selected < len(l.entries)-1 {
			l.selected++
		}
	case Previous:
		if l.selected > 0 {
			l.selected--
		}
	}
}

// EnterSelected descends into the selected directory, or delegates to
// GoToParent when the sentinel is selected. Returns false for regular files
// and when nothing is selected.
func (l *Listing) EnterSelected() bool {
	entry, ok := l.SelectedEntry()
	if !ok {
		return false
	}
	if entry.IsParent() {
		return l.GoToParent()
	}
	if !entry.Dir {
		return false
	}
	l.path = filepath.Join(l.path, entry.Name)
	l.Refresh()
	return true
}

// GoToParent moves the pane to the parent directory. At a filesystem root
// it is a no-op and returns false.
func (l *Listing) GoToParent() bool {
	parent := filepath.Dir(l.path)
	if parent == l.path {
		return false
	}
	l.path = parent
	l.Refresh()
	return true
}

// SelectedEntry returns the entry under the cursor.
func (l *Listing) SelectedEntry() (Entry, bool) {
	if l.selected < 0 || l.selected >= len(l.entries) {
		return Entry{}, false
	}
	return l.entries[l.selected], true
}

// Path returns the directory the listing currently shows.
func (l *Listing) Path() string {
	return l.path
}

// Entries returns the listed entries, sentinel first.
func (l *Listing) Entries() []Entry {
	return l.entries
}

// Selected returns the cursor index.
func (l *Listing) Selected() int {
	return l.selected
}
