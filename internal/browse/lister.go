package browse

import (
	"os"

	"ferry/internal/errors"
)

// Lister is the directory-read primitive a Listing depends on. Implementations
// return the directory's children without the parent sentinel; order is
// whatever the underlying source provides.
type Lister interface {
	List(path string) ([]Entry, error)
}

// OSLister reads directories from the local filesystem.
type OSLister struct{}

// List returns the children of path. An unreadable path yields a
// ListingUnreadable error.
func (OSLister) List(path string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(path)
	if err != nil {
		return nil, errors.NewListingError("cannot read directory", path, errors.ListingUnreadable, err)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		e := Entry{Name: de.Name(), Dir: de.IsDir()}
		if info, err := de.Info(); err == nil && !e.Dir {
			e.Size = info.Size()
		}
		entries = append(entries, e)
	}
	return entries, nil
}
