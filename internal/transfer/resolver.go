package transfer

import (
	"path/filepath"

	"ferry/internal/browse"
	"ferry/internal/errors"
)

// Request is a fully resolved transfer: concrete source and destination
// paths plus the base name of the transferred item.
type Request struct {
	Source string
	Dest   string
	Name   string
}

// Resolve computes the source and destination paths for a transfer from
// src's selection into dst. The resolution is purely syntactic; whether the
// destination actually is a directory is left to the copy engine.
//
// Selecting the parent sentinel in the source pane transfers the browsed
// directory itself. A highlighted entry in the destination pane is treated
// as a subdirectory to copy into; the sentinel (or no selection) targets
// the destination pane's current directory. The item keeps its base name,
// so the resolved destination never contains a literal ".." component.
func Resolve(src, dst *browse.Listing) (Request, error) {
	entry, ok := src.SelectedEntry()
	if !ok {
		return Request{}, errors.ErrNoSelection
	}

	var sourcePath, name string
	if entry.IsParent() {
		sourcePath = src.Path()
		name = filepath.Base(sourcePath)
	} else {
		sourcePath = filepath.Join(src.Path(), entry.Name)
		name = entry.Name
	}

	destDir := dst.Path()
	if destEntry, ok := dst.SelectedEntry(); ok && !destEntry.IsParent() {
		destDir = filepath.Join(destDir, destEntry.Name)
	}

	return Request{
		Source: sourcePath,
		Dest:   filepath.Join(destDir, name),
		Name:   name,
	}, nil
}
