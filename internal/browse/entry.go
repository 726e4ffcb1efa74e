// Package browse implements the per-pane directory listing model: entries,
// the selection cursor, and the navigation operations that move a pane
// through the filesystem.
package browse

// ParentName is the synthesized entry at index 0 of every listing. It is
// never looked up on disk; selecting it navigates to the parent directory.
const ParentName = ".."

// Entry is a named child of the listed directory, or the parent sentinel.
type Entry struct {
	Name string
	Dir  bool
	Size int64
}

// IsParent reports whether the entry is the parent sentinel.
func (e Entry) IsParent() bool {
	return e.Name == ParentName
}
