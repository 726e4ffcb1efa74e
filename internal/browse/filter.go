package browse

import (
	"strings"

	"github.com/gobwas/glob"

	"ferry/internal/errors"
)

// Filter decides which directory children appear in a listing. The parent
// sentinel is synthesized after filtering and is never subject to it.
type Filter struct {
	showHidden bool
	globs      []glob.Glob
}

// NewFilter compiles the given hide patterns. Entries whose name matches any
// pattern are omitted, as are dotfiles unless showHidden is set.
func NewFilter(showHidden bool, hidePatterns []string) (Filter, error) {
	f := Filter{showHidden: showHidden}
	for _, pattern := range hidePatterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			return Filter{}, errors.Wrapf(err, "invalid hide pattern %q", pattern)
		}
		f.globs = append(f.globs, g)
	}
	return f, nil
}

// Allow reports whether an entry with the given name should be listed.
func (f Filter) Allow(name string) bool {
	if !f.showHidden && strings.HasPrefix(name, ".") {
		return false
	}
	for _, g := range f.globs {
		if g.Match(name) {
			return false
		}
	}
	return true
}
