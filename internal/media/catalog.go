package media

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// Catalog is the deduplicated, title-ordered set of episodes produced by one search.
// Episodes are kept sorted at insertion, so indices refer to the sorted view.
type Catalog struct {
	base     string
	episodes []Episode
}

// NewCatalog creates an empty catalog whose episode links are rooted at base.
func NewCatalog(base string) *Catalog {
	return &Catalog{base: base}
}

// AddIfNew inserts an episode unless one with the same title (exact,
// case-sensitive) is already present. It reports whether it inserted.
func (c *Catalog) AddIfNew(title, path string) bool {
	i, found := slices.BinarySearchFunc(c.episodes, title, func(e Episode, t string) int {
		return strings.Compare(e.Title, t)
	})
	if found {
		return false
	}
	c.episodes = slices.Insert(c.episodes, i, NewEpisode(c.base, title, path))
	return true
}

// Len returns the number of episodes.
func (c *Catalog) Len() int {
	return len(c.episodes)
}

// Sorted returns a copy of the episodes in ascending title order.
func (c *Catalog) Sorted() []Episode {
	return slices.Clone(c.episodes)
}

// Toggle flips the selection flag of the episode at index i of the sorted view.
func (c *Catalog) Toggle(i int) error {
	if i < 0 || i >= len(c.episodes) {
		return fmt.Errorf("expected a value between 0 and %d, got %d", len(c.episodes)-1, i)
	}
	c.episodes[i].Selected = !c.episodes[i].Selected
	return nil
}

// SelectAll marks every episode as selected.
func (c *Catalog) SelectAll() {
	c.setAll(true)
}

// SelectNone clears every selection.
func (c *Catalog) SelectNone() {
	c.setAll(false)
}

func (c *Catalog) setAll(v bool) {
	for i := range c.episodes {
		c.episodes[i].Selected = v
	}
}

// Selected returns the selected episodes in title order.
func (c *Catalog) Selected() []Episode {
	return lo.Filter(c.episodes, func(e Episode, _ int) bool {
		return e.Selected
	})
}
