package nav

import (
	"fmt"
	"iter"
	"slices"
)

// The cursor protocol below mirrors a recursive-iterator state machine: an
// internal cursor walks the sorted index, and CurrentChildren exposes the
// page under the cursor as a nested container for recursive descent. Every
// protocol method resorts first, so a cursor started before a batch of
// mutations still observes a consistent view - though mutating the container
// mid-walk moves the cursor's frame of reference and is best avoided.
// Most callers should prefer [Container.All] or the finders.

// Rewind resorts the container and positions the cursor on the first page in
// traversal order, or past the end for an empty container.
func (c *Container) Rewind() {
	c.sortIndex()
	c.cursor = 0
}

// Valid reports whether the cursor is positioned on an existing entry.
func (c *Container) Valid() bool {
	c.sortIndex()
	return c.cursor >= 0 && c.cursor < len(c.sorted)
}

// Current resolves the cursor's identity token to its page. A token with no
// corresponding page in storage means the index and storage have desynced;
// that is a programming error and returns [ErrCorruptIndex]. Calling Current
// with an out-of-range cursor reports the same corruption error.
func (c *Container) Current() (Page, error) {
	c.sortIndex()
	if c.cursor >= 0 && c.cursor < len(c.sorted) {
		if p, ok := c.pages[c.sorted[c.cursor]]; ok {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: invalid key found in internal iterator", ErrCorruptIndex)
}

// Key returns the identity token under the cursor, or "" past the end.
func (c *Container) Key() string {
	c.sortIndex()
	if c.cursor >= 0 && c.cursor < len(c.sorted) {
		return c.sorted[c.cursor]
	}
	return ""
}

// Next advances the cursor one position in traversal order.
func (c *Container) Next() {
	c.sortIndex()
	c.cursor++
}

// HasChildren reports whether the cursor is valid and the page under it owns
// pages of its own.
func (c *Container) HasChildren() bool {
	if !c.Valid() {
		return false
	}
	p, err := c.Current()
	return err == nil && p.Children().HasPages(false)
}

// CurrentChildren returns the child container of the page under the cursor,
// for recursive descent. Returns nil when the cursor is invalid.
func (c *Container) CurrentChildren() *Container {
	if !c.Valid() {
		return nil
	}
	p, err := c.Current()
	if err != nil {
		return nil
	}
	return p.Children()
}

// All returns an iterator over the container's direct pages in traversal
// order, keyed by identity token. The order is snapshotted when iteration
// starts; pages removed mid-iteration are skipped rather than resolved
// stale.
func (c *Container) All() iter.Seq2[string, Page] {
	return func(yield func(string, Page) bool) {
		c.sortIndex()
		for _, id := range slices.Clone(c.sorted) {
			p, ok := c.pages[id]
			if !ok {
				continue
			}
			if !yield(id, p) {
				return
			}
		}
	}
}

// walk performs a pre-order depth-first traversal of the full subtree: each
// page is visited before its descendants, siblings after the whole subtree.
// visit returning true stops the walk; walk reports whether it was stopped.
func (c *Container) walk(visit func(Page) bool) bool {
	for _, p := range c.Pages() {
		if visit(p) {
			return true
		}
		if p.Children().walk(visit) {
			return true
		}
	}
	return false
}
