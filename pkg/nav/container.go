package nav

import (
	"cmp"
	"maps"
	"slices"
	"time"

	"github.com/matzehuels/navtree/pkg/observability"
)

// Container is an ordered collection of pages keyed by identity token.
// Pages sort by their explicit order value when one is set; pages without an
// explicit order are sequenced by insertion order among themselves, with
// synthetic keys assigned fresh on every rebuild. The sort is stable, so
// pages sharing an order value keep their relative insertion order.
//
// The traversal index is rebuilt lazily: mutations only mark the container
// dirty, and the next order-sensitive access (iteration, find, sorted export,
// order-based removal) resorts once. This makes batched mutation cheap while
// every read still observes a freshly-sorted view.
//
// The zero value is not usable - use [NewContainer]. Container is not safe for
// concurrent use without external synchronization.
type Container struct {
	pages map[string]Page // authoritative storage, identity -> page
	seq   []string        // identities in insertion order
	dirty bool

	// Derived traversal index, valid while dirty is false.
	sorted []string       // identities in traversal order
	keys   map[string]int // identity -> effective sort key

	cursor int
}

// NewContainer creates an empty container.
func NewContainer() *Container {
	return &Container{
		pages: make(map[string]Page),
		keys:  make(map[string]int),
	}
}

// sortIndex rebuilds the traversal index if the container is dirty.
// Pages are scanned in insertion order; a page without an explicit order
// receives the next synthetic key (0, 1, 2, ... counted over unset-order
// pages only). The counter restarts on every rebuild, so keys shift as
// unset-order pages come and go.
func (c *Container) sortIndex() {
	if !c.dirty {
		return
	}
	start := time.Now()

	type entry struct {
		id  string
		key int
	}
	entries := make([]entry, 0, len(c.seq))
	next := 0
	for _, id := range c.seq {
		key, ok := c.pages[id].Order()
		if !ok {
			key = next
			next++
		}
		entries = append(entries, entry{id: id, key: key})
	}
	slices.SortStableFunc(entries, func(a, b entry) int { return cmp.Compare(a.key, b.key) })

	c.sorted = make([]string, len(entries))
	c.keys = make(map[string]int, len(entries))
	for i, e := range entries {
		c.sorted[i] = e.id
		c.keys[e.id] = e.key
	}
	c.dirty = false
	observability.Tree().OnIndexRebuild(len(entries), time.Since(start))
}

// AddPage adds a page and takes ownership of it, reassigning the page's
// parent pointer to this container. Adding a page that is already present is
// a no-op, so AddPage is idempotent per identity token.
//
// Returns [ErrNilPage] for a nil page and [ErrSelfInsertion] when the page
// would become its own parent (the target container is the page's own child
// container).
func (c *Container) AddPage(p Page) error {
	if p == nil {
		return ErrNilPage
	}
	if p.Children() == c {
		return ErrSelfInsertion
	}
	id := p.ID()
	if _, exists := c.pages[id]; exists {
		return nil
	}
	c.pages[id] = p
	c.seq = append(c.seq, id)
	c.dirty = true
	p.SetParent(c)
	observability.Tree().OnPageAdded(id)
	return nil
}

// AddPages adds every non-nil page in the slice, in order.
// The first error aborts the batch; pages added before it stay added.
func (c *Container) AddPages(pages []Page) error {
	for _, p := range pages {
		if p == nil {
			continue
		}
		if err := c.AddPage(p); err != nil {
			return err
		}
	}
	return nil
}

// AddPagesFrom moves every page owned by src into this container, in src's
// traversal order. The source is materialized into a detached slice before
// iterating: each AddPage reassigns the page's parent, which removes it from
// src, and walking src's live storage while that happens would skip entries.
// After AddPagesFrom returns, src owns none of the moved pages.
func (c *Container) AddPagesFrom(src *Container) error {
	return c.AddPages(src.Pages())
}

// SetPages replaces the container's contents with the given pages.
// Equivalent to [Container.RemovePages] followed by [Container.AddPages].
func (c *Container) SetPages(pages []Page) error {
	c.RemovePages()
	return c.AddPages(pages)
}

// RemovePage removes a page by identity and reports whether anything was
// removed. With recursive set, the container's immediate children are
// searched depth-first: the first child whose subtree contains the page is
// delegated the removal and the search stops there.
//
// A page that is found nowhere yields false, never an error.
func (c *Container) RemovePage(p Page, recursive bool) bool {
	if p == nil {
		return false
	}
	id := p.ID()
	if _, ok := c.pages[id]; ok {
		c.deletePage(id)
		return true
	}
	if recursive {
		for _, childID := range c.seq {
			child := c.pages[childID]
			if child.Children().HasPage(p, true) {
				return child.Children().RemovePage(p, true)
			}
		}
	}
	return false
}

// RemovePageByOrder resorts the container, then removes the first page in
// traversal order whose effective sort key equals order. Synthetic keys
// assigned to unset-order pages count: RemovePageByOrder(0) on a container
// of order-less pages removes the first one.
//
// When several pages share the order value only the first match is removed,
// so order-based removal is deterministic only if callers keep order values
// unique. Returns false when no key matches.
func (c *Container) RemovePageByOrder(order int) bool {
	c.sortIndex()
	for _, id := range c.sorted {
		if c.keys[id] == order {
			c.deletePage(id)
			return true
		}
	}
	return false
}

// RemovePages removes every page. The container is immediately clean: an
// empty index needs no resort.
func (c *Container) RemovePages() {
	for id := range c.pages {
		observability.Tree().OnPageRemoved(id)
	}
	c.pages = make(map[string]Page)
	c.seq = nil
	c.sorted = nil
	c.keys = make(map[string]int)
	c.dirty = false
	c.cursor = 0
}

// deletePage removes one identity from storage and marks the index dirty.
func (c *Container) deletePage(id string) {
	delete(c.pages, id)
	c.seq = slices.DeleteFunc(c.seq, func(s string) bool { return s == id })
	c.dirty = true
	observability.Tree().OnPageRemoved(id)
}

// HasPage reports whether the page is directly owned by this container.
// With recursive set, every child subtree is searched as well, so the result
// is true iff the page is reachable by following owned-page links from here.
func (c *Container) HasPage(p Page, recursive bool) bool {
	if p == nil {
		return false
	}
	if _, ok := c.pages[p.ID()]; ok {
		return true
	}
	if recursive {
		for _, id := range c.seq {
			if c.pages[id].Children().HasPage(p, true) {
				return true
			}
		}
	}
	return false
}

// HasPages reports whether the container owns any pages. With onlyVisible
// set, only pages reporting Visible() count; storage is scanned directly
// since visibility is independent of ordering.
func (c *Container) HasPages(onlyVisible bool) bool {
	if !onlyVisible {
		return len(c.pages) > 0
	}
	for _, p := range c.pages {
		if p.Visible() {
			return true
		}
	}
	return false
}

// Count returns the number of pages directly owned by the container.
func (c *Container) Count() int { return len(c.pages) }

// PageMap returns a copy of the identity-to-page mapping. Iteration order of
// the returned map is unspecified - use [Container.Pages] for sorted access.
func (c *Container) PageMap() map[string]Page { return maps.Clone(c.pages) }

// Pages returns the container's pages in traversal order. The returned slice
// is detached: mutating the container afterwards does not affect it.
func (c *Container) Pages() []Page {
	c.sortIndex()
	pages := make([]Page, 0, len(c.sorted))
	for _, id := range c.sorted {
		if p, ok := c.pages[id]; ok {
			pages = append(pages, p)
		}
	}
	return pages
}

// Export returns each page's exported record in traversal order, recursing
// into child containers. Suitable for JSON encoding.
func (c *Container) Export() []map[string]any {
	pages := c.Pages()
	out := make([]map[string]any, len(pages))
	for i, p := range pages {
		out[i] = p.Export()
	}
	return out
}

// NotifyOrderUpdated marks the traversal index dirty. Pages call this when
// their order value changes; external callers can use it after mutating a
// page's order through means the container cannot observe.
func (c *Container) NotifyOrderUpdated() { c.dirty = true }
