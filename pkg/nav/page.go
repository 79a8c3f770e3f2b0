package nav

import (
	"fmt"
	"maps"

	"github.com/google/uuid"
)

// Page is a single node in a navigation tree. Pages are owned by exactly one
// [Container] at a time; adding a page to a second container detaches it from
// its previous parent via [Page.SetParent].
//
// Every page carries its own child [Container], which is what makes recursive
// search and removal meaningful: a page is simultaneously a leaf in its
// parent's container and the root of its own subtree.
type Page interface {
	// ID returns the page's identity token. It is unique and stable for the
	// lifetime of the page and never changes while the page is owned by a
	// container.
	ID() string

	// Order returns the page's explicit position and true, or 0 and false
	// when no explicit order is set. Pages without an explicit order are
	// sequenced by insertion order among themselves.
	Order() (int, bool)

	// Visible reports whether the page should be shown by renderers.
	// Invisible pages still participate in ordering and traversal.
	Visible() bool

	// Label returns the page's display text.
	Label() string

	// URI returns the page's link target.
	URI() string

	// Get looks up a property by name. Well-known properties ("label", "uri",
	// "visible", "order") resolve to the corresponding typed field; anything
	// else resolves to the page's custom property bag. The second result is
	// false when the property is not set.
	Get(property string) (any, bool)

	// SetParent reattaches the page to a new owning container, detaching it
	// from the previous one. Called by [Container.AddPage]; most callers
	// never invoke it directly.
	SetParent(c *Container)

	// Parent returns the container that currently owns the page, or nil for
	// a detached page.
	Parent() *Container

	// Children returns the page's own child container. It is never nil.
	Children() *Container

	// Export returns the page as a plain structured record, including its
	// child pages in traversal order. Suitable for JSON encoding.
	Export() map[string]any
}

// StaticPage is the concrete [Page] implementation: a label, a URI, a
// visibility flag, an optional explicit order, and an open-ended property
// bag. The zero value is not usable - use [NewPage] or [NewPageFromMap].
type StaticPage struct {
	id       string
	label    string
	uri      string
	visible  bool
	order    *int
	props    map[string]any
	parent   *Container
	children *Container
}

// NewPage creates a visible page with the given label and URI and a fresh
// identity token. The page starts detached with an empty child container.
func NewPage(label, uri string) *StaticPage {
	return &StaticPage{
		id:       uuid.NewString(),
		label:    label,
		uri:      uri,
		visible:  true,
		props:    map[string]any{},
		children: NewContainer(),
	}
}

// NewPageFromMap converts a loosely-typed record into a page. This is the
// explicit conversion step for untyped input (decoded JSON, script values):
//
//	p, err := nav.NewPageFromMap(map[string]any{
//	    "label": "Home",
//	    "uri":   "/",
//	    "order": 10,
//	})
//
// Recognized keys are "label" (string, required), "uri" (string), "visible"
// (bool), "order" (int), and "pages" (a []any of nested records). All other
// keys become custom properties. A wrong type for a recognized key returns
// [ErrInvalidSpec].
func NewPageFromMap(spec map[string]any) (*StaticPage, error) {
	label, ok := spec["label"].(string)
	if !ok || label == "" {
		return nil, fmt.Errorf("%w: missing or non-string label", ErrInvalidSpec)
	}

	p := NewPage(label, "")
	for key, raw := range spec {
		switch key {
		case "label":
			// Already applied.
		case "uri":
			s, ok := raw.(string)
			if !ok {
				return nil, fmt.Errorf("%w: uri must be a string, got %T", ErrInvalidSpec, raw)
			}
			p.uri = s
		case "visible":
			b, ok := raw.(bool)
			if !ok {
				return nil, fmt.Errorf("%w: visible must be a bool, got %T", ErrInvalidSpec, raw)
			}
			p.visible = b
		case "order":
			n, err := looseInt(raw)
			if err != nil {
				return nil, fmt.Errorf("%w: order: %v", ErrInvalidSpec, err)
			}
			p.order = &n
		case "pages":
			entries, ok := raw.([]any)
			if !ok {
				return nil, fmt.Errorf("%w: pages must be a list, got %T", ErrInvalidSpec, raw)
			}
			for i, entry := range entries {
				childSpec, ok := entry.(map[string]any)
				if !ok {
					return nil, fmt.Errorf("%w: pages[%d] must be a map, got %T", ErrInvalidSpec, i, entry)
				}
				child, err := NewPageFromMap(childSpec)
				if err != nil {
					return nil, fmt.Errorf("pages[%d]: %w", i, err)
				}
				if err := p.children.AddPage(child); err != nil {
					return nil, fmt.Errorf("pages[%d]: %w", i, err)
				}
			}
		default:
			p.props[key] = raw
		}
	}
	return p, nil
}

// looseInt accepts the integer encodings produced by the JSON, YAML, and TOML
// decoders, which disagree on the Go type for whole numbers.
func looseInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case uint64:
		return int(n), nil
	case float64:
		if n != float64(int(n)) {
			return 0, fmt.Errorf("not a whole number: %v", n)
		}
		return int(n), nil
	default:
		return 0, fmt.Errorf("not an integer: %T", v)
	}
}

// ID returns the page's identity token.
func (p *StaticPage) ID() string { return p.id }

// Label returns the page's display text.
func (p *StaticPage) Label() string { return p.label }

// URI returns the page's link target.
func (p *StaticPage) URI() string { return p.uri }

// Visible reports whether the page should be shown by renderers.
func (p *StaticPage) Visible() bool { return p.visible }

// Order returns the explicit order and true, or 0 and false when unset.
func (p *StaticPage) Order() (int, bool) {
	if p.order == nil {
		return 0, false
	}
	return *p.order, true
}

// Parent returns the owning container, or nil for a detached page.
func (p *StaticPage) Parent() *Container { return p.parent }

// Children returns the page's child container. Never nil.
func (p *StaticPage) Children() *Container { return p.children }

// SetLabel updates the display text.
func (p *StaticPage) SetLabel(label string) { p.label = label }

// SetURI updates the link target.
func (p *StaticPage) SetURI(uri string) { p.uri = uri }

// SetVisible updates the visibility flag.
func (p *StaticPage) SetVisible(visible bool) { p.visible = visible }

// SetOrder assigns an explicit order and notifies the owning container so
// the next order-sensitive access resorts the siblings.
func (p *StaticPage) SetOrder(order int) {
	p.order = &order
	if p.parent != nil {
		p.parent.NotifyOrderUpdated()
	}
}

// ClearOrder removes the explicit order, returning the page to
// insertion-order sequencing. The owning container is notified.
func (p *StaticPage) ClearOrder() {
	p.order = nil
	if p.parent != nil {
		p.parent.NotifyOrderUpdated()
	}
}

// Set stores a custom property. Well-known property names are not remapped
// onto the typed fields - use the dedicated setters for those.
func (p *StaticPage) Set(property string, value any) { p.props[property] = value }

// Get implements [Page.Get].
func (p *StaticPage) Get(property string) (any, bool) {
	switch property {
	case "label":
		return p.label, true
	case "uri":
		return p.uri, true
	case "visible":
		return p.visible, true
	case "order":
		if p.order == nil {
			return nil, false
		}
		return *p.order, true
	default:
		v, ok := p.props[property]
		return v, ok
	}
}

// SetParent implements [Page.SetParent]. Moving a page between containers
// removes it from the previous parent first, so a page is never owned twice.
func (p *StaticPage) SetParent(c *Container) {
	if p.parent == c {
		return
	}
	old := p.parent
	p.parent = c
	if old != nil {
		old.RemovePage(p, false)
	}
}

// Export implements [Page.Export]. Child pages appear under "pages" in
// traversal order; the key is omitted for leaf pages, as are unset order
// values and custom properties.
func (p *StaticPage) Export() map[string]any {
	out := map[string]any{
		"label":   p.label,
		"uri":     p.uri,
		"visible": p.visible,
	}
	if p.order != nil {
		out["order"] = *p.order
	}
	if len(p.props) > 0 {
		out["props"] = maps.Clone(p.props)
	}
	if p.children.Count() > 0 {
		out["pages"] = p.children.Export()
	}
	return out
}
