package nav

import (
	"fmt"
	"reflect"
	"regexp"
	"unicode"
	"unicode/utf8"
)

// FindMode selects how many matches a find operation collects.
type FindMode int

const (
	// FindOne stops at the first matching page.
	FindOne FindMode = iota
	// FindAll collects every matching page in traversal order.
	FindAll
)

// finderName matches the by-name finder shapes: findByLabel, findOneByLabel,
// findAllByLabel. The trailing segment is the property name with its first
// letter capitalized.
var finderName = regexp.MustCompile(`^find(One|All)?By(\p{Lu}\w*)$`)

// FindOneBy returns the first page in the subtree whose property equals
// value, or nil when nothing matches. The traversal is pre-order depth-first
// over the container's full subtree, so an ancestor always wins over its
// descendants and earlier siblings over later ones.
//
// Equality is strict: values of different dynamic types never match.
func (c *Container) FindOneBy(property string, value any) Page {
	var found Page
	c.walk(func(p Page) bool {
		if pageMatches(p, property, value) {
			found = p
			return true
		}
		return false
	})
	return found
}

// FindAllBy returns every page in the subtree whose property equals value,
// in traversal order. The result is empty, never nil, when nothing matches.
func (c *Container) FindAllBy(property string, value any) []Page {
	found := []Page{}
	c.walk(func(p Page) bool {
		if pageMatches(p, property, value) {
			found = append(found, p)
		}
		return false
	})
	return found
}

// Find dispatches to [Container.FindOneBy] or [Container.FindAllBy] based on
// mode. For FindOne the result has at most one element.
func (c *Container) Find(mode FindMode, property string, value any) []Page {
	if mode == FindAll {
		return c.FindAllBy(property, value)
	}
	if p := c.FindOneBy(property, value); p != nil {
		return []Page{p}
	}
	return []Page{}
}

// CallFinder resolves a finder by method name at call time:
//
//	pages, err := c.CallFinder("findAllByLabel", "Home")
//
// is equivalent to c.FindAllBy("label", "Home"). Recognized shapes are
// findBy<P> and findOneBy<P> (first match) and findAllBy<P> (all matches),
// where <P> is a property name with its first letter capitalized; the
// property is matched case-sensitively after lowering that first letter.
// Any other name returns [ErrBadMethodCall] identifying the attempted call.
func (c *Container) CallFinder(method string, value any) ([]Page, error) {
	m := finderName.FindStringSubmatch(method)
	if m == nil {
		return nil, fmt.Errorf("%w: unknown method Container::%s", ErrBadMethodCall, method)
	}
	mode := FindOne
	if m[1] == "All" {
		mode = FindAll
	}
	return c.Find(mode, lowerFirst(m[2]), value), nil
}

// pageMatches reports whether the page's property is set and strictly equal
// to value.
func pageMatches(p Page, property string, value any) bool {
	v, ok := p.Get(property)
	return ok && reflect.DeepEqual(v, value)
}

// lowerFirst lowercases the first rune: "Label" -> "label".
func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
