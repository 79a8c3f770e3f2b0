// Package config builds navigation trees from declarative files.
//
// A tree file lists pages with labels, URIs, visibility, explicit order
// values, arbitrary extra properties, and nested child pages. TOML, YAML,
// and JSON are supported, selected by file extension:
//
//	[[pages]]
//	label = "Home"
//	uri = "/"
//	order = 1
//
//	[[pages]]
//	label = "Docs"
//	uri = "/docs"
//
//	  [[pages.pages]]
//	  label = "Install"
//	  uri = "/docs/install"
//
// Use [Load] for files, [Parse] for in-memory data, or [Build] to assemble a
// container from already-decoded specs.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"

	"github.com/matzehuels/navtree/pkg/nav"
)

var (
	// ErrUnsupportedFormat is returned by [Load] and [Parse] for file
	// formats other than TOML, YAML, and JSON.
	ErrUnsupportedFormat = errors.New("unsupported tree format")

	// ErrMissingLabel is returned by [Build] when a page spec has no label.
	ErrMissingLabel = errors.New("page label must not be empty")
)

// PageSpec is the declarative form of a single page.
type PageSpec struct {
	Label   string         `toml:"label" yaml:"label" json:"label"`
	URI     string         `toml:"uri" yaml:"uri" json:"uri,omitempty"`
	Order   *int           `toml:"order" yaml:"order,omitempty" json:"order,omitempty"`
	Visible *bool          `toml:"visible" yaml:"visible,omitempty" json:"visible,omitempty"`
	Props   map[string]any `toml:"props" yaml:"props,omitempty" json:"props,omitempty"`
	Pages   []PageSpec     `toml:"pages" yaml:"pages,omitempty" json:"pages,omitempty"`
}

// Tree is the root of a tree file.
type Tree struct {
	Pages []PageSpec `toml:"pages" yaml:"pages" json:"pages"`
}

// Load reads a tree file and builds its container. The format is chosen by
// file extension: .toml, .yaml/.yml, or .json.
func Load(path string) (*nav.Container, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	c, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes tree data in the given format ("toml", "yaml", "yml", or
// "json") and builds its container.
func Parse(data []byte, format string) (*nav.Container, error) {
	var tree Tree
	switch strings.ToLower(format) {
	case "toml":
		if err := toml.Unmarshal(data, &tree); err != nil {
			return nil, err
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &tree); err != nil {
			return nil, err
		}
	case "json":
		if err := json.Unmarshal(data, &tree); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return Build(tree.Pages)
}

// Build assembles a container from page specs, recursing into nested pages.
// Pages are visible by default and keep file order unless an explicit order
// value says otherwise.
func Build(specs []PageSpec) (*nav.Container, error) {
	c := nav.NewContainer()
	for i, spec := range specs {
		p, err := buildPage(spec)
		if err != nil {
			return nil, fmt.Errorf("pages[%d]: %w", i, err)
		}
		if err := c.AddPage(p); err != nil {
			return nil, fmt.Errorf("pages[%d]: %w", i, err)
		}
	}
	return c, nil
}

func buildPage(spec PageSpec) (*nav.StaticPage, error) {
	if spec.Label == "" {
		return nil, ErrMissingLabel
	}
	p := nav.NewPage(spec.Label, spec.URI)
	if spec.Visible != nil {
		p.SetVisible(*spec.Visible)
	}
	if spec.Order != nil {
		p.SetOrder(*spec.Order)
	}
	for key, value := range spec.Props {
		p.Set(key, value)
	}
	for i, childSpec := range spec.Pages {
		child, err := buildPage(childSpec)
		if err != nil {
			return nil, fmt.Errorf("%q: pages[%d]: %w", spec.Label, i, err)
		}
		if err := p.Children().AddPage(child); err != nil {
			return nil, fmt.Errorf("%q: pages[%d]: %w", spec.Label, i, err)
		}
	}
	return p, nil
}
