package nav

import (
	"errors"
	"testing"
)

func TestNewPageDefaults(t *testing.T) {
	p := NewPage("Home", "/")

	if p.ID() == "" {
		t.Error("new page should have an identity token")
	}
	if !p.Visible() {
		t.Error("new page should be visible")
	}
	if _, ok := p.Order(); ok {
		t.Error("new page should have no explicit order")
	}
	if p.Children() == nil {
		t.Error("new page should carry a child container")
	}
	if p.Parent() != nil {
		t.Error("new page should be detached")
	}

	q := NewPage("Home", "/")
	if p.ID() == q.ID() {
		t.Error("identity tokens must be unique across pages")
	}
}

func TestPageGet(t *testing.T) {
	p := NewPage("Docs", "/docs")
	p.SetOrder(3)
	p.Set("section", "docs")

	tests := []struct {
		property string
		want     any
		wantOK   bool
	}{
		{property: "label", want: "Docs", wantOK: true},
		{property: "uri", want: "/docs", wantOK: true},
		{property: "visible", want: true, wantOK: true},
		{property: "order", want: 3, wantOK: true},
		{property: "section", want: "docs", wantOK: true},
		{property: "missing", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.property, func(t *testing.T) {
			got, ok := p.Get(tt.property)
			if ok != tt.wantOK {
				t.Fatalf("Get(%q) ok = %v, want %v", tt.property, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("Get(%q) = %v, want %v", tt.property, got, tt.want)
			}
		})
	}

	if _, ok := NewPage("x", "").Get("order"); ok {
		t.Error("Get(order) on an order-less page should report not set")
	}
}

func TestSetParentDetaches(t *testing.T) {
	c1 := NewContainer()
	c2 := NewContainer()
	p := NewPage("Home", "/")

	c1.AddPage(p)
	c2.AddPage(p)

	if c1.HasPage(p, false) {
		t.Error("first container should have released the page")
	}
	if !c2.HasPage(p, false) {
		t.Error("second container should own the page")
	}
	if p.Parent() != c2 {
		t.Error("parent pointer should reference the second container")
	}
}

func TestNewPageFromMap(t *testing.T) {
	tests := []struct {
		name    string
		spec    map[string]any
		wantErr bool
		check   func(t *testing.T, p *StaticPage)
	}{
		{
			name: "Full",
			spec: map[string]any{
				"label":   "Docs",
				"uri":     "/docs",
				"visible": false,
				"order":   7,
				"section": "docs",
				"pages": []any{
					map[string]any{"label": "Install", "uri": "/docs/install"},
				},
			},
			check: func(t *testing.T, p *StaticPage) {
				if p.Label() != "Docs" || p.URI() != "/docs" {
					t.Errorf("label/uri = %q/%q", p.Label(), p.URI())
				}
				if p.Visible() {
					t.Error("visible should be false")
				}
				if order, ok := p.Order(); !ok || order != 7 {
					t.Errorf("order = %d/%v, want 7", order, ok)
				}
				if v, ok := p.Get("section"); !ok || v != "docs" {
					t.Errorf("section = %v/%v", v, ok)
				}
				if p.Children().Count() != 1 {
					t.Errorf("children = %d, want 1", p.Children().Count())
				}
			},
		},
		{
			name: "FloatOrderFromJSON",
			spec: map[string]any{"label": "Home", "order": float64(2)},
			check: func(t *testing.T, p *StaticPage) {
				if order, ok := p.Order(); !ok || order != 2 {
					t.Errorf("order = %d/%v, want 2", order, ok)
				}
			},
		},
		{name: "MissingLabel", spec: map[string]any{"uri": "/"}, wantErr: true},
		{name: "EmptyLabel", spec: map[string]any{"label": ""}, wantErr: true},
		{name: "BadURIType", spec: map[string]any{"label": "x", "uri": 7}, wantErr: true},
		{name: "BadVisibleType", spec: map[string]any{"label": "x", "visible": "yes"}, wantErr: true},
		{name: "FractionalOrder", spec: map[string]any{"label": "x", "order": 1.5}, wantErr: true},
		{name: "BadPagesType", spec: map[string]any{"label": "x", "pages": "nope"}, wantErr: true},
		{
			name:    "BadNestedPage",
			spec:    map[string]any{"label": "x", "pages": []any{map[string]any{"uri": "/"}}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPageFromMap(tt.spec)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidSpec) {
					t.Fatalf("NewPageFromMap error = %v, want ErrInvalidSpec", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewPageFromMap: %v", err)
			}
			if tt.check != nil {
				tt.check(t, p)
			}
		})
	}
}

func TestExport(t *testing.T) {
	p := NewPage("Docs", "/docs")
	p.SetOrder(2)
	p.Set("section", "docs")
	p.Children().AddPage(NewPage("Install", "/docs/install"))

	out := p.Export()
	if out["label"] != "Docs" || out["uri"] != "/docs" || out["visible"] != true {
		t.Errorf("export basics = %v", out)
	}
	if out["order"] != 2 {
		t.Errorf("export order = %v, want 2", out["order"])
	}
	props, ok := out["props"].(map[string]any)
	if !ok || props["section"] != "docs" {
		t.Errorf("export props = %v", out["props"])
	}
	children, ok := out["pages"].([]map[string]any)
	if !ok || len(children) != 1 || children[0]["label"] != "Install" {
		t.Errorf("export pages = %v", out["pages"])
	}

	leaf := NewPage("Leaf", "").Export()
	if _, ok := leaf["pages"]; ok {
		t.Error("leaf export should omit pages")
	}
	if _, ok := leaf["order"]; ok {
		t.Error("export should omit unset order")
	}
}

func TestClearOrder(t *testing.T) {
	c := NewContainer()
	a := NewPage("a", "")
	b := NewPage("b", "")
	b.SetOrder(-5)
	c.AddPage(a)
	c.AddPage(b)

	if got := labels(c); !equalStrings(got, []string{"b", "a"}) {
		t.Fatalf("order = %v, want [b a]", got)
	}

	b.ClearOrder()
	if got := labels(c); !equalStrings(got, []string{"a", "b"}) {
		t.Errorf("order after ClearOrder = %v, want [a b]", got)
	}
}
