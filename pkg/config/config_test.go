package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/navtree/pkg/nav"
)

const treeTOML = `
[[pages]]
label = "Docs"
uri = "/docs"
order = 2

  [[pages.pages]]
  label = "Install"
  uri = "/docs/install"

[[pages]]
label = "Home"
uri = "/"
order = 1
visible = false

  [pages.props]
  section = "root"
`

const treeYAML = `
pages:
  - label: Docs
    uri: /docs
    order: 2
    pages:
      - label: Install
        uri: /docs/install
  - label: Home
    uri: /
    order: 1
    visible: false
    props:
      section: root
`

const treeJSON = `{
  "pages": [
    {
      "label": "Docs",
      "uri": "/docs",
      "order": 2,
      "pages": [{"label": "Install", "uri": "/docs/install"}]
    },
    {
      "label": "Home",
      "uri": "/",
      "order": 1,
      "visible": false,
      "props": {"section": "root"}
    }
  ]
}`

// checkSiteTree verifies the tree shared by the TOML, YAML, and JSON fixtures.
func checkSiteTree(t *testing.T, c *nav.Container) {
	t.Helper()

	pages := c.Pages()
	if len(pages) != 2 {
		t.Fatalf("top-level pages = %d, want 2", len(pages))
	}
	if pages[0].Label() != "Home" || pages[1].Label() != "Docs" {
		t.Errorf("traversal order = [%s %s], want [Home Docs]", pages[0].Label(), pages[1].Label())
	}
	if pages[0].Visible() {
		t.Error("Home should be invisible")
	}
	if v, ok := pages[0].Get("section"); !ok || v != "root" {
		t.Errorf("Home section = %v/%v, want root", v, ok)
	}

	install := c.FindOneBy("label", "Install")
	if install == nil {
		t.Fatal("Install should be reachable through the Docs subtree")
	}
	if install.URI() != "/docs/install" {
		t.Errorf("Install URI = %q", install.URI())
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		format string
		data   string
	}{
		{format: "toml", data: treeTOML},
		{format: "yaml", data: treeYAML},
		{format: "yml", data: treeYAML},
		{format: "json", data: treeJSON},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			c, err := Parse([]byte(tt.data), tt.format)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			checkSiteTree(t, c)
		})
	}
}

func TestParseUnsupportedFormat(t *testing.T) {
	if _, err := Parse([]byte("pages: []"), "ini"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Parse(ini) = %v, want ErrUnsupportedFormat", err)
	}
}

func TestParseInvalidData(t *testing.T) {
	if _, err := Parse([]byte("{not json"), "json"); err == nil {
		t.Error("Parse of malformed JSON should fail")
	}
	if _, err := Parse([]byte("= broken"), "toml"); err == nil {
		t.Error("Parse of malformed TOML should fail")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site.toml")
	if err := os.WriteFile(path, []byte(treeTOML), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	checkSiteTree(t, c)
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("Load of a missing file should fail")
	}
}

func TestBuildMissingLabel(t *testing.T) {
	_, err := Build([]PageSpec{{URI: "/"}})
	if !errors.Is(err, ErrMissingLabel) {
		t.Errorf("Build = %v, want ErrMissingLabel", err)
	}

	// Nested pages report their position.
	_, err = Build([]PageSpec{{Label: "Docs", Pages: []PageSpec{{URI: "/x"}}}})
	if !errors.Is(err, ErrMissingLabel) {
		t.Errorf("nested Build = %v, want ErrMissingLabel", err)
	}
}

func TestBuildEmpty(t *testing.T) {
	c, err := Build(nil)
	if err != nil {
		t.Fatalf("Build(nil): %v", err)
	}
	if c.Count() != 0 {
		t.Errorf("Count() = %d, want 0", c.Count())
	}
}
