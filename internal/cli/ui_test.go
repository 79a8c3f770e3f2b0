package cli

import (
	"strings"
	"testing"

	"github.com/matzehuels/navtree/pkg/nav"
)

func TestRenderTree(t *testing.T) {
	root := nav.NewContainer()
	docs := nav.NewPage("Docs", "/docs")
	docs.SetOrder(2)
	home := nav.NewPage("Home", "/")
	home.SetOrder(1)
	hidden := nav.NewPage("Secret", "/secret")
	hidden.SetVisible(false)

	if err := root.AddPage(docs); err != nil {
		t.Fatal(err)
	}
	if err := root.AddPage(home); err != nil {
		t.Fatal(err)
	}
	if err := docs.Children().AddPage(hidden); err != nil {
		t.Fatal(err)
	}

	out := renderTree(root)

	for _, want := range []string{"Home", "Docs", "/docs", "Secret (hidden)"} {
		if !strings.Contains(out, want) {
			t.Errorf("renderTree output should contain %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "Home") > strings.Index(out, "Docs") {
		t.Errorf("Home (order 1) should render before Docs (order 2):\n%s", out)
	}
	if lines := strings.Count(out, "\n"); lines != 3 {
		t.Errorf("renderTree produced %d lines, want 3:\n%s", lines, out)
	}
}

func TestRenderTreeEmpty(t *testing.T) {
	if out := renderTree(nav.NewContainer()); out != "" {
		t.Errorf("renderTree of an empty container = %q, want empty", out)
	}
}

func TestRenderMatch(t *testing.T) {
	p := nav.NewPage("Home", "/")
	out := renderMatch(p)
	if !strings.Contains(out, "Home") || !strings.Contains(out, "/") {
		t.Errorf("renderMatch = %q, should contain label and URI", out)
	}

	bare := nav.NewPage("Bare", "")
	if out := renderMatch(bare); strings.Contains(out, "  ") {
		t.Errorf("renderMatch without URI = %q, should not append separator", out)
	}
}
