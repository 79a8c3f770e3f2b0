package nav_test

import (
	"fmt"

	"github.com/matzehuels/navtree/pkg/nav"
)

func ExampleContainer() {
	// Explicit orders win; pages without one keep insertion order.
	root := nav.NewContainer()

	docs := nav.NewPage("Docs", "/docs")
	docs.SetOrder(2)
	home := nav.NewPage("Home", "/")
	home.SetOrder(1)
	about := nav.NewPage("About", "/about")

	_ = root.AddPage(docs)
	_ = root.AddPage(home)
	_ = root.AddPage(about)

	for _, p := range root.Pages() {
		fmt.Println(p.Label())
	}
	// Output:
	// About
	// Home
	// Docs
}

func ExampleContainer_FindAllBy() {
	root := nav.NewContainer()
	docs := nav.NewPage("Docs", "/docs")
	docs.Set("section", "docs")
	install := nav.NewPage("Install", "/docs/install")
	install.Set("section", "docs")

	_ = root.AddPage(docs)
	_ = docs.Children().AddPage(install)

	for _, p := range root.FindAllBy("section", "docs") {
		fmt.Println(p.Label())
	}
	// Output:
	// Docs
	// Install
}

func ExampleContainer_CallFinder() {
	root := nav.NewContainer()
	_ = root.AddPage(nav.NewPage("Home", "/"))

	pages, _ := root.CallFinder("findByLabel", "Home")
	fmt.Println(pages[0].URI())
	// Output:
	// /
}
