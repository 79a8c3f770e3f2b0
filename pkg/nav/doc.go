// Package nav provides an ordered, hierarchical container of navigation
// pages with lazy index rebuilding and recursive depth-first search.
//
// # Overview
//
// A [Container] owns pages keyed by identity token and keeps a derived
// traversal index sorted by each page's order value. Pages with an explicit
// order sort by it; pages without one are sequenced by insertion order among
// themselves. Every page carries its own child [Container], so containers
// nest to arbitrary depth and form a navigation tree.
//
// The index is rebuilt lazily. Mutations (add, remove, order changes) only
// mark the container dirty; the next order-sensitive access resorts once.
// Batching a thousand adds costs a single sort.
//
// # Basic Usage
//
// Create a container with [NewContainer], pages with [NewPage], and wire the
// tree through [Container.AddPage]:
//
//	root := nav.NewContainer()
//	home := nav.NewPage("Home", "/")
//	docs := nav.NewPage("Docs", "/docs")
//	docs.SetOrder(10)
//	_ = root.AddPage(home)
//	_ = root.AddPage(docs)
//	_ = docs.Children().AddPage(nav.NewPage("Install", "/docs/install"))
//
// Iterate in traversal order with [Container.All], or search the full
// subtree with [Container.FindOneBy] and [Container.FindAllBy].
//
// # Ownership
//
// A page belongs to exactly one container. [Container.AddPage] reassigns the
// page's parent pointer, and the page's own [Page.SetParent] detaches it
// from the previous owner. Moving every page between containers in bulk is
// [Container.AddPagesFrom], which snapshots the source first - walking a
// container's live storage while its pages are being reparented away is the
// one documented iterator-invalidation hazard.
//
// # Loose Input
//
// Untyped records (decoded JSON, script values) convert to pages through the
// explicit [NewPageFromMap] factory rather than runtime type probing. The
// pkg/config package builds whole trees from TOML, YAML, or JSON files on
// top of it.
//
// # Concurrency
//
// Containers are not safe for concurrent use. All operations run
// synchronously to completion; callers sharing a tree across goroutines must
// serialize access themselves.
package nav
