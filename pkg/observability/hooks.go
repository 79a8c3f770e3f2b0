// Package observability provides hooks for instrumenting page-tree
// operations.
//
// The package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register hooks
// at startup to receive events about container mutations and index rebuilds;
// libraries emit events through the registered hooks.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces per event category
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This keeps the core library free of observability frameworks while still
// allowing metrics backends (Prometheus, OpenTelemetry, plain counters) to
// observe how often trees mutate and how expensive rebuilds are.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetTreeHooks(&myTreeHooks{})
//	    // ... run application
//	}
//
// The container emits events on mutation and rebuild:
//
//	observability.Tree().OnPageAdded(id)
//	observability.Tree().OnIndexRebuild(pages, elapsed)
package observability

import (
	"sync"
	"time"
)

// TreeHooks receives events from page-tree containers.
type TreeHooks interface {
	// OnPageAdded records a page entering a container.
	OnPageAdded(id string)

	// OnPageRemoved records a page leaving a container.
	OnPageRemoved(id string)

	// OnIndexRebuild records a lazy resort of a container's traversal index,
	// with the number of pages sorted and the time it took.
	OnIndexRebuild(pages int, elapsed time.Duration)
}

// NoopTreeHooks is a no-op implementation of TreeHooks.
type NoopTreeHooks struct{}

func (NoopTreeHooks) OnPageAdded(string)                {}
func (NoopTreeHooks) OnPageRemoved(string)              {}
func (NoopTreeHooks) OnIndexRebuild(int, time.Duration) {}

var (
	treeHooks TreeHooks = NoopTreeHooks{}
	hooksMu   sync.RWMutex
)

// SetTreeHooks registers custom tree hooks.
// This should be called once at application startup before any container
// operations. A nil argument is ignored.
func SetTreeHooks(h TreeHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		treeHooks = h
	}
}

// Tree returns the registered tree hooks.
func Tree() TreeHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return treeHooks
}

// Reset restores the no-op default hooks.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	treeHooks = NoopTreeHooks{}
}
