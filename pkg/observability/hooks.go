// Package observability provides hooks for metrics and tracing of solves.
//
// The search packages stay free of instrumentation. The solver runner calls
// the registered hooks around each solve, and consumers register an
// implementation at startup:
//
//	func main() {
//	    hooks := observability.NewPromHooks()
//	    observability.SetSearchHooks(hooks)
//	    // ... run solves ...
//	    hooks.WriteTextfile("/var/lib/node_exporter/permsolve.prom")
//	}
//
// Libraries emit events through the registry:
//
//	observability.Search().OnSolveStart(ctx, puzzle, metric, maxDepth)
//	// ... search ...
//	observability.Search().OnSolveComplete(ctx, puzzle, found, length, duration)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Search Hooks
// =============================================================================

// SearchHooks receives events from the solver runner.
type SearchHooks interface {
	// OnSolveStart records the start of a solve.
	OnSolveStart(ctx context.Context, puzzle, metric string, maxDepth int)

	// OnDepthComplete records one exact-depth search.
	OnDepthComplete(ctx context.Context, puzzle string, depth int, found bool, duration time.Duration)

	// OnSolveComplete records the end of a solve. length is -1 when no
	// solution was found.
	OnSolveComplete(ctx context.Context, puzzle string, found bool, length int, duration time.Duration)
}

// =============================================================================
// No-op Implementation
// =============================================================================

// NoopSearchHooks is a no-op implementation of SearchHooks.
type NoopSearchHooks struct{}

func (NoopSearchHooks) OnSolveStart(context.Context, string, string, int) {}
func (NoopSearchHooks) OnDepthComplete(context.Context, string, int, bool, time.Duration) {
}
func (NoopSearchHooks) OnSolveComplete(context.Context, string, bool, int, time.Duration) {
}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	searchHooks SearchHooks = NoopSearchHooks{}
	hooksMu     sync.RWMutex
)

// SetSearchHooks registers custom search hooks. A nil value is ignored.
// This should be called once at application startup.
func SetSearchHooks(h SearchHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		searchHooks = h
	}
}

// Search returns the registered search hooks.
func Search() SearchHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return searchHooks
}

// Reset restores the no-op default.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	searchHooks = NoopSearchHooks{}
}

// =============================================================================
// Fan-out
// =============================================================================

// Multi returns hooks that forward every event to each of hooks in order.
// Nil entries are skipped.
func Multi(hooks ...SearchHooks) SearchHooks {
	var m multiHooks
	for _, h := range hooks {
		if h != nil {
			m = append(m, h)
		}
	}
	return m
}

type multiHooks []SearchHooks

func (m multiHooks) OnSolveStart(ctx context.Context, puzzle, metric string, maxDepth int) {
	for _, h := range m {
		h.OnSolveStart(ctx, puzzle, metric, maxDepth)
	}
}

func (m multiHooks) OnDepthComplete(ctx context.Context, puzzle string, depth int, found bool, duration time.Duration) {
	for _, h := range m {
		h.OnDepthComplete(ctx, puzzle, depth, found, duration)
	}
}

func (m multiHooks) OnSolveComplete(ctx context.Context, puzzle string, found bool, length int, duration time.Duration) {
	for _, h := range m {
		h.OnSolveComplete(ctx, puzzle, found, length, duration)
	}
}
