// Package observability provides hooks for metrics and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register
// hooks at startup to receive events about engine runs and cache
// operations; all defaults are no-ops.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetEngineHooks(&myEngineHooks{})
//	    // ... run application
//	}
//
// Callers emit events around engine invocations:
//
//	observability.Engine().OnSearchStart(ctx, spec)
//	// ... run search ...
//	observability.Engine().OnSearchComplete(ctx, spec, nodes, edges, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// EngineHooks receives events from the tiling engine.
type EngineHooks interface {
	// Search events (graph construction).
	OnSearchStart(ctx context.Context, spec string)
	OnSearchComplete(ctx context.Context, spec string, nodes, edges int, duration time.Duration, err error)

	// Count events.
	OnCountStart(ctx context.Context, spec string)
	OnCountComplete(ctx context.Context, spec string, digits int, duration time.Duration, err error)

	// Render events.
	OnRenderStart(ctx context.Context, tilings int)
	OnRenderComplete(ctx context.Context, tilings int, duration time.Duration, err error)
}

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// NoopEngineHooks is a no-op implementation of EngineHooks.
type NoopEngineHooks struct{}

func (NoopEngineHooks) OnSearchStart(context.Context, string) {}
func (NoopEngineHooks) OnSearchComplete(context.Context, string, int, int, time.Duration, error) {
}
func (NoopEngineHooks) OnCountStart(context.Context, string)                             {}
func (NoopEngineHooks) OnCountComplete(context.Context, string, int, time.Duration, error) {}
func (NoopEngineHooks) OnRenderStart(context.Context, int)                               {}
func (NoopEngineHooks) OnRenderComplete(context.Context, int, time.Duration, error)      {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

var (
	engineHooks EngineHooks = NoopEngineHooks{}
	cacheHooks  CacheHooks  = NoopCacheHooks{}
	hooksMu     sync.RWMutex
)

// SetEngineHooks registers custom engine hooks.
// This should be called once at application startup.
func SetEngineHooks(h EngineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		engineHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Reset restores the no-op defaults. Intended for tests.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	engineHooks = NoopEngineHooks{}
	cacheHooks = NoopCacheHooks{}
}

// Engine returns the registered engine hooks.
func Engine() EngineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return engineHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}
