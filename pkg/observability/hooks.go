// Package observability lets an application watch starfield at work without
// the libraries depending on any metrics or tracing backend.
//
// Four hook families cover the interesting events: [PipelineHooks] for
// layout and render stages, [CacheHooks] for hits and writes, [HTTPHooks]
// for API traffic and [LeadHooks] for form submissions. Each has a no-op
// implementation that is active until something else is registered.
//
// Registration happens once, at startup, from the binary:
//
//	observability.Register(observability.Hooks{
//	    Pipeline: myPipelineHooks{},
//	    Cache:    myCacheHooks{},
//	})
//
// Libraries only read:
//
//	observability.Pipeline().OnLayoutStart(ctx, stars)
package observability

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the layout and render pipeline.
type PipelineHooks interface {
	OnLayoutStart(ctx context.Context, stars int)
	OnLayoutComplete(ctx context.Context, stars, elements int, duration time.Duration, err error)
	OnRenderStart(ctx context.Context, vizType string, formats []string)
	OnRenderComplete(ctx context.Context, vizType string, formats []string, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives a call for every lookup and write the runner makes.
type CacheHooks interface {
	// keyType is "layout" or "artifact".
	OnCacheHit(ctx context.Context, keyType string)
	OnCacheMiss(ctx context.Context, keyType string)
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from the API server.
type HTTPHooks interface {
	// OnRequest records an incoming request. Route is the matched pattern.
	OnRequest(ctx context.Context, method, route string)

	// OnResponse records a finished request.
	OnResponse(ctx context.Context, method, route string, statusCode int, duration time.Duration)

	// OnRateLimited records a request rejected by the limiter.
	OnRateLimited(ctx context.Context, clientIP string)
}

// =============================================================================
// Lead Hooks
// =============================================================================

// LeadHooks receives events from lead capture.
type LeadHooks interface {
	// OnLeadSubmitted records a submission attempt and its outcome.
	OnLeadSubmitted(ctx context.Context, formType string, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPipelineHooks ignores every event.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnLayoutStart(context.Context, int)                                       {}
func (NoopPipelineHooks) OnLayoutComplete(context.Context, int, int, time.Duration, error)         {}
func (NoopPipelineHooks) OnRenderStart(context.Context, string, []string)                          {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, string, []string, time.Duration, error) {}

type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnRateLimited(context.Context, string)                          {}

type NoopLeadHooks struct{}

func (NoopLeadHooks) OnLeadSubmitted(context.Context, string, time.Duration, error) {}

// =============================================================================
// Registry
// =============================================================================

// Hooks is one set of registered implementations. Nil fields leave the
// current registration in place.
type Hooks struct {
	Pipeline PipelineHooks
	Cache    CacheHooks
	HTTP     HTTPHooks
	Lead     LeadHooks
}

func noopHooks() *Hooks {
	return &Hooks{
		Pipeline: NoopPipelineHooks{},
		Cache:    NoopCacheHooks{},
		HTTP:     NoopHTTPHooks{},
		Lead:     NoopLeadHooks{},
	}
}

// current is replaced wholesale on every registration, so readers never
// take a lock.
var (
	current    atomic.Pointer[Hooks]
	registerMu sync.Mutex
)

func init() { current.Store(noopHooks()) }

// Register merges the non-nil fields of h into the active set.
func Register(h Hooks) {
	registerMu.Lock()
	defer registerMu.Unlock()

	next := *current.Load()
	if h.Pipeline != nil {
		next.Pipeline = h.Pipeline
	}
	if h.Cache != nil {
		next.Cache = h.Cache
	}
	if h.HTTP != nil {
		next.HTTP = h.HTTP
	}
	if h.Lead != nil {
		next.Lead = h.Lead
	}
	current.Store(&next)
}

func SetPipelineHooks(h PipelineHooks) { Register(Hooks{Pipeline: h}) }
func SetCacheHooks(h CacheHooks)       { Register(Hooks{Cache: h}) }
func SetHTTPHooks(h HTTPHooks)         { Register(Hooks{HTTP: h}) }
func SetLeadHooks(h LeadHooks)         { Register(Hooks{Lead: h}) }

func Pipeline() PipelineHooks { return current.Load().Pipeline }
func Cache() CacheHooks       { return current.Load().Cache }
func HTTP() HTTPHooks         { return current.Load().HTTP }
func Lead() LeadHooks         { return current.Load().Lead }

// Reset restores the no-op hooks. Tests call it in cleanup.
func Reset() {
	registerMu.Lock()
	defer registerMu.Unlock()
	current.Store(noopHooks())
}
