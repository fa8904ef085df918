package observability

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Pipeline hooks
	p := NoopPipelineHooks{}
	p.OnLayoutStart(ctx, 237)
	p.OnLayoutComplete(ctx, 237, 8, time.Second, nil)
	p.OnRenderStart(ctx, "grid", []string{"svg"})
	p.OnRenderComplete(ctx, "grid", []string{"svg"}, time.Second, nil)

	// Cache hooks
	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "layout")
	c.OnCacheMiss(ctx, "layout")
	c.OnCacheSet(ctx, "artifact", 1024)

	// HTTP hooks
	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "GET", "/api/v1/galaxy/layout")
	h.OnResponse(ctx, "GET", "/api/v1/galaxy/layout", 200, time.Second)
	h.OnRateLimited(ctx, "203.0.113.7")

	// Lead hooks
	l := NoopLeadHooks{}
	l.OnLeadSubmitted(ctx, "contact", time.Millisecond, nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should return NoopPipelineHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	// Set custom hooks
	customPipeline := &testPipelineHooks{}
	SetPipelineHooks(customPipeline)
	if Pipeline() != customPipeline {
		t.Error("SetPipelineHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	customLead := &testLeadHooks{}
	SetLeadHooks(customLead)
	if Lead() != customLead {
		t.Error("SetLeadHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Reset() should restore NoopPipelineHooks")
	}
	if _, ok := Lead().(NoopLeadHooks); !ok {
		t.Error("Reset() should restore NoopLeadHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testPipelineHooks{}
	SetPipelineHooks(custom)

	// Setting nil should be ignored
	SetPipelineHooks(nil)

	if Pipeline() != custom {
		t.Error("SetPipelineHooks(nil) should be ignored")
	}

	Reset()
}

func TestRegisterMerges(t *testing.T) {
	t.Cleanup(Reset)
	Reset()

	pipeline := &testPipelineHooks{}
	lead := &testLeadHooks{}
	Register(Hooks{Pipeline: pipeline})
	Register(Hooks{Lead: lead})

	if Pipeline() != pipeline {
		t.Error("second Register dropped the pipeline hooks")
	}
	if Lead() != lead {
		t.Error("Lead() not registered")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("unset family should stay no-op")
	}
}

func TestRegistryConcurrentAccess(t *testing.T) {
	t.Cleanup(Reset)
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				SetCacheHooks(&testCacheHooks{})
			} else {
				Reset()
			}
		}()
		go func() {
			defer wg.Done()
			Cache().OnCacheHit(context.Background(), "layout")
			Pipeline().OnLayoutStart(context.Background(), i)
		}()
	}
	wg.Wait()
}

// Test implementations
type testPipelineHooks struct{ NoopPipelineHooks }
type testCacheHooks struct{ NoopCacheHooks }
type testHTTPHooks struct{ NoopHTTPHooks }
type testLeadHooks struct{ NoopLeadHooks }
