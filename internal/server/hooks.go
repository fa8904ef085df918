package server

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/plinyoo/starfield/pkg/observability"
)

// LogHooks reports pipeline, cache and lead events to a logger at debug
// level, failures at warn.
type LogHooks struct {
	Logger *log.Logger
}

// RegisterLogHooks installs LogHooks for every hook family.
func RegisterLogHooks(logger *log.Logger) {
	h := LogHooks{Logger: logger.WithPrefix("hooks")}
	observability.Register(observability.Hooks{Pipeline: h, Cache: h, Lead: h})
}

func (h LogHooks) OnLayoutStart(_ context.Context, stars int) {
	h.Logger.Debug("layout start", "stars", stars)
}

func (h LogHooks) OnLayoutComplete(_ context.Context, stars, elements int, d time.Duration, err error) {
	if err != nil {
		h.Logger.Warn("layout failed", "stars", stars, "duration", d, "error", err)
		return
	}
	h.Logger.Debug("layout complete", "stars", stars, "elements", elements, "duration", d)
}

func (h LogHooks) OnRenderStart(_ context.Context, vizType string, formats []string) {
	h.Logger.Debug("render start", "type", vizType, "formats", formats)
}

func (h LogHooks) OnRenderComplete(_ context.Context, vizType string, formats []string, d time.Duration, err error) {
	if err != nil {
		h.Logger.Warn("render failed", "type", vizType, "formats", formats, "duration", d, "error", err)
		return
	}
	h.Logger.Debug("render complete", "type", vizType, "formats", formats, "duration", d)
}

func (h LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.Logger.Debug("cache hit", "key_type", keyType)
}

func (h LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.Logger.Debug("cache miss", "key_type", keyType)
}

func (h LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.Logger.Debug("cache set", "key_type", keyType, "bytes", size)
}

func (h LogHooks) OnLeadSubmitted(_ context.Context, formType string, d time.Duration, err error) {
	if err != nil {
		h.Logger.Warn("lead rejected", "form", formType, "duration", d, "error", err)
		return
	}
	h.Logger.Info("lead submitted", "form", formType, "duration", d)
}

var (
	_ observability.PipelineHooks = LogHooks{}
	_ observability.CacheHooks    = LogHooks{}
	_ observability.LeadHooks     = LogHooks{}
)
