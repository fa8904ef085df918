package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/plinyoo/starfield/pkg/buildinfo"
	"github.com/plinyoo/starfield/pkg/errors"
	"github.com/plinyoo/starfield/pkg/galaxy"
	"github.com/plinyoo/starfield/pkg/leads"
	"github.com/plinyoo/starfield/pkg/pipeline"
)

// maxLeadBody bounds a lead submission body.
const maxLeadBody = 64 << 10

var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatPDF:  "application/pdf",
	pipeline.FormatJSON: "application/json",
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Status string `json:"status"`
		buildinfo.Info
	}{"ok", buildinfo.Get()})
}

func (s *Server) handleStructure(w http.ResponseWriter, r *http.Request) {
	n, err := s.starCount(r.URL.Query())
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	st := galaxy.CalculateStructure(n)
	writeJSON(w, http.StatusOK, struct {
		Total int `json:"total"`
		galaxy.Structure
		Elements int `json:"elements"`
	}{n, st, st.Elements()})
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	opts, err := s.layoutOptions(r.URL.Query())
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	l, hit, err := s.runner.LayoutWithCacheInfo(r.Context(), opts)
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	data, err := galaxy.MarshalLayout(l)
	if err != nil {
		writeError(w, r, s.logger, errors.Wrap(errors.ErrCodeInternal, err, "encode layout"))
		return
	}
	setCacheHeaders(w, hit)
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	format := strings.ToLower(chi.URLParam(r, "format"))
	if err := pipeline.ValidateFormat(format); err != nil {
		writeError(w, r, s.logger, err)
		return
	}

	q := r.URL.Query()
	opts, err := s.layoutOptions(q)
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	opts.Formats = []string{format}
	opts.VizType = q.Get("type")
	opts.Style = q.Get("style")
	if opts.Style == "" {
		opts.Style = s.cfg.Render.Style
	}
	opts.Title = q.Get("title")
	opts.Background = q.Get("background")
	if opts.Orbits, err = parseBool(q, "orbits"); err != nil {
		writeError(w, r, s.logger, err)
		return
	}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	setCacheHeaders(w, result.CacheInfo.LayoutHit && result.CacheInfo.RenderHit)
	w.Header().Set("Content-Type", contentTypes[format])
	_, _ = w.Write(result.Artifacts[format])
}

func (s *Server) handleSubmitLead(w http.ResponseWriter, r *http.Request) {
	var sub leads.Submission
	dec := json.NewDecoder(io.LimitReader(r.Body, maxLeadBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&sub); err != nil {
		writeError(w, r, s.logger, errors.Wrap(errors.ErrCodeInvalidLead, err, "malformed submission"))
		return
	}

	lead, err := s.leads.Submit(r.Context(), sub)
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": lead.ID.String()})
}

// starCount reads the required stars parameter and applies the configured
// ceiling.
func (s *Server) starCount(q url.Values) (int, error) {
	raw := q.Get("stars")
	if raw == "" {
		return 0, errors.New(errors.ErrCodeInvalidStarCount, "stars is required")
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidStarCount, "stars must be an integer, got %q", raw)
	}
	limit := s.cfg.Render.MaxStars
	if limit <= 0 || limit > pipeline.MaxStars {
		limit = pipeline.MaxStars
	}
	if err := errors.ValidateStarCount(n, limit); err != nil {
		return 0, err
	}
	return n, nil
}

func (s *Server) layoutOptions(q url.Values) (pipeline.Options, error) {
	n, err := s.starCount(q)
	if err != nil {
		return pipeline.Options{}, err
	}
	opts := pipeline.Options{
		Stars:  n,
		Width:  s.cfg.Render.Width,
		Height: s.cfg.Render.Height,
	}
	for _, f := range []struct {
		name string
		dst  *float64
	}{
		{"width", &opts.Width},
		{"height", &opts.Height},
		{"padding", &opts.Padding},
	} {
		if err := parseFloat(q, f.name, f.dst); err != nil {
			return pipeline.Options{}, err
		}
	}
	if q.Has("top_margin") {
		var tm float64
		if err := parseFloat(q, "top_margin", &tm); err != nil {
			return pipeline.Options{}, err
		}
		opts.TopMargin = &tm
	}
	return opts, nil
}

func parseFloat(q url.Values, name string, dst *float64) error {
	raw := q.Get(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return errors.New(errors.ErrCodeInvalidDimensions, "%s must be a number, got %q", name, raw)
	}
	*dst = v
	return nil
}

func parseBool(q url.Values, name string) (bool, error) {
	raw := q.Get(name)
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, errors.New(errors.ErrCodeInvalidInput, "%s must be a boolean, got %q", name, raw)
	}
	return v, nil
}

func setCacheHeaders(w http.ResponseWriter, hit bool) {
	if hit {
		w.Header().Set("X-Cache", "HIT")
	} else {
		w.Header().Set("X-Cache", "MISS")
	}
	w.Header().Set("Cache-Control", "public, max-age=3600")
}
