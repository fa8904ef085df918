package server

import (
	"encoding/json"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/plinyoo/starfield/pkg/errors"
)

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

// writeError is the single place request errors are logged. Internal
// errors are reported without their cause.
func writeError(w http.ResponseWriter, r *http.Request, logger *log.Logger, err error) {
	status := errors.HTTPStatus(err)
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	msg := errors.UserMessage(err)
	if status >= http.StatusInternalServerError && code == errors.ErrCodeInternal {
		msg = "internal server error"
	}

	kv := []any{"method", r.Method, "path", r.URL.Path, "status", status, "code", code,
		"request_id", middleware.GetReqID(r.Context()), "error", err}
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", kv...)
	} else {
		logger.Debug("request rejected", kv...)
	}

	writeJSON(w, status, errorBody{Error: errorDetail{Code: code, Message: msg}})
}

func notFound(path string) error {
	return errors.New(errors.ErrCodeNotFound, "no route for %s", path)
}
