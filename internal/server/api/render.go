package api

import (
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/dmitrijs2005/llmpid-console/internal/common"
)

const maxBody = 1 << 20

// genericResponse is the {status, message} body used for outcomes and
// errors alike.
type genericResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	render.Status(r, status)
	render.JSON(w, r, v)
}

// writeStatus writes {"status": <status text>}.
func writeStatus(w http.ResponseWriter, r *http.Request, status int) {
	writeJSON(w, r, status, genericResponse{Status: http.StatusText(status)})
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	writeJSON(w, r, status, genericResponse{Status: http.StatusText(status), Message: message})
}

// decode reads a JSON body into v and lets v normalize and validate itself.
// Failures wrap common.ErrValidation.
func decode(r *http.Request, v render.Binder) error {
	if err := render.DecodeJSON(io.LimitReader(r.Body, maxBody), v); err != nil {
		return fmt.Errorf("%w: invalid json", common.ErrValidation)
	}
	if err := v.Bind(r); err != nil {
		return fmt.Errorf("%w: %w", common.ErrValidation, err)
	}
	return nil
}

// pathParam returns the decoded value of a route parameter. chi matches on
// RawPath when the request has one, and the parameter is then still escaped.
func pathParam(r *http.Request, key string) (string, error) {
	v := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return v, nil
	}
	return url.PathUnescape(v)
}
