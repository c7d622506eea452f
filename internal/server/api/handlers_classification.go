package api

import (
	"errors"
	"html"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/llmpid-console/internal/common"
	"github.com/dmitrijs2005/llmpid-console/internal/server/models"
	"github.com/dmitrijs2005/llmpid-console/internal/server/repositories/classifications"
	"github.com/dmitrijs2005/llmpid-console/internal/server/services"
	"github.com/go-chi/chi/v5"
)

const maxLogLimit = 100

func (s *HTTPServer) classify(w http.ResponseWriter, r *http.Request) {
	var req classifyRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	claims := claimsFrom(r.Context())
	source := services.AdminSource
	if claims.Role() == models.RoleExternalSystem {
		source = claims.Username()
	}

	rec, err := s.classifications.Classify(r.Context(), req.Text, source)
	if err != nil {
		s.logger.Error(r.Context(), "classify", "error", err)
		writeError(w, r, http.StatusInternalServerError, "Failed to classify data.")
		return
	}
	writeJSON(w, r, http.StatusOK, classifyResponse{Result: rec.Result, Text: rec.Text})
}

func (s *HTTPServer) listClassifications(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, err := intParam(q.Get("page"), 1)
	if err != nil || page < 1 {
		writeError(w, r, http.StatusBadRequest, "invalid page")
		return
	}
	limit, err := intParam(q.Get("limit"), services.DefaultLogLimit)
	if err != nil || limit < 1 || limit > maxLogLimit {
		writeError(w, r, http.StatusBadRequest, "invalid limit")
		return
	}

	list, err := s.classifications.List(r.Context(), classifications.ListParams{
		Page:  page,
		Limit: limit,
		Sort:  models.ParseClassificationSort(q.Get("sortBy")),
	})
	if err != nil {
		s.logger.Error(r.Context(), "list classifications", "error", err)
		writeError(w, r, http.StatusInternalServerError, "Failed to fetch classifications")
		return
	}

	for i := range list {
		list[i].Text = html.EscapeString(list[i].Text)
	}
	writeJSON(w, r, http.StatusOK, list)
}

func (s *HTTPServer) getClassification(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid id")
		return
	}

	rec, err := s.classifications.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			writeStatus(w, r, http.StatusNotFound)
			return
		}
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	rec.Text = html.EscapeString(rec.Text)
	writeJSON(w, r, http.StatusOK, rec)
}

func intParam(v string, def int) (int, error) {
	if v == "" {
		return def, nil
	}
	return strconv.Atoi(v)
}
