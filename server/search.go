package server

import (
	"net/http"
	"unicode/utf8"

	"github.com/Sofiane224434/cinetech/pkg/logger"
	"github.com/Sofiane224434/cinetech/pkg/search"
)

// SelectResponse is returned when a suggestion is picked.
type SelectResponse struct {
	Route   string   `json:"route"`
	History []string `json:"history"`
}

// Suggestions runs a one-shot suggestion query for the given query and
// filter. Queries shorter than two characters return an empty list without
// hitting the remote catalog.
func (s Server) Suggestions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		qps := r.URL.Query()
		query := qps.Get("query")

		filter := search.Filter(qps.Get("filter"))
		if filter == "" {
			filter = search.FilterAll
		}

		if utf8.RuneCountInString(query) < search.DefaultMinQueryLength {
			writeResponse(w, http.StatusOK, GenericResponse{Response: []search.Suggestion{}})
			return
		}

		suggestions, err := s.search.Suggest(r.Context(), query, filter)
		if err != nil {
			// suggestions are a non-essential enhancement; an empty list is
			// served instead of an error
			log.Debugw("suggestion query failed", "query", query, "filter", filter, "error", err)
			writeResponse(w, http.StatusOK, GenericResponse{Response: []search.Suggestion{}})
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: suggestions})
	}
}

// SelectSuggestion records the picked suggestion and returns the detail route
func (s Server) SelectSuggestion() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		var suggestion search.Suggestion
		if err := decodeBody(r, &suggestion); err != nil {
			log.Debugw("invalid request body", "error", err)
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		if suggestion.Title == "" {
			http.Error(w, "missing title", http.StatusBadRequest)
			return
		}

		route, err := s.search.Select(r.Context(), suggestion)
		if err != nil {
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		history, err := s.search.History(r.Context())
		if err != nil {
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: SelectResponse{
			Route:   route,
			History: history,
		}})
	}
}

// SearchHistory serves the recent selected search terms
func (s Server) SearchHistory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		terms, err := s.search.History(r.Context())
		if err != nil {
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: terms})
	}
}

// ClearSearchHistory empties the recent search terms
func (s Server) ClearSearchHistory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.search.ClearHistory(r.Context()); err != nil {
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{})
	}
}
