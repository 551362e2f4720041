package server

import (
	"context"
	"net/http"
	"strconv"

	"github.com/Sofiane224434/cinetech/pkg/logger"
	"github.com/Sofiane224434/cinetech/pkg/tmdb"
	"github.com/gorilla/mux"
)

// pageParam reads the page query parameter, defaulting to the first page.
func pageParam(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func idParam(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// listHandler serves one paged catalog listing
func listHandler[T any](fetch func(ctx context.Context, page int) (*tmdb.Page[T], error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		page, err := fetch(r.Context(), pageParam(r))
		if err != nil {
			log.Errorw("failed to fetch catalog page", "error", err)
			writeErrorResponse(w, http.StatusBadGateway, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: page})
	}
}

// PopularMovies lists popular movies from the catalog
func (s Server) PopularMovies() http.HandlerFunc {
	return listHandler(s.manager.PopularMovies)
}

// TrendingMovies lists this week's trending movies
func (s Server) TrendingMovies() http.HandlerFunc {
	return listHandler(s.manager.TrendingMovies)
}

// PopularSeries lists popular series from the catalog
func (s Server) PopularSeries() http.HandlerFunc {
	return listHandler(s.manager.PopularSeries)
}

// TrendingSeries lists this week's trending series
func (s Server) TrendingSeries() http.HandlerFunc {
	return listHandler(s.manager.TrendingSeries)
}

// DiscoverAnime lists popular japanese animated series
func (s Server) DiscoverAnime() http.HandlerFunc {
	return listHandler(s.manager.DiscoverAnime)
}

// MovieDetails serves one movie with credits, similar titles and reviews
func (s Server) MovieDetails() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r, "id")
		if !ok {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		details, err := s.manager.MovieDetails(r.Context(), id)
		if err != nil {
			logger.FromCtx(r.Context()).Errorw("failed to fetch movie details", "id", id, "error", err)
			writeErrorResponse(w, http.StatusBadGateway, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: details})
	}
}

// SeriesDetails serves one series with credits, similar titles and reviews
func (s Server) SeriesDetails() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r, "id")
		if !ok {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		details, err := s.manager.SeriesDetails(r.Context(), id)
		if err != nil {
			logger.FromCtx(r.Context()).Errorw("failed to fetch series details", "id", id, "error", err)
			writeErrorResponse(w, http.StatusBadGateway, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: details})
	}
}

// MovieVideos lists trailers and clips for a movie
func (s Server) MovieVideos() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r, "id")
		if !ok {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		videos, err := s.manager.MovieVideos(r.Context(), id)
		if err != nil {
			writeErrorResponse(w, http.StatusBadGateway, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: videos})
	}
}

// SeriesVideos lists trailers and clips for a series
func (s Server) SeriesVideos() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r, "id")
		if !ok {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		videos, err := s.manager.SeriesVideos(r.Context(), id)
		if err != nil {
			writeErrorResponse(w, http.StatusBadGateway, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: videos})
	}
}
