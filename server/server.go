package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/Sofiane224434/cinetech/pkg/manager"
	"github.com/Sofiane224434/cinetech/pkg/search"
	"go.uber.org/zap"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

type GenericResponse struct {
	Error    string `json:"error,omitempty"`
	Response any    `json:"response"`
}

// Server houses all dependencies the http layer needs such as loggers, the
// catalog manager and the suggestion engine.
type Server struct {
	baseLogger *zap.SugaredLogger
	manager    manager.CatalogManager
	search     *search.Engine
}

// New creates a new catalog server
func New(logger *zap.SugaredLogger, manager manager.CatalogManager, engine *search.Engine) Server {
	return Server{
		baseLogger: logger,
		manager:    manager,
		search:     engine,
	}
}

func writeErrorResponse(w http.ResponseWriter, status int, err error) error {
	return writeResponse(w, status, GenericResponse{
		Error: err.Error(),
	})
}

func writeResponse(w http.ResponseWriter, status int, body any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	w.Header().Set("content-type", "application/json")
	if status != http.StatusOK {
		w.WriteHeader(status)
	}

	w.Write(b)
	return nil
}

// statusFor maps a manager error to a response code
func statusFor(err error) int {
	if errors.Is(err, manager.ErrInvalidRequest) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// Handler builds the full route table wrapped with logging and CORS.
func (s Server) Handler() http.Handler {
	rtr := mux.NewRouter()
	rtr.Use(s.LogMiddleware())
	rtr.HandleFunc("/healthz", s.Healthz()).Methods(http.MethodGet)

	api := rtr.PathPrefix("/api").Subrouter()

	v1 := api.PathPrefix("/v1").Subrouter()

	v1.HandleFunc("/movies/popular", s.PopularMovies()).Methods(http.MethodGet)
	v1.HandleFunc("/movies/trending", s.TrendingMovies()).Methods(http.MethodGet)
	v1.HandleFunc("/movies/{id:[0-9]+}", s.MovieDetails()).Methods(http.MethodGet)
	v1.HandleFunc("/movies/{id:[0-9]+}/videos", s.MovieVideos()).Methods(http.MethodGet)

	v1.HandleFunc("/series/popular", s.PopularSeries()).Methods(http.MethodGet)
	v1.HandleFunc("/series/trending", s.TrendingSeries()).Methods(http.MethodGet)
	v1.HandleFunc("/series/{id:[0-9]+}", s.SeriesDetails()).Methods(http.MethodGet)
	v1.HandleFunc("/series/{id:[0-9]+}/videos", s.SeriesVideos()).Methods(http.MethodGet)

	v1.HandleFunc("/anime", s.DiscoverAnime()).Methods(http.MethodGet)

	v1.HandleFunc("/search/suggestions", s.Suggestions()).Methods(http.MethodGet)
	v1.HandleFunc("/search/select", s.SelectSuggestion()).Methods(http.MethodPost)
	v1.HandleFunc("/search/history", s.SearchHistory()).Methods(http.MethodGet)
	v1.HandleFunc("/search/history", s.ClearSearchHistory()).Methods(http.MethodDelete)

	v1.HandleFunc("/favorites", s.ListFavorites()).Methods(http.MethodGet)
	v1.HandleFunc("/favorites", s.AddFavorite()).Methods(http.MethodPost)
	v1.HandleFunc("/favorites/{id:[0-9]+}", s.RemoveFavorite()).Methods(http.MethodDelete)

	v1.HandleFunc("/watchlist", s.ListWatchlist()).Methods(http.MethodGet)
	v1.HandleFunc("/watchlist", s.AddToWatchlist()).Methods(http.MethodPost)
	v1.HandleFunc("/watchlist/{id:[0-9]+}", s.RemoveFromWatchlist()).Methods(http.MethodDelete)
	v1.HandleFunc("/watchlist/{id:[0-9]+}/status", s.UpdateWatchStatus()).Methods(http.MethodPut)

	v1.HandleFunc("/ratings", s.AllRatings()).Methods(http.MethodGet)
	v1.HandleFunc("/ratings/{id:[0-9]+}", s.GetRating()).Methods(http.MethodGet)
	v1.HandleFunc("/ratings/{id:[0-9]+}", s.SetRating()).Methods(http.MethodPut)
	v1.HandleFunc("/ratings/{id:[0-9]+}", s.RemoveRating()).Methods(http.MethodDelete)

	v1.HandleFunc("/comments/{itemId:[0-9]+}", s.ListComments()).Methods(http.MethodGet)
	v1.HandleFunc("/comments/{itemId:[0-9]+}", s.AddComment()).Methods(http.MethodPost)
	v1.HandleFunc("/comments/{itemId:[0-9]+}/{commentId:[0-9]+}", s.DeleteComment()).Methods(http.MethodDelete)

	return handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete}),
	)(rtr)
}

// Serve starts the http server and is a blocking call
func (s Server) Serve(port int) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: s.Handler(),
	}

	go func() {
		s.baseLogger.Infow("serving...", "port", port)
		if err := srv.ListenAndServe(); err != nil {
			s.baseLogger.Error(err.Error())
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	<-c

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()

	return srv.Shutdown(ctx)
}

// Healthz is an endpoint that can be used for probes
func (s Server) Healthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := GenericResponse{
			Response: "ok",
		}
		writeResponse(w, http.StatusOK, response)
	}
}
