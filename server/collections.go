package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/Sofiane224434/cinetech/pkg/logger"
	"github.com/Sofiane224434/cinetech/pkg/manager"
)

func decodeBody(r *http.Request, into any) error {
	b, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, into)
}

// ListFavorites serves the saved favorites
func (s Server) ListFavorites() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := s.manager.ListFavorites(r.Context())
		if err != nil {
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: items})
	}
}

// AddFavorite saves an item as a favorite
func (s Server) AddFavorite() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		var request manager.AddItemRequest
		if err := decodeBody(r, &request); err != nil {
			log.Debugw("invalid request body", "error", err)
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		items, err := s.manager.AddFavorite(r.Context(), request)
		if err != nil {
			writeErrorResponse(w, statusFor(err), err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: items})
	}
}

// RemoveFavorite drops an item from the favorites
func (s Server) RemoveFavorite() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r, "id")
		if !ok {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		items, err := s.manager.RemoveFavorite(r.Context(), id)
		if err != nil {
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: items})
	}
}

// ListWatchlist serves the watchlist
func (s Server) ListWatchlist() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := s.manager.ListWatchlist(r.Context())
		if err != nil {
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: items})
	}
}

// AddToWatchlist saves an item to watch later
func (s Server) AddToWatchlist() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		var request manager.AddItemRequest
		if err := decodeBody(r, &request); err != nil {
			log.Debugw("invalid request body", "error", err)
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		items, err := s.manager.AddToWatchlist(r.Context(), request)
		if err != nil {
			writeErrorResponse(w, statusFor(err), err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: items})
	}
}

// RemoveFromWatchlist drops an item from the watchlist
func (s Server) RemoveFromWatchlist() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r, "id")
		if !ok {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		items, err := s.manager.RemoveFromWatchlist(r.Context(), id)
		if err != nil {
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: items})
	}
}

// UpdateWatchStatus moves a watchlist entry through its lifecycle
func (s Server) UpdateWatchStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		id, ok := idParam(r, "id")
		if !ok {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		var request manager.UpdateStatusRequest
		if err := decodeBody(r, &request); err != nil {
			log.Debugw("invalid request body", "error", err)
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		request.ID = id

		items, err := s.manager.UpdateWatchStatus(r.Context(), request)
		if err != nil {
			writeErrorResponse(w, statusFor(err), err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: items})
	}
}

// AllRatings serves every stored rating keyed by item id
func (s Server) AllRatings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ratings, err := s.manager.AllRatings(r.Context())
		if err != nil {
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: ratings})
	}
}

// GetRating serves the rating for one item, 0 when unrated
func (s Server) GetRating() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r, "id")
		if !ok {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		rating, err := s.manager.GetRating(r.Context(), id)
		if err != nil {
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: rating})
	}
}

// SetRating stores a 1 to 5 star rating for an item
func (s Server) SetRating() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		id, ok := idParam(r, "id")
		if !ok {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		var request manager.SetRatingRequest
		if err := decodeBody(r, &request); err != nil {
			log.Debugw("invalid request body", "error", err)
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		request.ID = id

		rating, err := s.manager.SetRating(r.Context(), request)
		if err != nil {
			writeErrorResponse(w, statusFor(err), err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: rating})
	}
}

// RemoveRating clears the rating for an item
func (s Server) RemoveRating() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r, "id")
		if !ok {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		if err := s.manager.RemoveRating(r.Context(), id); err != nil {
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{})
	}
}

// ListComments serves the comment thread for an item
func (s Server) ListComments() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID, ok := idParam(r, "itemId")
		if !ok {
			http.Error(w, "invalid item id", http.StatusBadRequest)
			return
		}

		thread, err := s.manager.ListComments(r.Context(), itemID)
		if err != nil {
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: thread})
	}
}

// AddComment appends a comment or a reply to an item's thread
func (s Server) AddComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		itemID, ok := idParam(r, "itemId")
		if !ok {
			http.Error(w, "invalid item id", http.StatusBadRequest)
			return
		}

		var request manager.AddCommentRequest
		if err := decodeBody(r, &request); err != nil {
			log.Debugw("invalid request body", "error", err)
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		request.ItemID = itemID

		thread, err := s.manager.AddComment(r.Context(), request)
		if err != nil {
			writeErrorResponse(w, statusFor(err), err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: thread})
	}
}

// DeleteComment removes a comment and its direct replies
func (s Server) DeleteComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID, ok := idParam(r, "itemId")
		if !ok {
			http.Error(w, "invalid item id", http.StatusBadRequest)
			return
		}

		commentID, ok := idParam(r, "commentId")
		if !ok {
			http.Error(w, "invalid comment id", http.StatusBadRequest)
			return
		}

		thread, err := s.manager.DeleteComment(r.Context(), itemID, commentID)
		if err != nil {
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: thread})
	}
}
