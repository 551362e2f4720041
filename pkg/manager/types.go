package manager

import "github.com/Sofiane224434/cinetech/pkg/storage"

// AddItemRequest saves a media item into favorites or the watchlist.
type AddItemRequest struct {
	ID         int64             `json:"id" validate:"required"`
	Type       storage.MediaType `json:"type" validate:"required,oneof=movie series"`
	Title      string            `json:"title" validate:"required"`
	PosterPath string            `json:"posterPath"`
}

func (r AddItemRequest) ref() storage.MediaRef {
	return storage.MediaRef{
		ID:         r.ID,
		Title:      r.Title,
		PosterPath: r.PosterPath,
	}
}

type UpdateStatusRequest struct {
	ID     int64               `json:"id" validate:"required"`
	Status storage.WatchStatus `json:"status" validate:"required,oneof=to_watch watching watched"`
}

type SetRatingRequest struct {
	ID     int64 `json:"id" validate:"required"`
	Rating int   `json:"rating" validate:"required,min=1,max=5"`
}

type AddCommentRequest struct {
	ItemID   int64  `json:"itemId" validate:"required"`
	Text     string `json:"text" validate:"required"`
	ParentID *int64 `json:"parentId,omitempty"`
}
