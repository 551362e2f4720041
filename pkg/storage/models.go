package storage

type MediaType string

const (
	MediaTypeMovie  MediaType = "movie"
	MediaTypeSeries MediaType = "series"
)

type WatchStatus string

const (
	WatchStatusToWatch  WatchStatus = "to_watch"
	WatchStatusWatching WatchStatus = "watching"
	WatchStatusWatched  WatchStatus = "watched"
)

var watchStatusLabels = map[WatchStatus]string{
	WatchStatusToWatch:  "À regarder",
	WatchStatusWatching: "En cours",
	WatchStatusWatched:  "Vu",
}

// Label returns the display label for the status. Unrecognized values fall
// back to the to-watch label; the stores persist statuses verbatim.
func (s WatchStatus) Label() string {
	if label, ok := watchStatusLabels[s]; ok {
		return label
	}

	return watchStatusLabels[WatchStatusToWatch]
}

// MediaRef carries the minimal fields a collection keeps about a catalog
// item.
type MediaRef struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	PosterPath string `json:"posterPath,omitempty"`
}

// StoredItem is a favorites or watchlist entry. AddedAt is unix milliseconds.
// Status is only set for watchlist entries.
type StoredItem struct {
	ID         int64       `json:"id"`
	Type       MediaType   `json:"type"`
	Title      string      `json:"title"`
	PosterPath string      `json:"posterPath,omitempty"`
	AddedAt    int64       `json:"addedAt"`
	Status     WatchStatus `json:"status,omitempty"`
}

// Comment is one entry of an item's thread. A nil ParentID marks a top-level
// comment; otherwise ParentID references another comment's ID. Threads are
// two levels deep at most.
type Comment struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	ParentID  *int64 `json:"parentId"`
	CreatedAt int64  `json:"createdAt"`
	Author    string `json:"author"`
}

// IsReply reports whether the comment answers another comment.
func (c Comment) IsReply() bool {
	return c.ParentID != nil
}
