package tmdb

// Page is one page of results from a list endpoint.
type Page[T any] struct {
	Page         int   `json:"page"`
	Results      []T   `json:"results"`
	TotalPages   int   `json:"total_pages"`
	TotalResults int64 `json:"total_results"`
}

type Movie struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	OriginalTitle string  `json:"original_title"`
	Overview      string  `json:"overview"`
	PosterPath    string  `json:"poster_path"`
	BackdropPath  string  `json:"backdrop_path"`
	ReleaseDate   string  `json:"release_date"`
	VoteAverage   float64 `json:"vote_average"`
	VoteCount     int64   `json:"vote_count"`
	GenreIDs      []int64 `json:"genre_ids"`
}

type Series struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	OriginalName  string   `json:"original_name"`
	Overview      string   `json:"overview"`
	PosterPath    string   `json:"poster_path"`
	BackdropPath  string   `json:"backdrop_path"`
	FirstAirDate  string   `json:"first_air_date"`
	VoteAverage   float64  `json:"vote_average"`
	VoteCount     int64    `json:"vote_count"`
	GenreIDs      []int64  `json:"genre_ids"`
	OriginCountry []string `json:"origin_country"`
}

// MultiResult is an entry from the multi search endpoint. MediaType tells
// which of the movie or tv fields are populated.
type MultiResult struct {
	ID            int64    `json:"id"`
	MediaType     string   `json:"media_type"`
	Title         string   `json:"title,omitempty"`
	Name          string   `json:"name,omitempty"`
	Overview      string   `json:"overview"`
	PosterPath    string   `json:"poster_path"`
	ReleaseDate   string   `json:"release_date,omitempty"`
	FirstAirDate  string   `json:"first_air_date,omitempty"`
	VoteAverage   float64  `json:"vote_average"`
	OriginCountry []string `json:"origin_country,omitempty"`
}

// DisplayTitle returns the movie title or the tv name, whichever is set.
func (r MultiResult) DisplayTitle() string {
	if r.Title != "" {
		return r.Title
	}
	return r.Name
}

type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type CastMember struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Character   string `json:"character"`
	ProfilePath string `json:"profile_path"`
}

type CrewMember struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Job  string `json:"job"`
}

type Credits struct {
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}

type Review struct {
	ID        string `json:"id"`
	Author    string `json:"author"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

type Video struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Name string `json:"name"`
	Site string `json:"site"`
	Type string `json:"type"`
}

type VideoList struct {
	ID      int64   `json:"id"`
	Results []Video `json:"results"`
}

// MovieDetails is a movie with its appended credits, similar titles and reviews.
type MovieDetails struct {
	Movie
	Runtime int64        `json:"runtime"`
	Tagline string       `json:"tagline"`
	Genres  []Genre      `json:"genres"`
	Credits *Credits     `json:"credits,omitempty"`
	Similar *Page[Movie] `json:"similar,omitempty"`
	Reviews *Page[Review] `json:"reviews,omitempty"`
}

type SeriesDetails struct {
	Series
	NumberOfSeasons  int64         `json:"number_of_seasons"`
	NumberOfEpisodes int64         `json:"number_of_episodes"`
	Tagline          string        `json:"tagline"`
	Genres           []Genre       `json:"genres"`
	Credits          *Credits      `json:"credits,omitempty"`
	Similar          *Page[Series] `json:"similar,omitempty"`
	Reviews          *Page[Review] `json:"reviews,omitempty"`
}
