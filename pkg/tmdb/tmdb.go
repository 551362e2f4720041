package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	phttp "github.com/Sofiane224434/cinetech/pkg/http"
	"github.com/Sofiane224434/cinetech/pkg/logger"
)

const (
	DefaultBaseURL  = "https://api.themoviedb.org/3"
	DefaultLanguage = "fr-FR"

	imageBaseURL = "https://image.tmdb.org/t/p/"

	animationGenreID = "16"
	japanCountryCode = "JP"
)

//go:generate mockgen -source=tmdb.go -destination=mocks/mock_tmdb_client.go -package=mocks

// ClientInterface is the surface of the TMDB API the rest of the
// application depends on.
type ClientInterface interface {
	PopularMovies(ctx context.Context, page int) (*Page[Movie], error)
	TrendingMovies(ctx context.Context, page int) (*Page[Movie], error)
	PopularSeries(ctx context.Context, page int) (*Page[Series], error)
	TrendingSeries(ctx context.Context, page int) (*Page[Series], error)
	DiscoverAnime(ctx context.Context, page int) (*Page[Series], error)
	MovieDetails(ctx context.Context, id int64) (*MovieDetails, error)
	SeriesDetails(ctx context.Context, id int64) (*SeriesDetails, error)
	MovieVideos(ctx context.Context, id int64) (*VideoList, error)
	SeriesVideos(ctx context.Context, id int64) (*VideoList, error)
	SearchMovies(ctx context.Context, query string, page int) (*Page[Movie], error)
	SearchSeries(ctx context.Context, query string, page int) (*Page[Series], error)
	SearchMulti(ctx context.Context, query string, page int) (*Page[MultiResult], error)
}

// Client talks to the TMDB v3 API.
type Client struct {
	baseURL  string
	apiKey   string
	language string
	http     phttp.HTTPClient
}

// ClientOption configures a Client
type ClientOption func(*Client)

// New creates a TMDB client authenticated with the given api key
func New(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:  DefaultBaseURL,
		apiKey:   apiKey,
		language: DefaultLanguage,
		http:     phttp.NewRateLimitedHTTPClient(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithBaseURL overrides the API base URL
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithLanguage sets the language sent with every request
func WithLanguage(language string) ClientOption {
	return func(c *Client) {
		c.language = language
	}
}

// WithHTTPClient sets the underlying http client
func WithHTTPClient(client phttp.HTTPClient) ClientOption {
	return func(c *Client) {
		c.http = client
	}
}

func (c *Client) PopularMovies(ctx context.Context, page int) (*Page[Movie], error) {
	return get[Page[Movie]](ctx, c, "/movie/popular", pageQuery(page))
}

func (c *Client) TrendingMovies(ctx context.Context, page int) (*Page[Movie], error) {
	return get[Page[Movie]](ctx, c, "/trending/movie/week", pageQuery(page))
}

func (c *Client) PopularSeries(ctx context.Context, page int) (*Page[Series], error) {
	return get[Page[Series]](ctx, c, "/tv/popular", pageQuery(page))
}

func (c *Client) TrendingSeries(ctx context.Context, page int) (*Page[Series], error) {
	return get[Page[Series]](ctx, c, "/trending/tv/week", pageQuery(page))
}

// DiscoverAnime lists animated series produced in Japan.
func (c *Client) DiscoverAnime(ctx context.Context, page int) (*Page[Series], error) {
	query := pageQuery(page)
	query.Set("with_genres", animationGenreID)
	query.Set("with_origin_country", japanCountryCode)
	query.Set("sort_by", "popularity.desc")
	return get[Page[Series]](ctx, c, "/discover/tv", query)
}

func (c *Client) MovieDetails(ctx context.Context, id int64) (*MovieDetails, error) {
	query := url.Values{}
	query.Set("append_to_response", "credits,similar,reviews")
	return get[MovieDetails](ctx, c, fmt.Sprintf("/movie/%d", id), query)
}

func (c *Client) SeriesDetails(ctx context.Context, id int64) (*SeriesDetails, error) {
	query := url.Values{}
	query.Set("append_to_response", "credits,similar,reviews")
	return get[SeriesDetails](ctx, c, fmt.Sprintf("/tv/%d", id), query)
}

func (c *Client) MovieVideos(ctx context.Context, id int64) (*VideoList, error) {
	return get[VideoList](ctx, c, fmt.Sprintf("/movie/%d/videos", id), nil)
}

func (c *Client) SeriesVideos(ctx context.Context, id int64) (*VideoList, error) {
	return get[VideoList](ctx, c, fmt.Sprintf("/tv/%d/videos", id), nil)
}

func (c *Client) SearchMovies(ctx context.Context, query string, page int) (*Page[Movie], error) {
	return get[Page[Movie]](ctx, c, "/search/movie", searchQuery(query, page))
}

func (c *Client) SearchSeries(ctx context.Context, query string, page int) (*Page[Series], error) {
	return get[Page[Series]](ctx, c, "/search/tv", searchQuery(query, page))
}

func (c *Client) SearchMulti(ctx context.Context, query string, page int) (*Page[MultiResult], error) {
	return get[Page[MultiResult]](ctx, c, "/search/multi", searchQuery(query, page))
}

// ImageURL builds the full URL for a poster or backdrop path. It returns an
// empty string for an empty path so callers can pass it through untouched.
func ImageURL(size, path string) string {
	if path == "" {
		return ""
	}
	return imageBaseURL + size + path
}

func pageQuery(page int) url.Values {
	query := url.Values{}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}
	return query
}

func searchQuery(term string, page int) url.Values {
	query := pageQuery(page)
	query.Set("query", term)
	return query
}

func get[T any](ctx context.Context, c *Client, path string, query url.Values) (*T, error) {
	if query == nil {
		query = url.Values{}
	}
	query.Set("api_key", c.apiKey)
	query.Set("language", c.language)

	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	log := logger.FromCtx(ctx)
	log.Debugw("tmdb request", "path", path)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}

	var out T
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &out, nil
}
