package search

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/Sofiane224434/cinetech/pkg/cache"
	"github.com/Sofiane224434/cinetech/pkg/logger"
	"github.com/Sofiane224434/cinetech/pkg/machine"
	"github.com/Sofiane224434/cinetech/pkg/storage"
	"github.com/Sofiane224434/cinetech/pkg/tmdb"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

const (
	DefaultDebounce       = 300 * time.Millisecond
	DefaultMinQueryLength = 2
	DefaultMaxSuggestions = 5
	DefaultCacheTTL       = 30 * time.Second
)

// Filter scopes a suggestion query to a slice of the catalog.
type Filter string

const (
	FilterAll   Filter = "all"
	FilterMovie Filter = "movie"
	FilterTV    Filter = "tv"
	FilterAnime Filter = "anime"
)

// SessionState tracks where a search session is between keystrokes.
type SessionState string

const (
	StateIdle     SessionState = "idle"
	StateTyping   SessionState = "typing"
	StateQuerying SessionState = "querying"
	StateResolved SessionState = "resolved"
)

func sessionTable() machine.Table[SessionState] {
	return machine.Table[SessionState]{
		StateIdle:     {StateTyping},
		StateTyping:   {StateTyping, StateQuerying, StateIdle},
		StateQuerying: {StateResolved, StateTyping, StateIdle},
		StateResolved: {StateTyping, StateIdle},
	}
}

// Suggestion is an ephemeral projection of one remote search result. It is
// never persisted.
type Suggestion struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	MediaType   string `json:"mediaType"`
	PosterPath  string `json:"posterPath,omitempty"`
	ReleaseDate string `json:"releaseDate,omitempty"`
}

// Route returns the detail route for the suggestion. Movies map to the movie
// segment, everything else to series.
func (s Suggestion) Route() string {
	if s.MediaType == "movie" {
		return fmt.Sprintf("/movie/%d", s.ID)
	}
	return fmt.Sprintf("/series/%d", s.ID)
}

// Engine drives debounced suggestion queries for one search box. Keystrokes
// go through Input; each one restarts the debounce timer so only the latest
// pending query fires. Responses carry the sequence number of the keystroke
// that issued them and are discarded when a newer keystroke has happened.
type Engine struct {
	client  tmdb.ClientInterface
	history storage.SearchHistoryStore

	debounce       time.Duration
	minQueryLength int
	maxSuggestions int

	results *cache.Cache[string, []Suggestion]

	mu          sync.Mutex
	session     *machine.Machine[SessionState]
	timer       *time.Timer
	seq         uint64
	query       string
	filter      Filter
	focused     bool
	resolved    bool
	suggestions []Suggestion
}

// EngineOption configures an Engine
type EngineOption func(*Engine)

func NewEngine(client tmdb.ClientInterface, history storage.SearchHistoryStore, opts ...EngineOption) *Engine {
	e := &Engine{
		client:         client,
		history:        history,
		debounce:       DefaultDebounce,
		minQueryLength: DefaultMinQueryLength,
		maxSuggestions: DefaultMaxSuggestions,
		results:        cache.New[string, []Suggestion](DefaultCacheTTL),
		session:        machine.New(StateIdle, sessionTable()),
		filter:         FilterAll,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// WithDebounce sets the pause after the last keystroke before a query fires
func WithDebounce(d time.Duration) EngineOption {
	return func(e *Engine) {
		e.debounce = d
	}
}

// WithMinQueryLength sets the shortest query that triggers a remote search
func WithMinQueryLength(n int) EngineOption {
	return func(e *Engine) {
		e.minQueryLength = n
	}
}

// WithMaxSuggestions caps the suggestion list
func WithMaxSuggestions(n int) EngineOption {
	return func(e *Engine) {
		e.maxSuggestions = n
	}
}

// WithCacheTTL sets how long fetched suggestion lists are reused
func WithCacheTTL(ttl time.Duration) EngineOption {
	return func(e *Engine) {
		e.results = cache.New[string, []Suggestion](ttl)
	}
}

// SetFilter switches the active filter. The next keystroke queries under it.
func (e *Engine) SetFilter(f Filter) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.filter = f
}

func (e *Engine) Filter() Filter {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.filter
}

func (e *Engine) Query() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.query
}

func (e *Engine) State() SessionState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session.Current()
}

// Suggestions returns a snapshot of the current suggestion list.
func (e *Engine) Suggestions() []Suggestion {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Clone(e.suggestions)
}

// NoResults reports whether the last query resolved to an empty list. A short
// query is a distinct state and reads as false.
func (e *Engine) NoResults() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.resolved && len(e.suggestions) == 0 && utf8.RuneCountInString(e.query) >= e.minQueryLength
}

// Input registers a keystroke. It restarts the debounce timer; the query
// fires only once input has paused and the query is long enough.
func (e *Engine) Input(ctx context.Context, query string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.query = query
	e.seq++

	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}

	if utf8.RuneCountInString(query) < e.minQueryLength {
		e.suggestions = nil
		e.resolved = false
		if query == "" {
			e.transition(StateIdle)
		} else {
			e.transition(StateTyping)
		}
		return
	}

	e.transition(StateTyping)

	seq := e.seq
	filter := e.filter
	e.timer = time.AfterFunc(e.debounce, func() {
		e.fire(ctx, query, filter, seq)
	})
}

// fire dispatches the remote query for one elapsed debounce timer.
func (e *Engine) fire(ctx context.Context, query string, filter Filter, seq uint64) {
	e.mu.Lock()
	if seq != e.seq {
		e.mu.Unlock()
		return
	}
	e.transition(StateQuerying)
	e.mu.Unlock()

	suggestions, err := e.Suggest(ctx, query, filter)

	e.mu.Lock()
	defer e.mu.Unlock()

	if seq != e.seq {
		// a newer keystroke happened while this query was in flight
		return
	}

	if err != nil {
		// fail quiet: keep whatever was on screen
		logger.FromCtx(ctx).Debugw("suggestion query failed", "query", query, "filter", filter, "error", err)
		e.transition(StateResolved)
		return
	}

	e.suggestions = suggestions
	e.resolved = true
	e.transition(StateResolved)
}

// Suggest runs one filter-scoped suggestion query and returns at most
// maxSuggestions results in server order. Recently fetched lists are served
// from cache.
func (e *Engine) Suggest(ctx context.Context, query string, filter Filter) ([]Suggestion, error) {
	cacheKey := string(filter) + "\x00" + query
	if cached, ok := e.results.Get(cacheKey); ok {
		return cached, nil
	}

	var suggestions []Suggestion
	var err error

	switch filter {
	case FilterMovie:
		var page *tmdb.Page[tmdb.Movie]
		page, err = e.client.SearchMovies(ctx, query, 1)
		if err == nil {
			suggestions = fromMovies(page.Results)
		}
	case FilterTV:
		var page *tmdb.Page[tmdb.Series]
		page, err = e.client.SearchSeries(ctx, query, 1)
		if err == nil {
			suggestions = fromSeries(page.Results)
		}
	case FilterAnime:
		// no dedicated endpoint; series search narrowed to Japan
		var page *tmdb.Page[tmdb.Series]
		page, err = e.client.SearchSeries(ctx, query, 1)
		if err == nil {
			japanese := make([]tmdb.Series, 0, len(page.Results))
			for _, series := range page.Results {
				if slices.Contains(series.OriginCountry, "JP") {
					japanese = append(japanese, series)
				}
			}
			suggestions = fromSeries(japanese)
		}
	default:
		var page *tmdb.Page[tmdb.MultiResult]
		page, err = e.client.SearchMulti(ctx, query, 1)
		if err == nil {
			suggestions = fromMulti(page.Results)
		}
	}
	if err != nil {
		return nil, err
	}

	if len(suggestions) > e.maxSuggestions {
		suggestions = suggestions[:e.maxSuggestions]
	}

	e.results.Set(cacheKey, suggestions)
	return suggestions, nil
}

// Select records the picked suggestion in the search history, resets the
// session and returns the detail route to navigate to.
func (e *Engine) Select(ctx context.Context, s Suggestion) (string, error) {
	if _, err := e.history.Record(ctx, s.Title); err != nil {
		return "", err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.query = ""
	e.seq++
	e.suggestions = nil
	e.resolved = false
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
	e.transition(StateIdle)

	return s.Route(), nil
}

// History returns the recent search terms. When a query of at least
// minQueryLength is being typed, the terms are fuzzy-matched against it so
// only relevant entries surface.
func (e *Engine) History(ctx context.Context) ([]string, error) {
	terms, err := e.history.List(ctx)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	query := e.query
	minLength := e.minQueryLength
	e.mu.Unlock()

	if utf8.RuneCountInString(query) < minLength {
		return terms, nil
	}

	matched := make([]string, 0, len(terms))
	for _, term := range terms {
		if fuzzy.MatchNormalizedFold(query, term) {
			matched = append(matched, term)
		}
	}
	return matched, nil
}

func (e *Engine) ClearHistory(ctx context.Context) error {
	return e.history.Clear(ctx)
}

// Focus marks the search control focused. The panel only ever shows while
// focused.
func (e *Engine) Focus() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.focused = true
}

// Blur hides the panel.
func (e *Engine) Blur() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.focused = false
}

// PanelVisible reports whether the suggestion panel should render: the
// control is focused and either a long-enough query has resolved suggestions
// or a short query can fall back to non-empty history.
func (e *Engine) PanelVisible(ctx context.Context) bool {
	e.mu.Lock()
	focused := e.focused
	query := e.query
	minLength := e.minQueryLength
	resolved := e.resolved
	e.mu.Unlock()

	if !focused {
		return false
	}

	if utf8.RuneCountInString(query) >= minLength {
		return resolved
	}

	terms, err := e.History(ctx)
	if err != nil {
		return false
	}
	return len(terms) > 0
}

// Close cancels any pending debounce timer.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
}

// transition must be called with mu held.
func (e *Engine) transition(s SessionState) {
	if e.session.Current() == s {
		return
	}
	if err := e.session.Transition(s); err != nil {
		logger.Get().Debugw("search session transition rejected", "from", e.session.Current(), "to", s)
	}
}

func fromMovies(movies []tmdb.Movie) []Suggestion {
	suggestions := make([]Suggestion, 0, len(movies))
	for _, m := range movies {
		suggestions = append(suggestions, Suggestion{
			ID:          m.ID,
			Title:       m.Title,
			MediaType:   "movie",
			PosterPath:  m.PosterPath,
			ReleaseDate: m.ReleaseDate,
		})
	}
	return suggestions
}

func fromSeries(series []tmdb.Series) []Suggestion {
	suggestions := make([]Suggestion, 0, len(series))
	for _, s := range series {
		suggestions = append(suggestions, Suggestion{
			ID:          s.ID,
			Title:       s.Name,
			MediaType:   "tv",
			PosterPath:  s.PosterPath,
			ReleaseDate: s.FirstAirDate,
		})
	}
	return suggestions
}

func fromMulti(results []tmdb.MultiResult) []Suggestion {
	suggestions := make([]Suggestion, 0, len(results))
	for _, r := range results {
		// multi search also returns people; the dropdown only shows titles
		if r.MediaType != "movie" && r.MediaType != "tv" {
			continue
		}
		date := r.ReleaseDate
		if date == "" {
			date = r.FirstAirDate
		}
		suggestions = append(suggestions, Suggestion{
			ID:          r.ID,
			Title:       r.DisplayTitle(),
			MediaType:   r.MediaType,
			PosterPath:  r.PosterPath,
			ReleaseDate: date,
		})
	}
	return suggestions
}
