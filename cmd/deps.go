package cmd

import (
	"fmt"
	"log"
	"strconv"

	"github.com/Sofiane224434/cinetech/config"
	phttp "github.com/Sofiane224434/cinetech/pkg/http"
	"github.com/Sofiane224434/cinetech/pkg/manager"
	"github.com/Sofiane224434/cinetech/pkg/search"
	"github.com/Sofiane224434/cinetech/pkg/storage"
	"github.com/Sofiane224434/cinetech/pkg/storage/bolt"
	"github.com/Sofiane224434/cinetech/pkg/storage/kv"
	"github.com/Sofiane224434/cinetech/pkg/storage/mem"
	"github.com/Sofiane224434/cinetech/pkg/storage/sqlite"
	"github.com/Sofiane224434/cinetech/pkg/tmdb"
	"github.com/spf13/viper"
)

func loadConfig() (config.Config, error) {
	return config.New(viper.GetViper())
}

// openStore binds the configured key-value adapter.
func openStore(cfg config.Config) (storage.KeyValue, error) {
	switch cfg.Storage.Driver {
	case "", "sqlite":
		return sqlite.New(cfg.Storage.FilePath)
	case "bolt":
		return bolt.New(cfg.Storage.FilePath)
	case "memory":
		return mem.New(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

func newTMDBClient(cfg config.Config) *tmdb.Client {
	httpOpts := []phttp.ClientOption{}
	if cfg.TMDB.BaseBackoff > 0 {
		httpOpts = append(httpOpts, phttp.WithBaseBackoff(cfg.TMDB.BaseBackoff))
	}
	if cfg.TMDB.MaxRetries > 0 {
		httpOpts = append(httpOpts, phttp.WithMaxRetries(cfg.TMDB.MaxRetries))
	}

	tmdbOpts := []tmdb.ClientOption{
		tmdb.WithHTTPClient(phttp.NewRateLimitedHTTPClient(httpOpts...)),
	}
	if cfg.TMDB.Language != "" {
		tmdbOpts = append(tmdbOpts, tmdb.WithLanguage(cfg.TMDB.Language))
	}

	return tmdb.New(cfg.TMDB.APIKey, tmdbOpts...)
}

// newCatalog wires the catalog manager over the configured store. The caller
// owns closing the returned adapter.
func newCatalog(cfg config.Config) (manager.CatalogManager, storage.Collections, storage.KeyValue, error) {
	store, err := openStore(cfg)
	if err != nil {
		return manager.CatalogManager{}, storage.Collections{}, nil, err
	}

	collections := kv.NewCollections(store, cfg.Search.HistoryLimit)
	return manager.New(newTMDBClient(cfg), collections), collections, store, nil
}

// mustCatalog builds the catalog manager for a leaf command, exiting on any
// wiring failure.
func mustCatalog() (manager.CatalogManager, storage.KeyValue) {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("failed to read configurations: %v", err)
	}

	catalog, _, store, err := newCatalog(cfg)
	if err != nil {
		log.Fatalf("failed to open storage: %v", err)
	}

	return catalog, store
}

func mustID(arg string) int64 {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		log.Fatalf("invalid id %q", arg)
	}
	return id
}

func newEngine(cfg config.Config, client tmdb.ClientInterface, history storage.SearchHistoryStore) *search.Engine {
	opts := []search.EngineOption{}
	if cfg.Search.Debounce > 0 {
		opts = append(opts, search.WithDebounce(cfg.Search.Debounce))
	}
	if cfg.Search.MinQueryLength > 0 {
		opts = append(opts, search.WithMinQueryLength(cfg.Search.MinQueryLength))
	}
	if cfg.Search.MaxSuggestions > 0 {
		opts = append(opts, search.WithMaxSuggestions(cfg.Search.MaxSuggestions))
	}

	return search.NewEngine(client, history, opts...)
}
