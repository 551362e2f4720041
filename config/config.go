package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

type Config struct {
	TMDB    TMDB    `json:"tmdb" yaml:"tmdb" mapstructure:"tmdb"`
	Server  Server  `json:"server" yaml:"server" mapstructure:"server"`
	Storage Storage `json:"storage" yaml:"storage" mapstructure:"storage"`
	Search  Search  `json:"search" yaml:"search" mapstructure:"search"`
}

type TMDB struct {
	APIKey      string        `json:"apiKey" yaml:"apiKey" mapstructure:"apiKey"`
	Language    string        `json:"language" yaml:"language" mapstructure:"language"`
	BaseBackoff time.Duration `json:"backoff" yaml:"backoff" mapstructure:"backoff"`
	MaxRetries  int           `json:"maxRetries" yaml:"maxRetries" mapstructure:"maxRetries"`
}

type Server struct {
	Port int `json:"port" yaml:"port" mapstructure:"port"`
}

// Storage selects the key-value adapter backing the user collections.
type Storage struct {
	Driver   string `json:"driver" yaml:"driver" mapstructure:"driver"`
	FilePath string `json:"filePath" yaml:"filePath" mapstructure:"filePath"`
}

// Search tunes the suggestion engine.
type Search struct {
	Debounce       time.Duration `json:"debounce" yaml:"debounce" mapstructure:"debounce"`
	MinQueryLength int           `json:"minQueryLength" yaml:"minQueryLength" mapstructure:"minQueryLength"`
	MaxSuggestions int           `json:"maxSuggestions" yaml:"maxSuggestions" mapstructure:"maxSuggestions"`
	HistoryLimit   int           `json:"historyLimit" yaml:"historyLimit" mapstructure:"historyLimit"`
}

type ConfigUnmarshaler interface {
	ReadInConfig() error
	Unmarshal(any, ...viper.DecoderConfigOption) error
	ConfigFileUsed() string
}

// New reads a new configuration
func New(cu ConfigUnmarshaler) (Config, error) {
	var c Config

	if cu.ConfigFileUsed() != "" {
		err := cu.ReadInConfig()
		if err != nil {
			return c, err
		}
	}

	if err := cu.Unmarshal(&c); err != nil {
		return c, err
	}

	if c.TMDB.Language != "" {
		if _, err := language.Parse(c.TMDB.Language); err != nil {
			return Config{}, fmt.Errorf("invalid tmdb language %q: %w", c.TMDB.Language, err)
		}
	}

	return c, nil
}
