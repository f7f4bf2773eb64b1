// Package config provides configuration management for the gqlvis CLI.
package config

import (
	"time"

	"github.com/leapstack-labs/gqlvis/internal/graph"
	"github.com/leapstack-labs/gqlvis/internal/introspect"
	"github.com/leapstack-labs/gqlvis/internal/loader"
	"github.com/leapstack-labs/gqlvis/pkg/schema"
)

// Default configuration values.
const (
	DefaultEndpoint      = "https://api.spacex.land/graphql/"
	DefaultOutput        = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultPort          = 8765
	DefaultSessionSecret = "gqlvis-dev-session-secret-change-me"
	DefaultBurst         = 1
)

// FetchConfig controls how schemas are fetched and cached.
type FetchConfig struct {
	Timeout   time.Duration `koanf:"timeout"`
	RateLimit float64       `koanf:"rate_limit"`
	Burst     int           `koanf:"burst"`
	CacheSize int           `koanf:"cache_size"`
}

// GraphConfig names the types that get special treatment when building the
// visualized graph.
type GraphConfig struct {
	QueryType        string   `koanf:"query_type"`
	MutationType     string   `koanf:"mutation_type"`
	PaginatorSuffix  string   `koanf:"paginator_suffix"`
	PaginatorHelpers []string `koanf:"paginator_helpers"`
}

// UIConfig holds configuration for the UI server.
type UIConfig struct {
	Port          int    `koanf:"port"`
	AutoOpen      bool   `koanf:"auto_open"`
	Watch         bool   `koanf:"watch"`
	SessionSecret string `koanf:"session_secret"`
	// MaxWorkspaces bounds the per-browser workspaces kept in memory.
	MaxWorkspaces int `koanf:"max_workspaces"`
	// AllowFiles lists introspection files that may be chosen from the
	// browser in addition to the configured endpoint.
	AllowFiles []string `koanf:"allow_files"`
}

// Config holds all CLI configuration options.
type Config struct {
	Endpoint     string      `koanf:"endpoint"`
	Verbose      bool        `koanf:"verbose"`
	OutputFormat string      `koanf:"output"`
	Fetch        FetchConfig `koanf:"fetch"`
	Graph        GraphConfig `koanf:"graph"`
	UI           UIConfig    `koanf:"ui"`
}

// Defaults returns the configuration used when nothing else is set.
func Defaults() *Config {
	return &Config{
		Endpoint:     DefaultEndpoint,
		OutputFormat: DefaultOutput,
		Fetch: FetchConfig{
			Timeout:   introspect.DefaultTimeout,
			RateLimit: introspect.DefaultRateLimit,
			Burst:     DefaultBurst,
			CacheSize: loader.DefaultCacheSize,
		},
		Graph: GraphConfig{
			QueryType:        schema.DefaultQueryType,
			MutationType:     graph.DefaultMutationType,
			PaginatorSuffix:  schema.DefaultPaginatorSuffix,
			PaginatorHelpers: []string{graph.DefaultPaginatorHelper},
		},
		UI: UIConfig{
			Port:          DefaultPort,
			AutoOpen:      true,
			Watch:         true,
			SessionSecret: DefaultSessionSecret,
			MaxWorkspaces: loader.DefaultMaxWorkspaces,
		},
	}
}

// SchemaOptions returns the transform options for this configuration.
func (c *Config) SchemaOptions() schema.Options {
	return schema.Options{
		QueryType:       c.Graph.QueryType,
		PaginatorSuffix: c.Graph.PaginatorSuffix,
	}
}

// ViewOptions returns the graph exclusion options for this configuration.
func (c *Config) ViewOptions() graph.ViewOptions {
	return graph.ViewOptions{
		QueryType:        c.Graph.QueryType,
		MutationType:     c.Graph.MutationType,
		PaginatorSuffix:  c.Graph.PaginatorSuffix,
		PaginatorHelpers: c.Graph.PaginatorHelpers,
	}
}
