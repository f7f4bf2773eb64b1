// Package loader turns an endpoint into a ready-to-render schema snapshot:
// fetch, transform, build the view graph and enrich it. Snapshots are cached
// per endpoint, and workspaces track which snapshot each viewer is showing.
package loader

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/leapstack-labs/gqlvis/internal/graph"
	"github.com/leapstack-labs/gqlvis/internal/introspect"
	"github.com/leapstack-labs/gqlvis/internal/outline"
	"github.com/leapstack-labs/gqlvis/pkg/schema"
)

// DefaultCacheSize is the number of endpoint snapshots kept.
const DefaultCacheSize = 32

// Fetcher returns the raw type descriptors of the schema at an endpoint.
type Fetcher interface {
	Fetch(ctx context.Context, endpoint string) ([]schema.Descriptor, error)
}

// Snapshot is an immutable, fully built schema graph for one endpoint.
type Snapshot struct {
	ID       uuid.UUID
	Endpoint string
	Result   *schema.Result
	Graph    *graph.Graph
	LoadedAt time.Time
}

// Outline returns the outline view of the snapshot.
func (s *Snapshot) Outline() *outline.Outline {
	return outline.New(s.Graph, s.Result)
}

// Config configures a Service.
type Config struct {
	Fetcher   Fetcher
	Schema    schema.Options
	View      graph.ViewOptions
	CacheSize int
	Logger    *slog.Logger
}

// Service loads and caches schema snapshots.
type Service struct {
	fetcher Fetcher
	schema  schema.Options
	view    graph.ViewOptions
	cache   *lru.Cache[string, *Snapshot]
	logger  *slog.Logger
}

// New creates a loader service.
func New(cfg Config) (*Service, error) {
	if cfg.Fetcher == nil {
		return nil, fmt.Errorf("loader: fetcher is required")
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = DefaultCacheSize
	}
	if cfg.Schema.QueryType == "" {
		cfg.Schema = schema.DefaultOptions()
	}
	if cfg.View.QueryType == "" {
		cfg.View = graph.DefaultViewOptions()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	cache, err := lru.New[string, *Snapshot](cfg.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("creating snapshot cache: %w", err)
	}

	return &Service{
		fetcher: cfg.Fetcher,
		schema:  cfg.Schema,
		view:    cfg.View,
		cache:   cache,
		logger:  logger,
	}, nil
}

// Load returns the snapshot for endpoint, fetching it when it is not cached.
func (s *Service) Load(ctx context.Context, endpoint string) (*Snapshot, error) {
	if snap, ok := s.cache.Get(endpoint); ok {
		s.logger.Debug("snapshot cache hit", "endpoint", endpoint, "snapshot", snap.ID)
		return snap, nil
	}
	return s.Refresh(ctx, endpoint)
}

// Refresh fetches endpoint and replaces its cached snapshot.
func (s *Service) Refresh(ctx context.Context, endpoint string) (*Snapshot, error) {
	start := time.Now()
	source := sourceLabel(endpoint)

	raw, err := s.fetcher.Fetch(ctx, endpoint)
	schemaLoadDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		schemaLoads.WithLabelValues(source, "error").Inc()
		s.logger.Warn("schema fetch failed", "endpoint", endpoint, "error", err)
		return nil, fmt.Errorf("fetching schema from %s: %w", endpoint, err)
	}

	snap := s.Build(endpoint, raw)
	s.cache.Add(endpoint, snap)
	schemaLoads.WithLabelValues(source, "ok").Inc()

	s.logger.Info("schema loaded",
		"endpoint", endpoint,
		"snapshot", snap.ID,
		"types", len(raw),
		"nodes", snap.Graph.NodeCount(),
		"links", snap.Graph.LinkCount(),
		"duration", time.Since(start))
	return snap, nil
}

// Invalidate forgets the cached snapshot of endpoint.
func (s *Service) Invalidate(endpoint string) {
	s.cache.Remove(endpoint)
}

// Cached returns the cached snapshot of endpoint without fetching.
func (s *Service) Cached(endpoint string) (*Snapshot, bool) {
	return s.cache.Peek(endpoint)
}

// Build runs the transform, view and enrichment stages over raw descriptors.
func (s *Service) Build(endpoint string, raw []schema.Descriptor) *Snapshot {
	res := schema.Transform(raw, s.schema)
	for _, d := range res.Diagnostics {
		s.logger.Debug("ignoring query field for root marking",
			"endpoint", endpoint,
			"type", d.Type,
			"field", d.Field,
			"reason", d.Message)
	}

	g := graph.Enrich(graph.Build(res, s.view), s.logger.With("endpoint", endpoint))
	danglingLinks.Add(float64(len(g.Dropped())))
	graphNodes.Observe(float64(g.NodeCount()))

	return &Snapshot{
		ID:       uuid.New(),
		Endpoint: endpoint,
		Result:   res,
		Graph:    g,
		LoadedAt: time.Now(),
	}
}

func sourceLabel(endpoint string) string {
	if _, ok := introspect.FilePath(endpoint); ok {
		return "file"
	}
	return "http"
}
