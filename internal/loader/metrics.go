package loader

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	schemaLoads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gqlvis_schema_loads_total",
		Help: "Schema loads by source and result",
	}, []string{"source", "result"})

	schemaLoadDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "gqlvis_schema_load_duration_seconds",
		Help:    "Duration of fetching and building a schema graph",
		Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
	})

	staleLoadsDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gqlvis_stale_loads_dropped_total",
		Help: "Load completions dropped because a newer load was issued",
	})

	danglingLinks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gqlvis_dangling_links_total",
		Help: "Links dropped during enrichment because an endpoint did not resolve",
	})

	graphNodes = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "gqlvis_graph_nodes",
		Help:    "Node count of built schema graphs",
		Buckets: prometheus.ExponentialBuckets(1, 4, 8),
	})
)
