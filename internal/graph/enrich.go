package graph

import (
	"log/slog"
)

// Enrich attaches neighbor and incident-link sets to every node so hover
// highlighting can look them up directly. Links with an endpoint missing
// from the node set are removed from g.Links and logged.
//
// Enrich runs once per graph; later calls return g unchanged.
func Enrich(g *Graph, logger *slog.Logger) *Graph {
	if g.enriched {
		return g
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	kept := make([]*Link, 0, len(g.Links))
	for _, l := range g.Links {
		a, okA := g.byID[l.Source]
		b, okB := g.byID[l.Target]
		if !okA || !okB {
			logger.Warn("dropping dangling link",
				"field", l.Name,
				"source", l.Source,
				"target", l.Target,
				"source_found", okA,
				"target_found", okB)
			g.dropped = append(g.dropped, l)
			continue
		}
		a.addNeighbor(b)
		b.addNeighbor(a)
		a.addLink(l)
		b.addLink(l)
		kept = append(kept, l)
	}

	for i, l := range kept {
		l.Index = i
	}
	g.Links = kept
	g.enriched = true
	return g
}
