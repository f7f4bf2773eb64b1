package graph

import (
	"github.com/go-chi/chi/v5"

	"github.com/leapstack-labs/gqlvis/internal/ui/features/common"
)

// SetupRoutes registers the graph feature routes.
func SetupRoutes(router chi.Router, deps *common.Deps) error {
	handlers := NewHandlers(deps)

	router.Route("/api/graph", func(r chi.Router) {
		r.Get("/", handlers.Graph)
		r.Get("/highlight", handlers.Highlight)
		r.Post("/select", handlers.Select)
	})

	return nil
}
