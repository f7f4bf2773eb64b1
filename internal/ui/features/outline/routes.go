// Package outline provides the drill-down handlers of the outline pane.
package outline

import (
	"github.com/go-chi/chi/v5"

	"github.com/leapstack-labs/gqlvis/internal/ui/features/common"
)

// SetupRoutes registers the outline feature routes.
func SetupRoutes(router chi.Router, deps *common.Deps) error {
	handlers := NewHandlers(deps)

	router.Route("/outline", func(r chi.Router) {
		r.Get("/select/{id}", handlers.Select)
		r.Get("/home", handlers.Home)
	})

	return nil
}
