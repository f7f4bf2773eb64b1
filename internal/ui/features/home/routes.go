package home

import (
	"github.com/go-chi/chi/v5"

	"github.com/leapstack-labs/gqlvis/internal/ui/features/common"
)

// SetupRoutes configures routes for the home feature.
func SetupRoutes(router chi.Router, deps *common.Deps) error {
	handlers := NewHandlers(deps)

	router.Get("/", handlers.HomePage)
	router.Get("/updates", handlers.HomePageUpdates)
	router.Post("/endpoint", handlers.SetEndpoint)
	router.Post("/refresh", handlers.Refresh)

	return nil
}
