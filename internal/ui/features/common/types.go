// Package common provides shared types and utilities for UI features.
package common

import (
	"log/slog"
	"time"

	"github.com/gorilla/sessions"

	"github.com/leapstack-labs/gqlvis/internal/loader"
	"github.com/leapstack-labs/gqlvis/internal/ui/notifier"
)

// Deps holds the collaborators shared by every feature.
type Deps struct {
	Loader          *loader.Service
	Workspaces      *loader.Workspaces
	Sessions        sessions.Store
	Notifier        *notifier.Notifier
	DefaultEndpoint string
	// AllowFiles are introspection files viewers may choose besides
	// DefaultEndpoint.
	AllowFiles []string
	// LoadTimeout bounds loads started outside of a request.
	LoadTimeout time.Duration
	Logger      *slog.Logger
	IsDev       bool
}

// Log returns the feature logger.
func (d *Deps) Log() *slog.Logger {
	if d.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return d.Logger
}
