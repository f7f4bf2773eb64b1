package home

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"

	"github.com/leapstack-labs/gqlvis/internal/loader"
	"github.com/leapstack-labs/gqlvis/internal/ui/features/common"
	"github.com/leapstack-labs/gqlvis/internal/ui/features/common/components"
)

// Handlers provides HTTP handlers for the home feature.
type Handlers struct {
	deps *common.Deps
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(deps *common.Deps) *Handlers {
	return &Handlers{deps: deps}
}

// HomePage renders the page with the current workspace state. A first visit
// starts loading the default endpoint and renders the loading placeholder.
func (h *Handlers) HomePage(w http.ResponseWriter, r *http.Request) {
	ws := h.deps.Workspace(w, r)
	h.deps.EnsureLoading(r.Context(), ws)

	data := common.BuildAppData(ws.State())
	page := components.Page("Schema", h.deps.IsDev, components.AppShell(data))
	if err := page.Render(r.Context(), w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// HomePageUpdates is the long-lived SSE endpoint of the page. It pushes the
// shell whenever the workspace changes. The initial state is rendered by
// HomePage.
func (h *Handlers) HomePageUpdates(w http.ResponseWriter, r *http.Request) {
	ws := h.deps.Workspace(w, r)
	sse := datastar.NewSSE(w, r)

	updates := h.deps.Notifier.Subscribe(ws.ID())
	defer h.deps.Notifier.Unsubscribe(updates)

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case <-updates:
			if err := sendShell(sse, ws); err != nil {
				_ = sse.ConsoleError(err)
			}
		}
	}
}

// SetEndpoint commits the form value as the active endpoint and loads it.
// The response streams the loading state followed by the loaded shell.
func (h *Handlers) SetEndpoint(w http.ResponseWriter, r *http.Request) {
	var signals EndpointSignals
	if err := datastar.ReadSignals(r, &signals); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	endpoint := strings.TrimSpace(signals.URL)

	ws := h.deps.Workspace(w, r)
	sse := datastar.NewSSE(w, r)
	if endpoint == "" {
		_ = sendShell(sse, ws)
		return
	}
	if !h.deps.EndpointAllowed(endpoint) {
		h.deps.Log().Warn("rejected file endpoint", "workspace", ws.ID(), "endpoint", endpoint)
		_ = sse.ConsoleError(fmt.Errorf("local file %s is not an allowed endpoint", endpoint))
		_ = sendShell(sse, ws)
		return
	}

	h.load(sse, r, ws, endpoint, false)
}

// Refresh reloads the active endpoint bypassing the snapshot cache.
func (h *Handlers) Refresh(w http.ResponseWriter, r *http.Request) {
	ws := h.deps.Workspace(w, r)
	sse := datastar.NewSSE(w, r)

	endpoint := ws.State().Endpoint
	if endpoint == "" {
		endpoint = h.deps.DefaultEndpoint
	}
	h.load(sse, r, ws, endpoint, true)
}

func (h *Handlers) load(sse *datastar.ServerSentEventGenerator, r *http.Request, ws *loader.Workspace, endpoint string, refresh bool) {
	tok := ws.Begin(endpoint)
	if err := sendShell(sse, ws); err != nil {
		_ = sse.ConsoleError(err)
	}

	var (
		snap *loader.Snapshot
		err  error
	)
	if refresh {
		snap, err = h.deps.Loader.Refresh(r.Context(), endpoint)
	} else {
		snap, err = h.deps.Loader.Load(r.Context(), endpoint)
	}
	if !ws.Commit(tok, snap, err) {
		h.deps.Log().Debug("dropping stale load", "workspace", ws.ID(), "endpoint", endpoint)
		return
	}
	h.deps.Notifier.Notify(ws.ID())

	if err := sendShell(sse, ws); err != nil {
		_ = sse.ConsoleError(err)
	}
}

// sendShell patches the main shell with the current workspace state.
func sendShell(sse *datastar.ServerSentEventGenerator, ws *loader.Workspace) error {
	return sse.PatchElementTempl(components.AppShell(common.BuildAppData(ws.State())))
}
