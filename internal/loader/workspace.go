package loader

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/leapstack-labs/gqlvis/internal/graph"
	"github.com/leapstack-labs/gqlvis/internal/outline"
)

// Token identifies one load issued for a workspace. Only the most recently
// issued token may commit.
type Token struct {
	workspace string
	seq       uint64
	endpoint  string
}

// Endpoint returns the endpoint the token was issued for.
func (t Token) Endpoint() string {
	return t.endpoint
}

// State is a point-in-time view of a workspace.
type State struct {
	Endpoint string
	// Snapshot is the last successfully loaded graph, retained across
	// failed loads until replaced.
	Snapshot  *Snapshot
	Loading   bool
	Err       error
	Selection outline.Selection
}

// Ready reports whether a graph is available to render.
func (s State) Ready() bool {
	return s.Snapshot != nil
}

// Workspace is the schema state of one viewer: the active endpoint, the
// snapshot being shown, the outline selection and the hover state.
type Workspace struct {
	id string

	mu        sync.Mutex
	seq       uint64
	endpoint  string
	snapshot  *Snapshot
	loading   bool
	err       error
	selection outline.Selection
	highlight *graph.Highlight
}

// ID returns the workspace id.
func (w *Workspace) ID() string {
	return w.id
}

// Begin records endpoint as the active endpoint and issues a token for the
// load that will serve it. Any earlier token becomes stale. Switching to a
// different endpoint clears the selection.
func (w *Workspace) Begin(endpoint string) Token {
	w.mu.Lock()
	defer w.mu.Unlock()
	if endpoint != w.endpoint {
		w.selection.Clear()
	}
	w.seq++
	w.endpoint = endpoint
	w.loading = true
	return Token{workspace: w.id, seq: w.seq, endpoint: endpoint}
}

// Commit applies the outcome of the load identified by tok. Stale tokens are
// ignored and Commit returns false. A failed load keeps the previous
// snapshot.
func (w *Workspace) Commit(tok Token, snap *Snapshot, err error) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if tok.workspace != w.id || tok.seq != w.seq {
		staleLoadsDropped.Inc()
		return false
	}
	w.loading = false
	w.err = err
	if err == nil && snap != nil {
		w.snapshot = snap
		w.highlight = graph.NewHighlight(snap.Graph)
	}
	return true
}

// State returns the current workspace state.
func (w *Workspace) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return State{
		Endpoint:  w.endpoint,
		Snapshot:  w.snapshot,
		Loading:   w.loading,
		Err:       w.err,
		Selection: w.selection,
	}
}

// Select focuses the outline on id. An empty id clears the selection.
func (w *Workspace) Select(id string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.selection.Select(id)
}

// Hover runs fn against the hover state of the current snapshot. It returns
// false when no snapshot is loaded.
func (w *Workspace) Hover(fn func(g *graph.Graph, h *graph.Highlight)) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.snapshot == nil {
		return false
	}
	fn(w.snapshot.Graph, w.highlight)
	return true
}

// DefaultMaxWorkspaces is the number of workspaces kept when no bound is
// configured.
const DefaultMaxWorkspaces = 256

// Workspaces is the set of live workspaces. It keeps at most a fixed number
// of them and evicts the least recently used.
type Workspaces struct {
	items  *lru.Cache[string, *Workspace]
	logger *slog.Logger
}

// NewWorkspaces creates an empty workspace set holding at most size
// workspaces. A size below 1 means DefaultMaxWorkspaces.
func NewWorkspaces(size int, logger *slog.Logger) *Workspaces {
	if size <= 0 {
		size = DefaultMaxWorkspaces
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	// lru only rejects non-positive sizes.
	items, _ := lru.NewWithEvict(size, func(id string, _ *Workspace) {
		logger.Debug("workspace evicted", "workspace", id)
	})
	return &Workspaces{
		items:  items,
		logger: logger,
	}
}

// Get returns the workspace with the given id, creating it when missing. An
// empty id creates a workspace with a fresh id.
func (ws *Workspaces) Get(id string) *Workspace {
	if id == "" {
		id = uuid.NewString()
	} else if w, ok := ws.items.Get(id); ok {
		return w
	}

	w := &Workspace{id: id}
	if prev, ok, _ := ws.items.PeekOrAdd(id, w); ok {
		return prev
	}
	ws.logger.Debug("workspace created", "workspace", id)
	return w
}

// Lookup returns an existing workspace.
func (ws *Workspaces) Lookup(id string) (*Workspace, bool) {
	return ws.items.Get(id)
}

// Remove drops a workspace.
func (ws *Workspaces) Remove(id string) {
	ws.items.Remove(id)
}

// Len returns the number of live workspaces.
func (ws *Workspaces) Len() int {
	return ws.items.Len()
}

// Showing returns the workspaces whose active endpoint is endpoint.
func (ws *Workspaces) Showing(endpoint string) []*Workspace {
	var out []*Workspace
	for _, w := range ws.items.Values() {
		if w.State().Endpoint == endpoint {
			out = append(out, w)
		}
	}
	return out
}

// Endpoints returns the distinct active endpoints across workspaces.
func (ws *Workspaces) Endpoints() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, w := range ws.items.Values() {
		ep := w.State().Endpoint
		if ep == "" {
			continue
		}
		if _, ok := seen[ep]; ok {
			continue
		}
		seen[ep] = struct{}{}
		out = append(out, ep)
	}
	return out
}

// Switch points w at endpoint and loads it, committing the result unless a
// newer load was issued meanwhile. It reports whether the result was
// applied.
func (s *Service) Switch(ctx context.Context, w *Workspace, endpoint string, refresh bool) bool {
	tok := w.Begin(endpoint)
	var (
		snap *Snapshot
		err  error
	)
	if refresh {
		snap, err = s.Refresh(ctx, endpoint)
	} else {
		snap, err = s.Load(ctx, endpoint)
	}
	applied := w.Commit(tok, snap, err)
	if !applied {
		s.logger.Debug("dropping stale load", "workspace", w.ID(), "endpoint", endpoint)
	}
	return applied
}
