// Package graph serves the graph data and hover state consumed by the
// force-directed renderer.
package graph

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/leapstack-labs/gqlvis/internal/graph"
	"github.com/leapstack-labs/gqlvis/internal/ui/features/common"
	"github.com/leapstack-labs/gqlvis/internal/visual"
)

// Response is the /api/graph payload.
type Response struct {
	Snapshot string `json:"snapshot"`
	Endpoint string `json:"endpoint"`
	visual.Payload
}

// Handlers provides HTTP handlers for the graph feature.
type Handlers struct {
	deps *common.Deps
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(deps *common.Deps) *Handlers {
	return &Handlers{deps: deps}
}

// Graph returns the workspace graph with resting styles and renderer
// settings. It answers 503 until a graph is loaded.
func (h *Handlers) Graph(w http.ResponseWriter, r *http.Request) {
	ws := h.deps.Workspace(w, r)
	st := ws.State()
	if !st.Ready() {
		writeJSON(w, http.StatusServiceUnavailable, map[string]any{"loading": true, "endpoint": st.Endpoint})
		return
	}

	writeJSON(w, http.StatusOK, Response{
		Snapshot: st.Snapshot.ID.String(),
		Endpoint: st.Snapshot.Endpoint,
		Payload:  visual.NewPayload(st.Snapshot.Graph),
	})
}

// Highlight applies a hover event and returns the resulting highlight
// state. ?node=ID hovers a node, ?link=N hovers a link, neither clears.
func (h *Handlers) Highlight(w http.ResponseWriter, r *http.Request) {
	ws := h.deps.Workspace(w, r)
	q := r.URL.Query()

	var (
		state  visual.HighlightState
		badReq string
	)
	ok := ws.Hover(func(g *graph.Graph, hl *graph.Highlight) {
		switch {
		case q.Has("node"):
			n, _ := g.Node(q.Get("node"))
			hl.HoverNode(n)
		case q.Has("link"):
			i, err := strconv.Atoi(q.Get("link"))
			if err != nil {
				badReq = "link must be an index"
				return
			}
			l, _ := g.Link(i)
			hl.HoverLink(l)
		default:
			hl.HoverNode(nil)
		}
		state = visual.NewHighlightState(hl)
	})
	switch {
	case !ok:
		writeJSON(w, http.StatusServiceUnavailable, map[string]any{"loading": true})
	case badReq != "":
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": badReq})
	default:
		writeJSON(w, http.StatusOK, state)
	}
}

// Select focuses the outline on a clicked node and notifies the page.
func (h *Handlers) Select(w http.ResponseWriter, r *http.Request) {
	ws := h.deps.Workspace(w, r)
	ws.Select(r.URL.Query().Get("node"))
	h.deps.Notifier.Notify(ws.ID())
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
