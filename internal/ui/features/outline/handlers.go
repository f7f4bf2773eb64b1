package outline

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/leapstack-labs/gqlvis/internal/loader"
	"github.com/leapstack-labs/gqlvis/internal/ui/features/common"
	"github.com/leapstack-labs/gqlvis/internal/ui/features/common/components"
)

// Handlers provides HTTP handlers for the outline feature.
type Handlers struct {
	deps *common.Deps
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(deps *common.Deps) *Handlers {
	return &Handlers{deps: deps}
}

// Select focuses the outline on the type in the path and sends its detail.
func (h *Handlers) Select(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	ws := h.deps.Workspace(w, r)
	ws.Select(id)
	h.sendOutline(w, r, ws)
}

// Home clears the selection and sends the listing.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	ws := h.deps.Workspace(w, r)
	ws.Select("")
	h.sendOutline(w, r, ws)
}

func (h *Handlers) sendOutline(w http.ResponseWriter, r *http.Request, ws *loader.Workspace) {
	sse := datastar.NewSSE(w, r)

	data := common.BuildAppData(ws.State())
	if !data.Ready {
		// Nothing to outline yet; the shell keeps showing the placeholder.
		return
	}
	if err := sse.PatchElementTempl(components.OutlinePane(data.Tree, data.Detail)); err != nil {
		_ = sse.ConsoleError(err)
	}
}
