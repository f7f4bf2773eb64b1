package common

import (
	"context"
	"net/http"
	"path/filepath"

	"github.com/leapstack-labs/gqlvis/internal/introspect"
	"github.com/leapstack-labs/gqlvis/internal/loader"
	"github.com/leapstack-labs/gqlvis/internal/ui/features/common/components"
)

// Session cookie name and keys.
const (
	SessionName  = "gqlvis"
	workspaceKey = "workspace"
)

// Workspace returns the workspace of the requesting viewer. A viewer without
// one gets a new workspace whose id is stored in the session cookie, so
// Workspace must run before anything is written to w.
func (d *Deps) Workspace(w http.ResponseWriter, r *http.Request) *loader.Workspace {
	sess, err := d.Sessions.Get(r, SessionName)
	if err != nil {
		d.Log().Debug("discarding unreadable session", "error", err)
	}
	id, _ := sess.Values[workspaceKey].(string)
	if id != "" {
		if ws, ok := d.Workspaces.Lookup(id); ok {
			return ws
		}
	}

	ws := d.Workspaces.Get(id)
	sess.Values[workspaceKey] = ws.ID()
	if err := sess.Save(r, w); err != nil {
		d.Log().Warn("failed to save session", "error", err)
	}
	return ws
}

// EndpointAllowed reports whether a viewer may point a workspace at
// endpoint. Remote URLs are always allowed. Local files are limited to the
// configured endpoint and AllowFiles, so the page cannot read arbitrary
// server files.
func (d *Deps) EndpointAllowed(endpoint string) bool {
	path, isFile := introspect.FilePath(endpoint)
	if !isFile {
		return true
	}
	path = filepath.Clean(path)
	for _, allowed := range append([]string{d.DefaultEndpoint}, d.AllowFiles...) {
		if p, ok := introspect.FilePath(allowed); ok && filepath.Clean(p) == path {
			return true
		}
	}
	return false
}

// EnsureLoading starts loading the default endpoint into ws if it has never
// been pointed at one.
func (d *Deps) EnsureLoading(ctx context.Context, ws *loader.Workspace) {
	if ws.State().Endpoint != "" || d.DefaultEndpoint == "" {
		return
	}
	d.LoadAsync(ctx, ws, d.DefaultEndpoint, false)
}

// LoadAsync loads endpoint into ws in the background and notifies listeners
// once the workspace changed. ctx only contributes its values.
func (d *Deps) LoadAsync(ctx context.Context, ws *loader.Workspace, endpoint string, refresh bool) {
	// Mark the workspace as loading before returning so the caller renders
	// the new endpoint.
	tok := ws.Begin(endpoint)
	go func() {
		ctx := context.WithoutCancel(ctx)
		if d.LoadTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, d.LoadTimeout)
			defer cancel()
		}
		var (
			snap *loader.Snapshot
			err  error
		)
		if refresh {
			snap, err = d.Loader.Refresh(ctx, endpoint)
		} else {
			snap, err = d.Loader.Load(ctx, endpoint)
		}
		if !ws.Commit(tok, snap, err) {
			d.Log().Debug("dropping stale load", "workspace", ws.ID(), "endpoint", endpoint)
			return
		}
		d.Notifier.Notify(ws.ID())
	}()
}

// BuildAppData assembles the main shell from a workspace state.
func BuildAppData(st loader.State) components.AppData {
	data := components.AppData{
		Endpoint: st.Endpoint,
		Loading:  st.Loading,
		Ready:    st.Ready(),
	}
	if !data.Ready {
		return data
	}

	snap := st.Snapshot
	o := snap.Outline()
	data.SnapshotID = snap.ID.String()
	data.NodeCount = snap.Graph.NodeCount()
	data.LinkCount = snap.Graph.LinkCount()
	data.Tree = BuildOutlineTree(o)
	if id, ok := st.Selection.Current(); ok {
		data.Detail = BuildDetail(o, id)
	}
	return data
}
