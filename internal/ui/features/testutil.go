// Package features provides shared test utilities for UI feature tests.
package features

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/gqlvis/internal/introspect"
	"github.com/leapstack-labs/gqlvis/internal/loader"
	"github.com/leapstack-labs/gqlvis/internal/testutil"
	"github.com/leapstack-labs/gqlvis/internal/ui/features/common"
	"github.com/leapstack-labs/gqlvis/internal/ui/notifier"
)

// TestType describes an object type served by the fixture endpoint.
type TestType = testutil.TestType

// FleetSchema is the shared fleet schema; see testutil.FleetSchema.
func FleetSchema() []TestType {
	return testutil.FleetSchema()
}

// TestFixture holds all dependencies needed for UI handler tests.
type TestFixture struct {
	Deps     *common.Deps
	Server   *httptest.Server
	Endpoint string

	mu    sync.Mutex
	types []TestType
	fail  bool
}

// SetupTestFixture creates a GraphQL endpoint serving types, a loader
// pointed at it, and the shared feature dependencies.
func SetupTestFixture(t *testing.T, types ...TestType) *TestFixture {
	t.Helper()

	logger := testutil.NewTestLogger(t)
	f := &TestFixture{types: types}

	f.Server = httptest.NewServer(http.HandlerFunc(f.serveIntrospection))
	t.Cleanup(f.Server.Close)
	f.Endpoint = f.Server.URL + "/graphql"

	client := introspect.NewClient(
		introspect.WithRateLimit(0, 0),
		introspect.WithTimeout(5*time.Second),
		introspect.WithLogger(logger),
	)
	svc, err := loader.New(loader.Config{Fetcher: client, Logger: logger})
	require.NoError(t, err)

	f.Deps = &common.Deps{
		Loader:          svc,
		Workspaces:      loader.NewWorkspaces(0, logger),
		Sessions:        NewTestSessionStore(),
		Notifier:        notifier.New(),
		DefaultEndpoint: f.Endpoint,
		LoadTimeout:     5 * time.Second,
		Logger:          logger,
		IsDev:           true,
	}
	return f
}

// SetTypes replaces the schema served by the endpoint.
func (f *TestFixture) SetTypes(types ...TestType) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.types = types
}

// SetFailing makes the endpoint answer with HTTP 500.
func (f *TestFixture) SetFailing(fail bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fail = fail
}

// LoadedWorkspace returns a workspace that already shows the fixture schema.
func (f *TestFixture) LoadedWorkspace(t *testing.T) *loader.Workspace {
	t.Helper()
	ws := f.Deps.Workspaces.Get("")
	require.True(t, f.Deps.Loader.Switch(context.Background(), ws, f.Endpoint, true))
	return ws
}

// WithSession attaches the session cookie that selects ws to r.
func (f *TestFixture) WithSession(t *testing.T, r *http.Request, ws *loader.Workspace) *http.Request {
	t.Helper()
	rec := httptest.NewRecorder()
	sess, err := f.Deps.Sessions.Get(r, common.SessionName)
	require.NoError(t, err)
	sess.Values["workspace"] = ws.ID()
	require.NoError(t, sess.Save(r, rec))
	for _, c := range rec.Result().Cookies() {
		r.AddCookie(c)
	}
	return r
}

func (f *TestFixture) serveIntrospection(w http.ResponseWriter, _ *http.Request) {
	f.mu.Lock()
	types, fail := f.types, f.fail
	f.mu.Unlock()

	if fail {
		http.Error(w, "unavailable", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(testutil.IntrospectionResponse(types...))
}

// RequestWithPathParam wraps a request with chi URL params.
func RequestWithPathParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// RequestWithTimeout wraps a request with a context timeout.
func RequestWithTimeout(t *testing.T, r *http.Request, timeout time.Duration) *http.Request {
	ctx, cancel := context.WithTimeout(r.Context(), timeout)
	t.Cleanup(cancel)
	return r.WithContext(ctx)
}

// NewTestSessionStore creates a session store for testing.
func NewTestSessionStore() *sessions.CookieStore {
	return sessions.NewCookieStore([]byte("test-secret-key-32-bytes-long!!"))
}
