package home

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/leapstack-labs/gqlvis/internal/testutil"
	"github.com/leapstack-labs/gqlvis/internal/ui/features"
)

// =============================================================================
// Test Setup Helpers
// =============================================================================

func setupTestHandlers(t *testing.T) (*Handlers, *features.TestFixture) {
	t.Helper()

	fixture := features.SetupTestFixture(t, features.FleetSchema()...)
	return NewHandlers(fixture.Deps), fixture
}

// findByID returns the element with the given id attribute.
func findByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode {
		for _, a := range n.Attr {
			if a.Key == "id" && a.Val == id {
				return n
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

// textOf concatenates the text content below n.
func textOf(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// =============================================================================
// HomePage Tests - Full HTML page responses
// =============================================================================

func TestHomePage_FirstVisitShowsLoading(t *testing.T) {
	h, fixture := setupTestHandlers(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	h.HomePage(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	for _, want := range []string{
		"<!doctype html>",
		"<title>Schema - gqlvis</title>",
		"data-init",
		"/updates",
		`id="ui-content"`,
		`id="loading"`,
	} {
		assert.Contains(t, body, want)
	}
	assert.NotEmpty(t, rec.Result().Cookies(), "first visit stores the workspace in the session")

	// The default endpoint is loaded in the background.
	ws := fixture.Deps.Workspaces.Get(sessionWorkspace(t, fixture, rec))
	require.Eventually(t, func() bool { return ws.State().Ready() }, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, fixture.Endpoint, ws.State().Endpoint)
}

func TestHomePage_RendersOutlineAndGraph(t *testing.T) {
	h, fixture := setupTestHandlers(t)
	ws := fixture.LoadedWorkspace(t)

	req := fixture.WithSession(t, httptest.NewRequest(http.MethodGet, "/", nil), ws)
	rec := httptest.NewRecorder()

	h.HomePage(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	doc, err := html.Parse(strings.NewReader(rec.Body.String()))
	require.NoError(t, err)

	assert.Nil(t, findByID(doc, "loading"))
	require.NotNil(t, findByID(doc, "graph"))

	outline := findByID(doc, "outline")
	require.NotNil(t, outline)
	text := textOf(outline)
	assert.Contains(t, text, "crew: [Person!]!")
	assert.Contains(t, text, "data: [Ship!]!")
	assert.Contains(t, text, "home: Port")
	assert.NotContains(t, text, "PaginatorInfo")
	assert.NotContains(t, text, "Query")

	ship := findByID(doc, "type-Ship")
	require.NotNil(t, ship)
	assert.Contains(t, attr(ship, "class"), "root")
	person := findByID(doc, "type-Person")
	require.NotNil(t, person)
	assert.Empty(t, attr(person, "class"))
}

func TestHomePage_RendersSelection(t *testing.T) {
	h, fixture := setupTestHandlers(t)
	ws := fixture.LoadedWorkspace(t)
	ws.Select("Ship")

	req := fixture.WithSession(t, httptest.NewRequest(http.MethodGet, "/", nil), ws)
	rec := httptest.NewRecorder()

	h.HomePage(rec, req)

	body := rec.Body.String()
	assert.Contains(t, body, "<h2 class=\"root\">Ship</h2>")
	assert.Contains(t, body, "/outline/home")
	assert.Contains(t, body, `<span class="type">String!</span>`)
	assert.Contains(t, body, "@get(&#39;/outline/select/Person&#39;)")
}

// =============================================================================
// HomePageUpdates Tests - SSE endpoint for live updates only
// =============================================================================

func TestHomePageUpdates_SendsShellOnNotify(t *testing.T) {
	h, fixture := setupTestHandlers(t)
	ws := fixture.LoadedWorkspace(t)

	req := fixture.WithSession(t, httptest.NewRequest(http.MethodGet, "/updates", nil), ws)
	ctx, cancel := context.WithTimeout(req.Context(), 300*time.Millisecond)
	defer cancel()
	req = req.WithContext(ctx)
	rec := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		h.HomePageUpdates(rec, req)
		close(done)
	}()

	require.Eventually(t, func() bool { return fixture.Deps.Notifier.Len() == 1 }, time.Second, 5*time.Millisecond)
	fixture.Deps.Notifier.Notify(ws.ID())

	<-done

	body := rec.Body.String()
	assert.GreaterOrEqual(t, strings.Count(body, "event:"), 1)
	assert.Contains(t, body, "ui-content")
	assert.Contains(t, body, "crew: ")
}

func TestHomePageUpdates_IgnoresOtherWorkspaces(t *testing.T) {
	h, fixture := setupTestHandlers(t)
	ws := fixture.LoadedWorkspace(t)

	req := fixture.WithSession(t, httptest.NewRequest(http.MethodGet, "/updates", nil), ws)
	ctx, cancel := context.WithTimeout(req.Context(), 150*time.Millisecond)
	defer cancel()
	req = req.WithContext(ctx)
	rec := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		h.HomePageUpdates(rec, req)
		close(done)
	}()

	require.Eventually(t, func() bool { return fixture.Deps.Notifier.Len() == 1 }, time.Second, 5*time.Millisecond)
	fixture.Deps.Notifier.Notify("someone-else")

	<-done
	assert.Equal(t, 0, strings.Count(rec.Body.String(), "event:"))
}

func TestHomePageUpdates_NoInitialState(t *testing.T) {
	h, fixture := setupTestHandlers(t)
	ws := fixture.LoadedWorkspace(t)

	req := fixture.WithSession(t, httptest.NewRequest(http.MethodGet, "/updates", nil), ws)
	ctx, cancel := context.WithTimeout(req.Context(), 50*time.Millisecond)
	defer cancel()
	req = req.WithContext(ctx)
	rec := httptest.NewRecorder()

	h.HomePageUpdates(rec, req)

	assert.Equal(t, 0, strings.Count(rec.Body.String(), "event:"))
}

// =============================================================================
// SetEndpoint / Refresh Tests
// =============================================================================

func postSignals(t *testing.T, path, body string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestSetEndpoint_LoadsNewSchema(t *testing.T) {
	h, fixture := setupTestHandlers(t)
	ws := fixture.LoadedWorkspace(t)
	ws.Select("Ship")

	other := features.SetupTestFixture(t, features.TestType{
		Name:   "Query",
		Fields: [][2]string{{"rocket", "Rocket"}},
	}, features.TestType{
		Name:   "Rocket",
		Fields: [][2]string{{"name", "String"}},
	})

	req := fixture.WithSession(t, postSignals(t, "/endpoint", `{"url": " `+other.Endpoint+` "}`), ws)
	rec := httptest.NewRecorder()

	h.SetEndpoint(rec, req)

	body := rec.Body.String()
	assert.Equal(t, 2, strings.Count(body, "event:"), "loading state then loaded shell")
	assert.Contains(t, body, "type-Rocket")

	st := ws.State()
	assert.Equal(t, other.Endpoint, st.Endpoint)
	assert.False(t, st.Loading)
	_, selected := st.Selection.Current()
	assert.False(t, selected, "switching endpoints clears the selection")
}

func TestSetEndpoint_FailureKeepsPreviousGraph(t *testing.T) {
	h, fixture := setupTestHandlers(t)
	ws := fixture.LoadedWorkspace(t)
	before := ws.State().Snapshot

	broken := features.SetupTestFixture(t)
	broken.SetFailing(true)

	req := fixture.WithSession(t, postSignals(t, "/endpoint", `{"url": "`+broken.Endpoint+`"}`), ws)
	rec := httptest.NewRecorder()

	h.SetEndpoint(rec, req)

	st := ws.State()
	assert.Same(t, before, st.Snapshot)
	assert.Error(t, st.Err)
	assert.Equal(t, broken.Endpoint, st.Endpoint)
}

func TestSetEndpoint_EmptyURLIsIgnored(t *testing.T) {
	h, fixture := setupTestHandlers(t)
	ws := fixture.LoadedWorkspace(t)
	endpoint := ws.State().Endpoint

	req := fixture.WithSession(t, postSignals(t, "/endpoint", `{"url": "  "}`), ws)
	rec := httptest.NewRecorder()

	h.SetEndpoint(rec, req)

	assert.Equal(t, endpoint, ws.State().Endpoint)
	assert.Equal(t, 1, strings.Count(rec.Body.String(), "event:"))
}

func urlSignals(t *testing.T, endpoint string) string {
	t.Helper()
	b, err := json.Marshal(EndpointSignals{URL: endpoint})
	require.NoError(t, err)
	return string(b)
}

func TestSetEndpoint_FileEndpoints(t *testing.T) {
	h, fixture := setupTestHandlers(t)
	ws := fixture.LoadedWorkspace(t)
	before := ws.State()

	dir := t.TempDir()
	schemaPath := testutil.WriteIntrospectionFile(t, dir, features.FleetSchema()...)

	for _, endpoint := range []string{schemaPath, "file://" + schemaPath, "/etc/passwd"} {
		req := fixture.WithSession(t, postSignals(t, "/endpoint", urlSignals(t, endpoint)), ws)
		rec := httptest.NewRecorder()

		h.SetEndpoint(rec, req)

		assert.Contains(t, rec.Body.String(), "is not an allowed endpoint", endpoint)
		assert.Equal(t, before.Endpoint, ws.State().Endpoint, endpoint)
		assert.Same(t, before.Snapshot, ws.State().Snapshot, endpoint)
	}

	fixture.Deps.AllowFiles = []string{schemaPath}
	req := fixture.WithSession(t, postSignals(t, "/endpoint", urlSignals(t, "file://"+schemaPath)), ws)
	rec := httptest.NewRecorder()

	h.SetEndpoint(rec, req)

	st := ws.State()
	assert.Equal(t, "file://"+schemaPath, st.Endpoint)
	require.True(t, st.Ready())
	assert.NotSame(t, before.Snapshot, st.Snapshot)
	assert.Contains(t, rec.Body.String(), "type-Ship")
}

func TestSetEndpoint_BadSignals(t *testing.T) {
	h, _ := setupTestHandlers(t)

	rec := httptest.NewRecorder()
	h.SetEndpoint(rec, postSignals(t, "/endpoint", `{not json`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRefresh_RefetchesSchema(t *testing.T) {
	h, fixture := setupTestHandlers(t)
	ws := fixture.LoadedWorkspace(t)

	fixture.SetTypes(append(features.FleetSchema(), features.TestType{
		Name:   "Dock",
		Fields: [][2]string{{"port", "Port"}},
	})...)

	req := fixture.WithSession(t, postSignals(t, "/refresh", `{}`), ws)
	rec := httptest.NewRecorder()

	h.Refresh(rec, req)

	_, ok := ws.State().Snapshot.Graph.Node("Dock")
	assert.True(t, ok)
	assert.Contains(t, rec.Body.String(), "type-Dock")
}

func sessionWorkspace(t *testing.T, fixture *features.TestFixture, rec *httptest.ResponseRecorder) string {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	sess, err := fixture.Deps.Sessions.Get(req, "gqlvis")
	require.NoError(t, err)
	id, _ := sess.Values["workspace"].(string)
	require.NotEmpty(t, id)
	return id
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
