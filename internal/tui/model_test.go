package tui

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/gqlvis/internal/cli/output"
	"github.com/leapstack-labs/gqlvis/internal/graph"
	"github.com/leapstack-labs/gqlvis/internal/outline"
	"github.com/leapstack-labs/gqlvis/pkg/schema"
)

func object(name string, fields ...schema.FieldDescriptor) schema.Descriptor {
	return schema.Descriptor{Name: name, Kind: schema.KindObject, Fields: fields}
}

func field(name string, t *schema.Descriptor) schema.FieldDescriptor {
	return schema.FieldDescriptor{Name: name, Type: t}
}

func ref(kind schema.Kind, name string) *schema.Descriptor {
	return &schema.Descriptor{Name: name, Kind: kind}
}

func wrap(kind schema.Kind, d *schema.Descriptor) *schema.Descriptor {
	return &schema.Descriptor{Kind: kind, OfType: d}
}

// Listing: ShipPaginator; Ship (data: [Ship], crew: [Person!]!); Person.
func newFleetOutline() *outline.Outline {
	raw := []schema.Descriptor{
		object("Query", field("shipsPaginator", ref(schema.KindObject, "ShipPaginator"))),
		object("ShipPaginator", field("data", wrap(schema.KindList, ref(schema.KindObject, "Ship")))),
		object("Ship",
			field("crew", wrap(schema.KindNonNull, wrap(schema.KindList, wrap(schema.KindNonNull, ref(schema.KindObject, "Person"))))),
			field("name", wrap(schema.KindNonNull, ref(schema.KindScalar, "String"))),
		),
		object("Person", field("age", ref(schema.KindScalar, "Int"))),
	}
	res := schema.Transform(raw, schema.DefaultOptions())
	g := graph.Enrich(graph.Build(res, graph.DefaultViewOptions()), nil)
	return outline.New(g, res)
}

func plainStyles() *output.Styles {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return output.NewStyles(r)
}

func newTestModel(sel string) Model {
	return New(newFleetOutline(), Config{Title: "fleet.json", Select: sel, Styles: plainStyles()})
}

var (
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func highlighted(h *graph.Highlight) []string {
	var ids []string
	for _, n := range h.Nodes() {
		ids = append(ids, n.ID)
	}
	return ids
}

func TestNew_StartsOnListing(t *testing.T) {
	m := newTestModel("")

	_, ok := m.Selection().Current()
	assert.False(t, ok)
	assert.Equal(t, 0, m.Cursor())

	target := m.Highlight().Target()
	require.Equal(t, graph.TargetNode, target.Kind)
	assert.Equal(t, "ShipPaginator", target.Node.ID)
}

func TestCursorHighlightsNeighbors(t *testing.T) {
	m := press(t, newTestModel(""), keyDown)

	assert.Equal(t, 1, m.Cursor())
	assert.Equal(t, "Ship", m.Highlight().Target().Node.ID)
	assert.Equal(t, []string{"Ship", "Person"}, highlighted(m.Highlight()))

	m = press(t, m, runes("k"), runes("k"))
	assert.Equal(t, 0, m.Cursor(), "cursor stops at the top")

	m = press(t, m, runes("G"))
	assert.Equal(t, 2, m.Cursor())
	m = press(t, m, keyDown)
	assert.Equal(t, 2, m.Cursor(), "cursor stops at the bottom")

	m = press(t, m, runes("g"))
	assert.Equal(t, 0, m.Cursor())
}

func TestDrillDown(t *testing.T) {
	m := press(t, newTestModel(""), keyDown, keyEnter)

	id, ok := m.Selection().Current()
	require.True(t, ok)
	assert.Equal(t, "Ship", id)
	assert.Equal(t, 0, m.Cursor())

	// The cursor is on crew, which is a graph link.
	target := m.Highlight().Target()
	require.Equal(t, graph.TargetLink, target.Kind)
	assert.Equal(t, "crew", target.Link.Name)
	assert.Equal(t, []string{"Ship", "Person"}, highlighted(m.Highlight()))

	// Scalar fields cannot be followed.
	m = press(t, m, keyDown)
	assert.Equal(t, graph.TargetNode, m.Highlight().Target().Kind)
	m = press(t, m, keyEnter)
	id, _ = m.Selection().Current()
	assert.Equal(t, "Ship", id)

	m = press(t, m, keyUp, keyEnter)
	id, _ = m.Selection().Current()
	assert.Equal(t, "Person", id)
	assert.Equal(t, "Person", m.Highlight().Target().Node.ID)
}

func TestHomeReturnsToListing(t *testing.T) {
	m := press(t, newTestModel("Person"), keyEsc)

	_, ok := m.Selection().Current()
	assert.False(t, ok)
	assert.Equal(t, 2, m.Cursor(), "cursor lands on the type that was open")

	m = press(t, m, keyEsc)
	assert.Equal(t, 2, m.Cursor(), "home on the listing is a no-op")
}

func TestUnknownSelection(t *testing.T) {
	m := newTestModel("Nope")

	assert.Contains(t, m.View(), "Type not found in this schema.")
	assert.Equal(t, graph.TargetNone, m.Highlight().Target().Kind)

	m = press(t, m, keyDown, keyEnter)
	id, _ := m.Selection().Current()
	assert.Equal(t, "Nope", id)
}

func TestExcludedNamespaceIsInspectable(t *testing.T) {
	m := newTestModel("Query")

	view := m.View()
	assert.Contains(t, view, "Types › Query")
	assert.Contains(t, view, "shipsPaginator: ShipPaginator")

	m = press(t, m, keyEnter)
	id, _ := m.Selection().Current()
	assert.Equal(t, "ShipPaginator", id)
}

func TestView(t *testing.T) {
	m := newTestModel("")

	view := m.View()
	assert.Contains(t, view, "gqlvis fleet.json")
	assert.Contains(t, view, "Types (3)")
	assert.Contains(t, view, "Ship\n    data: [Ship]\n    crew: [Person!]!")
	assert.Contains(t, view, "● ShipPaginator")

	m = press(t, m, keyEnter)
	view = m.View()
	assert.Contains(t, view, "Types › ShipPaginator")
	assert.Contains(t, view, "data: [Ship]")
}

func TestWindowSizeScrollsCursorIntoView(t *testing.T) {
	m := press(t, newTestModel(""), tea.WindowSizeMsg{Width: 40, Height: headerHeight + footerHeight + 2})

	require.True(t, m.ready)
	assert.Equal(t, 2, m.viewport.Height)
	assert.Equal(t, 0, m.viewport.YOffset)

	m = press(t, m, runes("G"))
	assert.Equal(t, 3, m.viewport.YOffset)
	assert.Contains(t, m.View(), "Person")

	m = press(t, m, runes("g"))
	assert.Equal(t, 0, m.viewport.YOffset)
}

func TestQuit(t *testing.T) {
	m := newTestModel("")

	next, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, next.View())
}

func TestHelpToggle(t *testing.T) {
	m := press(t, newTestModel(""), runes("?"))
	assert.True(t, m.help.ShowAll)

	m = press(t, m, runes("?"))
	assert.False(t, m.help.ShowAll)
}
