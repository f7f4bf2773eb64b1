package outline

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/gqlvis/internal/graph"
	"github.com/leapstack-labs/gqlvis/pkg/schema"
)

func object(name string, fields ...schema.FieldDescriptor) schema.Descriptor {
	return schema.Descriptor{Name: name, Kind: schema.KindObject, Fields: fields}
}

func field(name string, t *schema.Descriptor) schema.FieldDescriptor {
	return schema.FieldDescriptor{Name: name, Type: t}
}

func objectRef(name string) *schema.Descriptor {
	return &schema.Descriptor{Name: name, Kind: schema.KindObject}
}

func scalarRef(name string) *schema.Descriptor {
	return &schema.Descriptor{Name: name, Kind: schema.KindScalar}
}

func wrap(kind schema.Kind, d *schema.Descriptor) *schema.Descriptor {
	return &schema.Descriptor{Kind: kind, OfType: d}
}

func newFleetOutline() *Outline {
	raw := []schema.Descriptor{
		object("Query", field("shipsPaginator", objectRef("ShipPaginator"))),
		object("ShipPaginator", field("data", wrap(schema.KindList, objectRef("Ship")))),
		object("Ship",
			field("crew", wrap(schema.KindNonNull, wrap(schema.KindList, wrap(schema.KindNonNull, objectRef("Person"))))),
			field("name", wrap(schema.KindNonNull, scalarRef("String"))),
		),
		object("Person", field("age", scalarRef("Int"))),
	}
	res := schema.Transform(raw, schema.DefaultOptions())
	g := graph.Enrich(graph.Build(res, graph.DefaultViewOptions()), nil)
	return New(g, res)
}

func TestText(t *testing.T) {
	tests := []struct {
		mods []schema.Modifier
		want string
	}{
		{nil, "Person"},
		{[]schema.Modifier{schema.ModNonNull}, "Person!"},
		{[]schema.Modifier{schema.ModList}, "[Person]"},
		{[]schema.Modifier{schema.ModNonNull, schema.ModList}, "[Person!]"},
		{[]schema.Modifier{schema.ModList, schema.ModNonNull}, "[Person]!"},
		{[]schema.Modifier{schema.ModNonNull, schema.ModList, schema.ModNonNull}, "[Person!]!"},
		{[]schema.Modifier{schema.ModList, schema.ModList}, "[[Person]]"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Text("Person", tt.mods))
		})
	}
}

func TestFormat_Generic(t *testing.T) {
	type node struct {
		kind  string
		inner *node
		name  string
	}
	leaf := &node{kind: "name", name: "Ship"}

	got := Format(leaf, []schema.Modifier{schema.ModNonNull, schema.ModList},
		func(n *node) *node { return &node{kind: "list", inner: n} },
		func(n *node) *node { return &node{kind: "nonnull", inner: n} },
	)

	require.Equal(t, "list", got.kind)
	require.Equal(t, "nonnull", got.inner.kind)
	assert.Same(t, leaf, got.inner.inner)
}

func TestOutline_Listing(t *testing.T) {
	o := newFleetOutline()

	entries := o.Listing()

	var lines []string
	for _, e := range entries {
		lines = append(lines, e.ID)
		for _, l := range e.Links {
			lines = append(lines, fmt.Sprintf("  %s: %s", l.Field, Text(l.Target, l.Modifiers)))
		}
	}
	assert.Equal(t, []string{
		"ShipPaginator",
		"Ship",
		"  data: [Ship]",
		"  crew: [Person!]!",
		"Person",
	}, lines)
	assert.True(t, entries[0].IsRoot)
	assert.True(t, entries[1].IsRoot)
	assert.False(t, entries[2].IsRoot)
}

func TestOutline_Detail(t *testing.T) {
	o := newFleetOutline()

	d, ok := o.Detail("Ship")
	require.True(t, ok)

	assert.Equal(t, "Ship", d.ID)
	require.Len(t, d.Fields, 2)
	assert.Equal(t, FieldEntry{
		Name:       "crew",
		Type:       "Person",
		Modifiers:  []schema.Modifier{schema.ModNonNull, schema.ModList, schema.ModNonNull},
		Selectable: true,
	}, d.Fields[0])
	assert.False(t, d.Fields[1].Selectable)
	assert.Equal(t, "String!", Text(d.Fields[1].Type, d.Fields[1].Modifiers))
}

func TestOutline_DetailOfExcludedNamespace(t *testing.T) {
	o := newFleetOutline()

	d, ok := o.Detail("Query")

	require.True(t, ok)
	assert.Equal(t, "shipsPaginator", d.Fields[0].Name)
}

func TestOutline_DetailUnknown(t *testing.T) {
	o := newFleetOutline()

	_, ok := o.Detail("Nope")
	assert.False(t, ok)
}

func TestOutline_DetailWithoutSchema(t *testing.T) {
	full := newFleetOutline()
	o := New(full.Graph(), nil)

	d, ok := o.Detail("Person")

	require.True(t, ok)
	assert.Equal(t, "age", d.Fields[0].Name)
}

func TestSelection_DrillDown(t *testing.T) {
	o := newFleetOutline()
	var sel Selection

	_, ok := sel.Current()
	assert.False(t, ok)

	sel.Select("Ship")
	d, _ := o.Detail("Ship")

	assert.False(t, sel.Follow(d, "name"), "scalar fields do not change the selection")
	id, _ := sel.Current()
	assert.Equal(t, "Ship", id)

	assert.True(t, sel.Follow(d, "crew"))
	id, ok = sel.Current()
	assert.True(t, ok)
	assert.Equal(t, "Person", id)

	assert.False(t, sel.Follow(d, "missing"))

	sel.Clear()
	_, ok = sel.Current()
	assert.False(t, ok)
}

func TestNewSelection(t *testing.T) {
	_, ok := NewSelection("").Current()
	assert.False(t, ok)

	id, ok := NewSelection("Ship").Current()
	assert.True(t, ok)
	assert.Equal(t, "Ship", id)
}
