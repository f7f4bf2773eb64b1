// Package outline is the textual, drill-down view of a type graph: a listing
// of every type with its outgoing references, and a detail view of the
// selected type's fields.
package outline

import (
	"github.com/leapstack-labs/gqlvis/internal/graph"
	"github.com/leapstack-labs/gqlvis/pkg/schema"
)

// Format wraps a rendered type name in its modifiers. The modifiers are
// applied as a left fold in the order given, which for innermost-first
// modifiers yields the usual GraphQL nesting.
func Format[T any](name T, mods []schema.Modifier, list, nonNull func(T) T) T {
	out := name
	for _, m := range mods {
		switch m {
		case schema.ModList:
			out = list(out)
		case schema.ModNonNull:
			out = nonNull(out)
		}
	}
	return out
}

// Text renders a type name with modifiers as GraphQL type syntax, e.g.
// [Person!]!.
func Text(name string, mods []schema.Modifier) string {
	return Format(name, mods,
		func(s string) string { return "[" + s + "]" },
		func(s string) string { return s + "!" },
	)
}

// LinkEntry is one outgoing reference in the listing.
type LinkEntry struct {
	Field     string            `json:"field"`
	Target    string            `json:"target"`
	Modifiers []schema.Modifier `json:"modifiers"`
}

// Entry is one type in the listing.
type Entry struct {
	ID     string      `json:"id"`
	IsRoot bool        `json:"isRoot"`
	Links  []LinkEntry `json:"links"`
}

// FieldEntry is one field of the selected type.
type FieldEntry struct {
	Name      string            `json:"name"`
	Type      string            `json:"type"`
	Modifiers []schema.Modifier `json:"modifiers"`
	// Selectable is true when the field type is an object type that can be
	// drilled into.
	Selectable bool `json:"selectable"`
}

// Detail is the field view of a single type.
type Detail struct {
	ID     string       `json:"id"`
	IsRoot bool         `json:"isRoot"`
	Fields []FieldEntry `json:"fields"`
}

// Field returns the field with the given name.
func (d Detail) Field(name string) (FieldEntry, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldEntry{}, false
}

// Outline answers listing and detail queries over a loaded schema.
type Outline struct {
	graph  *graph.Graph
	schema *schema.Result
}

// New creates an outline over the visualized graph. The transform result is
// used for detail views so that every object type, including the excluded
// namespaces, can be inspected.
func New(g *graph.Graph, res *schema.Result) *Outline {
	return &Outline{graph: g, schema: res}
}

// Graph returns the graph the outline is built on.
func (o *Outline) Graph() *graph.Graph {
	return o.graph
}

// Listing returns every node with its outgoing links.
func (o *Outline) Listing() []Entry {
	entries := make([]Entry, 0, len(o.graph.Nodes))
	for _, n := range o.graph.Nodes {
		e := Entry{ID: n.ID, IsRoot: n.IsRoot, Links: []LinkEntry{}}
		for _, l := range o.graph.Outgoing(n.ID) {
			e.Links = append(e.Links, LinkEntry{Field: l.Name, Target: l.Target, Modifiers: l.Modifiers})
		}
		entries = append(entries, e)
	}
	return entries
}

// Detail returns the fields of the type with the given id.
func (o *Outline) Detail(id string) (Detail, bool) {
	var (
		t  schema.Type
		ok bool
	)
	if o.schema != nil {
		t, ok = o.schema.Node(id)
	}
	if !ok {
		n, found := o.graph.Node(id)
		if !found {
			return Detail{}, false
		}
		t = schema.Type{Name: n.ID, IsRoot: n.IsRoot, Fields: n.Fields}
	}

	d := Detail{ID: t.Name, IsRoot: t.IsRoot, Fields: make([]FieldEntry, 0, len(t.Fields))}
	for _, f := range t.Fields {
		d.Fields = append(d.Fields, FieldEntry{
			Name:       f.Name,
			Type:       f.Type.Name,
			Modifiers:  f.Type.Modifiers,
			Selectable: f.Type.IsEdge,
		})
	}
	return d, true
}
