package schema

import (
	"fmt"
	"strings"
)

// Default names used by Transform.
const (
	DefaultQueryType       = "Query"
	DefaultPaginatorSuffix = "Paginator"
)

// Options controls the names Transform treats specially.
type Options struct {
	// QueryType is the name of the query namespace type whose fields mark roots.
	QueryType string
	// PaginatorSuffix is stripped from query field types to find the
	// paginated type behind an alias.
	PaginatorSuffix string
}

// DefaultOptions returns the options used by most schemas.
func DefaultOptions() Options {
	return Options{
		QueryType:       DefaultQueryType,
		PaginatorSuffix: DefaultPaginatorSuffix,
	}
}

// Diagnostic describes input that was skipped during transformation.
type Diagnostic struct {
	Type    string
	Field   string
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s.%s: %s", d.Type, d.Field, d.Message)
}

// Result is the output of Transform.
type Result struct {
	// Types holds every normalized type in schema order.
	Types []Type
	// Nodes holds the object types that become graph nodes, in schema order.
	Nodes []Type
	// Edges holds field references between nodes, ordered by source type
	// then field.
	Edges []Edge
	// Diagnostics lists query fields ignored for root marking.
	Diagnostics []Diagnostic
}

// IsInternal reports whether a type name is reserved for introspection.
func IsInternal(name string) bool {
	return strings.HasPrefix(name, "_")
}

// TrimAlias strips a trailing pagination suffix from a type name.
func TrimAlias(name, suffix string) string {
	if suffix == "" {
		return name
	}
	return strings.TrimSuffix(name, suffix)
}

// Transform normalizes the raw introspection type list and derives the object
// nodes and the edges between them.
func Transform(raw []Descriptor, opts Options) *Result {
	if opts.QueryType == "" {
		opts.QueryType = DefaultQueryType
	}

	res := &Result{
		Types: make([]Type, 0, len(raw)),
		Edges: []Edge{},
	}

	// Normalize
	index := make(map[string]int, len(raw))
	for _, d := range raw {
		t := Type{
			Name:   d.Name,
			Kind:   d.Kind,
			Fields: make([]Field, 0, len(d.Fields)),
		}
		for _, f := range d.Fields {
			t.Fields = append(t.Fields, Field{Name: f.Name, Type: Unwrap(f.Type)})
		}
		if _, dup := index[t.Name]; !dup {
			index[t.Name] = len(res.Types)
		}
		res.Types = append(res.Types, t)
	}

	// Mark roots from the query namespace
	if qi, ok := index[opts.QueryType]; ok {
		for _, f := range res.Types[qi].Fields {
			direct, okDirect := index[f.Type.Name]
			aliased, okAliased := index[TrimAlias(f.Type.Name, opts.PaginatorSuffix)]
			if !okDirect || !okAliased {
				res.Diagnostics = append(res.Diagnostics, Diagnostic{
					Type:    opts.QueryType,
					Field:   f.Name,
					Message: fmt.Sprintf("root target %q does not resolve", f.Type.Name),
				})
				continue
			}
			res.Types[direct].IsRoot = true
			res.Types[aliased].IsRoot = true
		}
	}

	// Select nodes and emit edges
	res.Nodes = make([]Type, 0, len(res.Types))
	for _, t := range res.Types {
		if t.Kind != KindObject || IsInternal(t.Name) {
			continue
		}
		res.Nodes = append(res.Nodes, t)
		for _, f := range t.Fields {
			if !f.Type.IsEdge || IsInternal(f.Type.Name) {
				continue
			}
			res.Edges = append(res.Edges, Edge{
				From:      t.Name,
				To:        f.Type.Name,
				Name:      f.Name,
				Modifiers: f.Type.Modifiers,
			})
		}
	}

	return res
}

// Node returns the retained node with the given name.
func (r *Result) Node(name string) (Type, bool) {
	for _, t := range r.Nodes {
		if t.Name == name {
			return t, true
		}
	}
	return Type{}, false
}
