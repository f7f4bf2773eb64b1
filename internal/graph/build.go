package graph

import (
	"github.com/leapstack-labs/gqlvis/pkg/schema"
)

// Default namespace and helper names excluded from the view.
const (
	DefaultMutationType    = "Mutation"
	DefaultPaginatorHelper = "PaginatorInfo"
)

// ViewOptions names the types kept out of the visualized graph.
type ViewOptions struct {
	QueryType       string
	MutationType    string
	PaginatorSuffix string
	// PaginatorHelpers are pagination-info types excluded together with
	// every link touching them.
	PaginatorHelpers []string
}

// DefaultViewOptions returns the exclusions used by most schemas.
func DefaultViewOptions() ViewOptions {
	return ViewOptions{
		QueryType:        schema.DefaultQueryType,
		MutationType:     DefaultMutationType,
		PaginatorSuffix:  schema.DefaultPaginatorSuffix,
		PaginatorHelpers: []string{DefaultPaginatorHelper},
	}
}

func (o ViewOptions) excluded() map[string]struct{} {
	ex := make(map[string]struct{}, 2+len(o.PaginatorHelpers))
	for _, name := range append([]string{o.QueryType, o.MutationType}, o.PaginatorHelpers...) {
		if name != "" {
			ex[name] = struct{}{}
		}
	}
	return ex
}

// Build derives the visualized graph from a transform result. The query and
// mutation namespaces and the pagination helpers are left out, links touching
// them are dropped, and link endpoints naming a pagination alias are
// rewritten to the paginated type.
//
// The returned graph is not enriched.
func Build(res *schema.Result, opts ViewOptions) *Graph {
	excluded := opts.excluded()

	nodes := make([]*Node, 0, len(res.Nodes))
	for _, t := range res.Nodes {
		if _, skip := excluded[t.Name]; skip {
			continue
		}
		nodes = append(nodes, newNode(t))
	}

	links := make([]*Link, 0, len(res.Edges))
	for _, e := range res.Edges {
		if _, skip := excluded[e.From]; skip {
			continue
		}
		if _, skip := excluded[e.To]; skip {
			continue
		}
		links = append(links, &Link{
			Source:    schema.TrimAlias(e.From, opts.PaginatorSuffix),
			Target:    schema.TrimAlias(e.To, opts.PaginatorSuffix),
			Name:      e.Name,
			Modifiers: e.Modifiers,
		})
	}

	return New(nodes, links)
}
