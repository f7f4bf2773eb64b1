package graph

import (
	"github.com/leapstack-labs/gqlvis/pkg/schema"
)

func obj(name string, fields ...schema.FieldDescriptor) schema.Descriptor {
	return schema.Descriptor{Name: name, Kind: schema.KindObject, Fields: fields}
}

func fld(name string, t *schema.Descriptor) schema.FieldDescriptor {
	return schema.FieldDescriptor{Name: name, Type: t}
}

func to(name string) *schema.Descriptor {
	return &schema.Descriptor{Name: name, Kind: schema.KindObject}
}

func nn(d *schema.Descriptor) *schema.Descriptor {
	return &schema.Descriptor{Kind: schema.KindNonNull, OfType: d}
}

func lst(d *schema.Descriptor) *schema.Descriptor {
	return &schema.Descriptor{Kind: schema.KindList, OfType: d}
}

// fleetSchema is a small paginated schema:
//
//	Query.shipsPaginator -> ShipPaginator -> [Ship!]!, PaginatorInfo
//	Ship.crew -> [Person!]!, Ship.home -> Port
//	Person.ship -> Ship
//	Mutation.launch -> Ship
func fleetSchema() []schema.Descriptor {
	return []schema.Descriptor{
		obj("Query",
			fld("shipsPaginator", nn(to("ShipPaginator"))),
			fld("port", to("Port")),
		),
		obj("Mutation", fld("launch", to("Ship"))),
		obj("ShipPaginator",
			fld("data", nn(lst(nn(to("Ship"))))),
			fld("paginatorInfo", nn(to("PaginatorInfo"))),
		),
		obj("PaginatorInfo", fld("total", &schema.Descriptor{Name: "Int", Kind: schema.KindScalar})),
		obj("Ship",
			fld("crew", nn(lst(nn(to("Person"))))),
			fld("home", to("Port")),
			fld("name", &schema.Descriptor{Name: "String", Kind: schema.KindScalar}),
		),
		obj("Person", fld("ship", to("Ship"))),
		obj("Port"),
		obj("__Schema", fld("types", lst(to("__Type")))),
	}
}

func fleetGraph() *Graph {
	res := schema.Transform(fleetSchema(), schema.DefaultOptions())
	return Enrich(Build(res, DefaultViewOptions()), nil)
}

func ids(nodes []*Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.ID)
	}
	return out
}

type edge struct{ from, to, name string }

func edges(links []*Link) []edge {
	out := make([]edge, 0, len(links))
	for _, l := range links {
		out = append(out, edge{l.Source, l.Target, l.Name})
	}
	return out
}
