package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/leapstack-labs/gqlvis/pkg/schema"
)

// TestType is a helper to describe object types with minimal boilerplate.
// Fields map a field name to a GraphQL type expression such as "[Ship!]!",
// "String" or "Int!". Names listed in Scalars are scalar terminals; every
// other name is an object type.
type TestType struct {
	Name   string
	Fields [][2]string
}

// Scalars are the terminal names treated as scalars by TestType.
var Scalars = map[string]bool{"String": true, "Int": true, "Float": true, "Boolean": true, "ID": true}

// FleetSchema is a small schema with a paginated root, a pagination helper
// and a cycle.
//
// Visualized graph: nodes ShipPaginator, Ship, Person, Port; links
// Ship.data -> Ship, Ship.crew -> Person, Ship.home -> Port,
// Person.ship -> Ship.
func FleetSchema() []TestType {
	return []TestType{
		{Name: "Query", Fields: [][2]string{{"shipsPaginator", "ShipPaginator"}, {"port", "Port"}}},
		{Name: "ShipPaginator", Fields: [][2]string{{"data", "[Ship!]!"}, {"paginatorInfo", "PaginatorInfo!"}}},
		{Name: "PaginatorInfo", Fields: [][2]string{{"total", "Int!"}}},
		{Name: "Ship", Fields: [][2]string{{"name", "String!"}, {"crew", "[Person!]!"}, {"home", "Port"}}},
		{Name: "Person", Fields: [][2]string{{"name", "String"}, {"ship", "Ship"}}},
		{Name: "Port", Fields: [][2]string{{"name", "String"}}},
	}
}

// Descriptors converts test types to raw type descriptors.
func Descriptors(types ...TestType) []schema.Descriptor {
	raw := make([]schema.Descriptor, 0, len(types))
	for _, tt := range types {
		d := schema.Descriptor{Name: tt.Name, Kind: schema.KindObject}
		for _, fld := range tt.Fields {
			d.Fields = append(d.Fields, schema.FieldDescriptor{Name: fld[0], Type: ParseTypeExpr(fld[1])})
		}
		raw = append(raw, d)
	}
	return raw
}

// ParseTypeExpr turns a GraphQL type expression into a nested descriptor.
func ParseTypeExpr(expr string) *schema.Descriptor {
	if n := len(expr); n > 0 && expr[n-1] == '!' {
		return &schema.Descriptor{Kind: schema.KindNonNull, OfType: ParseTypeExpr(expr[:n-1])}
	}
	if n := len(expr); n > 1 && expr[0] == '[' && expr[n-1] == ']' {
		return &schema.Descriptor{Kind: schema.KindList, OfType: ParseTypeExpr(expr[1 : n-1])}
	}
	if Scalars[expr] {
		return &schema.Descriptor{Name: expr, Kind: schema.KindScalar}
	}
	return &schema.Descriptor{Name: expr, Kind: schema.KindObject}
}

// IntrospectionResponse wraps types in the introspection response envelope.
func IntrospectionResponse(types ...TestType) any {
	var resp struct {
		Data struct {
			Schema struct {
				Types []schema.Descriptor `json:"types"`
			} `json:"__schema"`
		} `json:"data"`
	}
	resp.Data.Schema.Types = Descriptors(types...)
	return resp
}

// WriteIntrospectionFile saves an introspection response for types to
// dir/schema.json and returns the path.
func WriteIntrospectionFile(t testing.TB, dir string, types ...TestType) string {
	t.Helper()
	data, err := json.Marshal(IntrospectionResponse(types...))
	if err != nil {
		t.Fatalf("marshal introspection response: %v", err)
	}
	path := filepath.Join(dir, "schema.json")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write introspection file: %v", err)
	}
	return path
}
