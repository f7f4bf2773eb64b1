// Package schema turns the type list returned by a GraphQL introspection
// query into a flat set of object types and the directed field references
// between them.
//
// The input is the raw, recursively wrapped type description produced by the
// endpoint (see Descriptor). Transform normalizes every type, marks the
// entry-point types reachable from the query namespace, and emits one Edge per
// field that refers to another object type. List and non-null wrappers are
// peeled off by Unwrap and carried on each edge as Modifiers.
//
// The package is pure: it performs no I/O and holds no state, so results are
// deterministic for a given input order.
package schema
