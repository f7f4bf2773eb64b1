package schema

// Unwrap collapses a chain of LIST and NON_NULL wrappers into the terminal
// type it wraps. Wrappers are recorded innermost first, so the field type
// [Person!]! yields Modifiers [NON_NULL, LIST, NON_NULL].
//
// A wrapper with no OfType is treated as a terminal non-object type carrying
// the wrapper's own name.
func Unwrap(d *Descriptor) TypeRef {
	if d == nil {
		return TypeRef{Modifiers: []Modifier{}}
	}
	switch d.Kind {
	case KindObject:
		return TypeRef{Name: d.Name, Modifiers: []Modifier{}, IsEdge: true}
	case KindList, KindNonNull:
		if d.OfType != nil {
			ref := Unwrap(d.OfType)
			ref.Modifiers = append(ref.Modifiers, Modifier(d.Kind))
			return ref
		}
	}
	return TypeRef{Name: d.Name, Modifiers: []Modifier{}}
}

// Descriptor rebuilds the wrapped descriptor a reference was unwrapped from.
// Edge references terminate in an OBJECT, all others in a SCALAR.
func (r TypeRef) Descriptor() *Descriptor {
	kind := KindScalar
	if r.IsEdge {
		kind = KindObject
	}
	d := &Descriptor{Name: r.Name, Kind: kind}
	for _, m := range r.Modifiers {
		d = &Descriptor{Kind: Kind(m), OfType: d}
	}
	return d
}

// Equal reports whether two references name the same type with the same
// modifiers in the same order.
func (r TypeRef) Equal(o TypeRef) bool {
	if r.Name != o.Name || r.IsEdge != o.IsEdge || len(r.Modifiers) != len(o.Modifiers) {
		return false
	}
	for i := range r.Modifiers {
		if r.Modifiers[i] != o.Modifiers[i] {
			return false
		}
	}
	return true
}
