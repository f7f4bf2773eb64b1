package schema

// Kind is the introspection kind of a type descriptor.
type Kind string

// Introspection kinds.
const (
	KindObject      Kind = "OBJECT"
	KindList        Kind = "LIST"
	KindNonNull     Kind = "NON_NULL"
	KindScalar      Kind = "SCALAR"
	KindEnum        Kind = "ENUM"
	KindInterface   Kind = "INTERFACE"
	KindUnion       Kind = "UNION"
	KindInputObject Kind = "INPUT_OBJECT"
)

// IsWrapper reports whether the kind wraps another descriptor via OfType.
func (k Kind) IsWrapper() bool {
	return k == KindList || k == KindNonNull
}

// Descriptor is a type as described by the endpoint. Top-level entries of
// the introspection type list carry Fields; field types nest wrappers through
// OfType.
type Descriptor struct {
	Name   string            `json:"name"`
	Kind   Kind              `json:"kind"`
	Fields []FieldDescriptor `json:"fields,omitempty"`
	OfType *Descriptor       `json:"ofType,omitempty"`
}

// FieldDescriptor is a field of an object or interface type.
type FieldDescriptor struct {
	Name string      `json:"name"`
	Type *Descriptor `json:"type"`
}

// Modifier is a wrapper peeled off a field type.
type Modifier string

// Modifiers recorded on type references.
const (
	ModList    Modifier = "LIST"
	ModNonNull Modifier = "NON_NULL"
)

// TypeRef is the terminal type of a field after all wrappers are removed.
type TypeRef struct {
	Name string `json:"name"`
	// Modifiers lists the wrappers innermost first.
	Modifiers []Modifier `json:"modifiers"`
	// IsEdge is true when the terminal type is an object type.
	IsEdge bool `json:"isEdge"`
}

// Field is a normalized field: its name and unwrapped type.
type Field struct {
	Name string  `json:"name"`
	Type TypeRef `json:"type"`
}

// Type is a normalized introspection type.
type Type struct {
	Name   string  `json:"name"`
	Kind   Kind    `json:"kind"`
	Fields []Field `json:"fields"`
	IsRoot bool    `json:"isRoot"`
}

// Edge is a reference from one object type to another through a field.
type Edge struct {
	From      string     `json:"from"`
	To        string     `json:"to"`
	Name      string     `json:"name"`
	Modifiers []Modifier `json:"modifiers"`
}
