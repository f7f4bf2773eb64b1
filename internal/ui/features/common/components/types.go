// Package components renders the HTML fragments of the UI. Every top-level
// fragment carries a stable id so it can be morphed in place over SSE.
package components

// TreeNode is an entry of the outline listing: a type with its outgoing
// references as children. For references, Name is the field, Path the target
// type and Label the target in GraphQL type syntax.
type TreeNode struct {
	Name     string
	Path     string
	Type     string // "type" or "link"
	Label    string
	Root     bool
	Children []TreeNode
}

// FieldItem is one field in the detail view.
type FieldItem struct {
	Name string
	// TypeLabel is the field type in GraphQL syntax, e.g. [Person!]!.
	TypeLabel  string
	Target     string
	Selectable bool
}

// DetailData is the detail view of the selected type.
type DetailData struct {
	ID       string
	IsRoot   bool
	Fields   []FieldItem
	NotFound bool
}

// AppData holds everything needed to render the main shell.
type AppData struct {
	Endpoint   string
	Ready      bool
	Loading    bool
	SnapshotID string
	Tree       []TreeNode
	Detail     *DetailData
	NodeCount  int
	LinkCount  int
}
