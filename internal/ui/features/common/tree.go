package common

import (
	"github.com/leapstack-labs/gqlvis/internal/outline"
	"github.com/leapstack-labs/gqlvis/internal/ui/features/common/components"
)

// BuildOutlineTree converts the outline listing into tree nodes, one per type
// with its outgoing references as children.
func BuildOutlineTree(o *outline.Outline) []components.TreeNode {
	entries := o.Listing()
	result := make([]components.TreeNode, 0, len(entries))
	for _, e := range entries {
		node := components.TreeNode{
			Name:     e.ID,
			Path:     e.ID,
			Type:     "type",
			Root:     e.IsRoot,
			Children: make([]components.TreeNode, 0, len(e.Links)),
		}
		for _, l := range e.Links {
			node.Children = append(node.Children, components.TreeNode{
				Name:  l.Field,
				Path:  l.Target,
				Type:  "link",
				Label: outline.Text(l.Target, l.Modifiers),
			})
		}
		result = append(result, node)
	}
	return result
}

// BuildDetail converts the detail of id into its view data. Unknown ids
// produce a not-found detail.
func BuildDetail(o *outline.Outline, id string) *components.DetailData {
	d, ok := o.Detail(id)
	if !ok {
		return &components.DetailData{ID: id, NotFound: true}
	}
	data := &components.DetailData{
		ID:     d.ID,
		IsRoot: d.IsRoot,
		Fields: make([]components.FieldItem, 0, len(d.Fields)),
	}
	for _, f := range d.Fields {
		data.Fields = append(data.Fields, components.FieldItem{
			Name:       f.Name,
			TypeLabel:  outline.Text(f.Type, f.Modifiers),
			Target:     f.Type,
			Selectable: f.Selectable,
		})
	}
	return data
}
