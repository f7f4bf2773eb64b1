// Package visual describes how the type graph is drawn by the force-directed
// renderer: node and link styling driven by the highlight state, the renderer
// settings, and the JSON payload handed to the browser.
package visual

import (
	"github.com/leapstack-labs/gqlvis/internal/graph"
)

// Shape is the outline drawn for a node.
type Shape string

// Node shapes.
const (
	ShapeRect    Shape = "rect"
	ShapeEllipse Shape = "ellipse"
)

// Palette.
const (
	ColorRootStroke  = "green"
	ColorStroke      = "grey"
	ColorFill        = "#eee"
	ColorHoveredFill = "orange"
	ColorLabel       = "#333"
	ColorLink        = "#ccc"
	ColorHighlight   = "orange"
)

// Renderer constants.
const (
	RootWidth   = 28
	RootHeight  = 10
	EllipseRX   = 14
	EllipseRY   = 5
	LabelFont   = "5px Arial"
	LinkWidth   = 1
	LinkWidthHL = 5
	Particles   = 4
	ParticleHL  = 4
	ArrowLength = 3.5
	// ArrowRelPos places arrow heads at the end of each link.
	ArrowRelPos = 1
)

// NodeStyle is the drawing of a single node.
type NodeStyle struct {
	Shape       Shape   `json:"shape"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	Stroke      string  `json:"stroke"`
	Fill        string  `json:"fill"`
	Label       string  `json:"label"`
	LabelFont   string  `json:"labelFont"`
	LabelColor  string  `json:"labelColor"`
	Highlighted bool    `json:"highlighted"`
}

// LinkStyle is the drawing of a single link.
type LinkStyle struct {
	Width         float64 `json:"width"`
	Color         string  `json:"color"`
	Particles     int     `json:"particles"`
	ParticleWidth float64 `json:"particleWidth"`
	Highlighted   bool    `json:"highlighted"`
}

// StyleNode returns the drawing of n under the given highlight state. Root
// nodes are rectangles, everything else an ellipse; only the hovered node is
// filled with the highlight color.
func StyleNode(n *graph.Node, h *graph.Highlight) NodeStyle {
	s := NodeStyle{
		Label:      n.ID,
		LabelFont:  LabelFont,
		LabelColor: ColorLabel,
	}
	if n.IsRoot {
		s.Shape = ShapeRect
		s.Width, s.Height = RootWidth, RootHeight
		s.Stroke = ColorRootStroke
		s.Fill = "transparent"
	} else {
		s.Shape = ShapeEllipse
		s.Width, s.Height = 2*EllipseRX, 2*EllipseRY
		s.Stroke = ColorStroke
		s.Fill = ColorFill
	}
	if h != nil {
		s.Highlighted = h.NodeHighlighted(n)
		if h.IsHovered(n) {
			s.Fill = ColorHoveredFill
		}
	}
	return s
}

// StyleLink returns the drawing of l under the given highlight state.
func StyleLink(l *graph.Link, h *graph.Highlight) LinkStyle {
	s := LinkStyle{
		Width:     LinkWidth,
		Color:     ColorLink,
		Particles: Particles,
	}
	if h != nil && h.LinkHighlighted(l) {
		s.Highlighted = true
		s.Width = LinkWidthHL
		s.Color = ColorHighlight
		s.ParticleWidth = ParticleHL
	}
	return s
}
