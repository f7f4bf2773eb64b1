package visual

import (
	"github.com/leapstack-labs/gqlvis/internal/graph"
	"github.com/leapstack-labs/gqlvis/internal/outline"
)

// Settings configure the force simulation and the canvas.
type Settings struct {
	Width           int     `json:"width"`
	NodeRelSize     int     `json:"nodeRelSize"`
	CooldownTicks   int     `json:"cooldownTicks"`
	ZoomToFitMS     int     `json:"zoomToFitMs"`
	ArrowLength     float64 `json:"arrowLength"`
	ArrowRelPos     float64 `json:"arrowRelPos"`
	PinOnDragEnd    bool    `json:"pinOnDragEnd"`
	AutoPauseRedraw bool    `json:"autoPauseRedraw"`
}

// DefaultSettings returns the renderer settings. The simulation cools down
// after a fixed number of ticks and zooms to fit once it stops; dragged nodes
// stay where they are dropped.
func DefaultSettings() Settings {
	return Settings{
		Width:           800,
		NodeRelSize:     8,
		CooldownTicks:   100,
		ZoomToFitMS:     400,
		ArrowLength:     ArrowLength,
		ArrowRelPos:     ArrowRelPos,
		PinOnDragEnd:    true,
		AutoPauseRedraw: false,
	}
}

// PayloadNode is a node as sent to the renderer.
type PayloadNode struct {
	ID        string    `json:"id"`
	IsRoot    bool      `json:"isRoot"`
	Neighbors []string  `json:"neighbors"`
	Links     []int     `json:"links"`
	Style     NodeStyle `json:"style"`
}

// PayloadLink is a link as sent to the renderer.
type PayloadLink struct {
	Index  int       `json:"index"`
	Source string    `json:"source"`
	Target string    `json:"target"`
	Name   string    `json:"name"`
	Label  string    `json:"label"`
	Style  LinkStyle `json:"style"`
}

// Payload is the full graph description consumed by the browser renderer.
type Payload struct {
	Settings Settings      `json:"settings"`
	Nodes    []PayloadNode `json:"nodes"`
	Links    []PayloadLink `json:"links"`
}

// NewPayload describes g with its resting styles. The graph must be enriched.
func NewPayload(g *graph.Graph) Payload {
	p := Payload{
		Settings: DefaultSettings(),
		Nodes:    make([]PayloadNode, 0, len(g.Nodes)),
		Links:    make([]PayloadLink, 0, len(g.Links)),
	}
	for _, n := range g.Nodes {
		pn := PayloadNode{
			ID:        n.ID,
			IsRoot:    n.IsRoot,
			Neighbors: make([]string, 0, len(n.Neighbors())),
			Links:     make([]int, 0, len(n.IncidentLinks())),
			Style:     StyleNode(n, nil),
		}
		for _, nb := range n.Neighbors() {
			pn.Neighbors = append(pn.Neighbors, nb.ID)
		}
		for _, l := range n.IncidentLinks() {
			pn.Links = append(pn.Links, l.Index)
		}
		p.Nodes = append(p.Nodes, pn)
	}
	for _, l := range g.Links {
		p.Links = append(p.Links, PayloadLink{
			Index:  l.Index,
			Source: l.Source,
			Target: l.Target,
			Name:   l.Name,
			Label:  l.Name + ": " + outline.Text(l.Target, l.Modifiers),
			Style:  StyleLink(l, nil),
		})
	}
	return p
}

// HighlightState is the answer to a hover event: which nodes and links are
// emphasized, and what is hovered.
type HighlightState struct {
	Target  string   `json:"target"`
	Hovered string   `json:"hovered,omitempty"`
	Link    *int     `json:"link,omitempty"`
	Nodes   []string `json:"nodes"`
	Links   []int    `json:"links"`
}

// NewHighlightState snapshots h.
func NewHighlightState(h *graph.Highlight) HighlightState {
	s := HighlightState{Nodes: []string{}, Links: []int{}}
	t := h.Target()
	s.Target = t.Kind.String()
	switch t.Kind {
	case graph.TargetNode:
		s.Hovered = t.Node.ID
	case graph.TargetLink:
		idx := t.Link.Index
		s.Link = &idx
	}
	for _, n := range h.Nodes() {
		s.Nodes = append(s.Nodes, n.ID)
	}
	for _, l := range h.Links() {
		s.Links = append(s.Links, l.Index)
	}
	return s
}
