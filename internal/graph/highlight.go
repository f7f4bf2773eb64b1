package graph

// TargetKind is what the pointer is currently over.
type TargetKind int

// Hover target kinds.
const (
	TargetNone TargetKind = iota
	TargetNode
	TargetLink
)

func (k TargetKind) String() string {
	switch k {
	case TargetNode:
		return "node"
	case TargetLink:
		return "link"
	default:
		return "none"
	}
}

// Target is the hovered element.
type Target struct {
	Kind TargetKind
	Node *Node
	Link *Link
}

// Highlight tracks the hovered element and the nodes and links emphasized
// with it. Every hover event replaces the previous sets.
//
// Highlight is not safe for concurrent use; it belongs to one view.
type Highlight struct {
	graph  *Graph
	target Target
	nodes  map[*Node]struct{}
	links  map[*Link]struct{}
}

// NewHighlight creates an empty highlight state over an enriched graph.
func NewHighlight(g *Graph) *Highlight {
	return &Highlight{
		graph: g,
		nodes: make(map[*Node]struct{}),
		links: make(map[*Link]struct{}),
	}
}

func (h *Highlight) reset() {
	h.target = Target{}
	h.nodes = make(map[*Node]struct{})
	h.links = make(map[*Link]struct{})
}

// HoverNode highlights n, its neighbors and its incident links. A nil n
// clears the highlight.
func (h *Highlight) HoverNode(n *Node) {
	h.reset()
	if n == nil {
		return
	}
	h.target = Target{Kind: TargetNode, Node: n}
	h.nodes[n] = struct{}{}
	for _, m := range n.neighbors {
		h.nodes[m] = struct{}{}
	}
	for _, l := range n.links {
		h.links[l] = struct{}{}
	}
}

// HoverLink highlights l and its two endpoints. A nil l clears the
// highlight.
func (h *Highlight) HoverLink(l *Link) {
	h.reset()
	if l == nil {
		return
	}
	h.target = Target{Kind: TargetLink, Link: l}
	h.links[l] = struct{}{}
	if n, ok := h.graph.Node(l.Source); ok {
		h.nodes[n] = struct{}{}
	}
	if n, ok := h.graph.Node(l.Target); ok {
		h.nodes[n] = struct{}{}
	}
}

// Target returns the hovered element.
func (h *Highlight) Target() Target {
	return h.target
}

// IsHovered reports whether n itself is the hover target. Nodes that are only
// highlighted as neighbors are not hovered.
func (h *Highlight) IsHovered(n *Node) bool {
	return h.target.Kind == TargetNode && h.target.Node == n
}

// NodeHighlighted reports whether n is in the highlighted node set.
func (h *Highlight) NodeHighlighted(n *Node) bool {
	_, ok := h.nodes[n]
	return ok
}

// LinkHighlighted reports whether l is in the highlighted link set.
func (h *Highlight) LinkHighlighted(l *Link) bool {
	_, ok := h.links[l]
	return ok
}

// Nodes returns the highlighted nodes in graph order.
func (h *Highlight) Nodes() []*Node {
	out := make([]*Node, 0, len(h.nodes))
	for _, n := range h.graph.Nodes {
		if _, ok := h.nodes[n]; ok {
			out = append(out, n)
		}
	}
	return out
}

// Links returns the highlighted links in graph order.
func (h *Highlight) Links() []*Link {
	out := make([]*Link, 0, len(h.links))
	for _, l := range h.graph.Links {
		if _, ok := h.links[l]; ok {
			out = append(out, l)
		}
	}
	return out
}
