// Package graph holds the visualized type graph: object nodes connected by
// directed field links, the adjacency attached to each node by Enrich, and
// the hover highlight state consumed by renderers.
package graph

import (
	"github.com/leapstack-labs/gqlvis/pkg/schema"
)

// Node is an object type in the visualized graph.
//
// Neighbor and incident-link sets are declared up front and filled once by
// Enrich. The graph is generally cyclic, so they are kept out of JSON.
type Node struct {
	ID     string         `json:"id"`
	IsRoot bool           `json:"isRoot"`
	Fields []schema.Field `json:"fields"`

	neighbors   []*Node
	neighborSet map[*Node]struct{}
	links       []*Link
	linkSet     map[*Link]struct{}
}

func newNode(t schema.Type) *Node {
	return &Node{
		ID:          t.Name,
		IsRoot:      t.IsRoot,
		Fields:      t.Fields,
		neighbors:   []*Node{},
		neighborSet: make(map[*Node]struct{}),
		links:       []*Link{},
		linkSet:     make(map[*Link]struct{}),
	}
}

// Neighbors returns the nodes sharing a link with n, in discovery order.
func (n *Node) Neighbors() []*Node {
	return n.neighbors
}

// IncidentLinks returns the links touching n, in link order.
func (n *Node) IncidentLinks() []*Link {
	return n.links
}

// HasNeighbor reports whether m shares a link with n.
func (n *Node) HasNeighbor(m *Node) bool {
	_, ok := n.neighborSet[m]
	return ok
}

// HasLink reports whether l touches n.
func (n *Node) HasLink(l *Link) bool {
	_, ok := n.linkSet[l]
	return ok
}

func (n *Node) addNeighbor(m *Node) {
	if _, ok := n.neighborSet[m]; ok {
		return
	}
	n.neighborSet[m] = struct{}{}
	n.neighbors = append(n.neighbors, m)
}

func (n *Node) addLink(l *Link) {
	if _, ok := n.linkSet[l]; ok {
		return
	}
	n.linkSet[l] = struct{}{}
	n.links = append(n.links, l)
}

// Link is a directed reference from the type Source to the type Target
// through the field Name.
type Link struct {
	Index     int               `json:"index"`
	Source    string            `json:"source"`
	Target    string            `json:"target"`
	Name      string            `json:"name"`
	Modifiers []schema.Modifier `json:"modifiers"`
}

// Graph is the node set and ordered link list shown to the user.
type Graph struct {
	Nodes []*Node `json:"nodes"`
	Links []*Link `json:"links"`

	byID     map[string]*Node
	enriched bool
	dropped  []*Link
}

// New creates a graph from nodes and links. Later nodes with a duplicate id
// are ignored.
func New(nodes []*Node, links []*Link) *Graph {
	g := &Graph{
		Nodes: make([]*Node, 0, len(nodes)),
		Links: links,
		byID:  make(map[string]*Node, len(nodes)),
	}
	for _, n := range nodes {
		if _, dup := g.byID[n.ID]; dup {
			continue
		}
		g.byID[n.ID] = n
		g.Nodes = append(g.Nodes, n)
	}
	for i, l := range g.Links {
		l.Index = i
	}
	return g
}

// Node returns the node with the given id.
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.byID[id]
	return n, ok
}

// Link returns the link at index i.
func (g *Graph) Link(i int) (*Link, bool) {
	if i < 0 || i >= len(g.Links) {
		return nil, false
	}
	return g.Links[i], true
}

// Outgoing returns the links whose source is id, in link order.
func (g *Graph) Outgoing(id string) []*Link {
	var out []*Link
	for _, l := range g.Links {
		if l.Source == id {
			out = append(out, l)
		}
	}
	return out
}

// Enriched reports whether Enrich has run on g.
func (g *Graph) Enriched() bool {
	return g.enriched
}

// Dropped returns the links Enrich removed because an endpoint did not
// resolve.
func (g *Graph) Dropped() []*Link {
	return g.dropped
}

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int {
	return len(g.Nodes)
}

// LinkCount returns the number of links in the graph.
func (g *Graph) LinkCount() int {
	return len(g.Links)
}
