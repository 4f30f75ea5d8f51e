// Package core: Graph storage, lookup, iteration, and rendering.
//
// Storage model:
//   - Nodes and edges live in insertion-ordered slices (deterministic
//     iteration and dumps) with id-keyed indexes for O(1) identity lookup.
//   - Name lookup stays a front-to-back scan on purpose: signature
//     siblings share a name, and "first node in insertion order" is the
//     observable contract the mutation protocol depends on.

package core

import (
	"fmt"
	"strings"
)

// Graph is the exclusive owner of a set of nodes and edges forming a
// hierarchical symbol model. All creation, lookup, and removal goes through
// its methods; returned pointers are non-owning views valid until the
// entity is removed or the graph is cleared.
type Graph struct {
	delimiter string

	// Insertion-ordered owned collections.
	nodes []*Node
	edges []*Edge

	// Identity indexes over the collections above.
	nodesByID map[ID]*Node
	edgesByID map[ID]*Edge
}

// NewGraph creates an empty Graph with the given options.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		delimiter: DefaultDelimiter,
		nodesByID: make(map[ID]*Node),
		edgesByID: make(map[ID]*Edge),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Delimiter returns the namespace delimiter this graph splits names on.
func (g *Graph) Delimiter() string { return g.delimiter }

// NodeByName returns the first node (in insertion order) with the given
// fully-qualified name, or nil. With signature siblings present, later
// siblings are not reachable through this lookup.
// Complexity: O(V).
func (g *Graph) NodeByName(name string) *Node {
	return g.FindNode(func(n *Node) bool { return n.name == name })
}

// NodeByID returns the node with the given id, or nil. Complexity: O(1).
func (g *Graph) NodeByID(id ID) *Node {
	return g.nodesByID[id]
}

// EdgeByID returns the edge with the given id, or nil. Complexity: O(1).
func (g *Graph) EdgeByID(id ID) *Edge {
	return g.edgesByID[id]
}

// EdgeBetween returns the edge matching the exact (kind, from, to) triple,
// or nil. Same endpoints with a different kind are a different edge.
// Complexity: O(E).
func (g *Graph) EdgeBetween(kind EdgeKind, from, to *Node) *Edge {
	return g.FindEdge(func(e *Edge) bool {
		return e.kind == kind && e.from == from && e.to == to
	})
}

// TokenByID returns the entity with the given id, checking nodes first and
// edges second, or nil. Complexity: O(1).
func (g *Graph) TokenByID(id ID) Token {
	if n := g.nodesByID[id]; n != nil {
		return n
	}
	if e := g.edgesByID[id]; e != nil {
		return e
	}

	return nil
}

// FindNode returns the first node (insertion order) satisfying pred, or nil.
// Complexity: O(V).
func (g *Graph) FindNode(pred func(*Node) bool) *Node {
	for _, n := range g.nodes {
		if pred(n) {
			return n
		}
	}

	return nil
}

// FindEdge returns the first edge (insertion order) satisfying pred, or nil.
// Complexity: O(E).
func (g *Graph) FindEdge(pred func(*Edge) bool) *Edge {
	for _, e := range g.edges {
		if pred(e) {
			return e
		}
	}

	return nil
}

// FindToken returns the first token satisfying pred, scanning all nodes
// before any edge, or nil. Complexity: O(V+E).
func (g *Graph) FindToken(pred func(Token) bool) Token {
	if n := g.FindNode(func(n *Node) bool { return pred(n) }); n != nil {
		return n
	}
	if e := g.FindEdge(func(e *Edge) bool { return pred(e) }); e != nil {
		return e
	}

	return nil
}

// EachNode calls fn for every node in insertion order.
func (g *Graph) EachNode(fn func(*Node)) {
	for _, n := range g.nodes {
		fn(n)
	}
}

// EachEdge calls fn for every edge in insertion order.
func (g *Graph) EachEdge(fn func(*Edge)) {
	for _, e := range g.edges {
		fn(e)
	}
}

// EachToken calls fn for every node, then every edge, in insertion order.
func (g *Graph) EachToken(fn func(Token)) {
	for _, n := range g.nodes {
		fn(n)
	}
	for _, e := range g.edges {
		fn(e)
	}
}

// Nodes returns a copy of the owned node sequence in insertion order.
// Complexity: O(V).
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// Edges returns a copy of the owned edge sequence in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// NodeCount returns the number of owned nodes. O(1).
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of owned edges. O(1).
func (g *Graph) EdgeCount() int { return len(g.edges) }

// ParentOf returns the containing node derived from the unique incoming
// member edge, or nil for roots. Complexity: O(E).
func (g *Graph) ParentOf(n *Node) *Node {
	e := g.FindEdge(func(e *Edge) bool { return e.kind == EdgeMember && e.to == n })
	if e == nil {
		return nil
	}

	return e.from
}

// ChildrenOf returns the directly contained nodes of n, in insertion order
// of their member edges. Complexity: O(E).
func (g *Graph) ChildrenOf(n *Node) []*Node {
	var out []*Node
	for _, e := range g.edges {
		if e.kind == EdgeMember && e.from == n {
			out = append(out, e.to)
		}
	}

	return out
}

// owned reports whether this exact node is in the owned collection.
// Identity, not name, decides: a plain-copied twin from another graph does
// not count.
func (g *Graph) owned(n *Node) bool {
	return n != nil && g.nodesByID[n.id] == n
}

// ownedEdge reports whether this exact edge is in the owned collection.
func (g *Graph) ownedEdge(e *Edge) bool {
	return e != nil && g.edgesByID[e.id] == e
}

// appendNode takes ownership of a node.
func (g *Graph) appendNode(n *Node) {
	g.nodes = append(g.nodes, n)
	g.nodesByID[n.id] = n
}

// appendEdge takes ownership of an edge.
func (g *Graph) appendEdge(e *Edge) {
	g.edges = append(g.edges, e)
	g.edgesByID[e.id] = e
}

// String renders a human-readable dump: a header, one line per node, then
// one line per edge, all in insertion order.
func (g *Graph) String() string {
	var b strings.Builder
	b.WriteString("Graph:\n")
	fmt.Fprintf(&b, "nodes (%d)\n", len(g.nodes))
	for _, n := range g.nodes {
		b.WriteString(n.String())
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "edges (%d)\n", len(g.edges))
	for _, e := range g.edges {
		b.WriteString(e.String())
		b.WriteByte('\n')
	}

	return b.String()
}
