// Package core: cross-graph plain-copy import.
//
// A plain copy is an id-preserving deep copy: the local graph owns a fresh
// physical entity, but the logical identity (the id) is shared with the
// source. This is how independently built partial graphs are merged without
// breaking single-owner semantics.

package core

// AddNodeAsPlainCopy imports a node from another graph. When a node with
// the same id is already owned locally, that node is returned unchanged
// (import is idempotent per id). Otherwise the node's kind, name, and
// attached components are deep-copied into a new locally-owned node that
// retains the source id.
func (g *Graph) AddNodeAsPlainCopy(node *Node) *Node {
	if local := g.nodesByID[node.id]; local != nil {
		return local
	}

	local := &Node{
		id:         node.id,
		kind:       node.kind,
		name:       node.name,
		components: node.cloneComponents(),
	}
	g.appendNode(local)

	return local
}

// AddEdgeAsPlainCopy imports an edge from another graph, idempotently per
// id. On first import both endpoints are imported via AddNodeAsPlainCopy
// first, so referential integrity holds before the edge exists; the new
// locally-owned edge retains the source id and points at the local copies.
func (g *Graph) AddEdgeAsPlainCopy(edge *Edge) *Edge {
	if local := g.edgesByID[edge.id]; local != nil {
		return local
	}

	from := g.AddNodeAsPlainCopy(edge.from)
	to := g.AddNodeAsPlainCopy(edge.to)

	local := &Edge{id: edge.id, kind: edge.kind, from: from, to: to}
	g.appendEdge(local)

	return local
}
