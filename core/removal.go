// Package core: the removal protocol.
//
// Invariants upheld here:
//   - A member edge is never removed without its child node being removed
//     in the same operation (the cascade below, or the ErrMemberEdgeRemoval
//     guard in RemoveEdge).
//   - After RemoveNode returns, the removed node has zero edges left in the
//     graph. A violation is reported at error severity on the package realm
//     without aborting the removal; see RemoveNode.

package core

// RemoveNode removes the node, its entire containment subtree (depth-first,
// children before the parent is detached), and every remaining edge that
// touches any removed node from either direction.
//
// A node this graph does not own is reported at warning severity and
// returned as ErrNodeNotFound with no state change.
//
// The zero-edges postcondition is checked per node. If it ever fails, the
// violation is reported at error severity and the node is erased anyway;
// removal always runs to completion.
//
// Complexity: O(T·E) for a subtree of T nodes.
func (g *Graph) RemoveNode(node *Node) error {
	if !g.owned(node) {
		log.Warn("node was not found in the graph")
		return ErrNodeNotFound
	}

	// 1) Cascade through the containment subtree. Snapshot the member
	//    edges first: the recursion erases them while we iterate.
	var children []*Node
	for _, e := range g.edges {
		if e.kind == EdgeMember && e.from == node {
			children = append(children, e.to)
		}
	}
	for _, child := range children {
		_ = g.RemoveNode(child)
	}

	// 2) Strip every remaining edge touching this node, either direction.
	var incident []*Edge
	for _, e := range g.edges {
		if e.from == node || e.to == node {
			incident = append(incident, e)
		}
	}
	for _, e := range incident {
		g.eraseEdge(e)
	}

	// 3) Postcondition: no edge may still reference this node.
	if g.FindEdge(func(e *Edge) bool { return e.from == node || e.to == node }) != nil {
		log.Error("node still has edges", "node", node.name)
	}

	// 4) Erase the node itself.
	g.eraseNode(node)

	return nil
}

// RemoveEdge removes a non-member edge from the graph.
//
// An edge this graph does not own is reported at warning severity. Member
// edges are refused outright with ErrMemberEdgeRemoval (error severity, no
// state change) — containment edges fall only with their child node. The
// member guard wins over the not-found report, matching the severity order
// of the two violations.
func (g *Graph) RemoveEdge(edge *Edge) error {
	owned := g.ownedEdge(edge)
	if !owned {
		log.Warn("edge was not found in the graph")
	}

	if edge != nil && edge.kind == EdgeMember {
		log.Error("can't remove member edge without removing the child node")
		return ErrMemberEdgeRemoval
	}

	if !owned {
		return ErrEdgeNotFound
	}
	g.eraseEdge(edge)

	return nil
}

// Clear unconditionally drops all owned edges, then all owned nodes.
// No invariant checking: this is whole-graph teardown.
func (g *Graph) Clear() {
	g.edges = nil
	g.nodes = nil
	g.edgesByID = make(map[ID]*Edge)
	g.nodesByID = make(map[ID]*Node)
}

// eraseEdge drops the edge from the ordered collection and the id index.
func (g *Graph) eraseEdge(edge *Edge) {
	for i, e := range g.edges {
		if e == edge {
			g.edges = append(g.edges[:i], g.edges[i+1:]...)
			break
		}
	}
	delete(g.edgesByID, edge.id)
}

// eraseNode drops the node from the ordered collection and the id index.
func (g *Graph) eraseNode(node *Node) {
	for i, n := range g.nodes {
		if n == node {
			g.nodes = append(g.nodes[:i], g.nodes[i+1:]...)
			break
		}
	}
	delete(g.nodesByID, node.id)
}
