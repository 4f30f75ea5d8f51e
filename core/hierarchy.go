// Package core: the hierarchy-aware creation protocol.
//
// Contracts:
//   - Creation is idempotent and incremental: repeated calls with
//     overlapping prefixes reuse existing ancestors and never duplicate
//     nodes or member edges.
//   - Kind refinement is last-writer-wins for concrete kinds only; a
//     NodeUndefined argument never downgrades an existing node.
//   - Signature disambiguation keys on the id: siblings share a name and a
//     parent but carry distinct signatures.

package core

import "strings"

// CreateNodeHierarchy returns the node with the given fully-qualified name,
// creating it and any missing ancestors first.
//
// Steps:
//  1. If a node with fullName exists: refine its kind when kind is concrete
//     (last-writer-wins), then return it.
//  2. Otherwise split fullName on the delimiter and walk the prefixes left
//     to right, reusing existing prefix nodes and creating missing ones —
//     NodeUndefined for intermediates, the supplied kind for the deepest —
//     linking each new node to its ancestor with a member edge.
//
// Complexity: O(S·V) for S name segments (name lookups are linear scans).
func (g *Graph) CreateNodeHierarchy(kind NodeKind, fullName string) *Node {
	if node := g.NodeByName(fullName); node != nil {
		if kind != NodeUndefined {
			node.kind = kind
		}
		return node
	}

	return g.insertNodeHierarchy(kind, fullName)
}

// CreateNodeHierarchyWithSignature resolves fullName like
// CreateNodeHierarchy, then disambiguates on the signature: when the
// resolved node carries the same signature value, it is reused (with kind
// refinement); otherwise a new sibling node is created under the same
// parent, at the same name, with the supplied signature attached.
//
// Only the first node reachable by name is compared, so a third distinct
// signature at the same name always yields another sibling, even if a later
// sibling already carries it. A resolved node without any signature never
// matches.
func (g *Graph) CreateNodeHierarchyWithSignature(kind NodeKind, fullName, signature string) *Node {
	node := g.NodeByName(fullName)
	switch {
	case node == nil:
		// Fresh name: plain hierarchy creation, then attach.
		node = g.insertNodeHierarchy(kind, fullName)

	default:
		if sig, ok := node.Signature(); ok && sig == signature {
			if kind != NodeUndefined {
				node.kind = kind
			}
			return node
		}
		// Different (or missing) signature: create a sibling with the same
		// parent; name alone is no longer the unique key on this path.
		node = g.insertNode(kind, fullName, g.ParentOf(node))
	}

	node.Attach(NewSignature(signature))

	return node
}

// CreateEdge returns the edge with the exact (kind, from, to) triple,
// creating it when absent. Deduplication is exact-match only: the same
// endpoints under a different kind form a distinct edge.
// Complexity: O(E).
func (g *Graph) CreateEdge(kind EdgeKind, from, to *Node) *Edge {
	if edge := g.EdgeBetween(kind, from, to); edge != nil {
		return edge
	}

	return g.insertEdge(kind, from, to)
}

// insertNodeHierarchy walks the delimited prefixes of fullName, creating
// missing nodes (undefined intermediates, typed leaf) and member edges,
// and returns the deepest node.
func (g *Graph) insertNodeHierarchy(kind NodeKind, fullName string) *Node {
	segments := strings.Split(fullName, g.delimiter)

	var (
		ancestor *Node
		prefix   string
	)
	for i, segment := range segments {
		if i > 0 {
			prefix += g.delimiter
		}
		prefix += segment

		node := g.NodeByName(prefix)
		if node == nil {
			segmentKind := NodeUndefined
			if i == len(segments)-1 {
				segmentKind = kind
			}
			node = g.insertNode(segmentKind, prefix, ancestor)
		}

		ancestor = node
	}

	return ancestor
}

// insertNode appends a fresh node and, when a parent is given, links it
// with a member edge (reused if already present).
func (g *Graph) insertNode(kind NodeKind, fullName string, parent *Node) *Node {
	node := newNode(kind, fullName)
	g.appendNode(node)

	if parent != nil {
		g.CreateEdge(EdgeMember, parent, node)
	}

	return node
}

// insertEdge appends a fresh edge without duplicate checking.
func (g *Graph) insertEdge(kind EdgeKind, from, to *Node) *Edge {
	edge := newEdge(kind, from, to)
	g.appendEdge(edge)

	return edge
}
