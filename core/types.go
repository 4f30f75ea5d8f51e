// Package core type declarations: Token identity, Node, Edge, kind
// enumerations, attachable components, sentinel errors, and graph options.
//
// Identity model:
//   - Every Node and Edge is assigned a unique ID from a process-wide
//     monotonic counter at creation time and keeps it for life.
//   - Plain-copy import (copy.go) retains the source id instead of
//     allocating a new one, so logical identity survives graph merges.
//
// Errors:
//
//	ErrNodeNotFound      - node is not owned by this graph.
//	ErrEdgeNotFound      - edge is not owned by this graph.
//	ErrMemberEdgeRemoval - direct removal attempted on a member edge.
package core

import (
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
)

// Sentinel errors for graph mutation operations.
var (
	// ErrNodeNotFound indicates a removal referenced a node this graph does not own.
	ErrNodeNotFound = errors.New("core: node not found in graph")

	// ErrEdgeNotFound indicates a removal referenced an edge this graph does not own.
	ErrEdgeNotFound = errors.New("core: edge not found in graph")

	// ErrMemberEdgeRemoval indicates a direct removal attempt on a member
	// (containment) edge. Member edges are removable only as a side effect
	// of removing their target node.
	ErrMemberEdgeRemoval = errors.New("core: member edge cannot be removed directly")
)

// DefaultDelimiter separates the segments of a fully-qualified node name.
const DefaultDelimiter = "::"

// ID uniquely identifies a Node or Edge across all graphs in the process.
type ID uint64

// nextTokenID is the process-wide atomic id generator shared by nodes and
// edges, so ids never collide between the two collections or across graphs.
var nextTokenID uint64

// newID returns the next monotonic identity value.
func newID() ID {
	return ID(atomic.AddUint64(&nextTokenID, 1))
}

// Token is the shared identity abstraction over Node and Edge. It allows
// uniform lookup-by-id and mixed iteration over both collections.
type Token interface {
	// ID returns the unique identity of the entity.
	ID() ID
	// String renders one line of state, as used by the Graph dump.
	String() string
}

// NodeKind enumerates the kinds of named entities a node can represent.
// NodeUndefined marks a node whose concrete kind is still pending: lazily
// created ancestors start undefined and are refined the first time a typed
// reference to them is created.
type NodeKind uint8

const (
	NodeUndefined NodeKind = iota
	NodeNamespace
	NodeClass
	NodeStruct
	NodeEnum
	NodeFunction
	NodeMethod
	NodeField
	NodeVariable
)

// nodeKindNames holds the stable textual labels used in dumps and DOT output.
var nodeKindNames = [...]string{
	NodeUndefined: "undefined",
	NodeNamespace: "namespace",
	NodeClass:     "class",
	NodeStruct:    "struct",
	NodeEnum:      "enum",
	NodeFunction:  "function",
	NodeMethod:    "method",
	NodeField:     "field",
	NodeVariable:  "variable",
}

// String returns the stable textual label of the kind.
func (k NodeKind) String() string {
	if int(k) < len(nodeKindNames) {
		return nodeKindNames[k]
	}
	return "unknown"
}

// EdgeKind enumerates the relationship kinds between nodes. EdgeMember is
// structurally privileged: it defines the containment tree and may never be
// removed independently of its target node.
type EdgeKind uint8

const (
	EdgeMember EdgeKind = iota
	EdgeCall
	EdgeUsage
	EdgeTypeUsage
	EdgeInheritance
)

var edgeKindNames = [...]string{
	EdgeMember:      "member",
	EdgeCall:        "call",
	EdgeUsage:       "usage",
	EdgeTypeUsage:   "type_usage",
	EdgeInheritance: "inheritance",
}

// String returns the stable textual label of the kind.
func (k EdgeKind) String() string {
	if int(k) < len(edgeKindNames) {
		return edgeKindNames[k]
	}
	return "unknown"
}

// ComponentKind keys the opaque components attachable to a node.
// A node holds at most one component per kind.
type ComponentKind uint8

const (
	// ComponentSignature keys the signature component used to disambiguate
	// same-named entities (overloads) into distinct sibling nodes.
	ComponentSignature ComponentKind = iota
)

// Component is an opaque per-node attachment. The graph treats components
// as payload: it copies them on plain-copy import and compares signature
// components by value during hierarchy creation, nothing more.
type Component interface {
	// ComponentKind returns the key this component is attached under.
	ComponentKind() ComponentKind
	// CloneComponent returns an independent deep copy of the component.
	CloneComponent() Component
}

// Signature is the component disambiguating same-qualified-name entities,
// compared by string value.
type Signature struct {
	raw string
}

// NewSignature wraps a raw signature string as an attachable component.
func NewSignature(raw string) *Signature {
	return &Signature{raw: raw}
}

// ComponentKind returns ComponentSignature.
func (s *Signature) ComponentKind() ComponentKind { return ComponentSignature }

// CloneComponent returns an independent copy of the signature.
func (s *Signature) CloneComponent() Component { return &Signature{raw: s.raw} }

// Raw returns the wrapped signature string.
func (s *Signature) Raw() string { return s.raw }

// Node is a named, typed entity in the hierarchy.
//
// The fully-qualified name is the lookup key for the plain hierarchy path;
// it is unique by construction there, but signature-disambiguated siblings
// deliberately share a name and differ only by id. A node's parent is not
// stored: it is derived from the unique incoming member edge, see
// Graph.ParentOf.
type Node struct {
	id         ID
	kind       NodeKind
	name       string
	components map[ComponentKind]Component
}

// newNode allocates a node with a fresh id. Nodes are created only through
// Graph creation operations; callers never construct them directly.
func newNode(kind NodeKind, name string) *Node {
	return &Node{id: newID(), kind: kind, name: name}
}

// ID returns the unique identity of the node.
func (n *Node) ID() ID { return n.id }

// Kind returns the node kind; NodeUndefined while refinement is pending.
func (n *Node) Kind() NodeKind { return n.kind }

// Name returns the fully-qualified name of the node.
func (n *Node) Name() string { return n.name }

// Attach stores the component under its kind, replacing any previous
// component of the same kind.
func (n *Node) Attach(c Component) {
	if n.components == nil {
		n.components = make(map[ComponentKind]Component, 1)
	}
	n.components[c.ComponentKind()] = c
}

// Component returns the attached component of the given kind, or nil.
func (n *Node) Component(kind ComponentKind) Component {
	return n.components[kind]
}

// Signature returns the raw attached signature and whether one is present.
func (n *Node) Signature() (string, bool) {
	if c, ok := n.components[ComponentSignature].(*Signature); ok {
		return c.raw, true
	}
	return "", false
}

// String renders one line of node state: id, kind, quoted name, and the
// signature when attached.
func (n *Node) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d [%s] %q", n.id, n.kind, n.name)
	if sig, ok := n.Signature(); ok {
		fmt.Fprintf(&b, " sig=%q", sig)
	}
	return b.String()
}

// cloneComponents deep-copies the component map for plain-copy import.
func (n *Node) cloneComponents() map[ComponentKind]Component {
	if n.components == nil {
		return nil
	}
	out := make(map[ComponentKind]Component, len(n.components))
	for kind, c := range n.components {
		out[kind] = c.CloneComponent()
	}
	return out
}

// Edge is a typed, directed relationship between two nodes. The endpoints
// are non-owning references into graph-owned storage: the graph guarantees
// an edge never outlives either of its nodes.
type Edge struct {
	id   ID
	kind EdgeKind
	from *Node
	to   *Node
}

// newEdge allocates an edge with a fresh id. Edges are created only through
// Graph creation operations.
func newEdge(kind EdgeKind, from, to *Node) *Edge {
	return &Edge{id: newID(), kind: kind, from: from, to: to}
}

// ID returns the unique identity of the edge.
func (e *Edge) ID() ID { return e.id }

// Kind returns the relationship kind.
func (e *Edge) Kind() EdgeKind { return e.kind }

// From returns the source node.
func (e *Edge) From() *Node { return e.from }

// To returns the target node.
func (e *Edge) To() *Node { return e.to }

// String renders one line of edge state: id, kind, and endpoint names.
func (e *Edge) String() string {
	return fmt.Sprintf("%d [%s] %q -> %q", e.id, e.kind, e.from.name, e.to.name)
}

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithDelimiter overrides the namespace delimiter used to decompose
// fully-qualified names (default "::"). Empty values are ignored.
func WithDelimiter(delimiter string) GraphOption {
	return func(g *Graph) {
		if delimiter != "" {
			g.delimiter = delimiter
		}
	}
}
