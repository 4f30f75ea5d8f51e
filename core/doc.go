// Package core provides the identity-addressed symbol graph: Token, Node,
// Edge, and the Graph that exclusively owns them.
//
// The Graph G = (V,E) models a hierarchical symbol table:
//
//   - Nodes are named entities ("a::b::c") organized into a containment
//     tree by member edges; intermediate ancestors are created lazily with
//     NodeUndefined kind and refined later (last-writer-wins on kind).
//   - Edges are typed, directed relationships (member, call, usage,
//     type-usage, inheritance) deduplicated on the (kind, from, to) triple.
//   - Every entity carries a unique monotonic ID shared through the Token
//     interface, enabling uniform lookup-by-id and mixed iteration.
//
// Why use core.Graph?
//
//   - Invariant-preserving mutation — hierarchy creation is idempotent and
//     incremental; removal cascades through the containment subtree and
//     never leaves dangling edges; member edges cannot be removed directly.
//   - Overload support — same-qualified-name entities are disambiguated
//     into sibling nodes by an attached Signature component; for that path
//     the id, not the name, is the unique key.
//   - Graph merging — plain-copy import deep-copies entities between
//     graphs while preserving their ids (AddNodeAsPlainCopy,
//     AddEdgeAsPlainCopy).
//   - Deterministic iteration — nodes and edges iterate in insertion
//     order; String() renders the same dump for the same build sequence.
//
// Core Methods:
//
//	// Creation
//	CreateNodeHierarchy(kind, fullName) *Node
//	CreateNodeHierarchyWithSignature(kind, fullName, sig) *Node
//	CreateEdge(kind, from, to) *Edge
//
//	// Lookup
//	NodeByName(name) *Node        // first match in insertion order
//	NodeByID(id) *Node            // O(1)
//	EdgeByID(id) *Edge            // O(1)
//	EdgeBetween(kind, from, to) *Edge
//	TokenByID(id) Token           // node first, else edge
//	FindNode / FindEdge / FindToken (predicate, first match)
//	ParentOf(n) *Node             // derived from the incoming member edge
//	ChildrenOf(n) []*Node
//
//	// Iteration & counts
//	EachNode / EachEdge / EachToken
//	Nodes() []*Node / Edges() []*Edge
//	NodeCount() int / EdgeCount() int
//
//	// Removal
//	RemoveNode(n) error           // cascades through member subtree
//	RemoveEdge(e) error           // refuses member edges
//	Clear()
//
//	// Cross-graph import
//	AddNodeAsPlainCopy(n) *Node / AddEdgeAsPlainCopy(e) *Edge
//
// Error policy: removal reports absence with ErrNodeNotFound/ErrEdgeNotFound
// (warning severity on the package logging realm) and invariant violations
// with ErrMemberEdgeRemoval or an error-level report; creation, lookup, and
// import cannot fail — absence yields nil.
//
// Concurrency: a Graph is confined to a single goroutine by contract. The
// API returns non-owning views into graph-owned storage, valid until the
// referenced entity is removed or the graph is cleared; concurrent mutation
// is not supported and must be synchronized externally if ever needed.
package core
