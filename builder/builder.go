package builder

import (
	"github.com/katalvlaran/symgraph/core"
)

// Option configures a Builder before first use.
type Option func(b *Builder)

// WithDelimiter sets the namespace delimiter of the underlying graph
// (default "::").
func WithDelimiter(delimiter string) Option {
	return func(b *Builder) {
		b.graphOpts = append(b.graphOpts, core.WithDelimiter(delimiter))
	}
}

// Builder records symbols and relations into a single owned core.Graph.
// Zero value is not usable; construct with New. Not safe for concurrent
// use, like the graph it wraps.
type Builder struct {
	graphOpts []core.GraphOption
	g         *core.Graph
}

// New creates a Builder with a fresh empty graph.
func New(opts ...Option) *Builder {
	b := &Builder{}
	for _, opt := range opts {
		opt(b)
	}
	b.g = core.NewGraph(b.graphOpts...)

	return b
}

// Symbol records a named entity, creating missing ancestors lazily.
// Returns the resolved node, or ErrEmptyName.
func (b *Builder) Symbol(kind core.NodeKind, fullName string) (*core.Node, error) {
	if fullName == "" {
		return nil, ErrEmptyName
	}

	return b.g.CreateNodeHierarchy(kind, fullName), nil
}

// SymbolWithSignature records a signature-disambiguated entity (overload).
// Returns the resolved or newly created sibling node, ErrEmptyName, or
// ErrEmptySignature.
func (b *Builder) SymbolWithSignature(kind core.NodeKind, fullName, signature string) (*core.Node, error) {
	if fullName == "" {
		return nil, ErrEmptyName
	}
	if signature == "" {
		return nil, ErrEmptySignature
	}

	return b.g.CreateNodeHierarchyWithSignature(kind, fullName, signature), nil
}

// Relation records a typed edge between two named entities, creating
// unseen endpoints as undefined nodes. Member relations are refused with
// ErrMemberRelation; empty endpoint names with ErrEmptyName.
func (b *Builder) Relation(kind core.EdgeKind, fromName, toName string) (*core.Edge, error) {
	if kind == core.EdgeMember {
		return nil, ErrMemberRelation
	}
	if fromName == "" || toName == "" {
		return nil, ErrEmptyName
	}

	from := b.g.CreateNodeHierarchy(core.NodeUndefined, fromName)
	to := b.g.CreateNodeHierarchy(core.NodeUndefined, toName)

	return b.g.CreateEdge(kind, from, to), nil
}

// Graph returns the graph built so far. The builder keeps recording into
// the same graph afterwards; ownership is shared, not transferred.
func (b *Builder) Graph() *core.Graph {
	return b.g
}
