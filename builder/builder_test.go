package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/symgraph/builder"
	"github.com/katalvlaran/symgraph/core"
)

// TestBuilder_SymbolAndRelation verifies the basic recording flow: typed
// symbols, a lazily created relation endpoint, and later kind refinement of
// that endpoint.
func TestBuilder_SymbolAndRelation(t *testing.T) {
	b := builder.New()

	_, err := b.Symbol(core.NodeClass, "app::Server")
	require.NoError(t, err)
	_, err = b.Symbol(core.NodeMethod, "app::Server::Start")
	require.NoError(t, err)

	// Relation target is unseen: created as undefined.
	e, err := b.Relation(core.EdgeCall, "app::Server::Start", "net::Listen")
	require.NoError(t, err)
	require.NotNil(t, e)

	g := b.Graph()
	listen := g.NodeByName("net::Listen")
	require.NotNil(t, listen)
	assert.Equal(t, core.NodeUndefined, listen.Kind())

	// A later typed record refines the same node.
	n, err := b.Symbol(core.NodeFunction, "net::Listen")
	require.NoError(t, err)
	assert.Same(t, listen, n)
	assert.Equal(t, core.NodeFunction, listen.Kind())

	// app, app::Server, app::Server::Start, net, net::Listen.
	assert.Equal(t, 5, g.NodeCount())
	// Three member edges + one call edge.
	assert.Equal(t, 4, g.EdgeCount())
}

// TestBuilder_SymbolWithSignature verifies overload recording through the
// builder surface.
func TestBuilder_SymbolWithSignature(t *testing.T) {
	b := builder.New()

	f1, err := b.SymbolWithSignature(core.NodeFunction, "m::f", "f(int)")
	require.NoError(t, err)
	f2, err := b.SymbolWithSignature(core.NodeFunction, "m::f", "f(string)")
	require.NoError(t, err)

	assert.NotEqual(t, f1.ID(), f2.ID())
	assert.Equal(t, 3, b.Graph().NodeCount())
}

// TestBuilder_RelationDeduplicates verifies that recording the same
// relation twice yields one edge.
func TestBuilder_RelationDeduplicates(t *testing.T) {
	b := builder.New()

	first, err := b.Relation(core.EdgeUsage, "a::f", "a::T")
	require.NoError(t, err)
	second, err := b.Relation(core.EdgeUsage, "a::f", "a::T")
	require.NoError(t, err)

	assert.Same(t, first, second)
}

// TestBuilder_Sentinels verifies the validation sentinels.
func TestBuilder_Sentinels(t *testing.T) {
	b := builder.New()

	_, err := b.Symbol(core.NodeClass, "")
	assert.ErrorIs(t, err, builder.ErrEmptyName)

	_, err = b.SymbolWithSignature(core.NodeFunction, "a::f", "")
	assert.ErrorIs(t, err, builder.ErrEmptySignature)

	_, err = b.SymbolWithSignature(core.NodeFunction, "", "sig")
	assert.ErrorIs(t, err, builder.ErrEmptyName)

	_, err = b.Relation(core.EdgeMember, "a", "a::b")
	assert.ErrorIs(t, err, builder.ErrMemberRelation)

	_, err = b.Relation(core.EdgeCall, "", "a::b")
	assert.ErrorIs(t, err, builder.ErrEmptyName)

	// Failed records leave the graph untouched.
	assert.Equal(t, 0, b.Graph().NodeCount())
	assert.Equal(t, 0, b.Graph().EdgeCount())
}

// TestBuilder_WithDelimiter verifies the option reaches the underlying
// graph.
func TestBuilder_WithDelimiter(t *testing.T) {
	b := builder.New(builder.WithDelimiter("."))

	_, err := b.Symbol(core.NodeFunction, "pkg.sub.fn")
	require.NoError(t, err)

	g := b.Graph()
	assert.Equal(t, 3, g.NodeCount())
	require.NotNil(t, g.NodeByName("pkg.sub"))
}
