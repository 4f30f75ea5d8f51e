package core_test

import (
	"fmt"

	"github.com/katalvlaran/symgraph/core"
)

// ExampleGraph_CreateNodeHierarchy shows lazy, idempotent hierarchy
// creation: one call materializes the whole ancestor chain.
func ExampleGraph_CreateNodeHierarchy() {
	g := core.NewGraph()
	g.CreateNodeHierarchy(core.NodeMethod, "app::Server::Start")

	g.EachNode(func(n *core.Node) {
		fmt.Printf("%s [%s]\n", n.Name(), n.Kind())
	})
	fmt.Println("member edges:", g.EdgeCount())

	// Output:
	// app [undefined]
	// app::Server [undefined]
	// app::Server::Start [method]
	// member edges: 2
}

// ExampleGraph_CreateNodeHierarchyWithSignature shows overload
// disambiguation into sibling nodes.
func ExampleGraph_CreateNodeHierarchyWithSignature() {
	g := core.NewGraph()
	f1 := g.CreateNodeHierarchyWithSignature(core.NodeFunction, "math::abs", "abs(int)")
	f2 := g.CreateNodeHierarchyWithSignature(core.NodeFunction, "math::abs", "abs(float)")

	fmt.Println("same name:", f1.Name() == f2.Name())
	fmt.Println("same id:", f1.ID() == f2.ID())
	fmt.Println("same parent:", g.ParentOf(f1) == g.ParentOf(f2))

	// Output:
	// same name: true
	// same id: false
	// same parent: true
}

// ExampleGraph_RemoveNode shows the cascading containment removal: the
// subtree falls, outside nodes survive.
func ExampleGraph_RemoveNode() {
	g := core.NewGraph()
	leaf := g.CreateNodeHierarchy(core.NodeFunction, "a::b::c")
	x := g.CreateNodeHierarchy(core.NodeFunction, "x")
	g.CreateEdge(core.EdgeCall, leaf, x)

	_ = g.RemoveNode(g.NodeByName("a"))

	fmt.Println("nodes left:", g.NodeCount())
	fmt.Println("edges left:", g.EdgeCount())
	fmt.Println("survivor:", g.Nodes()[0].Name())

	// Output:
	// nodes left: 1
	// edges left: 0
	// survivor: x
}
