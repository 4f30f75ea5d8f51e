// Package dot renders a symbol graph in Graphviz DOT format.
//
// The DOT text is a faithful projection of the graph: one node statement
// per symbol (named by id, labeled with the qualified name and kind, the
// signature in the tooltip when attached) and one edge statement per
// relationship. Member edges form the containment tree and are drawn
// solid; every other kind is dashed and labeled.
//
// Emission follows the graph's insertion order, so the same build sequence
// always produces the same DOT text.
//
// Usage:
//
//	g := buildSymbolGraph()
//	fmt.Println(dot.Export(g))
//
// or stream it:
//
//	err := dot.Write(os.Stdout, g)
package dot
