// Package symgraph is an in-memory, identity-addressed graph for
// hierarchical symbol models: source-code entities organized into a
// "::"-delimited namespace tree, connected by typed relationships.
//
// 🚀 What is symgraph?
//
//	A small, focused library that brings together:
//		• Core primitives: nodes, edges, shared Token identity, a Graph that
//		  exclusively owns both
//		• Hierarchy-aware mutation: lazy, idempotent ancestor creation from
//		  fully-qualified names, signature-based overload disambiguation,
//		  cascading containment-tree removal
//		• Builder: record symbols and relations declaratively, get a graph
//		• DOT export: render a symbol graph for Graphviz
//
// ✨ Why choose symgraph?
//
//   - Invariant-preserving API – no duplicate edges, no orphaned
//     containment edges, no dangling references after removal
//   - Identity first – every node and edge carries a unique monotonic id,
//     preserved across cross-graph plain-copy merges
//   - Minimal surface – one Graph type, explicit sentinel errors,
//     deterministic insertion-order iteration
//
// Everything is organized under three subpackages:
//
//	builder/ — declarative symbol/relation recording on top of core
//	core/    — Token, Node, Edge, Graph and the mutation protocol
//	dot/     — Graphviz DOT rendering of a symbol graph
//
// Quick ASCII example:
//
//	    a
//	    └── a::b
//	        └── a::b::c
//
//	createNodeHierarchy("a::b::c") yields three nodes and two member
//	edges, intermediates typed "undefined" until refined.
//
// Dive into the per-package doc.go files for the full contracts.
//
//	go get github.com/katalvlaran/symgraph
package symgraph
