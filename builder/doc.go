// Package builder is the declarative construction layer over core: record
// symbols and relations by qualified name, then take the finished graph.
//
// A Builder wraps one core.Graph and exposes three recording operations:
//
//	Symbol(kind, fullName)                        — hierarchy creation
//	SymbolWithSignature(kind, fullName, sig)      — overload disambiguation
//	Relation(kind, fromName, toName)              — typed edge by name
//
// Relations resolve their endpoints lazily: a name never seen before is
// created as an undefined node (and refined later when a typed symbol for
// it is recorded). Member relations are rejected: containment comes only
// from the name structure, never from explicit recording.
//
// Quick example:
//
//	b := builder.New()
//	_, _ = b.Symbol(core.NodeClass, "app::Server")
//	_, _ = b.SymbolWithSignature(core.NodeMethod, "app::Server::Start", "Start()")
//	_, _ = b.Relation(core.EdgeCall, "app::Server::Start", "net::Listen")
//	g := b.Graph()
//
// Error policy: only package-level sentinels are exposed; branch with
// errors.Is. Recording with valid arguments cannot fail.
package builder
