// Package builder sentinel errors.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are NEVER wrapped with formatted strings at definition site.

package builder

import "errors"

// ErrEmptyName indicates a symbol or relation endpoint was recorded with an
// empty qualified name.
// Usage: if errors.Is(err, ErrEmptyName) { /* reject the record */ }.
var ErrEmptyName = errors.New("builder: empty qualified name")

// ErrEmptySignature indicates SymbolWithSignature was called with an empty
// signature; an empty signature cannot disambiguate anything.
var ErrEmptySignature = errors.New("builder: empty signature")

// ErrMemberRelation indicates an attempt to record a containment relation
// explicitly. Member edges are derived from name structure by the core
// hierarchy protocol and may not be recorded directly.
var ErrMemberRelation = errors.New("builder: member relations are derived from names")
