// Package editor provides high-level facades over blueprint documents.
//
// Editor wraps a single blueprint and BookEditor a single blueprint book.
// Both expose metadata setters, content manipulation, statistics, and
// round-tripping through the exchange-string format. Mutating methods that
// target an entity by handle return false for unknown handles instead of
// erroring, matching how interactive tooling wants to probe-and-shrug.
//
// Editors are not safe for concurrent use.
package editor
