// Package blueprint defines the data model for the Factorio blueprint
// exchange format.
//
// The model mirrors the JSON documents the game imports and exports:
// a blueprint holds entities, tiles, and metadata; a blueprint book holds
// an ordered list of blueprints. Documents are wrapped in a single-key
// envelope ("blueprint" or "blueprint_book") on the wire.
//
// Serialization uses bytedance/sonic. Encoding to and from the compressed
// exchange-string form lives in the codec subpackage.
package blueprint
