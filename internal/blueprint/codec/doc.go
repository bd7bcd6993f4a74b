// Package codec converts blueprints and blueprint books to and from the
// exchange-string form the game understands: a version byte followed by
// base64-encoded, zlib-compressed JSON.
package codec
