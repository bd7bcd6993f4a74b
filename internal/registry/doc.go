// Package registry carries a catalog of known entity and tile prototypes:
// collision footprints and whether an entity responds to direction.
//
// The catalog is embedded YAML covering the prototypes the editor's
// validation cares about. Blueprints may reference names outside the
// catalog; lookups simply miss and validation downgrades to a warning.
package registry
