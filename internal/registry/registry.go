package registry

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/goccy/go-yaml"
)

//go:embed catalog.yaml
var catalogYAML []byte

// EntityDef describes one entity prototype.
type EntityDef struct {
	Name      string `yaml:"name"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Rotatable bool   `yaml:"rotatable"`
}

// Footprint returns the collision width and height for a given direction.
// East- and west-facing entities swap their nominal dimensions.
func (d EntityDef) Footprint(direction uint8) (w, h int) {
	if direction == 2 || direction == 6 {
		return d.Height, d.Width
	}
	return d.Width, d.Height
}

// Catalog holds the loaded prototype definitions.
type Catalog struct {
	entities map[string]EntityDef
	tiles    map[string]struct{}
}

type catalogFile struct {
	Entities []EntityDef `yaml:"entities"`
	Tiles    []string    `yaml:"tiles"`
}

// Load parses a YAML catalog.
func Load(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	c := &Catalog{
		entities: make(map[string]EntityDef, len(file.Entities)),
		tiles:    make(map[string]struct{}, len(file.Tiles)),
	}
	for _, def := range file.Entities {
		if def.Name == "" || def.Width <= 0 || def.Height <= 0 {
			return nil, fmt.Errorf("invalid catalog entry %q", def.Name)
		}
		c.entities[def.Name] = def
	}
	for _, name := range file.Tiles {
		c.tiles[name] = struct{}{}
	}
	return c, nil
}

// Entity looks up an entity prototype by name.
func (c *Catalog) Entity(name string) (EntityDef, bool) {
	def, ok := c.entities[name]
	return def, ok
}

// Tile reports whether name is a known tile prototype.
func (c *Catalog) Tile(name string) bool {
	_, ok := c.tiles[name]
	return ok
}

// Len returns the number of entity prototypes in the catalog.
func (c *Catalog) Len() int {
	return len(c.entities)
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the catalog built from the embedded data. The embedded
// catalog is validated by tests, so a parse failure here is a build defect
// and panics.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Load(catalogYAML)
		if err != nil {
			panic(fmt.Sprintf("registry: embedded catalog invalid: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}
