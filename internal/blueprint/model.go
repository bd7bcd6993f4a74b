package blueprint

// Cardinal directions as encoded in the exchange format.
const (
	DirectionNorth uint8 = 0
	DirectionEast  uint8 = 2
	DirectionSouth uint8 = 4
	DirectionWest  uint8 = 6
)

// DefaultVersion is the packed game version written into new documents
// (1.1.61, the last 1.1 release the original tooling targeted).
const DefaultVersion uint64 = 281479275675648

// Position is a point in tile coordinates. Entity positions sit on tile
// centers, so halves are common.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// SignalID identifies an icon signal.
type SignalID struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

// Icon is one of up to four signals shown on a blueprint's toolbar slot.
type Icon struct {
	Signal SignalID `json:"signal"`
	Index  int      `json:"index"`
}

// Entity is a placeable object within a blueprint.
type Entity struct {
	// ID is an editor-local handle assigned when the entity joins a
	// blueprint. It is never serialized; the exchange format only knows
	// entity_number.
	ID string `json:"-"`

	EntityNumber int            `json:"entity_number"`
	Name         string         `json:"name"`
	Position     Position       `json:"position"`
	Direction    uint8          `json:"direction,omitempty"`
	Recipe       string         `json:"recipe,omitempty"`
	Items        map[string]int `json:"items,omitempty"`
	Bar          *int           `json:"bar,omitempty"`
	Connections  map[string]any `json:"connections,omitempty"`
	Neighbours   []int          `json:"neighbours,omitempty"`
	Tags         map[string]any `json:"tags,omitempty"`
}

// Tile is a floor covering within a blueprint. Tile positions are the
// top-left corner of the tile, always whole numbers.
type Tile struct {
	Name     string   `json:"name"`
	Position Position `json:"position"`
}

// Blueprint is a serializable description of a factory layout.
type Blueprint struct {
	Item        string   `json:"item"`
	Label       string   `json:"label,omitempty"`
	Description string   `json:"description,omitempty"`
	Icons       []Icon   `json:"icons,omitempty"`
	Entities    []Entity `json:"entities,omitempty"`
	Tiles       []Tile   `json:"tiles,omitempty"`
	Version     uint64   `json:"version"`
}

// BookEntry is one slot inside a book: a blueprint or a nested book.
type BookEntry struct {
	Index     int            `json:"index"`
	Blueprint *Blueprint     `json:"blueprint,omitempty"`
	Book      *BlueprintBook `json:"blueprint_book,omitempty"`
}

// BlueprintBook is an ordered collection of blueprints.
type BlueprintBook struct {
	Item        string      `json:"item"`
	Label       string      `json:"label,omitempty"`
	Description string      `json:"description,omitempty"`
	Icons       []Icon      `json:"icons,omitempty"`
	Blueprints  []BookEntry `json:"blueprints,omitempty"`
	ActiveIndex int         `json:"active_index"`
	Version     uint64      `json:"version"`
}

// New returns an empty blueprint with the item and version fields the game
// expects on import.
func New() *Blueprint {
	return &Blueprint{
		Item:    "blueprint",
		Version: DefaultVersion,
	}
}

// NewBook returns an empty blueprint book.
func NewBook() *BlueprintBook {
	return &BlueprintBook{
		Item:    "blueprint-book",
		Version: DefaultVersion,
	}
}

// ValidDirection reports whether d is one of the four cardinal direction
// values the format accepts.
func ValidDirection(d uint8) bool {
	switch d {
	case DirectionNorth, DirectionEast, DirectionSouth, DirectionWest:
		return true
	}
	return false
}

// GameVersion unpacks a packed version number into its dotted components.
// The game packs four 16-bit fields: major, minor, patch, build.
func GameVersion(packed uint64) (major, minor, patch uint16) {
	return uint16(packed >> 48), uint16(packed >> 32), uint16(packed >> 16)
}
