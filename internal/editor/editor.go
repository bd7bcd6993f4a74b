package editor

import (
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/factorio-tools/bpeditor/internal/blueprint"
	"github.com/factorio-tools/bpeditor/internal/blueprint/codec"
	"github.com/factorio-tools/bpeditor/internal/registry"
)

var validate = validator.New()

// Metadata carries the optional blueprint header fields. Nil fields are
// left untouched by SetMetadata.
type Metadata struct {
	Label       *string
	Description *string
	Icons       []blueprint.Icon `validate:"omitempty,max=4,dive"`
}

// icon fields checked structurally before they reach the document.
type iconCheck struct {
	Type  string `validate:"required,oneof=item fluid virtual"`
	Name  string `validate:"required"`
	Index int    `validate:"min=1,max=4"`
}

// Stats summarizes a blueprint's contents.
type Stats struct {
	TotalEntities  int            `json:"total_entities"`
	TotalTiles     int            `json:"total_tiles"`
	EntityCounts   map[string]int `json:"entity_counts"`
	HasLabel       bool           `json:"has_label"`
	HasDescription bool           `json:"has_description"`
}

// Editor wraps one blueprint.
type Editor struct {
	bp      *blueprint.Blueprint
	catalog *registry.Catalog
}

// New creates an editor holding a fresh, empty blueprint.
func New() *Editor {
	return &Editor{bp: blueprint.New(), catalog: registry.Default()}
}

// FromString creates an editor from an exchange string.
func FromString(s string) (*Editor, error) {
	bp, err := codec.Decode(s)
	if err != nil {
		return nil, err
	}
	return Wrap(bp), nil
}

// Wrap creates an editor around an existing blueprint. Entities without an
// editor handle get one assigned.
func Wrap(bp *blueprint.Blueprint) *Editor {
	e := &Editor{bp: bp, catalog: registry.Default()}
	for i := range bp.Entities {
		if bp.Entities[i].ID == "" {
			bp.Entities[i].ID = uuid.NewString()
		}
	}
	return e
}

// Blueprint exposes the wrapped document.
func (e *Editor) Blueprint() *blueprint.Blueprint {
	return e.bp
}

// AddEntity appends an entity, assigning an entity number and an editor
// handle when the entity has none. The handle is returned.
func (e *Editor) AddEntity(ent blueprint.Entity) string {
	if ent.ID == "" {
		ent.ID = uuid.NewString()
	}
	if ent.EntityNumber == 0 {
		ent.EntityNumber = e.nextEntityNumber()
	}
	e.bp.Entities = append(e.bp.Entities, ent)
	return ent.ID
}

// RemoveEntity deletes the entity with the given handle. The handle may be
// the editor-assigned id or a decimal entity number.
func (e *Editor) RemoveEntity(id string) bool {
	for i := range e.bp.Entities {
		if matchesID(&e.bp.Entities[i], id) {
			e.bp.Entities = append(e.bp.Entities[:i], e.bp.Entities[i+1:]...)
			return true
		}
	}
	return false
}

// FindEntities returns copies of entities with the given prototype name.
// An empty name matches everything.
func (e *Editor) FindEntities(name string) []blueprint.Entity {
	var found []blueprint.Entity
	for _, ent := range e.bp.Entities {
		if name == "" || ent.Name == name {
			found = append(found, ent)
		}
	}
	return found
}

// MoveEntity shifts an entity by a relative offset.
func (e *Editor) MoveEntity(id string, dx, dy float64) bool {
	for i := range e.bp.Entities {
		if matchesID(&e.bp.Entities[i], id) {
			e.bp.Entities[i].Position.X += dx
			e.bp.Entities[i].Position.Y += dy
			return true
		}
	}
	return false
}

// RotateEntity sets an entity's direction. It returns false when the
// handle is unknown or the prototype does not rotate, and errors when the
// direction value itself is invalid.
func (e *Editor) RotateEntity(id string, direction uint8) (bool, error) {
	if !blueprint.ValidDirection(direction) {
		return false, fmt.Errorf("invalid direction %d: must be 0, 2, 4 or 6", direction)
	}
	for i := range e.bp.Entities {
		if !matchesID(&e.bp.Entities[i], id) {
			continue
		}
		def, known := e.catalog.Entity(e.bp.Entities[i].Name)
		if known && !def.Rotatable {
			return false, nil
		}
		e.bp.Entities[i].Direction = direction
		return true, nil
	}
	return false, nil
}

// AddTile appends a tile.
func (e *Editor) AddTile(t blueprint.Tile) {
	e.bp.Tiles = append(e.bp.Tiles, t)
}

// SetMetadata applies the non-nil metadata fields. Icons are checked
// structurally and their indexes normalized to 1..n.
func (e *Editor) SetMetadata(meta Metadata) error {
	if err := checkIcons(meta.Icons); err != nil {
		return err
	}
	applyMetadata(meta, &e.bp.Label, &e.bp.Description, &e.bp.Icons)
	return nil
}

// ToString exports the blueprint as an exchange string.
func (e *Editor) ToString() (string, error) {
	return codec.Encode(e.bp)
}

// Stats computes summary statistics.
func (e *Editor) Stats() Stats {
	counts := make(map[string]int)
	for _, ent := range e.bp.Entities {
		counts[ent.Name]++
	}
	return Stats{
		TotalEntities:  len(e.bp.Entities),
		TotalTiles:     len(e.bp.Tiles),
		EntityCounts:   counts,
		HasLabel:       e.bp.Label != "",
		HasDescription: e.bp.Description != "",
	}
}

func (e *Editor) nextEntityNumber() int {
	next := 1
	for _, ent := range e.bp.Entities {
		if ent.EntityNumber >= next {
			next = ent.EntityNumber + 1
		}
	}
	return next
}

func matchesID(ent *blueprint.Entity, id string) bool {
	if ent.ID == id {
		return true
	}
	return id == strconv.Itoa(ent.EntityNumber)
}

func checkIcons(icons []blueprint.Icon) error {
	if icons == nil {
		return nil
	}
	if len(icons) > 4 {
		return fmt.Errorf("too many icons: %d (max 4)", len(icons))
	}
	for i, ic := range icons {
		check := iconCheck{Type: ic.Signal.Type, Name: ic.Signal.Name, Index: ic.Index}
		if check.Index == 0 {
			check.Index = i + 1
		}
		if err := validate.Struct(check); err != nil {
			return fmt.Errorf("icon %d: %w", i+1, err)
		}
	}
	return nil
}

func applyMetadata(meta Metadata, label, description *string, icons *[]blueprint.Icon) {
	if meta.Label != nil {
		*label = *meta.Label
	}
	if meta.Description != nil {
		*description = *meta.Description
	}
	if meta.Icons != nil {
		normalized := make([]blueprint.Icon, len(meta.Icons))
		copy(normalized, meta.Icons)
		for i := range normalized {
			if normalized[i].Index == 0 {
				normalized[i].Index = i + 1
			}
		}
		*icons = normalized
	}
}
