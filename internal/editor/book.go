package editor

import (
	"github.com/factorio-tools/bpeditor/internal/blueprint"
	"github.com/factorio-tools/bpeditor/internal/blueprint/codec"
)

// BookStats summarizes a blueprint book's contents.
type BookStats struct {
	TotalBlueprints int  `json:"total_blueprints"`
	TotalEntities   int  `json:"total_entities"`
	TotalTiles      int  `json:"total_tiles"`
	HasLabel        bool `json:"has_label"`
	HasDescription  bool `json:"has_description"`
}

// BookEditor wraps one blueprint book.
type BookEditor struct {
	book *blueprint.BlueprintBook
}

// NewBook creates an editor holding a fresh, empty book.
func NewBook() *BookEditor {
	return &BookEditor{book: blueprint.NewBook()}
}

// BookFromString creates a book editor from an exchange string.
func BookFromString(s string) (*BookEditor, error) {
	book, err := codec.DecodeBook(s)
	if err != nil {
		return nil, err
	}
	return &BookEditor{book: book}, nil
}

// WrapBook creates a book editor around an existing book.
func WrapBook(book *blueprint.BlueprintBook) *BookEditor {
	return &BookEditor{book: book}
}

// Book exposes the wrapped document.
func (b *BookEditor) Book() *blueprint.BlueprintBook {
	return b.book
}

// AddBlueprint appends a blueprint, or inserts it when a position is
// given. A negative position counts back from the end and clamps at the
// front; a position past the end appends. Slot indexes are renumbered
// afterwards.
func (b *BookEditor) AddBlueprint(bp *blueprint.Blueprint, at ...int) {
	entry := blueprint.BookEntry{Blueprint: bp}
	switch {
	case len(at) == 0:
		b.book.Blueprints = append(b.book.Blueprints, entry)
	default:
		i := at[0]
		if i < 0 {
			i += len(b.book.Blueprints)
			if i < 0 {
				i = 0
			}
		}
		if i >= len(b.book.Blueprints) {
			b.book.Blueprints = append(b.book.Blueprints, entry)
			break
		}
		b.book.Blueprints = append(b.book.Blueprints[:i],
			append([]blueprint.BookEntry{entry}, b.book.Blueprints[i:]...)...)
	}
	b.renumber()
}

// RemoveBlueprint removes and returns the blueprint at index i, or nil for
// an out-of-range index.
func (b *BookEditor) RemoveBlueprint(i int) *blueprint.Blueprint {
	if i < 0 || i >= len(b.book.Blueprints) {
		return nil
	}
	removed := b.book.Blueprints[i].Blueprint
	b.book.Blueprints = append(b.book.Blueprints[:i], b.book.Blueprints[i+1:]...)
	b.renumber()
	if b.book.ActiveIndex >= len(b.book.Blueprints) && b.book.ActiveIndex > 0 {
		b.book.ActiveIndex = len(b.book.Blueprints) - 1
	}
	return removed
}

// Blueprint returns the blueprint at index i, or nil for an out-of-range
// index.
func (b *BookEditor) Blueprint(i int) *blueprint.Blueprint {
	if i < 0 || i >= len(b.book.Blueprints) {
		return nil
	}
	return b.book.Blueprints[i].Blueprint
}

// Len returns the number of blueprints in the book.
func (b *BookEditor) Len() int {
	return len(b.book.Blueprints)
}

// SetActiveIndex selects which blueprint the game opens first. Out-of-range
// values are ignored.
func (b *BookEditor) SetActiveIndex(i int) bool {
	if i < 0 || i >= len(b.book.Blueprints) {
		return false
	}
	b.book.ActiveIndex = i
	return true
}

// SetMetadata applies the non-nil metadata fields to the book.
func (b *BookEditor) SetMetadata(meta Metadata) error {
	if err := checkIcons(meta.Icons); err != nil {
		return err
	}
	applyMetadata(meta, &b.book.Label, &b.book.Description, &b.book.Icons)
	return nil
}

// Validate runs blueprint validation over every blueprint in the book,
// descending into nested books.
func (b *BookEditor) Validate() []Issue {
	return bookIssues(b.book)
}

func bookIssues(book *blueprint.BlueprintBook) []Issue {
	var issues []Issue
	for _, entry := range book.Blueprints {
		if entry.Blueprint != nil {
			issues = append(issues, Wrap(entry.Blueprint).Validate()...)
		}
		if entry.Book != nil {
			issues = append(issues, bookIssues(entry.Book)...)
		}
	}
	return issues
}

// ToString exports the book as an exchange string.
func (b *BookEditor) ToString() (string, error) {
	return codec.EncodeBook(b.book)
}

// Stats computes summary statistics across the contained blueprints.
func (b *BookEditor) Stats() BookStats {
	stats := BookStats{
		TotalBlueprints: len(b.book.Blueprints),
		HasLabel:        b.book.Label != "",
		HasDescription:  b.book.Description != "",
	}
	for _, entry := range b.book.Blueprints {
		if entry.Blueprint == nil {
			continue
		}
		stats.TotalEntities += len(entry.Blueprint.Entities)
		stats.TotalTiles += len(entry.Blueprint.Tiles)
	}
	return stats
}

func (b *BookEditor) renumber() {
	for i := range b.book.Blueprints {
		b.book.Blueprints[i].Index = i
	}
}
