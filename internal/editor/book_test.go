package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/factorio-tools/bpeditor/internal/blueprint"
)

func labeled(label string, entities int) *blueprint.Blueprint {
	bp := blueprint.New()
	bp.Label = label
	for i := 0; i < entities; i++ {
		bp.Entities = append(bp.Entities, blueprint.Entity{
			EntityNumber: i + 1,
			Name:         "transport-belt",
			Position:     blueprint.Position{X: float64(i) + 0.5, Y: 0.5},
		})
	}
	return bp
}

func TestBookAddAndGet(t *testing.T) {
	b := NewBook()
	b.AddBlueprint(labeled("first", 1))
	b.AddBlueprint(labeled("second", 2))

	assert.Equal(t, 2, b.Len())
	assert.Equal(t, "first", b.Blueprint(0).Label)
	assert.Equal(t, "second", b.Blueprint(1).Label)

	assert.Nil(t, b.Blueprint(-1))
	assert.Nil(t, b.Blueprint(2))
}

func TestBookInsertAt(t *testing.T) {
	b := NewBook()
	b.AddBlueprint(labeled("first", 0))
	b.AddBlueprint(labeled("third", 0))
	b.AddBlueprint(labeled("second", 0), 1)

	require.Equal(t, 3, b.Len())
	assert.Equal(t, "first", b.Blueprint(0).Label)
	assert.Equal(t, "second", b.Blueprint(1).Label)
	assert.Equal(t, "third", b.Blueprint(2).Label)

	// Slot indexes track positions.
	for i, entry := range b.Book().Blueprints {
		assert.Equal(t, i, entry.Index)
	}

	// Out-of-range insert position appends.
	b.AddBlueprint(labeled("fourth", 0), 99)
	assert.Equal(t, "fourth", b.Blueprint(3).Label)
}

func TestBookInsertNegative(t *testing.T) {
	b := NewBook()
	b.AddBlueprint(labeled("first", 0))
	b.AddBlueprint(labeled("second", 0))
	b.AddBlueprint(labeled("third", 0))

	// -1 inserts before the last slot.
	b.AddBlueprint(labeled("late", 0), -1)
	require.Equal(t, 4, b.Len())
	assert.Equal(t, "late", b.Blueprint(2).Label)
	assert.Equal(t, "third", b.Blueprint(3).Label)

	// A negative position past the front clamps to the front.
	b.AddBlueprint(labeled("early", 0), -99)
	assert.Equal(t, "early", b.Blueprint(0).Label)

	for i, entry := range b.Book().Blueprints {
		assert.Equal(t, i, entry.Index)
	}
}

func TestBookRemove(t *testing.T) {
	b := NewBook()
	b.AddBlueprint(labeled("first", 0))
	b.AddBlueprint(labeled("second", 0))

	removed := b.RemoveBlueprint(0)
	require.NotNil(t, removed)
	assert.Equal(t, "first", removed.Label)
	assert.Equal(t, 1, b.Len())
	assert.Equal(t, 0, b.Book().Blueprints[0].Index)

	assert.Nil(t, b.RemoveBlueprint(5))
	assert.Nil(t, b.RemoveBlueprint(-1))
}

func TestBookActiveIndexClampedOnRemove(t *testing.T) {
	b := NewBook()
	b.AddBlueprint(labeled("a", 0))
	b.AddBlueprint(labeled("b", 0))
	require.True(t, b.SetActiveIndex(1))

	b.RemoveBlueprint(1)
	assert.Equal(t, 0, b.Book().ActiveIndex)

	assert.False(t, b.SetActiveIndex(5))
	assert.False(t, b.SetActiveIndex(-1))
}

func TestBookMetadataAndStats(t *testing.T) {
	b := NewBook()
	label := "Factory Components"
	require.NoError(t, b.SetMetadata(Metadata{Label: &label}))

	b.AddBlueprint(labeled("production", 3))
	b.AddBlueprint(labeled("logistics", 4))

	stats := b.Stats()
	assert.Equal(t, 2, stats.TotalBlueprints)
	assert.Equal(t, 7, stats.TotalEntities)
	assert.Zero(t, stats.TotalTiles)
	assert.True(t, stats.HasLabel)
	assert.False(t, stats.HasDescription)
}

func TestBookNestedBook(t *testing.T) {
	inner := blueprint.NewBook()
	inner.Label = "Inner Shelf"
	inner.Blueprints = []blueprint.BookEntry{{Blueprint: labeled("deep", 2)}}

	b := NewBook()
	b.AddBlueprint(labeled("top", 3))
	b.Book().Blueprints = append(b.Book().Blueprints,
		blueprint.BookEntry{Index: 1, Book: inner})

	// A nested book occupies a slot but only blueprint entries contribute
	// entity counts.
	stats := b.Stats()
	assert.Equal(t, 2, stats.TotalBlueprints)
	assert.Equal(t, 3, stats.TotalEntities)

	s, err := b.ToString()
	require.NoError(t, err)

	loaded, err := BookFromString(s)
	require.NoError(t, err)
	require.Equal(t, 2, loaded.Len())

	nested := loaded.Book().Blueprints[1].Book
	require.NotNil(t, nested)
	assert.Equal(t, "Inner Shelf", nested.Label)
	require.Len(t, nested.Blueprints, 1)
	require.NotNil(t, nested.Blueprints[0].Blueprint)
	assert.Len(t, nested.Blueprints[0].Blueprint.Entities, 2)
}

func TestBookValidateDescendsNestedBooks(t *testing.T) {
	bad := blueprint.New()
	bad.Entities = []blueprint.Entity{
		{EntityNumber: 1, Position: blueprint.Position{X: 0.5, Y: 0.5}},
	}

	inner := blueprint.NewBook()
	inner.Blueprints = []blueprint.BookEntry{{Blueprint: bad}}

	b := NewBook()
	b.Book().Blueprints = []blueprint.BookEntry{{Book: inner}}

	issues := b.Validate()
	require.NotEmpty(t, issues)
	assert.Equal(t, SeverityError, issues[0].Severity)
}

func TestBookRoundTrip(t *testing.T) {
	b := NewBook()
	label := "Trip"
	require.NoError(t, b.SetMetadata(Metadata{Label: &label}))
	b.AddBlueprint(labeled("inner", 2))

	s, err := b.ToString()
	require.NoError(t, err)

	loaded, err := BookFromString(s)
	require.NoError(t, err)
	assert.Equal(t, "Trip", loaded.Book().Label)
	require.Equal(t, 1, loaded.Len())
	assert.Equal(t, "inner", loaded.Blueprint(0).Label)
	assert.Len(t, loaded.Blueprint(0).Entities, 2)
}
