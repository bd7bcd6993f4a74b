package blueprint

import (
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	bp := New()
	assert.Equal(t, "blueprint", bp.Item)
	assert.Equal(t, DefaultVersion, bp.Version)
	assert.Empty(t, bp.Entities)
	assert.Empty(t, bp.Tiles)

	book := NewBook()
	assert.Equal(t, "blueprint-book", book.Item)
	assert.Equal(t, DefaultVersion, book.Version)
	assert.Zero(t, book.ActiveIndex)
}

func TestValidDirection(t *testing.T) {
	for _, d := range []uint8{DirectionNorth, DirectionEast, DirectionSouth, DirectionWest} {
		assert.True(t, ValidDirection(d), "direction %d", d)
	}
	for _, d := range []uint8{1, 3, 5, 7, 8, 255} {
		assert.False(t, ValidDirection(d), "direction %d", d)
	}
}

func TestGameVersion(t *testing.T) {
	major, minor, patch := GameVersion(DefaultVersion)
	assert.Equal(t, uint16(1), major)
	assert.Equal(t, uint16(1), minor)
	assert.Equal(t, uint16(61), patch)
}

func TestEntityJSONShape(t *testing.T) {
	ent := Entity{
		ID:           "editor-handle",
		EntityNumber: 1,
		Name:         "transport-belt",
		Position:     Position{X: 1.5, Y: 2.5},
		Direction:    DirectionEast,
	}

	raw, err := sonic.Marshal(ent)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, sonic.Unmarshal(raw, &decoded))

	assert.NotContains(t, decoded, "ID", "editor handle must not serialize")
	assert.NotContains(t, decoded, "recipe", "empty optional fields omitted")
	assert.NotContains(t, decoded, "bar")
	assert.Equal(t, "transport-belt", decoded["name"])
	assert.Equal(t, float64(2), decoded["direction"])
}

func TestEntityJSONOmitsZeroDirection(t *testing.T) {
	ent := Entity{EntityNumber: 1, Name: "lamp"}

	raw, err := sonic.Marshal(ent)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, sonic.Unmarshal(raw, &decoded))
	assert.NotContains(t, decoded, "direction")
}
