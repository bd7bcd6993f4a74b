package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogLoads(t *testing.T) {
	c := Default()
	require.NotNil(t, c)
	assert.Greater(t, c.Len(), 50)
}

func TestEntityLookup(t *testing.T) {
	c := Default()

	def, ok := c.Entity("assembling-machine-2")
	require.True(t, ok)
	assert.Equal(t, 3, def.Width)
	assert.Equal(t, 3, def.Height)
	assert.False(t, def.Rotatable)

	def, ok = c.Entity("splitter")
	require.True(t, ok)
	assert.True(t, def.Rotatable)

	_, ok = c.Entity("modded-mega-factory")
	assert.False(t, ok)
}

func TestFootprintRotation(t *testing.T) {
	c := Default()
	def, ok := c.Entity("splitter")
	require.True(t, ok)

	w, h := def.Footprint(0)
	assert.Equal(t, 2, w)
	assert.Equal(t, 1, h)

	// East/west facing swaps the footprint.
	w, h = def.Footprint(2)
	assert.Equal(t, 1, w)
	assert.Equal(t, 2, h)

	w, h = def.Footprint(6)
	assert.Equal(t, 1, w)
	assert.Equal(t, 2, h)
}

func TestTileLookup(t *testing.T) {
	c := Default()
	assert.True(t, c.Tile("refined-concrete"))
	assert.True(t, c.Tile("landfill"))
	assert.False(t, c.Tile("transport-belt"))
}

func TestLoadRejectsInvalidEntries(t *testing.T) {
	_, err := Load([]byte("entities:\n  - {name: broken, width: 0, height: 1}\n"))
	assert.Error(t, err)

	_, err = Load([]byte("entities: [\n"))
	assert.Error(t, err)
}
