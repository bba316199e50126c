package world

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/colony/internal/game/entity"
)

const validWorldYAML = `
world:
  turn: 0
  spaces:
    - id: 1
      name: "Nest entrance"
      discovered: true
      gdesc:
        - "  ___  "
        - " /   | "
    - id: 2
      name: "Tunnel"
  links:
    - id: 31
      name: Passage
      origin: 1
      destination: 2
      direction: south
      open: true
    - id: 32
      name: Passage_back
      origin: 2
      destination: 1
      direction: n
  objects:
    - id: 50
      name: Key
      description: |
        An old key.
      location: 1
      movable: true
      open: 32
    - id: 51
      name: Scroll
      description: "Lore."
  characters:
    - id: 70
      name: Queen_Ant
      location: 2
      friendly: true
      health: 10
      gdesc: "Mmo^"
      message: "Feed me."
  players:
    - id: 1
      name: mouse
      gdesc: "_Oo"
      location: 1
      health: 5
      backpack: 3
      inventory: [51]
`

func TestLoadDefinitionFromBytes_Valid(t *testing.T) {
	def, err := LoadDefinitionFromBytes([]byte(validWorldYAML))
	require.NoError(t, err)

	require.Len(t, def.Spaces, 2)
	assert.Equal(t, "Nest entrance", def.Spaces[0].Name)
	assert.True(t, def.Spaces[0].Discovered)
	assert.Equal(t, "  ___  ", def.Spaces[0].GDesc(0))

	require.Len(t, def.Links, 2)
	assert.Equal(t, South, def.Links[0].Direction)
	assert.Equal(t, North, def.Links[1].Direction)
	assert.False(t, def.Links[1].Open)

	require.Len(t, def.Objects, 2)
	key := def.Objects[0]
	assert.Equal(t, entity.ID(1), key.Location)
	assert.Equal(t, "An old key.", key.Object.Description)
	assert.Equal(t, entity.ID(32), key.Object.Open)
	assert.Equal(t, entity.NoID, key.Object.Dependency)
	assert.Equal(t, entity.NoID, def.Objects[1].Location)

	require.Len(t, def.Characters, 1)
	assert.Equal(t, entity.NoID, def.Characters[0].Character.Following)

	require.Len(t, def.Players, 1)
	p := def.Players[0]
	assert.Equal(t, 5, p.Health())
	assert.Equal(t, 3, p.Inventory().Max())
	assert.True(t, p.Has(51))
}

func TestLoadDefinitionFromBytes_InvalidYAML(t *testing.T) {
	_, err := LoadDefinitionFromBytes([]byte("not: [valid yaml"))
	assert.Error(t, err)
}

func TestLoadDefinitionFromBytes_UnknownDirection(t *testing.T) {
	_, err := LoadDefinitionFromBytes([]byte(`
world:
  spaces: [{id: 1, name: a}]
  links: [{id: 2, name: l, origin: 1, destination: 1, direction: sideways}]
`))
	assert.Error(t, err)
}

func TestLoadDefinitionFromBytes_DanglingLink(t *testing.T) {
	_, err := LoadDefinitionFromBytes([]byte(`
world:
  spaces: [{id: 1, name: a}]
  links: [{id: 2, name: l, origin: 1, destination: 9, direction: north}]
`))
	assert.ErrorContains(t, err, "destination 9")
}

func TestLoadDefinitionFromBytes_PlayerCarriesUnknownObject(t *testing.T) {
	_, err := LoadDefinitionFromBytes([]byte(`
world:
  spaces: [{id: 1, name: a}]
  players: [{id: 1, name: p, gdesc: "o", location: 1, health: 1, inventory: [99]}]
`))
	assert.ErrorContains(t, err, "unknown object 99")
}

func TestLoadDefinitionFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "world.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validWorldYAML), 0644))

	def, err := LoadDefinitionFromFile(path)
	require.NoError(t, err)
	assert.Len(t, def.Spaces, 2)

	_, err = LoadDefinitionFromFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestMarshalYAML_RoundTrip(t *testing.T) {
	def, err := LoadDefinitionFromBytes([]byte(validWorldYAML))
	require.NoError(t, err)

	data, err := MarshalYAML(def)
	require.NoError(t, err)

	again, err := LoadDefinitionFromBytes(data)
	require.NoError(t, err)
	assert.Equal(t, len(def.Spaces), len(again.Spaces))
	assert.Equal(t, def.Objects[0].Object, again.Objects[0].Object)
	assert.Equal(t, def.Objects[1].Location, again.Objects[1].Location)
	assert.Equal(t, def.Players[0].Inventory().IDs(), again.Players[0].Inventory().IDs())
	assert.Equal(t, def.Spaces[0].GDescRows(), again.Spaces[0].GDescRows())
}
