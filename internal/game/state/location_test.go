package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/colony/internal/game/entity"
	"github.com/cory-johannsen/colony/internal/game/npc"
)

func countSpacesHolding(g *Game, id entity.ID) int {
	n := 0
	for _, s := range g.Spaces() {
		if s.Objects().Has(id) {
			n++
		}
	}
	return n
}

func TestPlaceObject_MovesBetweenSpaces(t *testing.T) {
	g := newTestGame(t)
	require.NoError(t, g.PlaceObject(10, 2))
	assert.Equal(t, entity.ID(2), g.ObjectLocation(10))
	assert.False(t, g.Space(1).Objects().Has(10))

	require.NoError(t, g.PlaceObject(10, entity.NoID))
	assert.Equal(t, entity.NoID, g.ObjectLocation(10))
}

func TestPlaceObject_Errors(t *testing.T) {
	g := newTestGame(t)
	assert.ErrorIs(t, g.PlaceObject(999, 1), ErrNotFound)
	assert.ErrorIs(t, g.PlaceObject(10, 999), ErrNotFound)
	assert.Equal(t, entity.ID(1), g.ObjectLocation(10))
}

func TestGiveObject_LeavesSpace(t *testing.T) {
	g := newTestGame(t)
	ann := g.Player(1)
	require.NoError(t, g.GiveObject(ann, 10))
	assert.True(t, ann.Has(10))
	assert.Equal(t, entity.NoID, g.ObjectLocation(10))
	assert.Equal(t, ann, g.ObjectCarrier(10))

	require.NoError(t, g.PlaceObject(10, 2))
	assert.False(t, ann.Has(10))
	assert.Nil(t, g.ObjectCarrier(10))
}

func TestGiveObject_FullInventoryChangesNothing(t *testing.T) {
	g := newTestGame(t)
	ann := g.Player(1)
	require.NoError(t, ann.Inventory().SetMax(1))
	require.NoError(t, g.GiveObject(ann, 10))
	assert.ErrorIs(t, g.GiveObject(ann, 11), ErrNoRoom)
	assert.Equal(t, entity.ID(1), g.ObjectLocation(11))
}

func TestPlaceCharacter(t *testing.T) {
	g := newTestGame(t)
	require.NoError(t, g.PlaceCharacter(30, 2))
	assert.Equal(t, entity.ID(2), g.CharacterLocation(30))
	assert.False(t, g.Space(1).Characters().Has(30))

	require.NoError(t, g.PlaceCharacter(30, entity.NoID))
	assert.Equal(t, entity.NoID, g.CharacterLocation(30))
	assert.ErrorIs(t, g.PlaceCharacter(30, 77), ErrNotFound)
	assert.ErrorIs(t, g.PlaceCharacter(77, 1), ErrNotFound)
}

func TestEnemyAt(t *testing.T) {
	g := newTestGame(t)
	assert.Equal(t, entity.ID(30), g.EnemyAt(1).ID)
	g.Character(30).Health = 0
	assert.Nil(t, g.EnemyAt(1))
	assert.Nil(t, g.EnemyAt(entity.NoID))
}

func TestRelocateParty_MovesFollowers(t *testing.T) {
	g := newTestGame(t)
	ann := g.Player(1)
	g.Character(31).Following = ann.ID

	require.NoError(t, g.RelocateParty(ann, 2))
	assert.Equal(t, entity.ID(2), ann.Location)
	assert.True(t, g.Space(2).Discovered)
	assert.Equal(t, entity.ID(2), g.CharacterLocation(31))
	assert.Equal(t, entity.ID(1), g.CharacterLocation(30))
}

func TestRelocateParty_AllOrNothing(t *testing.T) {
	g := newTestGame(t)
	ann := g.Player(1)
	g.Character(31).Following = ann.ID

	for i := 0; i < entity.MaxIDs; i++ {
		c := npc.NewCharacter(entity.ID(1000 + i))
		g.characters = append(g.characters, characterSlot{char: c})
		require.NoError(t, g.Space(2).Characters().Add(c.ID))
	}

	assert.ErrorIs(t, g.RelocateParty(ann, 2), ErrNoRoom)
	assert.Equal(t, entity.ID(1), ann.Location)
	assert.Equal(t, entity.ID(1), g.CharacterLocation(31))
	assert.False(t, g.Space(2).Discovered)
}

func TestProperty_ObjectNeverInTwoPlaces(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		g := newTestGame(t)
		ids := []entity.ID{10, 11, 12, 50, 14}
		steps := rapid.IntRange(1, 40).Draw(rt, "steps")
		for i := 0; i < steps; i++ {
			id := rapid.SampledFrom(ids).Draw(rt, "id")
			switch rapid.IntRange(0, 2).Draw(rt, "op") {
			case 0:
				_ = g.PlaceObject(id, rapid.SampledFrom([]entity.ID{entity.NoID, 1, 2, 3}).Draw(rt, "space"))
			case 1:
				_ = g.GiveObject(g.PlayerAt(rapid.IntRange(0, 1).Draw(rt, "player")), id)
			case 2:
				if g.Object(id) != nil && rapid.Bool().Draw(rt, "destroy") {
					_ = g.DestroyObject(id)
				}
			}
			for _, oid := range ids {
				holders := countSpacesHolding(g, oid)
				for _, p := range g.Players() {
					if p.Has(oid) {
						holders++
					}
				}
				if holders > 1 {
					rt.Fatalf("object %d held in %d places", oid, holders)
				}
			}
		}
	})
}
