package action

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/colony/internal/game/command"
	"github.com/cory-johannsen/colony/internal/game/entity"
)

func TestTake_MovesObjectAndPassesTurn(t *testing.T) {
	d, g := newTestDispatcher(t, nil)
	ann := g.CurrentPlayer()

	cmd := run(d, "take key")
	require.Equal(t, command.StatusOK, cmd.Status)
	assert.True(t, ann.Has(10))
	assert.False(t, g.Space(1).Objects().Has(10))
	assert.Equal(t, entity.NoID, g.ObjectLocation(10))
	assert.Equal(t, "Bob", g.CurrentPlayer().Name)
}

func TestTake_Failures(t *testing.T) {
	cases := []struct {
		name  string
		line  string
		setup func(*testing.T, *Dispatcher)
	}{
		{name: "unknown object", line: "take nothing"},
		{name: "object elsewhere", line: "take key", setup: func(t *testing.T, d *Dispatcher) {
			require.NoError(t, d.game.PlaceObject(10, 2))
		}},
		{name: "dependency unmet", line: "take coin"},
		{name: "fixed object", line: "take statue"},
		{name: "unplaced lore", line: "take lore"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, g := newTestDispatcher(t, nil)
			if tc.setup != nil {
				tc.setup(t, d)
			}
			ann := g.CurrentPlayer()

			cmd := run(d, tc.line)
			assert.Equal(t, command.StatusError, cmd.Status)
			assert.Equal(t, 0, ann.Inventory().Len())
			assert.Same(t, ann, g.CurrentPlayer(), "a failed command keeps the turn")
		})
	}
}

func TestTake_DependencyMet(t *testing.T) {
	d, g := newTestDispatcher(t, nil)
	ann := g.CurrentPlayer()
	require.NoError(t, g.GiveObject(ann, 11))

	cmd := run(d, "t COIN")
	assert.Equal(t, command.StatusOK, cmd.Status)
	assert.True(t, ann.Has(12))
}

func TestDrop_Transitive(t *testing.T) {
	d, g := newTestDispatcher(t, nil)
	ann := g.CurrentPlayer()
	for _, id := range []entity.ID{11, 12, 13, 10} {
		require.NoError(t, g.GiveObject(ann, id))
	}
	require.NoError(t, g.RelocateParty(ann, 2))

	cmd := run(d, "drop box")
	require.Equal(t, command.StatusOK, cmd.Status)
	for _, id := range []entity.ID{11, 12, 13} {
		assert.Equal(t, entity.ID(2), g.ObjectLocation(id), "object %d", id)
		assert.False(t, ann.Has(id))
	}
	assert.True(t, ann.Has(10), "unrelated objects stay carried")
	assert.Equal(t, "Bob", g.CurrentPlayer().Name)
}

func TestDrop_DependencyCycleTerminates(t *testing.T) {
	d, g := newTestDispatcher(t, nil)
	ann := g.CurrentPlayer()
	g.Object(11).Dependency = 12
	require.NoError(t, g.GiveObject(ann, 11))
	require.NoError(t, g.GiveObject(ann, 12))

	cmd := run(d, "drop coin")
	require.Equal(t, command.StatusOK, cmd.Status)
	assert.Equal(t, 0, ann.Inventory().Len())
}

func TestDrop_NotCarried(t *testing.T) {
	d, g := newTestDispatcher(t, nil)
	cmd := run(d, "drop key")
	assert.Equal(t, command.StatusError, cmd.Status)
	assert.Equal(t, entity.ID(1), g.ObjectLocation(10))
	assert.Equal(t, "Ann", g.CurrentPlayer().Name)
}

func TestInspect(t *testing.T) {
	d, g := newTestDispatcher(t, nil)
	assert.Equal(t, command.StatusOK, run(d, "inspect lore").Status)
	assert.Equal(t, command.StatusOK, run(d, "i key").Status)
	assert.Equal(t, "Ann", g.CurrentPlayer().Name, "inspect does not use the turn")

	require.NoError(t, g.PlaceObject(10, 2))
	assert.Equal(t, command.StatusError, run(d, "inspect key").Status)
	assert.Equal(t, command.StatusError, run(d, "inspect ghost").Status)
}

func TestUse_OnSelf(t *testing.T) {
	d, g := newTestDispatcher(t, nil)
	ann := g.CurrentPlayer()
	require.NoError(t, g.GiveObject(ann, 16))

	cmd := run(d, "use potion")
	require.Equal(t, command.StatusOK, cmd.Status)
	assert.Equal(t, 13, ann.Health())
	assert.Nil(t, g.Object(16), "consumed objects are destroyed")
	assert.False(t, ann.Has(16))
	assert.Equal(t, "Bob", g.CurrentPlayer().Name)
}

func TestUse_LethalExcludesPlayer(t *testing.T) {
	d, g := newTestDispatcher(t, nil)
	ann := g.CurrentPlayer()
	require.NoError(t, g.GiveObject(ann, 17))

	cmd := run(d, "use poison")
	require.Equal(t, command.StatusOK, cmd.Status)
	assert.Equal(t, 0, ann.Health())
	assert.Equal(t, 1, g.NumAlive())
	assert.Equal(t, "Bob", g.CurrentPlayer().Name)
}

func TestUse_OverFollower(t *testing.T) {
	d, g := newTestDispatcher(t, nil)
	ann := g.CurrentPlayer()
	require.NoError(t, g.GiveObject(ann, 16))
	g.Character(31).Following = ann.ID

	cmd := run(d, "use potion over ant")
	require.Equal(t, command.StatusOK, cmd.Status)
	assert.Equal(t, 8, g.Character(31).Health)
	assert.Equal(t, 10, ann.Health())
	assert.Nil(t, g.Object(16))
}

func TestUse_LethalOverFollowerDestroysIt(t *testing.T) {
	d, g := newTestDispatcher(t, nil)
	ann := g.CurrentPlayer()
	require.NoError(t, g.GiveObject(ann, 17))
	g.Character(31).Following = ann.ID

	cmd := run(d, "use poison over ant")
	require.Equal(t, command.StatusOK, cmd.Status)
	assert.Nil(t, g.CharacterByName("ant"))
	assert.Empty(t, g.FollowersOf(ann.ID))
	assert.Nil(t, g.Object(17))
	assert.False(t, ann.Has(17))
	assert.Equal(t, 10, ann.Health())
	assert.Equal(t, "Bob", g.CurrentPlayer().Name)
}

func TestUse_OverDeadFollowerHasNoEffect(t *testing.T) {
	d, g := newTestDispatcher(t, nil)
	ann := g.CurrentPlayer()
	require.NoError(t, g.GiveObject(ann, 16))
	g.Character(31).Following = ann.ID
	g.Character(31).Health = 0

	cmd := run(d, "use potion over ant")
	require.Equal(t, command.StatusOK, cmd.Status)
	assert.True(t, ann.Has(16))
	assert.Equal(t, 0, g.Character(31).Health)
}

func TestUse_OverStrangerFallsBackToSelf(t *testing.T) {
	d, g := newTestDispatcher(t, nil)
	ann := g.CurrentPlayer()
	require.NoError(t, g.GiveObject(ann, 16))

	cmd := run(d, "use potion over ant")
	require.Equal(t, command.StatusOK, cmd.Status)
	assert.Equal(t, 5, g.Character(31).Health)
	assert.Equal(t, 13, ann.Health())
}

func TestUse_NotCarried(t *testing.T) {
	d, _ := newTestDispatcher(t, nil)
	assert.Equal(t, command.StatusError, run(d, "use potion").Status)
	assert.Equal(t, command.StatusError, run(d, "use potion over ant").Status)
}

func TestOpen(t *testing.T) {
	d, g := newTestDispatcher(t, nil)
	ann := g.CurrentPlayer()
	require.NoError(t, g.GiveObject(ann, 50))

	cmd := run(d, "open Vault_door with charm")
	require.Equal(t, command.StatusOK, cmd.Status)
	assert.True(t, g.Link(20).Open)

	cmd = run(d, "open Vault_door with charm")
	assert.Equal(t, command.StatusError, cmd.Status, "an open link cannot be opened again")
}

func TestOpen_Failures(t *testing.T) {
	d, g := newTestDispatcher(t, nil)
	ann := g.CurrentPlayer()
	assert.Equal(t, command.StatusError, run(d, "open Vault_door with charm").Status, "charm not carried")

	require.NoError(t, g.GiveObject(ann, 10))
	assert.Equal(t, command.StatusError, run(d, "open Vault_door with key").Status, "wrong key")
	assert.Equal(t, command.StatusError, run(d, "open Vault_door").Status, "malformed")
	assert.Equal(t, command.StatusError, run(d, "open Nowhere with key").Status, "unknown link")
	assert.False(t, g.Link(20).Open)
}
