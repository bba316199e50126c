package state

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cory-johannsen/colony/internal/game/dice"
	"github.com/cory-johannsen/colony/internal/game/entity"
	"github.com/cory-johannsen/colony/internal/game/inventory"
	"github.com/cory-johannsen/colony/internal/game/npc"
	"github.com/cory-johannsen/colony/internal/game/player"
	"github.com/cory-johannsen/colony/internal/game/world"
)

func fixedRoller(values ...int) *dice.Roller {
	return dice.NewLoggedRoller(&dice.FixedSource{Values: values}, zap.NewNop())
}

func newPlayer(t *testing.T, id entity.ID, name string, loc entity.ID, health int) *player.Player {
	t.Helper()
	p := player.New(id)
	p.Name = name
	p.Location = loc
	require.NoError(t, p.SetGDesc("P"+name[:1]))
	require.NoError(t, p.SetHealth(health))
	return p
}

// newTestGame builds: spaces 1 (Hall), 2 (Cellar), 3 (Vault); links 1->2
// south open, 2->1 north open, 2->3 east closed (id 20); objects key (10),
// box (11), coin (12, depends on box), charm (50, opens link 20), lore (14,
// unplaced); spider (30, hostile, health 1) and ant (31, friendly, health 5)
// in Hall; players Ann (1) and Bob (2) in Hall with health 10.
func newTestGame(t *testing.T, values ...int) *Game {
	t.Helper()
	if len(values) == 0 {
		values = []int{0}
	}
	g := New(fixedRoller(values...))

	for _, s := range []struct {
		id   entity.ID
		name string
	}{{1, "Hall"}, {2, "Cellar"}, {3, "Vault"}} {
		sp := world.NewSpace(s.id)
		sp.Name = s.name
		require.NoError(t, g.AddSpace(sp))
	}
	g.Space(1).Discovered = true

	link := func(id, from, to entity.ID, dir world.Direction, open bool, name string) {
		l := world.NewLink(id)
		l.Name, l.Origin, l.Destination, l.Direction, l.Open = name, from, to, dir, open
		require.NoError(t, g.AddLink(l))
	}
	link(21, 1, 2, world.South, true, "Stairs")
	link(22, 2, 1, world.North, true, "Stairs_up")
	link(20, 2, 3, world.East, false, "Vault_door")

	obj := func(id entity.ID, name string, loc entity.ID, mut func(*inventory.Object)) {
		o := inventory.NewObject(id)
		o.Name = name
		o.Description = name + " description"
		o.Movable = true
		if mut != nil {
			mut(o)
		}
		require.NoError(t, g.AddObject(o))
		require.NoError(t, g.PlaceObject(id, loc))
	}
	obj(10, "key", 1, nil)
	obj(11, "box", 1, nil)
	obj(12, "coin", 1, func(o *inventory.Object) { o.Dependency = 11 })
	obj(50, "charm", 1, func(o *inventory.Object) { o.Open = 20 })
	obj(14, "lore", entity.NoID, nil)

	char := func(id entity.ID, name string, friendly bool, health int) {
		c := npc.NewCharacter(id)
		c.Name, c.Friendly, c.Health, c.GDesc, c.Message = name, friendly, health, name[:2], "hello from "+name
		require.NoError(t, g.AddCharacter(c))
		require.NoError(t, g.PlaceCharacter(id, 1))
	}
	char(30, "spider", false, 1)
	char(31, "ant", true, 5)

	require.NoError(t, g.AddPlayer(newPlayer(t, 1, "Ann", 1, 10)))
	require.NoError(t, g.AddPlayer(newPlayer(t, 2, "Bob", 1, 10)))
	return g
}
