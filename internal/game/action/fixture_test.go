package action

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cory-johannsen/colony/internal/game/command"
	"github.com/cory-johannsen/colony/internal/game/dice"
	"github.com/cory-johannsen/colony/internal/game/state"
	"github.com/cory-johannsen/colony/internal/game/world"
	"github.com/cory-johannsen/colony/internal/storage"
)

const testWorld = `
world:
  spaces:
    - {id: 1, name: Hall, discovered: true}
    - {id: 2, name: Cellar}
    - {id: 3, name: Vault}
  links:
    - {id: 21, name: Stairs, origin: 1, destination: 2, direction: south, open: true}
    - {id: 22, name: Stairs_up, origin: 2, destination: 1, direction: north, open: true}
    - {id: 20, name: Vault_door, origin: 2, destination: 3, direction: east, open: false}
  objects:
    - {id: 10, name: key, location: 1, movable: true, description: "A brass key"}
    - {id: 11, name: box, location: 1, movable: true}
    - {id: 12, name: coin, location: 1, movable: true, dependency: 11}
    - {id: 13, name: gem, location: 1, movable: true, dependency: 12}
    - {id: 14, name: lore, description: "Old stories"}
    - {id: 15, name: statue, location: 1, movable: false}
    - {id: 16, name: potion, location: 1, movable: true, health: 3}
    - {id: 17, name: poison, location: 1, movable: true, health: -20}
    - {id: 50, name: charm, location: 1, movable: true, open: 20}
  characters:
    - {id: 30, name: spider, location: 1, friendly: false, health: 1, gdesc: "/\\oo/\\", message: "hiss"}
    - {id: 31, name: ant, location: 1, friendly: true, health: 5, gdesc: "^mo", message: "For the queen"}
    - {id: 32, name: guard, location: 2, friendly: false, health: 5, gdesc: "G"}
  players:
    - {id: 1, name: Ann, gdesc: "Ann", location: 1, health: 10, backpack: 10}
    - {id: 2, name: Bob, gdesc: "Bob", location: 1, health: 10, backpack: 10}
`

func loadGame(t *testing.T, src string, values ...int) *state.Game {
	t.Helper()
	if len(values) == 0 {
		values = []int{0}
	}
	def, err := world.LoadDefinitionFromBytes([]byte(src))
	require.NoError(t, err)
	roller := dice.NewLoggedRoller(&dice.FixedSource{Values: values}, zap.NewNop())
	g, err := state.FromDefinition(def, roller)
	require.NoError(t, err)
	return g
}

func newTestDispatcher(t *testing.T, store storage.SaveStore, values ...int) (*Dispatcher, *state.Game) {
	t.Helper()
	g := loadGame(t, testWorld, values...)
	return NewDispatcher(g, store, zap.NewNop()), g
}

// run interprets line, dispatches it and returns the command.
func run(d *Dispatcher, line string) *command.Command {
	cmd := command.DefaultRegistry().Interpret(line)
	_ = d.Dispatch(context.Background(), cmd)
	return cmd
}
