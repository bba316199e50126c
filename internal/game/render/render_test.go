package render_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cory-johannsen/colony/internal/game/command"
	"github.com/cory-johannsen/colony/internal/game/dice"
	"github.com/cory-johannsen/colony/internal/game/render"
	"github.com/cory-johannsen/colony/internal/game/state"
	"github.com/cory-johannsen/colony/internal/game/world"
)

const mapWorld = `
world:
  spaces:
    - {id: 1, name: Entrance, discovered: true, gdesc: ["  ~~ hill ~~"]}
    - {id: 2, name: Pantry, discovered: true}
    - {id: 3, name: Cellar}
    - {id: 4, name: Attic}
  links:
    - {id: 10, name: EastDoor, origin: 1, destination: 2, direction: east, open: true}
    - {id: 11, name: Trapdoor, origin: 1, destination: 3, direction: down, open: false}
    - {id: 12, name: SouthGate, origin: 1, destination: 4, direction: south, open: false}
  objects:
    - {id: 20, name: Crumb, location: 2, movable: true}
    - {id: 21, name: Seed, location: 3, movable: true}
  characters:
    - {id: 30, name: beetle, location: 2, friendly: false, health: 2, gdesc: "B8"}
  players:
    - {id: 1, name: Ann, gdesc: "An", location: 1, health: 10}
    - {id: 2, name: Bob, gdesc: "Bo", location: 2, health: 10}
`

func newGame(t *testing.T) *state.Game {
	t.Helper()
	def, err := world.LoadDefinitionFromBytes([]byte(mapWorld))
	require.NoError(t, err)
	g, err := state.FromDefinition(def, dice.NewLoggedRoller(&dice.FixedSource{Values: []int{0}}, zap.NewNop()))
	require.NoError(t, err)
	return g
}

func TestMap_DrawsNeighboursAndExits(t *testing.T) {
	g := newGame(t)
	r := render.New(&bytes.Buffer{}, command.DefaultRegistry())

	m := r.Map(g)
	assert.Contains(t, m, "Entrance 1")
	assert.Contains(t, m, "~~ hill ~~")
	assert.Contains(t, m, "Pantry 2")
	assert.Contains(t, m, "Bo B8", "other player then enemy tag")
	assert.Contains(t, m, "Crumb")
	assert.Contains(t, m, " > ", "east link is open")
	assert.NotContains(t, m, " < ")
	assert.NotContains(t, m, "v", "south link is closed")
	assert.Contains(t, m, "down: 3 (closed)")
	assert.NotContains(t, m, "Seed", "objects in undiscovered spaces stay hidden")
	assert.NotContains(t, m, "\x1b", "no colour escapes")
}

func TestMap_UndiscoveredNeighbourShowsOnlyID(t *testing.T) {
	g := newGame(t)
	r := render.New(&bytes.Buffer{}, command.DefaultRegistry())

	m := r.Map(g)
	assert.NotContains(t, m, "Attic")
	assert.Contains(t, m, "| 4 ")
}

func TestMap_AllPlayersDead(t *testing.T) {
	g := newGame(t)
	g.ExcludePlayer()
	g.ExcludePlayer()
	r := render.New(&bytes.Buffer{}, command.DefaultRegistry())
	assert.Equal(t, "No player is left standing.", r.Map(g))
}

func TestFeedback(t *testing.T) {
	r := render.New(&bytes.Buffer{}, command.DefaultRegistry())

	assert.Equal(t, " move (m): OK", r.Feedback(command.New(command.Move, "e")))
	failed := command.New(command.Abandon, "x")
	failed.SetStatus(command.StatusError)
	assert.Equal(t, " abandon (ab): ERROR", r.Feedback(failed))
	assert.Equal(t, " unknown (): OK", r.Feedback(command.New(command.Unknown, "")))
	assert.Equal(t, "", r.Feedback(nil))
}

func TestHelp_ListsEveryVerb(t *testing.T) {
	r := render.New(&bytes.Buffer{}, command.DefaultRegistry())
	help := r.Help()
	for _, v := range command.BuiltinVerbs() {
		assert.Contains(t, help, v.Name+" or "+v.Aliases[0])
	}
	assert.True(t, strings.HasSuffix(help, "."))
}

func TestPaint_PromptUntilExit(t *testing.T) {
	g := newGame(t)
	var out bytes.Buffer
	r := render.New(&out, command.DefaultRegistry())

	g.SetLastCommand(command.New(command.Chat, "beetle"))
	require.NoError(t, r.Paint(g))
	assert.True(t, strings.HasSuffix(out.String(), render.Prompt))
	assert.Contains(t, out.String(), render.Banner)
	assert.Contains(t, out.String(), "Players:")

	out.Reset()
	g.SetLastCommand(command.New(command.Exit, ""))
	require.NoError(t, r.Paint(g))
	assert.False(t, strings.HasSuffix(out.String(), render.Prompt))

	out.Reset()
	g.SetLastCommand(command.New(command.Chat, "beetle"))
	g.SetFinished(true)
	require.NoError(t, r.Paint(g))
	assert.NotContains(t, out.String(), render.Prompt)
}
