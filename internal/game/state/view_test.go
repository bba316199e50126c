package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/colony/internal/game/command"
	"github.com/cory-johannsen/colony/internal/game/entity"
)

func TestCurrentPlayerGDesc(t *testing.T) {
	g := newTestGame(t)
	assert.Equal(t, "PA", g.CurrentPlayerGDesc())
	require.NoError(t, g.Player(1).SetHealth(0))
	assert.Equal(t, DeadPlayerGDesc, g.CurrentPlayerGDesc())
	assert.Equal(t, "", New(fixedRoller(0)).CurrentPlayerGDesc())
}

func TestNameListsRespectDiscovery(t *testing.T) {
	g := newTestGame(t)
	assert.ElementsMatch(t, []string{"key", "box", "coin", "charm"}, g.ObjectNamesAt(1))
	assert.ElementsMatch(t, []string{"sp", "an"}, g.CharacterTagsAt(1))

	require.NoError(t, g.PlaceObject(10, 2))
	assert.Nil(t, g.ObjectNamesAt(2))
	g.Space(2).Discovered = true
	assert.Equal(t, []string{"key"}, g.ObjectNamesAt(2))
	assert.Nil(t, g.CharacterTagsAt(entity.NoID))
}

func TestOtherPlayersAt(t *testing.T) {
	g := newTestGame(t)
	others := g.OtherPlayersAt(1)
	require.Len(t, others, 1)
	assert.Equal(t, entity.ID(2), others[0].ID)
	assert.Empty(t, g.OtherPlayersAt(2))
}

func TestInfo_Sections(t *testing.T) {
	g := newTestGame(t)
	require.NoError(t, g.GiveObject(g.Player(1), 10))

	lines := g.Info()
	assert.Contains(t, lines, "Objects:")
	assert.Contains(t, lines, "   box:   1")
	assert.NotContains(t, lines, "   key:   1")
	assert.Contains(t, lines, "Characters:")
	assert.Contains(t, lines, "   sp    :   1 (1)")
	assert.Contains(t, lines, "Players:")
	assert.Contains(t, lines, "       PA   1 (10)")
	assert.Contains(t, lines, "      Inventory:")
	assert.Contains(t, lines, "         key")
}

func TestInfo_InspectAndChatFeedback(t *testing.T) {
	g := newTestGame(t)

	g.SetLastCommand(command.New(command.Inspect, "lore"))
	assert.Contains(t, g.Info(), "Inspection of the object lore is: lore description")

	g.SetLastCommand(command.New(command.Chat, "ant"))
	assert.Contains(t, g.Info(), "Message: hello from ant")

	failed := command.New(command.Chat, "ant")
	failed.SetStatus(command.StatusError)
	g.SetLastCommand(failed)
	assert.NotContains(t, g.Info(), "Message: hello from ant")
}

func TestSetLastCommand_NilBecomesNoCmd(t *testing.T) {
	g := newTestGame(t)
	g.SetLastCommand(nil)
	require.NotNil(t, g.LastCommand())
	assert.Equal(t, command.NoCmd, g.LastCommand().Code)
}
