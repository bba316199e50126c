package storage_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/colony/internal/game/entity"
	"github.com/cory-johannsen/colony/internal/game/world"
	"github.com/cory-johannsen/colony/internal/storage"
)

const sampleGame = `#s:1|Entrance|1|  ___  |  (_)  |
#s:2|Tunnel|0|
#s:3|Nest|0

garbage line that is ignored
#o:10|Food|1|Tasty crumbs|2|1|-1|-1|
#o:11|Key|-1|Opens the gate|0|1|-1|5
#c:20|Queen_Ant|3|1|10|Mmo^|Feed me|-1|
#l:5|Gate|1|2|1|0|
#l:6|Gate_back|2|1|0|1|
#p:1|mouse|_Oo|2|5|3|2|11|
#p:2|rat|^o^|1|5|4|
#t:1
`

func TestDecode_Sample(t *testing.T) {
	def, err := storage.DecodeBytes([]byte(sampleGame))
	require.NoError(t, err)

	require.Len(t, def.Spaces, 3)
	assert.Equal(t, "Entrance", def.Spaces[0].Name)
	assert.True(t, def.Spaces[0].Discovered)
	assert.Equal(t, "  ___  ", def.Spaces[0].GDesc(0))
	assert.Equal(t, "  (_)  ", def.Spaces[0].GDesc(1))
	assert.Equal(t, "", def.Spaces[0].GDesc(2))
	assert.False(t, def.Spaces[2].Discovered)

	require.Len(t, def.Objects, 2)
	assert.Equal(t, entity.ID(1), def.Objects[0].Location)
	assert.Equal(t, 2, def.Objects[0].Object.Health)
	assert.Equal(t, entity.NoID, def.Objects[0].Object.Dependency)
	assert.Equal(t, entity.ID(5), def.Objects[1].Object.Open)

	require.Len(t, def.Characters, 1)
	c := def.Characters[0]
	assert.Equal(t, "Queen_Ant", c.Character.Name)
	assert.Equal(t, entity.ID(3), c.Location)
	assert.True(t, c.Character.Friendly)
	assert.Equal(t, "Feed me", c.Character.Message)

	require.Len(t, def.Links, 2)
	assert.Equal(t, world.South, def.Links[0].Direction)
	assert.False(t, def.Links[0].Open)

	require.Len(t, def.Players, 2)
	mouse := def.Players[0]
	assert.Equal(t, "_Oo", mouse.GDesc)
	assert.Equal(t, 3, mouse.Inventory().Max())
	assert.Equal(t, 2, mouse.Damage())
	assert.True(t, mouse.Has(11))
	rat := def.Players[1]
	assert.Equal(t, 1, rat.Damage(), "damage defaults when omitted")
	assert.Equal(t, 0, rat.Inventory().Len())

	assert.Equal(t, 1, def.Turn)
}

func TestDecode_Errors(t *testing.T) {
	cases := map[string]string{
		"bad id":        "#s:x|Hall|0|\n",
		"short object":  "#s:1|Hall|0|\n#o:10|Food|1|\n",
		"bad bool":      "#s:1|Hall|2|\n",
		"bad turn":      "#t:abc\n",
		"dangling link": "#s:1|Hall|0|\n#l:5|Gate|1|9|1|0|\n",
		"long gdesc":    "#s:1|Hall|0|1234567890123456789012345678901|\n",
		"bad inventory": "#s:1|Hall|0|\n#p:1|mouse|_Oo|1|5|3|1|zz|\n",
	}
	for name, in := range cases {
		_, err := storage.DecodeBytes([]byte(in))
		assert.Error(t, err, name)
	}
}

func TestDecode_CRLFAndMissingTrailingPipe(t *testing.T) {
	def, err := storage.DecodeBytes([]byte("#s:1|Hall|1\r\n#p:1|mouse|m|1|5|3\r\n#t:0\r\n"))
	require.NoError(t, err)
	assert.Equal(t, "Hall", def.Spaces[0].Name)
	assert.Equal(t, "mouse", def.Players[0].Name)
}

func TestEncode_RoundTrip(t *testing.T) {
	def, err := storage.DecodeBytes([]byte(sampleGame))
	require.NoError(t, err)

	data, err := storage.EncodeBytes(def)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "#c:20|Queen_Ant|3|1|10|Mmo^|Feed me|-1|\n")
	assert.Contains(t, text, "#p:1|mouse|_Oo|2|5|3|2|11|\n")
	assert.True(t, strings.HasSuffix(text, "#t:1\n"))

	again, err := storage.DecodeBytes(data)
	require.NoError(t, err)
	data2, err := storage.EncodeBytes(again)
	require.NoError(t, err)
	assert.Equal(t, text, string(data2))
}

func TestEncode_RejectsDelimiters(t *testing.T) {
	def, err := storage.DecodeBytes([]byte(sampleGame))
	require.NoError(t, err)
	def.Objects[0].Object.Description = "a|b"
	_, err = storage.EncodeBytes(def)
	assert.ErrorIs(t, err, storage.ErrUnencodable)
}

func TestValidateSlot(t *testing.T) {
	assert.NoError(t, storage.ValidateSlot("slot1"))
	for _, bad := range []string{"", "  ", "../x", "a/b", "..", "."} {
		assert.ErrorIs(t, storage.ValidateSlot(bad), storage.ErrInvalidSlot, bad)
	}
}

func TestProperty_EncodeDecodeStable(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		def, err := storage.DecodeBytes([]byte(sampleGame))
		require.NoError(rt, err)
		def.Spaces[1].Name = rapid.StringMatching(`[A-Za-z_ ]{1,20}`).Draw(rt, "name")
		def.Objects[0].Object.Health = rapid.IntRange(-50, 50).Draw(rt, "health")
		def.Links[1].Open = rapid.Bool().Draw(rt, "open")

		data, err := storage.EncodeBytes(def)
		require.NoError(rt, err)
		again, err := storage.DecodeBytes(data)
		require.NoError(rt, err)
		assert.Equal(rt, strings.TrimSpace(def.Spaces[1].Name), again.Spaces[1].Name)
		assert.Equal(rt, def.Objects[0].Object.Health, again.Objects[0].Object.Health)
		assert.Equal(rt, def.Links[1].Open, again.Links[1].Open)
	})
}
