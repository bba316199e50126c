package state

import (
	"fmt"

	"github.com/cory-johannsen/colony/internal/game/command"
	"github.com/cory-johannsen/colony/internal/game/entity"
	"github.com/cory-johannsen/colony/internal/game/player"
)

// DeadPlayerGDesc is shown in place of a dead player's tag.
const DeadPlayerGDesc = "/+\\"

// CurrentPlayerGDesc returns the acting player's tag, DeadPlayerGDesc when
// that player is dead, or "" when there is none.
func (g *Game) CurrentPlayerGDesc() string {
	p := g.CurrentPlayer()
	switch {
	case p == nil:
		return ""
	case !p.IsAlive():
		return DeadPlayerGDesc
	default:
		return p.GDesc
	}
}

// ObjectNamesAt returns the names of the objects lying in spaceID, or nil
// when the space is unknown or undiscovered.
func (g *Game) ObjectNamesAt(spaceID entity.ID) []string {
	s := g.Space(spaceID)
	if s == nil || !s.Discovered {
		return nil
	}
	var names []string
	for _, id := range s.Objects().IDs() {
		if o := g.Object(id); o != nil {
			names = append(names, o.Name)
		}
	}
	return names
}

// CharacterTagsAt returns the graphical tags of the live characters in
// spaceID, or nil when the space is unknown or undiscovered.
func (g *Game) CharacterTagsAt(spaceID entity.ID) []string {
	s := g.Space(spaceID)
	if s == nil || !s.Discovered {
		return nil
	}
	var tags []string
	for _, id := range s.Characters().IDs() {
		if c := g.Character(id); c != nil {
			tags = append(tags, c.GDesc)
		}
	}
	return tags
}

// OtherPlayersAt returns the players other than the acting one standing in
// spaceID, in registration order.
func (g *Game) OtherPlayersAt(spaceID entity.ID) []*player.Player {
	cur := g.CurrentPlayer()
	var out []*player.Player
	for _, p := range g.players {
		if p != cur && p.Location == spaceID {
			out = append(out, p)
		}
	}
	return out
}

// Info returns the side-panel lines: discovered objects and characters
// with their locations, every player, the acting player's inventory, and
// feedback for a successful INSPECT or CHAT.
func (g *Game) Info() []string {
	lines := []string{"Objects:"}
	for _, o := range g.Objects() {
		loc := g.ObjectLocation(o.ID)
		if s := g.Space(loc); s != nil && s.Discovered {
			lines = append(lines, fmt.Sprintf("   %s: %3d", o.Name, loc))
		}
	}

	lines = append(lines, "Characters:")
	for _, c := range g.Characters() {
		loc := g.CharacterLocation(c.ID)
		if s := g.Space(loc); s != nil && s.Discovered {
			lines = append(lines, fmt.Sprintf("   %-6s: %3d (%d)", c.GDesc, loc, c.Health))
		}
	}

	lines = append(lines, "Players:")
	cur := g.CurrentPlayer()
	for _, p := range g.players {
		lines = append(lines, fmt.Sprintf("   %6s %3d (%d)", p.GDesc, p.Location, p.Health()))
		if p != cur {
			continue
		}
		lines = append(lines, "      Inventory:")
		for _, id := range p.Inventory().IDs() {
			if o := g.Object(id); o != nil {
				lines = append(lines, "         "+o.Name)
			}
		}
	}

	cmd := g.lastCmd
	if !cmd.Succeeded() {
		return lines
	}
	switch cmd.Code {
	case command.Inspect:
		if o := g.ObjectByName(cmd.Arg); o != nil {
			lines = append(lines, fmt.Sprintf("Inspection of the object %s is: %s", o.Name, o.Description))
		}
	case command.Chat:
		if c := g.CharacterByName(cmd.Arg); c != nil {
			lines = append(lines, "Message: "+c.Message)
		}
	}
	return lines
}
