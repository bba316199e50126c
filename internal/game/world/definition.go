package world

import (
	"fmt"

	"github.com/cory-johannsen/colony/internal/game/entity"
	"github.com/cory-johannsen/colony/internal/game/inventory"
	"github.com/cory-johannsen/colony/internal/game/npc"
	"github.com/cory-johannsen/colony/internal/game/player"
)

// PlacedObject is an object together with the space it lies in.
// Location NoID means the object is carried or exists only as lore.
type PlacedObject struct {
	Object   *inventory.Object
	Location entity.ID
}

// PlacedCharacter is a character together with the space it occupies.
type PlacedCharacter struct {
	Character *npc.Character
	Location  entity.ID
}

// Definition is a complete, not yet assembled world: every record plus
// where it starts. It is produced by the YAML loader and by the game-file
// codec and consumed when building a game.
type Definition struct {
	Spaces     []*Space
	Links      []*Link
	Objects    []PlacedObject
	Characters []PlacedCharacter
	Players    []*player.Player
	// Turn is the alive-slot index of the acting player.
	Turn int
}

// Validate checks cross-record invariants.
//
// Postcondition: Returns nil if valid, or an error describing the first violation.
func (d *Definition) Validate() error {
	spaces := make(map[entity.ID]bool, len(d.Spaces))
	for _, s := range d.Spaces {
		if s.ID == entity.NoID {
			return fmt.Errorf("space with name %q has no id", s.Name)
		}
		spaces[s.ID] = true
	}

	links := make(map[entity.ID]bool, len(d.Links))
	for _, l := range d.Links {
		if links[l.ID] {
			return fmt.Errorf("link %d: duplicate id", l.ID)
		}
		links[l.ID] = true
		if !l.Direction.IsValid() {
			return fmt.Errorf("link %d: invalid direction %d", l.ID, l.Direction)
		}
		if !spaces[l.Origin] {
			return fmt.Errorf("link %d: origin %d is not a space", l.ID, l.Origin)
		}
		if !spaces[l.Destination] {
			return fmt.Errorf("link %d: destination %d is not a space", l.ID, l.Destination)
		}
	}

	objects := make(map[entity.ID]bool, len(d.Objects))
	for _, po := range d.Objects {
		if objects[po.Object.ID] {
			return fmt.Errorf("object %d: duplicate id", po.Object.ID)
		}
		objects[po.Object.ID] = true
		if po.Location != entity.NoID && !spaces[po.Location] {
			return fmt.Errorf("object %d: location %d is not a space", po.Object.ID, po.Location)
		}
	}

	chars := make(map[entity.ID]bool, len(d.Characters))
	for _, pc := range d.Characters {
		if chars[pc.Character.ID] {
			return fmt.Errorf("character %d: duplicate id", pc.Character.ID)
		}
		chars[pc.Character.ID] = true
		if pc.Location != entity.NoID && !spaces[pc.Location] {
			return fmt.Errorf("character %d: location %d is not a space", pc.Character.ID, pc.Location)
		}
	}

	players := make(map[entity.ID]bool, len(d.Players))
	for _, p := range d.Players {
		if players[p.ID] {
			return fmt.Errorf("player %d: duplicate id", p.ID)
		}
		players[p.ID] = true
		if !spaces[p.Location] {
			return fmt.Errorf("player %d: location %d is not a space", p.ID, p.Location)
		}
		for _, oid := range p.Inventory().IDs() {
			if !objects[oid] {
				return fmt.Errorf("player %d: carries unknown object %d", p.ID, oid)
			}
		}
	}
	return nil
}
