package state

import (
	"fmt"

	"github.com/cory-johannsen/colony/internal/game/entity"
	"github.com/cory-johannsen/colony/internal/game/inventory"
	"github.com/cory-johannsen/colony/internal/game/npc"
)

// SpawnObject registers o and places it in spaceID.
//
// Precondition: o must be non-nil.
// Postcondition: on error the object is not registered.
func (g *Game) SpawnObject(o *inventory.Object, spaceID entity.ID) error {
	if o == nil {
		return entity.ErrInvalidID
	}
	dest := g.Space(spaceID)
	if dest == nil {
		return fmt.Errorf("spawning object %d in space %d: %w", o.ID, spaceID, ErrNotFound)
	}
	if dest.Objects().Len() >= entity.MaxIDs {
		return fmt.Errorf("spawning object %d in space %d: %w", o.ID, spaceID, ErrNoRoom)
	}
	if err := g.AddObject(o); err != nil {
		return err
	}
	return g.PlaceObject(o.ID, spaceID)
}

// SpawnCharacter registers c and places it in spaceID.
//
// Precondition: c must be non-nil.
// Postcondition: on error the character is not registered.
func (g *Game) SpawnCharacter(c *npc.Character, spaceID entity.ID) error {
	if c == nil {
		return entity.ErrInvalidID
	}
	dest := g.Space(spaceID)
	if dest == nil {
		return fmt.Errorf("spawning character %d in space %d: %w", c.ID, spaceID, ErrNotFound)
	}
	if dest.Characters().Len() >= entity.MaxIDs {
		return fmt.Errorf("spawning character %d in space %d: %w", c.ID, spaceID, ErrNoRoom)
	}
	if err := g.AddCharacter(c); err != nil {
		return err
	}
	return g.PlaceCharacter(c.ID, spaceID)
}
