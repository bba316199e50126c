package npc

import (
	"strings"

	"github.com/cory-johannsen/colony/internal/game/entity"
)

// Character is a non-player creature placed in a space.
//
// A character with Health <= 0 is dead but stays registered until the game
// destroys it explicitly.
type Character struct {
	ID       entity.ID
	Name     string
	Friendly bool
	Health   int
	// Following is the player this character follows. NoID means none.
	Following entity.ID
	// GDesc is the short graphical tag drawn on the map.
	GDesc string
	// Message is what the character says when chatted to.
	Message string
}

// NewCharacter returns a hostile, unaffiliated Character with the given id.
//
// Postcondition: Following is NoID.
func NewCharacter(id entity.ID) *Character {
	return &Character{ID: id, Following: entity.NoID}
}

// IsAlive reports whether Health > 0.
func (c *Character) IsAlive() bool {
	return c != nil && c.Health > 0
}

// Follows reports whether c currently follows playerID.
func (c *Character) Follows(playerID entity.ID) bool {
	return c != nil && playerID != entity.NoID && c.Following == playerID
}

// IsUnaffiliated reports whether c follows nobody.
func (c *Character) IsUnaffiliated() bool {
	return c != nil && c.Following == entity.NoID
}

// HasName reports whether c is called name, ignoring case.
func (c *Character) HasName(name string) bool {
	return c != nil && strings.EqualFold(c.Name, name)
}
