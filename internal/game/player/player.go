// Package player defines the player record and its owned inventory.
package player

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/cory-johannsen/colony/internal/game/entity"
	"github.com/cory-johannsen/colony/internal/game/inventory"
)

// GDescLength is the maximum rune count of a player's graphical tag.
const GDescLength = 6

// DefaultDamage is the combat damage a new player deals.
const DefaultDamage = 1

var (
	// ErrNegativeHealth is returned when a negative health is assigned.
	ErrNegativeHealth = errors.New("player: health must be >= 0")
	// ErrNegativeDamage is returned when a negative damage is assigned.
	ErrNegativeDamage = errors.New("player: damage must be >= 0")
)

// Player is a human-controlled participant.
//
// Invariant: health >= 0 and damage >= 0.
type Player struct {
	ID       entity.ID
	Name     string
	Location entity.ID
	GDesc    string

	health    int
	damage    int
	inventory *inventory.Inventory
}

// New returns a Player with an empty inventory, zero health and DefaultDamage.
//
// Postcondition: Location is NoID.
func New(id entity.ID) *Player {
	return &Player{
		ID:        id,
		Location:  entity.NoID,
		damage:    DefaultDamage,
		inventory: inventory.New(),
	}
}

// Health returns the current health.
func (p *Player) Health() int { return p.health }

// SetHealth assigns health.
//
// Precondition: h >= 0.
func (p *Player) SetHealth(h int) error {
	if h < 0 {
		return ErrNegativeHealth
	}
	p.health = h
	return nil
}

// IsAlive reports whether health > 0.
func (p *Player) IsAlive() bool {
	return p != nil && p.health > 0
}

// Damage returns the combat damage this player deals.
func (p *Player) Damage() int { return p.damage }

// SetDamage assigns the combat damage.
//
// Precondition: d >= 0.
func (p *Player) SetDamage(d int) error {
	if d < 0 {
		return ErrNegativeDamage
	}
	p.damage = d
	return nil
}

// SetGDesc assigns the graphical tag.
//
// Precondition: utf8.RuneCountInString(g) <= GDescLength.
func (p *Player) SetGDesc(g string) error {
	if n := utf8.RuneCountInString(g); n > GDescLength {
		return fmt.Errorf("player: gdesc %q is %d runes, max %d", g, n, GDescLength)
	}
	p.GDesc = g
	return nil
}

// Inventory returns the owned inventory. It is never nil for players from New.
func (p *Player) Inventory() *inventory.Inventory {
	return p.inventory
}

// Has reports whether the player carries objectID.
func (p *Player) Has(objectID entity.ID) bool {
	return p != nil && p.inventory.Has(objectID)
}

// HasName reports whether p is called name, ignoring case.
func (p *Player) HasName(name string) bool {
	return p != nil && strings.EqualFold(p.Name, name)
}
