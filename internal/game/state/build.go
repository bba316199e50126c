package state

import (
	"fmt"

	"github.com/cory-johannsen/colony/internal/game/dice"
	"github.com/cory-johannsen/colony/internal/game/world"
)

// FromDefinition assembles a Game from a validated world definition.
// Players' spaces are marked discovered and carried objects are taken out
// of any space the definition also placed them in.
//
// Precondition: def must be non-nil; roller must be non-nil.
// Postcondition: Returns a populated Game or the first registration error.
func FromDefinition(def *world.Definition, roller *dice.Roller) (*Game, error) {
	if err := def.Validate(); err != nil {
		return nil, fmt.Errorf("invalid world: %w", err)
	}

	g := New(roller)
	for _, s := range def.Spaces {
		if err := g.AddSpace(s); err != nil {
			return nil, err
		}
	}
	for _, l := range def.Links {
		if err := g.AddLink(l); err != nil {
			return nil, err
		}
	}
	for _, po := range def.Objects {
		if err := g.AddObject(po.Object); err != nil {
			return nil, err
		}
		if err := g.PlaceObject(po.Object.ID, po.Location); err != nil {
			return nil, err
		}
	}
	for _, pc := range def.Characters {
		if err := g.AddCharacter(pc.Character); err != nil {
			return nil, err
		}
		if err := g.PlaceCharacter(pc.Character.ID, pc.Location); err != nil {
			return nil, err
		}
	}
	for _, p := range def.Players {
		if err := g.AddPlayer(p); err != nil {
			return nil, err
		}
		for _, id := range p.Inventory().IDs() {
			for _, s := range g.spaces {
				s.Objects().Delete(id)
			}
		}
		if s := g.Space(p.Location); s != nil {
			s.Discovered = true
		}
	}
	g.SetTurn(def.Turn)
	return g, nil
}

// ToDefinition captures the live world: destroyed records are left out and
// every object and character carries its derived location.
//
// Postcondition: the returned definition shares records with g.
func (g *Game) ToDefinition() *world.Definition {
	def := &world.Definition{
		Spaces:  g.Spaces(),
		Links:   g.Links(),
		Players: g.Players(),
		Turn:    g.turn,
	}
	for _, o := range g.Objects() {
		def.Objects = append(def.Objects, world.PlacedObject{Object: o, Location: g.ObjectLocation(o.ID)})
	}
	for _, c := range g.Characters() {
		def.Characters = append(def.Characters, world.PlacedCharacter{Character: c, Location: g.CharacterLocation(c.ID)})
	}
	return def
}
