package state

import (
	"fmt"

	"github.com/cory-johannsen/colony/internal/game/entity"
	"github.com/cory-johannsen/colony/internal/game/npc"
	"github.com/cory-johannsen/colony/internal/game/player"
)

// ObjectLocation returns the space whose object set holds id, or NoID for
// carried, unplaced or destroyed objects.
func (g *Game) ObjectLocation(id entity.ID) entity.ID {
	for _, s := range g.spaces {
		if s.Objects().Has(id) {
			return s.ID
		}
	}
	return entity.NoID
}

// CharacterLocation returns the space whose character set holds id, or NoID.
func (g *Game) CharacterLocation(id entity.ID) entity.ID {
	for _, s := range g.spaces {
		if s.Characters().Has(id) {
			return s.ID
		}
	}
	return entity.NoID
}

// ObjectCarrier returns the player carrying id, or nil.
func (g *Game) ObjectCarrier(id entity.ID) *player.Player {
	for _, p := range g.players {
		if p.Has(id) {
			return p
		}
	}
	return nil
}

// detachObject removes id from every space and every inventory.
func (g *Game) detachObject(id entity.ID) {
	for _, s := range g.spaces {
		s.Objects().Delete(id)
	}
	for _, p := range g.players {
		p.Inventory().Delete(id)
	}
}

// PlaceObject moves a live object into spaceID, taking it out of whatever
// space or inventory held it. spaceID NoID leaves it nowhere.
//
// Postcondition: on error nothing changed.
func (g *Game) PlaceObject(objectID, spaceID entity.ID) error {
	if g.Object(objectID) == nil {
		return fmt.Errorf("placing object %d: %w", objectID, ErrNotFound)
	}
	if spaceID == entity.NoID {
		g.detachObject(objectID)
		return nil
	}
	dest := g.Space(spaceID)
	if dest == nil {
		return fmt.Errorf("placing object %d in space %d: %w", objectID, spaceID, ErrNotFound)
	}
	if !dest.Objects().Has(objectID) && dest.Objects().Len() >= entity.MaxIDs {
		return fmt.Errorf("placing object %d in space %d: %w", objectID, spaceID, ErrNoRoom)
	}
	g.detachObject(objectID)
	return dest.Objects().Add(objectID)
}

// GiveObject moves a live object into p's inventory, taking it out of
// whatever space or inventory held it.
//
// Postcondition: on error nothing changed.
func (g *Game) GiveObject(p *player.Player, objectID entity.ID) error {
	if p == nil {
		return ErrNoCurrentPlayer
	}
	if g.Object(objectID) == nil {
		return fmt.Errorf("giving object %d: %w", objectID, ErrNotFound)
	}
	inv := p.Inventory()
	if inv.Has(objectID) {
		return nil
	}
	if inv.Len() >= inv.Max() {
		return fmt.Errorf("giving object %d to player %d: %w", objectID, p.ID, ErrNoRoom)
	}
	g.detachObject(objectID)
	return inv.Add(objectID)
}

// PlaceCharacter moves a live character into spaceID, taking it out of
// every other space. spaceID NoID leaves it nowhere.
//
// Postcondition: on error nothing changed.
func (g *Game) PlaceCharacter(characterID, spaceID entity.ID) error {
	if g.Character(characterID) == nil {
		return fmt.Errorf("placing character %d: %w", characterID, ErrNotFound)
	}
	dest := g.Space(spaceID)
	if spaceID != entity.NoID {
		if dest == nil {
			return fmt.Errorf("placing character %d in space %d: %w", characterID, spaceID, ErrNotFound)
		}
		if !dest.Characters().Has(characterID) && dest.Characters().Len() >= entity.MaxIDs {
			return fmt.Errorf("placing character %d in space %d: %w", characterID, spaceID, ErrNoRoom)
		}
	}
	for _, s := range g.spaces {
		if s != dest {
			s.Characters().Delete(characterID)
		}
	}
	if dest == nil {
		return nil
	}
	return dest.Characters().Add(characterID)
}

// FollowersOf returns the live characters following playerID in
// registration order.
func (g *Game) FollowersOf(playerID entity.ID) []*npc.Character {
	var out []*npc.Character
	for _, s := range g.characters {
		if !s.destroyed && s.char.Follows(playerID) {
			out = append(out, s.char)
		}
	}
	return out
}

// EnemyAt returns the first alive unfriendly character at spaceID, or nil.
func (g *Game) EnemyAt(spaceID entity.ID) *npc.Character {
	if spaceID == entity.NoID {
		return nil
	}
	for _, c := range g.Characters() {
		if !c.Friendly && c.IsAlive() && g.CharacterLocation(c.ID) == spaceID {
			return c
		}
	}
	return nil
}

// RelocateParty moves p and every character following p to dest and marks
// dest discovered. Every follower move is validated before anything
// changes, so the relocation either happens completely or not at all.
func (g *Game) RelocateParty(p *player.Player, dest entity.ID) error {
	if p == nil {
		return ErrNoCurrentPlayer
	}
	space := g.Space(dest)
	if space == nil {
		return fmt.Errorf("relocating player %d to %d: %w", p.ID, dest, ErrNotFound)
	}

	followers := g.FollowersOf(p.ID)
	incoming := 0
	for _, c := range followers {
		if !space.Characters().Has(c.ID) {
			incoming++
		}
	}
	if space.Characters().Len()+incoming > entity.MaxIDs {
		return fmt.Errorf("relocating %d followers to %d: %w", incoming, dest, ErrNoRoom)
	}

	for _, c := range followers {
		if err := g.PlaceCharacter(c.ID, dest); err != nil {
			// Unreachable after validation.
			return fmt.Errorf("relocating follower %d: %w", c.ID, err)
		}
	}
	p.Location = dest
	space.Discovered = true
	return nil
}
