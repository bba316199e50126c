package state

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/colony/internal/game/entity"
	"github.com/cory-johannsen/colony/internal/game/inventory"
	"github.com/cory-johannsen/colony/internal/game/npc"
	"github.com/cory-johannsen/colony/internal/game/player"
	"github.com/cory-johannsen/colony/internal/game/world"
)

// objectSlot keeps a destroyed object's slot occupied so its id can never
// be registered again or resolved to the stale record.
type objectSlot struct {
	obj       *inventory.Object
	destroyed bool
}

type characterSlot struct {
	char      *npc.Character
	destroyed bool
}

// --- spaces ---

// AddSpace registers s. Registering an id that is already present is a
// no-op success.
//
// Precondition: s must be non-nil.
func (g *Game) AddSpace(s *world.Space) error {
	if s == nil || s.ID == entity.NoID {
		return entity.ErrInvalidID
	}
	if g.Space(s.ID) != nil {
		return nil
	}
	if len(g.spaces) >= MaxSpaces {
		return fmt.Errorf("adding space %d: %w", s.ID, ErrRegistryFull)
	}
	g.spaces = append(g.spaces, s)
	return nil
}

// NumSpaces returns the number of registered spaces.
func (g *Game) NumSpaces() int { return len(g.spaces) }

// SpaceAt returns the i-th registered space, or nil.
func (g *Game) SpaceAt(i int) *world.Space {
	if i < 0 || i >= len(g.spaces) {
		return nil
	}
	return g.spaces[i]
}

// Space returns the space with id, or nil.
func (g *Game) Space(id entity.ID) *world.Space {
	for _, s := range g.spaces {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// SpaceByName returns the first space called name ignoring case, or nil.
func (g *Game) SpaceByName(name string) *world.Space {
	for _, s := range g.spaces {
		if strings.EqualFold(s.Name, name) {
			return s
		}
	}
	return nil
}

// Spaces returns the registered spaces in registration order.
func (g *Game) Spaces() []*world.Space {
	return append([]*world.Space(nil), g.spaces...)
}

// --- objects ---

// AddObject registers o with no location.
//
// Precondition: o must be non-nil.
// Postcondition: fails with ErrDuplicateID if the id was ever registered,
// including destroyed objects.
func (g *Game) AddObject(o *inventory.Object) error {
	if o == nil || o.ID == entity.NoID {
		return entity.ErrInvalidID
	}
	if g.objectIndex(o.ID) >= 0 {
		return fmt.Errorf("adding object %d: %w", o.ID, ErrDuplicateID)
	}
	if len(g.objects) >= MaxObjects {
		return fmt.Errorf("adding object %d: %w", o.ID, ErrRegistryFull)
	}
	g.objects = append(g.objects, objectSlot{obj: o})
	return nil
}

// objectIndex returns the slot index of id, destroyed or not, or -1.
func (g *Game) objectIndex(id entity.ID) int {
	for i, s := range g.objects {
		if s.obj.ID == id {
			return i
		}
	}
	return -1
}

// NumObjects returns the number of occupied object slots, destroyed
// objects included.
func (g *Game) NumObjects() int { return len(g.objects) }

// ObjectAt returns the object in slot i, or nil when out of range or destroyed.
func (g *Game) ObjectAt(i int) *inventory.Object {
	if i < 0 || i >= len(g.objects) || g.objects[i].destroyed {
		return nil
	}
	return g.objects[i].obj
}

// Object returns the live object with id, or nil.
func (g *Game) Object(id entity.ID) *inventory.Object {
	if i := g.objectIndex(id); i >= 0 {
		return g.ObjectAt(i)
	}
	return nil
}

// ObjectByName returns the first live object called name ignoring case, or nil.
func (g *Game) ObjectByName(name string) *inventory.Object {
	for _, s := range g.objects {
		if !s.destroyed && strings.EqualFold(s.obj.Name, name) {
			return s.obj
		}
	}
	return nil
}

// Objects returns the live objects in registration order.
func (g *Game) Objects() []*inventory.Object {
	out := make([]*inventory.Object, 0, len(g.objects))
	for _, s := range g.objects {
		if !s.destroyed {
			out = append(out, s.obj)
		}
	}
	return out
}

// DestroyObject tombstones the object and removes it from every space and
// every inventory.
func (g *Game) DestroyObject(id entity.ID) error {
	i := g.objectIndex(id)
	if i < 0 || g.objects[i].destroyed {
		return fmt.Errorf("destroying object %d: %w", id, ErrNotFound)
	}
	g.detachObject(id)
	g.objects[i].destroyed = true
	return nil
}

// --- characters ---

// AddCharacter registers c with no location.
//
// Precondition: c must be non-nil.
func (g *Game) AddCharacter(c *npc.Character) error {
	if c == nil || c.ID == entity.NoID {
		return entity.ErrInvalidID
	}
	if g.characterIndex(c.ID) >= 0 {
		return fmt.Errorf("adding character %d: %w", c.ID, ErrDuplicateID)
	}
	if len(g.characters) >= MaxCharacters {
		return fmt.Errorf("adding character %d: %w", c.ID, ErrRegistryFull)
	}
	g.characters = append(g.characters, characterSlot{char: c})
	return nil
}

func (g *Game) characterIndex(id entity.ID) int {
	for i, s := range g.characters {
		if s.char.ID == id {
			return i
		}
	}
	return -1
}

// NumCharacters returns the number of occupied character slots.
func (g *Game) NumCharacters() int { return len(g.characters) }

// CharacterAt returns the character in slot i, or nil when out of range or
// destroyed.
func (g *Game) CharacterAt(i int) *npc.Character {
	if i < 0 || i >= len(g.characters) || g.characters[i].destroyed {
		return nil
	}
	return g.characters[i].char
}

// Character returns the live character with id, or nil.
func (g *Game) Character(id entity.ID) *npc.Character {
	if i := g.characterIndex(id); i >= 0 {
		return g.CharacterAt(i)
	}
	return nil
}

// CharacterByName returns the first live character called name ignoring
// case, or nil.
func (g *Game) CharacterByName(name string) *npc.Character {
	for _, s := range g.characters {
		if !s.destroyed && s.char.HasName(name) {
			return s.char
		}
	}
	return nil
}

// Characters returns the live characters in registration order.
func (g *Game) Characters() []*npc.Character {
	out := make([]*npc.Character, 0, len(g.characters))
	for _, s := range g.characters {
		if !s.destroyed {
			out = append(out, s.char)
		}
	}
	return out
}

// DestroyCharacter tombstones the character and removes it from every space.
func (g *Game) DestroyCharacter(id entity.ID) error {
	i := g.characterIndex(id)
	if i < 0 || g.characters[i].destroyed {
		return fmt.Errorf("destroying character %d: %w", id, ErrNotFound)
	}
	for _, s := range g.spaces {
		s.Characters().Delete(id)
	}
	g.characters[i].destroyed = true
	return nil
}

// --- players ---

// AddPlayer registers p. A player with health > 0 joins the turn rotation.
//
// Precondition: p must be non-nil.
func (g *Game) AddPlayer(p *player.Player) error {
	if p == nil || p.ID == entity.NoID {
		return entity.ErrInvalidID
	}
	if g.Player(p.ID) != nil {
		return fmt.Errorf("adding player %d: %w", p.ID, ErrDuplicateID)
	}
	if len(g.players) >= MaxPlayers {
		return fmt.Errorf("adding player %d: %w", p.ID, ErrRegistryFull)
	}
	g.players = append(g.players, p)
	if p.IsAlive() {
		g.alive = append(g.alive, len(g.players)-1)
	}
	return nil
}

// NumPlayers returns the number of registered players, dead ones included.
func (g *Game) NumPlayers() int { return len(g.players) }

// PlayerAt returns the i-th registered player, or nil.
func (g *Game) PlayerAt(i int) *player.Player {
	if i < 0 || i >= len(g.players) {
		return nil
	}
	return g.players[i]
}

// Player returns the player with id, or nil.
func (g *Game) Player(id entity.ID) *player.Player {
	for _, p := range g.players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// PlayerByName returns the first player called name ignoring case, or nil.
func (g *Game) PlayerByName(name string) *player.Player {
	for _, p := range g.players {
		if p.HasName(name) {
			return p
		}
	}
	return nil
}

// Players returns every registered player in registration order.
func (g *Game) Players() []*player.Player {
	return append([]*player.Player(nil), g.players...)
}

// --- links ---

// AddLink registers l.
//
// Precondition: l must be non-nil.
func (g *Game) AddLink(l *world.Link) error {
	if l == nil || l.ID == entity.NoID {
		return entity.ErrInvalidID
	}
	if g.Link(l.ID) != nil {
		return fmt.Errorf("adding link %d: %w", l.ID, ErrDuplicateID)
	}
	if len(g.links) >= MaxLinks {
		return fmt.Errorf("adding link %d: %w", l.ID, ErrRegistryFull)
	}
	g.links = append(g.links, l)
	return nil
}

// NumLinks returns the number of registered links.
func (g *Game) NumLinks() int { return len(g.links) }

// LinkAt returns the i-th registered link, or nil.
func (g *Game) LinkAt(i int) *world.Link {
	if i < 0 || i >= len(g.links) {
		return nil
	}
	return g.links[i]
}

// Link returns the link with id, or nil.
func (g *Game) Link(id entity.ID) *world.Link {
	for _, l := range g.links {
		if l.ID == id {
			return l
		}
	}
	return nil
}

// LinkByName returns the first link called name ignoring case, or nil.
func (g *Game) LinkByName(name string) *world.Link {
	for _, l := range g.links {
		if strings.EqualFold(l.Name, name) {
			return l
		}
	}
	return nil
}

// Links returns the registered links in registration order.
func (g *Game) Links() []*world.Link {
	return append([]*world.Link(nil), g.links...)
}

// LinkFrom returns the first link leaving spaceID in dir, or nil.
func (g *Game) LinkFrom(spaceID entity.ID, dir world.Direction) *world.Link {
	for _, l := range g.links {
		if l.Leaves(spaceID, dir) {
			return l
		}
	}
	return nil
}

// Connection returns the space reached from spaceID heading dir, or NoID.
func (g *Game) Connection(spaceID entity.ID, dir world.Direction) entity.ID {
	if l := g.LinkFrom(spaceID, dir); l != nil {
		return l.Destination
	}
	return entity.NoID
}

// ConnectionOpen reports whether a link leaves spaceID in dir and is open.
func (g *Game) ConnectionOpen(spaceID entity.ID, dir world.Direction) bool {
	l := g.LinkFrom(spaceID, dir)
	return l != nil && l.Open
}
