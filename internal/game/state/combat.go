package state

import (
	"fmt"

	"github.com/cory-johannsen/colony/internal/game/entity"
	"github.com/cory-johannsen/colony/internal/game/player"
)

// PlayerGetsAttacked resolves a lost attack. With no followers the acting
// player takes 1 damage; otherwise a random follower does. A player at 0
// health leaves the rotation and a follower at 0 is destroyed; any other
// outcome passes the turn.
func (g *Game) PlayerGetsAttacked() error {
	p := g.CurrentPlayer()
	if p == nil {
		return ErrNoCurrentPlayer
	}

	followers := g.FollowersOf(p.ID)
	if len(followers) == 0 {
		h := max(p.Health()-1, 0)
		_ = p.SetHealth(h)
		if h == 0 {
			g.ExcludePlayer()
		} else {
			g.PassTurn()
		}
		return nil
	}

	victim := followers[g.Draw("follower hit", len(followers))]
	victim.Health--
	if victim.Health <= 0 {
		return g.DestroyCharacter(victim.ID)
	}
	g.PassTurn()
	return nil
}

// CharacterGetsAttacked resolves a won attack against the character with
// id. It must share the acting player's space and be alive. Damage is the
// player's damage plus one per follower.
func (g *Game) CharacterGetsAttacked(id entity.ID) error {
	p := g.CurrentPlayer()
	if p == nil {
		return ErrNoCurrentPlayer
	}
	c := g.Character(id)
	if c == nil {
		return fmt.Errorf("attacking character %d: %w", id, ErrNotFound)
	}
	if g.CharacterLocation(id) != p.Location {
		return fmt.Errorf("attacking character %d: %w", id, ErrNotHere)
	}
	if !c.IsAlive() {
		return fmt.Errorf("attacking character %d: %w", id, ErrCharacterDead)
	}

	damage := p.Damage() + len(g.FollowersOf(p.ID))
	g.PassTurn()
	c.Health -= damage
	return nil
}

// SetCurrentPlayerHealth assigns the acting player's health, clamped at 0.
// At 0 the player leaves the rotation; otherwise the turn passes.
func (g *Game) SetCurrentPlayerHealth(h int) error {
	p := g.CurrentPlayer()
	if p == nil {
		return ErrNoCurrentPlayer
	}
	h = max(h, 0)
	_ = p.SetHealth(h)
	if h == 0 {
		g.ExcludePlayer()
	} else {
		g.PassTurn()
	}
	return nil
}

// HealFollower applies delta to a character's health and passes the turn.
// A character brought to 0 or less is destroyed.
func (g *Game) HealFollower(id entity.ID, delta int) error {
	c := g.Character(id)
	if c == nil {
		return fmt.Errorf("healing character %d: %w", id, ErrNotFound)
	}
	g.PassTurn()
	c.Health += delta
	if c.Health <= 0 {
		return g.DestroyCharacter(id)
	}
	return nil
}

// DamagePlayer lowers p's health by amount, clamped at 0, without passing
// the turn. A player brought to 0 leaves the rotation from its own slot.
func (g *Game) DamagePlayer(p *player.Player, amount int) error {
	if p == nil {
		return ErrNoCurrentPlayer
	}
	h := max(p.Health()-amount, 0)
	_ = p.SetHealth(h)
	if h == 0 {
		g.excludePlayerByID(p)
	}
	return nil
}
