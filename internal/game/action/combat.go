package action

import (
	"context"
	"fmt"

	"github.com/cory-johannsen/colony/internal/game/state"
)

// AttackSides is the range of the attack draw. Draws below AttackThreshold
// go to the defender.
const (
	AttackSides     = 10
	AttackThreshold = 5
)

// attack fights an alive, unfriendly character sharing the player's space.
func (d *Dispatcher) attack(context.Context) error {
	p, err := d.actor()
	if err != nil {
		return err
	}
	c := d.game.CharacterByName(d.arg())
	if c == nil {
		return fmt.Errorf("character %q: %w", d.arg(), ErrNoTarget)
	}
	if !c.IsAlive() {
		return state.ErrCharacterDead
	}
	if c.Friendly {
		return ErrFriendly
	}
	if d.game.CharacterLocation(c.ID) != p.Location {
		return state.ErrNotHere
	}

	if d.game.Draw("attack", AttackSides) < AttackThreshold {
		d.game.SetCombatSucceeds(false)
		return d.game.PlayerGetsAttacked()
	}
	d.game.SetCombatSucceeds(true)
	return d.game.CharacterGetsAttacked(c.ID)
}
