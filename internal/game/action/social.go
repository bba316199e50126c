package action

import (
	"context"
	"fmt"

	"github.com/cory-johannsen/colony/internal/game/entity"
	"github.com/cory-johannsen/colony/internal/game/npc"
	"github.com/cory-johannsen/colony/internal/game/player"
	"github.com/cory-johannsen/colony/internal/game/state"
)

func (d *Dispatcher) chat(context.Context) error {
	if d.game.CharacterByName(d.arg()) == nil {
		return fmt.Errorf("character %q: %w", d.arg(), ErrNoTarget)
	}
	return nil
}

// beside resolves the argument to a character sharing the player's space.
func (d *Dispatcher) beside() (*player.Player, *npc.Character, error) {
	p, err := d.actor()
	if err != nil {
		return nil, nil, err
	}
	c := d.game.CharacterByName(d.arg())
	if c == nil {
		return nil, nil, fmt.Errorf("character %q: %w", d.arg(), ErrNoTarget)
	}
	if d.game.CharacterLocation(c.ID) != p.Location {
		return nil, nil, state.ErrNotHere
	}
	return p, c, nil
}

// recruit makes an unaffiliated friendly character follow the player.
// It does not use up the turn.
func (d *Dispatcher) recruit(context.Context) error {
	p, c, err := d.beside()
	if err != nil {
		return err
	}
	switch {
	case !c.Friendly:
		return ErrNotFriendly
	case !c.IsAlive():
		return state.ErrCharacterDead
	case !c.IsUnaffiliated():
		return ErrAlreadyFollowing
	}
	c.Following = p.ID
	return nil
}

// abandon releases a follower. It does not use up the turn.
func (d *Dispatcher) abandon(context.Context) error {
	p, c, err := d.beside()
	if err != nil {
		return err
	}
	if !c.Follows(p.ID) {
		return ErrNotFollowing
	}
	c.Following = entity.NoID
	return nil
}
