package action

import (
	"context"
	"fmt"

	"github.com/cory-johannsen/colony/internal/game/world"
)

// move follows the open link leaving the player's space in the given
// direction, taking followers along.
func (d *Dispatcher) move(context.Context) error {
	p, err := d.actor()
	if err != nil {
		return err
	}
	dir, ok := world.ParseDirection(d.arg())
	if !ok {
		return fmt.Errorf("%q: %w", d.arg(), ErrBadDirection)
	}
	l := d.game.LinkFrom(p.Location, dir)
	if l == nil {
		return fmt.Errorf("%s from %d: %w", dir, p.Location, ErrNoPath)
	}
	if !l.Open {
		return fmt.Errorf("link %q: %w", l.Name, ErrLinkClosed)
	}
	if err := d.game.RelocateParty(p, l.Destination); err != nil {
		return err
	}
	d.game.PassTurn()
	return nil
}
