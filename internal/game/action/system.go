package action

import (
	"context"
	"fmt"
	"strings"

	"github.com/cory-johannsen/colony/internal/game/state"
)

// save writes the world to the slot named by the argument and ends the
// session.
func (d *Dispatcher) save(ctx context.Context) error {
	if d.store == nil {
		return ErrNoStore
	}
	slot := strings.TrimSpace(d.arg())
	if err := d.store.Save(ctx, slot, d.game.ToDefinition()); err != nil {
		return fmt.Errorf("saving: %w", err)
	}
	d.game.SetFinished(true)
	return nil
}

// load replaces the world with the one saved under the argument's slot.
func (d *Dispatcher) load(ctx context.Context) error {
	if d.store == nil {
		return ErrNoStore
	}
	slot := strings.TrimSpace(d.arg())
	def, err := d.store.Load(ctx, slot)
	if err != nil {
		return fmt.Errorf("loading: %w", err)
	}
	next, err := state.FromDefinition(def, d.game.Roller())
	if err != nil {
		return fmt.Errorf("loading slot %q: %w", slot, err)
	}
	d.game.Replace(next)
	return nil
}
