package action

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/colony/internal/game/command"
	"github.com/cory-johannsen/colony/internal/game/entity"
	"github.com/cory-johannsen/colony/internal/game/inventory"
	"github.com/cory-johannsen/colony/internal/game/player"
	"github.com/cory-johannsen/colony/internal/game/state"
)

func (d *Dispatcher) actor() (*player.Player, error) {
	p := d.game.CurrentPlayer()
	if p == nil {
		return nil, state.ErrNoCurrentPlayer
	}
	return p, nil
}

// carried resolves name to an object the player holds.
func (d *Dispatcher) carried(p *player.Player, name string) (*inventory.Object, error) {
	o := d.game.ObjectByName(name)
	if o == nil {
		return nil, fmt.Errorf("object %q: %w", name, ErrNoTarget)
	}
	if !p.Has(o.ID) {
		return nil, fmt.Errorf("object %q: %w", name, ErrNotCarried)
	}
	return o, nil
}

// take moves an object lying in the player's space into the inventory.
func (d *Dispatcher) take(context.Context) error {
	p, err := d.actor()
	if err != nil {
		return err
	}
	o := d.game.ObjectByName(d.arg())
	if o == nil {
		return ErrNoTarget
	}
	if loc := d.game.ObjectLocation(o.ID); loc == entity.NoID || loc != p.Location {
		return state.ErrNotHere
	}
	if o.Dependency.IsSet() && !p.Has(o.Dependency) {
		return fmt.Errorf("taking %q needs object %d: %w", o.Name, o.Dependency, ErrDependency)
	}
	if !o.Movable {
		return ErrNotMovable
	}
	if err := d.game.GiveObject(p, o.ID); err != nil {
		return err
	}
	d.game.PassTurn()
	return nil
}

// drop puts the named object in the player's space together with every
// carried object that depends on it, transitively.
func (d *Dispatcher) drop(context.Context) error {
	p, err := d.actor()
	if err != nil {
		return err
	}
	root, err := d.carried(p, d.arg())
	if err != nil {
		return err
	}
	if err := d.game.PlaceObject(root.ID, p.Location); err != nil {
		return err
	}

	visited := map[entity.ID]bool{root.ID: true}
	queue := []entity.ID{root.ID}
	for len(queue) > 0 {
		dropped := queue[0]
		queue = queue[1:]
		for _, id := range p.Inventory().IDs() {
			o := d.game.Object(id)
			if o == nil || visited[id] || !o.DependsOn(dropped) {
				continue
			}
			visited[id] = true
			if err := d.game.PlaceObject(id, p.Location); err != nil {
				d.logger.Warn("dependent object not dropped",
					zap.Int64("object", int64(id)), zap.Error(err))
				continue
			}
			queue = append(queue, id)
		}
	}
	d.game.PassTurn()
	return nil
}

// inspect succeeds for an object in the player's space or one with no
// location at all.
func (d *Dispatcher) inspect(context.Context) error {
	o := d.game.ObjectByName(d.arg())
	if o == nil {
		return ErrNoTarget
	}
	loc := d.game.ObjectLocation(o.ID)
	if loc == entity.NoID {
		return nil
	}
	if p := d.game.CurrentPlayer(); p == nil || p.Location != loc {
		return state.ErrNotHere
	}
	return nil
}

// use consumes a carried object. "X over Y" applies X's health delta to
// friendly follower Y; anything else applies it to the player.
func (d *Dispatcher) use(context.Context) error {
	p, err := d.actor()
	if err != nil {
		return err
	}

	name := d.arg()
	if pair, err := command.SplitPair(name, command.SepOver); err == nil {
		o, err := d.carried(p, pair.Left)
		if err != nil {
			return err
		}
		c := d.game.CharacterByName(pair.Right)
		if c != nil && c.Follows(p.ID) && c.Friendly && o.Health != 0 {
			if !c.IsAlive() {
				return nil
			}
			if err := d.game.HealFollower(c.ID, o.Health); err != nil {
				return err
			}
			return d.game.DestroyObject(o.ID)
		}
		name = pair.Left
	}

	o, err := d.carried(p, name)
	if err != nil {
		return err
	}
	health := p.Health() + o.Health
	if err := d.game.DestroyObject(o.ID); err != nil {
		return err
	}
	return d.game.SetCurrentPlayerHealth(health)
}

// open unlocks "L with O": O must be carried and be the key of closed link L.
func (d *Dispatcher) open(context.Context) error {
	p, err := d.actor()
	if err != nil {
		return err
	}
	pair, err := command.SplitPair(d.arg(), command.SepWith)
	if err != nil {
		return err
	}
	l := d.game.LinkByName(pair.Left)
	if l == nil {
		return fmt.Errorf("link %q: %w", pair.Left, ErrNoTarget)
	}
	o, err := d.carried(p, pair.Right)
	if err != nil {
		return err
	}
	if d.game.ObjectLocation(o.ID) != entity.NoID || !o.Unlocks(l.ID) {
		return ErrWrongObject
	}
	if l.Open {
		return ErrAlreadyOpen
	}
	l.Open = true
	return nil
}
