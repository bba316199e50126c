package rules

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/colony/internal/game/entity"
	"github.com/cory-johannsen/colony/internal/game/npc"
	"github.com/cory-johannsen/colony/internal/game/state"
	"github.com/cory-johannsen/colony/internal/scripting"
)

// bindScripts points the colony.* Lua bindings at the engine's game.
func (e *Engine) bindScripts() {
	e.scripts.DamagePlayer = func(name string, amount int) error {
		p := e.game.PlayerByName(name)
		if p == nil {
			return fmt.Errorf("player %q: %w", name, state.ErrNotFound)
		}
		return e.game.DamagePlayer(p, amount)
	}
	e.scripts.SpawnCharacter = func(req scripting.SpawnRequest) error {
		c := npc.NewCharacter(entity.ID(req.ID))
		c.Name = req.Name
		c.Friendly = req.Friendly
		c.Health = req.Health
		c.GDesc = req.GDesc
		c.Message = req.Message
		if req.FollowCurrent {
			p := e.game.CurrentPlayer()
			if p == nil {
				return ErrNoPlayer
			}
			c.Following = p.ID
		}
		if err := e.game.SpawnCharacter(c, entity.ID(req.Location)); err != nil {
			return err
		}
		e.fired("script_spawn", zap.String("character", c.Name))
		return nil
	}
	e.scripts.PlayerLocation = func(name string) (int64, bool) {
		p := e.game.PlayerByName(name)
		if p == nil {
			return 0, false
		}
		return int64(p.Location), true
	}
}
