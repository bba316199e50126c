// Package rules runs the world's scripted events once per dispatched
// command: spider venom and loot, feeding the queen, the ant invasion, the
// fang damage bonus, the optional crumbling roof, and any Lua on_turn
// hooks.
package rules

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/cory-johannsen/colony/internal/game/command"
	"github.com/cory-johannsen/colony/internal/game/state"
	"github.com/cory-johannsen/colony/internal/scripting"
)

// ErrNoPlayer is returned by a trigger whose target player does not exist.
var ErrNoPlayer = errors.New("rules: no player to apply the rule to")

// Option configures an Engine.
type Option func(*Engine)

// WithCrumblingRoof enables the periodic roof damage rule.
func WithCrumblingRoof() Option {
	return func(e *Engine) { e.crumblingRoof = true }
}

// WithScripts runs the on_turn hook of mgr after the built-in triggers and
// binds mgr's colony.* callbacks to the engine's game.
func WithScripts(mgr *scripting.Manager) Option {
	return func(e *Engine) { e.scripts = mgr }
}

// Engine holds the counters the rules need across turns.
type Engine struct {
	game   *state.Game
	logger *zap.Logger

	turn       int
	timesFed   int
	spiderDead bool

	crumblingRoof bool
	scripts       *scripting.Manager
}

// NewEngine creates an Engine acting on g with its turn counter at 1.
//
// Precondition: g and logger must be non-nil.
func NewEngine(g *state.Game, logger *zap.Logger, opts ...Option) *Engine {
	e := &Engine{game: g, logger: logger, turn: 1}
	for _, opt := range opts {
		opt(e)
	}
	if e.scripts != nil {
		e.bindScripts()
	}
	return e
}

// Turn returns the number of the next tick, starting at 1.
func (e *Engine) Turn() int { return e.turn }

// TimesFed returns how often the queen has been fed.
func (e *Engine) TimesFed() int { return e.timesFed }

// SpiderDead reports whether a spider death is waiting for its payout.
func (e *Engine) SpiderDead() bool { return e.spiderDead }

// Update runs every trigger against the game's last command and advances
// the turn counter. Venom and the crumbling roof end the tick; every other
// trigger runs regardless of the others, and their failures are joined.
//
// Postcondition: the returned error, if any, has been logged at Warn.
func (e *Engine) Update(ctx context.Context) error {
	defer func() { e.turn++ }()

	cmd := e.game.LastCommand()
	if err := ctx.Err(); err != nil {
		return err
	}

	if e.crumblingRoof && e.turn%e.roofFrequency() == 0 {
		return e.report(e.crumbleRoof(cmd))
	}
	if isLosingSpiderAttack(cmd, e.game.CombatSucceeds()) {
		return e.report(e.spiderVenom())
	}

	var errs []error
	e.recordSpiderDeath()
	if e.spiderDead {
		errs = append(errs, e.spiderPayout())
	}
	if isQueenFeeding(cmd) {
		e.timesFed++
		if e.timesFed == FeedsToHatch {
			errs = append(errs, e.hatchAnt())
		}
	}
	errs = append(errs, e.antInvasion(), e.fangBonus())
	if e.scripts != nil {
		errs = append(errs, e.scripts.OnTurn(cmd.Code.String(), cmd.Arg, cmd.Succeeded()))
	}
	return e.report(errors.Join(errs...))
}

func (e *Engine) report(err error) error {
	if err != nil {
		e.logger.Warn("rule trigger failed", zap.Int("turn", e.turn), zap.Error(err))
	}
	return err
}

func (e *Engine) fired(rule string, fields ...zap.Field) {
	e.logger.Info("rule fired", append([]zap.Field{zap.String("rule", rule), zap.Int("turn", e.turn)}, fields...)...)
}

// consumesTurn reports whether cmd already passed the turn on success.
func consumesTurn(cmd *command.Command) bool {
	if !cmd.Succeeded() {
		return false
	}
	switch cmd.Code {
	case command.Move, command.Take, command.Drop:
		return true
	}
	return false
}
