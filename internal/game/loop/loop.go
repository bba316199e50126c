// Package loop drives a game session: read a command, dispatch it, run the
// rules, record it in the recent-action log and repaint.
package loop

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"

	"github.com/cory-johannsen/colony/internal/game/action"
	"github.com/cory-johannsen/colony/internal/game/command"
	"github.com/cory-johannsen/colony/internal/game/render"
	"github.com/cory-johannsen/colony/internal/game/rules"
	"github.com/cory-johannsen/colony/internal/game/state"
	"github.com/cory-johannsen/colony/internal/observability"
)

// GameOver is written when every player has died.
const GameOver = "All the players are dead. Game Over.\n"

// ErrStopped is returned by Run after Stop was called.
var ErrStopped = errors.New("loop: stopped")

// Options wires a Loop. Recent may be nil; MaxTurns 0 means unlimited.
type Options struct {
	Game       *state.Game
	Reader     *command.Reader
	Dispatcher *action.Dispatcher
	Engine     *rules.Engine
	Renderer   *render.Renderer
	Out        io.Writer
	Recent     *observability.RecentLog
	MaxTurns   int
	Logger     *zap.Logger
}

// Loop runs one game session to completion.
type Loop struct {
	opts  Options
	turns int

	stop     chan struct{}
	stopOnce sync.Once
}

// New validates opts and returns a Loop.
//
// Postcondition: Returns an error naming the first missing collaborator.
func New(opts Options) (*Loop, error) {
	switch {
	case opts.Game == nil:
		return nil, fmt.Errorf("loop: game is required")
	case opts.Reader == nil:
		return nil, fmt.Errorf("loop: reader is required")
	case opts.Dispatcher == nil:
		return nil, fmt.Errorf("loop: dispatcher is required")
	case opts.Engine == nil:
		return nil, fmt.Errorf("loop: rule engine is required")
	case opts.Renderer == nil:
		return nil, fmt.Errorf("loop: renderer is required")
	case opts.Out == nil:
		return nil, fmt.Errorf("loop: output is required")
	case opts.Logger == nil:
		return nil, fmt.Errorf("loop: logger is required")
	case opts.MaxTurns < 0:
		return nil, fmt.Errorf("loop: max turns must be >= 0, got %d", opts.MaxTurns)
	}
	return &Loop{opts: opts, stop: make(chan struct{})}, nil
}

// Turns returns the number of commands processed so far.
func (l *Loop) Turns() int { return l.turns }

// Stop makes Run return before reading the next command. It is safe to
// call more than once and from another goroutine.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
}

// Run paints the opening frame and then processes commands until EXIT, the
// game finishes, the turn limit is reached, ctx is cancelled or Stop is
// called.
//
// Postcondition: Returns nil on a normal end, ErrStopped after Stop, the
// context error on cancellation, or a render/write error.
func (l *Loop) Run(ctx context.Context) error {
	g := l.opts.Game
	if err := l.opts.Renderer.Paint(g); err != nil {
		return fmt.Errorf("painting: %w", err)
	}

	for {
		select {
		case <-l.stop:
			return ErrStopped
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if l.opts.MaxTurns > 0 && l.turns >= l.opts.MaxTurns {
			l.opts.Logger.Info("turn limit reached", zap.Int("turns", l.turns))
			g.SetFinished(true)
			return nil
		}

		cmd := l.opts.Reader.Next()
		if err := l.step(ctx, cmd); err != nil {
			return err
		}
		if err := l.opts.Renderer.Paint(g); err != nil {
			return fmt.Errorf("painting: %w", err)
		}

		if cmd.Code == command.Exit || g.Finished() {
			break
		}
	}

	if g.Finished() && g.NumAlive() == 0 {
		if _, err := io.WriteString(l.opts.Out, GameOver); err != nil {
			return fmt.Errorf("writing game over: %w", err)
		}
	}
	l.opts.Logger.Info("game ended",
		zap.Int("turns", l.turns),
		zap.Bool("finished", g.Finished()),
	)
	return nil
}

// step carries one command through dispatch, rules and the recent log.
// Rejected commands and rule failures are part of play and only logged.
func (l *Loop) step(ctx context.Context, cmd *command.Command) error {
	actor := ""
	if p := l.opts.Game.CurrentPlayer(); p != nil {
		actor = p.Name
	}

	if err := l.opts.Dispatcher.Dispatch(ctx, cmd); err != nil && ctx.Err() != nil {
		return ctx.Err()
	}
	if err := l.opts.Engine.Update(ctx); err != nil && ctx.Err() != nil {
		return ctx.Err()
	}

	l.opts.Recent.Record(cmd, actor)
	l.turns++
	return nil
}
