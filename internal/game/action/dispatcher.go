// Package action carries out parsed commands against the game. Each command
// code has one handler; a handler validates its preconditions before it
// mutates anything, so a failed command leaves the game as it was.
package action

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/colony/internal/game/command"
	"github.com/cory-johannsen/colony/internal/game/state"
	"github.com/cory-johannsen/colony/internal/storage"
)

var (
	// ErrNoTarget is returned when the argument names nothing in the game.
	ErrNoTarget = errors.New("action: no such target")
	// ErrNotCarried is returned when the acting player does not carry the object.
	ErrNotCarried = errors.New("action: object not carried")
	// ErrNotMovable is returned when taking a fixed object.
	ErrNotMovable = errors.New("action: object cannot be moved")
	// ErrDependency is returned when a required object is not held.
	ErrDependency = errors.New("action: required object not held")
	// ErrBadDirection is returned for an unrecognised direction.
	ErrBadDirection = errors.New("action: unknown direction")
	// ErrNoPath is returned when no link leaves in the requested direction.
	ErrNoPath = errors.New("action: no way in that direction")
	// ErrLinkClosed is returned when the link is closed.
	ErrLinkClosed = errors.New("action: link is closed")
	// ErrFriendly is returned when attacking a friendly character.
	ErrFriendly = errors.New("action: character is friendly")
	// ErrNotFriendly is returned when recruiting a hostile character.
	ErrNotFriendly = errors.New("action: character is not friendly")
	// ErrAlreadyFollowing is returned when recruiting a character that follows someone.
	ErrAlreadyFollowing = errors.New("action: character already follows a player")
	// ErrNotFollowing is returned when abandoning a character that does not follow the player.
	ErrNotFollowing = errors.New("action: character does not follow the player")
	// ErrWrongObject is returned when the object cannot open the link.
	ErrWrongObject = errors.New("action: object does not open that link")
	// ErrAlreadyOpen is returned when opening an open link.
	ErrAlreadyOpen = errors.New("action: link is already open")
	// ErrNoStore is returned by SAVE and LOAD when no store is configured.
	ErrNoStore = errors.New("action: no save store configured")
	// ErrUnhandled is returned for a code with no handler.
	ErrUnhandled = errors.New("action: no handler for command")
)

type handlerFunc func(ctx context.Context) error

// Dispatcher routes commands to their handlers.
type Dispatcher struct {
	game     *state.Game
	store    storage.SaveStore
	logger   *zap.Logger
	handlers map[command.Code]handlerFunc
}

// NewDispatcher creates a Dispatcher acting on g. store may be nil, in
// which case SAVE and LOAD fail.
//
// Precondition: g and logger must be non-nil.
func NewDispatcher(g *state.Game, store storage.SaveStore, logger *zap.Logger) *Dispatcher {
	d := &Dispatcher{game: g, store: store, logger: logger}
	d.handlers = map[command.Code]handlerFunc{
		command.NoCmd:   d.succeed,
		command.Unknown: d.succeed,
		command.Exit:    d.succeed,
		command.Take:    d.take,
		command.Drop:    d.drop,
		command.Chat:    d.chat,
		command.Attack:  d.attack,
		command.Move:    d.move,
		command.Inspect: d.inspect,
		command.Use:     d.use,
		command.Recruit: d.recruit,
		command.Abandon: d.abandon,
		command.Open:    d.open,
		command.Save:    d.save,
		command.Load:    d.load,
	}
	return d
}

// Dispatch records cmd as the game's last command and runs its handler.
//
// Postcondition: the command's status is set; the returned error explains
// a StatusError outcome and is nil for StatusOK.
func (d *Dispatcher) Dispatch(ctx context.Context, cmd *command.Command) error {
	d.game.SetLastCommand(cmd)
	cmd = d.game.LastCommand()
	actor := d.game.CurrentPlayer()
	d.game.SetLastActor(actor)

	err := ErrUnhandled
	if h, ok := d.handlers[cmd.Code]; ok {
		err = h(ctx)
	}
	if err != nil {
		cmd.SetStatus(command.StatusError)
	} else {
		cmd.SetStatus(command.StatusOK)
	}

	name := ""
	if actor != nil {
		name = actor.Name
	}
	d.logger.Debug("command dispatched",
		zap.Stringer("code", cmd.Code),
		zap.String("arg", cmd.Arg),
		zap.Stringer("status", cmd.Status),
		zap.String("player", name),
		zap.Error(err),
	)
	if err != nil {
		return fmt.Errorf("%s %q: %w", cmd.Code, cmd.Arg, err)
	}
	return nil
}

func (d *Dispatcher) arg() string {
	return d.game.LastCommand().Arg
}

func (d *Dispatcher) succeed(context.Context) error { return nil }
