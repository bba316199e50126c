// Package state holds the Game aggregate: every entity registry, the
// location relation between spaces and their contents, and the turn and
// liveness state machine that the action dispatcher and rule engine mutate.
//
// Game is not safe for concurrent use; exactly one turn loop drives it.
package state

import (
	"errors"

	"github.com/cory-johannsen/colony/internal/game/command"
	"github.com/cory-johannsen/colony/internal/game/dice"
	"github.com/cory-johannsen/colony/internal/game/entity"
	"github.com/cory-johannsen/colony/internal/game/player"
	"github.com/cory-johannsen/colony/internal/game/world"
)

// Registry capacities.
const (
	MaxSpaces     = 50
	MaxObjects    = 50
	MaxCharacters = 50
	MaxPlayers    = 8
	MaxLinks      = 200
)

var (
	// ErrRegistryFull is returned when a registry is at capacity.
	ErrRegistryFull = errors.New("state: registry full")
	// ErrDuplicateID is returned when an id is already registered.
	ErrDuplicateID = errors.New("state: duplicate id")
	// ErrNotFound is returned when an id or name resolves to nothing.
	ErrNotFound = errors.New("state: not found")
	// ErrNoCurrentPlayer is returned when no player is alive.
	ErrNoCurrentPlayer = errors.New("state: no current player")
	// ErrNotHere is returned when an entity is not where the acting player is.
	ErrNotHere = errors.New("state: not at the player's location")
	// ErrCharacterDead is returned when a dead character is targeted.
	ErrCharacterDead = errors.New("state: character is dead")
	// ErrNoRoom is returned when a space cannot take more characters or objects.
	ErrNoRoom = errors.New("state: no room at destination")
)

// Game is the single source of truth for where things are, whose turn it
// is and who is still alive.
//
// Invariant: an object or character id is present in at most one space set,
// and an object id is never both in a space and in an inventory.
type Game struct {
	spaces     []*world.Space
	objects    []objectSlot
	characters []characterSlot
	players    []*player.Player
	links      []*world.Link

	// turn indexes alive; alive holds indices into players.
	turn  int
	alive []int

	lastCmd        *command.Command
	lastActor      entity.ID
	finished       bool
	combatSucceeds bool

	roller *dice.Roller
}

// New returns an empty Game drawing randomness from roller.
//
// Precondition: roller must be non-nil.
// Postcondition: LastCommand() is a NoCmd command; LastActor() is nil;
// Finished() is false.
func New(roller *dice.Roller) *Game {
	return &Game{
		lastCmd:   command.New(command.NoCmd, ""),
		lastActor: entity.NoID,
		roller:    roller,
	}
}

// Draw returns a random value in [0, n) from the game's source.
func (g *Game) Draw(purpose string, n int) int {
	return g.roller.Draw(purpose, n)
}

// Roller returns the game's random roller.
func (g *Game) Roller() *dice.Roller { return g.roller }

// SetLastCommand records cmd as the command being processed. A nil cmd is
// replaced by a NoCmd command so LastCommand never returns nil.
func (g *Game) SetLastCommand(cmd *command.Command) {
	if cmd == nil {
		cmd = command.New(command.NoCmd, "")
	}
	g.lastCmd = cmd
}

// LastCommand returns the command currently being processed.
//
// Postcondition: never nil.
func (g *Game) LastCommand() *command.Command { return g.lastCmd }

// Finished reports whether the session has ended.
func (g *Game) Finished() bool { return g.finished }

// SetFinished marks the session ended or resumed.
func (g *Game) SetFinished(f bool) { g.finished = f }

// CombatSucceeds reports whether the acting player won the latest attack.
func (g *Game) CombatSucceeds() bool { return g.combatSucceeds }

// SetCombatSucceeds records the outcome of the latest attack.
func (g *Game) SetCombatSucceeds(won bool) { g.combatSucceeds = won }

// SetLastActor records p as the player issuing the command being
// processed. A nil p clears it.
func (g *Game) SetLastActor(p *player.Player) {
	g.lastActor = entity.NoID
	if p != nil {
		g.lastActor = p.ID
	}
}

// LastActor returns the player who issued the command being processed, or
// nil when none was recorded or that player has since died. The player is
// resolved by id, so it survives a LOAD that keeps the same roster.
func (g *Game) LastActor() *player.Player {
	if g.lastActor == entity.NoID {
		return nil
	}
	p := g.Player(g.lastActor)
	if p == nil || !p.IsAlive() {
		return nil
	}
	return p
}

// Replace swaps the whole world of g for that of next, keeping g's random
// roller, last command and last actor.
//
// Precondition: next must be non-nil.
func (g *Game) Replace(next *Game) {
	g.spaces = next.spaces
	g.objects = next.objects
	g.characters = next.characters
	g.players = next.players
	g.links = next.links
	g.turn = next.turn
	g.alive = next.alive
	g.finished = next.finished
	g.combatSucceeds = next.combatSucceeds
}
