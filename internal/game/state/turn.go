package state

import "github.com/cory-johannsen/colony/internal/game/player"

// Turn returns the alive-slot index of the acting player.
func (g *Game) Turn() int { return g.turn }

// SetTurn positions the rotation at alive slot t. Out-of-range values are
// reduced modulo the number of alive players.
func (g *Game) SetTurn(t int) {
	if t < 0 {
		t = 0
	}
	if n := len(g.alive); n > 0 {
		t %= n
	}
	g.turn = t
}

// NumAlive returns the number of players still in the rotation.
func (g *Game) NumAlive() int { return len(g.alive) }

// CurrentTurn returns the registry index of the acting player, or -1 when
// nobody is alive.
func (g *Game) CurrentTurn() int {
	if len(g.alive) == 0 {
		return -1
	}
	return g.alive[g.turn]
}

// CurrentPlayer returns the acting player, or nil when nobody is alive.
func (g *Game) CurrentPlayer() *player.Player {
	return g.PlayerAt(g.CurrentTurn())
}

// LastPlayer returns the player who acted before the current one, or nil
// when nobody is alive or that player is dead.
func (g *Game) LastPlayer() *player.Player {
	n := len(g.alive)
	if n == 0 {
		return nil
	}
	p := g.players[g.alive[(g.turn-1+n)%n]]
	if !p.IsAlive() {
		return nil
	}
	return p
}

// PassTurn advances the rotation. It is a no-op with nobody alive.
func (g *Game) PassTurn() {
	if n := len(g.alive); n > 0 {
		g.turn = (g.turn + 1) % n
	}
}

// ExcludePlayer removes the acting player from the rotation. The next
// player in order becomes the acting player. Excluding the last alive
// player finishes the game.
func (g *Game) ExcludePlayer() {
	if len(g.alive) == 0 {
		g.finished = true
		return
	}
	g.removeAlive(g.turn)
}

// excludePlayerByID removes p from the rotation wherever it sits.
func (g *Game) excludePlayerByID(p *player.Player) {
	for pos, idx := range g.alive {
		if g.players[idx] == p {
			g.removeAlive(pos)
			return
		}
	}
}

func (g *Game) removeAlive(pos int) {
	copy(g.alive[pos:], g.alive[pos+1:])
	g.alive = g.alive[:len(g.alive)-1]
	n := len(g.alive)
	switch {
	case n == 0:
		g.finished = true
	case pos < g.turn:
		g.turn--
	case g.turn >= n:
		g.turn--
	}
}
