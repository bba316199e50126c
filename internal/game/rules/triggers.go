package rules

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/cory-johannsen/colony/internal/game/command"
	"github.com/cory-johannsen/colony/internal/game/entity"
	"github.com/cory-johannsen/colony/internal/game/inventory"
	"github.com/cory-johannsen/colony/internal/game/npc"
)

// World constants the triggers act on.
const (
	SpiderName      = "spider"
	DeadSpiderName  = "spider_"
	SpiderDropSpace = entity.ID(3)

	FangID          = entity.ID(134)
	FangOpens       = entity.ID(76)
	FangDamage      = 3
	StringID        = entity.ID(201)
	StringOpens     = entity.ID(35)
	FoodName        = "Food"
	QueenName       = "Queen_Ant"
	QueenSpace      = entity.ID(52)
	FeedsToHatch    = 5
	HatchlingID     = entity.ID(189)
	InvasionTrigger = entity.ID(13)
	InvasionSpace   = entity.ID(14)
	InvadersID      = entity.ID(111)
	AntHealth       = 15
)

func isLosingSpiderAttack(cmd *command.Command, combatWon bool) bool {
	return cmd.Code == command.Attack &&
		strings.EqualFold(strings.TrimSpace(cmd.Arg), SpiderName) &&
		!combatWon &&
		cmd.Succeeded()
}

func isQueenFeeding(cmd *command.Command) bool {
	if cmd.Code != command.Use || !cmd.Succeeded() {
		return false
	}
	pair, err := command.SplitPair(cmd.Arg, command.SepOver)
	if err != nil {
		return false
	}
	return strings.EqualFold(pair.Left, FoodName) && strings.EqualFold(pair.Right, QueenName)
}

// spiderVenom costs the player who just lost to the spider one more point.
// An attacker killed by the fight itself is left alone.
func (e *Engine) spiderVenom() error {
	p := e.game.LastActor()
	if p == nil {
		return nil
	}
	e.fired("spider_venom", zap.String("player", p.Name))
	return e.game.DamagePlayer(p, 1)
}

// recordSpiderDeath renames a dead spider so its death is only counted once.
func (e *Engine) recordSpiderDeath() {
	c := e.game.CharacterByName(SpiderName)
	if c == nil || c.IsAlive() || e.spiderDead {
		return
	}
	c.Name = DeadSpiderName
	e.spiderDead = true
	e.fired("spider_death")
}

// spiderPayout drops the fang and the string where the spider fell. The
// latch is cleared even on failure so a broken world does not retry forever.
func (e *Engine) spiderPayout() error {
	e.spiderDead = false

	fang := inventory.NewObject(FangID)
	fang.Name = "fang"
	fang.Description = "Looks pretty sharp and venomous, perfect when dealing with cobwebs"
	fang.Movable = true
	fang.Open = FangOpens

	silk := inventory.NewObject(StringID)
	silk.Name = "string"
	silk.Description = "Looks strong enough to build things"
	silk.Movable = true
	silk.Open = StringOpens

	if err := e.game.SpawnObject(fang, SpiderDropSpace); err != nil {
		return fmt.Errorf("spider payout: %w", err)
	}
	if err := e.game.SpawnObject(silk, SpiderDropSpace); err != nil {
		return fmt.Errorf("spider payout: %w", err)
	}
	e.fired("spider_payout", zap.Int64("space", int64(SpiderDropSpace)))
	return nil
}

// hatchAnt spawns FRED, who follows whoever is acting now.
func (e *Engine) hatchAnt() error {
	p := e.game.CurrentPlayer()
	if p == nil {
		return fmt.Errorf("queen feeding: %w", ErrNoPlayer)
	}
	c := npc.NewCharacter(HatchlingID)
	c.Name = "FRED"
	c.Health = AntHealth
	c.GDesc = "Mmo^"
	c.Message = "Lets go defend the colony! For the queen!"
	c.Friendly = true
	c.Following = p.ID
	if err := e.game.SpawnCharacter(c, QueenSpace); err != nil {
		return fmt.Errorf("queen feeding: %w", err)
	}
	e.fired("queen_fed", zap.String("follows", p.Name))
	return nil
}

// antInvasion brings hostile ants once anyone reaches the trigger space.
func (e *Engine) antInvasion() error {
	if e.game.Character(InvadersID) != nil {
		return nil
	}
	current, last := e.game.CurrentPlayer(), e.game.LastPlayer()
	if (current == nil || current.Location != InvasionTrigger) &&
		(last == nil || last.Location != InvasionTrigger) {
		return nil
	}
	c := npc.NewCharacter(InvadersID)
	c.Name = "Group_of_ants"
	c.Health = AntHealth
	c.GDesc = "^mo ^mo ^mo"
	if err := e.game.SpawnCharacter(c, InvasionSpace); err != nil {
		return fmt.Errorf("ant invasion: %w", err)
	}
	e.fired("ant_invasion", zap.Int64("space", int64(InvasionSpace)))
	return nil
}

// fangBonus sets the fang's damage on the acting player until they hold it.
func (e *Engine) fangBonus() error {
	p := e.game.LastActor()
	if p == nil || p.Has(FangID) || p.Damage() == FangDamage {
		return nil
	}
	return p.SetDamage(FangDamage)
}

// roofFrequency is 5 for a lone player and 2n+1 otherwise.
func (e *Engine) roofFrequency() int {
	n := e.game.NumPlayers()
	if n <= 1 {
		return 5
	}
	return 2*n + 1
}

// crumbleRoof hurts the last player and passes the turn unless the command
// already did.
func (e *Engine) crumbleRoof(cmd *command.Command) error {
	p := e.game.LastPlayer()
	if p == nil {
		return fmt.Errorf("crumbling roof: %w", ErrNoPlayer)
	}
	e.fired("crumbling_roof", zap.String("player", p.Name))
	if err := e.game.DamagePlayer(p, 1); err != nil {
		return err
	}
	if !consumesTurn(cmd) {
		e.game.PassTurn()
	}
	return nil
}
