// Package game implements the Tenure Rush simulation: the player, the
// transient entities of the corridor, the door sequence machine, the
// fixed-step Scene and the run Session that wraps it.
package game

import (
	"github.com/vovakirdan/tenure-rush/internal/config"
	"github.com/vovakirdan/tenure-rush/internal/core"
	"github.com/vovakirdan/tenure-rush/internal/powerup"
)

// EffectQuery reports whether a timed effect is running.
type EffectQuery interface {
	IsActive(k powerup.Kind) bool
}

// Player is the runner controlled by the user.
type Player struct {
	Box      core.Rect
	HP       int
	MaxHP    int
	Passes   int // Door passes held
	Tools    int // Tool tokens held
	Immunity int // Ticks of damage immunity left

	movingLeft  bool
	movingRight bool

	cfg     config.PlayerConfig
	effects EffectQuery
}

// NewPlayer places a player at the bottom center of the world.
// effects is consulted for the coffee lateral speed bonus and may be nil.
func NewPlayer(cfg config.PlayerConfig, world config.WorldConfig, effects EffectQuery) *Player {
	return &Player{
		Box:     core.NewRect(world.Width/2-cfg.Width/2, world.Height-cfg.BottomOffset, cfg.Width, cfg.Height),
		HP:      cfg.MaxHP,
		MaxHP:   cfg.MaxHP,
		cfg:     cfg,
		effects: effects,
	}
}

// SetMoving records a held or released movement direction.
// Only left and right move the player.
func (p *Player) SetMoving(dir core.Direction, held bool) {
	switch dir {
	case core.DirLeft:
		p.movingLeft = held
	case core.DirRight:
		p.movingRight = held
	}
}

// Moving reports whether a direction is held.
func (p *Player) Moving(dir core.Direction) bool {
	switch dir {
	case core.DirLeft:
		return p.movingLeft
	case core.DirRight:
		return p.movingRight
	}
	return false
}

// Speed returns the current lateral speed per tick.
func (p *Player) Speed() float64 {
	speed := p.cfg.MoveSpeed
	if p.effects != nil && p.effects.IsActive(powerup.Coffee) {
		speed *= p.cfg.CoffeeMoveMultiplier
	}
	return speed
}

// Move applies held directions and clamps the player into [minX, maxX].
func (p *Player) Move(minX, maxX float64) {
	speed := p.Speed()
	if p.movingLeft {
		p.Box.X -= speed
	}
	if p.movingRight {
		p.Box.X += speed
	}
	p.Box.X = core.Clamp(p.Box.X, minX, maxX-p.Box.W)
}

// TickImmunity counts the immunity window down by one tick.
func (p *Player) TickImmunity() {
	if p.Immunity > 0 {
		p.Immunity--
	}
}

// Immune reports whether damage is currently ignored.
func (p *Player) Immune() bool {
	return p.Immunity > 0
}

// Damage removes one hit point and starts the immunity window.
// It returns false when the player was immune or already down.
func (p *Player) Damage() bool {
	if p.Immune() || p.HP <= 0 {
		return false
	}
	p.HP--
	p.Immunity = p.cfg.ImmunityTicks
	return true
}

// Heal restores up to n hit points, capped at MaxHP, and returns the
// amount actually restored.
func (p *Player) Heal(n int) int {
	if n <= 0 {
		return 0
	}
	before := p.HP
	p.HP = min(p.HP+n, p.MaxHP)
	return p.HP - before
}

// UseTool spends one tool token if any is held.
func (p *Player) UseTool() bool {
	if p.Tools <= 0 {
		return false
	}
	p.Tools--
	return true
}

// Strip drops every held tool token and door pass.
func (p *Player) Strip() {
	p.Tools = 0
	p.Passes = 0
}

// Dead reports whether the player has no hit points left.
func (p *Player) Dead() bool {
	return p.HP <= 0
}
