package game

import (
	"testing"

	"github.com/vovakirdan/tenure-rush/internal/config"
	"github.com/vovakirdan/tenure-rush/internal/core"
	"github.com/vovakirdan/tenure-rush/internal/powerup"
)

type fakeEffects map[powerup.Kind]bool

func (f fakeEffects) IsActive(k powerup.Kind) bool { return f[k] }

func newTestPlayer(effects EffectQuery) *Player {
	cfg := config.DefaultTenureConfig()
	return NewPlayer(cfg.Player, cfg.World, effects)
}

func TestPlayerStartsCentered(t *testing.T) {
	cfg := config.DefaultTenureConfig()
	p := newTestPlayer(nil)

	if p.Box.CenterX() != cfg.World.Width/2 {
		t.Errorf("CenterX = %v, expected %v", p.Box.CenterX(), cfg.World.Width/2)
	}
	if p.Box.Y != cfg.World.Height-cfg.Player.BottomOffset {
		t.Errorf("Y = %v, expected %v", p.Box.Y, cfg.World.Height-cfg.Player.BottomOffset)
	}
	if p.HP != cfg.Player.MaxHP || p.MaxHP != cfg.Player.MaxHP {
		t.Errorf("HP = %d/%d, expected %d", p.HP, p.MaxHP, cfg.Player.MaxHP)
	}
}

func TestPlayerMoveClamped(t *testing.T) {
	p := newTestPlayer(nil)
	p.SetMoving(core.DirLeft, true)
	for i := 0; i < 1000; i++ {
		p.Move(50, 718)
	}
	if p.Box.X != 50 {
		t.Errorf("X = %v, expected clamp at 50", p.Box.X)
	}

	p.SetMoving(core.DirLeft, false)
	p.SetMoving(core.DirRight, true)
	for i := 0; i < 1000; i++ {
		p.Move(50, 718)
	}
	if p.Box.Right() != 718 {
		t.Errorf("Right = %v, expected clamp at 718", p.Box.Right())
	}
}

func TestPlayerCoffeeSpeed(t *testing.T) {
	effects := fakeEffects{}
	p := newTestPlayer(effects)
	base := p.Speed()

	effects[powerup.Coffee] = true
	if p.Speed() != base*2 {
		t.Errorf("coffee speed = %v, expected %v", p.Speed(), base*2)
	}
}

func TestPlayerUpDoesNotMove(t *testing.T) {
	p := newTestPlayer(nil)
	x := p.Box.X
	p.SetMoving(core.DirUp, true)
	p.Move(0, 1000)
	if p.Box.X != x {
		t.Errorf("up moved the player from %v to %v", x, p.Box.X)
	}
	if p.Moving(core.DirUp) {
		t.Error("up should not register as lateral movement")
	}
}

func TestPlayerDamageAndImmunity(t *testing.T) {
	p := newTestPlayer(nil)

	if !p.Damage() {
		t.Fatal("first damage should apply")
	}
	if p.HP != 4 || !p.Immune() {
		t.Fatalf("after damage HP=%d immune=%v", p.HP, p.Immune())
	}
	if p.Damage() {
		t.Error("damage while immune should be ignored")
	}

	for p.Immune() {
		p.TickImmunity()
	}
	if !p.Damage() || p.HP != 3 {
		t.Errorf("damage after immunity: HP=%d", p.HP)
	}
}

func TestPlayerHealCapped(t *testing.T) {
	tests := []struct {
		name     string
		hp       int
		heal     int
		expected int
		restored int
	}{
		{"full", 5, 1, 5, 0},
		{"one down", 4, 1, 5, 1},
		{"overheal", 2, 10, 5, 3},
		{"zero", 3, 0, 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPlayer(nil)
			p.HP = tt.hp
			got := p.Heal(tt.heal)
			if p.HP != tt.expected || got != tt.restored {
				t.Errorf("Heal(%d) from %d: HP=%d restored=%d, expected %d/%d",
					tt.heal, tt.hp, p.HP, got, tt.expected, tt.restored)
			}
		})
	}
}

func TestPlayerToolsAndStrip(t *testing.T) {
	p := newTestPlayer(nil)
	if p.UseTool() {
		t.Error("UseTool with no tools should fail")
	}
	p.Tools = 2
	p.Passes = 3
	if !p.UseTool() || p.Tools != 1 {
		t.Errorf("UseTool: tools=%d", p.Tools)
	}
	p.Strip()
	if p.Tools != 0 || p.Passes != 0 {
		t.Errorf("Strip left tools=%d passes=%d", p.Tools, p.Passes)
	}
}
