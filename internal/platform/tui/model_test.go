package tui

import (
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tenure-rush/internal/config"
	"github.com/vovakirdan/tenure-rush/internal/core"
	"github.com/vovakirdan/tenure-rush/internal/event"
	"github.com/vovakirdan/tenure-rush/internal/game"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := config.DefaultTenureConfig()
	never := config.Span{Min: 1 << 30, Max: 1 << 30}
	cfg.Spawning.Door = never
	cfg.Spawning.PowerUp = never
	cfg.Spawning.Friend = never
	cfg.Spawning.Wanderer = []config.LevelSpan{{Level: 1, Min: 1 << 30, Max: 1 << 30}}

	session := game.NewSession(game.SessionOptions{
		Config: cfg,
		Seed:   1,
		Logger: log.New(io.Discard),
	})
	return NewModel(session, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30})
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func press(t *testing.T, m Model, msg tea.KeyMsg, now time.Time) Model {
	t.Helper()
	next, _ := m.handleKey(msg, now)
	return next.(Model)
}

func TestModelDrivesFixedSteps(t *testing.T) {
	m := newTestModel(t)
	start := time.Unix(100, 0)

	m = update(t, m, TickMsg(start))
	if got := m.Session().Scene().Tick(); got != 0 {
		t.Fatalf("first frame ran %d steps, expected 0", got)
	}

	m = update(t, m, TickMsg(start.Add(100*time.Millisecond)))
	if got := m.Session().Scene().Tick(); got != 6 {
		t.Errorf("100ms ran %d steps, expected 6", got)
	}

	// Stalls are capped
	m = update(t, m, TickMsg(start.Add(10*time.Second)))
	if got := m.Session().Scene().Tick(); got > 6+15+1 {
		t.Errorf("stall ran %d total steps", got)
	}
}

func TestModelKeysReachSession(t *testing.T) {
	m := newTestModel(t)
	now := time.Unix(100, 0)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft}, now)
	player := m.Session().Scene().Player()
	if !player.Moving(core.DirLeft) {
		t.Fatal("left key did not start moving")
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight}, now.Add(10*time.Millisecond))
	if player.Moving(core.DirLeft) || !player.Moving(core.DirRight) {
		t.Error("right key should replace left")
	}

	m = update(t, m, TickMsg(now.Add(time.Second)))
	if player.Moving(core.DirRight) {
		t.Error("held key not released after the hold window")
	}

	m = press(t, m, runeKey('p'), now)
	if m.Session().State() != game.StatePaused {
		t.Errorf("State = %v, expected paused", m.Session().State())
	}
}

func TestModelHeldUpTypesOnce(t *testing.T) {
	m := newTestModel(t)
	bus := m.Session().Bus()
	var pressed, typed int
	event.On(bus, func(ev event.DirectionPressed) {
		if ev.Dir == core.DirUp {
			pressed++
		}
	})
	event.On(bus, func(event.SequenceKey) { typed++ })

	now := time.Unix(100, 0)
	for i := range 10 {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyUp}, now.Add(time.Duration(i)*33*time.Millisecond))
	}
	if pressed != 10 || typed != 1 {
		t.Fatalf("held up: pressed=%d typed=%d, expected 10 and 1", pressed, typed)
	}

	// A new press after the key was let go types again
	m = update(t, m, TickMsg(now.Add(2*time.Second)))
	press(t, m, tea.KeyMsg{Type: tea.KeyUp}, now.Add(2*time.Second))
	if typed != 2 {
		t.Errorf("typed = %d after a fresh press, expected 2", typed)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)
	next, cmd := m.Update(runeKey('q'))
	if !next.(Model).IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if next.(Model).View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t)
	if m.View() == "" {
		t.Error("empty view")
	}
}
