package game

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tenure-rush/internal/config"
	"github.com/vovakirdan/tenure-rush/internal/core"
	"github.com/vovakirdan/tenure-rush/internal/event"
)

const never = 1 << 30

// quietConfig returns the default config with every spawner pushed out of
// reach so tests control the corridor contents.
func quietConfig() config.TenureConfig {
	cfg := config.DefaultTenureConfig()
	cfg.Spawning.Door = config.Span{Min: never, Max: never}
	cfg.Spawning.PowerUp = config.Span{Min: never, Max: never}
	cfg.Spawning.Friend = config.Span{Min: never, Max: never}
	cfg.Spawning.Wanderer = []config.LevelSpan{{Level: 1, Min: never, Max: never}}
	return cfg
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

// newQuietScene returns a scene with an empty corridor.
func newQuietScene(t *testing.T) (*Scene, *event.Bus) {
	t.Helper()
	bus := event.NewBus(quietLogger())
	s := NewScene(quietConfig(), bus, SceneOptions{Seed: 1, Logger: quietLogger()})
	s.doors = nil
	return s, bus
}

// atPlayer returns a box of the given size centered on the player.
func atPlayer(s *Scene, w, h float64) core.Rect {
	p := s.player.Box
	return core.NewRect(p.CenterX()-w/2, p.Y, w, h)
}

// aheadOfPlayer returns a door box in the interaction window, above the
// player and not touching it.
func aheadOfPlayer(s *Scene) core.Rect {
	dc := s.cfg.Doors
	p := s.player.Box
	return core.NewRect(p.CenterX()-dc.Width/2, p.Y-100, dc.Width, dc.Height)
}

func (s *Scene) addDoor(box core.Rect, seq ...core.Symbol) *Door {
	d := &Door{ID: s.newID(), Box: box, Level: s.level, Sequence: seq}
	s.doors = append(s.doors, d)
	return d
}

// recorder counts events of one type.
func recorder[T event.Event](bus *event.Bus) *[]T {
	var got []T
	event.On(bus, func(ev T) { got = append(got, ev) })
	return &got
}
