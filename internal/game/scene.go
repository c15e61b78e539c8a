package game

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tenure-rush/internal/config"
	"github.com/vovakirdan/tenure-rush/internal/core"
	"github.com/vovakirdan/tenure-rush/internal/event"
	"github.com/vovakirdan/tenure-rush/internal/powerup"
)

// SceneOptions configures a Scene.
type SceneOptions struct {
	Seed   int64
	Logger *log.Logger

	// Accepting gates sequence keys, the speed boost and the dev toggle.
	// Nil accepts all input.
	Accepting func() bool
}

// Scene is the simulation loop of one run. It owns the player, every entity
// collection and the effect system, and mutates them only from Step or from
// input handlers dispatched on its bus.
type Scene struct {
	cfg       config.TenureConfig
	bus       *event.Bus
	rng       *rand.Rand
	logger    *log.Logger
	accepting func() bool

	player  *Player
	effects *powerup.System
	seq     DoorMachine
	nextID  int

	doors     []*Door
	tokens    []*Token
	friends   []*Friend
	wanderers []*Wanderer
	hearts    []Heart
	callouts  []Callout

	doorTimer     spawner
	tokenTimer    spawner
	friendTimer   spawner
	wandererTimer spawner

	tick         uint64
	scrollOffset float64
	scrollSpeed  float64
	boost        bool
	devMode      bool

	tenure     int
	level      int
	collected  int // Hearts collected from friends
	passesUsed int
}

// NewScene builds a fresh run state and subscribes its input handlers on bus.
// The first door is spawned immediately.
func NewScene(cfg config.TenureConfig, bus *event.Bus, opts SceneOptions) *Scene {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	accepting := opts.Accepting
	if accepting == nil {
		accepting = func() bool { return true }
	}

	s := &Scene{
		cfg:         cfg,
		bus:         bus,
		rng:         rand.New(rand.NewSource(opts.Seed)), //#nosec G404 -- gameplay RNG, not security
		logger:      logger,
		accepting:   accepting,
		scrollSpeed: cfg.Scroll.BaseSpeed,
		level:       1,
	}
	s.effects = powerup.NewSystem(cfg.World.TicksPerSecond, s.onEffectExpired)
	s.player = NewPlayer(cfg.Player, cfg.World, s.effects)

	s.doorTimer.interval = s.rollDoorInterval()
	s.tokenTimer.interval = s.rollTokenInterval()
	s.friendTimer.interval = s.rollFriendInterval()
	s.wandererTimer.interval = s.rollWandererInterval()

	s.attach()
	s.spawnDoor()
	return s
}

func (s *Scene) attach() {
	event.On(s.bus, func(ev event.DirectionPressed) { s.onDirection(ev.Dir, true) })
	event.On(s.bus, func(ev event.DirectionReleased) { s.onDirection(ev.Dir, false) })
	event.On(s.bus, s.onSequenceKey)
	event.On(s.bus, func(event.DevModeToggled) { s.onDevToggle() })
}

// Step advances the simulation by one fixed tick.
func (s *Scene) Step() {
	s.tick++
	s.reconcileBoost()

	s.scrollOffset += s.scrollSpeed
	s.player.Move(s.cfg.World.CorridorLeft(), s.cfg.World.CorridorRight())
	s.player.TickImmunity()
	s.advanceEntities()
	s.updateSelection()
	s.effects.Update()
	s.runSpawners()
	s.resolveCollisions()
	s.updateLevel()

	s.reconcileBoost()
}

// advanceEntities moves every collection by one tick and culls what left
// the screen or ran out of lifetime.
func (s *Scene) advanceEntities() {
	limit := s.cfg.World.Height + s.cfg.World.CullMargin
	dy := s.scrollSpeed

	s.doors = filter(s.doors, func(d *Door) bool {
		if scroll(&d.Box, dy, limit) {
			return true
		}
		s.seq.ClearIf(d)
		return false
	})
	s.tokens = filter(s.tokens, func(t *Token) bool {
		return scroll(&t.Box, dy, limit)
	})
	s.friends = filter(s.friends, func(f *Friend) bool {
		f.Wave++
		return scroll(&f.Box, dy, limit)
	})
	left, right := s.cfg.World.CorridorLeft(), s.cfg.World.CorridorRight()
	s.wanderers = filter(s.wanderers, func(w *Wanderer) bool {
		w.walk(left, right)
		return scroll(&w.Box, dy, limit)
	})

	fx := s.cfg.Effects
	for i := range s.hearts {
		s.hearts[i].Y -= fx.HeartRise
		s.hearts[i].Life--
	}
	s.hearts = filter(s.hearts, func(h Heart) bool { return h.Life > 0 })
	for i := range s.callouts {
		s.callouts[i].Y -= fx.CalloutRise
		s.callouts[i].Life--
	}
	s.callouts = filter(s.callouts, func(c Callout) bool { return c.Life > 0 })
}

// eligible reports whether d is inside the interaction window: within the
// vertical band around the player and under the player's center.
func (s *Scene) eligible(d *Door) bool {
	py := s.player.Box.Y
	if d.Box.Y <= py-s.cfg.Doors.BandAhead || d.Box.Y >= py+s.cfg.Doors.BandBehind {
		return false
	}
	cx := s.player.Box.CenterX()
	return cx >= d.Box.X && cx <= d.Box.Right()
}

// inWindow reports whether any untouched door has the player in its window.
func (s *Scene) inWindow() bool {
	for _, d := range s.doors {
		if !d.InputTriggered && s.eligible(d) {
			return true
		}
	}
	return false
}

// updateSelection drops a selection that left the window and selects the
// first eligible closed door when idle.
func (s *Scene) updateSelection() {
	if sel := s.seq.Selected(); sel != nil && (sel.Resolved() || !s.eligible(sel)) {
		s.seq.Clear()
	}
	if s.seq.Awaiting() {
		return
	}
	for _, d := range s.doors {
		if d.Resolved() || !s.eligible(d) {
			continue
		}
		s.seq.Select(d)
		s.setBoost(false)
		s.bus.Publish(event.DoorSelected{DoorID: d.ID, Sequence: append([]core.Symbol(nil), d.Sequence...)})
		return
	}
}

func (s *Scene) updateLevel() {
	level := s.cfg.Progression.LevelFor(s.tenure)
	if level > s.level {
		s.level = level
		s.bus.Publish(event.LevelChanged{Level: level})
	}
}

// setBoost switches the forward speed boost and recomputes scroll speed.
func (s *Scene) setBoost(on bool) {
	s.boost = on
	s.scrollSpeed = s.cfg.Scroll.BaseSpeed
	if on {
		s.scrollSpeed *= s.cfg.Scroll.BoostMultiplier
	}
}

// reconcileBoost cancels the boost inside a door window.
func (s *Scene) reconcileBoost() {
	if s.boost && s.inWindow() {
		s.setBoost(false)
	}
}

func (s *Scene) onDirection(dir core.Direction, held bool) {
	if dir != core.DirUp {
		s.player.SetMoving(dir, held)
		return
	}
	if !held {
		s.setBoost(false)
		return
	}
	if s.accepting() && s.effects.IsActive(powerup.Coffee) && !s.inWindow() {
		s.setBoost(true)
	}
}

func (s *Scene) onSequenceKey(ev event.SequenceKey) {
	if !s.accepting() {
		return
	}
	d, result := s.seq.Input(ev.Symbol)
	switch result {
	case InputCompleted:
		s.openDoor(d, false)
	case InputWrong:
		s.logger.Debug("door broken", "door", d.ID, "key", ev.Symbol)
		s.damage()
		s.addPlayerCallout(pick(s.rng, failureLines), ToneFailure)
		s.bus.Publish(event.DoorFailed{DoorID: d.ID, Cause: event.CauseWrongKey})
	}
	if s.boost && s.inWindow() {
		s.setBoost(false)
	}
}

func (s *Scene) onDevToggle() {
	if !s.accepting() {
		return
	}
	s.devMode = !s.devMode
	line := devOffLine
	if s.devMode {
		line = devOnLine
	}
	s.callouts = append(s.callouts, Callout{
		X:    s.player.Box.CenterX(),
		Y:    s.player.Box.Y - 30,
		Text: line,
		Tone: ToneInfo,
		Life: s.cfg.Effects.CalloutTicks,
	})
}

func (s *Scene) onEffectExpired(k powerup.Kind) {
	if k == powerup.Coffee {
		s.setBoost(false)
	}
	s.bus.Publish(event.PowerUpExpired{Kind: k})
}

// openDoor applies tenure for a door that just opened. Tenure stops
// changing once the win threshold is reached.
func (s *Scene) openDoor(d *Door, passUsed bool) {
	s.seq.ClearIf(d)

	win := s.cfg.Progression.WinTenure
	gain := 0
	if s.tenure < win {
		gain = s.cfg.Progression.DoorGain
		if s.effects.IsActive(powerup.Glasses) {
			gain *= s.cfg.Progression.GlassesMultiplier
		}
		if s.devMode {
			gain *= s.cfg.Progression.DevMultiplier
		}
		s.tenure = min(s.tenure+gain, win)
	}

	if passUsed {
		s.addPlayerCallout(passUsedLine, TonePass)
	} else {
		s.addPlayerCallout(pick(s.rng, successLines), ToneSuccess)
	}
	s.bus.Publish(event.DoorOpened{DoorID: d.ID, PassUsed: passUsed, Gain: gain, Tenure: s.tenure})
}

// damage applies one damage unit unless the player is immune.
func (s *Scene) damage() {
	if !s.player.Damage() {
		return
	}
	s.bus.Publish(event.PlayerDamaged{HP: s.player.HP})
}

func (s *Scene) addPlayerCallout(text string, tone Tone) {
	s.callouts = append(s.callouts, Callout{
		X:    s.player.Box.CenterX(),
		Y:    s.player.Box.Y,
		Text: text,
		Tone: tone,
		Life: s.cfg.Effects.CalloutTicks,
	})
}

func (s *Scene) addHeart(x, y float64) {
	s.hearts = append(s.hearts, Heart{X: x, Y: y, Life: s.cfg.Effects.HeartTicks})
}

// Player returns the player. Callers must treat it as read-only.
func (s *Scene) Player() *Player { return s.player }

// Doors returns the live doors, oldest first.
func (s *Scene) Doors() []*Door { return s.doors }

// Tokens returns the power-up tokens in the corridor.
func (s *Scene) Tokens() []*Token { return s.tokens }

// Friends returns the live friends.
func (s *Scene) Friends() []*Friend { return s.friends }

// Wanderers returns the live wanderers.
func (s *Scene) Wanderers() []*Wanderer { return s.wanderers }

// HeartMarkers returns the floating heart markers.
func (s *Scene) HeartMarkers() []Heart { return s.hearts }

// Callouts returns the floating text markers.
func (s *Scene) Callouts() []Callout { return s.callouts }

// Selected returns the door awaiting input and the matched prefix length.
func (s *Scene) Selected() (*Door, int) { return s.seq.Selected(), s.seq.Index() }

// Effects returns the running timed effects.
func (s *Scene) Effects() []powerup.ActiveEffect { return s.effects.Active() }

// EffectActive reports whether a timed effect is running.
func (s *Scene) EffectActive(k powerup.Kind) bool { return s.effects.IsActive(k) }

func (s *Scene) Tenure() int { return s.tenure }
func (s *Scene) Level() int { return s.level }
func (s *Scene) HeartsCollected() int { return s.collected }
func (s *Scene) PassesUsed() int { return s.passesUsed }
func (s *Scene) Tick() uint64 { return s.tick }
func (s *Scene) ScrollOffset() float64 { return s.scrollOffset }
func (s *Scene) ScrollSpeed() float64 { return s.scrollSpeed }
func (s *Scene) Boosting() bool { return s.boost }
func (s *Scene) DevMode() bool { return s.devMode }
func (s *Scene) Config() config.TenureConfig { return s.cfg }
