package game

import (
	"math/rand"

	"github.com/vovakirdan/tenure-rush/internal/config"
	"github.com/vovakirdan/tenure-rush/internal/core"
	"github.com/vovakirdan/tenure-rush/internal/powerup"
)

// spawner counts ticks toward its next spawn.
type spawner struct {
	elapsed  int
	interval int
}

// tick advances the counter and reports whether the spawner fired.
// The caller rolls the next interval after spawning.
func (sp *spawner) tick() bool {
	sp.elapsed++
	if sp.elapsed >= sp.interval {
		sp.elapsed = 0
		return true
	}
	return false
}

// randInt returns a uniform integer in [lo, hi].
func randInt(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return rng.Intn(hi-lo+1) + lo
}

// randFloat returns a uniform float in [lo, hi).
func randFloat(rng *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}

func rollSpan(rng *rand.Rand, s config.Span) int {
	return randInt(rng, s.Min, s.Max)
}

func (s *Scene) rollDoorInterval() int {
	return rollSpan(s.rng, s.cfg.Spawning.Door)
}

func (s *Scene) rollTokenInterval() int {
	return rollSpan(s.rng, s.cfg.Spawning.PowerUp)
}

func (s *Scene) rollFriendInterval() int {
	n := rollSpan(s.rng, s.cfg.Spawning.Friend)
	return max(1, s.cfg.Spawning.FriendInterval(n, s.effects.IsActive(powerup.Cheese)))
}

func (s *Scene) rollWandererInterval() int {
	return rollSpan(s.rng, s.cfg.Spawning.WandererSpan(s.level))
}

// spawnX returns a left edge that keeps a body of width w inside the corridor.
func (s *Scene) spawnX(w float64) float64 {
	left := s.cfg.World.CorridorLeft()
	return randFloat(s.rng, left, s.cfg.World.CorridorRight()-w)
}

func (s *Scene) newID() int {
	s.nextID++
	return s.nextID
}

func (s *Scene) spawnDoor() {
	dc := s.cfg.Doors
	n := dc.SequenceLength(s.level)
	seq := make([]core.Symbol, n)
	x := s.spawnX(dc.Width)
	for i := range seq {
		seq[i] = core.Symbol(s.rng.Intn(int(core.SymbolCount)))
	}
	s.doors = append(s.doors, &Door{
		ID:       s.newID(),
		Box:      core.NewRect(x, -dc.Height, dc.Width, dc.Height),
		Level:    s.level,
		Sequence: seq,
	})
}

// tokenKinds lists the kinds that may spawn. Chopsticks appear only when no
// tool token is held, sushi only when at least one is.
func (s *Scene) tokenKinds() []powerup.Kind {
	kinds := []powerup.Kind{powerup.Coffee, powerup.Glasses, powerup.Cheese}
	if s.player.Tools == 0 {
		kinds = append(kinds, powerup.Chopsticks)
	} else {
		kinds = append(kinds, powerup.Sushi)
	}
	return kinds
}

func (s *Scene) spawnToken() {
	kinds := s.tokenKinds()
	kind := kinds[s.rng.Intn(len(kinds))]
	size := s.cfg.PowerUps.Size
	s.tokens = append(s.tokens, &Token{
		ID:   s.newID(),
		Box:  core.NewRect(s.spawnX(size), -size, size, size),
		Kind: kind,
	})
}

func (s *Scene) spawnFriend() {
	fc := s.cfg.Friends
	s.friends = append(s.friends, &Friend{
		ID:  s.newID(),
		Box: core.NewRect(s.spawnX(fc.Width), -fc.Height, fc.Width, fc.Height),
	})
}

func (s *Scene) spawnWanderer() {
	wc := s.cfg.Wanderers
	x := s.spawnX(wc.Width)
	dir := 1.0
	if s.rng.Intn(2) == 0 {
		dir = -1
	}
	s.wanderers = append(s.wanderers, &Wanderer{
		ID:    s.newID(),
		Box:   core.NewRect(x, -wc.Height, wc.Width, wc.Height),
		Dir:   dir,
		Speed: randFloat(s.rng, wc.MinSpeed, wc.MaxSpeed),
	})
}

// runSpawners advances the four independent spawn timers.
func (s *Scene) runSpawners() {
	if s.doorTimer.tick() {
		s.spawnDoor()
		s.doorTimer.interval = s.rollDoorInterval()
	}
	if s.tokenTimer.tick() {
		s.spawnToken()
		s.tokenTimer.interval = s.rollTokenInterval()
	}
	if s.friendTimer.tick() {
		s.spawnFriend()
		s.friendTimer.interval = s.rollFriendInterval()
	}
	if s.wandererTimer.tick() {
		s.spawnWanderer()
		s.wandererTimer.interval = s.rollWandererInterval()
	}
}
