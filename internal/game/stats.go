package game

import (
	"math"
	"time"

	"github.com/vovakirdan/tenure-rush/internal/powerup"
)

// Stats is the read-only summary shown by the HUD and end screens.
type Stats struct {
	Tenure     int
	Hearts     int
	Level      int
	HP         int
	MaxHP      int
	Passes     int
	Tools      int
	PassesUsed int
	Effects    []powerup.ActiveEffect
	Boosting   bool
	DevMode    bool

	State     State
	Elapsed   time.Duration
	Best      time.Duration
	HasBest   bool
	NewRecord bool
}

// Stats returns the simulation part of the summary.
func (s *Scene) Stats() Stats {
	return Stats{
		Tenure:     s.tenure,
		Hearts:     s.collected,
		Level:      s.level,
		HP:         s.player.HP,
		MaxHP:      s.player.MaxHP,
		Passes:     s.player.Passes,
		Tools:      s.player.Tools,
		PassesUsed: s.passesUsed,
		Effects:    s.effects.Active(),
		Boosting:   s.boost,
		DevMode:    s.devMode,
	}
}

// Snapshot is the complete simulation state in primitive form, used to
// compare runs for determinism.
type Snapshot struct {
	Tick       uint64
	Scroll     float64
	Speed      float64
	Tenure     int
	Level      int
	Hearts     int
	PassesUsed int

	PlayerX  float64
	HP       int
	Passes   int
	Tools    int
	Immunity int

	Selected int // Door ID, 0 when idle
	Index    int

	// Each door is 5 values: ID, X, Y, State, Hit
	DoorData []float64
	// Each token is 4 values: ID, Kind, X, Y
	TokenData []float64
	// Each friend is 4 values: ID, X, Y, Contacted
	FriendData []float64
	// Each wanderer is 5 values: ID, X, Y, Dir, Speed
	WandererData []float64
	// Each effect is 2 values: Kind, Ticks
	EffectData []int
}

func boolf(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// Snapshot captures the current simulation state.
func (s *Scene) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:       s.tick,
		Scroll:     s.scrollOffset,
		Speed:      s.scrollSpeed,
		Tenure:     s.tenure,
		Level:      s.level,
		Hearts:     s.collected,
		PassesUsed: s.passesUsed,
		PlayerX:    s.player.Box.X,
		HP:         s.player.HP,
		Passes:     s.player.Passes,
		Tools:      s.player.Tools,
		Immunity:   s.player.Immunity,
		Index:      s.seq.Index(),
	}
	if d := s.seq.Selected(); d != nil {
		snap.Selected = d.ID
	}

	for _, d := range s.doors {
		snap.DoorData = append(snap.DoorData, float64(d.ID), d.Box.X, d.Box.Y, float64(d.State), boolf(d.Hit))
	}
	for _, t := range s.tokens {
		snap.TokenData = append(snap.TokenData, float64(t.ID), float64(t.Kind), t.Box.X, t.Box.Y)
	}
	for _, f := range s.friends {
		snap.FriendData = append(snap.FriendData, float64(f.ID), f.Box.X, f.Box.Y, boolf(f.Contacted))
	}
	for _, w := range s.wanderers {
		snap.WandererData = append(snap.WandererData, float64(w.ID), w.Box.X, w.Box.Y, w.Dir, w.Speed)
	}
	for _, e := range s.effects.Active() {
		snap.EffectData = append(snap.EffectData, int(e.Kind), e.Ticks)
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	mix := func(v uint64) { h = h*31 + v }

	mix(math.Float64bits(snap.Scroll))
	mix(math.Float64bits(snap.Speed))
	mix(math.Float64bits(snap.PlayerX))
	for _, v := range []int{snap.Tenure, snap.Level, snap.Hearts, snap.PassesUsed, snap.HP,
		snap.Passes, snap.Tools, snap.Immunity, snap.Selected, snap.Index} {
		mix(uint64(v)) //#nosec G115 -- hash computation
	}
	for _, data := range [][]float64{snap.DoorData, snap.TokenData, snap.FriendData, snap.WandererData} {
		mix(uint64(len(data)))
		for _, v := range data {
			mix(math.Float64bits(v))
		}
	}
	for _, v := range snap.EffectData {
		mix(uint64(v)) //#nosec G115 -- hash computation
	}
	return h
}
