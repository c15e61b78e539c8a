package powerup

// ExpireFunc is called when an effect's counter reaches zero.
type ExpireFunc func(Kind)

// ActiveEffect is a read-only view of one running effect.
type ActiveEffect struct {
	Kind    Kind
	Ticks   int // Ticks remaining
	Seconds int // Ticks remaining rounded up to whole seconds
}

// System tracks timed effects, at most one counter per kind.
// Counters are stored per kind in enumeration order so that expiry
// notifications fire in a stable order.
type System struct {
	remaining      [KindCount]int
	ticksPerSecond int
	onExpire       ExpireFunc
}

// NewSystem creates an empty effect system. onExpire may be nil.
func NewSystem(ticksPerSecond int, onExpire ExpireFunc) *System {
	if ticksPerSecond <= 0 {
		ticksPerSecond = 60
	}
	return &System{
		ticksPerSecond: ticksPerSecond,
		onExpire:       onExpire,
	}
}

// Activate sets the counter for k to duration ticks.
// Re-activating a running kind refreshes it; durations never stack.
func (s *System) Activate(k Kind, duration int) {
	if !k.Valid() || duration <= 0 {
		return
	}
	s.remaining[k] = duration
}

// Update advances every running counter by one tick and expires those
// that reach zero.
func (s *System) Update() {
	for k := Kind(0); k < KindCount; k++ {
		if s.remaining[k] == 0 {
			continue
		}
		s.remaining[k]--
		if s.remaining[k] == 0 && s.onExpire != nil {
			s.onExpire(k)
		}
	}
}

// IsActive reports whether k currently has a running counter.
func (s *System) IsActive(k Kind) bool {
	return k.Valid() && s.remaining[k] > 0
}

// Remaining returns the ticks left for k, or 0 if inactive.
func (s *System) Remaining(k Kind) int {
	if !k.Valid() {
		return 0
	}
	return s.remaining[k]
}

// RemainingSeconds returns the ticks left for k in whole seconds, rounded up.
func (s *System) RemainingSeconds(k Kind) int {
	ticks := s.Remaining(k)
	return (ticks + s.ticksPerSecond - 1) / s.ticksPerSecond
}

// Active lists running effects in kind order.
func (s *System) Active() []ActiveEffect {
	var out []ActiveEffect
	for k := Kind(0); k < KindCount; k++ {
		if s.remaining[k] > 0 {
			out = append(out, ActiveEffect{
				Kind:    k,
				Ticks:   s.remaining[k],
				Seconds: s.RemainingSeconds(k),
			})
		}
	}
	return out
}

// Clear drops every effect without expiry notifications.
func (s *System) Clear() {
	s.remaining = [KindCount]int{}
}
