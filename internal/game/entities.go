package game

import (
	"github.com/vovakirdan/tenure-rush/internal/core"
	"github.com/vovakirdan/tenure-rush/internal/powerup"
)

// DoorState is the lifecycle tag of a door.
type DoorState int

const (
	DoorClosed      DoorState = iota // Initial state, the only non-terminal one
	DoorOpen                         // Opened by completing the sequence
	DoorOpenViaPass                  // Opened by spending a door pass
	DoorBroken                       // Wrong key typed, permanently failed
)

func (s DoorState) String() string {
	switch s {
	case DoorClosed:
		return "closed"
	case DoorOpen:
		return "open"
	case DoorOpenViaPass:
		return "open-via-pass"
	case DoorBroken:
		return "broken"
	default:
		return "unknown"
	}
}

// Door blocks the corridor until its sequence is typed or a pass is spent.
type Door struct {
	ID       int
	Box      core.Rect
	Level    int           // Level at spawn, sizes the sequence
	Sequence []core.Symbol // Required keys in order
	State    DoorState

	Hit            bool // Registered its single collision with the player
	InputTriggered bool // Received at least one sequence key
}

// Resolved reports whether the door reached a terminal state.
func (d *Door) Resolved() bool {
	return d.State != DoorClosed
}

// resolve moves a closed door into a terminal state. Resolved doors never change.
func (d *Door) resolve(to DoorState) bool {
	if d.State != DoorClosed || to == DoorClosed {
		return false
	}
	d.State = to
	return true
}

// Token is a power-up lying in the corridor.
type Token struct {
	ID   int
	Box  core.Rect
	Kind powerup.Kind
}

// Friend grants a door pass on first contact.
type Friend struct {
	ID        int
	Box       core.Rect
	Contacted bool
	Wave      int // Animation phase counter
}

// Wanderer is a hostile entity that walks across the corridor.
type Wanderer struct {
	ID    int
	Box   core.Rect
	Dir   float64 // -1 left, +1 right
	Speed float64 // Drawn once at spawn
}

// walk moves the wanderer sideways and bounces it at the walls.
func (w *Wanderer) walk(left, right float64) {
	w.Box.X += w.Speed * w.Dir
	if w.Box.X < left {
		w.Box.X = left
		w.Dir = 1
	} else if w.Box.X > right-w.Box.W {
		w.Box.X = right - w.Box.W
		w.Dir = -1
	}
}

// Heart is a floating marker shown after a friend contact.
type Heart struct {
	X, Y float64
	Life int
}

// Callout is a floating text marker.
type Callout struct {
	X, Y float64
	Text string
	Tone Tone
	Life int
}

// scroll moves a box down by dy and reports whether it is still on screen.
func scroll(box *core.Rect, dy, limit float64) bool {
	box.Y += dy
	return box.Y <= limit
}

// filter keeps the elements for which keep returns true, in order.
func filter[T any](items []T, keep func(T) bool) []T {
	out := items[:0]
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	clear(items[len(out):])
	return out
}
