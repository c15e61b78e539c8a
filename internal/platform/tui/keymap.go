package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tenure-rush/internal/core"
	"github.com/vovakirdan/tenure-rush/internal/event"
)

// Command is a player intent derived from a key press.
type Command int

const (
	CmdNone Command = iota
	CmdQuit
	CmdLeft
	CmdRight
	CmdUp
	CmdDown
	CmdSpace
	CmdPause
	CmdRestart
	CmdDevMode
	CmdScreenshot
)

// KeyMapper translates Bubble Tea key messages to commands.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a command.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) Command {
	switch msg.String() {
	case "ctrl+c", "q":
		return CmdQuit
	case "ctrl+s":
		return CmdScreenshot
	case "left", "a":
		return CmdLeft
	case "right", "d":
		return CmdRight
	case "up", "w":
		return CmdUp
	case "down", "s":
		return CmdDown
	case " ":
		return CmdSpace
	case "p", "esc":
		return CmdPause
	case "r":
		return CmdRestart
	case "D":
		return CmdDevMode
	}
	return CmdNone
}

// Events returns the bus events a command publishes. Up both starts the
// speed boost and types the up symbol.
func (c Command) Events() []event.Event {
	switch c {
	case CmdLeft:
		return []event.Event{event.DirectionPressed{Dir: core.DirLeft}}
	case CmdRight:
		return []event.Event{event.DirectionPressed{Dir: core.DirRight}}
	case CmdUp:
		return []event.Event{
			event.DirectionPressed{Dir: core.DirUp},
			event.SequenceKey{Symbol: core.SymbolUp},
		}
	case CmdDown:
		return []event.Event{event.SequenceKey{Symbol: core.SymbolDown}}
	case CmdSpace:
		return []event.Event{event.SequenceKey{Symbol: core.SymbolSpace}}
	case CmdPause:
		return []event.Event{event.PauseToggled{}}
	case CmdRestart:
		return []event.Event{event.RestartRequested{}}
	case CmdDevMode:
		return []event.Event{event.DevModeToggled{}}
	}
	return nil
}

// DefaultHoldWindow covers the terminal's initial auto-repeat delay.
const DefaultHoldWindow = 500 * time.Millisecond

// heldKeys emulates key release. Terminals only report presses, so a
// direction counts as held until no repeat arrives within the hold window,
// or until the opposite direction is pressed.
type heldKeys struct {
	window time.Duration
	until  map[core.Direction]time.Time
}

func newHeldKeys(window time.Duration) *heldKeys {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &heldKeys{window: window, until: make(map[core.Direction]time.Time)}
}

// press refreshes dir and returns the directions released by the press.
// repeat reports that dir was still held, i.e. the press is auto-repeat.
func (h *heldKeys) press(dir core.Direction, now time.Time) (released []core.Direction, repeat bool) {
	if opp, ok := opposite(dir); ok {
		if _, held := h.until[opp]; held {
			delete(h.until, opp)
			released = append(released, opp)
		}
	}
	if until, held := h.until[dir]; held && now.Before(until) {
		repeat = true
	}
	h.until[dir] = now.Add(h.window)
	return released, repeat
}

// expire returns the directions whose hold window ran out, in a stable order.
func (h *heldKeys) expire(now time.Time) []core.Direction {
	var released []core.Direction
	for _, dir := range []core.Direction{core.DirLeft, core.DirRight, core.DirUp} {
		if until, ok := h.until[dir]; ok && !now.Before(until) {
			delete(h.until, dir)
			released = append(released, dir)
		}
	}
	return released
}

func (h *heldKeys) reset() {
	clear(h.until)
}

func opposite(dir core.Direction) (core.Direction, bool) {
	switch dir {
	case core.DirLeft:
		return core.DirRight, true
	case core.DirRight:
		return core.DirLeft, true
	}
	return dir, false
}
