package game

import "github.com/vovakirdan/tenure-rush/internal/core"

// InputResult is the outcome of one sequence key.
type InputResult int

const (
	InputIgnored   InputResult = iota // No door selected
	InputAdvanced                     // Correct key, sequence not finished
	InputCompleted                    // Correct final key, door opened
	InputWrong                        // Wrong key, door broken
)

func (r InputResult) String() string {
	switch r {
	case InputIgnored:
		return "ignored"
	case InputAdvanced:
		return "advanced"
	case InputCompleted:
		return "completed"
	case InputWrong:
		return "wrong"
	default:
		return "unknown"
	}
}

// DoorMachine tracks the single door accepting sequence input.
// It is idle when no door is selected and awaiting input otherwise.
type DoorMachine struct {
	selected *Door
	sequence []core.Symbol
	index    int
}

// Selected returns the door awaiting input, or nil when idle.
func (m *DoorMachine) Selected() *Door {
	return m.selected
}

// Awaiting reports whether a door is selected.
func (m *DoorMachine) Awaiting() bool {
	return m.selected != nil
}

// Index returns how many keys of the selected sequence were matched.
func (m *DoorMachine) Index() int {
	return m.index
}

// Select makes d the active door and restarts its sequence from the first
// key. It refuses when another door is selected or d is resolved.
func (m *DoorMachine) Select(d *Door) bool {
	if m.selected != nil || d == nil || d.Resolved() {
		return false
	}
	m.selected = d
	m.sequence = append(m.sequence[:0], d.Sequence...)
	m.index = 0
	return true
}

// Clear returns the machine to idle. The door keeps its state.
func (m *DoorMachine) Clear() {
	m.selected = nil
	m.sequence = m.sequence[:0]
	m.index = 0
}

// ClearIf clears the selection when d is the selected door.
func (m *DoorMachine) ClearIf(d *Door) {
	if m.selected == d {
		m.Clear()
	}
}

// Input checks sym against the expected key. The first wrong key breaks the
// door no matter how much of the sequence was matched. Both terminal
// results leave the machine idle.
func (m *DoorMachine) Input(sym core.Symbol) (*Door, InputResult) {
	d := m.selected
	if d == nil {
		return nil, InputIgnored
	}
	d.InputTriggered = true

	if sym != m.sequence[m.index] {
		d.resolve(DoorBroken)
		d.Hit = true
		m.Clear()
		return d, InputWrong
	}

	m.index++
	if m.index < len(m.sequence) {
		return d, InputAdvanced
	}
	d.resolve(DoorOpen)
	m.Clear()
	return d, InputCompleted
}
