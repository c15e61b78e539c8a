package game

import (
	"testing"

	"github.com/vovakirdan/tenure-rush/internal/core"
)

func newDoor(seq ...core.Symbol) *Door {
	return &Door{ID: 1, Sequence: seq}
}

func TestDoorMachineCompletes(t *testing.T) {
	var m DoorMachine
	d := newDoor(core.SymbolUp, core.SymbolDown, core.SymbolSpace)

	if !m.Select(d) {
		t.Fatal("Select failed")
	}
	for i, sym := range d.Sequence[:2] {
		if _, r := m.Input(sym); r != InputAdvanced {
			t.Fatalf("key %d: result %v, expected advanced", i, r)
		}
	}
	if m.Index() != 2 {
		t.Errorf("Index = %d, expected 2", m.Index())
	}

	got, r := m.Input(core.SymbolSpace)
	if r != InputCompleted || got != d {
		t.Fatalf("final key: result %v", r)
	}
	if d.State != DoorOpen || !d.InputTriggered {
		t.Errorf("door state=%v triggered=%v", d.State, d.InputTriggered)
	}
	if m.Awaiting() {
		t.Error("machine should be idle after completion")
	}
}

func TestDoorMachineWrongKeyBreaks(t *testing.T) {
	tests := []struct {
		name    string
		prefix  int
		wrong   core.Symbol
		correct []core.Symbol
	}{
		{"first key", 0, core.SymbolDown, []core.Symbol{core.SymbolUp, core.SymbolUp}},
		{"after progress", 2, core.SymbolUp, []core.Symbol{core.SymbolUp, core.SymbolUp, core.SymbolSpace}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m DoorMachine
			d := newDoor(tt.correct...)
			m.Select(d)
			for _, sym := range tt.correct[:tt.prefix] {
				m.Input(sym)
			}
			if _, r := m.Input(tt.wrong); r != InputWrong {
				t.Fatalf("result %v, expected wrong", r)
			}
			if d.State != DoorBroken || !d.Hit {
				t.Errorf("door state=%v hit=%v, expected broken and hit", d.State, d.Hit)
			}
			if m.Awaiting() {
				t.Error("machine should be idle after a wrong key")
			}
		})
	}
}

func TestDoorMachineIdleIgnoresInput(t *testing.T) {
	var m DoorMachine
	if d, r := m.Input(core.SymbolUp); d != nil || r != InputIgnored {
		t.Errorf("idle Input = %v, %v", d, r)
	}
}

func TestDoorMachineSelectRules(t *testing.T) {
	var m DoorMachine
	a := newDoor(core.SymbolUp)
	b := newDoor(core.SymbolDown)

	m.Select(a)
	if m.Select(b) {
		t.Error("second door selected while another awaits input")
	}

	m.ClearIf(b)
	if m.Selected() != a {
		t.Error("ClearIf with another door must keep the selection")
	}
	m.ClearIf(a)
	if m.Awaiting() {
		t.Error("ClearIf with the selected door must clear")
	}

	b.State = DoorBroken
	if m.Select(b) {
		t.Error("resolved door selected")
	}
}

func TestDoorResolveIsTerminal(t *testing.T) {
	d := newDoor(core.SymbolUp)
	if !d.resolve(DoorOpenViaPass) {
		t.Fatal("resolve from closed failed")
	}
	if d.resolve(DoorBroken) || d.State != DoorOpenViaPass {
		t.Errorf("resolved door changed to %v", d.State)
	}
}
