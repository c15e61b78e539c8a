package powerup

import (
	"reflect"
	"testing"
)

func TestActivateAndExpire(t *testing.T) {
	var expired []Kind
	s := NewSystem(60, func(k Kind) { expired = append(expired, k) })

	s.Activate(Coffee, 3)
	if !s.IsActive(Coffee) {
		t.Fatal("coffee should be active after Activate")
	}

	s.Update()
	s.Update()
	if !s.IsActive(Coffee) || s.Remaining(Coffee) != 1 {
		t.Fatalf("after 2 ticks remaining = %d, expected 1", s.Remaining(Coffee))
	}
	if len(expired) != 0 {
		t.Fatalf("expired too early: %v", expired)
	}

	s.Update()
	if s.IsActive(Coffee) {
		t.Error("coffee should have expired")
	}
	if !reflect.DeepEqual(expired, []Kind{Coffee}) {
		t.Errorf("expired = %v, expected [coffee]", expired)
	}

	// Further updates never go negative or re-notify
	s.Update()
	if s.Remaining(Coffee) != 0 || len(expired) != 1 {
		t.Errorf("remaining = %d, notifications = %d", s.Remaining(Coffee), len(expired))
	}
}

func TestReactivateRefreshesNotStacks(t *testing.T) {
	s := NewSystem(60, nil)

	s.Activate(Glasses, 900)
	for i := 0; i < 100; i++ {
		s.Update()
	}
	s.Activate(Glasses, 900)

	if got := s.Remaining(Glasses); got != 900 {
		t.Errorf("Remaining after refresh = %d, expected 900", got)
	}
}

func TestRemainingSecondsRoundsUp(t *testing.T) {
	s := NewSystem(60, nil)

	tests := []struct {
		ticks    int
		expected int
	}{
		{1200, 20},
		{1199, 20},
		{61, 2},
		{60, 1},
		{1, 1},
	}

	for _, tc := range tests {
		s.Activate(Cheese, tc.ticks)
		if got := s.RemainingSeconds(Cheese); got != tc.expected {
			t.Errorf("RemainingSeconds(%d ticks) = %d, expected %d", tc.ticks, got, tc.expected)
		}
	}

	if got := s.RemainingSeconds(Coffee); got != 0 {
		t.Errorf("inactive kind seconds = %d, expected 0", got)
	}
}

func TestQueriesHaveNoSideEffects(t *testing.T) {
	s := NewSystem(60, nil)
	s.Activate(Coffee, 10)

	for i := 0; i < 5; i++ {
		s.IsActive(Coffee)
		s.Remaining(Coffee)
		s.RemainingSeconds(Coffee)
		s.Active()
	}
	if s.Remaining(Coffee) != 10 {
		t.Errorf("queries changed state: remaining = %d", s.Remaining(Coffee))
	}
}

func TestExpiryOrderIsStable(t *testing.T) {
	var expired []Kind
	s := NewSystem(60, func(k Kind) { expired = append(expired, k) })

	s.Activate(Cheese, 1)
	s.Activate(Coffee, 1)
	s.Activate(Glasses, 1)
	s.Update()

	want := []Kind{Coffee, Glasses, Cheese}
	if !reflect.DeepEqual(expired, want) {
		t.Errorf("expired = %v, expected %v", expired, want)
	}
}

func TestClearAndInvalidKinds(t *testing.T) {
	s := NewSystem(60, func(Kind) { t.Error("Clear must not notify") })
	s.Activate(Coffee, 10)
	s.Activate(Cheese, 10)
	s.Activate(Kind(99), 10)
	s.Activate(Glasses, 0)

	if len(s.Active()) != 2 {
		t.Fatalf("Active() = %v, expected 2 effects", s.Active())
	}

	s.Clear()
	if len(s.Active()) != 0 {
		t.Errorf("Active() after Clear = %v", s.Active())
	}
}

func TestCategory(t *testing.T) {
	if Coffee.Category() != CategoryTimed || Cheese.Category() != CategoryTimed {
		t.Error("coffee and cheese are timed")
	}
	if Chopsticks.Category() != CategoryTool {
		t.Error("chopsticks is a tool")
	}
	if Sushi.Category() != CategoryConsumable {
		t.Error("sushi is a consumable")
	}
}
