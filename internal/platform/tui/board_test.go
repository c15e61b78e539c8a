package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tenure-rush/internal/storage"
)

type fakeRuns struct {
	recent  []storage.Run
	fastest []storage.Run
	best    time.Duration
	err     error
}

func (f fakeRuns) BestTime(string) (time.Duration, bool, error) {
	return f.best, f.best > 0, nil
}

func (f fakeRuns) RecentRuns(int) ([]storage.Run, error) { return f.recent, f.err }

func (f fakeRuns) FastestWins(int) ([]storage.Run, error) { return f.fastest, f.err }

func TestBoardSwitchesViews(t *testing.T) {
	src := fakeRuns{
		recent: []storage.Run{
			{RunID: "b", Outcome: "loss", Tenure: 30},
			{RunID: "a", Outcome: "win", Tenure: 100, Elapsed: 3 * time.Minute},
		},
		fastest: []storage.Run{{RunID: "a", Outcome: "win", Tenure: 100, Elapsed: 3 * time.Minute}},
		best:    3 * time.Minute,
	}
	m := NewBoardModel(src, 100, 30)

	if m.CurrentView() != ViewRecent || len(m.Runs()) != 2 {
		t.Fatalf("initial view %v with %d runs", m.CurrentView(), len(m.Runs()))
	}
	if view := m.View(); !strings.Contains(view, "03:00.00") {
		t.Errorf("best time missing from view:\n%s", view)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(BoardModel)
	if m.CurrentView() != ViewFastest || len(m.Runs()) != 1 {
		t.Errorf("after tab: view %v with %d runs", m.CurrentView(), len(m.Runs()))
	}
}

func TestBoardEmptyAndErrors(t *testing.T) {
	m := NewBoardModel(fakeRuns{}, 80, 24)
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Error("empty board message missing")
	}

	m = NewBoardModel(fakeRuns{err: errors.New("locked")}, 80, 24)
	if !strings.Contains(m.View(), "locked") {
		t.Error("load error not shown")
	}

	m = NewBoardModel(nil, 80, 24)
	if !strings.Contains(m.View(), "--:--.--") {
		t.Error("unset best should show placeholder")
	}
}

func TestBoardQuit(t *testing.T) {
	m := NewBoardModel(fakeRuns{}, 80, 24)
	next, cmd := m.Update(runeKey('q'))
	if !next.(BoardModel).IsQuitting() || cmd == nil {
		t.Error("q should quit the board")
	}
}
