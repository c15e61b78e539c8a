package game

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tenure-rush/internal/clock"
	"github.com/vovakirdan/tenure-rush/internal/config"
	"github.com/vovakirdan/tenure-rush/internal/event"
	"github.com/vovakirdan/tenure-rush/internal/storage"
)

// BestTimeKey identifies the stored best completion time.
const BestTimeKey = "tenureRush_bestTime"

// State is the run state of a Session.
type State int

const (
	StatePlaying State = iota
	StatePaused
	StateGameOver
	StateVictory
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game-over"
	case StateVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// Recorder persists completion times and finished runs.
type Recorder interface {
	BestTime(key string) (time.Duration, bool, error)
	RecordTime(key string, d time.Duration) (bool, error)
	SaveRun(run storage.Run) (int64, error)
}

// Collaborator is an outside component that subscribes to the run's bus.
// Attach is called again after every restart.
type Collaborator interface {
	Attach(bus *event.Bus)
}

// SessionOptions configures a Session.
type SessionOptions struct {
	Config        config.TenureConfig
	Seed          int64 // 0 picks a time-based seed
	Store         Recorder
	Logger        *log.Logger
	Now           func() time.Time
	Collaborators []Collaborator
}

// Session wraps one Scene with the run state machine, the completion
// stopwatch and the persistence contract. A restart rebuilds the Scene from
// scratch on the same bus.
type Session struct {
	cfg           config.TenureConfig
	bus           *event.Bus
	scene         *Scene
	watch         *clock.Stopwatch
	store         Recorder
	logger        *log.Logger
	collaborators []Collaborator

	state        State
	runID        uuid.UUID
	seed         int64
	runs         int
	victoryTicks int

	best      time.Duration
	hasBest   bool
	newRecord bool
}

// NewSession creates a session and starts its first run.
func NewSession(opts SessionOptions) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Session{
		cfg:           opts.Config,
		bus:           event.NewBus(logger),
		watch:         clock.NewStopwatch(opts.Now),
		store:         opts.Store,
		logger:        logger,
		collaborators: opts.Collaborators,
		seed:          seed,
	}
	s.loadBest()
	s.start()
	return s
}

func (s *Session) loadBest() {
	if s.store == nil {
		return
	}
	best, ok, err := s.store.BestTime(BestTimeKey)
	if err != nil {
		s.logger.Warn("cannot load best time", "error", err)
		return
	}
	s.best, s.hasBest = best, ok
}

// start builds a fresh run on a cleared bus and resubscribes everything.
func (s *Session) start() {
	s.bus.Clear()

	seed := s.seed + int64(s.runs)
	s.state = StatePlaying
	s.runID = uuid.New()
	s.newRecord = false
	s.victoryTicks = 0
	s.scene = NewScene(s.cfg, s.bus, SceneOptions{
		Seed:      seed,
		Logger:    s.logger,
		Accepting: func() bool { return s.state == StatePlaying },
	})

	event.On(s.bus, func(event.PauseToggled) { s.TogglePause() })
	event.On(s.bus, func(event.RestartRequested) { s.Restart() })
	event.On(s.bus, s.onDamaged)
	event.On(s.bus, s.onDoorOpened)
	for _, c := range s.collaborators {
		c.Attach(s.bus)
	}

	s.watch.Start()
	s.logger.Info("run started", "run", s.runID, "seed", seed)
}

// Restart abandons the current run and starts a new one. It is accepted in
// every state.
func (s *Session) Restart() {
	s.watch.Stop()
	s.logger.Debug("run restarted", "run", s.runID, "state", s.state)
	s.runs++
	s.start()
}

// TogglePause switches between playing and paused. Other states ignore it.
func (s *Session) TogglePause() {
	switch s.state {
	case StatePlaying:
		s.state = StatePaused
	case StatePaused:
		s.state = StatePlaying
	}
}

// Step advances the run by one fixed tick. The simulation only moves while
// playing; victory advances its own presentation counter.
func (s *Session) Step() {
	switch s.state {
	case StatePlaying:
		s.scene.Step()
	case StateVictory:
		s.victoryTicks++
	}
}

func (s *Session) onDamaged(ev event.PlayerDamaged) {
	if ev.HP > 0 || s.state != StatePlaying {
		return
	}
	s.state = StateGameOver
	outcome := s.outcome(s.watch.Stop())
	s.logger.Info("run lost", "run", s.runID, "tenure", outcome.Tenure, "hearts", outcome.Hearts)
	s.bus.Publish(event.GameOver{Outcome: outcome})
	s.saveRun("loss", outcome)
}

func (s *Session) onDoorOpened(ev event.DoorOpened) {
	if ev.Tenure < s.cfg.Progression.WinTenure || s.state != StatePlaying {
		return
	}
	s.state = StateVictory
	outcome := s.outcome(s.watch.Stop())
	s.recordBest(outcome.Elapsed)
	s.logger.Info("run won", "run", s.runID, "elapsed", clock.Format(outcome.Elapsed), "record", s.newRecord)
	s.bus.Publish(event.GameWon{Outcome: outcome})
	s.saveRun("win", outcome)
}

// recordBest stores elapsed if it beats the stored best. A storage failure
// is logged and the run keeps its victory.
func (s *Session) recordBest(elapsed time.Duration) {
	s.newRecord = false
	if s.store != nil {
		improved, err := s.store.RecordTime(BestTimeKey, elapsed)
		if err != nil {
			s.logger.Error("cannot record best time", "run", s.runID, "error", err)
		} else {
			s.newRecord = improved
		}
	} else {
		s.newRecord = !s.hasBest || elapsed < s.best
	}
	if s.newRecord {
		s.best, s.hasBest = elapsed, true
	}
	s.bus.Publish(event.RunRecorded{Elapsed: elapsed, Best: s.best, NewRecord: s.newRecord})
}

func (s *Session) saveRun(outcome string, o event.Outcome) {
	if s.store == nil {
		return
	}
	run := storage.Run{
		RunID:      s.runID.String(),
		Outcome:    outcome,
		Tenure:     o.Tenure,
		Hearts:     o.Hearts,
		Level:      o.Level,
		PassesUsed: s.scene.PassesUsed(),
		Elapsed:    o.Elapsed,
	}
	if _, err := s.store.SaveRun(run); err != nil {
		s.logger.Error("cannot save run", "run", s.runID, "error", err)
	}
}

func (s *Session) outcome(elapsed time.Duration) event.Outcome {
	return event.Outcome{
		Tenure:  s.scene.Tenure(),
		Hearts:  s.scene.HeartsCollected(),
		Level:   s.scene.Level(),
		Elapsed: elapsed,
	}
}

// Bus returns the run's event bus for input and output collaborators.
func (s *Session) Bus() *event.Bus { return s.bus }

// Scene returns the current run's simulation.
func (s *Session) Scene() *Scene { return s.scene }

// State returns the run state.
func (s *Session) State() State { return s.state }

// RunID identifies the current run.
func (s *Session) RunID() uuid.UUID { return s.runID }

// Elapsed returns the completion stopwatch reading.
func (s *Session) Elapsed() time.Duration { return s.watch.Elapsed() }

// Stats returns the full summary including timing.
func (s *Session) Stats() Stats {
	st := s.scene.Stats()
	st.State = s.state
	st.Elapsed = s.watch.Elapsed()
	st.Best = s.best
	st.HasBest = s.hasBest
	st.NewRecord = s.newRecord
	return st
}

// Ending names the victory ending earned with the collected hearts.
func (s *Session) Ending() string {
	if s.scene.HeartsCollected() >= s.cfg.Progression.RomanticHearts {
		return "Romantic"
	}
	return "Solo"
}
