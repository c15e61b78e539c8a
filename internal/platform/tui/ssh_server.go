package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tenure-rush/internal/clock"
	"github.com/vovakirdan/tenure-rush/internal/config"
	"github.com/vovakirdan/tenure-rush/internal/core"
	"github.com/vovakirdan/tenure-rush/internal/event"
	"github.com/vovakirdan/tenure-rush/internal/game"
	"github.com/vovakirdan/tenure-rush/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.tenure/host_key.
	HostKeyPath string

	// DBPath is the path to the times database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Game is the configuration every session plays with.
	Game config.TenureConfig

	// TickRate is the frame rate of each session.
	TickRate int

	// Logger receives server events. Nil logs to stderr.
	Logger *log.Logger
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.tenure/tenure.db",
		IdleTimeout: 30 * time.Minute,
		Game:        config.DefaultTenureConfig(),
		TickRate:    60,
	}
}

// SSHServer serves one Tenure Rush session per SSH connection.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "tenure-ssh",
		})
	}

	// Open storage
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open times database", "error", err)
		// Continue without storage
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".tenure", "host_key")
	}

	// Ensure host key directory exists
	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a game session and its Bubble Tea model for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
		Seed:     time.Now().UnixNano(),
	}

	logger := s.logger.With("user", sshSession.User())
	tally, _ := sshSession.Context().Value(tallyKey{}).(*runTally)
	if tally == nil {
		tally = newRunTally(logger)
	}

	opts := game.SessionOptions{
		Config:        s.config.Game,
		Seed:          cfg.Seed,
		Logger:        logger,
		Collaborators: []game.Collaborator{tally},
	}
	if s.store != nil {
		opts.Store = s.store
	}

	session := game.NewSession(opts)
	tally.session = session
	return NewModel(session, cfg), []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs each connection and a summary of the runs played on it.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		tally := newRunTally(s.logger.With("user", sshSession.User()))
		sshSession.Context().SetValue(tallyKey{}, tally)

		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)

		runs, wins, best := tally.summary()
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
			"runs", runs,
			"wins", wins,
			"best", clock.FormatBest(best, wins > 0),
		)
	}
}

type tallyKey struct{}

// runTally is the per-connection collaborator that logs every finished run.
type runTally struct {
	logger  *log.Logger
	session *game.Session

	mu   sync.Mutex
	runs int
	wins int
	best time.Duration
}

func newRunTally(logger *log.Logger) *runTally {
	return &runTally{logger: logger}
}

// Attach subscribes to the run outcome topics.
func (t *runTally) Attach(bus *event.Bus) {
	event.On(bus, func(ev event.GameWon) { t.finish("win", ev.Outcome) })
	event.On(bus, func(ev event.GameOver) { t.finish("loss", ev.Outcome) })
	event.On(bus, func(ev event.RunRecorded) {
		if ev.NewRecord {
			t.logger.Info("new best time", "run", t.runID(), "elapsed", clock.Format(ev.Elapsed))
		}
	})
}

func (t *runTally) finish(outcome string, o event.Outcome) {
	t.mu.Lock()
	t.runs++
	if outcome == "win" {
		t.wins++
		if t.best == 0 || o.Elapsed < t.best {
			t.best = o.Elapsed
		}
	}
	t.mu.Unlock()

	t.logger.Info("run finished",
		"run", t.runID(),
		"outcome", outcome,
		"tenure", o.Tenure,
		"hearts", o.Hearts,
		"level", o.Level,
		"elapsed", clock.Format(o.Elapsed),
	)
}

func (t *runTally) runID() string {
	if t.session == nil {
		return ""
	}
	return t.session.RunID().String()
}

// summary returns the finished runs, the wins and the fastest win.
func (t *runTally) summary() (runs, wins int, best time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.runs, t.wins, t.best
}

// ListenAndServe starts the SSH server and blocks until interrupted.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server",
		"address", s.config.Address,
		"times", s.store != nil,
		"max_hp", s.config.Game.Player.MaxHP,
	)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errc := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errc <- err
		}
	}()

	select {
	case err := <-errc:
		s.closeStore()
		return fmt.Errorf("ssh: %w", err)
	case <-done:
	}
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown stops accepting connections, waits for running sessions and
// closes the times database.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.server.Shutdown(ctx)
	s.closeStore()
	return err
}

func (s *SSHServer) closeStore() {
	if s.store == nil {
		return
	}
	if err := s.store.Close(); err != nil {
		s.logger.Warn("closing times database", "error", err)
	}
	s.store = nil
}
