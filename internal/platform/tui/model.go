package tui

import (
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tenure-rush/internal/clock"
	"github.com/vovakirdan/tenure-rush/internal/core"
	"github.com/vovakirdan/tenure-rush/internal/event"
	"github.com/vovakirdan/tenure-rush/internal/game"
)

// maxFrameGap caps the time fed to the simulation after a stall.
const maxFrameGap = 250 * time.Millisecond

// Model is the Bubble Tea model driving one game session. Key presses are
// published on the session bus; each frame drains the elapsed wall-clock
// time into fixed simulation steps and then renders once.
type Model struct {
	session  *game.Session
	screen   *core.Screen
	stepper  *clock.Stepper
	keys     *KeyMapper
	held     *heldKeys
	config   core.RuntimeConfig
	lastTick time.Time
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given session.
func NewModel(session *game.Session, cfg core.RuntimeConfig) Model {
	tps := session.Scene().Config().World.TicksPerSecond
	return Model{
		session: session,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		stepper: clock.NewStepper(time.Second / time.Duration(max(tps, 1))),
		keys:    NewKeyMapper(),
		held:    newHeldKeys(DefaultHoldWindow),
		config:  cfg,
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey publishes the events of a key press.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	cmd := m.keys.MapKey(msg)
	switch cmd {
	case CmdNone:
		return m, nil
	case CmdQuit:
		m.quitting = true
		return m, tea.Quit
	case CmdScreenshot:
		m.saveScreenshot()
		return m, nil
	case CmdRestart:
		m.held.reset()
		m.stepper.Reset()
	}

	bus := m.session.Bus()
	repeat := false
	if dir, ok := cmd.direction(); ok {
		var released []core.Direction
		released, repeat = m.held.press(dir, now)
		for _, d := range released {
			bus.Publish(event.DirectionReleased{Dir: d})
		}
	}
	for _, ev := range cmd.Events() {
		// A held Up types its symbol once; repeats only refresh the hold.
		if _, isKey := ev.(event.SequenceKey); isKey && repeat {
			continue
		}
		bus.Publish(ev)
	}
	return m, nil
}

func (c Command) direction() (core.Direction, bool) {
	switch c {
	case CmdLeft:
		return core.DirLeft, true
	case CmdRight:
		return core.DirRight, true
	case CmdUp:
		return core.DirUp, true
	}
	return 0, false
}

// handleTick releases expired keys and runs the fixed steps due.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	for _, d := range m.held.expire(now) {
		m.session.Bus().Publish(event.DirectionReleased{Dir: d})
	}

	if !m.lastTick.IsZero() {
		elapsed := min(now.Sub(m.lastTick), maxFrameGap)
		m.stepper.Advance(elapsed, m.session.Step)
	}
	m.lastTick = now

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.session.Render(m.screen)

	// Create screenshots directory
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".tenure", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, "tenure_"+timestamp+".txt")

	// Save screenshot
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.session.Render(m.screen)
	return RenderScreen(m.screen)
}

// Session returns the driven session.
func (m Model) Session() *game.Session {
	return m.session
}

// IsQuitting reports whether the user asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for the session.
func Run(session *game.Session, cfg core.RuntimeConfig) error {
	model := NewModel(session, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
