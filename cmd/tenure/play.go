package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tenure-rush/internal/audio"
	"github.com/vovakirdan/tenure-rush/internal/core"
	"github.com/vovakirdan/tenure-rush/internal/game"
	"github.com/vovakirdan/tenure-rush/internal/platform/tui"
	"github.com/vovakirdan/tenure-rush/internal/storage"
)

var (
	flagMute    bool
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a run",
	Long: `Start a Tenure Rush run.

Controls:
  Left/Right  - Move (A/D)
  Up          - Boost while coffee is active, and the ↑ door key
  Down        - The ↓ door key
  Space       - The ␣ door key
  P/Esc       - Pause
  R           - Restart
  Shift+D     - Toggle dev mode (x10 tenure)
  Ctrl+S      - Screenshot to ~/.tenure/screenshots
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - 7 HP, slower wanderers
  normal - Default settings
  hard   - 3 HP, faster wanderers, shorter immunity
  fixed  - Wanderer spawn rate does not scale with level

Examples:
  tenure play
  tenure play --difficulty easy
  tenure play --seed 42 --mute
  tenure play --config ./my-tenure.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "~/.tenure/tenure.log", "Log file (the terminal belongs to the game)")
}

func runPlay(_ *cobra.Command, _ []string) {
	gameCfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logFile, err := openLogFile(flagLogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	logger, err := newLogger(logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	opts := game.SessionOptions{
		Config: gameCfg,
		Seed:   cfg.Seed,
		Logger: logger,
	}

	// Open times storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open times database: %v\n", err)
		// Continue without storage - the run still works
	} else {
		defer store.Close()
		opts.Store = store
	}

	if !flagMute {
		spk := audio.NewSpeaker(audio.DefaultSampleRate, 0.3)
		if err := spk.Init(); err != nil {
			logger.Warn("audio disabled", "error", err)
		} else {
			defer spk.Close()
			opts.Collaborators = append(opts.Collaborators, audio.NewCues(spk))
		}
	}

	if err := tui.Run(game.NewSession(opts), cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// openLogFile opens path for appending, creating its directory.
func openLogFile(path string) (*os.File, error) {
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}
