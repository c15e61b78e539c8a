// tenure is a terminal rendition of Tenure Rush: run the hallway, type the
// door sequences and reach 100% tenure as fast as you can.
//
// Usage:
//
//	tenure play             - Play a run
//	tenure serve            - Start SSH server for remote play
//	tenure times            - Show the best time and recent runs
//	tenure config           - Print or check the game configuration
//
// Global flags:
//
//	--fps <rate>       - Set frame rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible runs
//	--db <path>        - Set database path (default: ~/.tenure/tenure.db)
//	--log-level <lvl>  - Set log level (debug, info, warn, error)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tenure-rush/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagLogLevel   string
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tenure",
	Short: "Tenure Rush - race to 100% tenure in your terminal",
	Long: `Tenure Rush is a scrolling corridor game. Doors ask for short key
sequences, friends hand out door passes, wanderers strip your perks.
Reach 100% tenure to finish the run and set a completion time.

Available commands:
  play     - Play a run
  serve    - Start SSH server for remote play
  times    - View the best time and run history
  config   - Print or check the game configuration

Examples:
  tenure play
  tenure play --difficulty hard
  tenure serve --ssh :2222
  tenure times --board`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tenure/tenure.db", "Path to times database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(timesCmd)
	rootCmd.AddCommand(configCmd)
}

// loadGameConfig resolves the game config from the flags.
func loadGameConfig() (config.TenureConfig, error) {
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return config.TenureConfig{}, err
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.TenureConfig{}, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, cfg.Validate()
}

// newLogger creates a logger writing to w at the flag level.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "tenure",
		Level:           level,
	}), nil
}
