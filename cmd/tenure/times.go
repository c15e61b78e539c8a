package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tenure-rush/internal/clock"
	"github.com/vovakirdan/tenure-rush/internal/game"
	"github.com/vovakirdan/tenure-rush/internal/platform/tui"
	"github.com/vovakirdan/tenure-rush/internal/storage"
)

var (
	flagBoard bool
	flagLimit int
	flagReset bool
)

var timesCmd = &cobra.Command{
	Use:   "times",
	Short: "Show the best completion time and recent runs",
	Long: `Display the best completion time and the most recent runs.

Examples:
  tenure times
  tenure times --limit 25
  tenure times --board     # Interactive table
  tenure times --reset     # Forget the best time`,
	Args: cobra.NoArgs,
	Run:  runTimes,
}

func init() {
	timesCmd.Flags().BoolVar(&flagBoard, "board", false, "Open the interactive run board")
	timesCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to list")
	timesCmd.Flags().BoolVar(&flagReset, "reset", false, "Clear the stored best time")
}

func runTimes(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening times database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagReset {
		if err := store.ClearBestTime(game.BestTimeKey); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Best time cleared.")
		return
	}

	if flagBoard {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunBoard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	best, ok, err := store.BestTime(game.BestTimeKey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving best time: %v\n", err)
		os.Exit(1)
	}
	runs, err := store.RecentRuns(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best Time: %s\n", clock.FormatBest(best, ok))
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'tenure play' to set the first time!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-6s  %-9s  %-6s  %-6s  %-3s  %s\n", "#", "Result", "Time", "Tenure", "Hearts", "Lv", "Date")
	fmt.Printf("  %-4s  %-6s  %-9s  %-6s  %-6s  %-3s  %s\n", "--", "------", "----", "------", "------", "--", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-6s  %-9s  %-6s  %-6d  %-3d  %s\n",
			i+1, r.Outcome, clock.Format(r.Elapsed), fmt.Sprintf("%d%%", r.Tenure),
			r.Hearts, r.Level, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}
