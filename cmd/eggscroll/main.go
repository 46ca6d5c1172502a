// eggscroll is a terminal side scroller: fling an egg across noise-generated
// platforms with the mouse and stay out of the water.
//
// Usage:
//
//	eggscroll list              - List available modes
//	eggscroll play [mode]       - Play a mode (default: eggscroll)
//	eggscroll menu              - Start menu to pick modes interactively
//	eggscroll serve             - Start SSH server for remote play
//	eggscroll scores [mode]     - Show high scores
//	eggscroll noise             - Preview a terrain noise field
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set terrain seed for reproducible worlds
//	--db <path>     - Set database path (default: ~/.arcade/scores.db)
//	--log <path>    - Append session events to a log file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/eggscroll/internal/games/platformer"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "eggscroll",
	Short: "Egg Scroll - launch an egg across endless terrain",
	Long: `Egg Scroll is a side-scrolling platformer for the terminal.
Press on the egg, drag away from it and release to launch. Platforms come
from seeded gradient noise; falling into the water ends the run.

Available commands:
  list     - Show all available modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  noise    - Preview the terrain noise field

Examples:
  eggscroll play
  eggscroll play eggscroll_sandbox
  eggscroll play --seed 42 --log ./eggscroll.log
  eggscroll noise --seed 42 --blue
  eggscroll serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Terrain seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Append session events to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(noiseCmd)
}

// openLogger returns the session logger selected by --log. The terminal
// belongs to the game, so without a log file events are discarded.
func openLogger() (*log.Logger, func(), error) {
	if flagLogPath == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "eggscroll",
	})
	return logger, func() { f.Close() }, nil
}
