// runline is a terminal endless runner: jump over rocks and holes while
// the world scrolls ever faster.
//
// Usage:
//
//	runline play             - Play in the current terminal
//	runline scores           - Show the run history
//	runline serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--data <dir>    - Set data directory (default: ~/.runline)
//	--db <path>     - Set run history database path (default: ~/.runline/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDataDir string
	flagDBPath  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runline",
	Short: "Runline - an endless runner in your terminal",
	Long: `Runline is a terminal endless runner. Your runner moves on its own;
all you do is jump over rocks and holes while the ground speeds up.

Available commands:
  play     - Play in the current terminal
  scores   - View the run history
  serve    - Start SSH server for remote play

Examples:
  runline play
  runline play --seed 42
  runline scores --plain
  runline serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data", "~/.runline", "Data directory for high score and settings")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.runline/runs.db", "Path to run history database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
