package main

import (
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tavrel/runline/internal/config"
	"github.com/tavrel/runline/internal/core"
	"github.com/tavrel/runline/internal/game"
	"github.com/tavrel/runline/internal/platform/tui"
	"github.com/tavrel/runline/internal/storage"
)

var (
	flagConfig string
	flagNoMenu bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start the runner in the current terminal.

Controls:
  Space/Up   - Jump
  Esc/M      - Back to menu
  Q/Ctrl+C   - Quit

Examples:
  runline play
  runline play --seed 42
  runline play --no-menu
  runline play --config ./my-runline.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tunables YAML")
	playCmd.Flags().BoolVar(&flagNoMenu, "no-menu", false, "Boot straight into a run, skipping the menu")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagNoMenu {
		cfg.Game.SkipMenu = true
	}

	// Get terminal size early
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	files := storage.NewFileStore(flagDataDir)

	var recorder game.Recorder
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run history: %v\n", err)
		// Continue without history - the game still works
	} else {
		recorder = store
	}

	logger := charmlog.New(os.Stderr)
	runErr := tui.Run(cfg, rt, files, recorder, logger)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
