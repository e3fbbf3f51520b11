package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arkadyvolkov/tui-ascend/internal/config"
	"github.com/arkadyvolkov/tui-ascend/internal/core"
	"github.com/arkadyvolkov/tui-ascend/internal/dimension"
	"github.com/arkadyvolkov/tui-ascend/internal/platform/tui"
	"github.com/arkadyvolkov/tui-ascend/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play [dimension]",
	Short: "Start a run",
	Long: `Start a run at the given dimension ("0".."5" or "infinite").
With no argument the run starts at dimension 0.

Controls:
  1-4        - Pick color (red, green, blue, white)
  WASD       - Move
  J/L        - Rotate
  [/]        - Cycle shape
  E/C        - Expand/contract
  T/G        - Tune density
  F/Space    - Phase
  Tab        - Toggle render mode
  Esc        - Back to menu (in menu mode)
  Q/Ctrl+C   - Quit

Examples:
  ascend play
  ascend play 3
  ascend play infinite
  ascend play --config ./my-tuning.yaml
  ascend play --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	start := "0"
	if len(args) > 0 {
		start = args[0]
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	tuning, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		// Continue without storage - the run still works
		store = nil
	}

	runErr := tui.Run(dimension.Parse(start), store, cfg, tuning)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running: %v\n", runErr)
		os.Exit(1)
	}
}
