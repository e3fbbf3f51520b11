package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arkadyvolkov/tui-ascend/internal/config"
	"github.com/arkadyvolkov/tui-ascend/internal/core"
	"github.com/arkadyvolkov/tui-ascend/internal/platform/tui"
	"github.com/arkadyvolkov/tui-ascend/internal/storage"
)

var flagMenuTuning string

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a dimension picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to start a run.
After a run ends, press Esc to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Start run
  Tab          - Run history
  Q            - Quit

Examples:
  ascend menu
  ascend menu --fps 30
  ascend menu --db ./runs.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagMenuTuning, "config", "", "Path to custom tuning YAML")
}

func runMenu(_ *cobra.Command, _ []string) {
	tuning, err := config.Load(flagMenuTuning)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// One program hosts the whole menu -> run -> menu flow.
	model := tui.NewSessionModel(store, cfg, tuning)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
