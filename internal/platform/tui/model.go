package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/arkadyvolkov/tui-ascend/internal/config"
	"github.com/arkadyvolkov/tui-ascend/internal/core"
	"github.com/arkadyvolkov/tui-ascend/internal/driver"
	"github.com/arkadyvolkov/tui-ascend/internal/events"
	"github.com/arkadyvolkov/tui-ascend/internal/render"
	"github.com/arkadyvolkov/tui-ascend/internal/state"
	"github.com/arkadyvolkov/tui-ascend/internal/storage"
)

// statusRows is how many rows the status line takes below the canvas.
const statusRows = 1

// PlayModel is the Bubble Tea model for one interactive run.
type PlayModel struct {
	driver     *driver.Driver
	canvas     *render.Canvas
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	quitting   bool
	backToMenu bool
}

// NewPlayModel creates a model running the given starting dimension.
// Completed runs are saved to the store as they drop.
func NewPlayModel(start state.Dimension, store *storage.Store, cfg core.RuntimeConfig, tuning config.Tuning) PlayModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	bus := events.NewBus()
	seed := cfg.Seed
	bus.Subscribe(func(e events.Event) {
		drop, ok := e.(events.Drop)
		if !ok || store == nil || drop.Score <= 0 {
			return
		}
		//nolint:errcheck // Best-effort save, the run continues regardless
		store.SaveRun(storage.Run{
			Dimension:  drop.From,
			Score:      drop.Score,
			BestStreak: drop.BestStreak,
			Seed:       seed,
		})
	})

	return PlayModel{
		driver:    driver.New(start, tuning, bus, cfg.Seed),
		canvas:    render.NewCanvas(cfg.ScreenW, cfg.ScreenH-statusRows),
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init starts the tick loop.
func (m PlayModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.canvas.Resize(msg.Width, msg.Height-statusRows)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m PlayModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.backToMenu = true
		return m, nil
	case "tab":
		m.driver.ToggleRenderMode()
		return m, nil
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	if c, ok := m.keyMapper.ColorForKey(msg); ok {
		m.driver.SetColor(c)
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleTick advances the simulation by one fixed step.
func (m PlayModel) handleTick() (tea.Model, tea.Cmd) {
	dt := 1.0 / float64(m.config.TickRate)
	m.driver.Step(m.inputFrame, dt)

	// Clear input for next frame
	m.inputFrame = core.InputFrame{}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot dumps the current canvas to a file.
func (m PlayModel) saveScreenshot() {
	m.canvas.Clear()
	m.driver.Render(m.canvas)

	dir := filepath.Join(os.Getenv("HOME"), ".ascend", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("dim%s_%s.txt", m.driver.State().Dimension, timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save
	os.WriteFile(path, []byte(m.canvas.String()), 0o600)
}

// View renders the current frame plus the status line.
func (m PlayModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.canvas.Clear()
	m.driver.Render(m.canvas)

	return RenderFrame(m.canvas) + "\n" + m.statusLine()
}

// statusLine summarizes the run state below the canvas.
func (m PlayModel) statusLine() string {
	s := m.driver.State()

	bar := saturationBar(s.Saturation, 10)
	line := fmt.Sprintf(" %s  %s  streak %d  best %d  score %d  [%s]",
		s.Dimension.Title(), bar, s.Streak, m.driver.BestStreak(), s.Score, s.Color)

	if deep := m.driver.Deepest(); deep > s.Dimension {
		line += "  peak " + deep.Title()
	}
	if s.ExcessState == state.ExcessRedshift {
		line += "  REDSHIFT"
	}
	if w := m.config.ScreenW; len(line) > w && w > 0 {
		line = line[:w]
	}
	return line
}

// saturationBar renders saturation as a fixed-width block gauge.
func saturationBar(sat float64, width int) string {
	filled := int(core.ClampF(sat, 0, 1) * float64(width))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// IsQuitting reports whether the user requested to quit entirely.
func (m PlayModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu reports whether the user requested to go back to the menu.
func (m PlayModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a standalone play session.
func Run(start state.Dimension, store *storage.Store, cfg core.RuntimeConfig, tuning config.Tuning) error {
	model := NewPlayModel(start, store, cfg, tuning)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
