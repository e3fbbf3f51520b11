package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/arkadyvolkov/tui-ascend/internal/core"
)

// KeyMapper translates Bubble Tea key messages to input frames.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKeyToFrame merges a key press into an input frame.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	switch msg.String() {
	case "ctrl+c", "q":
		return true

	case "a", "left":
		frame.Left = true
	case "d", "right":
		frame.Right = true
	case "w", "up":
		frame.Up = true
	case "s", "down":
		frame.Down = true

	case "j":
		frame.RotateLeft = true
	case "l":
		frame.RotateRight = true

	case "[":
		frame.CyclePrev = true
	case "]":
		frame.CycleNext = true

	case "e":
		frame.Expand = true
	case "c":
		frame.Contract = true

	case "t":
		frame.DensityUp = true
	case "g":
		frame.DensityDown = true

	case "f", " ":
		frame.Phase = true
	}

	return false
}

// ColorForKey maps number keys to palette colors. The second return
// value reports whether the key selected a color at all.
func (km *KeyMapper) ColorForKey(msg tea.KeyMsg) (core.Color, bool) {
	switch msg.String() {
	case "1":
		return core.Red, true
	case "2":
		return core.Green, true
	case "3":
		return core.Blue, true
	case "4":
		return core.White, true
	}
	return core.White, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}
