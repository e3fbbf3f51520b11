package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arkadyvolkov/tui-ascend/internal/core"
	"github.com/arkadyvolkov/tui-ascend/internal/render"
)

// Three brightness tiers per color: dim, normal, bright. Cell intensity
// selects the tier so glow falloff survives the flattening.
var colorTiers = map[core.Color][3]lipgloss.Style{
	core.Red: {
		lipgloss.NewStyle().Foreground(lipgloss.Color("52")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	},
	core.Green: {
		lipgloss.NewStyle().Foreground(lipgloss.Color("22")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	},
	core.Blue: {
		lipgloss.NewStyle().Foreground(lipgloss.Color("17")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	},
	core.White: {
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	},
	core.Black: {
		lipgloss.NewStyle().Foreground(lipgloss.Color("233")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("235")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	},
}

func tierFor(intensity float64) int {
	switch {
	case intensity < 0.35:
		return 0
	case intensity < 0.75:
		return 1
	default:
		return 2
	}
}

func styleFor(col core.Color, tier int) lipgloss.Style {
	tiers, ok := colorTiers[col]
	if !ok {
		tiers = colorTiers[core.White]
	}
	return tiers[tier]
}

// RenderFrame flattens a canvas to a styled string for display.
// Adjacent cells with the same style are grouped to minimize ANSI
// escape sequences.
func RenderFrame(c *render.Canvas) string {
	w, h := c.Size()

	var sb strings.Builder
	sb.Grow(w*h*2 + h)

	for y := range h {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < w {
			cell := c.CellAt(x, y)
			if !cell.Set {
				sb.WriteRune(cell.Rune)
				x++
				continue
			}

			col, tier := cell.Color, tierFor(cell.Intensity)

			// Collect consecutive cells that render with the same style.
			var run strings.Builder
			for x < w {
				cell = c.CellAt(x, y)
				if !cell.Set || cell.Color != col || tierFor(cell.Intensity) != tier {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(col, tier).Render(run.String()))
		}
	}
	return sb.String()
}
