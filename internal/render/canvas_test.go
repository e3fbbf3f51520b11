package render

import (
	"strings"
	"testing"

	"github.com/arkadyvolkov/tui-ascend/internal/core"
	"github.com/arkadyvolkov/tui-ascend/internal/geometry"
)

func TestCanvasFillShape(t *testing.T) {
	c := NewCanvas(40, 20)
	square := geometry.Transform(geometry.Vertices(geometry.Square), 5, 0, 20, 10)
	c.FillShape(square, core.Red)

	center := c.CellAt(20, 10)
	if !center.Set || center.Color != core.Red {
		t.Errorf("center cell = %+v, expected filled red", center)
	}
	if c.CellAt(0, 0).Set {
		t.Error("corner cell should remain blank")
	}
}

func TestCanvasStrokeLeavesInteriorBlank(t *testing.T) {
	c := NewCanvas(40, 20)
	square := geometry.Transform(geometry.Vertices(geometry.Square), 8, 0, 20, 10)
	c.StrokeShape(square, core.Blue)

	if c.CellAt(20, 10).Set {
		t.Error("stroked shape should not fill the interior")
	}
	if !c.CellAt(28, 10).Set {
		t.Error("edge cell should be set")
	}
}

func TestCanvasOutOfBoundsIgnored(t *testing.T) {
	c := NewCanvas(10, 5)
	// Shapes straddling the border must clip, not panic.
	square := geometry.Transform(geometry.Vertices(geometry.Square), 4, 0, 0, 0)
	c.FillShape(square, core.Green)
	c.Glow(-3, -3, 5, core.White, 1)
	c.GlowText(8, 2, "ascend", core.White, 1)
}

func TestCanvasClearAndString(t *testing.T) {
	c := NewCanvas(6, 2)
	c.GlowText(0, 0, "hi", core.White, 0)

	s := c.String()
	if !strings.HasPrefix(s, "hi") {
		t.Errorf("String() = %q, expected to start with %q", s, "hi")
	}
	if lines := strings.Split(s, "\n"); len(lines) != 2 {
		t.Errorf("String() has %d lines, expected 2", len(lines))
	}

	c.Clear()
	if c.CellAt(0, 0).Set {
		t.Error("Clear should blank all cells")
	}
}

func TestCanvasResize(t *testing.T) {
	c := NewCanvas(10, 5)
	c.Resize(20, 8)
	w, h := c.Size()
	if w != 20 || h != 8 {
		t.Errorf("Size after resize = %dx%d, expected 20x8", w, h)
	}
}

func TestOverlaysPreserveContent(t *testing.T) {
	c := NewCanvas(30, 12)
	c.GlowText(14, 6, "X", core.Red, 0)

	c.Vignette(1)
	c.Scanlines(1)
	c.Tunnel(0, core.Blue, 0.5)

	if got := c.CellAt(14, 6); got.Rune != 'X' {
		t.Errorf("overlays overwrote content cell: %+v", got)
	}
}
