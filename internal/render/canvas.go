package render

import (
	"math"
	"strings"

	"github.com/arkadyvolkov/tui-ascend/internal/core"
	"github.com/arkadyvolkov/tui-ascend/internal/geometry"
)

// shadeRamp maps intensity to a glyph, dimmest first.
var shadeRamp = []rune{'░', '▒', '▓', '█'}

// Cell is one character cell of the canvas.
type Cell struct {
	Rune      rune
	Color     core.Color
	Intensity float64
	Set       bool // whether the cell holds drawn content
}

// Canvas is a rune/color/intensity buffer implementing Surface. The
// platform layer flattens it to styled terminal output after each frame.
type Canvas struct {
	width  int
	height int
	cells  [][]Cell
}

// NewCanvas creates a cleared canvas with the given dimensions.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{width: width, height: height}
	c.allocate()
	return c
}

func (c *Canvas) allocate() {
	c.cells = make([][]Cell, c.height)
	for y := range c.cells {
		c.cells[y] = make([]Cell, c.width)
		for x := range c.cells[y] {
			c.cells[y][x] = Cell{Rune: ' '}
		}
	}
}

// Size returns the drawable width and height.
func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

// Resize reallocates the buffer; content is discarded.
func (c *Canvas) Resize(width, height int) {
	if width == c.width && height == c.height {
		return
	}
	c.width = width
	c.height = height
	c.allocate()
}

// Clear resets every cell to a blank.
func (c *Canvas) Clear() {
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = Cell{Rune: ' '}
		}
	}
}

// CellAt returns the cell at (x, y); blank for out-of-bounds coordinates.
func (c *Canvas) CellAt(x, y int) Cell {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return Cell{Rune: ' '}
	}
	return c.cells[y][x]
}

// put writes a cell, ignoring out-of-bounds coordinates.
func (c *Canvas) put(x, y int, r rune, col core.Color, intensity float64) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.cells[y][x] = Cell{Rune: r, Color: col, Intensity: intensity, Set: true}
}

// shade picks a ramp glyph for the intensity.
func shade(intensity float64) rune {
	i := int(core.ClampF(intensity, 0, 1) * float64(len(shadeRamp)-1))
	return shadeRamp[i]
}

// FillShape rasterizes a filled polygon by point-in-polygon scan over the
// outline's bounding box. Terminal resolution keeps this cheap.
func (c *Canvas) FillShape(outline []geometry.Point, col core.Color) {
	if len(outline) == 0 {
		return
	}
	minX, minY, maxX, maxY := bounds(outline)
	for y := int(math.Floor(minY)); y <= int(math.Ceil(maxY)); y++ {
		for x := int(math.Floor(minX)); x <= int(math.Ceil(maxX)); x++ {
			p := geometry.Point{X: float64(x) + 0.5, Y: float64(y) + 0.5}
			if geometry.PointInPolygon(p, outline) {
				c.put(x, y, '█', col, 1)
			}
		}
	}
}

// StrokeShape rasterizes only the polygon edges.
func (c *Canvas) StrokeShape(outline []geometry.Point, col core.Color) {
	n := len(outline)
	if n == 0 {
		return
	}
	for i := range n {
		a := outline[i]
		b := outline[(i+1)%n]
		c.line(a, b, col)
	}
}

// line steps along a segment writing cells.
func (c *Canvas) line(a, b geometry.Point, col core.Color) {
	steps := int(math.Max(math.Abs(b.X-a.X), math.Abs(b.Y-a.Y))) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := a.X + (b.X-a.X)*t
		y := a.Y + (b.Y-a.Y)*t
		c.put(int(math.Round(x)), int(math.Round(y)), '▪', col, 0.8)
	}
}

// Glow renders a radial falloff around a center point. Terminal cells are
// roughly twice as tall as wide, so y distance is weighted double.
func (c *Canvas) Glow(x, y, radius float64, col core.Color, intensity float64) {
	if radius <= 0 {
		return
	}
	r := int(math.Ceil(radius))
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			d := math.Hypot(float64(dx), float64(dy)*2)
			if d > radius {
				continue
			}
			level := intensity * (1 - d/radius)
			if level <= 0.05 {
				continue
			}
			cx := int(math.Round(x)) + dx
			cy := int(math.Round(y)) + dy
			if existing := c.CellAt(cx, cy); existing.Set && existing.Intensity >= level {
				continue
			}
			c.put(cx, cy, shade(level), col, level)
		}
	}
}

// GlowText writes text with a one-cell glow accent on each side.
func (c *Canvas) GlowText(x, y int, text string, col core.Color, intensity float64) {
	i := 0
	for _, r := range text {
		c.put(x+i, y, r, col, 1)
		i++
	}
	if intensity > 0.3 {
		c.put(x-1, y, shade(intensity/2), col, intensity/2)
		c.put(x+i, y, shade(intensity/2), col, intensity/2)
	}
}

// Tunnel draws concentric rings converging on the screen center, phased
// so consecutive frames appear to move inward.
func (c *Canvas) Tunnel(phase float64, col core.Color, intensity float64) {
	cx := float64(c.width) / 2
	cy := float64(c.height) / 2
	maxR := math.Hypot(cx, cy*2)
	for y := range c.height {
		for x := range c.width {
			d := math.Hypot(float64(x)-cx, (float64(y)-cy)*2)
			ring := math.Mod(d-phase, 8)
			if ring < 0 {
				ring += 8
			}
			if ring < 1 {
				level := intensity * (1 - d/maxR)
				if level > 0.05 && !c.cells[y][x].Set {
					c.put(x, y, shade(level), col, level)
				}
			}
		}
	}
}

// Vignette dims the frame toward its edges by overwriting blank border
// cells with a dark shade.
func (c *Canvas) Vignette(intensity float64) {
	if intensity <= 0 {
		return
	}
	depth := int(core.ClampF(intensity, 0, 1) * 3)
	for y := range c.height {
		for x := range c.width {
			edge := min(min(x, c.width-1-x), min(y, c.height-1-y)*2)
			if edge <= depth && !c.cells[y][x].Set {
				c.put(x, y, '░', core.Black, 0.2)
			}
		}
	}
}

// Scanlines overlays every other row with a dim marker on blank cells.
func (c *Canvas) Scanlines(intensity float64) {
	if intensity <= 0 {
		return
	}
	for y := 0; y < c.height; y += 2 {
		for x := range c.width {
			if !c.cells[y][x].Set {
				c.put(x, y, '·', core.Black, intensity/4)
			}
		}
	}
}

// Distort shears rows horizontally by a phase-driven offset.
func (c *Canvas) Distort(phase, intensity float64) {
	if intensity <= 0 {
		return
	}
	for y := range c.height {
		offset := int(math.Sin(phase+float64(y)/3) * intensity * 3)
		if offset == 0 {
			continue
		}
		row := make([]Cell, c.width)
		for x := range c.width {
			src := x - offset
			if src >= 0 && src < c.width {
				row[x] = c.cells[y][src]
			} else {
				row[x] = Cell{Rune: ' '}
			}
		}
		c.cells[y] = row
	}
}

// String flattens the canvas to plain text (no styling), used by tests
// and screenshots.
func (c *Canvas) String() string {
	var sb strings.Builder
	sb.Grow((c.width + 1) * c.height)
	for y := range c.height {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := range c.width {
			sb.WriteRune(c.cells[y][x].Rune)
		}
	}
	return sb.String()
}

func bounds(pts []geometry.Point) (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return
}
