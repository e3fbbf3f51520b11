// Package render defines the drawing surface contract the dimension
// modules render against, and a terminal cell-buffer implementation of
// it. Modules only ever call the small primitive vocabulary below; what
// the pixels (cells) look like is this package's business, not theirs.
package render

import (
	"github.com/arkadyvolkov/tui-ascend/internal/core"
	"github.com/arkadyvolkov/tui-ascend/internal/geometry"
)

// Surface is the abstract 2-D drawing context passed to Module.Render.
// Positions and sizes are in surface cells; intensity is in [0,1].
type Surface interface {
	// Size returns the drawable width and height.
	Size() (w, h int)

	// FillShape rasterizes a filled polygon outline.
	FillShape(outline []geometry.Point, c core.Color)

	// StrokeShape rasterizes the polygon edges only.
	StrokeShape(outline []geometry.Point, c core.Color)

	// Glow renders a radial glow centered at (x, y).
	Glow(x, y, radius float64, c core.Color, intensity float64)

	// GlowText renders text with a glow accent at a cell position.
	GlowText(x, y int, text string, c core.Color, intensity float64)

	// Tunnel renders a full-screen concentric tunnel effect.
	Tunnel(phase float64, c core.Color, intensity float64)

	// Vignette darkens the frame toward the edges.
	Vignette(intensity float64)

	// Scanlines overlays alternating dim rows.
	Scanlines(intensity float64)

	// Distort shears rows horizontally for a glitch effect.
	Distort(phase, intensity float64)
}
