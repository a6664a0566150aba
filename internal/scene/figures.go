package scene

import (
	"image/color"

	"github.com/iburimskiy/holiday-scene/internal/canvas"
)

// Figure draws one character with its local origin at (x, y), scaled by
// scale, posed for tick t. Figures keep no state: the same arguments always
// produce the same drawing.
type Figure func(pen canvas.Pen, x, y, scale float64, t uint64)

// Figures maps layout names to draw routines.
var Figures = map[string]Figure{
	"house":    House,
	"reindeer": Reindeer,
	"santa":    Santa,
	"snowman":  Snowman,
	"tree":     Tree,
}

var (
	white     = canvas.Hex("#ffffff")
	black     = canvas.Hex("#000000")
	red       = canvas.Hex("#c1121f")
	gold      = canvas.Hex("#ffd700")
	pink      = canvas.Hex("#ff4d6d")
	sky       = canvas.Hex("#4cc9f0")
	pine      = canvas.Hex("#0f5132")
	wood      = canvas.Hex("#8b4513")
	darkWood  = canvas.Hex("#654321")
	stick     = canvas.Hex("#5b3a29")
	skin      = canvas.Hex("#ffddb3")
	windowLit = canvas.Hex("#ffe066")
)

// local returns a pen whose origin is the figure anchor.
func local(pen canvas.Pen, x, y, scale float64) canvas.Pen {
	return pen.Translate(x, y).Scale(scale)
}

type dot struct {
	x, y float64
	c    color.NRGBA
}

func gray(v uint8) color.NRGBA {
	return color.NRGBA{R: v, G: v, B: v, A: 0xff}
}
