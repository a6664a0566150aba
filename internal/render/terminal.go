package render

import (
	"image"

	"github.com/gdamore/tcell/v2"
)

// halfBlock paints the top half of a cell in the foreground color, so each
// terminal cell shows two vertical pixels.
const halfBlock = '▀'

// Cells is the part of tcell.Screen that Present needs.
type Cells interface {
	Size() (width, height int)
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// Present copies img onto screen, two pixel rows per cell row. Pixels are
// composited over bg, which must be an RGB color. The caller shows the
// screen.
func Present(screen Cells, img *image.RGBA, bg tcell.Color) {
	cols, rows := screen.Size()
	b := img.Bounds()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			top := pixel(img, b.Min.X+x, b.Min.Y+2*y, bg)
			bottom := pixel(img, b.Min.X+x, b.Min.Y+2*y+1, bg)
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			screen.SetContent(x, y, halfBlock, nil, style)
		}
	}
}

func pixel(img *image.RGBA, x, y int, bg tcell.Color) tcell.Color {
	if !(image.Point{X: x, Y: y}).In(img.Bounds()) {
		return bg
	}
	c := img.RGBAAt(x, y)
	if c.A == 0xff {
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
	r0, g0, b0 := bg.RGB()
	// RGBA is premultiplied: out = c + bg*(1-a)
	inv := int32(0xff - c.A)
	return tcell.NewRGBColor(
		int32(c.R)+r0*inv/0xff,
		int32(c.G)+g0*inv/0xff,
		int32(c.B)+b0*inv/0xff,
	)
}
