package scene

import (
	"math"

	"github.com/iburimskiy/holiday-scene/internal/canvas"
)

var (
	fur     = canvas.Hex("#8b5e3c")
	rudolph = canvas.Hex("#d90429")
	collar  = canvas.Hex("#e63946")
)

// AntlerWiggle is the extra antler rotation at tick t.
func AntlerWiggle(t uint64) float64 {
	return math.Sin(float64(t)*0.1) * 0.15
}

// Reindeer draws a red-nosed reindeer with wiggling antlers.
func Reindeer(pen canvas.Pen, x, y, scale float64, t uint64) {
	p := local(pen, x, y, scale)

	body := p.Path().
		Rect(-40, -10, 80, 30).
		Rect(-30, 20, 8, 26).
		Rect(-10, 20, 8, 26).
		Rect(10, 20, 8, 26).
		Rect(30, 20, 8, 26).
		Polygon(-40, -6, -52, -14, -46, -6).
		Rect(10, -32, 16, 26)
	p.Fill(body, fur)
	p.Fill(p.Path().Ellipse(28, -40, 20, 15, 0, 0, 2*math.Pi).Close(), fur)

	p.FillCircle(38, -38, 5, rudolph)
	p.FillCircle(24, -44, 2, black)

	wiggle := AntlerWiggle(t)
	left := p.Translate(20, -52).Rotate(-0.7 + wiggle)
	left.Stroke(left.Path().MoveTo(0, 0).LineTo(-18, -18).MoveTo(-10, -10).LineTo(-18, -22), 3, stick)
	right := p.Translate(28, -54).Rotate(-0.4 - wiggle)
	right.Stroke(right.Path().MoveTo(0, 0).LineTo(18, -18).MoveTo(8, -10).LineTo(18, -22), 3, stick)

	p.FillRect(10, -28, 16, 4, collar)
}
