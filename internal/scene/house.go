package scene

import (
	"math"

	"github.com/iburimskiy/holiday-scene/internal/canvas"
)

var (
	roofLights = []dot{
		{-48, -60, pink}, {-35, -60, gold}, {-22, -60, sky}, {-9, -60, pink},
		{4, -60, gold}, {17, -60, sky}, {30, -60, pink}, {43, -60, gold},
	}
	smokePuffs = []struct {
		x, y, r, drift float64
		shade          uint8
		alpha          float64
	}{
		{35, -110, 8, 1, 200, 0.6},
		{38, -125, 10, 1.5, 180, 0.5},
		{33, -140, 12, 2, 160, 0.4},
	}
)

// House draws Santa's cabin with drifting chimney smoke and roofline lights.
func House(pen canvas.Pen, x, y, scale float64, t uint64) {
	p := local(pen, x, y, scale)
	tf := float64(t)

	p.FillRect(-50, -60, 100, 80, wood)
	p.FillPolygon(red, -60, -60, 0, -100, 60, -60)
	p.FillPolygon(white, -60, -60, -55, -65, 55, -65, 60, -60)

	// door and knob
	p.FillRect(-15, -20, 30, 40, darkWood)
	p.FillCircle(8, 0, 3, gold)

	// windows
	p.FillRect(-40, -45, 20, 20, windowLit)
	p.FillRect(20, -45, 20, 20, windowLit)
	frames := p.Path().
		MoveTo(-30, -55).LineTo(-30, -25).
		MoveTo(-50, -35).LineTo(-20, -35).
		MoveTo(30, -55).LineTo(30, -25).
		MoveTo(10, -35).LineTo(50, -35)
	p.Stroke(frames, 2, darkWood)

	// chimney
	p.FillRect(25, -95, 20, 40, wood)
	p.FillRect(25, -100, 20, 5, white)

	sway := math.Sin(tf*0.05) * 3
	for _, puff := range smokePuffs {
		c := canvas.Fade(gray(puff.shade), puff.alpha)
		p.FillCircle(puff.x+sway*puff.drift, puff.y, puff.r, c)
	}

	// wreath and bow
	p.StrokeCircle(0, -40, 8, 4, pine)
	p.FillCircle(0, -48, 3, pink)

	for i, l := range roofLights {
		twinkle := math.Sin(tf*0.08+float64(i))*0.4 + 0.6
		p.FillCircle(l.x, l.y, 3, canvas.Fade(l.c, twinkle))
	}
}
