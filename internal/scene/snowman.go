package scene

import (
	"math"

	"github.com/iburimskiy/holiday-scene/internal/canvas"
)

var (
	carrot = canvas.Hex("#ff7f11")
	scarf  = canvas.Hex("#1b9aaa")
)

// SnowmanArmAngle is the rotation of the snowman's waving arm at tick t.
func SnowmanArmAngle(t uint64) float64 {
	return -0.3 + math.Sin(float64(t)*0.14+1.5)*0.4
}

// Snowman draws a snowman waving a stick arm.
func Snowman(pen canvas.Pen, x, y, scale float64, t uint64) {
	p := local(pen, x, y, scale)

	p.Fill(p.Path().Circle(0, 20, 28).Circle(0, -18, 22).Circle(0, -48, 16), white)
	p.Fill(p.Path().Circle(-5, -52, 2).Circle(5, -52, 2), black)
	p.FillPolygon(carrot, 0, -48, 16, -46, 0, -44)
	p.Stroke(p.Path().Arc(0, -46, 6, 0.2*math.Pi, 0.8*math.Pi), 1.3, black)

	buttons := p.Path().Circle(0, -18, 2.5).Circle(0, -10, 2.5).Circle(0, -2, 2.5)
	p.Fill(buttons, black)

	p.FillRect(-18, -36, 36, 6, scarf)
	p.FillRect(-4, -30, 8, 16, scarf)

	p.StrokeLine(-16, -22, -36, -30, 3, stick)
	p.Translate(16, -22).Rotate(SnowmanArmAngle(t)).StrokeLine(0, 0, 22, 0, 3, stick)
}
