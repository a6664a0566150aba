package scene

import (
	"math"

	"github.com/iburimskiy/holiday-scene/internal/canvas"
)

// SantaArmAngle is the rotation of Santa's waving arm at tick t.
func SantaArmAngle(t uint64) float64 {
	return math.Sin(float64(t)*0.12)*0.6 - 0.2
}

// Santa draws Santa waving his right arm.
func Santa(pen canvas.Pen, x, y, scale float64, t uint64) {
	p := local(pen, x, y, scale)

	p.FillCircle(0, 0, 40, red)
	p.FillCircle(0, -40, 22, skin)

	// hat, trim, pom-pom
	p.FillPolygon(red, -22, -52, 22, -52, 0, -82)
	p.FillRect(-22, -52, 44, 8, white)
	p.FillCircle(0, -82, 5, white)

	p.FillCircle(0, -32, 18, white)
	p.Fill(p.Path().Circle(-7, -42, 2).Circle(7, -42, 2), black)

	p.FillRect(-40, -5, 80, 10, black)
	p.FillRect(-10, -5, 20, 10, gold)

	arm := p.Translate(30, -10).Rotate(SantaArmAngle(t))
	arm.StrokeLine(0, 0, 30, 0, 8, red)
	arm.FillCircle(30, 0, 6, skin)

	p.StrokeLine(-30, -10, -50, -2, 8, red)
}
