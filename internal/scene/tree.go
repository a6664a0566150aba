package scene

import (
	"math"

	"github.com/iburimskiy/holiday-scene/internal/canvas"
)

var ornaments = []dot{
	{-30, -10, pink},
	{20, -5, sky},
	{-15, -35, gold},
	{25, -40, pink},
	{0, -60, sky},
	{-20, -65, gold},
	{15, -70, pink},
}

// OrnamentAlpha is the opacity of an ornament at horizontal offset x at tick t.
func OrnamentAlpha(x float64, t uint64) float64 {
	return math.Sin(float64(t)*0.1+x)*0.3 + 0.7
}

// Tree draws a decorated tree with a star and twinkling ornaments.
func Tree(pen canvas.Pen, x, y, scale float64, t uint64) {
	p := local(pen, x, y, scale)

	p.FillRect(-10, 10, 20, 30, darkWood)

	layers := p.Path().
		Polygon(-60, 10, 0, -50, 60, 10).
		Polygon(-50, -20, 0, -80, 50, -20).
		Polygon(-40, -50, 0, -110, 40, -50)
	p.Fill(layers, pine)

	star := p.Path()
	for i := 0; i < 5; i++ {
		angle := float64(i)*4*math.Pi/5 - math.Pi/2
		radius := 6.0
		if i%2 == 0 {
			radius = 12
		}
		star.LineTo(math.Cos(angle)*radius, math.Sin(angle)*radius-120)
	}
	p.Fill(star.Close(), gold)

	for _, o := range ornaments {
		p.FillCircle(o.x, o.y, 5, canvas.Fade(o.c, OrnamentAlpha(o.x, t)))
	}
}
