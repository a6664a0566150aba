package scene

import (
	"math"

	"github.com/iburimskiy/holiday-scene/internal/canvas"
	"github.com/iburimskiy/holiday-scene/internal/config"
)

var (
	nightSky = canvas.Gradient{
		{Offset: 0, Color: canvas.Hex("#000814")},
		{Offset: 0.4, Color: canvas.Hex("#001d3d")},
		{Offset: 1, Color: canvas.Hex("#003566")},
	}
	groundColor = canvas.Hex("#ffffff")
	starColor   = canvas.Hex("#ffffff")
)

// SnowLine is the y where the sky ends and the ground begins.
func SnowLine(height float64) float64 {
	return max(height, 0) * config.SnowLine
}

// StarPosition returns where star i sits at tick t. ok is false when the sky
// is too small to hold stars.
func StarPosition(i int, t uint64, width, height float64) (x, y float64, ok bool) {
	band := SnowLine(height) - 2*config.StarTop
	if width <= 0 || band <= 0 {
		return 0, 0, false
	}
	x = math.Mod(float64(i*config.StarStrideX)+float64(t)*config.StarDrift, width)
	y = config.StarTop + math.Mod(float64(i*config.StarStrideY), band)
	return x, y, true
}

// DrawBackdrop paints the night sky, the snowy ground and the drifting stars.
// It keeps no state.
func DrawBackdrop(pen canvas.Pen, width, height float64, t uint64) {
	width, height = max(width, 0), max(height, 0)
	snowLine := SnowLine(height)

	pen.FillGradient(0, 0, width, snowLine, nightSky)
	pen.FillRect(0, snowLine, width, height-snowLine, groundColor)

	stars := pen.Path()
	for i := 0; i < config.StarCount; i++ {
		x, y, ok := StarPosition(i, t, width, height)
		if !ok {
			break
		}
		stars.Rect(x, y, config.StarSize, config.StarSize)
	}
	pen.Fill(stars, starColor)
}
