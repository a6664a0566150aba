package canvas

import "image/color"

// Surface is a 2D render target. Paths arrive in world coordinates and
// widths in world pixels; a Surface never tracks a transform.
type Surface interface {
	// Clear erases the whole surface.
	Clear()
	// Fill paints the interior of every subpath of p.
	Fill(p *Path, c color.NRGBA)
	// Stroke paints a line of the given width along every subpath of p.
	Stroke(p *Path, width float64, c color.NRGBA)
	// FillGradient paints the axis-aligned rectangle from (x0, y0) to
	// (x1, y1) with a gradient running top to bottom.
	FillGradient(x0, y0, x1, y1 float64, g Gradient)
}

// Stop is one color stop of a gradient. Offset is in [0, 1].
type Stop struct {
	Offset float64
	Color  color.NRGBA
}

// Gradient is a linear gradient with stops in ascending offset order.
type Gradient []Stop

// At returns the interpolated color at offset t.
func (g Gradient) At(t float64) color.NRGBA {
	if len(g) == 0 {
		return color.NRGBA{}
	}
	if t <= g[0].Offset {
		return g[0].Color
	}
	for i := 1; i < len(g); i++ {
		if t <= g[i].Offset {
			a, b := g[i-1], g[i]
			span := b.Offset - a.Offset
			if span <= 0 {
				return b.Color
			}
			return lerpColor(a.Color, b.Color, (t-a.Offset)/span)
		}
	}
	return g[len(g)-1].Color
}

func lerpColor(a, b color.NRGBA, t float64) color.NRGBA {
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.NRGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: lerp(a.A, b.A)}
}
