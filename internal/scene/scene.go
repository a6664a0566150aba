// Package scene animates the holiday scene: backdrop, hanging lights, snow
// and the character figures, drawn in that order onto a canvas.Surface.
package scene

import (
	"math/rand/v2"

	"github.com/iburimskiy/holiday-scene/internal/canvas"
	"github.com/iburimskiy/holiday-scene/internal/config"
)

// Scene owns the time counter and everything that moves. The host calls Tick
// once per refresh and Draw whenever it has a surface to paint.
type Scene struct {
	width, height float64
	time          uint64

	snow        *Snow
	lights      *Lights
	figures     []placedFigure
	figureScale float64
}

type placedFigure struct {
	draw      Figure
	placement config.Placement
}

// New builds a scene for a width x height surface. Placements naming an
// unknown figure are skipped; config.Layout.Validate reports them earlier.
func New(width, height float64, layout config.Layout, rng *rand.Rand) *Scene {
	s := &Scene{
		width:       max(width, 0),
		height:      max(height, 0),
		snow:        NewSnow(config.FlakeCount, rng),
		lights:      NewLights(config.LightCount, rng),
		figureScale: 1,
	}
	for _, p := range layout.Figures {
		if f, ok := Figures[p.Figure]; ok {
			s.figures = append(s.figures, placedFigure{draw: f, placement: p})
		}
	}
	s.snow.Seed(s.width, s.height)
	s.lights.Layout(s.width)
	return s
}

// Time is the number of ticks so far.
func (s *Scene) Time() uint64 {
	return s.time
}

// Running reports whether the first tick has happened.
func (s *Scene) Running() bool {
	return s.time > 0
}

// Size returns the current surface size.
func (s *Scene) Size() (width, height float64) {
	return s.width, s.height
}

// Snow returns the particle field.
func (s *Scene) Snow() *Snow {
	return s.snow
}

// Lights returns the light string.
func (s *Scene) Lights() *Lights {
	return s.lights
}

// Resize adopts a new surface size. Snow is scattered again and the lights
// are re-spaced; counts, bulb phases and speeds are kept.
func (s *Scene) Resize(width, height float64) {
	width, height = max(width, 0), max(height, 0)
	if width == s.width && height == s.height {
		return
	}
	s.width, s.height = width, height
	s.snow.Seed(width, height)
	s.lights.Layout(width)
}

// SetFigureScale multiplies every placement's scale, vertical offset and
// the baseline gap. Layouts are written in window pixels; hosts with a much
// smaller surface shrink the figures to match. Non-positive values are
// ignored.
func (s *Scene) SetFigureScale(k float64) {
	if k > 0 {
		s.figureScale = k
	}
}

// FigureScale is the current figure scale, 1 by default.
func (s *Scene) FigureScale() float64 {
	return s.figureScale
}

// Tick advances time by one and moves the snow.
func (s *Scene) Tick() {
	s.time++
	s.snow.Advance(s.width, s.height)
}

// Draw clears surface and paints the current frame back to front.
func (s *Scene) Draw(surface canvas.Surface) {
	surface.Clear()
	pen := canvas.NewPen(surface)

	DrawBackdrop(pen, s.width, s.height, s.time)
	s.lights.Draw(pen, s.time)
	s.snow.Draw(pen)

	k := s.figureScale
	baseY := SnowLine(s.height) - config.FigureBaseline*k
	for _, f := range s.figures {
		p := f.placement
		f.draw(pen, s.width*p.X, baseY+p.OffsetY*k, p.Scale*k, s.time)
	}
}

// Step runs one full refresh: Tick then Draw.
func (s *Scene) Step(surface canvas.Surface) {
	s.Tick()
	s.Draw(surface)
}
