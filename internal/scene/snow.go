package scene

import (
	"image/color"
	"math/rand/v2"

	"github.com/iburimskiy/holiday-scene/internal/canvas"
	"github.com/iburimskiy/holiday-scene/internal/config"
)

var flakeColor = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// Flake is one falling snow particle.
type Flake struct {
	X, Y  float64
	R     float64
	Speed float64
}

// Snow owns a fixed number of flakes for the lifetime of the scene.
type Snow struct {
	flakes []Flake
	rng    *rand.Rand
}

// NewSnow creates n flakes. They stay at the origin until Seed is called.
func NewSnow(n int, rng *rand.Rand) *Snow {
	return &Snow{flakes: make([]Flake, max(n, 0)), rng: rng}
}

// Flakes returns the live flakes. Callers must not modify them.
func (s *Snow) Flakes() []Flake {
	return s.flakes
}

// Len is the number of flakes.
func (s *Snow) Len() int {
	return len(s.flakes)
}

// Seed scatters every flake uniformly over a width x height surface and picks
// a fresh radius and speed for each. The count never changes.
func (s *Snow) Seed(width, height float64) {
	width, height = max(width, 0), max(height, 0)
	for i := range s.flakes {
		s.flakes[i] = Flake{
			X:     s.rng.Float64() * width,
			Y:     s.rng.Float64() * height,
			R:     uniform(s.rng, config.FlakeMinRadius, config.FlakeMaxRadius),
			Speed: uniform(s.rng, config.FlakeMinSpeed, config.FlakeMaxSpeed),
		}
	}
}

// Advance moves every flake down by its speed. A flake that passes the bottom
// edge re-enters just above the top at a random column.
func (s *Snow) Advance(width, height float64) {
	width = max(width, 0)
	for i := range s.flakes {
		f := &s.flakes[i]
		f.Y += f.Speed
		if f.Y > height {
			f.Y = config.FlakeResetY
			f.X = s.rng.Float64() * width
		}
	}
}

// Draw paints each flake as a filled disc.
func (s *Snow) Draw(pen canvas.Pen) {
	for _, f := range s.flakes {
		pen.FillCircle(f.X, f.Y, f.R, flakeColor)
	}
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
