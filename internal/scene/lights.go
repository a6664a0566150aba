package scene

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/iburimskiy/holiday-scene/internal/canvas"
	"github.com/iburimskiy/holiday-scene/internal/config"
)

// Red, gold, blue, green.
var bulbPalette = []color.NRGBA{
	canvas.Hex("#ff4d6d"),
	canvas.Hex("#ffd700"),
	canvas.Hex("#4cc9f0"),
	canvas.Hex("#80ed99"),
}

var (
	wireColor = canvas.Hex("#3a3a3a")
	haloAlpha = uint8(0x55)
)

// Bulb is one light on the string. Phase and Speed are fixed at creation;
// only X and Y move, and only on Layout.
type Bulb struct {
	X, Y   float64
	Radius float64
	Phase  float64
	Speed  float64
}

// Lights is a string of bulbs hanging across the top of the scene.
type Lights struct {
	bulbs []Bulb
}

// NewLights creates n bulbs with random phase and twinkle speed.
func NewLights(n int, rng *rand.Rand) *Lights {
	bulbs := make([]Bulb, max(n, 0))
	for i := range bulbs {
		bulbs[i] = Bulb{
			Radius: config.LightRadius,
			Phase:  rng.Float64() * 2 * math.Pi,
			Speed:  uniform(rng, config.LightMinSpeed, config.LightMaxSpeed),
		}
	}
	return &Lights{bulbs: bulbs}
}

// Bulbs returns the bulbs in left-to-right order. Callers must not modify them.
func (l *Lights) Bulbs() []Bulb {
	return l.bulbs
}

// Layout spreads the bulbs evenly over [0, width] along a sagging curve that
// is lowest in the middle. Phase and speed are kept.
func (l *Lights) Layout(width float64) {
	width = max(width, 0)
	last := len(l.bulbs) - 1
	for i := range l.bulbs {
		pct := 0.0
		if last > 0 {
			pct = float64(i) / float64(last)
		}
		l.bulbs[i].X = pct * width
		l.bulbs[i].Y = config.LightBaseY + math.Sin(pct*math.Pi)*config.LightSag
	}
}

// Sway is the bulb's horizontal offset at tick t.
func Sway(t uint64, b Bulb) float64 {
	return math.Sin(float64(t)*config.LightSwayRate+b.Phase) * config.LightSwayAmplitude
}

// Intensity is the bulb's twinkle level in [0, 1] at tick t.
func Intensity(t uint64, b Bulb) float64 {
	return clamp01((math.Sin(float64(t)*b.Speed+b.Phase) + 1) / 2)
}

// ColorIndex maps an intensity onto a palette of size entries.
func ColorIndex(intensity float64, size int) int {
	if size <= 0 {
		return 0
	}
	return int(math.Floor(clamp01(intensity)*float64(size))) % size
}

// Draw paints the wire, then each bulb with its halo and socket.
func (l *Lights) Draw(pen canvas.Pen, t uint64) {
	if len(l.bulbs) == 0 {
		return
	}

	wire := pen.Path()
	for _, b := range l.bulbs {
		wire.LineTo(b.X, b.Y)
	}
	pen.Stroke(wire, config.LightStringWidth, wireColor)

	for _, b := range l.bulbs {
		bx := b.X + Sway(t, b)
		by := b.Y + config.LightDrop
		c := bulbPalette[ColorIndex(Intensity(t, b), len(bulbPalette))]

		pen.FillCircle(bx, by, b.Radius, c)
		pen.StrokeCircle(bx, by, b.Radius+config.LightHaloGap, config.LightHaloWidth, canvas.WithAlpha(c, haloAlpha))
		pen.FillRect(bx-3, by-10, 6, 6, wireColor)
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
