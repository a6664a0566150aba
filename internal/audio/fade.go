package audio

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Fade eases a volume level from one value to another over time.
type Fade struct {
	tween *gween.Tween
	level float64
	done  bool
}

// NewFade starts a fade that takes seconds to go from from to to.
func NewFade(from, to float64, seconds float32) *Fade {
	return &Fade{
		tween: gween.New(float32(from), float32(to), seconds, ease.OutQuad),
		level: from,
	}
}

// Update advances the fade by dt seconds and returns the current level and
// whether the fade has finished.
func (f *Fade) Update(dt float32) (float64, bool) {
	if f.done {
		return f.level, true
	}
	v, finished := f.tween.Update(dt)
	f.level = float64(v)
	f.done = finished
	return f.level, finished
}

// Level is the most recent level.
func (f *Fade) Level() float64 {
	return f.level
}
