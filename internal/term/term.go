// Package term hosts the scene in a terminal. Each cell shows two pixels
// using half-block glyphs.
package term

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/holiday-scene/internal/audio"
	"github.com/iburimskiy/holiday-scene/internal/config"
	"github.com/iburimskiy/holiday-scene/internal/render"
	"github.com/iburimskiy/holiday-scene/internal/scene"
)

// Music is what the host needs from the player besides the toggle.
type Music interface {
	Update(dt float32)
}

// Host drives a scene on a tcell screen.
type Host struct {
	screen tcell.Screen
	scene  *scene.Scene
	raster *render.Raster
	music  Music
	toggle *audio.Toggle
	fps    int
	bg     tcell.Color
}

// New returns a host for an initialised screen.
func New(screen tcell.Screen, sc *scene.Scene, music Music, toggle *audio.Toggle, fps int) *Host {
	h := &Host{
		screen: screen,
		scene:  sc,
		raster: render.NewRaster(0, 0),
		music:  music,
		toggle: toggle,
		fps:    max(fps, 1),
		bg:     tcell.NewRGBColor(0, 0, 0),
	}
	h.resize()
	return h
}

// Run animates until the user quits or ctx is done. The caller owns the
// screen and calls Fini afterwards.
func (h *Host) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(h.fps))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !h.handleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			h.frame()
		}
	}
}

// handleEvent reports false when the user asked to quit.
func (h *Host) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
			h.toggle.Toggle()
		}
	case *tcell.EventResize:
		h.screen.Sync()
		h.resize()
	}
	return true
}

func (h *Host) resize() {
	cols, rows := h.screen.Size()
	h.scene.Resize(float64(cols), float64(2*rows))
	h.scene.SetFigureScale(float64(2*rows) / config.WindowHeight)
	h.raster.Resize(cols, 2*rows)
}

func (h *Host) frame() {
	h.scene.Step(h.raster)
	render.Present(h.screen, h.raster.Image(), h.bg)
	h.drawLabel()
	h.screen.Show()
	h.music.Update(1 / float32(h.fps))
}

func (h *Host) drawLabel() {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.NewRGBColor(180, 50, 70))
	x := 1
	for _, r := range "[space] " + h.toggle.Label() {
		h.screen.SetContent(x, 0, r, nil, style)
		x++
	}
}
