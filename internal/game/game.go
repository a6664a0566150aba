// Package game hosts the scene in a desktop window through ebiten, with a
// clickable music toggle over the animation.
package game

import (
	"image/color"
	"log"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/ncruces/zenity"
	"github.com/pkg/errors"

	"github.com/iburimskiy/holiday-scene/internal/audio"
	"github.com/iburimskiy/holiday-scene/internal/config"
	"github.com/iburimskiy/holiday-scene/internal/scene"
)

const levelBarHeight = 4

// Game implements ebiten.Game.
type Game struct {
	scene   *scene.Scene
	surface *Surface
	music   *audio.Music
	toggle  *audio.Toggle

	// input edge detection
	prevKey map[ebiten.Key]bool

	// button state
	buttonHovered bool
	buttonPressed bool

	lastErr error
}

// New wires a scene and its music toggle into a window game.
func New(sc *scene.Scene, music *audio.Music, toggle *audio.Toggle) *Game {
	return &Game{
		scene:   sc,
		surface: NewSurface(),
		music:   music,
		toggle:  toggle,
		prevKey: map[ebiten.Key]bool{},
	}
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	mouseX, mouseY := ebiten.CursorPosition()
	g.buttonHovered = buttonContains(mouseX, mouseY)

	if g.buttonHovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.buttonPressed = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.buttonPressed && g.buttonHovered {
			g.toggle.Toggle()
		}
		g.buttonPressed = false
	}

	if justPressed(ebiten.KeySpace) {
		g.toggle.Toggle()
	}
	if justPressed(ebiten.KeyO) {
		if err := g.openTrackDialog(); err != nil {
			g.lastErr = err
		}
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	g.music.Update(1.0 / config.TPS)
	g.scene.Tick()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.Target(screen)
	g.scene.Draw(g.surface)

	g.drawButton(screen)
	g.drawLevel(screen)

	elapsed := time.Duration(g.scene.Time()) * time.Second / config.TPS
	status := formatDuration(elapsed) + "  Space/click: music, O: open file, Esc/Q: quit"
	if track := g.music.Track(); track != "" {
		status += " | " + filepath.Base(track)
	}
	err := g.lastErr
	if err == nil {
		err = g.toggle.Err()
	}
	if err != nil {
		status += " | Error: " + err.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

// Layout renders at device resolution and keeps the scene sized to it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := ebiten.Monitor().DeviceScaleFactor()
	w, h := int(float64(outsideWidth)*s), int(float64(outsideHeight)*s)
	g.scene.Resize(float64(w), float64(h))
	return w, h
}

func (g *Game) drawButton(screen *ebiten.Image) {
	var bgColor color.Color
	if g.buttonPressed {
		bgColor = color.RGBA{R: 120, G: 30, B: 45, A: 255}
	} else if g.buttonHovered {
		bgColor = color.RGBA{R: 150, G: 40, B: 60, A: 255}
	} else {
		bgColor = color.RGBA{R: 180, G: 50, B: 70, A: 255}
	}
	vector.DrawFilledRect(screen, config.ButtonX, config.ButtonY, config.ButtonWidth, config.ButtonHeight, bgColor, false)

	borderColor := color.RGBA{R: 255, G: 215, B: 0, A: 255}
	vector.StrokeRect(screen, config.ButtonX, config.ButtonY, config.ButtonWidth, config.ButtonHeight, 2, borderColor, false)

	text := g.toggle.Label()
	textWidth := len(text) * 6 // debug font glyphs are 6px wide
	textX := config.ButtonX + (config.ButtonWidth-textWidth)/2
	textY := config.ButtonY + (config.ButtonHeight-16)/2
	ebitenutil.DebugPrintAt(screen, text, textX, textY)
}

// drawLevel shows the music loudness as a bar under the button, green when
// quiet and shading to red when loud.
func (g *Game) drawLevel(screen *ebiten.Image) {
	level := clamp01(g.music.Level())
	if level == 0 {
		return
	}
	y := float32(config.ButtonY + config.ButtonHeight + levelBarHeight)
	vector.DrawFilledRect(screen, config.ButtonX, y, float32(config.ButtonWidth*level), levelBarHeight, levelColor(level), false)
}

// openTrackDialog asks for a music file and switches to it, resuming
// playback if the toggle is on.
func (g *Game) openTrackDialog() error {
	filename, err := zenity.SelectFile(
		zenity.Title("Choose Music"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return errors.Wrap(err, "choose music")
	}

	log.Printf("selected music %s", filename)
	g.music.SetTrack(filename)
	g.lastErr = nil
	if g.toggle.Playing() {
		return g.music.Play()
	}
	return nil
}

func buttonContains(x, y int) bool {
	return x >= config.ButtonX && x <= config.ButtonX+config.ButtonWidth &&
		y >= config.ButtonY && y <= config.ButtonY+config.ButtonHeight
}
