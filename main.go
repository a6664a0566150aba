package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/holiday-scene/internal/audio"
	"github.com/iburimskiy/holiday-scene/internal/config"
	"github.com/iburimskiy/holiday-scene/internal/export"
	"github.com/iburimskiy/holiday-scene/internal/game"
	"github.com/iburimskiy/holiday-scene/internal/scene"
	"github.com/iburimskiy/holiday-scene/internal/term"
)

func main() {
	log.SetFlags(log.Ltime)
	log.SetPrefix("[holiday] ")

	opts, err := config.Load(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}
	layout, err := opts.ResolveLayout()
	if err != nil {
		log.Fatal(err)
	}

	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	sc := scene.New(float64(opts.Width), float64(opts.Height), layout, rng)

	switch opts.Mode {
	case config.ModeExport:
		if _, err := export.Run(sc, opts.Frames, opts.Format, opts.OutDir); err != nil {
			log.Fatal(err)
		}
	case config.ModeTerm:
		if err := runTerm(sc, opts); err != nil {
			log.Fatal(err)
		}
	default:
		if err := runWindow(sc, opts); err != nil {
			log.Fatal(err)
		}
	}
}

func runWindow(sc *scene.Scene, opts *config.Options) error {
	music := audio.NewMusic(opts.Music)
	defer music.Close()

	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.TPS)

	g := game.New(sc, music, audio.NewToggle(music, nil))
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// runTerm holds log output until the screen is released so it does not
// scribble over the animation.
func runTerm(sc *scene.Scene, opts *config.Options) error {
	var logs bytes.Buffer
	log.SetOutput(&logs)
	defer func() {
		log.SetOutput(os.Stderr)
		_, _ = os.Stderr.Write(logs.Bytes())
	}()

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.HideCursor()

	music := audio.NewMusic(opts.Music)
	defer music.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	host := term.New(screen, sc, music, audio.NewToggle(music, nil), opts.FPS)
	if err := host.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
