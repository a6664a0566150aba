package config

import (
	"flag"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Run modes.
const (
	ModeWindow = "window"
	ModeTerm   = "term"
	ModeExport = "export"
)

// Export formats.
const (
	FormatSVG = "svg"
	FormatPNG = "png"
)

// Options holds everything the command line and environment can change.
type Options struct {
	Mode   string
	Width  int
	Height int
	FPS    int
	Seed   uint64

	Music  string
	Layout string
	Preset string

	Frames int
	Format string
	OutDir string
}

// DefaultOptions returns the options used when nothing is overridden.
func DefaultOptions() *Options {
	return &Options{
		Mode:   ModeWindow,
		Width:  WindowWidth,
		Height: WindowHeight,
		FPS:    30,
		Preset: PresetFull,
		Frames: 1,
		Format: FormatSVG,
		OutDir: "frames",
	}
}

// Load builds Options from environment overrides and then args, so flags win
// over HOLIDAY_* variables.
func Load(args []string, output io.Writer) (*Options, error) {
	opts := DefaultOptions()
	if err := opts.applyEnv(os.Getenv); err != nil {
		return nil, err
	}

	fs := flag.NewFlagSet("holiday", flag.ContinueOnError)
	if output != nil {
		fs.SetOutput(output)
	}
	fs.StringVar(&opts.Mode, "mode", opts.Mode, "run mode: window, term or export")
	fs.IntVar(&opts.Width, "width", opts.Width, "surface width in pixels (window and export)")
	fs.IntVar(&opts.Height, "height", opts.Height, "surface height in pixels (window and export)")
	fs.IntVar(&opts.FPS, "fps", opts.FPS, "frames per second in terminal mode (1-60)")
	fs.Uint64Var(&opts.Seed, "seed", opts.Seed, "random seed for snow and lights, 0 picks one")
	fs.StringVar(&opts.Music, "music", opts.Music, "background music file (.wav, .mp3, .flac)")
	fs.StringVar(&opts.Layout, "layout", opts.Layout, "YAML file with the figure layout")
	fs.StringVar(&opts.Preset, "preset", opts.Preset, "built-in figure layout: full or classic")
	fs.IntVar(&opts.Frames, "frames", opts.Frames, "number of ticks to export")
	fs.StringVar(&opts.Format, "format", opts.Format, "export format: svg or png")
	fs.StringVar(&opts.OutDir, "out", opts.OutDir, "export output directory")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

func (o *Options) applyEnv(getenv func(string) string) error {
	if v := getenv("HOLIDAY_MODE"); v != "" {
		o.Mode = v
	}
	if v := getenv("HOLIDAY_MUSIC"); v != "" {
		o.Music = v
	}
	if v := getenv("HOLIDAY_LAYOUT"); v != "" {
		o.Layout = v
	}
	if v := getenv("HOLIDAY_PRESET"); v != "" {
		o.Preset = v
	}
	if v := getenv("HOLIDAY_FPS"); v != "" {
		fps, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrap(err, "HOLIDAY_FPS")
		}
		o.FPS = fps
	}
	return nil
}

// Validate reports the first option that is out of range.
func (o *Options) Validate() error {
	o.Mode = strings.ToLower(o.Mode)
	o.Format = strings.ToLower(o.Format)

	switch o.Mode {
	case ModeWindow, ModeTerm, ModeExport:
	default:
		return errors.Errorf("unknown mode %q", o.Mode)
	}
	if o.Width < 0 || o.Height < 0 {
		return errors.Errorf("size must not be negative (got %dx%d)", o.Width, o.Height)
	}
	if o.FPS < 1 || o.FPS > 60 {
		return errors.Errorf("fps out of range 1-60 (got %d)", o.FPS)
	}
	if o.Mode == ModeExport {
		if o.Frames < 1 {
			return errors.Errorf("frames must be at least 1 (got %d)", o.Frames)
		}
		switch o.Format {
		case FormatSVG, FormatPNG:
		default:
			return errors.Errorf("unknown export format %q", o.Format)
		}
	}
	if o.Layout == "" {
		if _, err := Preset(o.Preset); err != nil {
			return err
		}
	}
	return nil
}

// ResolveLayout returns the layout file's contents when one is set, otherwise
// the named preset.
func (o *Options) ResolveLayout() (Layout, error) {
	if o.Layout != "" {
		return LoadLayout(o.Layout)
	}
	return Preset(o.Preset)
}
