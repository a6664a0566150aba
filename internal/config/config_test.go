package config

import (
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestLoadDefaults(t *testing.T) {
	opts, err := Load(nil, io.Discard)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if opts.Mode != ModeWindow {
		t.Errorf("Mode = %q, want %q", opts.Mode, ModeWindow)
	}
	if opts.Width != WindowWidth || opts.Height != WindowHeight {
		t.Errorf("size = %dx%d, want %dx%d", opts.Width, opts.Height, WindowWidth, WindowHeight)
	}
	if opts.Preset != PresetFull {
		t.Errorf("Preset = %q, want %q", opts.Preset, PresetFull)
	}
}

func TestLoadFlagsOverrideEnv(t *testing.T) {
	t.Setenv("HOLIDAY_MODE", "term")
	t.Setenv("HOLIDAY_FPS", "12")
	t.Setenv("HOLIDAY_MUSIC", "env.mp3")

	opts, err := Load([]string{"-fps", "24", "-music", "flag.wav"}, io.Discard)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if opts.Mode != ModeTerm {
		t.Errorf("Mode = %q, want %q from env", opts.Mode, ModeTerm)
	}
	if opts.FPS != 24 {
		t.Errorf("FPS = %d, want 24 from flag", opts.FPS)
	}
	if opts.Music != "flag.wav" {
		t.Errorf("Music = %q, want flag.wav", opts.Music)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"mode", []string{"-mode", "kiosk"}, "unknown mode"},
		{"fps", []string{"-fps", "0"}, "fps out of range"},
		{"size", []string{"-width", "-1"}, "must not be negative"},
		{"frames", []string{"-mode", "export", "-frames", "0"}, "frames must be at least 1"},
		{"format", []string{"-mode", "export", "-format", "gif"}, "unknown export format"},
		{"preset", []string{"-preset", "tiny"}, "unknown layout preset"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.args, io.Discard)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestLoadRejectsBadEnvFPS(t *testing.T) {
	t.Setenv("HOLIDAY_FPS", "fast")
	_, err := Load(nil, io.Discard)
	if err == nil {
		t.Fatal("expected error for non-numeric HOLIDAY_FPS")
	}
	if !strings.HasPrefix(err.Error(), "HOLIDAY_FPS: ") {
		t.Errorf("error = %q, want the variable name as context", err)
	}
	var numErr *strconv.NumError
	if !errors.As(errors.Cause(err), &numErr) {
		t.Errorf("cause = %T, want *strconv.NumError", errors.Cause(err))
	}
}

func TestPresetIsCopy(t *testing.T) {
	a, err := Preset(PresetFull)
	if err != nil {
		t.Fatalf("Preset: %v", err)
	}
	a.Figures[0].Scale = 99

	b, _ := Preset(PresetFull)
	if b.Figures[0].Scale == 99 {
		t.Error("mutating a preset leaked into the next call")
	}
}

func TestPresetOrder(t *testing.T) {
	full, _ := Preset(PresetFull)
	want := []string{"house", "reindeer", "santa", "snowman", "tree"}
	if len(full.Figures) != len(want) {
		t.Fatalf("full has %d figures, want %d", len(full.Figures), len(want))
	}
	prev := -1.0
	for i, p := range full.Figures {
		if p.Figure != want[i] {
			t.Errorf("figure %d = %q, want %q", i, p.Figure, want[i])
		}
		if p.X <= prev {
			t.Errorf("figure %d at x=%v is not right of %v", i, p.X, prev)
		}
		prev = p.X
	}

	classic, _ := Preset(PresetClassic)
	for _, p := range classic.Figures {
		if p.Figure == "house" || p.Figure == "tree" {
			t.Errorf("classic layout should not include %q", p.Figure)
		}
	}
}

func TestParseLayout(t *testing.T) {
	data := []byte(`
figures:
  - figure: tree
    x: 0.2
    offset_y: 40
    scale: 1.8
  - figure: santa
    x: 0.6
`)
	l, err := ParseLayout(data)
	if err != nil {
		t.Fatalf("ParseLayout: %v", err)
	}
	if len(l.Figures) != 2 {
		t.Fatalf("got %d figures, want 2", len(l.Figures))
	}
	if l.Figures[0] != (Placement{Figure: "tree", X: 0.2, OffsetY: 40, Scale: 1.8}) {
		t.Errorf("figure 0 = %+v", l.Figures[0])
	}
	if l.Figures[1].Scale != 1 {
		t.Errorf("missing scale = %v, want default 1", l.Figures[1].Scale)
	}
}

func TestParseLayoutErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown figure", "figures:\n  - figure: grinch\n    x: 0.5\n"},
		{"unknown field", "figures:\n  - figure: santa\n    y: 0.5\n"},
		{"not yaml", "figures: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseLayout([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLayoutMarshalRoundTrip(t *testing.T) {
	full, _ := Preset(PresetFull)
	data, err := full.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	got, err := ParseLayout(data)
	if err != nil {
		t.Fatalf("ParseLayout: %v", err)
	}
	for i := range full.Figures {
		if got.Figures[i] != full.Figures[i] {
			t.Errorf("figure %d = %+v, want %+v", i, got.Figures[i], full.Figures[i])
		}
	}
}

func TestResolveLayoutFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.yaml")
	if err := os.WriteFile(path, []byte("figures:\n  - figure: snowman\n    x: 0.5\n    scale: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	opts := DefaultOptions()
	opts.Layout = path

	l, err := opts.ResolveLayout()
	if err != nil {
		t.Fatalf("ResolveLayout: %v", err)
	}
	if len(l.Figures) != 1 || l.Figures[0].Figure != "snowman" {
		t.Errorf("layout = %+v", l)
	}

	opts.Layout = filepath.Join(t.TempDir(), "missing.yaml")
	_, err = opts.ResolveLayout()
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want it to wrap os.ErrNotExist", err)
	}
	if !strings.HasPrefix(err.Error(), "read layout: ") {
		t.Errorf("error = %q, want read layout context", err)
	}
}
