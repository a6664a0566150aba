package export

import (
	"bytes"
	"errors"
	"image/png"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iburimskiy/holiday-scene/internal/config"
	"github.com/iburimskiy/holiday-scene/internal/scene"
)

func newScene(t *testing.T) *scene.Scene {
	t.Helper()
	layout, err := config.Preset(config.PresetFull)
	if err != nil {
		t.Fatal(err)
	}
	return scene.New(160, 100, layout, rand.New(rand.NewPCG(7, 8)))
}

func TestRunSVG(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	sc := newScene(t)

	paths, err := Run(sc, 3, config.FormatSVG, dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 3 {
		t.Fatalf("paths = %v", paths)
	}
	if filepath.Base(paths[2]) != "frame_0003.svg" {
		t.Errorf("last frame = %s", paths[2])
	}
	if sc.Time() != 3 {
		t.Errorf("time = %d, want 3", sc.Time())
	}

	data, err := os.ReadFile(paths[0])
	if err != nil {
		t.Fatal(err)
	}
	doc := string(data)
	if !strings.Contains(doc, "<svg") || !strings.Contains(doc, "</svg>") {
		t.Errorf("not an svg document:\n%.200s", doc)
	}
	if !strings.Contains(doc, "frame 1") {
		t.Error("missing frame title")
	}
}

func TestRunPNG(t *testing.T) {
	dir := t.TempDir()
	paths, err := Run(newScene(t), 2, config.FormatPNG, dir)
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(paths[1])
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 160 || b.Dy() != 100 {
		t.Errorf("bounds = %v", b)
	}
	// The sky gradient covers the top row.
	if _, _, _, a := img.At(80, 0).RGBA(); a != 0xffff {
		t.Errorf("top pixel alpha = %#x, want opaque", a)
	}
}

func TestRunUnknownFormat(t *testing.T) {
	if _, err := Run(newScene(t), 1, "gif", t.TempDir()); err == nil {
		t.Error("expected an error for gif")
	}
}

func TestRunBadDirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Run(newScene(t), 1, config.FormatSVG, filepath.Join(file, "sub")); err == nil {
		t.Error("expected an error when the output path is under a file")
	}
}

type failingWriter struct {
	after int
	n     int
}

var errDiskFull = errors.New("no space left on device")

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.n+len(p) > w.after {
		return 0, errDiskFull
	}
	w.n += len(p)
	return len(p), nil
}

func TestEncodeSVGReportsWriteError(t *testing.T) {
	for _, after := range []int{0, 100, 5000} {
		err := encodeSVG(&failingWriter{after: after}, newScene(t), 160, 100)
		if !errors.Is(err, errDiskFull) {
			t.Errorf("after %d bytes: error = %v, want %v", after, err, errDiskFull)
		}
	}
}

func TestEncodeSVGSucceeds(t *testing.T) {
	var buf bytes.Buffer
	if err := encodeSVG(&buf, newScene(t), 160, 100); err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(strings.TrimSpace(buf.String()), "</svg>") {
		t.Error("document not closed")
	}
}
