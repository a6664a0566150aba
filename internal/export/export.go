// Package export renders frames to files without a display.
package export

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/iburimskiy/holiday-scene/internal/config"
	"github.com/iburimskiy/holiday-scene/internal/render"
	"github.com/iburimskiy/holiday-scene/internal/scene"
)

// Run steps sc frames times and writes every frame to outDir as
// frame_NNNN.svg or frame_NNNN.png. It returns the written paths.
func Run(sc *scene.Scene, frames int, format, outDir string) ([]string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create output directory")
	}

	w, h := sc.Size()
	var raster *render.Raster
	if format == config.FormatPNG {
		raster = render.NewRaster(int(w), int(h))
	}

	paths := make([]string, 0, frames)
	for i := 1; i <= frames; i++ {
		path := filepath.Join(outDir, fmt.Sprintf("frame_%04d.%s", i, format))
		var err error
		switch format {
		case config.FormatSVG:
			err = writeSVG(path, sc, int(w), int(h))
		case config.FormatPNG:
			sc.Step(raster)
			err = writeFile(path, raster.WritePNG)
		default:
			err = errors.Errorf("unknown format %q", format)
		}
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	log.Printf("wrote %d %s frames to %s", len(paths), format, outDir)
	return paths, nil
}

func writeSVG(path string, sc *scene.Scene, w, h int) error {
	return writeFile(path, func(out io.Writer) error {
		return encodeSVG(out, sc, w, h)
	})
}

// encodeSVG steps sc once onto a new SVG document. svgo drops write errors,
// so the first one is kept and returned here.
func encodeSVG(out io.Writer, sc *scene.Scene, w, h int) error {
	sw := &stickyWriter{w: out}
	doc := render.NewSVG(sw, w, h)
	doc.Title(fmt.Sprintf("Holiday scene, frame %d", sc.Time()+1))
	sc.Step(doc)
	doc.Close()
	return sw.err
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create frame")
	}
	bw := bufio.NewWriter(f)
	if err := write(bw); err != nil {
		_ = f.Close()
		return errors.Wrapf(err, "write %s", filepath.Base(path))
	}
	if err := bw.Flush(); err != nil {
		_ = f.Close()
		return errors.Wrapf(err, "write %s", filepath.Base(path))
	}
	return errors.Wrapf(f.Close(), "close %s", filepath.Base(path))
}

// stickyWriter remembers the first write error and fails every write after it.
type stickyWriter struct {
	w   io.Writer
	err error
}

func (s *stickyWriter) Write(p []byte) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	n, err := s.w.Write(p)
	s.err = err
	return n, err
}
