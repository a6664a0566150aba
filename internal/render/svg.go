// Package render implements canvas.Surface for headless targets: SVG
// documents, in-memory RGBA images and terminal cells.
package render

import (
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/iburimskiy/holiday-scene/internal/canvas"
)

// SVG writes each drawing call as an SVG element. One SVG value is one
// frame; Close must be called to finish the document.
type SVG struct {
	canvas    *svg.SVG
	width     int
	height    int
	gradients int
}

// NewSVG starts a width x height document on w.
func NewSVG(w io.Writer, width, height int) *SVG {
	c := svg.New(w)
	c.Start(width, height)
	return &SVG{canvas: c, width: width, height: height}
}

// Title sets the document title.
func (s *SVG) Title(t string) {
	s.canvas.Title(t)
}

// Close ends the document.
func (s *SVG) Close() {
	s.canvas.End()
}

// Clear is a no-op: every frame starts as an empty document.
func (s *SVG) Clear() {}

func (s *SVG) Fill(p *canvas.Path, c color.NRGBA) {
	s.canvas.Path(pathData(p), fillStyle(c))
}

func (s *SVG) Stroke(p *canvas.Path, width float64, c color.NRGBA) {
	style := fmt.Sprintf("fill:none;stroke:%s;stroke-width:%s;stroke-linecap:round;stroke-linejoin:round",
		canvas.HexString(c), num(width))
	if c.A != 0xff {
		style += ";stroke-opacity:" + num(float64(c.A)/0xff)
	}
	s.canvas.Path(pathData(p), style)
}

func (s *SVG) FillGradient(x0, y0, x1, y1 float64, g canvas.Gradient) {
	s.gradients++
	id := fmt.Sprintf("grad%d", s.gradients)

	stops := make([]svg.Offcolor, len(g))
	for i, st := range g {
		stops[i] = svg.Offcolor{
			Offset:  uint8(st.Offset*100 + 0.5),
			Color:   canvas.HexString(st.Color),
			Opacity: float64(st.Color.A) / 0xff,
		}
	}
	s.canvas.Def()
	s.canvas.LinearGradient(id, 0, 0, 0, 100, stops)
	s.canvas.DefEnd()

	rect := canvas.NewPath(canvas.Identity).Rect(x0, y0, x1-x0, y1-y0)
	s.canvas.Path(pathData(rect), "fill:url(#"+id+")")
}

func fillStyle(c color.NRGBA) string {
	style := "fill:" + canvas.HexString(c) + ";stroke:none"
	if c.A != 0xff {
		style += ";fill-opacity:" + num(float64(c.A)/0xff)
	}
	return style
}

func pathData(p *canvas.Path) string {
	var b strings.Builder
	for _, sp := range p.Subpaths() {
		for i, pt := range sp.Points {
			if i == 0 {
				b.WriteString("M")
			} else {
				b.WriteString(" L")
			}
			b.WriteString(num(pt.X))
			b.WriteByte(',')
			b.WriteString(num(pt.Y))
		}
		if sp.Closed {
			b.WriteString(" Z")
		}
		b.WriteByte(' ')
	}
	return strings.TrimSpace(b.String())
}

// num formats v with at most two decimals.
func num(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimSuffix(strings.TrimRight(s, "0"), ".")
	if s == "-0" {
		return "0"
	}
	return s
}
