package game

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/holiday-scene/internal/canvas"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Surface draws onto an *ebiten.Image. Call Target at the start of each Draw.
type Surface struct {
	dst      *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

// NewSurface returns a surface with no target yet.
func NewSurface() *Surface {
	return &Surface{}
}

// Target points the surface at dst for the following calls.
func (s *Surface) Target(dst *ebiten.Image) {
	s.dst = dst
}

func (s *Surface) Clear() {
	if s.dst == nil {
		return
	}
	s.dst.Clear()
}

func (s *Surface) Fill(p *canvas.Path, c color.NRGBA) {
	if s.dst == nil {
		return
	}
	path := toVectorPath(p)
	s.vertices, s.indices = path.AppendVerticesAndIndicesForFilling(s.vertices[:0], s.indices[:0])
	s.drawTriangles(c)
}

func (s *Surface) Stroke(p *canvas.Path, width float64, c color.NRGBA) {
	if s.dst == nil {
		return
	}
	path := toVectorPath(p)
	op := &vector.StrokeOptions{
		Width:    float32(width),
		LineCap:  vector.LineCapRound,
		LineJoin: vector.LineJoinRound,
	}
	s.vertices, s.indices = path.AppendVerticesAndIndicesForStroke(s.vertices[:0], s.indices[:0], op)
	s.drawTriangles(c)
}

// FillGradient paints one row at a time, each row in its interpolated color.
func (s *Surface) FillGradient(x0, y0, x1, y1 float64, g canvas.Gradient) {
	if s.dst == nil || y1 <= y0 || x1 <= x0 {
		return
	}
	h := y1 - y0
	for y := math.Floor(y0); y < y1; y++ {
		top := math.Max(y, y0)
		bottom := math.Min(y+1, y1)
		c := g.At((top - y0) / h)
		vector.DrawFilledRect(s.dst, float32(x0), float32(top), float32(x1-x0), float32(bottom-top), c, false)
	}
}

func (s *Surface) drawTriangles(c color.NRGBA) {
	if len(s.indices) == 0 {
		return
	}
	r, g, b, a := c.RGBA()
	for i := range s.vertices {
		s.vertices[i].SrcX = 1
		s.vertices[i].SrcY = 1
		s.vertices[i].ColorR = float32(r) / 0xffff
		s.vertices[i].ColorG = float32(g) / 0xffff
		s.vertices[i].ColorB = float32(b) / 0xffff
		s.vertices[i].ColorA = float32(a) / 0xffff
	}
	s.dst.DrawTriangles(s.vertices, s.indices, whiteSubImage, triangleOptions())
}

// triangleOptions draws vector path triangles. The fill and stroke
// tessellations overlap and must be resolved by winding, otherwise
// translucent pixels are blended more than once.
func triangleOptions() *ebiten.DrawTrianglesOptions {
	op := &ebiten.DrawTrianglesOptions{}
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	op.FillRule = ebiten.FillRuleNonZero
	op.AntiAlias = true
	return op
}

func toVectorPath(p *canvas.Path) *vector.Path {
	var path vector.Path
	for _, sp := range p.Subpaths() {
		for i, pt := range sp.Points {
			if i == 0 {
				path.MoveTo(float32(pt.X), float32(pt.Y))
			} else {
				path.LineTo(float32(pt.X), float32(pt.Y))
			}
		}
		if sp.Closed {
			path.Close()
		}
	}
	return &path
}
