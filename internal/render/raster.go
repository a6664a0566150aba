package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"github.com/iburimskiy/holiday-scene/internal/canvas"
)

// miterLimit only matters for the gap function; joins are round.
const miterLimit = 4 << 6

// Raster draws into an in-memory RGBA image with anti-aliased coverage.
type Raster struct {
	img     *image.RGBA
	filler  *rasterx.Filler
	stroker *rasterx.Stroker
}

// NewRaster returns a transparent width x height surface.
func NewRaster(width, height int) *Raster {
	r := &Raster{}
	r.Resize(width, height)
	return r
}

// Resize replaces the backing image with a cleared one of the new size.
func (r *Raster) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	r.img = image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, r.img, r.img.Bounds())
	r.filler = rasterx.NewFiller(width, height, scanner)
	r.stroker = rasterx.NewStroker(width, height, scanner)
}

// Image is the backing image. It is reused between frames.
func (r *Raster) Image() *image.RGBA {
	return r.img
}

// WritePNG encodes the current image as PNG.
func (r *Raster) WritePNG(w io.Writer) error {
	return png.Encode(w, r.img)
}

func (r *Raster) Clear() {
	draw.Draw(r.img, r.img.Bounds(), image.Transparent, image.Point{}, draw.Src)
}

func (r *Raster) Fill(p *canvas.Path, c color.NRGBA) {
	if r.img.Bounds().Empty() {
		return
	}
	r.filler.Clear()
	for _, sp := range p.Subpaths() {
		if len(sp.Points) < 3 {
			continue
		}
		addSubpath(r.filler, sp, true)
	}
	r.filler.SetColor(c)
	r.filler.Draw()
}

// Stroke draws p with round caps and joins.
func (r *Raster) Stroke(p *canvas.Path, width float64, c color.NRGBA) {
	if r.img.Bounds().Empty() || width <= 0 {
		return
	}
	r.stroker.Clear()
	r.stroker.SetStroke(fixed.Int26_6(width*64), miterLimit, rasterx.RoundCap, nil, rasterx.RoundGap, rasterx.Round)
	for _, sp := range p.Subpaths() {
		if len(sp.Points) == 0 {
			continue
		}
		addSubpath(r.stroker, sp, sp.Closed)
	}
	r.stroker.SetColor(c)
	r.stroker.Draw()
}

// FillGradient fills the rectangle with a vertical gradient from y0 to y1.
func (r *Raster) FillGradient(x0, y0, x1, y1 float64, g canvas.Gradient) {
	if r.img.Bounds().Empty() || y1 <= y0 || x1 <= x0 || len(g) == 0 {
		return
	}
	grad := rasterx.Gradient{
		Points: [5]float64{0, 0, 0, 1},
		Matrix: rasterx.Identity,
		Units:  rasterx.ObjectBoundingBox,
		Spread: rasterx.PadSpread,
	}
	grad.Bounds.X, grad.Bounds.Y = x0, y0
	grad.Bounds.W, grad.Bounds.H = x1-x0, y1-y0
	for _, st := range g {
		opaque := st.Color
		opaque.A = 0xff
		grad.Stops = append(grad.Stops, rasterx.GradStop{
			StopColor: opaque,
			Offset:    st.Offset,
			Opacity:   float64(st.Color.A) / 0xff,
		})
	}

	r.filler.Clear()
	rasterx.AddRect(x0, y0, x1, y1, 0, r.filler)
	r.filler.SetColor(grad.GetColorFunction(1))
	r.filler.Draw()
}

func addSubpath(a rasterx.Adder, sp canvas.Subpath, closed bool) {
	a.Start(rasterx.ToFixedP(sp.Points[0].X, sp.Points[0].Y))
	for _, pt := range sp.Points[1:] {
		a.Line(rasterx.ToFixedP(pt.X, pt.Y))
	}
	a.Stop(closed)
}
