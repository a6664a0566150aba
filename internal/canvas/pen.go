package canvas

import "image/color"

// Pen draws onto a Surface through a local-to-world transform. Deriving a pen
// with Translate, Scale or Rotate leaves the original untouched, so a figure
// can rotate one limb without restoring anything afterwards.
type Pen struct {
	Surface Surface
	M       Affine
}

// NewPen returns a pen with the identity transform.
func NewPen(s Surface) Pen {
	return Pen{Surface: s, M: Identity}
}

// Translate returns a pen whose origin is moved to local (x, y).
func (p Pen) Translate(x, y float64) Pen {
	p.M = p.M.Translate(x, y)
	return p
}

// Scale returns a pen scaled uniformly by s.
func (p Pen) Scale(s float64) Pen {
	p.M = p.M.Scale(s)
	return p
}

// Rotate returns a pen rotated by theta radians.
func (p Pen) Rotate(theta float64) Pen {
	p.M = p.M.Rotate(theta)
	return p
}

// Path starts an empty path in the pen's local space.
func (p Pen) Path() *Path {
	return NewPath(p.M)
}

// Fill fills path.
func (p Pen) Fill(path *Path, c color.NRGBA) {
	if path.Empty() {
		return
	}
	p.Surface.Fill(path, c)
}

// Stroke strokes path with a local line width.
func (p Pen) Stroke(path *Path, width float64, c color.NRGBA) {
	if path.Empty() {
		return
	}
	p.Surface.Stroke(path, width*p.M.ScaleFactor(), c)
}

// FillRect fills a local rectangle.
func (p Pen) FillRect(x, y, w, h float64, c color.NRGBA) {
	p.Fill(p.Path().Rect(x, y, w, h), c)
}

// FillCircle fills a local disc.
func (p Pen) FillCircle(cx, cy, r float64, c color.NRGBA) {
	p.Fill(p.Path().Circle(cx, cy, r), c)
}

// StrokeCircle strokes a local circle outline.
func (p Pen) StrokeCircle(cx, cy, r, width float64, c color.NRGBA) {
	p.Stroke(p.Path().Circle(cx, cy, r), width, c)
}

// FillPolygon fills a closed polygon given as local x, y pairs.
func (p Pen) FillPolygon(c color.NRGBA, xy ...float64) {
	p.Fill(p.Path().Polygon(xy...), c)
}

// StrokeLine strokes a single local segment.
func (p Pen) StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA) {
	p.Stroke(p.Path().MoveTo(x0, y0).LineTo(x1, y1), width, c)
}

// FillGradient fills a local rectangle with a vertical gradient. The pen is
// expected to carry no rotation.
func (p Pen) FillGradient(x, y, w, h float64, g Gradient) {
	x0, y0 := p.M.Apply(x, y)
	x1, y1 := p.M.Apply(x+w, y+h)
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	p.Surface.FillGradient(x0, y0, x1, y1, g)
}
