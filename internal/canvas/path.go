package canvas

import "math"

// Bounds on the segments used to approximate a full turn of an arc.
const (
	minTurnSegments = 12
	maxTurnSegments = 48
)

// Point is a world-space position.
type Point struct {
	X, Y float64
}

// Subpath is one connected run of points.
type Subpath struct {
	Points []Point
	Closed bool
}

// Path collects subpaths in world coordinates. Points are given in the local
// space of the transform the path was created with and mapped on insert, so
// surfaces never see a transform.
type Path struct {
	m        Affine
	subpaths []Subpath
}

// NewPath returns an empty path whose points are mapped through m.
func NewPath(m Affine) *Path {
	return &Path{m: m}
}

// Subpaths returns the path's subpaths. Callers must not modify them.
func (p *Path) Subpaths() []Subpath {
	return p.subpaths
}

// Empty reports whether the path has no points.
func (p *Path) Empty() bool {
	for _, sp := range p.subpaths {
		if len(sp.Points) > 0 {
			return false
		}
	}
	return true
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) *Path {
	wx, wy := p.m.Apply(x, y)
	p.subpaths = append(p.subpaths, Subpath{Points: []Point{{wx, wy}}})
	return p
}

// LineTo extends the current subpath to (x, y), starting one if needed.
func (p *Path) LineTo(x, y float64) *Path {
	if len(p.subpaths) == 0 || p.current().Closed {
		return p.MoveTo(x, y)
	}
	wx, wy := p.m.Apply(x, y)
	sp := p.current()
	sp.Points = append(sp.Points, Point{wx, wy})
	return p
}

// Close closes the current subpath.
func (p *Path) Close() *Path {
	if len(p.subpaths) > 0 {
		p.current().Closed = true
	}
	return p
}

// Arc adds a circular arc around (cx, cy) from angle start to end, clockwise
// on screen. Like a 2D canvas it joins the arc to the current point.
func (p *Path) Arc(cx, cy, r, start, end float64) *Path {
	return p.Ellipse(cx, cy, r, r, 0, start, end)
}

// Ellipse adds an elliptical arc with radii rx, ry rotated by rotation.
func (p *Path) Ellipse(cx, cy, rx, ry, rotation, start, end float64) *Path {
	sweep := end - start
	turn := turnSegments(math.Max(rx, ry) * p.m.ScaleFactor())
	n := int(math.Ceil(math.Abs(sweep) / (2 * math.Pi) * float64(turn)))
	if n < 1 {
		n = 1
	}
	sin, cos := math.Sincos(rotation)
	for i := 0; i <= n; i++ {
		a := start + sweep*float64(i)/float64(n)
		ex := rx * math.Cos(a)
		ey := ry * math.Sin(a)
		p.LineTo(cx+ex*cos-ey*sin, cy+ex*sin+ey*cos)
	}
	return p
}

// Circle adds a closed circle as its own subpath.
func (p *Path) Circle(cx, cy, r float64) *Path {
	p.subpaths = append(p.subpaths, Subpath{})
	p.Arc(cx, cy, r, 0, 2*math.Pi)
	return p.Close()
}

// Rect adds a closed rectangle as its own subpath.
func (p *Path) Rect(x, y, w, h float64) *Path {
	return p.MoveTo(x, y).LineTo(x+w, y).LineTo(x+w, y+h).LineTo(x, y+h).Close()
}

// Polygon adds a closed polygon from x, y pairs.
func (p *Path) Polygon(xy ...float64) *Path {
	for i := 0; i+1 < len(xy); i += 2 {
		if i == 0 {
			p.MoveTo(xy[i], xy[i+1])
		} else {
			p.LineTo(xy[i], xy[i+1])
		}
	}
	return p.Close()
}

// turnSegments picks a segment count for a full turn at world radius r.
func turnSegments(r float64) int {
	n := int(math.Ceil(r * 2))
	return min(max(n, minTurnSegments), maxTurnSegments)
}

func (p *Path) current() *Subpath {
	return &p.subpaths[len(p.subpaths)-1]
}
