package canvas

import "math"

// Affine is a 2D affine matrix laid out as [a, b, c, d, tx, ty]:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
//
// Affine values are immutable; every operation returns a new matrix.
type Affine [6]float64

// Identity is the identity transform.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// Translation returns a matrix that moves points by (x, y).
func Translation(x, y float64) Affine {
	return Affine{1, 0, 0, 1, x, y}
}

// Scaling returns a matrix that scales points about the origin.
func Scaling(sx, sy float64) Affine {
	return Affine{sx, 0, 0, sy, 0, 0}
}

// Rotation returns a matrix that rotates points by theta radians. Positive
// angles turn clockwise on a y-down surface.
func Rotation(theta float64) Affine {
	sin, cos := math.Sincos(theta)
	return Affine{cos, sin, -sin, cos, 0, 0}
}

// Mul returns m * c: c is applied first, then m.
func (m Affine) Mul(c Affine) Affine {
	return Affine{
		m[0]*c[0] + m[2]*c[1],
		m[1]*c[0] + m[3]*c[1],
		m[0]*c[2] + m[2]*c[3],
		m[1]*c[2] + m[3]*c[3],
		m[0]*c[4] + m[2]*c[5] + m[4],
		m[1]*c[4] + m[3]*c[5] + m[5],
	}
}

// Translate returns m with a local translation applied before it.
func (m Affine) Translate(x, y float64) Affine {
	return m.Mul(Translation(x, y))
}

// Scale returns m with a uniform local scale applied before it.
func (m Affine) Scale(s float64) Affine {
	return m.Mul(Scaling(s, s))
}

// Rotate returns m with a local rotation applied before it.
func (m Affine) Rotate(theta float64) Affine {
	return m.Mul(Rotation(theta))
}

// Apply maps a local point to world coordinates.
func (m Affine) Apply(x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// Invert returns the inverse of m, or Identity if m is singular.
func (m Affine) Invert() Affine {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return Identity
	}
	inv := 1.0 / det
	a := m[3] * inv
	b := -m[1] * inv
	c := -m[2] * inv
	d := m[0] * inv
	return Affine{a, b, c, d, -(a*m[4] + c*m[5]), -(b*m[4] + d*m[5])}
}

// ScaleFactor is the average linear scale of m, used to scale stroke widths
// and arc tessellation.
func (m Affine) ScaleFactor() float64 {
	return math.Sqrt(math.Abs(m[0]*m[3] - m[2]*m[1]))
}
