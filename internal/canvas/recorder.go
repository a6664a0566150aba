package canvas

import "image/color"

// OpKind identifies a recorded drawing call.
type OpKind int

const (
	OpClear OpKind = iota
	OpFill
	OpStroke
	OpGradient
)

func (k OpKind) String() string {
	switch k {
	case OpClear:
		return "clear"
	case OpFill:
		return "fill"
	case OpStroke:
		return "stroke"
	case OpGradient:
		return "gradient"
	}
	return "unknown"
}

// Op is one recorded drawing call.
type Op struct {
	Kind     OpKind
	Subpaths []Subpath
	Width    float64
	Color    color.NRGBA
	Rect     [4]float64
	Gradient Gradient
}

// Recorder is a Surface that records calls instead of drawing pixels.
type Recorder struct {
	Ops []Op
}

// Reset drops all recorded operations.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

func (r *Recorder) Clear() {
	r.Ops = append(r.Ops, Op{Kind: OpClear})
}

func (r *Recorder) Fill(p *Path, c color.NRGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpFill, Subpaths: cloneSubpaths(p.Subpaths()), Color: c})
}

func (r *Recorder) Stroke(p *Path, width float64, c color.NRGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpStroke, Subpaths: cloneSubpaths(p.Subpaths()), Width: width, Color: c})
}

func (r *Recorder) FillGradient(x0, y0, x1, y1 float64, g Gradient) {
	stops := make(Gradient, len(g))
	copy(stops, g)
	r.Ops = append(r.Ops, Op{Kind: OpGradient, Rect: [4]float64{x0, y0, x1, y1}, Gradient: stops})
}

// Count returns how many recorded operations are of kind k.
func (r *Recorder) Count(k OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}

func cloneSubpaths(src []Subpath) []Subpath {
	out := make([]Subpath, len(src))
	for i, sp := range src {
		pts := make([]Point, len(sp.Points))
		copy(pts, sp.Points)
		out[i] = Subpath{Points: pts, Closed: sp.Closed}
	}
	return out
}
