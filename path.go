package barglyph

import (
	"math"
	"strconv"
	"strings"
)

// SegmentOp is the drawing operation of a path segment.
type SegmentOp uint8

const (
	SegmentMoveTo SegmentOp = iota
	SegmentLineTo
	SegmentQuadTo
	SegmentCubeTo
	SegmentClose
)

// Segment is one path operation. Args holds up to three points depending on
// Op: one for MoveTo and LineTo, two for QuadTo, three for CubeTo and none
// for Close.
type Segment struct {
	Op   SegmentOp
	Args [3]Point
}

// Points returns the points the segment uses.
func (s Segment) Points() []Point {
	switch s.Op {
	case SegmentMoveTo, SegmentLineTo:
		return s.Args[:1]
	case SegmentQuadTo:
		return s.Args[:2]
	case SegmentCubeTo:
		return s.Args[:3]
	}
	return nil
}

// Path is a 2D outline made of one or more sub-paths, filled with the
// non-zero winding rule. It is the shape value every component exchanges.
// Operations that derive a new outline never touch the receiver.
type Path struct {
	segs []Segment
}

// RectPath returns the closed outline of r, traced clockwise from its
// top-left corner.
func RectPath(r Rect) Path {
	var p Path
	p.AddRect(r)
	return p.clip()
}

// AddRect appends the closed outline of r as a new sub-path.
func (p *Path) AddRect(r Rect) {
	p.MoveTo(r.X, r.Y)
	p.LineTo(r.MaxX(), r.Y)
	p.LineTo(r.MaxX(), r.MaxY())
	p.LineTo(r.X, r.MaxY())
	p.Close()
}

// MoveTo starts a new sub-path at (x, y).
func (p *Path) MoveTo(x, y float64) {
	p.segs = append(p.segs, Segment{Op: SegmentMoveTo, Args: [3]Point{Pt(x, y)}})
}

// LineTo adds a straight segment to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.segs = append(p.segs, Segment{Op: SegmentLineTo, Args: [3]Point{Pt(x, y)}})
}

// QuadTo adds a quadratic Bézier with control point (cx, cy).
func (p *Path) QuadTo(cx, cy, x, y float64) {
	p.segs = append(p.segs, Segment{Op: SegmentQuadTo, Args: [3]Point{Pt(cx, cy), Pt(x, y)}})
}

// CubeTo adds a cubic Bézier with control points (c1x, c1y) and (c2x, c2y).
func (p *Path) CubeTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.segs = append(p.segs, Segment{Op: SegmentCubeTo, Args: [3]Point{Pt(c1x, c1y), Pt(c2x, c2y), Pt(x, y)}})
}

// Close closes the current sub-path.
func (p *Path) Close() {
	p.segs = append(p.segs, Segment{Op: SegmentClose})
}

// clip caps the backing array so appending to a copy never writes into
// storage another Path still references.
func (p Path) clip() Path {
	return Path{segs: p.segs[:len(p.segs):len(p.segs)]}
}

// Segments returns a copy of the path's segments.
func (p Path) Segments() []Segment {
	out := make([]Segment, len(p.segs))
	copy(out, p.segs)
	return out
}

// Len returns the number of segments.
func (p Path) Len() int { return len(p.segs) }

// IsEmpty reports whether the path has no segments.
func (p Path) IsEmpty() bool { return len(p.segs) == 0 }

// Append returns a composite path holding p followed by every other path.
// Overlapping sub-paths with the same orientation fill as their union.
func (p Path) Append(others ...Path) Path {
	n := len(p.segs)
	for _, o := range others {
		n += len(o.segs)
	}
	segs := make([]Segment, 0, n)
	segs = append(segs, p.segs...)
	for _, o := range others {
		segs = append(segs, o.segs...)
	}
	return Path{segs: segs}
}

// Transform returns p mapped through t.
func (p Path) Transform(t Transform) Path {
	segs := make([]Segment, len(p.segs))
	for i, s := range p.segs {
		segs[i].Op = s.Op
		for j := range s.Points() {
			segs[i].Args[j] = t.Apply(s.Args[j])
		}
	}
	return Path{segs: segs}
}

// Bounds returns the tight bounding box of the path, curve extrema included.
// An empty path has zero bounds.
func (p Path) Bounds() Rect {
	var (
		b     bbox
		cur   Point
		start Point
	)
	for _, s := range p.segs {
		switch s.Op {
		case SegmentMoveTo:
			cur, start = s.Args[0], s.Args[0]
			b.add(cur)
		case SegmentLineTo:
			cur = s.Args[0]
			b.add(cur)
		case SegmentQuadTo:
			b.add(s.Args[1])
			for _, t := range quadExtrema(cur, s.Args[0], s.Args[1]) {
				b.add(quadAt(cur, s.Args[0], s.Args[1], t))
			}
			cur = s.Args[1]
		case SegmentCubeTo:
			b.add(s.Args[2])
			for _, t := range cubeExtrema(cur, s.Args[0], s.Args[1], s.Args[2]) {
				b.add(cubeAt(cur, s.Args[0], s.Args[1], s.Args[2], t))
			}
			cur = s.Args[2]
		case SegmentClose:
			cur = start
		}
	}
	return b.rect()
}

// SVG returns the path in SVG path-data syntax.
func (p Path) SVG() string {
	var sb strings.Builder
	for i, s := range p.segs {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch s.Op {
		case SegmentMoveTo:
			sb.WriteString("M")
		case SegmentLineTo:
			sb.WriteString("L")
		case SegmentQuadTo:
			sb.WriteString("Q")
		case SegmentCubeTo:
			sb.WriteString("C")
		case SegmentClose:
			sb.WriteString("Z")
			continue
		}
		for j, pt := range s.Points() {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(svgNumber(pt.X))
			sb.WriteByte(' ')
			sb.WriteString(svgNumber(pt.Y))
		}
	}
	return sb.String()
}

func svgNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', 3, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}

// Polyline is a flattened sub-path.
type Polyline struct {
	Points []Point
	Closed bool
}

// curveSteps is the number of line pieces each Bézier is split into when
// flattening.
const curveSteps = 16

// Flatten converts the path to polylines, approximating curves with
// straight pieces.
func (p Path) Flatten() []Polyline {
	var (
		out []Polyline
		cur *Polyline
		pen Point
	)
	flush := func() {
		if cur != nil && len(cur.Points) > 0 {
			out = append(out, *cur)
		}
		cur = nil
	}
	ensure := func() {
		if cur == nil {
			cur = &Polyline{Points: []Point{pen}}
		}
	}
	for _, s := range p.segs {
		switch s.Op {
		case SegmentMoveTo:
			flush()
			pen = s.Args[0]
			cur = &Polyline{Points: []Point{pen}}
		case SegmentLineTo:
			ensure()
			pen = s.Args[0]
			cur.Points = append(cur.Points, pen)
		case SegmentQuadTo:
			ensure()
			for i := 1; i <= curveSteps; i++ {
				cur.Points = append(cur.Points, quadAt(pen, s.Args[0], s.Args[1], float64(i)/curveSteps))
			}
			pen = s.Args[1]
		case SegmentCubeTo:
			ensure()
			for i := 1; i <= curveSteps; i++ {
				cur.Points = append(cur.Points, cubeAt(pen, s.Args[0], s.Args[1], s.Args[2], float64(i)/curveSteps))
			}
			pen = s.Args[2]
		case SegmentClose:
			if cur != nil {
				cur.Closed = true
				pen = cur.Points[0]
			}
			flush()
		}
	}
	flush()
	return out
}

type bbox struct {
	minX, minY, maxX, maxY float64
	set                    bool
}

func (b *bbox) add(p Point) {
	if !b.set {
		b.minX, b.maxX = p.X, p.X
		b.minY, b.maxY = p.Y, p.Y
		b.set = true
		return
	}
	b.minX = math.Min(b.minX, p.X)
	b.maxX = math.Max(b.maxX, p.X)
	b.minY = math.Min(b.minY, p.Y)
	b.maxY = math.Max(b.maxY, p.Y)
}

func (b bbox) rect() Rect {
	if !b.set {
		return Rect{}
	}
	return Rect{X: b.minX, Y: b.minY, W: b.maxX - b.minX, H: b.maxY - b.minY}
}

func quadAt(p0, p1, p2 Point, t float64) Point {
	mt := 1 - t
	return Point{
		X: mt*mt*p0.X + 2*mt*t*p1.X + t*t*p2.X,
		Y: mt*mt*p0.Y + 2*mt*t*p1.Y + t*t*p2.Y,
	}
}

func cubeAt(p0, p1, p2, p3 Point, t float64) Point {
	mt := 1 - t
	a, b, c, d := mt*mt*mt, 3*mt*mt*t, 3*mt*t*t, t*t*t
	return Point{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}

func quadExtrema(p0, p1, p2 Point) []float64 {
	var ts []float64
	for _, v := range [2][3]float64{{p0.X, p1.X, p2.X}, {p0.Y, p1.Y, p2.Y}} {
		den := v[0] - 2*v[1] + v[2]
		if den == 0 {
			continue
		}
		if t := (v[0] - v[1]) / den; t > 0 && t < 1 {
			ts = append(ts, t)
		}
	}
	return ts
}

func cubeExtrema(p0, p1, p2, p3 Point) []float64 {
	var ts []float64
	for _, v := range [2][4]float64{{p0.X, p1.X, p2.X, p3.X}, {p0.Y, p1.Y, p2.Y, p3.Y}} {
		a := v[1] - v[0]
		b := v[2] - v[1]
		c := v[3] - v[2]
		// derivative / 3 = (a-2b+c)t² + 2(b-a)t + a
		qa, qb, qc := a-2*b+c, 2*(b-a), a
		for _, t := range solveQuadratic(qa, qb, qc) {
			if t > 0 && t < 1 {
				ts = append(ts, t)
			}
		}
	}
	return ts
}

func solveQuadratic(a, b, c float64) []float64 {
	if a == 0 {
		if b == 0 {
			return nil
		}
		return []float64{-c / b}
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return nil
	}
	sq := math.Sqrt(disc)
	return []float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)}
}
