package barglyph

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Point is a location in chart coordinates. The Y axis increases downward.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Rect is an axis-aligned rectangle given by its top-left corner and size.
type Rect struct {
	X, Y float64
	W, H float64
}

// DefaultBounds is the logical box every layer is laid out in before it is
// transformed onto its output bounds.
var DefaultBounds = Rect{X: 0, Y: 0, W: 100, H: 50}

func (r Rect) MinX() float64    { return r.X }
func (r Rect) MinY() float64    { return r.Y }
func (r Rect) MaxX() float64    { return r.X + r.W }
func (r Rect) MaxY() float64    { return r.Y + r.H }
func (r Rect) CenterX() float64 { return r.X + r.W/2 }
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Min returns the top-left corner.
func (r Rect) Min() Point { return Point{X: r.X, Y: r.Y} }

// Empty reports whether the rectangle encloses no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	minX := math.Min(r.X, o.X)
	minY := math.Min(r.Y, o.Y)
	maxX := math.Max(r.MaxX(), o.MaxX())
	maxY := math.Max(r.MaxY(), o.MaxY())
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Transform is a 2D affine matrix stored in row-major order with an implicit
// bottom row of [0 0 1]:
//
//	| t[0] t[1] t[2] |
//	| t[3] t[4] t[5] |
type Transform f64.Aff3

// Identity leaves every point where it is.
var Identity = Transform{1, 0, 0, 0, 1, 0}

// Translate returns a translation by (dx, dy).
func Translate(dx, dy float64) Transform {
	return Transform{1, 0, dx, 0, 1, dy}
}

// Scale returns a scale by (sx, sy) about the origin.
func Scale(sx, sy float64) Transform {
	return Transform{sx, 0, 0, 0, sy, 0}
}

// Rotate returns a rotation by theta radians about the origin. With Y
// pointing down a positive angle turns clockwise on screen.
func Rotate(theta float64) Transform {
	sin, cos := math.Sincos(theta)
	// Snap quadrant rotations so 90 degree turns stay exact.
	if sin == 1 || sin == -1 {
		cos = 0
	} else if cos == 1 || cos == -1 {
		sin = 0
	}
	return Transform{cos, -sin, 0, sin, cos, 0}
}

// RotateAbout returns a rotation by theta radians about (px, py).
func RotateAbout(theta, px, py float64) Transform {
	return Translate(px, py).Mul(Rotate(theta)).Mul(Translate(-px, -py))
}

// Mul returns the concatenation t·u: u is applied first, then t.
func (t Transform) Mul(u Transform) Transform {
	return Transform{
		t[0]*u[0] + t[1]*u[3],
		t[0]*u[1] + t[1]*u[4],
		t[0]*u[2] + t[1]*u[5] + t[2],
		t[3]*u[0] + t[4]*u[3],
		t[3]*u[1] + t[4]*u[4],
		t[3]*u[2] + t[4]*u[5] + t[5],
	}
}

// Apply maps p through t.
func (t Transform) Apply(p Point) Point {
	return Point{
		X: t[0]*p.X + t[1]*p.Y + t[2],
		Y: t[3]*p.X + t[4]*p.Y + t[5],
	}
}

// ApplyRect returns the bounding box of r after mapping its corners through t.
func (t Transform) ApplyRect(r Rect) Rect {
	corners := [4]Point{
		t.Apply(Pt(r.X, r.Y)),
		t.Apply(Pt(r.MaxX(), r.Y)),
		t.Apply(Pt(r.MaxX(), r.MaxY())),
		t.Apply(Pt(r.X, r.MaxY())),
	}
	minX, minY := corners[0].X, corners[0].Y
	maxX, maxY := minX, minY
	for _, c := range corners[1:] {
		minX = math.Min(minX, c.X)
		minY = math.Min(minY, c.Y)
		maxX = math.Max(maxX, c.X)
		maxY = math.Max(maxY, c.Y)
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// IsIdentity reports whether t is exactly the identity.
func (t Transform) IsIdentity() bool {
	return t == Identity
}

// RectToRect returns the transform mapping src onto dst, scaling each axis
// independently.
func RectToRect(src, dst Rect) Transform {
	sx, sy := 1.0, 1.0
	if src.W != 0 {
		sx = dst.W / src.W
	}
	if src.H != 0 {
		sy = dst.H / src.H
	}
	return Translate(dst.X, dst.Y).Mul(Scale(sx, sy)).Mul(Translate(-src.X, -src.Y))
}
