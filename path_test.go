package barglyph

import (
	"math"
	"testing"
)

func TestPath_BoundsWithCurves(t *testing.T) {
	var quad Path
	quad.MoveTo(0, 0)
	quad.QuadTo(5, 10, 10, 0)
	if want := (Rect{W: 10, H: 5}); !rectApprox(quad.Bounds(), want) {
		t.Errorf("quad Bounds = %+v, want %+v", quad.Bounds(), want)
	}

	var cube Path
	cube.MoveTo(0, 0)
	cube.CubeTo(0, 10, 10, 10, 10, 0)
	if want := (Rect{W: 10, H: 7.5}); !rectApprox(cube.Bounds(), want) {
		t.Errorf("cube Bounds = %+v, want %+v", cube.Bounds(), want)
	}

	if b := (Path{}).Bounds(); b != (Rect{}) {
		t.Errorf("empty Bounds = %+v", b)
	}
}

func TestPath_SVG(t *testing.T) {
	got := RectPath(Rect{X: 0, Y: -1, W: 1.5, H: 2.25}).SVG()
	want := "M0 -1 L1.5 -1 L1.5 1.25 L0 1.25 Z"
	if got != want {
		t.Errorf("SVG = %q, want %q", got, want)
	}

	var p Path
	p.MoveTo(1.0004, 0)
	p.QuadTo(2, 2, 3, 0)
	if got, want := p.SVG(), "M1 0 Q2 2 3 0"; got != want {
		t.Errorf("SVG = %q, want %q", got, want)
	}
}

func TestPath_AppendDoesNotAlias(t *testing.T) {
	a := RectPath(Rect{W: 1, H: 1})
	b := a.Append(RectPath(Rect{X: 5, W: 1, H: 1}))
	c := a.Append(RectPath(Rect{X: -5, W: 1, H: 1}))
	if a.Len() != 5 || b.Len() != 10 || c.Len() != 10 {
		t.Fatalf("lengths %d, %d, %d", a.Len(), b.Len(), c.Len())
	}
	if b.Bounds().MaxX() != 6 || c.Bounds().MinX() != -5 {
		t.Errorf("appended paths share storage: %+v, %+v", b.Bounds(), c.Bounds())
	}
}

func TestPath_Flatten(t *testing.T) {
	var p Path
	p.AddRect(Rect{W: 2, H: 2})
	p.MoveTo(10, 10)
	p.QuadTo(11, 12, 12, 10)

	lines := p.Flatten()
	if len(lines) != 2 {
		t.Fatalf("got %d polylines, want 2", len(lines))
	}
	if !lines[0].Closed || len(lines[0].Points) != 4 {
		t.Errorf("rect polyline: closed=%v points=%d", lines[0].Closed, len(lines[0].Points))
	}
	if lines[1].Closed || len(lines[1].Points) != curveSteps+1 {
		t.Errorf("curve polyline: closed=%v points=%d", lines[1].Closed, len(lines[1].Points))
	}
	if last := lines[1].Points[curveSteps]; last != Pt(12, 10) {
		t.Errorf("curve ends at %v", last)
	}
}

func TestTransform(t *testing.T) {
	p := Pt(1, 2)
	if got := Translate(3, 4).Apply(p); got != Pt(4, 6) {
		t.Errorf("Translate = %v", got)
	}
	if got := Scale(2, 3).Apply(p); got != Pt(2, 6) {
		t.Errorf("Scale = %v", got)
	}
	// Y points down, so a positive quarter turn takes +X to +Y.
	if got := Rotate(math.Pi / 2).Apply(Pt(1, 0)); got != Pt(0, 1) {
		t.Errorf("Rotate = %v", got)
	}
	if got := RotateAbout(math.Pi, 1, 1).Apply(Pt(2, 1)); !approx(got.X, 0) || !approx(got.Y, 1) {
		t.Errorf("RotateAbout = %v", got)
	}
	// Mul applies the right operand first.
	if got := Translate(1, 0).Mul(Scale(2, 2)).Apply(p); got != Pt(3, 4) {
		t.Errorf("Mul = %v", got)
	}
	if !Identity.IsIdentity() || Scale(2, 2).IsIdentity() {
		t.Error("IsIdentity")
	}
}

func TestTransform_ApplyRect(t *testing.T) {
	r := Rect{W: 4, H: 2}
	got := Rotate(math.Pi / 2).ApplyRect(r)
	if want := (Rect{X: -2, Y: 0, W: 2, H: 4}); got != want {
		t.Errorf("ApplyRect = %+v, want %+v", got, want)
	}
}

func TestRectToRect(t *testing.T) {
	m := RectToRect(Rect{X: 0, Y: 0, W: 100, H: 50}, Rect{X: 10, Y: 20, W: 200, H: 25})
	if got := m.ApplyRect(DefaultBounds); got != (Rect{X: 10, Y: 20, W: 200, H: 25}) {
		t.Errorf("RectToRect maps to %+v", got)
	}
}

func TestRect_Union(t *testing.T) {
	got := Rect{X: 0, Y: 0, W: 1, H: 1}.Union(Rect{X: 2, Y: -1, W: 1, H: 1})
	if want := (Rect{X: 0, Y: -1, W: 3, H: 2}); got != want {
		t.Errorf("Union = %+v, want %+v", got, want)
	}
}
