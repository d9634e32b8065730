package barglyph

import (
	"errors"
	"testing"
)

func TestNewBarLayer_Invalid(t *testing.T) {
	_, err := NewBarLayer(BarSpec{Count: 2, Index: 2}, ColorGray)
	if !errors.Is(err, ErrInvalidBarIndex) {
		t.Errorf("err = %v, want ErrInvalidBarIndex", err)
	}
}

func TestNewLabelLayer_NoShaper(t *testing.T) {
	_, err := NewLabelLayer(BarSpec{Count: 1, Baseline: 0.5}, NewLabelSpec("a"), nil)
	if !errors.Is(err, ErrNoShaper) {
		t.Errorf("err = %v, want ErrNoShaper", err)
	}
}

func TestLayer_BarShape(t *testing.T) {
	spec := BarSpec{Count: 2, RangeMax: 10, Baseline: 0.5, Value: 10}

	first, err := NewBarLayer(spec, ColorGray)
	if err != nil {
		t.Fatalf("NewBarLayer: %v", err)
	}
	p, ok, err := first.Shape()
	if err != nil || !ok {
		t.Fatalf("Shape: ok=%v err=%v", ok, err)
	}
	// Axis zero line plus the bar.
	if p.Len() != 10 {
		t.Errorf("slot 0 has %d segments, want 10", p.Len())
	}

	second, err := NewBarLayer(spec.At(1), ColorGray)
	if err != nil {
		t.Fatalf("NewBarLayer: %v", err)
	}
	p, _, _ = second.Shape()
	if p.Len() != 5 {
		t.Errorf("slot 1 has %d segments, want 5", p.Len())
	}
	if want := (Rect{X: 0, Y: -25, W: 50, H: 25}); !rectApprox(p.Bounds(), want) {
		t.Errorf("Bounds = %+v, want %+v", p.Bounds(), want)
	}
}

func TestLayer_Paints(t *testing.T) {
	spec := BarSpec{Count: 1, RangeMax: 1, Baseline: 0.5, StrokeWidth: 0.25}
	bar, _ := NewBarLayer(spec, NewColor("FF0000"))
	if bar.Kind() != LayerBar {
		t.Errorf("Kind = %v", bar.Kind())
	}
	if bar.Paint() != NewColor("FF0000") || bar.StrokePaint() != ColorBlack {
		t.Errorf("paints = %v, %v", bar.Paint(), bar.StrokePaint())
	}
	if bar.StrokeWidth() != 0.25 {
		t.Errorf("bar StrokeWidth = %v", bar.StrokeWidth())
	}

	label, err := NewLabelLayer(spec, NewLabelSpec("x"), MonoShaper{})
	if err != nil {
		t.Fatalf("NewLabelLayer: %v", err)
	}
	if label.Kind() != LayerLabel || label.StrokeWidth() != 0 {
		t.Errorf("label kind %v stroke %v", label.Kind(), label.StrokeWidth())
	}
}

func TestLayer_TransformLeavesReceiver(t *testing.T) {
	spec := BarSpec{Count: 1, RangeMax: 10, Baseline: 0.5, Value: 10}
	l, err := NewBarLayer(spec, ColorGray)
	if err != nil {
		t.Fatalf("NewBarLayer: %v", err)
	}
	before, _, _ := l.Shape()

	big := l.Transform(Scale(2, 2))
	if l.Bounds() != DefaultBounds {
		t.Errorf("receiver bounds changed to %+v", l.Bounds())
	}
	if want := (Rect{W: 200, H: 100}); big.Bounds() != want {
		t.Errorf("transformed bounds = %+v, want %+v", big.Bounds(), want)
	}

	after, _, _ := l.Shape()
	if before.Bounds() != after.Bounds() {
		t.Errorf("receiver shape changed: %+v -> %+v", before.Bounds(), after.Bounds())
	}
	p, _, _ := big.Shape()
	if want := (Rect{X: -100, Y: -50, W: 200, H: 50}); !rectApprox(p.Bounds(), want) {
		t.Errorf("transformed shape bounds = %+v, want %+v", p.Bounds(), want)
	}
}

func TestLayer_LabelShape(t *testing.T) {
	spec := BarSpec{Count: 1, RangeMax: 10, Baseline: 0.5}
	ls := NewLabelSpec("ab")
	ls.Font = mono10
	ls.Rotation = 0
	l, err := NewLabelLayer(spec, ls, MonoShaper{})
	if err != nil {
		t.Fatalf("NewLabelLayer: %v", err)
	}
	p, ok, err := l.Shape()
	if err != nil || !ok {
		t.Fatalf("Shape: ok=%v err=%v", ok, err)
	}
	// Hangs half a font size below the zero-height bar, left aligned on its
	// centre.
	want := Rect{X: 0, Y: 1.5, W: 12, H: 7}
	if !rectApprox(p.Bounds(), want) {
		t.Errorf("Bounds = %+v, want %+v", p.Bounds(), want)
	}
}

func TestLayer_LabelTooLargeIsAbsent(t *testing.T) {
	spec := BarSpec{Count: 100, RangeMax: 10, Baseline: 0.5}
	ls := NewLabelSpec("a very long category name")
	ls.Font = mono10
	l, err := NewLabelLayer(spec, ls, MonoShaper{})
	if err != nil {
		t.Fatalf("NewLabelLayer: %v", err)
	}
	if _, ok, err := l.Shape(); ok || err != nil {
		t.Errorf("Shape: ok=%v err=%v, want absent", ok, err)
	}
}

func TestLayer_TickLabels(t *testing.T) {
	spec := BarSpec{Count: 1, RangeMin: -5, RangeMax: 10, Baseline: 0.5, ShowAxes: true}
	ls := NewLabelSpec("")
	ls.Font = mono10
	l, err := NewLabelLayer(spec, ls, MonoShaper{})
	if err != nil {
		t.Fatalf("NewLabelLayer: %v", err)
	}
	p, ok, err := l.Shape()
	if err != nil || !ok {
		t.Fatalf("Shape: ok=%v err=%v", ok, err)
	}
	// "10.0", "-5.0" and "0.0" right-aligned one font size left of x=-50.
	b := p.Bounds()
	if !approx(b.MaxX(), -60) || !approx(b.MinX(), -84) {
		t.Errorf("tick labels span x [%v, %v], want [-84, -60]", b.MinX(), b.MaxX())
	}
	if !approx(b.MinY(), -28.5) || !approx(b.MaxY(), 16) {
		t.Errorf("tick labels span y [%v, %v], want [-28.5, 16]", b.MinY(), b.MaxY())
	}
}

func TestLayer_TickTextNormalized(t *testing.T) {
	spec := BarSpec{Count: 1, RangeMin: -5, RangeMax: 10, Normalized: true, Baseline: 0.5, ShowAxes: true}
	l, err := NewLabelLayer(spec, NewLabelSpec(""), MonoShaper{})
	if err != nil {
		t.Fatalf("NewLabelLayer: %v", err)
	}
	tests := []struct {
		v    float64
		want string
	}{
		{-1, "-5.0"},
		{1, "10.0"},
		{0, "0.0"},
	}
	for _, tt := range tests {
		if got := l.tickText(tt.v); got != tt.want {
			t.Errorf("tickText(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestPathLayer(t *testing.T) {
	l := NewPathLayer(RectPath(Rect{X: 1, Y: 2, W: 3, H: 4}), ColorBlack)
	moved := l.Transform(Translate(10, 0))
	p, ok, err := moved.Shape()
	if err != nil || !ok {
		t.Fatalf("Shape: ok=%v err=%v", ok, err)
	}
	if want := (Rect{X: 11, Y: 2, W: 3, H: 4}); p.Bounds() != want {
		t.Errorf("Bounds = %+v, want %+v", p.Bounds(), want)
	}
	if moved.StrokeWidth() != 0 {
		t.Errorf("path layers are not stroked")
	}
}
