package barglyph

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidBarCount    = errors.New("barglyph: bar count must be at least 1")
	ErrInvalidBarIndex    = errors.New("barglyph: bar index out of range")
	ErrNegativeSeparation = errors.New("barglyph: separation must not be negative")
	ErrNegativeStroke     = errors.New("barglyph: stroke width must not be negative")
	ErrBaselineRange      = errors.New("barglyph: baseline must be within [0, 1]")
)

// BarSpec describes one slot of an N-bar layout. It is a plain value: use At
// to look at a different slot of the same layout.
type BarSpec struct {
	Index      int     // slot, 0-based
	Count      int     // number of slots in the layout
	Separation float64 // gap budget between slots
	Value      float64 // bar value; in label mode, the value whose bar anchors the label

	// RangeMin and RangeMax are the data range. When Normalized is set the
	// geometry uses [-1, 1] and these only feed the axis labels.
	RangeMin   float64
	RangeMax   float64
	Normalized bool

	Baseline    float64 // position of the zero line as a fraction of the height
	StrokeWidth float64
	ShowAxes    bool // draw the value-range axis and its tick labels on slot 0
}

// Validate checks the layout parameters.
func (s BarSpec) Validate() error {
	switch {
	case s.Count < 1:
		return fmt.Errorf("%w: got %d", ErrInvalidBarCount, s.Count)
	case s.Index < 0 || s.Index >= s.Count:
		return fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidBarIndex, s.Index, s.Count)
	case s.Separation < 0:
		return ErrNegativeSeparation
	case s.StrokeWidth < 0:
		return ErrNegativeStroke
	case s.Baseline < 0 || s.Baseline > 1:
		return fmt.Errorf("%w: got %g", ErrBaselineRange, s.Baseline)
	}
	return nil
}

// At returns a copy of s positioned on slot i.
func (s BarSpec) At(i int) BarSpec {
	s.Index = i
	return s
}

// WithValue returns a copy of s holding v.
func (s BarSpec) WithValue(v float64) BarSpec {
	s.Value = v
	return s
}

// EffectiveRange is the range the geometry works with: [-1, 1] for
// normalized specs, the data range otherwise.
func (s BarSpec) EffectiveRange() (lo, hi float64) {
	if s.Normalized {
		return -1, 1
	}
	return s.RangeMin, s.RangeMax
}

// Domain returns the symmetric domain [-m, m] where m is the larger
// magnitude of the effective range, so the zero line never moves with the
// sign of the data.
func (s BarSpec) Domain() (lo, hi float64) {
	lo, hi = s.EffectiveRange()
	m := math.Max(math.Abs(lo), math.Abs(hi))
	return -m, m
}

// ZeroLine returns the Y coordinate of the zero line in bounds.
func ZeroLine(bounds Rect, spec BarSpec) float64 {
	return bounds.Y - bounds.H/2 + spec.Baseline*bounds.H
}

// sliceSize is the width of one slot before the stroke is taken out.
func (s BarSpec) sliceSize(width float64) float64 {
	n := float64(s.Count)
	// n bars share n-1 gaps
	size := (width - n*s.Separation + s.Separation) / n
	if size < 1 && s.Separation > 0 {
		size = width / n
	}
	return size
}

// ComputeBar returns the rectangle for value in the slot spec.Index of a
// layout drawn in bounds. bounds is treated as centred on its origin.
// Positive values grow up from the zero line and negative ones down; both
// are inset by the stroke width so the outline is not counted twice. The
// height is never negative. A spec with no slots yields an empty rectangle.
func ComputeBar(bounds Rect, spec BarSpec, value float64) Rect {
	if spec.Count < 1 {
		return Rect{}
	}
	x := bounds.X - bounds.W/2
	y := bounds.Y - bounds.H/2
	sw := spec.StrokeWidth

	slice := spec.sliceSize(bounds.W) - 2*sw
	_, hi := spec.Domain()

	ybase := spec.Baseline * bounds.H
	ratio := 0.0
	if hi != 0 {
		ratio = value / hi
	}

	px := x + float64(spec.Index)*slice + sw
	var py, h float64
	if value > 0 {
		py = y + ybase - ybase*ratio - sw
		h = ybase*ratio + sw/4
	} else {
		py = y + ybase - sw/4
		h = ybase*(-ratio) - sw
	}
	return Rect{X: px, Y: py, W: slice - sw, H: math.Max(h, 0)}
}
