package barglyph

import (
	"math"
)

const (
	// MinLabelScale is the smallest scale a label may be shrunk to. Below it
	// the text is unreadable and the label is dropped.
	MinLabelScale = 0.20

	// labelMargin leaves a little room around a label shrunk to fit.
	labelMargin = 0.9

	// labelLineWidth is the stroke width of connector lines.
	labelLineWidth = 0.5
)

// PlaceLabel scales and positions a text outline. The outline is moved to the
// origin, shrunk uniformly when it is wider than maxWidth or taller than
// maxHeight (zero disables a limit), aligned on at, and finally rotated by
// rotation degrees about at. It reports false when the outline is empty or
// would need to shrink below MinLabelScale.
func PlaceLabel(outline Path, at Point, align Alignment, maxHeight, maxWidth, rotation float64) (Path, bool) {
	if outline.IsEmpty() {
		return Path{}, false
	}
	b := outline.Bounds()
	w, h := b.W, b.H
	scale := 1.0
	if maxHeight > 0 || maxWidth > 0 {
		sw, sh := 1.0, 1.0
		if maxWidth > 0 && w > maxWidth {
			sw = maxWidth / w * labelMargin
		}
		if maxHeight > 0 && h > maxHeight {
			sh = maxHeight / h * labelMargin
		}
		scale = math.Min(sw, sh)
		if scale < MinLabelScale {
			return Path{}, false
		}
		w *= scale
		h *= scale
	}

	dx, dy := align.offset(w, h)
	m := Translate(at.X+dx, at.Y+dy)
	if rotation != 0 {
		m = RotateAbout(rotation*math.Pi/180, at.X, at.Y).Mul(m)
	}
	m = m.Mul(Scale(scale, scale)).Mul(Translate(-b.X, -b.Y))
	return outline.Transform(m), true
}

// LabelShape outlines text with the shaper and places it in one step. It
// reports false for empty text and for labels too large to keep legible.
func LabelShape(shaper TextShaper, spec LabelSpec, at Point) (Path, bool, error) {
	outline, ok, err := BuildOutline(shaper, spec.Text, spec.Font, spec.MaxWidth, spec.LineSpacing)
	if err != nil || !ok {
		return Path{}, false, err
	}
	placed, ok := PlaceLabel(outline, at, spec.Alignment, spec.MaxHeight, spec.MaxWidth, spec.Rotation)
	return placed, ok, nil
}

// LabelLineStart returns the point on a placed label's box a connector line
// leaves from, one unit outside the edge facing the subject. Alignments
// without a facing edge give the origin.
func LabelLineStart(textBounds Rect, align Alignment) Point {
	switch align {
	case AlignCenterTop:
		return Pt(textBounds.CenterX(), textBounds.MinY()-1)
	case AlignCenterBottom:
		return Pt(textBounds.CenterX(), textBounds.MaxY()+1)
	case AlignRight:
		return Pt(textBounds.MaxX()+1, textBounds.CenterY())
	case AlignLeft:
		return Pt(textBounds.MinX()-1, textBounds.CenterY())
	}
	return Point{}
}

// LabelLine returns the outline of a thin connector from a label box to
// target, stroked with square caps.
func LabelLine(textBounds Rect, target Point, align Alignment) Path {
	return strokeSegment(LabelLineStart(textBounds, align), target, labelLineWidth)
}

// strokeSegment outlines the line from a to b at the given width, with the
// caps extended by half the width. The quad is always wound clockwise on
// screen so overlapping strokes fill as a union.
func strokeSegment(a, b Point, width float64) Path {
	hw := width / 2
	dx, dy := b.X-a.X, b.Y-a.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		dx, dy = 1, 0
	} else {
		dx, dy = dx/length, dy/length
	}
	// (nx, ny) is (dx, dy) turned a quarter clockwise on screen.
	nx, ny := -dy, dx
	var p Path
	p.MoveTo(a.X-dx*hw-nx*hw, a.Y-dy*hw-ny*hw)
	p.LineTo(b.X+dx*hw-nx*hw, b.Y+dy*hw-ny*hw)
	p.LineTo(b.X+dx*hw+nx*hw, b.Y+dy*hw+ny*hw)
	p.LineTo(a.X-dx*hw+nx*hw, a.Y-dy*hw+ny*hw)
	p.Close()
	return p.clip()
}

// UniformTransform applies m to p without stretching it. With rescale the
// two axis scales are replaced by the smaller of them; without it scaling
// is dropped and only rotation, shear and translation remain.
func UniformTransform(p Path, m Transform, rescale bool) Path {
	if rescale {
		s := m[0]
		if m[0] != m[4] {
			s = math.Min(m[0], m[4])
		}
		m[0], m[4] = s, s
	} else {
		m[0], m[4] = 1, 1
	}
	return p.Transform(m)
}
