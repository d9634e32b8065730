package barglyph

// BuildAxes returns the axis outline for a layout: the zero line running from
// the left edge of the first slot to the right edge of the last, traced as a
// closed rectangle of zero height. With spec.ShowAxes a vertical segment is
// added at the first slot, from the bottom of the bar for the range minimum
// to the top of the bar for the range maximum.
func BuildAxes(bounds Rect, spec BarSpec) Path {
	if spec.Count < 1 {
		return Path{}
	}
	first := ComputeBar(bounds, spec.At(0), 0)
	last := ComputeBar(bounds, spec.At(spec.Count-1), 0)
	y := ZeroLine(bounds, spec)

	// The zero line stays a closed subpath.
	var p Path
	p.MoveTo(first.X, y)
	p.LineTo(last.MaxX(), y)
	p.LineTo(last.MaxX(), y)
	p.LineTo(first.X, y)
	p.Close()

	if spec.ShowAxes {
		lo, hi := spec.EffectiveRange()
		bottom := ComputeBar(bounds, spec.At(0), lo)
		top := ComputeBar(bounds, spec.At(0), hi)
		p.MoveTo(bottom.X, bottom.MaxY())
		p.LineTo(top.X, top.MinY())
	}
	return p.clip()
}
