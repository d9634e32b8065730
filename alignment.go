package barglyph

// Alignment tells PlaceLabel which point of the text box lands on the
// target point.
type Alignment int

const (
	AlignNone Alignment = iota
	AlignLeft
	AlignCenter
	AlignCenterTop
	AlignRight
	AlignCenterBottom
	AlignMiddle
)

var alignmentNames = [...]string{
	AlignNone:         "none",
	AlignLeft:         "left",
	AlignCenter:       "center",
	AlignCenterTop:    "center_top",
	AlignRight:        "right",
	AlignCenterBottom: "center_bottom",
	AlignMiddle:       "middle",
}

// alignmentByName is filled once at init and only read afterwards.
var alignmentByName = func() map[string]Alignment {
	m := make(map[string]Alignment, len(alignmentNames))
	for a, name := range alignmentNames {
		m[name] = Alignment(a)
	}
	return m
}()

// ParseAlignment resolves an alignment keyword such as "center_top". The
// match is case-sensitive.
func ParseAlignment(s string) (Alignment, bool) {
	a, ok := alignmentByName[s]
	return a, ok
}

func (a Alignment) String() string {
	if a < 0 || int(a) >= len(alignmentNames) {
		return "none"
	}
	return alignmentNames[a]
}

// offset returns where the top-left corner of a w×h text box goes relative
// to the target point.
func (a Alignment) offset(w, h float64) (dx, dy float64) {
	switch a {
	case AlignCenterTop:
		return -w / 2, h / 2
	case AlignCenterBottom:
		return -w / 2, -h
	case AlignRight:
		return -w, -h / 2
	case AlignLeft:
		return 0, -h / 2
	case AlignMiddle:
		return -w / 2, -h / 2
	case AlignCenter:
		return -w / 2, 0
	default:
		return 0, 0
	}
}
