package barglyph

import (
	"strconv"
	"strings"
)

// Position is where something is placed relative to a box: either a
// Compass point or an explicit Offset. The set of implementations is closed.
type Position interface {
	isPosition()
	String() string
}

// Compass is the centre of a box or one of its eight compass points.
type Compass int

const (
	Center Compass = iota
	East
	North
	NorthEast
	NorthWest
	South
	SouthEast
	SouthWest
	West
)

var compassNames = [...]string{
	Center:    "center",
	East:      "east",
	North:     "north",
	NorthEast: "northeast",
	NorthWest: "northwest",
	South:     "south",
	SouthEast: "southeast",
	SouthWest: "southwest",
	West:      "west",
}

// compassUnit holds the direction of each compass point in screen space
// (Y down), in half-box units.
var compassUnit = [...]Point{
	Center:    {0, 0},
	East:      {1, 0},
	North:     {0, -1},
	NorthEast: {1, -1},
	NorthWest: {-1, -1},
	South:     {0, 1},
	SouthEast: {1, 1},
	SouthWest: {-1, 1},
	West:      {-1, 0},
}

var compassByName = func() map[string]Compass {
	m := make(map[string]Compass, len(compassNames))
	for c, name := range compassNames {
		m[name] = Compass(c)
	}
	return m
}()

func (Compass) isPosition() {}

func (c Compass) String() string {
	if c < 0 || int(c) >= len(compassNames) {
		return "center"
	}
	return compassNames[c]
}

func (c Compass) unit() Point {
	if c < 0 || int(c) >= len(compassUnit) {
		return Point{}
	}
	return compassUnit[c]
}

// Offset is an explicit displacement.
type Offset struct {
	DX, DY float64
}

func (Offset) isPosition() {}

func (o Offset) String() string {
	return strconv.FormatFloat(o.DX, 'g', -1, 64) + "," + strconv.FormatFloat(o.DY, 'g', -1, 64)
}

// ParsePosition resolves a compass keyword ("northeast") or a literal "x,y"
// pair ("12,-4"). Keywords are case-sensitive. Anything else reports false
// and callers should apply no adjustment.
func ParsePosition(s string) (Position, bool) {
	if c, ok := compassByName[s]; ok {
		return c, true
	}
	xy := strings.Split(s, ",")
	// Trailing empty fields are ignored, so "12,-4," is still a pair.
	for len(xy) > 0 && xy[len(xy)-1] == "" {
		xy = xy[:len(xy)-1]
	}
	if len(xy) != 2 {
		return nil, false
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xy[0]), 64)
	if err != nil {
		return nil, false
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(xy[1]), 64)
	if err != nil {
		return nil, false
	}
	return Offset{DX: x, DY: y}, true
}

// PositionAdjust computes where a label box goes relative to a subject box.
// It starts at the subject's origin, moves by half the subject size toward
// pos (or by pos itself when it is an Offset), then applies the anchor
// correction from AnchorOffset. A nil pos reports false; a nil anchor means
// no correction.
func PositionAdjust(subject, label Rect, pos, anchor Position) (Point, bool) {
	if pos == nil {
		return Point{}, false
	}
	p := subject.Min()
	switch v := pos.(type) {
	case Compass:
		u := v.unit()
		p = p.Add(Pt(u.X*subject.W/2, u.Y*subject.H/2))
	case Offset:
		p = p.Add(Pt(v.DX, v.DY))
	}
	if anchor != nil {
		p = p.Add(AnchorOffset(label, anchor))
	}
	return p, true
}

// AnchorOffset returns the correction that puts the given point of the label
// box on the target. Anchoring on the label's east side pulls it west by half
// its width, and so on; an Offset anchor is added as is.
func AnchorOffset(label Rect, anchor Position) Point {
	switch v := anchor.(type) {
	case Compass:
		u := v.unit()
		return Pt(-u.X*label.W/2, -u.Y*label.H/2)
	case Offset:
		return Pt(v.DX, v.DY)
	}
	return Point{}
}
