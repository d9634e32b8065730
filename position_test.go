package barglyph

import "testing"

func TestParsePosition(t *testing.T) {
	tests := []struct {
		in   string
		want Position
		ok   bool
	}{
		{"northeast", NorthEast, true},
		{"center", Center, true},
		{"west", West, true},
		{"12,-4", Offset{DX: 12, DY: -4}, true},
		{" 1.5 , 2 ", Offset{DX: 1.5, DY: 2}, true},
		{"bogus", nil, false},
		{"North", nil, false},
		{"1,2,3", nil, false},
		{"12,-4,", Offset{DX: 12, DY: -4}, true},
		{"12,-4,,", Offset{DX: 12, DY: -4}, true},
		{"12,,-4", nil, false},
		{",", nil, false},
		{"1", nil, false},
		{"a,b", nil, false},
		{"", nil, false},
	}
	for _, tt := range tests {
		got, ok := ParsePosition(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParsePosition(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestCompassString(t *testing.T) {
	for _, c := range []Compass{Center, East, North, NorthEast, NorthWest, South, SouthEast, SouthWest, West} {
		got, ok := ParsePosition(c.String())
		if !ok || got != c {
			t.Errorf("round trip of %v gave %v, %v", c, got, ok)
		}
	}
}

func TestPositionAdjust(t *testing.T) {
	subject := Rect{X: 10, Y: 20, W: 100, H: 50}
	label := Rect{W: 20, H: 10}
	tests := []struct {
		name   string
		pos    Position
		anchor Position
		want   Point
	}{
		{"east, no anchor", East, nil, Pt(60, 20)},
		{"center", Center, nil, Pt(10, 20)},
		{"north anchored north", North, North, Pt(10, 0)},
		{"southwest anchored northeast", SouthWest, NorthEast, Pt(-50, 50)},
		{"offset", Offset{DX: 3, DY: -4}, nil, Pt(13, 16)},
		{"offset anchored by offset", Offset{DX: 3, DY: -4}, Offset{DX: 1, DY: 1}, Pt(14, 17)},
		{"compass anchored by offset", West, Offset{DX: -2, DY: 0}, Pt(-42, 20)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := PositionAdjust(subject, label, tt.pos, tt.anchor)
			if !ok {
				t.Fatal("PositionAdjust reported absent")
			}
			if got != tt.want {
				t.Errorf("PositionAdjust = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPositionAdjust_EastScenario(t *testing.T) {
	bbox := Rect{W: 80, H: 40}
	got, ok := PositionAdjust(bbox, Rect{W: 5, H: 5}, East, nil)
	if !ok || got != Pt(bbox.W/2, 0) {
		t.Errorf("PositionAdjust = %v, %v; want (%v, 0)", got, ok, bbox.W/2)
	}
}

func TestPositionAdjust_NilPosition(t *testing.T) {
	if _, ok := PositionAdjust(Rect{W: 1, H: 1}, Rect{}, nil, North); ok {
		t.Error("expected absent result for nil position")
	}
}

func TestAnchorOffset(t *testing.T) {
	label := Rect{X: 99, Y: 99, W: 20, H: 10}
	tests := []struct {
		anchor Position
		want   Point
	}{
		{Center, Point{}},
		{East, Pt(-10, 0)},
		{West, Pt(10, 0)},
		{North, Pt(0, 5)},
		{South, Pt(0, -5)},
		{NorthEast, Pt(-10, 5)},
		{SouthWest, Pt(10, -5)},
		{Offset{DX: 2, DY: 3}, Pt(2, 3)},
		{nil, Point{}},
	}
	for _, tt := range tests {
		if got := AnchorOffset(label, tt.anchor); got != tt.want {
			t.Errorf("AnchorOffset(%v) = %v, want %v", tt.anchor, got, tt.want)
		}
	}
}
