package barglyph

// LayerKind tells what a Layer draws.
type LayerKind int

const (
	LayerBar LayerKind = iota
	LayerLabel
	LayerPath // a fixed outline, such as a chart title
)

func (k LayerKind) String() string {
	switch k {
	case LayerLabel:
		return "label"
	case LayerPath:
		return "path"
	}
	return "bar"
}

// DefaultLabelRotation is the angle, in degrees, category labels are turned
// by so long names fit under narrow bars.
const DefaultLabelRotation = 70.0

// LabelSpec describes a text label. Zero MaxWidth or MaxHeight means no
// limit.
type LabelSpec struct {
	Text        string
	Font        Font
	Color       Color
	Alignment   Alignment
	MaxWidth    float64
	MaxHeight   float64
	Rotation    float64 // degrees, clockwise on screen
	LineSpacing float64
}

// NewLabelSpec returns the label settings used for bar categories: left
// aligned, turned by DefaultLabelRotation, black default font.
func NewLabelSpec(text string) LabelSpec {
	return LabelSpec{
		Text:        text,
		Font:        NewFont(),
		Color:       ColorBlack,
		Alignment:   AlignLeft,
		Rotation:    DefaultLabelRotation,
		LineSpacing: DefaultLineSpacing,
	}
}

// Layer is one drawable slot of a bar chart: either the bar itself or its
// label. Layers never change after construction; Transform returns a new
// one, so they can be shared between goroutines.
type Layer struct {
	kind   LayerKind
	bar    BarSpec
	label  LabelSpec  // label layers only
	shaper TextShaper // label layers only
	path   Path       // path layers only
	fill   Color
	stroke Color
	bounds Rect
}

// NewBarLayer returns a layer drawing the bar for spec.Value, plus the axes
// when spec.Index is 0.
func NewBarLayer(spec BarSpec, fill Color) (*Layer, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &Layer{
		kind:   LayerBar,
		bar:    spec,
		fill:   fill,
		stroke: ColorBlack,
		bounds: DefaultBounds,
	}, nil
}

// NewLabelLayer returns a layer drawing label under the slot spec.Index.
// The label hangs from the bottom edge of the bar for spec.Value, usually
// the chart minimum so every label lines up. On slot 0 with spec.ShowAxes
// the layer also draws the axis tick labels.
func NewLabelLayer(spec BarSpec, label LabelSpec, shaper TextShaper) (*Layer, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if shaper == nil {
		return nil, ErrNoShaper
	}
	label.Font = label.Font.orDefault()
	return &Layer{
		kind:   LayerLabel,
		bar:    spec,
		label:  label,
		shaper: shaper,
		fill:   label.Color,
		stroke: label.Color,
		bounds: DefaultBounds,
	}, nil
}

// NewPathLayer returns a layer that fills p as is. Transform moves the path
// along with the bounds.
func NewPathLayer(p Path, fill Color) *Layer {
	return &Layer{
		kind:   LayerPath,
		path:   p,
		fill:   fill,
		stroke: fill,
		bounds: p.Bounds(),
	}
}

func (l *Layer) Kind() LayerKind    { return l.kind }
func (l *Layer) Spec() BarSpec      { return l.bar }
func (l *Layer) Label() LabelSpec   { return l.label }
func (l *Layer) Bounds() Rect       { return l.bounds }
func (l *Layer) Paint() Color       { return l.fill }
func (l *Layer) StrokePaint() Color { return l.stroke }

// StrokeWidth is the outline width the shape should be stroked with. Only
// bars are stroked.
func (l *Layer) StrokeWidth() float64 {
	if l.kind != LayerBar {
		return 0
	}
	return l.bar.StrokeWidth
}

// Transform returns a copy of the layer laid out in the bounding box of its
// current bounds mapped through m. The receiver is left as is.
func (l *Layer) Transform(m Transform) *Layer {
	nl := *l
	nl.bounds = m.ApplyRect(l.bounds)
	if l.kind == LayerPath {
		nl.path = l.path.Transform(m)
	}
	return &nl
}

// Shape builds the layer's outline. It reports false when there is nothing
// to draw, e.g. a label that would be too small to read.
func (l *Layer) Shape() (Path, bool, error) {
	switch l.kind {
	case LayerLabel:
		return l.labelShape()
	case LayerPath:
		return l.path, !l.path.IsEmpty(), nil
	}
	return l.barShape(), true, nil
}

func (l *Layer) barShape() Path {
	bar := RectPath(ComputeBar(l.bounds, l.bar, l.bar.Value))
	if l.bar.Index == 0 {
		return BuildAxes(l.bounds, l.bar).Append(bar)
	}
	return bar
}

func (l *Layer) labelShape() (Path, bool, error) {
	bar := ComputeBar(l.bounds, l.bar, l.bar.Value)
	at := Pt(bar.CenterX(), bar.MaxY()+l.label.Font.Size/2)

	spec := l.label
	if spec.MaxHeight <= 0 {
		spec.MaxHeight = bar.W
	}
	text, ok, err := LabelShape(l.shaper, spec, at)
	if err != nil {
		return Path{}, false, err
	}
	if l.bar.Index != 0 || !l.bar.ShowAxes {
		return text, ok, nil
	}

	lo, hi := l.bar.EffectiveRange()
	ticks := []float64{lo, hi}
	if lo < 0 && hi > 0 {
		ticks = append(ticks, 0)
	}
	var out Path
	for _, v := range ticks {
		tick, tok, err := l.tickLabel(v)
		if err != nil {
			return Path{}, false, err
		}
		if tok {
			out = out.Append(tick)
		}
	}
	if ok {
		out = out.Append(text)
	}
	return out, !out.IsEmpty(), nil
}

// tickLabel draws the axis text for v, right-aligned one font size left of
// the first slot at the height of v's bar end.
func (l *Layer) tickLabel(v float64) (Path, bool, error) {
	bar := ComputeBar(l.bounds, l.bar.At(0), v)
	y := bar.Y
	if v < 0 {
		y = bar.MaxY()
	}
	at := Pt(bar.MinX()-l.label.Font.Size, y)

	tick := LabelSpec{
		Text:        l.tickText(v),
		Font:        l.label.Font,
		Alignment:   AlignRight,
		LineSpacing: DefaultLineSpacing,
	}
	return LabelShape(l.shaper, tick, at)
}

// tickText prints the data range ends rather than ±1 for normalized specs.
func (l *Layer) tickText(v float64) string {
	if l.bar.Normalized {
		lo, hi := l.bar.EffectiveRange()
		switch v {
		case lo:
			return FormatValue(l.bar.RangeMin)
		case hi:
			return FormatValue(l.bar.RangeMax)
		}
	}
	return FormatValue(v)
}
