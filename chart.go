package barglyph

import (
	"errors"
	"math"
)

// ErrNoValues is returned when a chart has nothing to draw.
var ErrNoValues = errors.New("barglyph: chart has no values")

// DefaultStrokeWidth is the bar outline width of a new chart.
const DefaultStrokeWidth = 0.1

// DefaultPalette cycles through the category10 colors.
var DefaultPalette = splitColorString("1f77b4ff7f0e2ca02cd627289467bd8c564be377c27f7f7fbcbd2217becf")

func splitColorString(str string) []Color {
	var arr []Color
	for i := 0; i+6 <= len(str); i += 6 {
		arr = append(arr, NewColor(str[i:i+6]))
	}
	return arr
}

// BarChart is an inline chart with one bar per value and an optional
// category label under each bar.
type BarChart struct {
	Labels        []string
	Values        []float64
	Separation    float64
	Baseline      float64
	StrokeWidth   float64
	Normalized    bool
	ShowAxes      bool
	Palette       []Color
	StrokeColor   Color
	LabelFont     Font
	LabelColor    Color
	LabelRotation float64

	rangeMin, rangeMax float64
	rangeSet           bool
}

// NewBarChart creates a chart for the given values. Labels pair with values
// by position; missing labels draw nothing and extra labels are ignored.
func NewBarChart(labels []string, values []float64) *BarChart {
	return &BarChart{
		Labels:        labels,
		Values:        values,
		Baseline:      0.5,
		StrokeWidth:   DefaultStrokeWidth,
		Palette:       DefaultPalette,
		StrokeColor:   ColorBlack,
		LabelFont:     NewFont(),
		LabelColor:    ColorBlack,
		LabelRotation: DefaultLabelRotation,
	}
}

// SetSeparation sets the gap budget between bars (clamped to >= 0).
func (c *BarChart) SetSeparation(v float64) *BarChart {
	c.Separation = math.Max(v, 0)
	return c
}

// SetBaseline sets where the zero line sits, as a fraction of the height
// from the top (clamped to 0–1).
func (c *BarChart) SetBaseline(v float64) *BarChart {
	c.Baseline = math.Min(math.Max(v, 0), 1)
	return c
}

// SetStrokeWidth sets the bar outline width (clamped to >= 0).
func (c *BarChart) SetStrokeWidth(v float64) *BarChart {
	c.StrokeWidth = math.Max(v, 0)
	return c
}

// SetRange fixes the value range instead of deriving it from the data.
func (c *BarChart) SetRange(lo, hi float64) *BarChart {
	if lo > hi {
		lo, hi = hi, lo
	}
	c.rangeMin, c.rangeMax, c.rangeSet = lo, hi, true
	return c
}

// SetNormalized scales values into [-1, 1] while the axis keeps printing the
// data range.
func (c *BarChart) SetNormalized(v bool) *BarChart {
	c.Normalized = v
	return c
}

// SetShowAxes turns on the value-range axis and its tick labels.
func (c *BarChart) SetShowAxes(v bool) *BarChart {
	c.ShowAxes = v
	return c
}

// SetPalette sets the bar colors, used in turn.
func (c *BarChart) SetPalette(colors ...Color) *BarChart {
	c.Palette = colors
	return c
}

// Range returns the value range: the one set with SetRange, otherwise the
// smallest and largest value.
func (c *BarChart) Range() (lo, hi float64) {
	if c.rangeSet || len(c.Values) == 0 {
		return c.rangeMin, c.rangeMax
	}
	lo, hi = c.Values[0], c.Values[0]
	for _, v := range c.Values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}

// Layers builds a bar layer per value followed by a label layer per label.
// Slot 0 also gets a label layer when axes are shown so the tick labels are
// drawn. shaper may be nil only if nothing needs text.
func (c *BarChart) Layers(shaper TextShaper) ([]*Layer, error) {
	if len(c.Values) == 0 {
		return nil, ErrNoValues
	}
	lo, hi := c.Range()
	base := BarSpec{
		Count:       len(c.Values),
		Separation:  c.Separation,
		RangeMin:    lo,
		RangeMax:    hi,
		Normalized:  c.Normalized,
		Baseline:    c.Baseline,
		StrokeWidth: c.StrokeWidth,
		ShowAxes:    c.ShowAxes,
	}
	scale := 1.0
	if c.Normalized {
		if m := math.Max(math.Abs(lo), math.Abs(hi)); m != 0 {
			scale = 1 / m
		}
	}

	layers := make([]*Layer, 0, 2*len(c.Values))
	for i, v := range c.Values {
		fill := ColorGray
		if len(c.Palette) > 0 {
			fill = c.Palette[i%len(c.Palette)]
		}
		l, err := NewBarLayer(base.At(i).WithValue(v*scale), fill)
		if err != nil {
			return nil, err
		}
		l.stroke = c.StrokeColor
		layers = append(layers, l)
	}

	// Labels hang below the lowest bar the range allows.
	elo, _ := base.EffectiveRange()
	anchor := math.Min(elo, 0)
	for i := range c.Values {
		text := ""
		if i < len(c.Labels) {
			text = c.Labels[i]
		}
		if text == "" && !(i == 0 && c.ShowAxes) {
			continue
		}
		if shaper == nil {
			if text == "" {
				continue
			}
			return nil, ErrNoShaper
		}
		spec := NewLabelSpec(text)
		spec.Font = c.LabelFont
		spec.Color = c.LabelColor
		spec.Rotation = c.LabelRotation
		l, err := NewLabelLayer(base.At(i).WithValue(anchor), spec, shaper)
		if err != nil {
			return nil, err
		}
		layers = append(layers, l)
	}
	return layers, nil
}

// TransformLayers maps every layer through m, leaving the originals alone.
func TransformLayers(layers []*Layer, m Transform) []*Layer {
	out := make([]*Layer, len(layers))
	for i, l := range layers {
		out[i] = l.Transform(m)
	}
	return out
}
