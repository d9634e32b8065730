package barglyph

import (
	"bytes"
	"image/color"
	"strings"
	"testing"
)

func TestWriteSVG(t *testing.T) {
	layers, err := NewBarChart([]string{"a", "b"}, []float64{1, 2}).Layers(MonoShaper{})
	if err != nil {
		t.Fatalf("Layers: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteSVG(&buf, layers, smallOptions()); err != nil {
		t.Fatalf("WriteSVG: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		`width="100"`,
		`height="50"`,
		`transform="translate(50,25)"`,
		"fill:#1F77B4",
		"fill:#FF7F0E",
		"stroke:#000000;stroke-width:0.1",
		"</svg>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if got := strings.Count(out, "<path"); got != len(layers) {
		t.Errorf("got %d paths, want %d", got, len(layers))
	}
}

func TestWriteSVG_SkipsAbsentLabels(t *testing.T) {
	chart := NewBarChart([]string{"a label far too long for its slot"}, []float64{1})
	chart.LabelFont = mono10
	chart.LabelRotation = 0
	chart.SetSeparation(0)
	layers, err := chart.Layers(MonoShaper{})
	if err != nil {
		t.Fatalf("Layers: %v", err)
	}
	// Squeeze the chart so the slot is too narrow for the label.
	layers = TransformLayers(layers, Scale(0.01, 1))

	var buf bytes.Buffer
	if err := WriteSVG(&buf, layers, nil); err != nil {
		t.Fatalf("WriteSVG: %v", err)
	}
	if got := strings.Count(buf.String(), "<path"); got != 1 {
		t.Errorf("got %d paths, want only the bar", got)
	}
}

func TestWriteSVG_Background(t *testing.T) {
	opts := smallOptions()
	opts.BackgroundColor = &color.RGBA{0x12, 0x34, 0x56, 0xFF}
	var buf bytes.Buffer
	if err := WriteSVG(&buf, nil, opts); err != nil {
		t.Fatalf("WriteSVG: %v", err)
	}
	if !strings.Contains(buf.String(), "fill:#123456") {
		t.Errorf("background rect missing:\n%s", buf.String())
	}
}

func TestLayerStyle(t *testing.T) {
	spec := BarSpec{Count: 1, RangeMax: 1, Baseline: 0.5}
	bar, _ := NewBarLayer(spec, NewColor("80FF0000"))
	if got, want := layerStyle(bar), "fill:#FF0000;fill-opacity:0.502;stroke:none"; got != want {
		t.Errorf("layerStyle = %q, want %q", got, want)
	}
}
