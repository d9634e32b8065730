package barglyph

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"strconv"

	svg "github.com/ajstarks/svgo"
)

// WriteSVG writes layers as an SVG document of opts.Width x opts.Height.
// Like RenderImage it puts the layer origin at the centre of the canvas.
// Each drawable layer becomes one path element carrying its fill and, for
// stroked layers, its stroke.
func WriteSVG(w io.Writer, layers []*Layer, opts *RenderOptions) error {
	if opts == nil {
		opts = DefaultRenderOptions()
	}
	width, height := opts.size()

	bw := bufio.NewWriter(w)
	canvas := svg.New(bw)
	canvas.Start(width, height)
	if bg := opts.BackgroundColor; bg != nil {
		canvas.Rect(0, 0, width, height, "fill:"+rgbaHex(*bg))
	}
	canvas.Gtransform(fmt.Sprintf("translate(%s,%s)", svgNumber(float64(width)/2), svgNumber(float64(height)/2)))
	for i, l := range layers {
		shape, ok, err := l.Shape()
		if err != nil {
			return fmt.Errorf("layer %d: %w", i, err)
		}
		if !ok {
			continue
		}
		canvas.Path(shape.SVG(), layerStyle(l))
	}
	canvas.Gend()
	canvas.End()
	return bw.Flush()
}

func layerStyle(l *Layer) string {
	fill := l.Paint()
	style := "fill:" + fill.Hex()
	if fill.Alpha() != 0xFF {
		style += ";fill-opacity:" + strconv.FormatFloat(fill.Opacity(), 'f', 3, 64)
	}
	if sw := l.StrokeWidth(); sw > 0 {
		stroke := l.StrokePaint()
		style += ";stroke:" + stroke.Hex() + ";stroke-width:" + svgNumber(sw)
		if stroke.Alpha() != 0xFF {
			style += ";stroke-opacity:" + strconv.FormatFloat(stroke.Opacity(), 'f', 3, 64)
		}
	} else {
		style += ";stroke:none"
	}
	return style
}

func rgbaHex(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
