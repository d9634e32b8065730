// Command barglyph draws a small bar chart as SVG, PNG or JPEG.
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	barglyph "github.com/VantageDataChat/GoBarGlyph"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

var (
	values      []float64
	labels      []string
	valueRange  string
	normalize   bool
	showAxes    bool
	separation  float64
	baseline    float64
	strokeWidth float64
	width       int
	height      int
	format      string
	fontDirs    []string
	fontName    string
	fontSize    float64
	mono        bool
	title       string
	titlePos    string
	titleAnchor string
	shadow      int
	outputPath  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "barglyph --values 3,-1,4 [flags]",
		Short: "Draw a small bar chart",
		Long: `barglyph lays out one bar per value in a 100x50 box, scales it to the
requested canvas and writes it as SVG or a raster image.`,
		Version:      version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         run,
	}

	f := rootCmd.Flags()
	f.Float64SliceVar(&values, "values", nil, "Bar values, comma separated")
	f.StringSliceVar(&labels, "labels", nil, "Category labels, one per value")
	f.StringVar(&valueRange, "range", "", "Value range as min,max (default: data range)")
	f.BoolVar(&normalize, "normalize", false, "Scale values into [-1, 1]")
	f.BoolVar(&showAxes, "show-axes", false, "Draw the value axis and its tick labels")
	f.Float64Var(&separation, "separation", 0, "Gap budget between bars")
	f.Float64Var(&baseline, "baseline", 0.5, "Zero line position as a fraction of the height")
	f.Float64Var(&strokeWidth, "stroke-width", barglyph.DefaultStrokeWidth, "Bar outline width")
	f.IntVar(&width, "width", 400, "Output width in pixels")
	f.IntVar(&height, "height", 200, "Output height in pixels")
	f.StringVar(&format, "format", "", "Output format: svg, png, jpeg (default: from -o extension, else svg)")
	f.StringSliceVar(&fontDirs, "font-dir", nil, "Extra directories to search for fonts")
	f.StringVar(&fontName, "font", barglyph.DefaultFontName, "Label font name")
	f.Float64Var(&fontSize, "font-size", barglyph.DefaultFontSize, "Label font size")
	f.BoolVar(&mono, "mono", false, "Draw text as fixed-width boxes instead of glyphs")
	f.StringVar(&title, "title", "", "Chart title")
	f.StringVar(&titlePos, "title-position", "north", "Title position: compass keyword or x,y")
	f.StringVar(&titleAnchor, "title-anchor", "north", "Point of the title placed on the position")
	f.IntVar(&shadow, "shadow", 0, "Drop shadow blur radius in pixels (raster output only)")
	f.StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	_ = rootCmd.MarkFlagRequired("values")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	outFormat, err := resolveFormat(format, outputPath)
	if err != nil {
		return err
	}

	chart := barglyph.NewBarChart(labels, values).
		SetSeparation(separation).
		SetBaseline(baseline).
		SetStrokeWidth(strokeWidth).
		SetNormalized(normalize).
		SetShowAxes(showAxes)
	if valueRange != "" {
		lo, hi, err := parseRange(valueRange)
		if err != nil {
			return err
		}
		chart.SetRange(lo, hi)
	}
	chart.LabelFont = barglyph.Font{Name: fontName, Size: fontSize}

	var shaper barglyph.TextShaper = barglyph.MonoShaper{}
	if !mono {
		shaper = barglyph.NewOutlineShaper(barglyph.NewFontCache(fontDirs...))
	}

	layers, err := chart.Layers(shaper)
	if err != nil {
		return fmt.Errorf("build chart: %w", err)
	}

	// Leave a tenth of the canvas around the chart for labels.
	padX, padY := float64(width)/10, float64(height)/10
	layers = barglyph.TransformLayers(layers, barglyph.Scale(
		(float64(width)-2*padX)/barglyph.DefaultBounds.W,
		(float64(height)-2*padY)/barglyph.DefaultBounds.H,
	))

	if title != "" {
		tl, err := titleLayer(shaper)
		if err != nil {
			return err
		}
		if tl != nil {
			layers = append(layers, tl)
		}
	}

	opts := barglyph.DefaultRenderOptions()
	opts.Width, opts.Height = width, height
	opts.Shadow = shadow

	err = writeOutput(outputPath, func(w io.Writer) error {
		if outFormat == "svg" {
			return barglyph.WriteSVG(w, layers, opts)
		}
		if outFormat == "jpeg" {
			opts.Format = barglyph.ImageFormatJPEG
		}
		img, err := barglyph.RenderImage(layers, opts)
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
		return barglyph.EncodeImage(w, img, opts)
	})
	if err != nil {
		return fmt.Errorf("write %s: %w", outFormat, err)
	}
	if outputPath != "" {
		fmt.Fprintf(os.Stderr, "Wrote %d bars to %s\n", len(values), outputPath)
	}
	return nil
}

// titleLayer outlines the title and places it on the canvas, whose centre
// is the layer origin. An unknown position leaves the title out.
func titleLayer(shaper barglyph.TextShaper) (*barglyph.Layer, error) {
	font := barglyph.Font{Name: fontName, Size: fontSize * 1.5, Bold: true}
	outline, ok, err := barglyph.BuildOutline(shaper, title, font, float64(width), barglyph.DefaultLineSpacing)
	if err != nil {
		return nil, fmt.Errorf("title: %w", err)
	}
	if !ok {
		return nil, nil
	}
	placed, ok := barglyph.PlaceLabel(outline, barglyph.Point{}, barglyph.AlignMiddle, 0, 0, 0)
	if !ok {
		return nil, nil
	}

	pos, ok := barglyph.ParsePosition(titlePos)
	if !ok {
		fmt.Fprintf(os.Stderr, "ignoring title position %q\n", titlePos)
		return nil, nil
	}
	// An unknown anchor applies no correction.
	anchor, _ := barglyph.ParsePosition(titleAnchor)
	canvas := barglyph.Rect{W: float64(width), H: float64(height)}
	at, ok := barglyph.PositionAdjust(canvas, placed.Bounds(), pos, anchor)
	if !ok {
		return nil, nil
	}
	return barglyph.NewPathLayer(placed.Transform(barglyph.Translate(at.X, at.Y)), barglyph.ColorBlack), nil
}

// writeOutput encodes into memory first so a failed render never leaves a
// partial file behind. An empty path writes to stdout.
func writeOutput(path string, encode func(io.Writer) error) error {
	var buf bytes.Buffer
	if err := encode(&buf); err != nil {
		return err
	}
	if path == "" {
		_, err := os.Stdout.Write(buf.Bytes())
		return err
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory: %w", err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	return nil
}

func resolveFormat(format, path string) (string, error) {
	f := strings.ToLower(format)
	if f == "" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".png":
			f = "png"
		case ".jpg", ".jpeg":
			f = "jpeg"
		default:
			f = "svg"
		}
	}
	switch f {
	case "svg", "png":
		return f, nil
	case "jpeg", "jpg":
		return "jpeg", nil
	}
	return "", fmt.Errorf("invalid format: %s (must be svg, png, or jpeg)", format)
}

func parseRange(s string) (lo, hi float64, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid range %q: want min,max", s)
	}
	lo, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid range minimum: %w", err)
	}
	hi, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid range maximum: %w", err)
	}
	return lo, hi, nil
}
