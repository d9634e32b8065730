package barglyph

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/vector"
)

// ImageFormat represents the output image format.
type ImageFormat int

const (
	ImageFormatPNG ImageFormat = iota
	ImageFormatJPEG
)

// RenderOptions configures layer-to-image rendering.
type RenderOptions struct {
	// Width and Height are the output size in pixels. Default: 400x200.
	// Layer coordinates are taken relative to the image centre.
	Width  int
	Height int
	// Format is the output image format (PNG or JPEG).
	Format ImageFormat
	// JPEGQuality is the JPEG quality (1-100). Default: 90.
	JPEGQuality int
	// BackgroundColor fills the image first. Nil means white.
	BackgroundColor *color.RGBA
	// Shadow is the blur radius of a drop shadow cast by the layers, in
	// pixels. Zero disables it.
	Shadow int
}

// DefaultRenderOptions returns default rendering options.
func DefaultRenderOptions() *RenderOptions {
	return &RenderOptions{
		Width:       400,
		Height:      200,
		Format:      ImageFormatPNG,
		JPEGQuality: 90,
	}
}

func (o *RenderOptions) size() (w, h int) {
	w, h = o.Width, o.Height
	if w <= 0 {
		w = 400
	}
	if h <= 0 {
		h = 200
	}
	return w, h
}

// RenderImage rasterizes layers in order. Each shape is filled with the
// layer paint and, when the layer has a stroke width, outlined with the
// stroke paint. Layers with nothing to draw are skipped.
func RenderImage(layers []*Layer, opts *RenderOptions) (*image.RGBA, error) {
	if opts == nil {
		opts = DefaultRenderOptions()
	}
	w, h := opts.size()
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	bgColor := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	if opts.BackgroundColor != nil {
		bgColor = *opts.BackgroundColor
	}
	draw.Draw(img, img.Bounds(), &image.Uniform{bgColor}, image.Point{}, draw.Src)

	r := &renderer{
		img:    img,
		z:      vector.NewRasterizer(w, h),
		origin: Translate(float64(w)/2, float64(h)/2),
	}

	shapes := make([]Path, len(layers))
	for i, l := range layers {
		shape, ok, err := l.Shape()
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		if ok {
			shapes[i] = shape.Transform(r.origin)
		}
	}

	if opts.Shadow > 0 {
		if err := r.castShadow(shapes, opts.Shadow); err != nil {
			return nil, err
		}
	}

	for i, l := range layers {
		if shapes[i].IsEmpty() {
			continue
		}
		r.fill(shapes[i], l.Paint())
		if sw := l.StrokeWidth(); sw > 0 {
			r.fill(strokePath(shapes[i], sw), l.StrokePaint())
		}
	}
	return img, nil
}

// EncodeImage writes img to w in the format chosen by opts.
func EncodeImage(w io.Writer, img image.Image, opts *RenderOptions) error {
	if opts == nil {
		opts = DefaultRenderOptions()
	}
	switch opts.Format {
	case ImageFormatJPEG:
		quality := opts.JPEGQuality
		if quality <= 0 || quality > 100 {
			quality = 90
		}
		return jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
	default:
		return png.Encode(w, img)
	}
}

// SaveImage renders layers and saves the image to path, creating the
// directory if needed.
func SaveImage(layers []*Layer, path string, opts *RenderOptions) error {
	img, err := RenderImage(layers, opts)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := EncodeImage(&buf, img, opts); err != nil {
		return fmt.Errorf("encode image: %w", err)
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory: %w", err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	return nil
}

// --- renderer ---

type renderer struct {
	img    *image.RGBA
	z      *vector.Rasterizer
	origin Transform
}

// fill rasterizes p with non-zero coverage and composites c over the image.
func (r *renderer) fill(p Path, c color.Color) {
	b := r.img.Bounds()
	r.z.Reset(b.Dx(), b.Dy())
	r.z.DrawOp = draw.Over
	rasterize(r.z, p)
	r.z.Draw(r.img, b, image.NewUniform(c), image.Point{})
}

// castShadow blurs the union of all shapes and composites it beneath
// whatever is drawn next, offset down and right by half the radius.
func (r *renderer) castShadow(shapes []Path, radius int) error {
	b := r.img.Bounds()
	mask := image.NewAlpha(b)
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	for _, p := range shapes {
		rasterize(z, p)
	}
	z.Draw(mask, b, image.Opaque, image.Point{})

	shadow, err := DropShadow(mask, radius)
	if err != nil {
		return err
	}
	pad := 2 * radius
	at := image.Pt(radius/2-pad, radius/2-pad)
	draw.Draw(r.img, shadow.Bounds().Add(at), shadow, shadow.Bounds().Min, draw.Over)
	return nil
}

// rasterize adds p to z. Open subpaths are closed before the next one
// starts so every contour winds back to its start.
func rasterize(z *vector.Rasterizer, p Path) {
	open := false
	for _, s := range p.Segments() {
		a := s.Args
		switch s.Op {
		case SegmentMoveTo:
			if open {
				z.ClosePath()
			}
			z.MoveTo(float32(a[0].X), float32(a[0].Y))
			open = true
		case SegmentLineTo:
			z.LineTo(float32(a[0].X), float32(a[0].Y))
		case SegmentQuadTo:
			z.QuadTo(float32(a[0].X), float32(a[0].Y), float32(a[1].X), float32(a[1].Y))
		case SegmentCubeTo:
			z.CubeTo(float32(a[0].X), float32(a[0].Y), float32(a[1].X), float32(a[1].Y), float32(a[2].X), float32(a[2].Y))
		case SegmentClose:
			z.ClosePath()
			open = false
		}
	}
	if open {
		z.ClosePath()
	}
}

// strokePath outlines every flattened edge of p as a square-capped quad.
// The quads share one winding, so filling the result paints their union.
func strokePath(p Path, width float64) Path {
	var quads []Path
	for _, pl := range p.Flatten() {
		pts := pl.Points
		for i := 1; i < len(pts); i++ {
			quads = append(quads, strokeSegment(pts[i-1], pts[i], width))
		}
		if pl.Closed && len(pts) > 2 {
			quads = append(quads, strokeSegment(pts[len(pts)-1], pts[0], width))
		}
	}
	return Path{}.Append(quads...)
}
