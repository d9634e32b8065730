package barglyph

import (
	"errors"
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// ErrInvalidRadius is returned for blur radii below 1.
var ErrInvalidRadius = errors.New("barglyph: blur radius must be >= 1")

// ShadowMask fills shape in black on a transparent image the size of its
// bounds. The shape is taken as centred on its origin, so it is moved by
// half the bounds plus one pixel before drawing.
func ShadowMask(shape Path) *image.RGBA {
	b := shape.Bounds()
	w, h := int(b.W), int(b.H)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if w <= 0 || h <= 0 {
		return img
	}
	z := vector.NewRasterizer(w, h)
	rasterize(z, shape.Transform(Translate(float64(1+w/2), float64(1+h/2))))
	z.Draw(img, img.Bounds(), image.Black, image.Point{})
	return img
}

// DropShadow returns a soft black shadow of src's opaque pixels. The result
// is padded by twice size on every side so the blur has room to spread; src
// sits at (2*size, 2*size).
func DropShadow(src image.Image, size int) (*image.RGBA, error) {
	kernel, err := GaussianKernel(size)
	if err != nil {
		return nil, err
	}
	sb := src.Bounds()
	shadow := image.NewRGBA(image.Rect(0, 0, sb.Dx()+4*size, sb.Dy()+4*size))
	at := image.Rect(2*size, 2*size, 2*size+sb.Dx(), 2*size+sb.Dy())
	draw.DrawMask(shadow, at, image.Black, image.Point{}, src, sb.Min, draw.Over)

	shadow = convolve(shadow, kernel, true)
	shadow = convolve(shadow, kernel, false)
	return shadow, nil
}

// GaussianKernel returns the 2*radius+1 weights of a normalized gaussian
// with sigma = radius/3.
func GaussianKernel(radius int) ([]float64, error) {
	if radius < 1 {
		return nil, ErrInvalidRadius
	}
	data := make([]float64, 2*radius+1)
	sigma := float64(radius) / 3
	twoSigmaSquare := 2 * sigma * sigma
	sigmaRoot := math.Sqrt(twoSigmaSquare * math.Pi)
	total := 0.0
	for i := -radius; i <= radius; i++ {
		d := float64(i * i)
		data[i+radius] = math.Exp(-d/twoSigmaSquare) / sigmaRoot
		total += data[i+radius]
	}
	for i := range data {
		data[i] /= total
	}
	return data, nil
}

// convolve applies a one-dimensional kernel along rows or columns. Pixels
// closer to the edge than the kernel radius are copied unchanged.
func convolve(src *image.RGBA, kernel []float64, horizontal bool) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(b)
	copy(dst.Pix, src.Pix)
	r := len(kernel) / 2

	dx, dy := 0, 1
	if horizontal {
		dx, dy = 1, 0
	}
	for y := b.Min.Y + r*dy; y < b.Max.Y-r*dy; y++ {
		for x := b.Min.X + r*dx; x < b.Max.X-r*dx; x++ {
			var acc [4]float64
			for k, w := range kernel {
				off := src.PixOffset(x+(k-r)*dx, y+(k-r)*dy)
				for c := 0; c < 4; c++ {
					acc[c] += w * float64(src.Pix[off+c])
				}
			}
			off := dst.PixOffset(x, y)
			for c := 0; c < 4; c++ {
				dst.Pix[off+c] = uint8(math.Min(math.Round(acc[c]), 255))
			}
		}
	}
	return dst
}
