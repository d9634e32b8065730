package barglyph

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"math"
	"testing"
)

func TestGaussianKernel(t *testing.T) {
	if _, err := GaussianKernel(0); !errors.Is(err, ErrInvalidRadius) {
		t.Errorf("radius 0: err = %v, want ErrInvalidRadius", err)
	}

	for _, radius := range []int{1, 3, 8} {
		k, err := GaussianKernel(radius)
		if err != nil {
			t.Fatalf("radius %d: %v", radius, err)
		}
		if len(k) != 2*radius+1 {
			t.Errorf("radius %d: len = %d", radius, len(k))
		}
		sum := 0.0
		for i, w := range k {
			sum += w
			if w != k[len(k)-1-i] {
				t.Errorf("radius %d: not symmetric at %d", radius, i)
			}
			if w > k[radius] {
				t.Errorf("radius %d: weight %d above the centre", radius, i)
			}
		}
		if math.Abs(sum-1) > 1e-9 {
			t.Errorf("radius %d: weights sum to %v", radius, sum)
		}
	}
}

func TestDropShadow(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 10, 10))
	draw.Draw(src, src.Bounds(), image.NewUniform(color.RGBA{200, 10, 10, 255}), image.Point{}, draw.Src)

	shadow, err := DropShadow(src, 2)
	if err != nil {
		t.Fatalf("DropShadow: %v", err)
	}
	if b := shadow.Bounds(); b.Dx() != 18 || b.Dy() != 18 {
		t.Fatalf("size = %dx%d, want 18x18", b.Dx(), b.Dy())
	}
	if got := shadow.RGBAAt(9, 9); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("centre = %v, want opaque black", got)
	}
	if got := shadow.RGBAAt(0, 0); got.A != 0 {
		t.Errorf("corner alpha = %d, want 0", got.A)
	}
	// The edge of the source is softened.
	if a := shadow.RGBAAt(4, 9).A; a == 0 || a == 255 {
		t.Errorf("edge alpha = %d, want partial", a)
	}

	if _, err := DropShadow(src, 0); !errors.Is(err, ErrInvalidRadius) {
		t.Errorf("size 0: err = %v, want ErrInvalidRadius", err)
	}
}

func TestShadowMask(t *testing.T) {
	mask := ShadowMask(RectPath(Rect{X: -5, Y: -5, W: 10, H: 10}))
	if b := mask.Bounds(); b.Dx() != 10 || b.Dy() != 10 {
		t.Fatalf("size = %dx%d, want 10x10", b.Dx(), b.Dy())
	}
	if got := mask.RGBAAt(5, 5); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("inside = %v, want opaque black", got)
	}
	if got := mask.RGBAAt(0, 0); got.A != 0 {
		t.Errorf("top-left alpha = %d, want 0", got.A)
	}

	if b := ShadowMask(Path{}).Bounds(); !b.Empty() {
		t.Errorf("empty shape gave %v", b)
	}
}
