package barglyph

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// OutlineShaper turns text into real glyph outlines using fonts from a
// FontCache, or the built-in Go fonts when Fonts is nil. Glyph advances are
// unhinted and pairs are kerned when the font carries a kern table. It is
// safe for concurrent use.
type OutlineShaper struct {
	Fonts *FontCache
}

// sharedBuiltinFonts backs zero-value shapers. It is parsed once.
var sharedBuiltinFonts = sync.OnceValue(NewBuiltinFontCache)

// NewOutlineShaper returns a shaper backed by fonts. A nil cache uses the
// built-in Go fonts only.
func NewOutlineShaper(fonts *FontCache) *OutlineShaper {
	if fonts == nil {
		fonts = NewBuiltinFontCache()
	}
	return &OutlineShaper{Fonts: fonts}
}

// Outline implements TextShaper. One font unit of size is one chart unit.
func (s *OutlineShaper) Outline(text string, f Font) (Path, Rect, error) {
	f = f.orDefault()
	fonts := s.Fonts
	if fonts == nil {
		fonts = sharedBuiltinFonts()
	}
	sf := fonts.Font(f.Name, f.Bold, f.Italic)
	if sf == nil {
		return Path{}, Rect{}, fmt.Errorf("barglyph: no font for %q", f.Name)
	}

	var (
		buf  sfnt.Buffer
		p    Path
		pen  fixed.Int26_6
		prev sfnt.GlyphIndex
	)
	ppem := fixed.Int26_6(math.Round(f.Size * 64))
	for i, r := range text {
		gi, err := sf.GlyphIndex(&buf, r)
		if err != nil {
			return Path{}, Rect{}, fmt.Errorf("glyph index for %q: %w", r, err)
		}
		if i > 0 {
			// Fonts without kerning report ErrNotFound.
			if k, err := sf.Kern(&buf, prev, gi, ppem, font.HintingNone); err == nil {
				pen += k
			}
		}
		segs, err := sf.LoadGlyph(&buf, gi, ppem, nil)
		if err != nil && !errors.Is(err, sfnt.ErrNotFound) {
			return Path{}, Rect{}, fmt.Errorf("load glyph for %q: %w", r, err)
		}
		appendSegments(&p, segs, unfix(pen))

		adv, err := sf.GlyphAdvance(&buf, gi, ppem, font.HintingNone)
		if err != nil {
			return Path{}, Rect{}, fmt.Errorf("glyph advance for %q: %w", r, err)
		}
		pen += adv
		prev = gi
	}
	p = p.clip()
	return p, p.Bounds(), nil
}

// appendSegments copies glyph segments into p, shifted right by dx. sfnt
// leaves contours open, so each one is closed before the next starts.
func appendSegments(p *Path, segs sfnt.Segments, dx float64) {
	open := false
	for _, seg := range segs {
		a := seg.Args
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				p.Close()
			}
			p.MoveTo(unfix(a[0].X)+dx, unfix(a[0].Y))
			open = true
		case sfnt.SegmentOpLineTo:
			p.LineTo(unfix(a[0].X)+dx, unfix(a[0].Y))
		case sfnt.SegmentOpQuadTo:
			p.QuadTo(unfix(a[0].X)+dx, unfix(a[0].Y), unfix(a[1].X)+dx, unfix(a[1].Y))
		case sfnt.SegmentOpCubeTo:
			p.CubeTo(unfix(a[0].X)+dx, unfix(a[0].Y), unfix(a[1].X)+dx, unfix(a[1].Y), unfix(a[2].X)+dx, unfix(a[2].Y))
		}
	}
	if open {
		p.Close()
	}
}

func unfix(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
