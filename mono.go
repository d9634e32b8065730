package barglyph

import (
	"unicode"

	"github.com/mattn/go-runewidth"
)

// monoWidth ignores the locale so East Asian ambiguous runes are always one
// cell wide.
var monoWidth = &runewidth.Condition{EastAsianWidth: false, StrictEmojiNeutral: true}

// MonoShaper outlines every visible character as a solid box sitting on the
// baseline. Widths come from terminal cell counts: wide runes take two
// cells, combining marks none. It needs no font files, which makes it a
// deterministic stand-in for real glyphs.
type MonoShaper struct {
	// Advance is the width of one cell as a fraction of the font size.
	// Zero means 0.6.
	Advance float64
	// Ascent is the box height as a fraction of the font size. Zero means 0.7.
	Ascent float64
}

func (m MonoShaper) metrics(size float64) (cell, ascent float64) {
	adv, asc := m.Advance, m.Ascent
	if adv <= 0 {
		adv = 0.6
	}
	if asc <= 0 {
		asc = 0.7
	}
	return adv * size, asc * size
}

// Outline implements TextShaper.
func (m MonoShaper) Outline(text string, f Font) (Path, Rect, error) {
	f = f.orDefault()
	cell, ascent := m.metrics(f.Size)
	var (
		p Path
		x float64
	)
	for _, r := range text {
		w := float64(monoWidth.RuneWidth(r)) * cell
		if w > 0 && !unicode.IsSpace(r) {
			p.AddRect(Rect{X: x, Y: -ascent, W: w, H: ascent})
		}
		x += w
	}
	p = p.clip()
	return p, p.Bounds(), nil
}
