package barglyph

import (
	"errors"

	"golang.org/x/text/unicode/norm"
)

// DefaultLineSpacing is the gap added between wrapped lines.
const DefaultLineSpacing = 1.0

// ErrNoShaper is returned when a text operation is given a nil TextShaper.
var ErrNoShaper = errors.New("barglyph: no text shaper")

// TextShaper produces the outline of one line of text. The outline is set
// with its baseline on y = 0, so glyphs extend into negative Y. Bounds is the
// tight box of the ink; it is empty for text that draws nothing.
type TextShaper interface {
	Outline(text string, f Font) (outline Path, bounds Rect, err error)
}

type shapedLine struct {
	text    string
	outline Path
}

// BuildOutline wraps text to maxWidth and stacks the lines into one outline.
// Each line after the first is moved down by the height of everything above
// it plus lineSpacing. A maxWidth of zero or less disables wrapping. Empty
// text reports false.
func BuildOutline(shaper TextShaper, text string, f Font, maxWidth, lineSpacing float64) (Path, bool, error) {
	if text == "" {
		return Path{}, false, nil
	}
	lines, err := wrapText(shaper, text, f, maxWidth)
	if err != nil {
		return Path{}, false, err
	}
	var (
		out    Path
		height float64
	)
	for i, ln := range lines {
		dy := height
		if i > 0 {
			dy += lineSpacing
		}
		out = out.Append(ln.outline.Transform(Translate(0, dy)))
		height = out.Bounds().H
	}
	return out.clip(), true, nil
}

// WrapLines returns the lines BuildOutline would stack. Joining them gives
// back text unchanged.
func WrapLines(shaper TextShaper, text string, f Font, maxWidth float64) ([]string, error) {
	lines, err := wrapText(shaper, text, f, maxWidth)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(lines))
	for i, ln := range lines {
		out[i] = ln.text
	}
	return out, nil
}

// wrapText fits lines greedily: it tries the whole remainder, then drops one
// character at a time until the ink width fits. A single character is always
// accepted so degenerate fonts cannot stall the loop.
func wrapText(shaper TextShaper, text string, f Font, maxWidth float64) ([]shapedLine, error) {
	if shaper == nil {
		return nil, ErrNoShaper
	}
	f = f.orDefault()
	breaks := charBreaks(text)
	var lines []shapedLine
	for first := 0; first < len(breaks)-1; {
		for last := len(breaks) - 1; last > first; last-- {
			line := text[breaks[first]:breaks[last]]
			outline, bounds, err := shaper.Outline(line, f)
			if err != nil {
				return nil, err
			}
			if last-first == 1 || maxWidth <= 0 || bounds.W <= maxWidth {
				lines = append(lines, shapedLine{text: line, outline: outline})
				first = last
				break
			}
		}
	}
	return lines, nil
}

// charBreaks returns the byte offsets between characters, including 0 and
// len(s). A character is a normalization segment: a starter together with
// the combining marks that follow it.
func charBreaks(s string) []int {
	breaks := []int{0}
	for i := 0; i < len(s); {
		n := norm.NFC.NextBoundaryInString(s[i:], true)
		if n <= 0 {
			n = len(s) - i
		}
		i += n
		breaks = append(breaks, i)
	}
	return breaks
}
