package barglyph

import (
	"strings"
)

// Color represents an ARGB color. It implements image/color.Color so it can
// be handed straight to a rasterizer.
type Color struct {
	ARGB string // 8-character hex string, e.g., "FF000000" for black
}

// Predefined colors.
var (
	ColorBlack = Color{ARGB: "FF000000"}
	ColorWhite = Color{ARGB: "FFFFFFFF"}
	ColorGray  = Color{ARGB: "FF808080"}
)

// NewColor creates a new Color from an ARGB hex string.
// Accepts 6-char RGB (e.g. "FF0000") or 8-char ARGB (e.g. "FFFF0000").
// A leading "#" is stripped automatically.
func NewColor(argb string) Color {
	argb = strings.TrimPrefix(argb, "#")
	if len(argb) == 6 {
		argb = "FF" + argb
	}
	argb = strings.ToUpper(argb)
	if !isValidARGB(argb) {
		return ColorBlack
	}
	return Color{ARGB: argb}
}

// isValidARGB checks that s is exactly 8 hex characters.
func isValidARGB(s string) bool {
	if len(s) != 8 {
		return false
	}
	for _, c := range s {
		if !((c >= '0' && c <= '9') || (c >= 'A' && c <= 'F')) {
			return false
		}
	}
	return true
}

func (c Color) Red() uint8   { return parseHexByte(c.ARGB, 2) }
func (c Color) Green() uint8 { return parseHexByte(c.ARGB, 4) }
func (c Color) Blue() uint8  { return parseHexByte(c.ARGB, 6) }
func (c Color) Alpha() uint8 { return parseHexByte(c.ARGB, 0) }

// RGBA returns alpha-premultiplied components, satisfying color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(c.Alpha())
	a |= a << 8
	r = uint32(c.Red())
	r |= r << 8
	g = uint32(c.Green())
	g |= g << 8
	b = uint32(c.Blue())
	b |= b << 8
	return r * a / 0xffff, g * a / 0xffff, b * a / 0xffff, a
}

// Hex returns the color as "#RRGGBB", dropping alpha.
func (c Color) Hex() string {
	if len(c.ARGB) != 8 {
		return "#000000"
	}
	return "#" + c.ARGB[2:]
}

// Opacity returns alpha in the range [0, 1].
func (c Color) Opacity() float64 {
	return float64(c.Alpha()) / 255
}

// parseHexByte parses two hex characters at offset into a uint8.
// Returns 0 on any error (out of range, invalid chars).
func parseHexByte(s string, offset int) uint8 {
	if offset+2 > len(s) {
		return 0
	}
	h := hexVal(s[offset])
	l := hexVal(s[offset+1])
	if h < 0 || l < 0 {
		return 0
	}
	return uint8(h<<4 | l)
}

func hexVal(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	default:
		return -1
	}
}

// DefaultFontName and DefaultFontSize describe the font used when a label
// does not name one.
const (
	DefaultFontName = "SansSerif"
	DefaultFontSize = 8
)

// Font describes the face a label is outlined with.
type Font struct {
	Name   string
	Size   float64 // in points, which are also chart units
	Bold   bool
	Italic bool
}

// NewFont creates a new Font with defaults.
func NewFont() Font {
	return Font{Name: DefaultFontName, Size: DefaultFontSize}
}

// WithSize returns a copy of f with the given size. Non-positive sizes fall
// back to DefaultFontSize.
func (f Font) WithSize(size float64) Font {
	if size <= 0 {
		size = DefaultFontSize
	}
	f.Size = size
	return f
}

// orDefault fills in the zero fields of f.
func (f Font) orDefault() Font {
	if f.Name == "" {
		f.Name = DefaultFontName
	}
	if f.Size <= 0 {
		f.Size = DefaultFontSize
	}
	return f
}
