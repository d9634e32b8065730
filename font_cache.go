package barglyph

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// FontCache maps font names to parsed TrueType/OpenType fonts. It always
// knows the Go fonts and, unless built with NewBuiltinFontCache, lazily
// scans the system font directories plus any extra ones on first lookup.
type FontCache struct {
	mu      sync.RWMutex
	dirs    []string              // directories to search for fonts
	fonts   map[string]*sfnt.Font // lowercase font name -> parsed font
	scanned bool
}

// NewFontCache creates a FontCache that searches the given directories
// plus the OS default font directories.
func NewFontCache(extraDirs ...string) *FontCache {
	fc := NewBuiltinFontCache()
	fc.dirs = append(systemFontDirs(), extraDirs...)
	fc.scanned = false
	return fc
}

// NewBuiltinFontCache creates a FontCache holding only the Go fonts. It
// never touches the file system, so output does not depend on the host.
func NewBuiltinFontCache() *FontCache {
	fc := &FontCache{
		fonts:   make(map[string]*sfnt.Font),
		scanned: true,
	}
	for name, data := range builtinFonts {
		f, err := opentype.Parse(data)
		if err != nil {
			panic(fmt.Sprintf("barglyph: parsing built-in font %q: %v", name, err))
		}
		fc.fonts[name] = f
	}
	return fc
}

var builtinFonts = map[string][]byte{
	"go":             goregular.TTF,
	"go bold":        gobold.TTF,
	"go italic":      goitalic.TTF,
	"go bold italic": gobolditalic.TTF,
	"go mono":        gomono.TTF,
}

// genericFonts are the logical font names and the families tried for them,
// in order. The Go font ends every list so a lookup always succeeds.
var genericFonts = map[string][]string{
	"sansserif":  {"arial", "helvetica", "dejavu sans", "liberation sans", "noto sans", "go"},
	"sans-serif": {"arial", "helvetica", "dejavu sans", "liberation sans", "noto sans", "go"},
	"dialog":     {"arial", "helvetica", "dejavu sans", "liberation sans", "noto sans", "go"},
	"serif":      {"times new roman", "dejavu serif", "liberation serif", "noto serif", "go"},
	"monospaced": {"courier new", "dejavu sans mono", "liberation mono", "go mono", "go"},
}

// Font returns the font registered under name in the requested style. Style
// variants fall back to the plain face and unknown names to the Go font.
func (fc *FontCache) Font(name string, bold, italic bool) *sfnt.Font {
	fc.ensureScanned()

	fc.mu.RLock()
	defer fc.mu.RUnlock()

	lower := strings.ToLower(strings.TrimSpace(name))
	if f := fc.findFontByKey(lower, bold, italic); f != nil {
		return f
	}
	for _, alias := range genericFonts[lower] {
		if f := fc.findFontByKey(alias, bold, italic); f != nil {
			return f
		}
	}
	return fc.findFontByKey("go", bold, italic)
}

// findFontByKey looks up a font by its already-lowercased key, with style
// variants. Callers hold fc.mu.
func (fc *FontCache) findFontByKey(lower string, bold, italic bool) *sfnt.Font {
	if bold && italic {
		for _, suffix := range []string{" bold italic", "bi", " bolditalic", "z"} {
			if f, ok := fc.fonts[lower+suffix]; ok {
				return f
			}
		}
	}
	if bold {
		for _, suffix := range []string{" bold", "bd", "b"} {
			if f, ok := fc.fonts[lower+suffix]; ok {
				return f
			}
		}
	}
	if italic {
		for _, suffix := range []string{" italic", "i", " it"} {
			if f, ok := fc.fonts[lower+suffix]; ok {
				return f
			}
		}
	}
	if f, ok := fc.fonts[lower]; ok {
		return f
	}
	return nil
}

// LoadFont loads a TrueType/OpenType font file and registers it under the
// given name. Returns an error if the file exceeds maxFontFileSize.
func (fc *FontCache) LoadFont(name string, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.Size() > maxFontFileSize {
		return fmt.Errorf("font file too large: %d bytes (max %d)", info.Size(), maxFontFileSize)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return fc.LoadFontData(name, data)
}

// LoadFontData registers a TrueType/OpenType font from raw bytes.
func (fc *FontCache) LoadFontData(name string, data []byte) error {
	f, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("parse font %q: %w", name, err)
	}
	fc.mu.Lock()
	fc.fonts[strings.ToLower(name)] = f
	fc.registerByName(f)
	fc.mu.Unlock()
	return nil
}

func (fc *FontCache) ensureScanned() {
	fc.mu.RLock()
	scanned := fc.scanned
	fc.mu.RUnlock()
	if scanned {
		return
	}

	fc.mu.Lock()
	defer fc.mu.Unlock()
	if fc.scanned {
		return
	}
	fc.scanned = true

	for _, dir := range fc.dirs {
		fc.scanDirDepth(dir, 0)
	}
}

// maxFontScanDepth limits recursive directory traversal when scanning for fonts.
const maxFontScanDepth = 3

// maxFontFileSize limits the size of individual font files loaded into memory.
const maxFontFileSize = 20 << 20 // 20 MB

func (fc *FontCache) scanDirDepth(dir string, depth int) {
	if depth > maxFontScanDepth {
		return
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		if entry.IsDir() {
			fc.scanDirDepth(filepath.Join(dir, entry.Name()), depth+1)
			continue
		}
		name := entry.Name()
		lower := strings.ToLower(name)
		isTTC := strings.HasSuffix(lower, ".ttc") || strings.HasSuffix(lower, ".otc")
		isSingle := strings.HasSuffix(lower, ".ttf") || strings.HasSuffix(lower, ".otf")
		if !isTTC && !isSingle {
			continue
		}

		info, err := entry.Info()
		if err != nil || info.Size() > maxFontFileSize {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			continue
		}

		baseName := strings.TrimSuffix(lower, filepath.Ext(lower))
		if isTTC {
			fc.loadCollection(data, baseName)
			continue
		}
		f, err := opentype.Parse(data)
		if err != nil {
			continue
		}
		fc.fonts[baseName] = f
		fc.registerByName(f)
	}
}

// loadCollection parses a TTC/OTC collection and registers each font by its
// internal names, the first one also by file name.
func (fc *FontCache) loadCollection(data []byte, baseName string) {
	coll, err := opentype.ParseCollection(data)
	if err != nil {
		return
	}
	for i := 0; i < coll.NumFonts(); i++ {
		f, err := coll.Font(i)
		if err != nil {
			continue
		}
		if i == 0 {
			fc.fonts[baseName] = f
		}
		fc.registerByName(f)
	}
}

// registerByName registers f under its full name ("DejaVu Sans Bold") and,
// for the regular face only, its family name, so a bold file scanned after
// the regular one does not take over the family.
func (fc *FontCache) registerByName(f *sfnt.Font) {
	if fullName, err := f.Name(nil, sfnt.NameIDFull); err == nil && fullName != "" {
		fc.fonts[strings.ToLower(fullName)] = f
	}
	family, err := f.Name(nil, sfnt.NameIDFamily)
	if err != nil || family == "" {
		return
	}
	sub, _ := f.Name(nil, sfnt.NameIDSubfamily)
	switch strings.ToLower(sub) {
	case "", "regular", "normal", "book", "roman":
		fc.fonts[strings.ToLower(family)] = f
	}
}

// systemFontDirs returns OS-specific font directories.
func systemFontDirs() []string {
	switch runtime.GOOS {
	case "windows":
		windir := os.Getenv("WINDIR")
		if windir == "" {
			windir = `C:\Windows`
		}
		dirs := []string{filepath.Join(windir, "Fonts")}
		if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
			dirs = append(dirs, filepath.Join(localAppData, "Microsoft", "Windows", "Fonts"))
		}
		return dirs
	case "darwin":
		dirs := []string{"/System/Library/Fonts", "/Library/Fonts"}
		if home, _ := os.UserHomeDir(); home != "" {
			dirs = append(dirs, filepath.Join(home, "Library", "Fonts"))
		}
		return dirs
	default: // linux, freebsd, etc.
		dirs := []string{"/usr/share/fonts", "/usr/local/share/fonts"}
		if home, _ := os.UserHomeDir(); home != "" {
			dirs = append(dirs, filepath.Join(home, ".local", "share", "fonts"), filepath.Join(home, ".fonts"))
		}
		return dirs
	}
}
