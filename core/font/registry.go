package font

import (
	"fmt"
	"path"
	"strings"
	"sync"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/schuko/tracing"
	xfont "golang.org/x/image/font"
)

// Registry is a type for holding information about loaded fonts and
// typecases. A registry is safe for concurrent use.
type Registry struct {
	sync.Mutex
	fonts       map[string]*ScalableFont
	typecases   map[string]*TypeCase
	systemFonts bool
}

var globalFontRegistry *Registry

var globalRegistryCreation sync.Once

// GlobalRegistry is an application-wide singleton to hold information about
// loaded fonts and typecases. It will consult fonts installed on the system.
func GlobalRegistry() *Registry {
	globalRegistryCreation.Do(func() {
		globalFontRegistry = NewRegistry(true)
	})
	return globalFontRegistry
}

// NewRegistry creates an empty registry. If systemFonts is false, families
// not stored with StoreFont resolve to the bundled Go fonts only, which makes
// layout reproducible across machines.
func NewRegistry(systemFonts bool) *Registry {
	return &Registry{
		fonts:       make(map[string]*ScalableFont),
		typecases:   make(map[string]*TypeCase),
		systemFonts: systemFonts,
	}
}

// StoreFont pushes a font into the registry if it isn't contained yet.
//
// The font will be stored using the normalized family name, style and weight
// as a key. If this key is already associated with a font, that font will not
// be overridden.
func (fr *Registry) StoreFont(family string, style xfont.Style, weight xfont.Weight, f *ScalableFont) {
	if f == nil {
		tracer().Errorf("registry cannot store null font")
		return
	}
	fr.Lock()
	defer fr.Unlock()
	key := NormalizeFontname(family, style, weight)
	if _, ok := fr.fonts[key]; !ok {
		tracer().Debugf("registry stores font %s as %s", f.Fontname, key)
		fr.fonts[key] = f
	}
}

// TypeCase returns a typecase for a list of font families, as given by CSS
// property font-family, with a given style, weight and size in CSS pixels.
//
// Families are tried in order. A family will be resolved from fonts stored in
// the registry, from generic family names (serif, sans-serif, monospace, …),
// or from fonts installed on the system. If no family can be resolved, a
// bundled Go font is used. Typecases are cached.
func (fr *Registry) TypeCase(families []string, style xfont.Style, weight xfont.Weight,
	size float64) (*TypeCase, error) {
	//
	fr.Lock()
	defer fr.Unlock()
	for _, family := range families {
		key := NormalizeFontname(family, style, weight)
		tname := appendSize(key, size)
		if t, ok := fr.typecases[tname]; ok {
			return t, nil
		}
		f := fr.resolve(family, style, weight)
		if f == nil {
			continue
		}
		t, err := f.PrepareCase(size)
		if err != nil {
			tracer().Errorf("cannot prepare typecase for %s: %v", family, err)
			continue
		}
		tracer().Infof("font registry caches %s at %.2fpx", key, size)
		fr.fonts[key] = f
		fr.typecases[tname] = t
		return t, nil
	}
	tracer().Infof("registry cannot resolve font families %v, using fallback", families)
	f := FallbackFont(style, weight)
	key := NormalizeFontname(f.Fontname, style, weight)
	tname := appendSize(key, size)
	if t, ok := fr.typecases[tname]; ok {
		return t, nil
	}
	t, err := f.PrepareCase(size)
	if err != nil {
		return nil, err
	}
	fr.typecases[tname] = t
	return t, nil
}

// resolve finds a scalable font for a family. The registry must be locked.
func (fr *Registry) resolve(family string, style xfont.Style, weight xfont.Weight) *ScalableFont {
	key := NormalizeFontname(family, style, weight)
	if f, ok := fr.fonts[key]; ok {
		return f
	}
	switch strings.ToLower(strings.TrimSpace(family)) {
	case "monospace", "ui-monospace", "go mono":
		return MonospaceFont(weight)
	case "serif", "sans-serif", "system-ui", "ui-serif", "ui-sans-serif", "go", "go sans":
		return FallbackFont(style, weight)
	}
	if !fr.systemFonts {
		return nil
	}
	return findSystemFont(family, style, weight)
}

// findSystemFont searches fonts installed on the system.
func findSystemFont(family string, style xfont.Style, weight xfont.Weight) *ScalableFont {
	pattern := strings.ReplaceAll(strings.ToLower(family), " ", "")
	var fpath string
	for _, p := range findfont.List() {
		if Matches(p, pattern, style, weight) {
			fpath = p
			break
		}
	}
	if fpath == "" {
		var err error
		if fpath, err = findfont.Find(family); err != nil {
			tracer().Debugf("%s is not a system font", family)
			return nil
		}
	}
	f, err := LoadOpenTypeFont(fpath)
	if err != nil {
		tracer().Errorf("cannot load system font %s: %v", fpath, err)
		return nil
	}
	tracer().Debugf("%s is a system font at %s", family, fpath)
	return f
}

// LogFontList is a helper function to dump the list of known fonts and typecases
// in a registry to the trace-file (log-level Info).
func (fr *Registry) LogFontList() {
	fr.Lock()
	defer fr.Unlock()
	level := tracer().GetTraceLevel()
	tracer().SetTraceLevel(tracing.LevelInfo)
	tracer().Infof("--- registered fonts ---")
	for k, v := range fr.fonts {
		tracer().Infof("font [%s] = %v", k, v.Fontname)
	}
	for k, v := range fr.typecases {
		tracer().Infof("typecase [%s] = %v", k, v)
	}
	tracer().Infof("------------------------")
	tracer().SetTraceLevel(level)
}

// NormalizeFontname creates a registry key from a family name, a style and
// a weight.
func NormalizeFontname(fname string, style xfont.Style, weight xfont.Weight) string {
	fname = strings.TrimSpace(fname)
	fname = strings.Trim(fname, `"'`)
	fname = strings.ReplaceAll(fname, " ", "_")
	if dot := strings.LastIndex(fname, "."); dot > 0 {
		fname = fname[:dot]
	}
	fname = strings.ToLower(fname)
	switch style {
	case xfont.StyleItalic, xfont.StyleOblique:
		fname += "-italic"
	}
	switch weight {
	case xfont.WeightLight, xfont.WeightExtraLight, xfont.WeightThin:
		fname += "-light"
	case xfont.WeightBold, xfont.WeightExtraBold, xfont.WeightSemiBold, xfont.WeightBlack:
		fname += "-bold"
	}
	return fname
}

func appendSize(fname string, size float64) string {
	return fmt.Sprintf("%s-%.2f", fname, size)
}

// GuessStyleAndWeight trys to guess a font's style and weight from the
// font's file name.
func GuessStyleAndWeight(fontfilename string) (xfont.Style, xfont.Weight) {
	fontfilename = path.Base(fontfilename)
	ext := path.Ext(fontfilename)
	fontfilename = strings.ToLower(fontfilename[:len(fontfilename)-len(ext)])
	s := strings.Split(fontfilename, "-")
	if len(s) > 1 {
		switch s[len(s)-1] {
		case "light", "xlight":
			return xfont.StyleNormal, xfont.WeightLight
		case "normal", "medium", "regular", "r":
			return xfont.StyleNormal, xfont.WeightNormal
		case "bold", "b":
			return xfont.StyleNormal, xfont.WeightBold
		case "xbold", "black":
			return xfont.StyleNormal, xfont.WeightExtraBold
		}
	}
	style, weight := xfont.StyleNormal, xfont.WeightNormal
	if strings.Contains(fontfilename, "italic") || strings.Contains(fontfilename, "oblique") {
		style = xfont.StyleItalic
	}
	if strings.Contains(fontfilename, "light") {
		weight = xfont.WeightLight
	}
	if strings.Contains(fontfilename, "bold") {
		weight = xfont.WeightBold
	}
	return style, weight
}

// Matches returns true if a font's filename contains pattern and indicators
// for a given style and weight.
func Matches(fontfilename, pattern string, style xfont.Style, weight xfont.Weight) bool {
	basename := path.Base(fontfilename)
	basename = basename[:len(basename)-len(path.Ext(basename))]
	basename = strings.ToLower(basename)
	squeezed := strings.ReplaceAll(basename, " ", "")
	if !strings.Contains(squeezed, strings.ReplaceAll(strings.ToLower(pattern), " ", "")) {
		return false
	}
	s, w := GuessStyleAndWeight(basename)
	return s == normalizeStyle(style) && w == normalizeWeight(weight)
}

func normalizeStyle(style xfont.Style) xfont.Style {
	if style == xfont.StyleOblique {
		return xfont.StyleItalic
	}
	return style
}

func normalizeWeight(weight xfont.Weight) xfont.Weight {
	switch {
	case weight <= xfont.WeightLight:
		return xfont.WeightLight
	case weight >= xfont.WeightExtraBold:
		return xfont.WeightExtraBold
	case weight >= xfont.WeightSemiBold:
		return xfont.WeightBold
	}
	return xfont.WeightNormal
}
