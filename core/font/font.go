package font

import (
	"os"
	"sync"

	"github.com/npillmayer/boxflow/core"
	"github.com/npillmayer/boxflow/core/dimen"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ScalableFont is an OpenType font, independent of size.
type ScalableFont struct {
	Fontname string
	Filepath string     // file path
	Binary   []byte     // raw data
	SFNT     *sfnt.Font // the font's container
}

// TypeCase is a scalable font at a given pixel size.
//
// Vertical metrics are determined once when the typecase is prepared.
// Faces of x/image are not safe for concurrent use, therefore measuring is
// serialized per typecase.
type TypeCase struct {
	scalableFontParent *ScalableFont
	mx                 sync.Mutex
	face               xfont.Face // Go uses 'face' and 'font' in an inverse manner
	size               float64    // in px
	ascent, descent    dimen.Dimen
	spaceWidth         dimen.Dimen
}

// metricsSample is a string with ascenders and descenders, used to derive
// the vertical extent of a typecase.
const metricsSample = "gjpqyQ"

// LoadOpenTypeFont loads a font from a file.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot read font file %s", fontfile)
	}
	f, err := ParseOpenTypeFont(bytez)
	if err != nil {
		return nil, err
	}
	f.Filepath = fontfile
	return f, nil
}

// ParseOpenTypeFont creates a scalable font from binary data.
func ParseOpenTypeFont(fbytes []byte) (f *ScalableFont, err error) {
	f = &ScalableFont{Binary: fbytes}
	f.SFNT, err = sfnt.Parse(f.Binary)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot parse OpenType font")
	}
	f.Fontname, _ = f.SFNT.Name(nil, sfnt.NameIDFull)
	return
}

// PrepareCase creates a typecase of a given size in CSS pixels.
func (sf *ScalableFont) PrepareCase(size float64) (*TypeCase, error) {
	if size < 1.0 || size > 1000.0 {
		tracer().Errorf("font size must be 1px < size < 1000px, is %g (set to 16px)", size)
		size = 16.0
	}
	options := &opentype.FaceOptions{
		Size:    size,
		DPI:     72, // 1pt = 1px
		Hinting: xfont.HintingNone,
	}
	face, err := opentype.NewFace(sf.SFNT, options)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot create face for %s", sf.Fontname)
	}
	typecase := &TypeCase{
		scalableFontParent: sf,
		face:               face,
		size:               size,
	}
	bounds, _ := xfont.BoundString(face, metricsSample)
	typecase.ascent = fixedToDimen(-bounds.Min.Y)
	typecase.descent = fixedToDimen(bounds.Max.Y)
	typecase.spaceWidth = fixedToDimen(xfont.MeasureString(face, " "))
	tracer().Debugf("typecase %s@%.1fpx: ascent=%s, descent=%s", sf.Fontname, size,
		typecase.ascent, typecase.descent)
	return typecase, nil
}

// fixedToDimen converts 26.6 fixed point pixels to scaled pixels.
func fixedToDimen(x fixed.Int26_6) dimen.Dimen {
	return dimen.Dimen(x) << 10
}

// ScalableFontParent returns the font a typecase has been derived from.
func (tc *TypeCase) ScalableFontParent() *ScalableFont {
	return tc.scalableFontParent
}

// PxSize returns the size of the typecase in CSS pixels.
func (tc *TypeCase) PxSize() float64 {
	return tc.size
}

// Size returns the em-size of the typecase.
func (tc *TypeCase) Size() dimen.Dimen {
	return dimen.FromPx(tc.size)
}

// Ascent is the maximum extent of glyphs above the baseline.
func (tc *TypeCase) Ascent() dimen.Dimen {
	return tc.ascent
}

// Descent is the maximum extent of glyphs below the baseline, as a
// positive value.
func (tc *TypeCase) Descent() dimen.Dimen {
	return tc.descent
}

// Ex returns the x-height, approximated as half the em-size.
func (tc *TypeCase) Ex() dimen.Dimen {
	return tc.Size().Scale(0.5)
}

// SpaceWidth returns the advance of U+0020.
func (tc *TypeCase) SpaceWidth() dimen.Dimen {
	return tc.spaceWidth
}

// MeasureString returns the advance width of a string.
func (tc *TypeCase) MeasureString(s string) (dimen.Dimen, error) {
	if tc == nil || tc.face == nil {
		return 0, core.Error(core.EMEASURE, "typecase without font face cannot measure text")
	}
	tc.mx.Lock()
	defer tc.mx.Unlock()
	return fixedToDimen(xfont.MeasureString(tc.face, s)), nil
}

// Face returns the x/image font face of a typecase, for use by raster
// backends. Faces must not be used concurrently with measuring.
func (tc *TypeCase) Face() xfont.Face {
	return tc.face
}

func (tc *TypeCase) String() string {
	if tc.scalableFontParent == nil {
		return "typecase(?)"
	}
	return tc.scalableFontParent.Fontname
}

// --- Fallback fonts --------------------------------------------------------

// FallbackFont returns a font to be used if everything else fails. It is
// always present. We use the Go fonts, selecting a variant by style and
// weight.
func FallbackFont(style xfont.Style, weight xfont.Weight) *ScalableFont {
	fallbackFontLoading.Do(loadFallbackFonts)
	bold := weight >= xfont.WeightSemiBold
	italic := style != xfont.StyleNormal
	switch {
	case bold && italic:
		return fallbackFonts["Go Bold Italic"]
	case bold:
		return fallbackFonts["Go Bold"]
	case italic:
		return fallbackFonts["Go Italic"]
	}
	return fallbackFonts["Go Regular"]
}

// MonospaceFont returns the bundled Go Mono font.
func MonospaceFont(weight xfont.Weight) *ScalableFont {
	fallbackFontLoading.Do(loadFallbackFonts)
	if weight >= xfont.WeightSemiBold {
		return fallbackFonts["Go Mono Bold"]
	}
	return fallbackFonts["Go Mono"]
}

var fallbackFontLoading sync.Once

var fallbackFonts map[string]*ScalableFont

func loadFallbackFonts() {
	fallbackFonts = make(map[string]*ScalableFont)
	for name, ttf := range map[string][]byte{
		"Go Regular":     goregular.TTF,
		"Go Bold":        gobold.TTF,
		"Go Italic":      goitalic.TTF,
		"Go Bold Italic": gobolditalic.TTF,
		"Go Mono":        gomono.TTF,
		"Go Mono Bold":   gomonobold.TTF,
	} {
		f, err := sfnt.Parse(ttf)
		if err != nil {
			panic("cannot load bundled Go font") // this cannot happen
		}
		fallbackFonts[name] = &ScalableFont{
			Fontname: name,
			Filepath: "internal",
			Binary:   ttf,
			SFNT:     f,
		}
	}
}
