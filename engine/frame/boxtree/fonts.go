package boxtree

import (
	"github.com/npillmayer/boxflow/core/font"
	"github.com/npillmayer/boxflow/engine/dom/style"
	"github.com/npillmayer/boxflow/engine/glyphing"
)

// FontProvider selects a font for a computed style.
type FontProvider interface {
	FontFor(cv *style.ComputedValues) (glyphing.Font, error)
}

// FontFunc is an adapter to use an ordinary function as a FontProvider.
type FontFunc func(cv *style.ComputedValues) (glyphing.Font, error)

// FontFor calls f(cv).
func (f FontFunc) FontFor(cv *style.ComputedValues) (glyphing.Font, error) {
	return f(cv)
}

// RegistryFonts provides fonts from a font registry. If Registry is nil, the
// global registry is used.
type RegistryFonts struct {
	Registry *font.Registry
}

// FontFor returns a typecase for the font properties of cv.
func (rf RegistryFonts) FontFor(cv *style.ComputedValues) (glyphing.Font, error) {
	registry := rf.Registry
	if registry == nil {
		registry = font.GlobalRegistry()
	}
	tc, err := registry.TypeCase(cv.Font.Family, cv.Font.Style, cv.Font.Weight, cv.Font.Size.Px())
	if err != nil {
		return nil, err
	}
	return tc, nil
}
