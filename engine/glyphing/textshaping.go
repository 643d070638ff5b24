package glyphing

import (
	"github.com/npillmayer/boxflow/core/dimen"
	xfont "golang.org/x/image/font"
)

// Font is the capability set layout needs from a font at a given size.
// Fonts are shared between segments and must not change once created.
// *font.TypeCase is the canonical implementation.
type Font interface {
	Size() dimen.Dimen    // em-size
	Ascent() dimen.Dimen  // extent above the baseline
	Descent() dimen.Dimen // extent below the baseline, positive
	Ex() dimen.Dimen      // x-height
	MeasureString(string) (dimen.Dimen, error)
}

// FaceProvider is implemented by fonts which are backed by an x/image
// font face. Raster backends use it to draw glyphs.
type FaceProvider interface {
	Face() xfont.Face
}
