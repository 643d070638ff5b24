package style

import (
	"fmt"
	"image/color"

	"github.com/npillmayer/boxflow/core/dimen"
	xfont "golang.org/x/image/font"
)

// FontValues groups the computed font properties.
type FontValues struct {
	Family []string    // font-family, in order of preference
	Size   dimen.Dimen // font-size, absolute
	Style  xfont.Style
	Weight xfont.Weight
}

// ComputedValues is the computed style of an element.
//
// Arrays of four values are indexed by Top, Right, Bottom and Left.
// Border colors are always resolved, i.e. `currentcolor` has been replaced by
// the element's color.
type ComputedValues struct {
	Display       DisplayMode
	Position      Position
	Float         Float
	Font          FontValues
	Color         color.RGBA
	Background    color.RGBA
	Padding       [4]DimenT // absolute or percentage
	Margin        [4]DimenT // absolute, percentage or auto
	BorderWidth   [4]DimenT // absolute
	BorderStyle   [4]LineStyle
	BorderColor   [4]color.RGBA
	Offsets       [4]DimenT // top, right, bottom, left for positioned boxes
	Width, Height DimenT
	TextAlign     TextAlign
	WhiteSpace    WhiteSpace
	LineHeight    LineHeight
	VerticalAlign VerticalAlign
	WritingMode   WritingMode
	Direction     Direction
}

// DefaultFontSize is the initial font size.
const DefaultFontSize = 16 * dimen.PX

// InitialValues returns a style with initial values for all properties.
func InitialValues() *ComputedValues {
	cv := &ComputedValues{
		Display: InlineMode | FlowMode,
		Font: FontValues{
			Family: []string{"sans-serif"},
			Size:   DefaultFontSize,
			Style:  xfont.StyleNormal,
			Weight: xfont.WeightNormal,
		},
		Color:      color.RGBA{A: 0xff},
		Background: Transparent,
		Width:      AutoDimen(),
		Height:     AutoDimen(),
	}
	for side := Top; side <= Left; side++ {
		cv.Padding[side] = SomeDimen(0)
		cv.Margin[side] = SomeDimen(0)
		cv.BorderWidth[side] = SomeDimen(BorderMedium)
		cv.BorderStyle[side] = LineStyleNone
		cv.BorderColor[side] = cv.Color
		cv.Offsets[side] = AutoDimen()
	}
	return cv
}

// InheritFrom creates a style for a child element of an element with style
// parent. Inherited properties are copied from parent, all other properties
// are set to their initial values. If parent is nil, initial values are
// returned.
func InheritFrom(parent *ComputedValues) *ComputedValues {
	cv := InitialValues()
	if parent == nil {
		return cv
	}
	cv.Font = parent.Font
	cv.Font.Family = append([]string(nil), parent.Font.Family...)
	cv.Color = parent.Color
	cv.TextAlign = parent.TextAlign
	cv.WhiteSpace = parent.WhiteSpace
	cv.LineHeight = parent.LineHeight
	cv.WritingMode = parent.WritingMode
	cv.Direction = parent.Direction
	for side := Top; side <= Left; side++ {
		cv.BorderColor[side] = cv.Color
	}
	return cv
}

// ForAnonymousBox returns the style for an anonymous box created as a child
// of an element with style cv. Anonymous boxes inherit what can be inherited
// and carry initial values otherwise.
func (cv *ComputedValues) ForAnonymousBox() *ComputedValues {
	anon := InheritFrom(cv)
	anon.Display = BlockMode | FlowMode
	return anon
}

// ResolvedLineHeight returns the line height in effect for the element's font.
func (cv *ComputedValues) ResolvedLineHeight() dimen.Dimen {
	return cv.LineHeight.Resolve(cv.Font.Size)
}

// EffectiveBorderWidth returns the used width of the border at side. Borders
// with style none have zero width.
func (cv *ComputedValues) EffectiveBorderWidth(side int) DimenT {
	if cv.BorderStyle[side] == LineStyleNone {
		return SomeDimen(0)
	}
	return cv.BorderWidth[side]
}

func (cv *ComputedValues) String() string {
	return fmt.Sprintf("style{display=%s, font=%v@%s, color=%v}", cv.Display,
		cv.Font.Family, cv.Font.Size, cv.Color)
}
