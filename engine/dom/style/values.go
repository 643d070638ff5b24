package style

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/boxflow/core/percent"
	xfont "golang.org/x/image/font"
)

// Indices for the four sides of a box, used for properties like padding.
const (
	Top int = iota
	Right
	Bottom
	Left
)

// --- white-space -----------------------------------------------------------

// WhiteSpace is a type for CSS property "white-space".
type WhiteSpace uint8

const (
	WhiteSpaceNormal WhiteSpace = iota
	WhiteSpaceNowrap
	WhiteSpacePre
	WhiteSpacePreWrap
	WhiteSpacePreLine
	WhiteSpaceBreakSpaces
)

var whiteSpaceNames = []string{"normal", "nowrap", "pre", "pre-wrap", "pre-line", "break-spaces"}

func (ws WhiteSpace) String() string {
	if int(ws) < len(whiteSpaceNames) {
		return whiteSpaceNames[ws]
	}
	return "white-space(?)"
}

// Wraps is false for white-space modes which suppress line wrapping.
func (ws WhiteSpace) Wraps() bool {
	return ws != WhiteSpaceNowrap && ws != WhiteSpacePre
}

// CollapsesSpaces is true for white-space modes which collapse sequences of
// blanks.
func (ws WhiteSpace) CollapsesSpaces() bool {
	return ws == WhiteSpaceNormal || ws == WhiteSpaceNowrap || ws == WhiteSpacePreLine
}

// PreservesNewlines is true for white-space modes which keep line feeds
// as forced line breaks.
func (ws WhiteSpace) PreservesNewlines() bool {
	return ws != WhiteSpaceNormal && ws != WhiteSpaceNowrap
}

// ParseWhiteSpace parses a value for CSS property "white-space".
func ParseWhiteSpace(s string) (WhiteSpace, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range whiteSpaceNames {
		if s == name {
			return WhiteSpace(i), nil
		}
	}
	return WhiteSpaceNormal, fmt.Errorf("unknown white-space value: %q", s)
}

// --- text-align ------------------------------------------------------------

// TextAlignKind enumerates keyword values of CSS property "text-align".
type TextAlignKind uint8

const (
	TextAlignLeft TextAlignKind = iota
	TextAlignRight
	TextAlignCenter
	TextAlignJustify
	TextAlignPercentage
)

// TextAlign is a type for CSS property "text-align". Besides the keywords,
// a percentage of the free space of a line may be given, which will be
// placed before the line's content.
type TextAlign struct {
	Kind    TextAlignKind
	Percent percent.Percent
}

// Factor returns the fraction of free inline space placed before a line.
// Justification is not supported and treated as left alignment.
func (ta TextAlign) Factor() float64 {
	switch ta.Kind {
	case TextAlignRight:
		return 1
	case TextAlignCenter:
		return 0.5
	case TextAlignPercentage:
		return ta.Percent.Fraction()
	}
	return 0
}

func (ta TextAlign) String() string {
	switch ta.Kind {
	case TextAlignRight:
		return "right"
	case TextAlignCenter:
		return "center"
	case TextAlignJustify:
		return "justify"
	case TextAlignPercentage:
		return ta.Percent.String()
	}
	return "left"
}

// ParseTextAlign parses a value for CSS property "text-align".
func ParseTextAlign(s string) (TextAlign, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "left", "start":
		return TextAlign{Kind: TextAlignLeft}, nil
	case "right", "end":
		return TextAlign{Kind: TextAlignRight}, nil
	case "center":
		return TextAlign{Kind: TextAlignCenter}, nil
	case "justify":
		return TextAlign{Kind: TextAlignJustify}, nil
	}
	if strings.HasSuffix(s, "%") {
		p, err := percent.FromString(s)
		if err == nil {
			return TextAlign{Kind: TextAlignPercentage, Percent: p}, nil
		}
	}
	return TextAlign{}, fmt.Errorf("unknown text-align value: %q", s)
}

// --- line-height -----------------------------------------------------------

// LineHeightKind enumerates the forms of CSS property "line-height".
type LineHeightKind uint8

const (
	LineHeightNormal LineHeightKind = iota
	LineHeightNumber
	LineHeightLength
	LineHeightPercentage
)

// NormalLineHeight is the factor of the font size used for `line-height: normal`.
const NormalLineHeight = 1.2

// LineHeight is a type for CSS property "line-height".
type LineHeight struct {
	Kind   LineHeightKind
	Number float64     // factor for numbers, percentage value for percentages
	Length dimen.Dimen // for lengths
}

// Resolve returns the line height for a given font size.
func (lh LineHeight) Resolve(fontSize dimen.Dimen) dimen.Dimen {
	switch lh.Kind {
	case LineHeightNumber:
		return fontSize.Scale(lh.Number)
	case LineHeightLength:
		return lh.Length
	case LineHeightPercentage:
		return fontSize.Scale(lh.Number / 100)
	}
	return fontSize.Scale(NormalLineHeight)
}

func (lh LineHeight) String() string {
	switch lh.Kind {
	case LineHeightNumber:
		return strconv.FormatFloat(lh.Number, 'f', -1, 64)
	case LineHeightLength:
		return lh.Length.String()
	case LineHeightPercentage:
		return strconv.FormatFloat(lh.Number, 'f', -1, 64) + "%"
	}
	return "normal"
}

// ParseLineHeight parses a value for CSS property "line-height".
// Font-relative lengths are resolved with font size em.
func ParseLineHeight(s string, em, rem dimen.Dimen) (LineHeight, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "normal" {
		return LineHeight{Kind: LineHeightNormal}, nil
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		if n < 0 {
			return LineHeight{}, fmt.Errorf("negative line-height: %q", s)
		}
		return LineHeight{Kind: LineHeightNumber, Number: n}, nil
	}
	d, err := ParseDimen(s)
	if err != nil {
		return LineHeight{}, err
	}
	if d.IsPercent() {
		return LineHeight{Kind: LineHeightPercentage, Number: d.Unwrap().Px()}, nil
	}
	d = d.ScaleFromFont(em, rem)
	if !d.IsAbsolute() {
		return LineHeight{}, fmt.Errorf("unsupported line-height: %q", s)
	}
	return LineHeight{Kind: LineHeightLength, Length: d.Unwrap()}, nil
}

// --- vertical-align --------------------------------------------------------

// VerticalAlignKind enumerates the forms of CSS property "vertical-align".
type VerticalAlignKind uint8

const (
	VerticalAlignBaseline VerticalAlignKind = iota
	VerticalAlignSub
	VerticalAlignSuper
	VerticalAlignTop
	VerticalAlignTextTop
	VerticalAlignMiddle
	VerticalAlignBottom
	VerticalAlignTextBottom
	VerticalAlignLength
	VerticalAlignPercentage
)

var verticalAlignNames = []string{"baseline", "sub", "super", "top", "text-top", "middle",
	"bottom", "text-bottom"}

// VerticalAlign is a type for CSS property "vertical-align".
type VerticalAlign struct {
	Kind    VerticalAlignKind
	Length  dimen.Dimen // raise by length
	Percent float64     // raise by percentage of line-height, e.g. 50 for `50%`
}

func (va VerticalAlign) String() string {
	switch va.Kind {
	case VerticalAlignLength:
		return va.Length.String()
	case VerticalAlignPercentage:
		return strconv.FormatFloat(va.Percent, 'f', -1, 64) + "%"
	}
	if int(va.Kind) < len(verticalAlignNames) {
		return verticalAlignNames[va.Kind]
	}
	return "vertical-align(?)"
}

// ParseVerticalAlign parses a value for CSS property "vertical-align".
func ParseVerticalAlign(s string, em, rem dimen.Dimen) (VerticalAlign, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range verticalAlignNames {
		if s == name {
			return VerticalAlign{Kind: VerticalAlignKind(i)}, nil
		}
	}
	d, err := ParseDimen(s)
	if err != nil {
		return VerticalAlign{}, fmt.Errorf("unknown vertical-align value: %q", s)
	}
	if d.IsPercent() {
		return VerticalAlign{Kind: VerticalAlignPercentage, Percent: d.Unwrap().Px()}, nil
	}
	d = d.ScaleFromFont(em, rem)
	if !d.IsAbsolute() {
		return VerticalAlign{}, fmt.Errorf("unsupported vertical-align: %q", s)
	}
	return VerticalAlign{Kind: VerticalAlignLength, Length: d.Unwrap()}, nil
}

// --- writing-mode and direction --------------------------------------------

// WritingMode is a type for CSS property "writing-mode".
type WritingMode uint8

const (
	HorizontalTB WritingMode = iota
	VerticalRL
	VerticalLR
	SidewaysRL
	SidewaysLR
)

var writingModeNames = []string{"horizontal-tb", "vertical-rl", "vertical-lr", "sideways-rl",
	"sideways-lr"}

func (wm WritingMode) String() string {
	if int(wm) < len(writingModeNames) {
		return writingModeNames[wm]
	}
	return "writing-mode(?)"
}

// IsVertical is true if the inline axis is vertical.
func (wm WritingMode) IsVertical() bool {
	return wm != HorizontalTB
}

// ParseWritingMode parses a value for CSS property "writing-mode".
func ParseWritingMode(s string) (WritingMode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range writingModeNames {
		if s == name {
			return WritingMode(i), nil
		}
	}
	return HorizontalTB, fmt.Errorf("unknown writing-mode value: %q", s)
}

// Direction is a type for CSS property "direction".
type Direction uint8

const (
	LTR Direction = iota
	RTL
)

func (dir Direction) String() string {
	if dir == RTL {
		return "rtl"
	}
	return "ltr"
}

// ParseDirection parses a value for CSS property "direction".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ltr":
		return LTR, nil
	case "rtl":
		return RTL, nil
	}
	return LTR, fmt.Errorf("unknown direction value: %q", s)
}

// --- borders ---------------------------------------------------------------

// LineStyle is a type for CSS property "border-style".
type LineStyle uint8

const (
	LineStyleNone LineStyle = iota
	LineStyleSolid
	LineStyleDotted
	LineStyleDashed
)

func (ls LineStyle) String() string {
	switch ls {
	case LineStyleSolid:
		return "solid"
	case LineStyleDotted:
		return "dotted"
	case LineStyleDashed:
		return "dashed"
	}
	return "none"
}

// ParseLineStyle parses a value for CSS property "border-style". Styles which
// are not supported are drawn as solid lines, except `hidden`.
func ParseLineStyle(s string) (LineStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "hidden":
		return LineStyleNone, nil
	case "solid", "double", "groove", "ridge", "inset", "outset":
		return LineStyleSolid, nil
	case "dotted":
		return LineStyleDotted, nil
	case "dashed":
		return LineStyleDashed, nil
	}
	return LineStyleNone, fmt.Errorf("unknown border style: %q", s)
}

// Border width keywords.
const (
	BorderThin   = 1 * dimen.PX
	BorderMedium = 3 * dimen.PX
	BorderThick  = 5 * dimen.PX
)

// ParseBorderWidth parses a value for CSS property "border-width".
func ParseBorderWidth(s string) (DimenT, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "thin":
		return SomeDimen(BorderThin), nil
	case "medium":
		return SomeDimen(BorderMedium), nil
	case "thick":
		return SomeDimen(BorderThick), nil
	}
	d, err := ParseDimen(strings.TrimSpace(s))
	if err != nil || d.IsAuto() {
		return Dimen(), fmt.Errorf("illegal border width: %q", s)
	}
	return d, nil
}

// --- positioning -----------------------------------------------------------

// Position is a type for CSS property "position".
type Position uint8

const (
	PositionStatic Position = iota
	PositionRelative
	PositionAbsolute
	PositionFixed
)

func (p Position) String() string {
	return [...]string{"static", "relative", "absolute", "fixed"}[p&3]
}

// IsOutOfFlow is true for absolutely positioned boxes.
func (p Position) IsOutOfFlow() bool {
	return p == PositionAbsolute || p == PositionFixed
}

// ParsePosition parses a value for CSS property "position".
func ParsePosition(s string) (Position, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "static":
		return PositionStatic, nil
	case "relative", "sticky":
		return PositionRelative, nil
	case "absolute":
		return PositionAbsolute, nil
	case "fixed":
		return PositionFixed, nil
	}
	return PositionStatic, fmt.Errorf("unknown position value: %q", s)
}

// Float is a type for CSS property "float".
type Float uint8

const (
	FloatNone Float = iota
	FloatLeft
	FloatRight
)

// ParseFloat parses a value for CSS property "float".
func ParseFloat(s string) (Float, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return FloatNone, nil
	case "left", "inline-start":
		return FloatLeft, nil
	case "right", "inline-end":
		return FloatRight, nil
	}
	return FloatNone, fmt.Errorf("unknown float value: %q", s)
}

// --- fonts -----------------------------------------------------------------

// ParseFontStyle parses a value for CSS property "font-style".
func ParseFontStyle(s string) (xfont.Style, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "normal":
		return xfont.StyleNormal, nil
	case "italic":
		return xfont.StyleItalic, nil
	case "oblique":
		return xfont.StyleOblique, nil
	}
	return xfont.StyleNormal, fmt.Errorf("unknown font style: %q", s)
}

// ParseFontWeight parses a value for CSS property "font-weight".
// Relative weights are resolved against the parent's weight.
func ParseFontWeight(s string, parent xfont.Weight) (xfont.Weight, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "normal":
		return xfont.WeightNormal, nil
	case "bold":
		return xfont.WeightBold, nil
	case "bolder":
		if parent < xfont.WeightBold {
			return xfont.WeightBold, nil
		}
		return xfont.WeightBlack, nil
	case "lighter":
		if parent > xfont.WeightNormal {
			return xfont.WeightNormal, nil
		}
		return xfont.WeightThin, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 || n > 1000 {
		return xfont.WeightNormal, fmt.Errorf("unknown font weight: %q", s)
	}
	w := (n+50)/100 - 4 // 400 ⇒ 0
	if w < int(xfont.WeightThin) {
		w = int(xfont.WeightThin)
	} else if w > int(xfont.WeightBlack) {
		w = int(xfont.WeightBlack)
	}
	return xfont.Weight(w), nil
}

// ParseFontFamily splits a value for CSS property "font-family" into a list
// of family names.
func ParseFontFamily(s string) []string {
	var families []string
	for _, f := range strings.Split(s, ",") {
		f = strings.Trim(strings.TrimSpace(f), `"'`)
		if f != "" {
			families = append(families, f)
		}
	}
	return families
}
