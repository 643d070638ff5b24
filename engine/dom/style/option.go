package style

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/boxflow/core/option"
)

// Property is a raw CSS property value, as found in a style declaration.
type Property string

// PropertyType is a helper type for special values of properties, e.g.:
//
//	auto
//	initial
//	inherit
type PropertyType int

// Auto, Inherit and Initial are constant values for options-matching.
// Use with
//
//	option.Of{
//	     style.Auto: …   // will match a DimenT with value "auto"
//	}
const (
	Auto       PropertyType = 1 // for option matching
	Inherit    PropertyType = 2 // for option matching
	Initial    PropertyType = 3 // for option matching
	FontScaled PropertyType = 4 // for option matching: dimension is font-dependent
	Percentage PropertyType = 5 // for option matching: dimension is a percentage
)

const (
	dimenNone uint32 = 0

	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	dimenInherit  uint32 = 0x0004
	dimenInitial  uint32 = 0x0008

	dimenEM    uint32 = 0x0010
	dimenEX    uint32 = 0x0020
	dimenCH    uint32 = 0x0040
	dimenREM   uint32 = 0x0080
	dimenVW    uint32 = 0x0100
	dimenVH    uint32 = 0x0200
	dimenVMIN  uint32 = 0x0400
	dimenVMAX  uint32 = 0x0800
	dimenPRCNT uint32 = 0x1000
)

// --- DimenT-----------------------------------------------------------------

// DimenT is an option type for CSS dimensions.
//
// Relative dimensions hold their numeric value as a fixed point number
// scaled like pixels, i.e. `1.5em` is held as 1.5*dimen.PX.
type DimenT struct {
	d     dimen.Dimen
	flags uint32
}

// SomeDimen creates an optional dimen with an initial value of x.
func SomeDimen(x dimen.Dimen) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// Dimen creates an optional dimen without an initial value.
func Dimen() DimenT {
	return DimenT{d: 0, flags: dimenNone}
}

// AutoDimen creates a dimension with value `auto`.
func AutoDimen() DimenT {
	return DimenT{flags: dimenAuto}
}

// PercentDimen creates a dimension for a percentage, e.g. 12.5 for `12.5%`.
func PercentDimen(pct float64) DimenT {
	return DimenT{d: dimen.FromPx(pct), flags: dimenPRCNT}
}

// Match is part of interface option.Type.
func (o DimenT) Match(choices interface{}) (value interface{}, err error) {
	return option.Match(o, choices)
}

// Equals is part of interface option.Type.
func (o DimenT) Equals(other interface{}) bool {
	switch i := other.(type) {
	case dimen.Dimen:
		return o.IsAbsolute() && o.Unwrap() == i
	case int32:
		return o.IsAbsolute() && o.Unwrap() == dimen.Dimen(i)
	case int:
		return o.IsAbsolute() && o.Unwrap() == dimen.Dimen(i)
	case PropertyType:
		switch i {
		case Auto:
			return o.flags&dimenAuto > 0
		case Initial:
			return o.flags&dimenInitial > 0
		case Inherit:
			return o.flags&dimenInherit > 0
		case FontScaled:
			return o.flags&dimenEM > 0 || o.flags&dimenEX > 0 ||
				o.flags&dimenREM > 0 || o.flags&dimenCH > 0
		case Percentage:
			return o.IsPercent()
		}
	case string:
		switch i {
		case "%":
			return o.IsPercent()
		}
	}
	return false
}

// Unwrap returns the underlying dimension of o.
func (o DimenT) Unwrap() dimen.Dimen {
	return o.d
}

// IsNone returns true if o is unset.
func (o DimenT) IsNone() bool {
	return o.flags == dimenNone
}

// IsAbsolute returns true if o holds a fixed length.
func (o DimenT) IsAbsolute() bool {
	return o.flags == dimenAbsolute
}

// IsAuto returns true if o is `auto`.
func (o DimenT) IsAuto() bool {
	return o.flags&dimenAuto > 0
}

// IsPercent returns true if o is a percentage.
func (o DimenT) IsPercent() bool {
	return o.flags&dimenPRCNT > 0
}

// IsRelative returns true if o represents a valid relative dimension (`%`, `em`, etc.).
func (o DimenT) IsRelative() bool {
	return o.flags&0xfff0 > 0
}

// Resolve returns the length of o. Percentages are resolved relative to ref.
// Unset, `auto` and unresolved font- or viewport-relative values resolve
// to zero.
func (o DimenT) Resolve(ref dimen.Dimen) dimen.Dimen {
	switch {
	case o.IsAbsolute():
		return o.d
	case o.IsPercent():
		return dimen.Dimen(int64(ref) * int64(o.d) / (100 * int64(dimen.PX)))
	}
	return 0
}

// ScaleFromFont resolves font-relative units, given the current font size and
// the font size of the root element. `ex` and `ch` are approximated as half
// an em.
func (o DimenT) ScaleFromFont(em, rem dimen.Dimen) DimenT {
	scale := func(base dimen.Dimen) DimenT {
		return SomeDimen(dimen.Dimen(int64(base) * int64(o.d) / int64(dimen.PX)))
	}
	switch o.flags {
	case dimenEM:
		return scale(em)
	case dimenEX, dimenCH:
		return scale(em / 2)
	case dimenREM:
		return scale(rem)
	}
	return o
}

// ScaleFromViewport resolves viewport-relative units.
func (o DimenT) ScaleFromViewport(vw, vh dimen.Dimen) DimenT {
	scale := func(base dimen.Dimen) DimenT {
		return SomeDimen(dimen.Dimen(int64(base) * int64(o.d) / (100 * int64(dimen.PX))))
	}
	switch o.flags {
	case dimenVW:
		return scale(vw)
	case dimenVH:
		return scale(vh)
	case dimenVMIN:
		return scale(dimen.Min(vw, vh))
	case dimenVMAX:
		return scale(dimen.Max(vw, vh))
	}
	return o
}

func (o DimenT) String() string {
	if o.IsNone() {
		return "DimenT.None"
	}
	switch o.flags & 0x000f {
	case dimenAuto:
		return "auto"
	case dimenInitial:
		return "initial"
	case dimenInherit:
		return "inherit"
	}
	if o.IsRelative() {
		if unit, ok := relUnitMap[o.flags&0xfff0]; ok {
			return strconv.FormatFloat(o.d.Px(), 'f', -1, 64) + unit
		}
	}
	return o.d.String()
}

var relUnitMap map[uint32]string = map[uint32]string{
	dimenEM:    "em",
	dimenEX:    "ex",
	dimenCH:    "ch",
	dimenREM:   "rem",
	dimenVW:    "vw",
	dimenVH:    "vh",
	dimenVMIN:  "vmin",
	dimenVMAX:  "vmax",
	dimenPRCNT: "%",
}

var relUnitStringMap map[string]uint32 = map[string]uint32{
	"em":   dimenEM,
	"ex":   dimenEX,
	"ch":   dimenCH,
	"rem":  dimenREM,
	"vw":   dimenVW,
	"vh":   dimenVH,
	"vmin": dimenVMIN,
	"vmax": dimenVMAX,
	"%":    dimenPRCNT,
}

// DimenOption returns an optional dimension type from a property string.
// It will never return an error, even with illegal input, but instead will then
// return an unset dimension.
func (p Property) DimenOption() DimenT {
	switch strings.TrimSpace(string(p)) {
	case "auto":
		return DimenT{flags: dimenAuto}
	case "initial":
		return DimenT{flags: dimenInitial}
	case "inherit":
		return DimenT{flags: dimenInherit}
	}
	d, err := ParseDimen(strings.TrimSpace(string(p)))
	if err != nil {
		return Dimen()
	}
	return d
}

var dimenPattern = regexp.MustCompile(`^([+\-]?[0-9]*\.?[0-9]+)(%|[a-zA-Z]{2,4})?$`)

// ErrDimenFormat is returned by ParseDimen for malformed input.
var ErrDimenFormat = errors.New("format error parsing dimension")

// ParseDimen parses a string to return an optional dimension. Syntax is CSS Unit.
// Valid dimensions are
//
//	15px
//	80%
//	-1.5rem
//	0
func ParseDimen(s string) (DimenT, error) {
	d := dimenPattern.FindStringSubmatch(s)
	if len(d) < 2 {
		return Dimen(), ErrDimenFormat
	}
	if len(d) < 3 || d[2] == "" {
		n, err := strconv.ParseFloat(d[1], 64)
		if err != nil || n != 0 {
			return Dimen(), fmt.Errorf("%w: unitless length %q", ErrDimenFormat, s)
		}
		return SomeDimen(0), nil
	}
	if unit, ok := relUnitStringMap[strings.ToLower(d[2])]; ok {
		n, err := strconv.ParseFloat(d[1], 64)
		if err != nil {
			return Dimen(), ErrDimenFormat
		}
		return DimenT{d: dimen.FromPx(n), flags: unit}, nil
	}
	x, _, err := dimen.ParseDimen(s)
	if err != nil {
		return Dimen(), fmt.Errorf("%w: %q", ErrDimenFormat, s)
	}
	return SomeDimen(x), nil
}
