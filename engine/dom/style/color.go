package style

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Transparent is the initial background color.
var Transparent = color.RGBA{}

// Color returns the color a property denotes. If p is not a valid color,
// black is returned.
func (p Property) Color() color.RGBA {
	c, err := ParseColor(string(p))
	if err != nil {
		tracer().Debugf("%v, using black", err)
		return color.RGBA{A: 0xff}
	}
	return c
}

// ParseColor parses a CSS color value. Supported are named colors,
// hex notations `#rgb`, `#rgba`, `#rrggbb`, `#rrggbbaa`, functional notations
// `rgb(…)` and `rgba(…)`, and `transparent`.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "transparent" {
		return Transparent, nil
	}
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	if strings.HasPrefix(s, "#") {
		return parseHexColor(s[1:])
	}
	if strings.HasPrefix(s, "rgb(") || strings.HasPrefix(s, "rgba(") {
		return parseRGBFunc(s)
	}
	return color.RGBA{}, fmt.Errorf("unknown color: %q", s)
}

func parseHexColor(h string) (color.RGBA, error) {
	var c color.RGBA
	nibbles := make([]uint8, 0, 8)
	for _, r := range h {
		v, err := strconv.ParseUint(string(r), 16, 8)
		if err != nil {
			return c, fmt.Errorf("illegal hex color: #%s", h)
		}
		nibbles = append(nibbles, uint8(v))
	}
	switch len(nibbles) {
	case 3, 4:
		c = color.RGBA{nibbles[0] * 17, nibbles[1] * 17, nibbles[2] * 17, 0xff}
		if len(nibbles) == 4 {
			c.A = nibbles[3] * 17
		}
	case 6, 8:
		c = color.RGBA{nibbles[0]<<4 | nibbles[1], nibbles[2]<<4 | nibbles[3],
			nibbles[4]<<4 | nibbles[5], 0xff}
		if len(nibbles) == 8 {
			c.A = nibbles[6]<<4 | nibbles[7]
		}
	default:
		return c, fmt.Errorf("illegal hex color: #%s", h)
	}
	return premultiply(c), nil
}

func parseRGBFunc(s string) (color.RGBA, error) {
	lp, rp := strings.IndexByte(s, '('), strings.LastIndexByte(s, ')')
	if lp < 0 || rp < lp {
		return color.RGBA{}, fmt.Errorf("illegal color function: %q", s)
	}
	args := strings.FieldsFunc(s[lp+1:rp], func(r rune) bool {
		return r == ',' || r == ' ' || r == '/'
	})
	if len(args) != 3 && len(args) != 4 {
		return color.RGBA{}, fmt.Errorf("illegal color function: %q", s)
	}
	var ch [4]uint8
	ch[3] = 0xff
	for i, a := range args {
		scale := 255.0
		if i == 3 {
			scale = 1.0 // alpha is a number 0…1
		}
		if strings.HasSuffix(a, "%") {
			a, scale = strings.TrimSuffix(a, "%"), scale/100
		}
		f, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("illegal color function: %q", s)
		}
		f *= scale
		if i == 3 {
			f *= 255
		}
		if f < 0 {
			f = 0
		} else if f > 255 {
			f = 255
		}
		ch[i] = uint8(f + 0.5)
	}
	return premultiply(color.RGBA{ch[0], ch[1], ch[2], ch[3]}), nil
}

// premultiply converts a straight-alpha color to the alpha-premultiplied
// form used by image/color.
func premultiply(c color.RGBA) color.RGBA {
	if c.A == 0xff {
		return c
	}
	a := uint16(c.A)
	return color.RGBA{
		R: uint8(uint16(c.R) * a / 0xff),
		G: uint8(uint16(c.G) * a / 0xff),
		B: uint8(uint16(c.B) * a / 0xff),
		A: c.A,
	}
}
