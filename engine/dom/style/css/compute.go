package css

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/boxflow/engine/dom/style"
	xfont "golang.org/x/image/font"
)

var sideNames = [4]string{"top", "right", "bottom", "left"}

// expandShorthand maps a declaration to longhand properties.
func expandShorthand(prop, value string) map[string]string {
	m := make(map[string]string)
	keyword := isGlobalKeyword(value)
	switch prop {
	case "margin", "padding":
		for i, v := range fourSides(value, keyword) {
			m[prop+"-"+sideNames[i]] = v
		}
	case "border-width", "border-style", "border-color":
		aspect := strings.TrimPrefix(prop, "border-")
		for i, v := range fourSides(value, keyword) {
			m["border-"+sideNames[i]+"-"+aspect] = v
		}
	case "border", "border-top", "border-right", "border-bottom", "border-left":
		sides := sideNames[:]
		if prop != "border" {
			sides = []string{strings.TrimPrefix(prop, "border-")}
		}
		w, s, c := splitBorder(value, keyword)
		for _, side := range sides {
			m["border-"+side+"-width"] = w
			m["border-"+side+"-style"] = s
			m["border-"+side+"-color"] = c
		}
	case "background":
		m["background-color"] = "transparent"
		if keyword {
			m["background-color"] = value
		}
		for _, tok := range tokenize(value) {
			if _, err := style.ParseColor(tok); err == nil {
				m["background-color"] = tok
			}
		}
	case "font":
		expandFont(value, keyword, m)
	default:
		m[prop] = value
	}
	return m
}

func isGlobalKeyword(v string) bool {
	switch strings.ToLower(v) {
	case "inherit", "initial", "unset":
		return true
	}
	return false
}

// fourSides distributes 1 to 4 values to top, right, bottom and left.
func fourSides(value string, keyword bool) [4]string {
	if keyword {
		return [4]string{value, value, value, value}
	}
	v := tokenize(value)
	switch len(v) {
	case 1:
		return [4]string{v[0], v[0], v[0], v[0]}
	case 2:
		return [4]string{v[0], v[1], v[0], v[1]}
	case 3:
		return [4]string{v[0], v[1], v[2], v[1]}
	case 4:
		return [4]string{v[0], v[1], v[2], v[3]}
	}
	return [4]string{}
}

// splitBorder classifies the tokens of a border shorthand into width, style
// and color. Missing components are set to their initial values.
func splitBorder(value string, keyword bool) (w, s, c string) {
	if keyword {
		return value, value, value
	}
	w, s, c = "medium", "none", "currentcolor"
	for _, tok := range tokenize(value) {
		if _, err := style.ParseLineStyle(tok); err == nil {
			s = tok
		} else if _, err := style.ParseBorderWidth(tok); err == nil {
			w = tok
		} else {
			c = tok
		}
	}
	return
}

// expandFont handles a subset of the font shorthand:
// [style] [weight] size[/line-height] family[, family]*
func expandFont(value string, keyword bool, m map[string]string) {
	if keyword {
		for _, p := range []string{"font-style", "font-weight", "font-size", "line-height", "font-family"} {
			m[p] = value
		}
		return
	}
	m["font-style"], m["font-weight"], m["line-height"] = "normal", "normal", "normal"
	toks := tokenize(value)
	for i, tok := range toks {
		lower := strings.ToLower(tok)
		if _, err := style.ParseFontStyle(lower); err == nil && lower != "normal" {
			m["font-style"] = lower
			continue
		}
		if lower == "bold" || lower == "bolder" || lower == "lighter" ||
			(len(lower) == 3 && lower[1:] == "00") {
			m["font-weight"] = lower
			continue
		}
		if lower == "normal" || lower == "small-caps" {
			continue
		}
		size := tok
		if slash := strings.IndexByte(tok, '/'); slash > 0 {
			size, m["line-height"] = tok[:slash], tok[slash+1:]
		}
		m["font-size"] = size
		m["font-family"] = strings.Join(toks[i+1:], " ")
		return
	}
}

// tokenize splits a property value at white space, keeping parenthesized
// groups like rgb(1, 2, 3) together.
func tokenize(value string) []string {
	var toks []string
	var b strings.Builder
	depth := 0
	for _, r := range value {
		switch {
		case r == '(':
			depth++
		case r == ')':
			depth--
		case depth == 0 && (r == ' ' || r == '\t' || r == '\n' || r == '\r'):
			if b.Len() > 0 {
				toks = append(toks, b.String())
				b.Reset()
			}
			continue
		}
		b.WriteRune(r)
	}
	if b.Len() > 0 {
		toks = append(toks, b.String())
	}
	return toks
}

// --- Computing values ------------------------------------------------------

// computer creates the computed style of a single element.
type computer struct {
	cv             *style.ComputedValues
	parent         *style.ComputedValues
	rem            dimen.Dimen
	viewport       dimen.Point
	borderColorSet [4]bool
}

func newComputer(parent *style.ComputedValues, rem dimen.Dimen, viewport dimen.Point) *computer {
	return &computer{
		cv:       style.InheritFrom(parent),
		parent:   parent,
		rem:      rem,
		viewport: viewport,
	}
}

// apply sets the computed values for a map of longhand declarations.
// Font size and color are computed first, as other values depend on them.
func (c *computer) apply(decls map[string]string) {
	for _, p := range []string{"font-size", "color"} {
		if v, ok := decls[p]; ok {
			c.set(p, v)
		}
	}
	for p, v := range decls {
		if p == "font-size" || p == "color" {
			continue
		}
		c.set(p, v)
	}
	for side := range c.borderColorSet {
		if !c.borderColorSet[side] {
			c.cv.BorderColor[side] = c.cv.Color
		}
	}
}

func (c *computer) set(prop, value string) {
	switch strings.ToLower(value) {
	case "inherit":
		c.copyFrom(prop, c.parentOrInitial())
		return
	case "initial":
		c.copyFrom(prop, style.InitialValues())
		return
	case "unset":
		if isInherited(prop) {
			c.copyFrom(prop, c.parentOrInitial())
		} else {
			c.copyFrom(prop, style.InitialValues())
		}
		return
	}
	if err := c.compute(prop, value); err != nil {
		tracer().Infof("ignoring declaration %s: %s (%v)", prop, value, err)
	}
}

func (c *computer) parentOrInitial() *style.ComputedValues {
	if c.parent == nil {
		return style.InitialValues()
	}
	return c.parent
}

func isInherited(prop string) bool {
	switch prop {
	case "font-family", "font-size", "font-style", "font-weight", "color", "text-align",
		"white-space", "line-height", "writing-mode", "direction":
		return true
	}
	return false
}

// side returns the index of a side from a property name like
// "border-left-width" or "padding-top", or -1.
func side(prop string) int {
	for i, name := range sideNames {
		if strings.Contains(prop, "-"+name) || prop == name {
			return i
		}
	}
	return -1
}

func isSideProperty(prop string) bool {
	return strings.HasPrefix(prop, "padding-") || strings.HasPrefix(prop, "margin-") ||
		strings.HasPrefix(prop, "border-")
}

// length computes a length, resolving font- and viewport-relative units.
func (c *computer) length(value string, autoAllowed bool) (style.DimenT, error) {
	d := style.Property(value).DimenOption()
	if d.IsNone() || d.Equals(style.Inherit) || d.Equals(style.Initial) {
		return d, fmt.Errorf("illegal length %q", value)
	}
	if d.IsAuto() && !autoAllowed {
		return d, fmt.Errorf("auto not allowed")
	}
	d = d.ScaleFromFont(c.cv.Font.Size, c.rem)
	d = d.ScaleFromViewport(c.viewport.X, c.viewport.Y)
	return d, nil
}

func (c *computer) compute(prop, value string) (err error) {
	cv := c.cv
	if isSideProperty(prop) && side(prop) < 0 {
		return fmt.Errorf("property %s not supported", prop)
	}
	switch {
	case prop == "display":
		var d style.DisplayMode
		if d, err = style.ParseDisplay(value); err == nil {
			cv.Display = d
		}
	case prop == "position":
		var p style.Position
		if p, err = style.ParsePosition(value); err == nil {
			cv.Position = p
		}
	case prop == "float":
		var f style.Float
		if f, err = style.ParseFloat(value); err == nil {
			cv.Float = f
		}
	case prop == "font-family":
		if families := style.ParseFontFamily(value); len(families) > 0 {
			cv.Font.Family = families
		}
	case prop == "font-size":
		var size dimen.Dimen
		if size, err = c.fontSize(value); err == nil {
			cv.Font.Size = size
		}
	case prop == "font-style":
		var fs xfont.Style
		if fs, err = style.ParseFontStyle(value); err == nil {
			cv.Font.Style = fs
		}
	case prop == "font-weight":
		var w xfont.Weight
		if w, err = style.ParseFontWeight(value, c.parentOrInitial().Font.Weight); err == nil {
			cv.Font.Weight = w
		}
	case prop == "color":
		err = c.color(value, &cv.Color)
	case prop == "background-color":
		err = c.color(value, &cv.Background)
	case strings.HasPrefix(prop, "padding-"):
		err = c.lengthTo(value, false, &cv.Padding[side(prop)])
	case strings.HasPrefix(prop, "margin-"):
		err = c.lengthTo(value, true, &cv.Margin[side(prop)])
	case strings.HasPrefix(prop, "border-") && strings.HasSuffix(prop, "-width"):
		var d style.DimenT
		if d, err = style.ParseBorderWidth(value); err == nil {
			cv.BorderWidth[side(prop)] = d.ScaleFromFont(cv.Font.Size, c.rem)
		}
	case strings.HasPrefix(prop, "border-") && strings.HasSuffix(prop, "-style"):
		var ls style.LineStyle
		if ls, err = style.ParseLineStyle(value); err == nil {
			cv.BorderStyle[side(prop)] = ls
		}
	case strings.HasPrefix(prop, "border-") && strings.HasSuffix(prop, "-color"):
		s := side(prop)
		if err = c.color(value, &cv.BorderColor[s]); err == nil {
			c.borderColorSet[s] = true
		}
	case prop == "top" || prop == "right" || prop == "bottom" || prop == "left":
		err = c.lengthTo(value, true, &cv.Offsets[side(prop)])
	case prop == "width":
		err = c.lengthTo(value, true, &cv.Width)
	case prop == "height":
		err = c.lengthTo(value, true, &cv.Height)
	case prop == "text-align":
		var ta style.TextAlign
		if ta, err = style.ParseTextAlign(value); err == nil {
			cv.TextAlign = ta
		}
	case prop == "white-space":
		var ws style.WhiteSpace
		if ws, err = style.ParseWhiteSpace(value); err == nil {
			cv.WhiteSpace = ws
		}
	case prop == "line-height":
		var lh style.LineHeight
		if lh, err = style.ParseLineHeight(value, cv.Font.Size, c.rem); err == nil {
			cv.LineHeight = lh
		}
	case prop == "vertical-align":
		var va style.VerticalAlign
		if va, err = style.ParseVerticalAlign(value, cv.Font.Size, c.rem); err == nil {
			cv.VerticalAlign = va
		}
	case prop == "writing-mode":
		var wm style.WritingMode
		if wm, err = style.ParseWritingMode(value); err == nil {
			cv.WritingMode = wm
		}
	case prop == "direction":
		var dir style.Direction
		if dir, err = style.ParseDirection(value); err == nil {
			cv.Direction = dir
		}
	default:
		tracer().Debugf("property %s not supported", prop)
	}
	return err
}

// color computes a color value into dst. `currentcolor` refers to the
// element's computed color.
func (c *computer) color(value string, dst *color.RGBA) error {
	if strings.EqualFold(value, "currentcolor") {
		*dst = c.cv.Color
		return nil
	}
	col, err := style.ParseColor(value)
	if err != nil {
		return err
	}
	*dst = col
	return nil
}

// lengthTo computes a length into dst.
func (c *computer) lengthTo(value string, autoAllowed bool, dst *style.DimenT) error {
	d, err := c.length(value, autoAllowed)
	if err != nil {
		return err
	}
	*dst = d
	return nil
}

// fontSizeKeywords maps absolute size keywords to pixels.
var fontSizeKeywords = map[string]float64{
	"xx-small": 9, "x-small": 10, "small": 13, "medium": 16,
	"large": 18, "x-large": 24, "xx-large": 32, "xxx-large": 48,
}

// fontSize computes font sizes. Relative sizes refer to the parent's font size.
func (c *computer) fontSize(value string) (dimen.Dimen, error) {
	value = strings.ToLower(value)
	base := c.parentOrInitial().Font.Size
	if px, ok := fontSizeKeywords[value]; ok {
		return dimen.FromPx(px), nil
	}
	switch value {
	case "smaller":
		return base.Scale(1 / 1.2), nil
	case "larger":
		return base.Scale(1.2), nil
	}
	d := style.Property(value).DimenOption()
	switch {
	case d.IsPercent():
		return d.Resolve(base), nil
	case d.IsAbsolute():
		return d.Unwrap(), nil
	case d.IsRelative():
		d = d.ScaleFromFont(base, c.rem).ScaleFromViewport(c.viewport.X, c.viewport.Y)
		if d.IsAbsolute() {
			return d.Unwrap(), nil
		}
	}
	return base, fmt.Errorf("illegal font size %q", value)
}

// copyFrom copies a single longhand property from another style.
func (c *computer) copyFrom(prop string, src *style.ComputedValues) {
	cv := c.cv
	s := side(prop)
	if isSideProperty(prop) && s < 0 {
		return
	}
	switch {
	case prop == "display":
		cv.Display = src.Display
	case prop == "position":
		cv.Position = src.Position
	case prop == "float":
		cv.Float = src.Float
	case prop == "font-family":
		cv.Font.Family = append([]string(nil), src.Font.Family...)
	case prop == "font-size":
		cv.Font.Size = src.Font.Size
	case prop == "font-style":
		cv.Font.Style = src.Font.Style
	case prop == "font-weight":
		cv.Font.Weight = src.Font.Weight
	case prop == "color":
		cv.Color = src.Color
	case prop == "background-color":
		cv.Background = src.Background
	case strings.HasPrefix(prop, "padding-"):
		cv.Padding[s] = src.Padding[s]
	case strings.HasPrefix(prop, "margin-"):
		cv.Margin[s] = src.Margin[s]
	case strings.HasPrefix(prop, "border-") && strings.HasSuffix(prop, "-width"):
		cv.BorderWidth[s] = src.BorderWidth[s]
	case strings.HasPrefix(prop, "border-") && strings.HasSuffix(prop, "-style"):
		cv.BorderStyle[s] = src.BorderStyle[s]
	case strings.HasPrefix(prop, "border-") && strings.HasSuffix(prop, "-color"):
		cv.BorderColor[s] = src.BorderColor[s]
		c.borderColorSet[s] = true
	case prop == "top" || prop == "right" || prop == "bottom" || prop == "left":
		cv.Offsets[s] = src.Offsets[s]
	case prop == "width":
		cv.Width = src.Width
	case prop == "height":
		cv.Height = src.Height
	case prop == "text-align":
		cv.TextAlign = src.TextAlign
	case prop == "white-space":
		cv.WhiteSpace = src.WhiteSpace
	case prop == "line-height":
		cv.LineHeight = src.LineHeight
	case prop == "vertical-align":
		cv.VerticalAlign = src.VerticalAlign
	case prop == "writing-mode":
		cv.WritingMode = src.WritingMode
	case prop == "direction":
		cv.Direction = src.Direction
	}
}
