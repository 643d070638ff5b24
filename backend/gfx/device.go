package gfx

import (
	"image/color"

	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/boxflow/engine/glyphing"
)

// RenderDevice is a drawing surface. Coordinates are physical and given in
// CSS pixels.
type RenderDevice interface {
	// DrawText draws a string with its baseline starting at (x, y).
	DrawText(text string, x, y float64, font glyphing.Font, c color.Color)
	// DrawRect fills a rectangle.
	DrawRect(x, y, w, h float64, c color.Color)
	// DrawLine draws a polyline. The line is centered on the points.
	DrawLine(pts []dimen.Point, c color.Color, width dimen.Dimen, style LineStyle)
	// RecordBBox reports the bounding box of a painted fragment.
	RecordBBox(r dimen.Rect)
}

// LineStyle is the stroke style of lines.
type LineStyle uint8

// Line styles. LineNone is never drawn.
const (
	LineNone LineStyle = iota
	LineSolid
	LineDotted
	LineDashed
)

func (ls LineStyle) String() string {
	switch ls {
	case LineSolid:
		return "solid"
	case LineDotted:
		return "dotted"
	case LineDashed:
		return "dashed"
	}
	return "none"
}

// DashPattern returns the lengths of alternating dashes and gaps for a line
// style and width, in pixels. Solid lines have an empty pattern.
func DashPattern(style LineStyle, width dimen.Dimen) []float64 {
	w := width.Px()
	if w < 1 {
		w = 1
	}
	switch style {
	case LineSolid:
		return nil
	case LineDotted:
		return []float64{w, w}
	case LineDashed:
		return []float64{3 * w, 3 * w}
	}
	tracer().Errorf("no dash pattern for line style %s", style)
	return nil
}
