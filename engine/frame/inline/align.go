package inline

import (
	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/boxflow/engine/dom/style"
	"github.com/npillmayer/boxflow/engine/frame"
	"github.com/npillmayer/boxflow/engine/glyphing"
)

// baselineShift returns the shift of the baseline of an inline box relative
// to the baseline of its parent. Positive values move the box down.
//
// Keywords which align to the line box (top, bottom) or to the parent's
// content area (text-top, text-bottom) are not supported and treated as
// baseline.
func baselineShift(cv *style.ComputedValues, descent dimen.Dimen, parent *nestingLevel) dimen.Dimen {
	va := cv.VerticalAlign
	switch va.Kind {
	case style.VerticalAlignSub:
		return parent.ascent.Halve()
	case style.VerticalAlignSuper:
		return -parent.ascent.Halve()
	case style.VerticalAlignMiddle:
		return descent - parent.ex.Halve()
	case style.VerticalAlignLength:
		return -va.Length
	case style.VerticalAlignPercentage:
		return -cv.ResolvedLineHeight().Scale(va.Percent / 100)
	}
	return 0
}

// lineMetrics returns ascent and descent of a text run, each including half
// of the leading. Ascent plus descent always equals the line height.
func lineMetrics(cv *style.ComputedValues, font glyphing.Font) (dimen.Dimen, dimen.Dimen) {
	asc, desc := font.Ascent(), font.Descent()
	leading := cv.LineHeight.Resolve(font.Size()) - (asc + desc)
	half := leading / 2
	return asc + half, desc + leading - half
}

// relativeOffset returns the offset of a relatively positioned box. Left
// takes precedence over right, and top over bottom. Percentages for left
// and right refer to the inline size of the containing block, for top and
// bottom to its block size.
func relativeOffset(cv *style.ComputedValues, cb ContainingBlock) frame.Vec2 {
	if cv.Position != style.PositionRelative {
		return frame.Vec2{}
	}
	var dx, dy dimen.Dimen
	if l := cv.Offsets[style.Left]; !l.IsAuto() && !l.IsNone() {
		dx = l.Resolve(cb.InlineSize)
	} else if r := cv.Offsets[style.Right]; !r.IsAuto() && !r.IsNone() {
		dx = -r.Resolve(cb.InlineSize)
	}
	if t := cv.Offsets[style.Top]; !t.IsAuto() && !t.IsNone() {
		dy = t.Resolve(cb.BlockSize)
	} else if b := cv.Offsets[style.Bottom]; !b.IsAuto() && !b.IsNone() {
		dy = -b.Resolve(cb.BlockSize)
	}
	if dx == 0 && dy == 0 {
		return frame.Vec2{}
	}
	// map a zero-sized physical rect to get a logical offset vector
	p := dimen.RectFrom(dimen.Point{X: dx, Y: dy}, 0, 0)
	return frame.FromPhysical(p, cb.Mode, dimen.Rect{}).StartCorner
}
