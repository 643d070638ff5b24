package paint

import (
	"image/color"

	"github.com/npillmayer/boxflow/backend/gfx"
	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/boxflow/engine/dom/style"
	"github.com/npillmayer/boxflow/engine/frame"
)

// Paint draws fragments onto a device. page is the physical rect of the
// containing block of the fragments, usually the page.
func Paint(dev gfx.RenderDevice, fragments []frame.Fragment, page dimen.Rect) {
	tracer().Debugf("painting %d fragments on %s", len(fragments), page)
	for _, f := range fragments {
		paintFragment(dev, f, page)
	}
}

func paintFragment(dev gfx.RenderDevice, f frame.Fragment, cb dimen.Rect) {
	switch f := f.(type) {
	case *frame.BoxFragment:
		paintBox(dev, f, cb)
	case *frame.AnonymousFragment:
		rect := physical(f.Rect, f.Mode, cb)
		dev.RecordBBox(rect)
		for _, child := range f.Children {
			paintFragment(dev, child, rect)
		}
	case *frame.TextFragment:
		paintText(dev, f, cb)
	default:
		tracer().Errorf("cannot paint fragment of type %T", f)
	}
}

// physical maps a logical rect to absolute physical coordinates.
func physical(r frame.Rect, mode frame.Mode, cb dimen.Rect) dimen.Rect {
	return r.ToPhysical(mode, cb).Translate(cb.TopL)
}

func paintText(dev gfx.RenderDevice, t *frame.TextFragment, cb dimen.Rect) {
	rect := physical(t.ContentRect, frame.ModeOf(t.Style), cb)
	dev.RecordBBox(rect)
	if t.Text == nil || t.Text.Empty() {
		return
	}
	font := t.Text.Font()
	origin := rect.TopL
	origin.Y += font.Ascent()
	tracer().Debugf("text %q at %s", t.Text.Text(), origin)
	dev.DrawText(t.Text.Text(), origin.X.Px(), origin.Y.Px(), font, t.Style.Color)
}

func paintBox(dev gfx.RenderDevice, b *frame.BoxFragment, cb dimen.Rect) {
	mode := frame.ModeOf(b.Style)
	dev.RecordBBox(physical(b.MarginRect(), mode, cb))
	border := physical(b.BorderRect(), mode, cb)
	padding := physical(b.PaddingRect(), mode, cb)
	content := physical(b.ContentRect, mode, cb)
	if bg := b.Style.Background; bg.A > 0 {
		dev.DrawRect(border.TopL.X.Px(), border.TopL.Y.Px(),
			border.Width().Px(), border.Height().Px(), bg)
	}
	paintBorders(dev, b.Style, border, padding)
	for _, child := range b.Children {
		paintFragment(dev, child, content)
	}
}

// paintBorders draws each border edge as a single line, centered within the
// border area of its side. Widths are taken from the difference of border
// rect and padding rect.
func paintBorders(dev gfx.RenderDevice, cv *style.ComputedValues, border, padding dimen.Rect) {
	var widths [4]dimen.Dimen
	widths[style.Top] = padding.TopL.Y - border.TopL.Y
	widths[style.Right] = border.BotR.X - padding.BotR.X
	widths[style.Bottom] = border.BotR.Y - padding.BotR.Y
	widths[style.Left] = padding.TopL.X - border.TopL.X
	w, h := border.Width(), border.Height()
	for side, width := range widths {
		ls := lineStyle(cv.BorderStyle[side])
		if width <= 0 || ls == gfx.LineNone {
			continue
		}
		p := border.TopL
		var pts []dimen.Point
		switch side {
		case style.Top:
			p.Y += width / 2
			pts = []dimen.Point{p, {X: p.X + w, Y: p.Y}}
		case style.Right:
			p.X += w - width/2
			pts = []dimen.Point{p, {X: p.X, Y: p.Y + h}}
		case style.Bottom:
			p.Y += h - width/2
			pts = []dimen.Point{{X: p.X + w, Y: p.Y}, p}
		case style.Left:
			p.X += width / 2
			pts = []dimen.Point{{X: p.X, Y: p.Y + h}, p}
		}
		dev.DrawLine(pts, borderColor(cv, side), width, ls)
	}
}

func borderColor(cv *style.ComputedValues, side int) color.Color {
	return cv.BorderColor[side]
}

func lineStyle(ls style.LineStyle) gfx.LineStyle {
	switch ls {
	case style.LineStyleSolid:
		return gfx.LineSolid
	case style.LineStyleDotted:
		return gfx.LineDotted
	case style.LineStyleDashed:
		return gfx.LineDashed
	}
	return gfx.LineNone
}
