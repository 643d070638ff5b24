package paint

import (
	"image/color"
	"testing"

	"github.com/npillmayer/boxflow/backend/gfx"
	"github.com/npillmayer/boxflow/backend/gfx/recorder"
	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/boxflow/engine/dom/style"
	"github.com/npillmayer/boxflow/engine/frame"
	"github.com/npillmayer/boxflow/engine/glyphing"
	"github.com/npillmayer/boxflow/engine/glyphing/monospace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const px = dimen.PX

var mono = monospace.WithMetrics(10*px, 10*px, 5*px, 8*px, 2*px)

var (
	red  = color.RGBA{R: 0xff, A: 0xff}
	blue = color.RGBA{B: 0xff, A: 0xff}
)

func rect(i, b, w, h dimen.Dimen) frame.Rect {
	return frame.Rect{
		StartCorner: frame.Vec2{Inline: i * px, Block: b * px},
		Size:        frame.Vec2{Inline: w * px, Block: h * px},
	}
}

func page() dimen.Rect {
	return dimen.RectFrom(dimen.Point{X: 10 * px, Y: 20 * px}, 200*px, 100*px)
}

func TestBackgroundAndBorder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.paint")
	defer teardown()
	//
	cv := style.InitialValues()
	cv.Background = red
	cv.BorderStyle[style.Top] = style.LineStyleSolid
	cv.BorderColor[style.Top] = blue
	box := &frame.BoxFragment{
		Style:       cv,
		ContentRect: rect(5, 5, 50, 20),
		Padding:     frame.Sides{InlineStart: 1 * px},
		Border:      frame.Sides{BlockStart: 2 * px},
	}
	dev := &recorder.Device{}
	Paint(dev, []frame.Fragment{box}, page())
	rects := dev.Filter(recorder.OpRect)
	require.Len(t, rects, 1)
	assert.Equal(t, recorder.Call{Op: recorder.OpRect, X: 14, Y: 23, W: 51, H: 22, Color: red}, rects[0])
	lines := dev.Filter(recorder.OpLine)
	require.Len(t, lines, 1)
	assert.Equal(t, []dimen.Point{{X: 14 * px, Y: 24 * px}, {X: 65 * px, Y: 24 * px}}, lines[0].Points)
	assert.Equal(t, 2*px, lines[0].Width)
	assert.Equal(t, gfx.LineSolid, lines[0].Style)
	assert.Equal(t, blue, lines[0].Color)
}

func TestTransparentBackgroundIsSkipped(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.paint")
	defer teardown()
	//
	box := &frame.BoxFragment{Style: style.InitialValues(), ContentRect: rect(0, 0, 50, 20)}
	dev := &recorder.Device{}
	Paint(dev, []frame.Fragment{box}, page())
	assert.Empty(t, dev.Filter(recorder.OpRect))
	require.Len(t, dev.Filter(recorder.OpBBox), 1)
}

func TestBorderOfStyleNoneIsSkipped(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.paint")
	defer teardown()
	//
	cv := style.InitialValues()
	cv.BorderStyle[style.Left] = style.LineStyleDashed
	box := &frame.BoxFragment{
		Style:       cv,
		ContentRect: rect(4, 0, 50, 20),
		Border:      frame.Sides{InlineStart: 4 * px, InlineEnd: 4 * px},
	}
	dev := &recorder.Device{}
	Paint(dev, []frame.Fragment{box}, page())
	lines := dev.Filter(recorder.OpLine)
	require.Len(t, lines, 1)
	assert.Equal(t, gfx.LineDashed, lines[0].Style)
	// left edge is drawn upwards, centered in the border area
	assert.Equal(t, []dimen.Point{{X: 12 * px, Y: 40 * px}, {X: 12 * px, Y: 20 * px}}, lines[0].Points)
}

func TestTextInNestedBox(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.paint")
	defer teardown()
	//
	seg, err := glyphing.Shape("Hi", mono)
	require.NoError(t, err)
	cv := style.InitialValues()
	text := &frame.TextFragment{Style: cv, ContentRect: rect(2, 0, 20, 10), Text: seg}
	box := &frame.BoxFragment{Style: cv, ContentRect: rect(5, 5, 50, 10), Children: []frame.Fragment{text}}
	line := &frame.AnonymousFragment{Rect: rect(0, 30, 200, 20), Children: []frame.Fragment{box}}
	dev := &recorder.Device{}
	Paint(dev, []frame.Fragment{line}, page())
	texts := dev.Filter(recorder.OpText)
	require.Len(t, texts, 1)
	assert.Equal(t, "Hi", texts[0].Text)
	// page (10,20) + line (0,30) + box (5,5) + text (2,0), baseline at ascent
	assert.Equal(t, 17.0, texts[0].X)
	assert.Equal(t, 63.0, texts[0].Y)
	assert.Equal(t, cv.Color, texts[0].Color)
	assert.Len(t, dev.Filter(recorder.OpBBox), 3)
}

func TestRightToLeftLine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.paint")
	defer teardown()
	//
	line := &frame.AnonymousFragment{
		Rect: rect(0, 0, 50, 20),
		Mode: frame.Mode{WritingMode: style.HorizontalTB, Direction: style.RTL},
	}
	dev := &recorder.Device{}
	Paint(dev, []frame.Fragment{line}, page())
	bboxes := dev.Filter(recorder.OpBBox)
	require.Len(t, bboxes, 1)
	assert.Equal(t, dimen.Point{X: 160 * px, Y: 20 * px}, bboxes[0].BBox.TopL)
}

func TestEmptyTextDrawsNothing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.paint")
	defer teardown()
	//
	text := &frame.TextFragment{Style: style.InitialValues(), ContentRect: rect(0, 0, 0, 10)}
	dev := &recorder.Device{}
	Paint(dev, []frame.Fragment{text}, page())
	assert.Empty(t, dev.Texts())
}
