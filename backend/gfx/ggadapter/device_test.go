package ggadapter

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/npillmayer/boxflow/backend/gfx"
	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/boxflow/engine/glyphing/monospace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
)

func rgba(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

func TestDrawRect(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.gfx")
	defer teardown()
	//
	d := New(20, 20, color.White)
	d.DrawRect(5, 5, 10, 10, colornames.Red)
	img := d.Image()
	assert.Equal(t, color.RGBA{R: 255, A: 255}, rgba(img.At(10, 10)))
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, rgba(img.At(1, 1)))
}

func TestDrawLine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.gfx")
	defer teardown()
	//
	d := New(20, 20, color.White)
	pts := []dimen.Point{{X: 0, Y: 10 * dimen.PX}, {X: 20 * dimen.PX, Y: 10 * dimen.PX}}
	d.DrawLine(pts, colornames.Blue, 4*dimen.PX, gfx.LineSolid)
	assert.Equal(t, color.RGBA{B: 255, A: 255}, rgba(d.Image().At(10, 10)))
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, rgba(d.Image().At(10, 2)))
	// lines of style none are not drawn
	d.DrawLine([]dimen.Point{{X: 0, Y: 2 * dimen.PX}, {X: 20 * dimen.PX, Y: 2 * dimen.PX}},
		colornames.Blue, 2*dimen.PX, gfx.LineNone)
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, rgba(d.Image().At(10, 2)))
}

func TestDrawTextWithoutFace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.gfx")
	defer teardown()
	//
	d := New(60, 20, color.White)
	d.DrawText("Hello", 2, 15, monospace.New(10*dimen.PX), color.Black)
	dark := 0
	b := d.Image().Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if rgba(d.Image().At(x, y)).R < 128 {
				dark++
			}
		}
	}
	assert.True(t, dark > 0, "expected some pixels to be painted")
}

func TestBBoxAndPNG(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.gfx")
	defer teardown()
	//
	d := New(10, 10, nil)
	d.RecordBBox(dimen.RectFrom(dimen.Point{X: 2 * dimen.PX, Y: 3 * dimen.PX}, 4*dimen.PX, 4*dimen.PX))
	d.RecordBBox(dimen.RectFrom(dimen.Point{X: 1 * dimen.PX, Y: 5 * dimen.PX}, 2*dimen.PX, 8*dimen.PX))
	bbox := d.BBox()
	assert.Equal(t, dimen.Point{X: 1 * dimen.PX, Y: 3 * dimen.PX}, bbox.TopL)
	assert.Equal(t, dimen.Point{X: 6 * dimen.PX, Y: 13 * dimen.PX}, bbox.BotR)
	var buf bytes.Buffer
	require.NoError(t, d.EncodePNG(&buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))
}
