/*
Package ggadapter implements a raster render device on top of package gg
(github.com/fogleman/gg).

Text is drawn with the font face of fonts implementing
glyphing.FaceProvider. Other fonts, e.g. monospace test fonts, are drawn
with gg's default face.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package ggadapter

import (
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"
	"github.com/npillmayer/boxflow/backend/gfx"
	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/boxflow/engine/glyphing"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxflow.gfx'.
func tracer() tracing.Trace {
	return tracing.Select("boxflow.gfx")
}

// Device draws onto an in-memory image.
type Device struct {
	dc    *gg.Context
	bbox  dimen.Rect // union of recorded bounding boxes
	boxes int
}

var _ gfx.RenderDevice = &Device{}

// New creates a device for an image of width × height pixels. If background
// is non-nil, the image is cleared with it.
func New(width, height int, background color.Color) *Device {
	dc := gg.NewContext(width, height)
	if background != nil {
		dc.SetColor(background)
		dc.Clear()
	}
	return &Device{dc: dc}
}

// Context returns the underlying gg drawing context.
func (d *Device) Context() *gg.Context {
	return d.dc
}

// DrawText is part of interface gfx.RenderDevice.
func (d *Device) DrawText(text string, x, y float64, font glyphing.Font, c color.Color) {
	if fp, ok := font.(glyphing.FaceProvider); ok {
		d.dc.SetFontFace(fp.Face())
	}
	d.dc.SetColor(c)
	d.dc.DrawString(text, x, y)
}

// DrawRect is part of interface gfx.RenderDevice.
func (d *Device) DrawRect(x, y, w, h float64, c color.Color) {
	d.dc.SetColor(c)
	d.dc.DrawRectangle(x, y, w, h)
	d.dc.Fill()
}

// DrawLine is part of interface gfx.RenderDevice.
func (d *Device) DrawLine(pts []dimen.Point, c color.Color, width dimen.Dimen, style gfx.LineStyle) {
	if len(pts) < 2 || style == gfx.LineNone {
		return
	}
	d.dc.SetColor(c)
	d.dc.SetLineWidth(width.Px())
	d.dc.SetDash(gfx.DashPattern(style, width)...)
	d.dc.MoveTo(pts[0].X.Px(), pts[0].Y.Px())
	for _, p := range pts[1:] {
		d.dc.LineTo(p.X.Px(), p.Y.Px())
	}
	d.dc.Stroke()
	d.dc.SetDash()
}

// RecordBBox is part of interface gfx.RenderDevice.
func (d *Device) RecordBBox(r dimen.Rect) {
	if d.boxes == 0 {
		d.bbox = r
	} else {
		d.bbox.TopL.X = dimen.Min(d.bbox.TopL.X, r.TopL.X)
		d.bbox.TopL.Y = dimen.Min(d.bbox.TopL.Y, r.TopL.Y)
		d.bbox.BotR.X = dimen.Max(d.bbox.BotR.X, r.BotR.X)
		d.bbox.BotR.Y = dimen.Max(d.bbox.BotR.Y, r.BotR.Y)
	}
	d.boxes++
}

// BBox returns the union of all bounding boxes recorded so far.
func (d *Device) BBox() dimen.Rect {
	return d.bbox
}

// Image returns the image drawn so far.
func (d *Device) Image() image.Image {
	return d.dc.Image()
}

// SavePNG writes the image to a PNG file.
func (d *Device) SavePNG(path string) error {
	tracer().Infof("writing image to %s", path)
	return d.dc.SavePNG(path)
}

// EncodePNG writes the image in PNG format.
func (d *Device) EncodePNG(w io.Writer) error {
	return d.dc.EncodePNG(w)
}
