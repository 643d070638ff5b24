/*
Package recorder implements a render device which records draw calls.

It is intended for tests and for debugging the output of a painter
without rendering an image.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package recorder

import (
	"fmt"
	"image/color"
	"io"

	"github.com/npillmayer/boxflow/backend/gfx"
	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/boxflow/engine/glyphing"
)

// Op is the kind of a recorded draw call.
type Op uint8

const (
	OpText Op = iota
	OpRect
	OpLine
	OpBBox
)

func (op Op) String() string {
	return [...]string{"text", "rect", "line", "bbox"}[op]
}

// Call is a recorded draw call. Fields not applicable for an operation are
// left empty.
type Call struct {
	Op     Op
	Text   string
	X, Y   float64 // text origin or rect top left
	W, H   float64 // rect size
	Font   glyphing.Font
	Color  color.Color
	Points []dimen.Point
	Width  dimen.Dimen
	Style  gfx.LineStyle
	BBox   dimen.Rect
}

func (c Call) String() string {
	switch c.Op {
	case OpText:
		return fmt.Sprintf("text %q at (%.2f,%.2f)", c.Text, c.X, c.Y)
	case OpRect:
		return fmt.Sprintf("rect (%.2f,%.2f) %.2fx%.2f", c.X, c.Y, c.W, c.H)
	case OpLine:
		return fmt.Sprintf("line %v w=%s %s", c.Points, c.Width, c.Style)
	}
	return fmt.Sprintf("bbox %s", c.BBox)
}

// Device records all draw calls in order.
type Device struct {
	Calls []Call
}

var _ gfx.RenderDevice = &Device{}

// DrawText is part of interface gfx.RenderDevice.
func (d *Device) DrawText(text string, x, y float64, font glyphing.Font, c color.Color) {
	d.Calls = append(d.Calls, Call{Op: OpText, Text: text, X: x, Y: y, Font: font, Color: c})
}

// DrawRect is part of interface gfx.RenderDevice.
func (d *Device) DrawRect(x, y, w, h float64, c color.Color) {
	d.Calls = append(d.Calls, Call{Op: OpRect, X: x, Y: y, W: w, H: h, Color: c})
}

// DrawLine is part of interface gfx.RenderDevice.
func (d *Device) DrawLine(pts []dimen.Point, c color.Color, width dimen.Dimen, style gfx.LineStyle) {
	p := make([]dimen.Point, len(pts))
	copy(p, pts)
	d.Calls = append(d.Calls, Call{Op: OpLine, Points: p, Color: c, Width: width, Style: style})
}

// RecordBBox is part of interface gfx.RenderDevice.
func (d *Device) RecordBBox(r dimen.Rect) {
	d.Calls = append(d.Calls, Call{Op: OpBBox, BBox: r})
}

// Filter returns the recorded calls of an operation.
func (d *Device) Filter(op Op) []Call {
	var calls []Call
	for _, c := range d.Calls {
		if c.Op == op {
			calls = append(calls, c)
		}
	}
	return calls
}

// Texts returns the strings drawn, in order.
func (d *Device) Texts() []string {
	var texts []string
	for _, c := range d.Filter(OpText) {
		texts = append(texts, c.Text)
	}
	return texts
}

// Dump writes all recorded calls, one per line.
func (d *Device) Dump(w io.Writer) {
	for _, c := range d.Calls {
		fmt.Fprintln(w, c)
	}
}
