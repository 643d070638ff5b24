package frame

/*
BSD License

Copyright (c) 2017–2021, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.  */

import (
	"fmt"

	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/boxflow/core/option"
	"github.com/npillmayer/boxflow/engine/dom/style"
)

// Vec2 is a vector in logical coordinates.
type Vec2 struct {
	Inline dimen.Dimen
	Block  dimen.Dimen
}

// Add returns v+w.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{Inline: v.Inline + w.Inline, Block: v.Block + w.Block}
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%s,%s)", v.Inline, v.Block)
}

// Rect is a rectangle in logical coordinates, relative to a containing block.
type Rect struct {
	StartCorner Vec2
	Size        Vec2
}

// Inflate returns a rect grown outwards by sides s. Negative sides shrink r.
func (r Rect) Inflate(s Sides) Rect {
	return Rect{
		StartCorner: Vec2{
			Inline: r.StartCorner.Inline - s.InlineStart,
			Block:  r.StartCorner.Block - s.BlockStart,
		},
		Size: Vec2{
			Inline: r.Size.Inline + s.InlineSum(),
			Block:  r.Size.Block + s.BlockSum(),
		},
	}
}

// Translate returns r shifted by v.
func (r Rect) Translate(v Vec2) Rect {
	r.StartCorner = r.StartCorner.Add(v)
	return r
}

// InlineEnd is the inline coordinate of the end edge of r.
func (r Rect) InlineEnd() dimen.Dimen {
	return r.StartCorner.Inline + r.Size.Inline
}

// BlockEnd is the block coordinate of the end edge of r.
func (r Rect) BlockEnd() dimen.Dimen {
	return r.StartCorner.Block + r.Size.Block
}

func (r Rect) String() string {
	return fmt.Sprintf("rect{%s+%s}", r.StartCorner, r.Size)
}

// Sides holds a length for each of the four logical sides of a box.
// It is used for padding, border widths and margins.
type Sides struct {
	InlineStart dimen.Dimen
	InlineEnd   dimen.Dimen
	BlockStart  dimen.Dimen
	BlockEnd    dimen.Dimen
}

// InlineSum returns the sum of the sides along the inline axis.
func (s Sides) InlineSum() dimen.Dimen {
	return s.InlineStart + s.InlineEnd
}

// BlockSum returns the sum of the sides along the block axis.
func (s Sides) BlockSum() dimen.Dimen {
	return s.BlockStart + s.BlockEnd
}

// Add returns the side-wise sum of s and t.
func (s Sides) Add(t Sides) Sides {
	return Sides{
		InlineStart: s.InlineStart + t.InlineStart,
		InlineEnd:   s.InlineEnd + t.InlineEnd,
		BlockStart:  s.BlockStart + t.BlockStart,
		BlockEnd:    s.BlockEnd + t.BlockEnd,
	}
}

func (s Sides) String() string {
	return fmt.Sprintf("[%s %s %s %s]", s.InlineStart, s.InlineEnd, s.BlockStart, s.BlockEnd)
}

// --- Writing modes ---------------------------------------------------------

// Mode combines writing mode and direction, which together map logical
// axes to physical ones.
type Mode struct {
	WritingMode style.WritingMode
	Direction   style.Direction
}

// ModeOf returns the mode of a computed style.
func ModeOf(cv *style.ComputedValues) Mode {
	if cv == nil {
		return Mode{}
	}
	return Mode{WritingMode: cv.WritingMode, Direction: cv.Direction}
}

// IsVertical is true if the inline axis runs vertically.
func (m Mode) IsVertical() bool {
	return m.WritingMode.IsVertical()
}

// blockFlowsLeft is true if the block axis runs from right to left.
func (m Mode) blockFlowsLeft() bool {
	return m.WritingMode == style.VerticalRL || m.WritingMode == style.SidewaysRL
}

// InlineStartSide returns the physical side (style.Top … style.Left) at the
// inline-start edge of a box.
func (m Mode) InlineStartSide() int {
	switch {
	case !m.IsVertical() && m.Direction == style.RTL:
		return style.Right
	case !m.IsVertical():
		return style.Left
	case m.Direction == style.RTL:
		return style.Bottom
	}
	return style.Top
}

// BlockStartSide returns the physical side at the block-start edge of a box.
func (m Mode) BlockStartSide() int {
	switch {
	case !m.IsVertical():
		return style.Top
	case m.blockFlowsLeft():
		return style.Right
	}
	return style.Left
}

func (m Mode) String() string {
	return m.WritingMode.String() + "/" + m.Direction.String()
}

// ToPhysical maps r to physical coordinates. Coordinates of the result are
// relative to the origin of the containing block cb; clients translate the
// result by cb.TopL if they need absolute coordinates.
func (r Rect) ToPhysical(mode Mode, cb dimen.Rect) dimen.Rect {
	cbW, cbH := cb.Width(), cb.Height()
	var x, y, w, h dimen.Dimen
	if !mode.IsVertical() {
		w, h = r.Size.Inline, r.Size.Block
		x, y = r.StartCorner.Inline, r.StartCorner.Block
		if mode.Direction == style.RTL {
			x = cbW - r.StartCorner.Inline - w
		}
	} else {
		w, h = r.Size.Block, r.Size.Inline
		x, y = r.StartCorner.Block, r.StartCorner.Inline
		if mode.blockFlowsLeft() {
			x = cbW - r.StartCorner.Block - w
		}
		if mode.Direction == style.RTL {
			y = cbH - r.StartCorner.Inline - h
		}
	}
	return dimen.RectFrom(dimen.Point{X: x, Y: y}, w, h)
}

// FromPhysical maps a physical rect p, relative to the origin of the
// containing block cb, to logical coordinates. It is the inverse of
// ToPhysical.
func FromPhysical(p dimen.Rect, mode Mode, cb dimen.Rect) Rect {
	cbW, cbH := cb.Width(), cb.Height()
	x, y, w, h := p.TopL.X, p.TopL.Y, p.Width(), p.Height()
	var r Rect
	if !mode.IsVertical() {
		r.Size = Vec2{Inline: w, Block: h}
		r.StartCorner = Vec2{Inline: x, Block: y}
		if mode.Direction == style.RTL {
			r.StartCorner.Inline = cbW - x - w
		}
	} else {
		r.Size = Vec2{Inline: h, Block: w}
		r.StartCorner = Vec2{Inline: y, Block: x}
		if mode.blockFlowsLeft() {
			r.StartCorner.Block = cbW - x - w
		}
		if mode.Direction == style.RTL {
			r.StartCorner.Inline = cbH - y - h
		}
	}
	return r
}

// PhysicalSidesToLogical maps four physical values (top, right, bottom, left)
// to logical sides. Percentages are resolved against the inline size of the
// containing block, `auto` and unset values resolve to zero.
func PhysicalSidesToLogical(phys [4]style.DimenT, mode Mode, cbInline dimen.Dimen) Sides {
	var d [4]dimen.Dimen
	for i, x := range phys {
		d[i] = resolveSide(x, cbInline)
	}
	var s Sides
	switch {
	case !mode.IsVertical():
		s.BlockStart, s.BlockEnd = d[style.Top], d[style.Bottom]
		s.InlineStart, s.InlineEnd = d[style.Left], d[style.Right]
		if mode.Direction == style.RTL {
			s.InlineStart, s.InlineEnd = s.InlineEnd, s.InlineStart
		}
	default:
		s.InlineStart, s.InlineEnd = d[style.Top], d[style.Bottom]
		if mode.Direction == style.RTL {
			s.InlineStart, s.InlineEnd = s.InlineEnd, s.InlineStart
		}
		s.BlockStart, s.BlockEnd = d[style.Left], d[style.Right]
		if mode.blockFlowsLeft() {
			s.BlockStart, s.BlockEnd = s.BlockEnd, s.BlockStart
		}
	}
	return s
}

func resolveSide(x style.DimenT, cbInline dimen.Dimen) dimen.Dimen {
	d, err := x.Match(option.Of{
		option.None:      dimen.Zero,
		style.Auto:       dimen.Zero,
		style.Percentage: x.Resolve(cbInline),
		option.Some:      x.Resolve(cbInline),
	})
	if err != nil {
		tracer().Errorf("cannot resolve side %v: %v", x, err)
		return 0
	}
	return d.(dimen.Dimen)
}
