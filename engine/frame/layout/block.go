package layout

import (
	"github.com/npillmayer/boxflow/core"
	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/boxflow/engine/dom/style"
	"github.com/npillmayer/boxflow/engine/frame"
	"github.com/npillmayer/boxflow/engine/frame/boxtree"
	"github.com/npillmayer/boxflow/engine/frame/inline"
)

// Options tune document layout.
type Options struct {
	MaxInlineDepth int // maximum nesting of inline boxes, see inline.LayoutOptions
}

// LayoutDocument lays out a block formatting context on a page. The
// resulting fragments are positioned relative to the page's content area.
func LayoutDocument(bfc *boxtree.BlockFormattingContext, page *Page, opts Options) ([]frame.Fragment, error) {
	if bfc == nil {
		return nil, core.Error(core.EMISSING, "no box tree to lay out")
	}
	if page == nil || page.Empty() {
		return nil, core.Error(core.EINVALID, "page for layout has no size")
	}
	ctx := &blockContext{opts: opts}
	cb := page.containingBlock(frame.ModeOf(bfc.Style))
	tracer().Infof("layout of document on page %s x %s", page.Width(), page.Height())
	flow, err := ctx.layoutContainer(bfc.Contents, cb)
	if err != nil {
		return nil, err
	}
	tracer().Infof("document layout produced %d fragments, block size = %s",
		len(flow.Fragments), flow.BlockSize)
	return flow.Fragments, nil
}

// blockContext lays out the block-level contents of block containers.
type blockContext struct {
	opts Options
}

// layoutContainer lays out the contents of a block container within a
// containing block. Positions of the resulting fragments are relative to
// the content rect of the container.
func (ctx *blockContext) layoutContainer(c boxtree.BlockContainer, cb inline.ContainingBlock) (
	frame.FlowChildren, error) {
	//
	if c.Inline != nil {
		return ctx.layoutInline(c.Inline, cb)
	}
	var fragments []frame.Fragment
	var cursor dimen.Dimen           // block end of the last in-flow border box
	var margin frame.CollapsedMargin // pending margins adjoining at cursor
	for _, child := range c.Blocks {
		switch b := child.(type) {
		case *boxtree.BlockBox:
			box, err := ctx.layoutBlock(b.Style, b.Contents, cb)
			if err != nil {
				return frame.FlowChildren{}, err
			}
			margin.AdjoinAssign(box.CollapsedMargins.Start)
			borderStart := cursor + margin.Solve()
			box.ContentRect.StartCorner.Block = borderStart + box.Border.BlockStart + box.Padding.BlockStart
			if box.CollapsedMargins.CollapsedThrough {
				margin.AdjoinAssign(box.CollapsedMargins.End)
			} else {
				cursor = box.BorderRect().BlockEnd()
				margin = box.CollapsedMargins.End
			}
			tracer().Debugf("block %s at %s", b, box.ContentRect)
			fragments = append(fragments, box)
		case *boxtree.AbsolutelyPositionedBox:
			static := frame.Vec2{Block: cursor + margin.Solve()}
			box, err := ctx.layoutAbsolute(b, static, cb)
			if err != nil {
				return frame.FlowChildren{}, err
			}
			fragments = append(fragments, box)
		case *boxtree.FloatBox:
			tracer().Infof("float <%s> ignored", b.Tag)
		default:
			return frame.FlowChildren{}, core.Error(core.EINTERNAL, "unknown block-level box %T", child)
		}
	}
	return frame.FlowChildren{
		Fragments:                    fragments,
		BlockSize:                    cursor + margin.Solve(),
		CollapsibleMarginsInChildren: frame.ZeroCollapsedBlockMargins(),
	}, nil
}

// layoutInline lays out an inline formatting context and places the
// absolutely positioned boxes found within it.
func (ctx *blockContext) layoutInline(ifc *boxtree.InlineFormattingContext, cb inline.ContainingBlock) (
	frame.FlowChildren, error) {
	//
	opts := inline.LayoutOptions{MaxNestingDepth: ctx.opts.MaxInlineDepth}
	flow, placements, err := inline.LayoutWithOptions(ifc, cb, opts)
	if err != nil {
		return frame.FlowChildren{}, err
	}
	for _, p := range placements {
		box, err := ctx.layoutAbsolute(p.Box, p.StaticStart, cb)
		if err != nil {
			return frame.FlowChildren{}, err
		}
		flow.Fragments = append(flow.Fragments, box)
	}
	return flow, nil
}

// layoutBlock creates a box fragment for a block-level box. The fragment is
// positioned at inline start of the containing block and at block position 0.
func (ctx *blockContext) layoutBlock(cv *style.ComputedValues, contents boxtree.BlockContainer,
	cb inline.ContainingBlock) (*frame.BoxFragment, error) {
	//
	mode := frame.ModeOf(cv)
	box := &frame.BoxFragment{
		Style:   cv,
		Padding: frame.PhysicalSidesToLogical(cv.Padding, mode, cb.InlineSize),
		Border:  frame.PhysicalSidesToLogical(effectiveBorders(cv), mode, cb.InlineSize),
		Margin:  frame.PhysicalSidesToLogical(cv.Margin, mode, cb.InlineSize),
	}
	edges := box.Padding.Add(box.Border).Add(box.Margin)
	inlineSize, blockSize := logicalSize(cv, mode)
	var inlineUsed dimen.Dimen
	if definite(inlineSize, cb.InlineSize) {
		inlineUsed = inlineSize.Resolve(cb.InlineSize)
	} else {
		inlineUsed = dimen.Max(0, cb.InlineSize-edges.InlineSum())
	}
	inner := inline.ContainingBlock{InlineSize: inlineUsed, Mode: mode}
	if definite(blockSize, cb.BlockSize) {
		inner.BlockSize = blockSize.Resolve(cb.BlockSize)
	}
	flow, err := ctx.layoutContainer(contents, inner)
	if err != nil {
		return nil, err
	}
	blockUsed := flow.BlockSize
	if definite(blockSize, cb.BlockSize) {
		blockUsed = inner.BlockSize
	}
	box.Children = flow.Fragments
	box.ContentRect = frame.Rect{
		StartCorner: frame.Vec2{Inline: box.Margin.InlineStart + box.Border.InlineStart + box.Padding.InlineStart},
		Size:        frame.Vec2{Inline: inlineUsed, Block: blockUsed},
	}
	box.CollapsedMargins = frame.CollapsedBlockMarginsFromMargin(box.Margin)
	if blockUsed == 0 && box.Padding.BlockSum() == 0 && box.Border.BlockSum() == 0 {
		box.CollapsedMargins.CollapsedThrough = true
	}
	return box, nil
}

// layoutAbsolute lays out an absolutely positioned box like a block, then
// moves it to its static position or to the position given by its offsets.
func (ctx *blockContext) layoutAbsolute(ap *boxtree.AbsolutelyPositionedBox, static frame.Vec2,
	cb inline.ContainingBlock) (*frame.BoxFragment, error) {
	//
	box, err := ctx.layoutBlock(ap.Style, ap.Contents, cb)
	if err != nil {
		return nil, err
	}
	pos := static
	offsets := ap.Style.Offsets
	if off := offsets[cb.Mode.InlineStartSide()]; definite(off, cb.InlineSize) {
		pos.Inline = off.Resolve(cb.InlineSize)
	}
	if off := offsets[cb.Mode.BlockStartSide()]; definite(off, cb.BlockSize) {
		pos.Block = off.Resolve(cb.BlockSize)
	}
	box.ContentRect.StartCorner = box.ContentRect.StartCorner.Add(pos)
	box.ContentRect.StartCorner.Block += box.Margin.BlockStart + box.Border.BlockStart + box.Padding.BlockStart
	tracer().Debugf("absolute box <%s> at %s", ap.Tag, box.ContentRect)
	return box, nil
}

// logicalSize returns the width and height properties of a style, mapped
// to inline and block axis.
func logicalSize(cv *style.ComputedValues, mode frame.Mode) (style.DimenT, style.DimenT) {
	if mode.IsVertical() {
		return cv.Height, cv.Width
	}
	return cv.Width, cv.Height
}

// definite is true if d resolves to a length. Percentages need a reference
// length; a reference of zero counts as unknown.
func definite(d style.DimenT, ref dimen.Dimen) bool {
	switch {
	case d.IsNone() || d.IsAuto():
		return false
	case d.IsPercent():
		return ref > 0
	}
	return d.IsAbsolute()
}

func effectiveBorders(cv *style.ComputedValues) [4]style.DimenT {
	var bw [4]style.DimenT
	for side := range bw {
		bw[side] = cv.EffectiveBorderWidth(side)
	}
	return bw
}
