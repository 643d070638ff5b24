package inline

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/boxflow/core"
	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/boxflow/engine/dom/style"
	"github.com/npillmayer/boxflow/engine/frame"
	"github.com/npillmayer/boxflow/engine/frame/boxtree"
)

// DefaultMaxNestingDepth is the default limit for nested inline boxes.
const DefaultMaxNestingDepth = 256

// ContainingBlock is the logical size and mode of the block container
// which establishes an inline formatting context. A BlockSize of zero
// means the block size is not yet known.
type ContainingBlock struct {
	InlineSize dimen.Dimen
	BlockSize  dimen.Dimen
	Mode       frame.Mode
}

// LayoutOptions tune the layout of an inline formatting context.
type LayoutOptions struct {
	MaxNestingDepth int // maximum depth of open inline boxes, default 256
}

// AbsolutePlacement is the static position of an absolutely positioned box
// encountered within inline content. The position is relative to the content
// rect of the containing block.
type AbsolutePlacement struct {
	Box         *boxtree.AbsolutelyPositionedBox
	StaticStart frame.Vec2
}

// Layout lays out an inline formatting context with default options.
func Layout(ifc *boxtree.InlineFormattingContext, cb ContainingBlock) (frame.FlowChildren, []AbsolutePlacement, error) {
	return LayoutWithOptions(ifc, cb, LayoutOptions{})
}

// LayoutWithOptions breaks the content of ifc into lines of at most
// cb.InlineSize. It returns one anonymous fragment per line, in block order,
// together with the total block size of the lines.
//
// Atomic inline boxes are not supported and result in an error with code
// core.EUNSUPPORTED. Floats are skipped.
func LayoutWithOptions(ifc *boxtree.InlineFormattingContext, cb ContainingBlock, opts LayoutOptions) (
	frame.FlowChildren, []AbsolutePlacement, error) {
	//
	if ifc == nil {
		return frame.FlowChildren{}, nil, core.Error(core.EMISSING, "no inline formatting context to lay out")
	}
	if ifc.Font == nil {
		return frame.FlowChildren{}, nil, core.Error(core.EMEASURE, "inline formatting context has no font")
	}
	if opts.MaxNestingDepth <= 0 {
		opts.MaxNestingDepth = DefaultMaxNestingDepth
	}
	s := &ifcState{
		cb:        cb,
		textAlign: ifc.Style.TextAlign,
		partials:  arraystack.New(),
		maxDepth:  opts.MaxNestingDepth,
		current: &nestingLevel{
			boxes:   ifc.Children,
			ascent:  ifc.Font.Ascent(),
			descent: ifc.Font.Descent(),
			ex:      ifc.Font.Ex(),
		},
	}
	tracer().Debugf("inline layout: %d children, cb = %s x %s", len(ifc.Children), cb.InlineSize, cb.BlockSize)
	if err := s.layout(); err != nil {
		return frame.FlowChildren{}, nil, err
	}
	return frame.FlowChildren{
		Fragments:                    s.lines,
		BlockSize:                    s.cursor,
		CollapsibleMarginsInChildren: frame.ZeroCollapsedBlockMargins(),
	}, s.placements, nil
}

// ifcState is the state of a running inline layout. Positions along the
// inline axis are measured from the start of the current line.
type ifcState struct {
	cb             ContainingBlock
	textAlign      style.TextAlign
	lines          []frame.Fragment
	cursor         dimen.Dimen       // block position of the next line
	inlinePosition dimen.Dimen       // inline position on the current line
	lineHasContent bool              // text or a completed box has been set on the current line
	partials       *arraystack.Stack // open inline boxes, of type *partialBox
	current        *nestingLevel
	placements     []AbsolutePlacement
	maxDepth       int
}

// nestingLevel holds the inline-level boxes of a formatting context or an
// inline box, together with the fragments produced for the current line.
type nestingLevel struct {
	boxes       []boxtree.InlineLevelBox
	next        int
	fragments   []frame.Fragment
	inlineStart dimen.Dimen // inline position where the content starts on this line
	ascent      dimen.Dimen
	descent     dimen.Dimen
	ex          dimen.Dimen
	adjustment  dimen.Dimen // accumulated baseline shift, positive is downwards
	maxAscent   dimen.Dimen
	maxDescent  dimen.Dimen
}

func (level *nestingLevel) nextBox() (boxtree.InlineLevelBox, bool) {
	if level.next >= len(level.boxes) {
		return nil, false
	}
	box := level.boxes[level.next]
	level.next++
	return box, true
}

// partialBox is an inline box which has been opened, but not yet finished.
type partialBox struct {
	style        *style.ComputedValues
	startCorner  frame.Vec2
	padding      frame.Sides
	border       frame.Sides
	margin       frame.Sides
	ascent       dimen.Dimen
	descent      dimen.Dimen
	lastFragment bool
	parent       *nestingLevel
}

func (s *ifcState) layout() error {
	for {
		if box, ok := s.current.nextBox(); ok {
			if err := s.layoutBox(box); err != nil {
				return err
			}
			continue
		}
		if v, ok := s.partials.Pop(); ok {
			p := v.(*partialBox)
			p.finish(s.current, &s.inlinePosition, false)
			s.lineHasContent = true
			s.current = p.parent
			continue
		}
		s.finishLine()
		return nil
	}
}

func (s *ifcState) layoutBox(box boxtree.InlineLevelBox) error {
	switch b := box.(type) {
	case *boxtree.TextRun:
		return s.layoutText(b)
	case *boxtree.InlineBox:
		return s.open(b)
	case *boxtree.AtomicBox:
		return core.Error(core.EUNSUPPORTED, "atomic inline box <%s> not supported", b.Tag)
	case *boxtree.AbsolutelyPositionedBox:
		pos := frame.Vec2{Block: s.cursor}
		if b.Style.Display.Contains(style.InlineMode) {
			pos.Inline = s.inlinePosition
		}
		tracer().Debugf("static position of <%s> = %s", b.Tag, pos)
		s.placements = append(s.placements, AbsolutePlacement{Box: b, StaticStart: pos})
	case *boxtree.FloatBox:
		tracer().Infof("float <%s> within inline content ignored", b.Tag)
	default:
		return core.Error(core.EINTERNAL, "unknown inline-level box %T", box)
	}
	return nil
}

// open starts the layout of an inline box. The box's children become the
// current nesting level.
func (s *ifcState) open(ib *boxtree.InlineBox) error {
	if s.partials.Size() >= s.maxDepth {
		return core.Error(core.EDEPTH, "inline boxes nested deeper than %d", s.maxDepth)
	}
	if ib.Font == nil {
		return core.Error(core.EMEASURE, "inline box <%s> has no font", ib.Tag)
	}
	cv := ib.Style
	asc, desc := ib.Font.Ascent(), ib.Font.Descent()
	shift := baselineShift(cv, desc, s.current)
	mode := frame.ModeOf(cv)
	p := &partialBox{
		style:        cv,
		padding:      frame.PhysicalSidesToLogical(cv.Padding, mode, s.cb.InlineSize),
		border:       frame.PhysicalSidesToLogical(effectiveBorders(cv), mode, s.cb.InlineSize),
		margin:       frame.PhysicalSidesToLogical(cv.Margin, mode, s.cb.InlineSize),
		ascent:       asc,
		descent:      desc,
		lastFragment: ib.LastFragment,
		parent:       s.current,
	}
	if ib.FirstFragment {
		s.inlinePosition += p.padding.InlineStart + p.border.InlineStart + p.margin.InlineStart
	} else {
		p.padding.InlineStart, p.border.InlineStart, p.margin.InlineStart = 0, 0, 0
	}
	p.startCorner = frame.Vec2{
		Inline: s.inlinePosition - s.current.inlineStart,
		Block:  shift,
	}.Add(relativeOffset(cv, s.cb))
	s.partials.Push(p)
	s.current = &nestingLevel{
		boxes:       ib.Children,
		inlineStart: s.inlinePosition,
		ascent:      asc,
		descent:     desc,
		ex:          ib.Font.Ex(),
		adjustment:  s.current.adjustment + shift,
	}
	return nil
}

// finish wraps the fragments of level into a box fragment and appends it to
// the parent level. If the box is finished because of a line break, its
// inline-end edges are not applied.
func (p *partialBox) finish(level *nestingLevel, inlinePosition *dimen.Dimen, atBreak bool) {
	start := p.startCorner
	start.Block += p.parent.ascent - p.ascent
	fragment := &frame.BoxFragment{
		Style:    p.style,
		Children: level.fragments,
		ContentRect: frame.Rect{
			StartCorner: start,
			Size: frame.Vec2{
				Inline: *inlinePosition - level.inlineStart,
				Block:  p.ascent + p.descent,
			},
		},
		CollapsedMargins: frame.ZeroCollapsedBlockMargins(),
	}
	level.fragments = nil
	padding, border, margin := p.padding, p.border, p.margin
	if p.lastFragment && !atBreak {
		*inlinePosition += padding.InlineEnd + border.InlineEnd + margin.InlineEnd
	} else {
		padding.InlineEnd, border.InlineEnd, margin.InlineEnd = 0, 0, 0
	}
	fragment.Padding, fragment.Border, fragment.Margin = padding, border, margin
	p.parent.maxAscent = dimen.Max(p.parent.maxAscent, level.maxAscent)
	p.parent.maxDescent = dimen.Max(p.parent.maxDescent, level.maxDescent)
	p.parent.fragments = append(p.parent.fragments, fragment)
}

// finishLine closes all open inline boxes for the current line, creates a
// line fragment and prepares the open boxes for continuation on the next
// line.
func (s *ifcState) finishLine() {
	level := s.current
	it := s.partials.Iterator() // innermost box first
	for it.Next() {
		p := it.Value().(*partialBox)
		p.finish(level, &s.inlinePosition, true)
		level.inlineStart = 0
		level.maxAscent, level.maxDescent = 0, 0
		p.startCorner.Inline = 0
		p.padding.InlineStart, p.border.InlineStart, p.margin.InlineStart = 0, 0, 0
		level = p.parent
	}
	level.inlineStart = 0
	s.lineBox(level)
	s.inlinePosition = 0
	s.lineHasContent = false
}

// lineBox wraps the fragments of the top level into a line fragment. The
// inline size of the line fragment is the used width of its content, not
// the inline size of the containing block; text-align moves the start
// corner of the line instead. The block size is the extent of the line's
// content, so a line without content has a block size of zero.
func (s *ifcState) lineBox(top *nestingLevel) {
	free := dimen.Max(0, s.cb.InlineSize-s.inlinePosition) // overflowing lines are start-aligned
	maxAsc, maxDesc := top.maxAscent, top.maxDescent
	top.maxAscent, top.maxDescent = 0, 0
	line := &frame.AnonymousFragment{
		Rect: frame.Rect{
			StartCorner: frame.Vec2{Inline: free.Scale(s.textAlign.Factor()), Block: s.cursor},
			Size:        frame.Vec2{Inline: s.inlinePosition, Block: maxAsc + maxDesc},
		},
		Mode: s.cb.Mode,
	}
	s.cursor += line.Rect.Size.Block
	adjust := maxAsc - top.ascent
	for _, f := range top.fragments {
		f.TranslateBlock(adjust)
	}
	line.Children = top.fragments
	top.fragments = nil
	tracer().Debugf("line #%d: %s", len(s.lines)+1, line)
	s.lines = append(s.lines, line)
}

func effectiveBorders(cv *style.ComputedValues) [4]style.DimenT {
	var bw [4]style.DimenT
	for side := range bw {
		bw[side] = cv.EffectiveBorderWidth(side)
	}
	return bw
}
