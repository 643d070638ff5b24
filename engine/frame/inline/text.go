package inline

import (
	"unicode/utf8"

	"github.com/npillmayer/boxflow/core"
	"github.com/npillmayer/boxflow/engine/frame"
	"github.com/npillmayer/boxflow/engine/frame/boxtree"
	"github.com/npillmayer/boxflow/engine/glyphing"
)

// breakpoint is a position in a text run where a line may be broken.
// state is the segment before the space, pos is the byte position after it.
type breakpoint struct {
	state glyphing.SegmentState
	pos   int
}

func (s *ifcState) layoutText(run *boxtree.TextRun) error {
	if run.Font == nil {
		return core.Error(core.EMEASURE, "text run %q has no font", run.Text)
	}
	if run.Style.WhiteSpace.Wraps() {
		return s.wrap(run)
	}
	return s.nowrap(run)
}

// wrap breaks a text run at spaces and newlines. Every segment is filled
// with as many words as fit the rest of the line. A word which does not fit
// an empty line is set on a line of its own and overflows.
func (s *ifcState) wrap(run *boxtree.TextRun) error {
	text, pos := run.Text, 0
	for {
		available := s.cb.InlineSize - s.inlinePosition
		seg := glyphing.NewShapedSegment(run.Font)
		newline := false
		var brk *breakpoint
		if s.lineHasContent {
			// the whole run may move to the next line
			brk = &breakpoint{state: seg.Save(), pos: pos}
		}
		for {
			ch, size := utf8.DecodeRuneInString(text[pos:])
			eof := size == 0
			pos += size
			if eof || ch == ' ' || ch == '\n' {
				w, err := seg.AdvanceWidth()
				if err != nil {
					return err
				}
				if w > available {
					if brk != nil {
						seg.Restore(brk.state)
						pos = brk.pos
					}
					break
				}
			}
			if eof {
				break
			}
			if ch == '\n' {
				seg.StripSpace()
				newline = true
				break
			}
			if ch == ' ' {
				brk = &breakpoint{state: seg.Save(), pos: pos}
			}
			if err := seg.AppendChar(ch); err != nil {
				return err
			}
		}
		if err := s.emitText(run, seg); err != nil {
			return err
		}
		if pos >= len(text) && !newline {
			return nil
		}
		s.finishLine()
	}
}

// nowrap breaks a text run at newlines only.
func (s *ifcState) nowrap(run *boxtree.TextRun) error {
	text, pos := run.Text, 0
	for {
		seg := glyphing.NewShapedSegment(run.Font)
		newline := false
		for pos < len(text) {
			ch, size := utf8.DecodeRuneInString(text[pos:])
			pos += size
			if ch == '\n' {
				newline = true
				break
			}
			if err := seg.AppendChar(ch); err != nil {
				return err
			}
		}
		if err := s.emitText(run, seg); err != nil {
			return err
		}
		if pos >= len(text) && !newline {
			return nil
		}
		s.finishLine()
	}
}

// emitText appends a text fragment for a non-empty segment to the current
// level and advances the inline position.
func (s *ifcState) emitText(run *boxtree.TextRun, seg *glyphing.ShapedSegment) error {
	if seg.Empty() {
		return nil
	}
	w, err := seg.AdvanceWidth()
	if err != nil {
		return err
	}
	asc, desc := lineMetrics(run.Style, run.Font)
	level := s.current
	fragment := &frame.TextFragment{
		Style: run.Style,
		ContentRect: frame.Rect{
			StartCorner: frame.Vec2{Inline: s.inlinePosition - level.inlineStart},
			Size:        frame.Vec2{Inline: w, Block: asc + desc},
		},
		Text: seg,
	}
	s.inlinePosition += w
	s.lineHasContent = true
	if a := asc - level.adjustment; a > level.maxAscent {
		level.maxAscent = a
	}
	if d := desc + level.adjustment; d > level.maxDescent {
		level.maxDescent = d
	}
	tracer().Debugf("text fragment %s", seg)
	level.fragments = append(level.fragments, fragment)
	return nil
}
