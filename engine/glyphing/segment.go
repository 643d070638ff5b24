package glyphing

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/npillmayer/boxflow/core"
	"github.com/npillmayer/boxflow/core/dimen"
)

// ShapedSegment is a run of text in a single font.
//
// A segment caches its advance width. The cache is invalidated by every
// mutation. Measuring always re-measures the complete text of the segment,
// as kerning and ligatures may change widths across character boundaries.
type ShapedSegment struct {
	font   Font
	text   []byte
	glyphs int         // number of runes
	width  dimen.Dimen // cached advance width
	valid  bool        // is width valid?
}

// SegmentState is a snapshot of a segment, created by Save.
type SegmentState struct {
	length int // in bytes
	glyphs int
	width  dimen.Dimen
	valid  bool
}

// NewShapedSegment creates an empty segment for a font.
func NewShapedSegment(font Font) *ShapedSegment {
	return &ShapedSegment{font: font, valid: true}
}

// Shape creates a segment for a complete text.
func Shape(text string, font Font) (*ShapedSegment, error) {
	seg := NewShapedSegment(font)
	if err := seg.Append(text); err != nil {
		return nil, err
	}
	return seg, nil
}

// Font returns the font of a segment.
func (seg *ShapedSegment) Font() Font {
	return seg.font
}

// AppendChar appends a single character.
func (seg *ShapedSegment) AppendChar(ch rune) error {
	if seg.font == nil {
		return core.Error(core.EMEASURE, "cannot append %q to segment without font", ch)
	}
	seg.text = utf8.AppendRune(seg.text, ch)
	seg.glyphs++
	seg.valid = false
	return nil
}

// Append appends a string.
func (seg *ShapedSegment) Append(s string) error {
	for _, ch := range s {
		if err := seg.AppendChar(ch); err != nil {
			return err
		}
	}
	return nil
}

// Save creates a snapshot of the segment's state.
func (seg *ShapedSegment) Save() SegmentState {
	return SegmentState{
		length: len(seg.text),
		glyphs: seg.glyphs,
		width:  seg.width,
		valid:  seg.valid,
	}
}

// Restore rolls a segment back to a snapshot taken with Save. Characters
// appended after the snapshot are dropped, and the cached width of the
// snapshot is restored.
func (seg *ShapedSegment) Restore(state SegmentState) {
	if state.length > len(seg.text) {
		panic("restoring segment from a state beyond its length")
	}
	seg.text = seg.text[:state.length]
	seg.glyphs = state.glyphs
	seg.width = state.width
	seg.valid = state.valid
}

// AdvanceWidth returns the width of the segment.
func (seg *ShapedSegment) AdvanceWidth() (dimen.Dimen, error) {
	if seg.valid {
		return seg.width, nil
	}
	w, err := seg.font.MeasureString(string(seg.text))
	if err != nil {
		return 0, core.WrapError(err, core.EMEASURE, "cannot measure text segment")
	}
	seg.width, seg.valid = w, true
	return w, nil
}

// StripSpace removes trailing spaces.
func (seg *ShapedSegment) StripSpace() {
	stripped := bytes.TrimRight(seg.text, " ")
	if len(stripped) == len(seg.text) {
		return
	}
	seg.glyphs -= len(seg.text) - len(stripped)
	seg.text = stripped
	seg.valid = false
}

// Empty is true if the segment has no characters.
func (seg *ShapedSegment) Empty() bool {
	return seg.glyphs == 0
}

// Len returns the number of characters of the segment.
func (seg *ShapedSegment) Len() int {
	return seg.glyphs
}

// Text returns the characters of the segment.
func (seg *ShapedSegment) Text() string {
	return string(seg.text)
}

func (seg *ShapedSegment) String() string {
	if seg.valid {
		return fmt.Sprintf("%q(%s)", string(seg.text), seg.width)
	}
	return fmt.Sprintf("%q(?)", string(seg.text))
}
