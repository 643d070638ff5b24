package boxtree

import (
	"fmt"

	"github.com/npillmayer/boxflow/engine/dom/style"
	"github.com/npillmayer/boxflow/engine/glyphing"
)

// InlineLevelBox is a box taking part in an inline formatting context. It is
// one of
//
//	*InlineBox
//	*TextRun
//	*AtomicBox
//	*AbsolutelyPositionedBox
//	*FloatBox
type InlineLevelBox interface {
	isInlineLevel()
}

// BlockLevelBox is a box taking part in a block formatting context. It is
// one of
//
//	*BlockBox
//	*AbsolutelyPositionedBox
//	*FloatBox
type BlockLevelBox interface {
	isBlockLevel()
}

// InlineBox is a box generated by an inline element, like <span>.
//
// If an inline box has been split by a block-level box, FirstFragment is
// false for all parts but the first and LastFragment is false for all parts
// but the last.
type InlineBox struct {
	Tag           string
	Style         *style.ComputedValues
	Font          glyphing.Font
	FirstFragment bool
	LastFragment  bool
	Children      []InlineLevelBox
}

func (ib *InlineBox) isInlineLevel() {}

func (ib *InlineBox) String() string {
	return fmt.Sprintf("InlineBox<%s>[%d]", ib.Tag, len(ib.Children))
}

// TextRun is a run of text with a single style. Style is the style of the
// element enclosing the text.
type TextRun struct {
	Style *style.ComputedValues
	Font  glyphing.Font
	Text  string
}

func (tr *TextRun) isInlineLevel() {}

func (tr *TextRun) String() string {
	return fmt.Sprintf("TextRun%q", tr.Text)
}

// AtomicBox is an inline-level box with replaced content, like an image, or
// an inline-level box establishing a new formatting context, like
// inline-block. Layout of atomic boxes is not supported.
type AtomicBox struct {
	Tag   string
	Style *style.ComputedValues
}

func (ab *AtomicBox) isInlineLevel() {}

// AbsolutelyPositionedBox is a box with position absolute or fixed. It is
// taken out of the flow and positioned relative to its static position.
type AbsolutelyPositionedBox struct {
	Tag      string
	Style    *style.ComputedValues
	Font     glyphing.Font
	Contents BlockContainer
}

func (ap *AbsolutelyPositionedBox) isInlineLevel() {}
func (ap *AbsolutelyPositionedBox) isBlockLevel()  {}

// FloatBox is a floating box. Floats are recognized, but not laid out.
type FloatBox struct {
	Tag      string
	Style    *style.ComputedValues
	Font     glyphing.Font
	Contents BlockContainer
}

func (fb *FloatBox) isInlineLevel() {}
func (fb *FloatBox) isBlockLevel()  {}

// BlockBox is a block-level box. Anonymous block boxes have an empty tag.
type BlockBox struct {
	Tag      string
	Style    *style.ComputedValues
	Font     glyphing.Font
	Contents BlockContainer
}

func (bb *BlockBox) isBlockLevel() {}

// IsAnonymous is true for block boxes which have not been generated by an
// element.
func (bb *BlockBox) IsAnonymous() bool {
	return bb.Tag == ""
}

func (bb *BlockBox) String() string {
	if bb.IsAnonymous() {
		return "BlockBox<anonymous>"
	}
	return fmt.Sprintf("BlockBox<%s>", bb.Tag)
}

// BlockContainer holds either block-level boxes or an inline formatting
// context, never both. An empty container holds neither.
type BlockContainer struct {
	Blocks []BlockLevelBox
	Inline *InlineFormattingContext
}

// IsEmpty is true if a container has no content.
func (c BlockContainer) IsEmpty() bool {
	return len(c.Blocks) == 0 && (c.Inline == nil || len(c.Inline.Children) == 0)
}

// InlineFormattingContext holds the inline-level content of a block
// container. Style and Font are those of the block container; they establish
// the baseline strut of every line.
type InlineFormattingContext struct {
	Style    *style.ComputedValues
	Font     glyphing.Font
	Children []InlineLevelBox
}

// BlockFormattingContext is the root of a box tree.
type BlockFormattingContext struct {
	Style    *style.ComputedValues
	Font     glyphing.Font
	Contents BlockContainer
}
