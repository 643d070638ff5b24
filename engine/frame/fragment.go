package frame

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/boxflow/engine/dom/style"
	"github.com/npillmayer/boxflow/engine/glyphing"
)

// Fragment is a positioned and sized node of the output tree of layout.
// Fragments are one of
//
//	*BoxFragment        generated by a box, possibly one of several
//	*AnonymousFragment  one per completed line of an inline formatting context
//	*TextFragment       a run of shaped text
//
// Once built, fragments are read-only, with the exception of TranslateBlock,
// which is applied when correcting the baseline of a line.
type Fragment interface {
	TranslateBlock(d dimen.Dimen)
	String() string
	isFragment()
}

// BoxFragment is a fragment generated by a (block-level or inline) box.
// An inline box broken across lines generates one box fragment per line.
type BoxFragment struct {
	Style            *style.ComputedValues
	Children         []Fragment
	ContentRect      Rect
	Padding          Sides
	Border           Sides
	Margin           Sides
	CollapsedMargins CollapsedBlockMargins
}

// PaddingRect is the content rect, inflated by padding.
func (b *BoxFragment) PaddingRect() Rect {
	return b.ContentRect.Inflate(b.Padding)
}

// BorderRect is the padding rect, inflated by border widths.
func (b *BoxFragment) BorderRect() Rect {
	return b.PaddingRect().Inflate(b.Border)
}

// MarginRect is the border rect, inflated by margins.
func (b *BoxFragment) MarginRect() Rect {
	return b.BorderRect().Inflate(b.Margin)
}

// TranslateBlock shifts the fragment along the block axis.
func (b *BoxFragment) TranslateBlock(d dimen.Dimen) {
	b.ContentRect.StartCorner.Block += d
}

func (b *BoxFragment) String() string {
	return fmt.Sprintf("Box %s p=%s b=%s m=%s", b.ContentRect, b.Padding, b.Border, b.Margin)
}

func (b *BoxFragment) isFragment() {}

// AnonymousFragment groups the fragments of a single line. It never paints
// anything itself.
type AnonymousFragment struct {
	Rect     Rect
	Children []Fragment
	Mode     Mode
}

// TranslateBlock shifts the fragment along the block axis.
func (a *AnonymousFragment) TranslateBlock(d dimen.Dimen) {
	a.Rect.StartCorner.Block += d
}

func (a *AnonymousFragment) String() string {
	return fmt.Sprintf("Line %s %s", a.Rect, a.Mode)
}

func (a *AnonymousFragment) isFragment() {}

// TextFragment is a run of text in a single font.
type TextFragment struct {
	Style       *style.ComputedValues
	ContentRect Rect
	Text        *glyphing.ShapedSegment
}

// TranslateBlock shifts the fragment along the block axis.
func (t *TextFragment) TranslateBlock(d dimen.Dimen) {
	t.ContentRect.StartCorner.Block += d
}

func (t *TextFragment) String() string {
	return fmt.Sprintf("Text %q %s", t.Text.Text(), t.ContentRect)
}

func (t *TextFragment) isFragment() {}

// Children returns the child fragments of f, if any.
func Children(f Fragment) []Fragment {
	switch x := f.(type) {
	case *BoxFragment:
		return x.Children
	case *AnonymousFragment:
		return x.Children
	}
	return nil
}

// FlowChildren is the result of laying out the contents of a formatting
// context.
type FlowChildren struct {
	Fragments                    []Fragment
	BlockSize                    dimen.Dimen
	CollapsibleMarginsInChildren CollapsedBlockMargins
}

// Dump writes an indented textual representation of a fragment tree to w.
// Intended for debugging.
func Dump(w io.Writer, fragments []Fragment) {
	dump(w, fragments, 0)
}

func dump(w io.Writer, fragments []Fragment, level int) {
	indent := strings.Repeat("   ", level)
	for _, f := range fragments {
		fmt.Fprintf(w, "%s%s\n", indent, f)
		dump(w, Children(f), level+1)
	}
}
