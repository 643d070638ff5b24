package boxtree

// This module should have knowledge about:
// - which kind of box to create for each HTML element
// - where anonymous boxes have to be inserted

import (
	"errors"

	"github.com/npillmayer/boxflow/core"
	"github.com/npillmayer/boxflow/engine/dom"
	"github.com/npillmayer/boxflow/engine/dom/style"
	"github.com/npillmayer/boxflow/engine/dom/style/css"
	"github.com/npillmayer/boxflow/engine/glyphing"
	"golang.org/x/net/html"
)

// ErrNoRootElement is returned if a document has no root element.
var ErrNoRootElement = errors.New("document has no root element")

// MaxTreeDepth limits the nesting depth of elements in a document.
const MaxTreeDepth = 512

// Build creates a box tree for a document. Styles are computed with resolver,
// fonts are selected by fonts.
func Build(doc *dom.Document, resolver *css.Resolver, fonts FontProvider) (*BlockFormattingContext, error) {
	if doc == nil || doc.HTML() == nil {
		return nil, ErrNoRootElement
	}
	b := &builder{
		resolver: resolver,
		fonts:    fonts,
		cache:    make(map[*style.ComputedValues]glyphing.Font),
	}
	tracer().Debugf("creating box tree")
	initial := style.InitialValues()
	c := b.newContainer(initial)
	c.node(doc.HTML(), nil)
	contents := c.finish()
	bfc := &BlockFormattingContext{
		Style:    initial,
		Font:     b.font(initial),
		Contents: contents,
	}
	if b.err != nil {
		return nil, b.err
	}
	tracer().Infof("box tree created")
	return bfc, nil
}

type builder struct {
	resolver *css.Resolver
	fonts    FontProvider
	cache    map[*style.ComputedValues]glyphing.Font
	depth    int
	err      error // first error encountered
}

// font returns the font for a style. Fonts are cached per style.
func (b *builder) font(cv *style.ComputedValues) glyphing.Font {
	if f, ok := b.cache[cv]; ok {
		return f
	}
	f, err := b.fonts.FontFor(cv)
	if err != nil {
		b.fail(core.WrapError(err, core.EMISSING, "no font for %v", cv.Font.Family))
		return nil
	}
	b.cache[cv] = f
	return f
}

func (b *builder) fail(err error) {
	if b.err == nil {
		tracer().Errorf(err.Error())
		b.err = err
	}
}

// blockContainerFor creates the contents of a block container element.
func (b *builder) blockContainerFor(n *html.Node, cv *style.ComputedValues) BlockContainer {
	c := b.newContainer(cv)
	c.children(n, cv)
	return c.finish()
}

// container collects the boxes for the children of a block container.
type container struct {
	b       *builder
	style   *style.ComputedValues
	blocks  []BlockLevelBox
	inlines []InlineLevelBox // inline-level content not yet wrapped into a block
	open    []*InlineBox     // inline boxes currently open, outermost first
	ws      whitespace
}

func (b *builder) newContainer(cv *style.ComputedValues) *container {
	return &container{b: b, style: cv, ws: newWhitespace()}
}

func (c *container) children(n *html.Node, cv *style.ComputedValues) {
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		c.node(ch, cv)
	}
}

func (c *container) node(n *html.Node, parent *style.ComputedValues) {
	if c.b.err != nil {
		return
	}
	c.b.depth++
	defer func() { c.b.depth-- }()
	if c.b.depth > MaxTreeDepth {
		c.b.fail(core.Error(core.EDEPTH, "document nesting exceeds %d levels", MaxTreeDepth))
		return
	}
	switch n.Type {
	case html.TextNode:
		c.text(n.Data, parent)
	case html.ElementNode:
		c.element(n, parent)
	}
}

func (c *container) element(n *html.Node, parent *style.ComputedValues) {
	cv := c.b.resolver.Resolve(n, parent)
	tag := dom.ElementName(n)
	switch {
	case cv.Display == style.NoMode || cv.Display.Contains(style.DisplayNone):
		tracer().Debugf("no box for <%s> with display=none", tag)
	case cv.Display.Contains(style.ContentsMode):
		c.children(n, cv)
	case cv.Position.IsOutOfFlow():
		c.outOfFlow(&AbsolutelyPositionedBox{
			Tag: tag, Style: cv, Font: c.b.font(cv),
			Contents: c.b.blockContainerFor(n, cv),
		})
	case cv.Float != style.FloatNone:
		c.outOfFlow(&FloatBox{
			Tag: tag, Style: cv, Font: c.b.font(cv),
			Contents: c.b.blockContainerFor(n, cv),
		})
	case tag == "br":
		c.ws.forcedBreak()
		run := &TextRun{Style: cv, Font: c.b.font(cv), Text: "\n"}
		c.attach(run)
	case isReplaced(tag) || cv.Display.IsAtomicInline():
		c.attach(&AtomicBox{Tag: tag, Style: cv})
		c.ws.content()
	case cv.Display.IsBlockLevel():
		c.block(&BlockBox{
			Tag: tag, Style: cv, Font: c.b.font(cv),
			Contents: c.b.blockContainerFor(n, cv),
		})
	default:
		c.inlineBox(n, cv, tag)
	}
}

// isReplaced is true for elements with replaced content.
func isReplaced(tag string) bool {
	switch tag {
	case "img", "video", "canvas", "iframe", "object", "embed", "input", "audio",
		"textarea", "select", "button":
		return true
	}
	return false
}

func (c *container) text(s string, parent *style.ComputedValues) {
	if parent == nil {
		return
	}
	text := c.ws.process(s, parent.WhiteSpace)
	if text == "" {
		return
	}
	run := &TextRun{Style: parent, Font: c.b.font(parent), Text: text}
	c.attach(run)
	c.ws.emitted(run)
}

func (c *container) inlineBox(n *html.Node, cv *style.ComputedValues, tag string) {
	ib := &InlineBox{Tag: tag, Style: cv, Font: c.b.font(cv), FirstFragment: true}
	c.attach(ib)
	c.open = append(c.open, ib)
	depth := len(c.open)
	c.children(n, cv)
	c.open[depth-1].LastFragment = true // may be a continuation of ib
	c.open = c.open[:depth-1]
}

// attach adds an inline-level box to the innermost open inline box, or to
// the pending inline content.
func (c *container) attach(box InlineLevelBox) {
	if len(c.open) > 0 {
		top := c.open[len(c.open)-1]
		top.Children = append(top.Children, box)
		return
	}
	c.inlines = append(c.inlines, box)
}

// outOfFlow adds an absolutely positioned box or a float. Within inline
// content it becomes inline-level, otherwise block-level.
func (c *container) outOfFlow(box interface {
	InlineLevelBox
	BlockLevelBox
}) {
	if len(c.open) > 0 || significant(c.inlines) {
		c.attach(box)
		return
	}
	c.flush()
	c.blocks = append(c.blocks, box)
}

// block adds a block-level box. Pending inline content is wrapped into an
// anonymous block box, and open inline boxes are split around the block.
func (c *container) block(box BlockLevelBox) {
	open := c.open
	c.open = nil
	c.flush()
	c.blocks = append(c.blocks, box)
	for _, ib := range open {
		tracer().Debugf("splitting inline box <%s> around block", ib.Tag)
		cont := &InlineBox{Tag: ib.Tag, Style: ib.Style, Font: ib.Font}
		c.attach(cont)
		c.open = append(c.open, cont)
	}
}

// flush wraps pending inline content into an anonymous block box. Content
// consisting of collapsible white space only is dropped.
func (c *container) flush() {
	c.ws.trimTrailing()
	if significant(c.inlines) {
		anon := c.style.ForAnonymousBox()
		font := c.b.font(anon)
		c.blocks = append(c.blocks, &BlockBox{
			Style: anon,
			Font:  font,
			Contents: BlockContainer{Inline: &InlineFormattingContext{
				Style:    anon,
				Font:     font,
				Children: c.inlines,
			}},
		})
	}
	c.inlines = nil
	c.ws = newWhitespace()
}

// finish returns the contents of the container.
func (c *container) finish() BlockContainer {
	if len(c.blocks) == 0 {
		c.ws.trimTrailing()
		if !significant(c.inlines) {
			return BlockContainer{}
		}
		return BlockContainer{Inline: &InlineFormattingContext{
			Style:    c.style,
			Font:     c.b.font(c.style),
			Children: c.inlines,
		}}
	}
	c.flush()
	return BlockContainer{Blocks: c.blocks}
}

// significant is true if boxes contain anything other than empty text.
func significant(boxes []InlineLevelBox) bool {
	for _, box := range boxes {
		switch b := box.(type) {
		case *TextRun:
			if b.Text != "" && b.Text != " " {
				return true
			}
		case *InlineBox:
			if significant(b.Children) {
				return true
			}
		default:
			return true
		}
	}
	return false
}
