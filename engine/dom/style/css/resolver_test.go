package css

import (
	"image/color"
	"testing"

	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/boxflow/engine/dom"
	"github.com/npillmayer/boxflow/engine/dom/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	xfont "golang.org/x/image/font"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var viewport = dimen.Point{X: 800 * dimen.PX, Y: 600 * dimen.PX}

// resolvePath resolves styles from the root element down to the first
// element of type a.
func resolvePath(t *testing.T, r *Resolver, doc *dom.Document, a atom.Atom) *style.ComputedValues {
	target := dom.FindElement(doc.Root(), a)
	if target == nil {
		t.Fatalf("no element %s in document", a)
	}
	var path []*html.Node
	for n := target; n != nil; n = n.Parent {
		if n.Type == html.ElementNode {
			path = append([]*html.Node{n}, path...)
		}
	}
	var cv *style.ComputedValues
	for _, n := range path {
		cv = r.Resolve(n, cv)
	}
	return cv
}

func TestCascadeOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.style")
	defer teardown()
	//
	doc, _ := dom.ParseString(`<html><head><style>
	p { color: red; padding: 1px 2px }
	p.x { color: green }
	#y { color: blue; padding-left: 7px }
	p { color: yellow !important }
	</style></head><body><p id="y" class="x" style="color: black; margin: 0 auto">A</p></body></html>`)
	r := ResolverForDocument(doc, viewport)
	cv := resolvePath(t, r, doc, atom.P)
	assert.Equal(t, color.RGBA{0xff, 0xff, 0, 0xff}, cv.Color, "important declaration wins")
	assert.Equal(t, 1*dimen.PX, cv.Padding[style.Top].Unwrap())
	assert.Equal(t, 2*dimen.PX, cv.Padding[style.Right].Unwrap())
	assert.Equal(t, 7*dimen.PX, cv.Padding[style.Left].Unwrap(), "id selector wins")
	assert.True(t, cv.Margin[style.Left].IsAuto(), "inline style wins")
	assert.True(t, cv.Display.IsBlockLevel())
}

func TestInheritanceAndUnits(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.style")
	defer teardown()
	//
	doc, _ := dom.ParseString(`<html><head><style>
	html { font-size: 10px }
	body { font-size: 20px; color: #00f; text-align: center; line-height: 1.5 }
	span { margin-left: 2em; padding-right: 1rem; width: 50%; border: thin dashed }
	</style></head><body><p><span>x</span></p></body></html>`)
	r := ResolverForDocument(doc, viewport)
	cv := resolvePath(t, r, doc, atom.Span)
	assert.Equal(t, 20*dimen.PX, cv.Font.Size)
	assert.Equal(t, color.RGBA{0, 0, 0xff, 0xff}, cv.Color)
	assert.Equal(t, style.TextAlignCenter, cv.TextAlign.Kind)
	assert.Equal(t, 30*dimen.PX, cv.ResolvedLineHeight())
	assert.Equal(t, 40*dimen.PX, cv.Margin[style.Left].Unwrap())
	assert.Equal(t, 10*dimen.PX, cv.Padding[style.Right].Unwrap())
	assert.True(t, cv.Width.IsPercent())
	assert.Equal(t, style.LineStyleDashed, cv.BorderStyle[style.Bottom])
	assert.Equal(t, 1*dimen.PX, cv.EffectiveBorderWidth(style.Bottom).Unwrap())
	assert.Equal(t, cv.Color, cv.BorderColor[style.Top], "border color defaults to currentcolor")
	assert.True(t, cv.Display.Contains(style.InlineMode))
}

func TestUserAgentDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.style")
	defer teardown()
	//
	doc, _ := dom.ParseString(`<h1>Title</h1><pre>x</pre><p><b>bold</b><sub>2</sub></p>`)
	r := ResolverForDocument(doc, viewport)
	h1 := resolvePath(t, r, doc, atom.H1)
	assert.Equal(t, 32*dimen.PX, h1.Font.Size)
	assert.Equal(t, xfont.WeightBold, h1.Font.Weight)
	pre := resolvePath(t, r, doc, atom.Pre)
	assert.Equal(t, style.WhiteSpacePre, pre.WhiteSpace)
	assert.Equal(t, []string{"monospace"}, pre.Font.Family)
	sub := resolvePath(t, r, doc, atom.Sub)
	assert.Equal(t, style.VerticalAlignSub, sub.VerticalAlign.Kind)
	assert.Less(t, int(sub.Font.Size), int(16*dimen.PX))
	body := resolvePath(t, r, doc, atom.Body)
	assert.Equal(t, 8*dimen.PX, body.Margin[style.Top].Unwrap())
	head := resolvePath(t, r, doc, atom.Head)
	assert.Equal(t, style.DisplayNone, head.Display)
}

func TestShorthands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.style")
	defer teardown()
	//
	m := expandShorthand("margin", "1px 2px 3px")
	assert.Equal(t, "1px", m["margin-top"])
	assert.Equal(t, "2px", m["margin-right"])
	assert.Equal(t, "3px", m["margin-bottom"])
	assert.Equal(t, "2px", m["margin-left"])
	m = expandShorthand("border-left", "2px solid rgb(0, 0, 0)")
	assert.Equal(t, "2px", m["border-left-width"])
	assert.Equal(t, "solid", m["border-left-style"])
	assert.Equal(t, "rgb(0, 0, 0)", m["border-left-color"])
	assert.Len(t, m, 3)
	m = expandShorthand("font", "italic bold 12px/1.5 Georgia, serif")
	assert.Equal(t, "italic", m["font-style"])
	assert.Equal(t, "bold", m["font-weight"])
	assert.Equal(t, "12px", m["font-size"])
	assert.Equal(t, "1.5", m["line-height"])
	assert.Equal(t, "Georgia, serif", m["font-family"])
	m = expandShorthand("background", "url(x.png) #fff no-repeat")
	assert.Equal(t, "#fff", m["background-color"])
	m = expandShorthand("padding", "inherit")
	assert.Equal(t, "inherit", m["padding-left"])
}

func TestGlobalKeywords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.style")
	defer teardown()
	//
	doc, _ := dom.ParseString(`<html><head><style>
	div { padding: 5px; white-space: pre }
	p { padding: inherit; white-space: initial; color: unset }
	</style></head><body><div style="color: red"><p>x</p></div></body></html>`)
	r := ResolverForDocument(doc, viewport)
	cv := resolvePath(t, r, doc, atom.P)
	assert.Equal(t, 5*dimen.PX, cv.Padding[style.Left].Unwrap())
	assert.Equal(t, style.WhiteSpaceNormal, cv.WhiteSpace)
	assert.Equal(t, color.RGBA{0xff, 0, 0, 0xff}, cv.Color)
}

func TestIllegalDeclarationsAreIgnored(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.style")
	defer teardown()
	//
	doc, _ := dom.ParseString(`<html><head><style>
	p::before { color: red }
	p { color: nonsense; padding: auto; margin-inline-start: 3px; display: ruby }
	</style></head><body><p>x</p></body></html>`)
	r := ResolverForDocument(doc, viewport)
	cv := resolvePath(t, r, doc, atom.P)
	assert.Equal(t, color.RGBA{A: 0xff}, cv.Color)
	assert.Equal(t, dimen.Zero, cv.Padding[style.Left].Unwrap())
	sheet, err := ParseStylesheet("p::before { color: red } a, b { }", AuthorOrigin)
	assert.NoError(t, err)
	assert.Equal(t, 1, sheet.Len())
}

func TestDefaultFontSize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.style")
	defer teardown()
	//
	doc, _ := dom.ParseString(`<html><head><style>
	span { padding-left: 1rem; margin-left: 2em }
	</style></head><body><p><span>x</span></p></body></html>`)
	r := ResolverForDocument(doc, viewport)
	r.SetDefaultFontSize(12 * dimen.PX)
	cv := resolvePath(t, r, doc, atom.Span)
	assert.Equal(t, 12*dimen.PX, cv.Font.Size)
	assert.Equal(t, 12*dimen.PX, cv.Padding[style.Left].Unwrap())
	assert.Equal(t, 24*dimen.PX, cv.Margin[style.Left].Unwrap())
}

func TestUnterminatedStyleAttribute(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.style")
	defer teardown()
	//
	doc, _ := dom.ParseString(`<html><body>
	<p style="margin-left: 7px">A</p>
	<div style="color: red; padding-top: 3px"><span style=" position: relative ; ">B</span></div>
	</body></html>`)
	r := ResolverForDocument(doc, viewport)
	cv := resolvePath(t, r, doc, atom.P)
	assert.Equal(t, 7*dimen.PX, cv.Margin[style.Left].Unwrap(), "single declaration without semicolon")
	div := resolvePath(t, r, doc, atom.Div)
	assert.Equal(t, color.RGBA{0xff, 0, 0, 0xff}, div.Color)
	assert.Equal(t, 3*dimen.PX, div.Padding[style.Top].Unwrap(), "last declaration without semicolon")
	span := resolvePath(t, r, doc, atom.Span)
	assert.Equal(t, style.PositionRelative, span.Position)
	assert.Equal(t, "a: b;", terminated(" a: b "))
	assert.Equal(t, "a: b;", terminated("a: b;"))
	assert.Equal(t, "", terminated("  "))
}
