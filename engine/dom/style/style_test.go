package style

import (
	"image/color"
	"testing"

	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/boxflow/core/option"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	xfont "golang.org/x/image/font"
)

func TestDimen(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.style")
	defer teardown()
	//
	p := Property("100pt")
	d := p.DimenOption()
	if d.Unwrap() != dimen.Dimen(100)*dimen.PT {
		t.Errorf("expected 100 PT (%d), have %d", 100*dimen.PT, d)
	}
	//
	p = Property("auto")
	d = p.DimenOption()
	x, err := d.Match(option.Of{
		option.None: "NONE",
		Auto:        "AUTO",
	})
	if err != nil || x != "AUTO" {
		t.Errorf("expected AUTO, have %v with error %v", x, err)
	}
	//
	d = Property("12").DimenOption()
	assert.True(t, d.IsNone(), "unitless non-zero length is invalid")
	assert.True(t, Property("0").DimenOption().IsAbsolute())
}

func TestDimenResolve(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.style")
	defer teardown()
	//
	d, err := ParseDimen("25%")
	assert.NoError(t, err)
	assert.True(t, d.IsPercent())
	assert.Equal(t, 50*dimen.PX, d.Resolve(200*dimen.PX))
	assert.Equal(t, dimen.Zero, AutoDimen().Resolve(200*dimen.PX))
	assert.Equal(t, 7*dimen.PX, SomeDimen(7*dimen.PX).Resolve(200*dimen.PX))
	//
	d, _ = ParseDimen("1.5em")
	assert.True(t, d.Equals(FontScaled))
	assert.Equal(t, 24*dimen.PX, d.ScaleFromFont(16*dimen.PX, 10*dimen.PX).Unwrap())
	d, _ = ParseDimen("2rem")
	assert.Equal(t, 20*dimen.PX, d.ScaleFromFont(16*dimen.PX, 10*dimen.PX).Unwrap())
	d, _ = ParseDimen("10vw")
	assert.Equal(t, 80*dimen.PX, d.ScaleFromViewport(800*dimen.PX, 600*dimen.PX).Unwrap())
	em, _ := ParseDimen("1.5em")
	assert.Equal(t, "1.5em", em.String())
	assert.Equal(t, "12.5%", PercentDimen(12.5).String())
}

func TestDimenMatchResolvesMargins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.style")
	defer teardown()
	//
	cb := 300 * dimen.PX
	resolve := func(d DimenT) dimen.Dimen {
		x, _ := d.Match(option.Of{
			option.None: dimen.Zero,
			Auto:        dimen.Zero,
			option.Some: func(o interface{}) (interface{}, error) {
				return o.(DimenT).Resolve(cb), nil
			},
		})
		return x.(dimen.Dimen)
	}
	assert.Equal(t, dimen.Zero, resolve(AutoDimen()))
	assert.Equal(t, 30*dimen.PX, resolve(PercentDimen(10)))
	assert.Equal(t, 4*dimen.PX, resolve(SomeDimen(4*dimen.PX)))
}

func TestTextAlign(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.style")
	defer teardown()
	//
	for s, f := range map[string]float64{
		"left": 0, "start": 0, "right": 1, "end": 1, "center": 0.5, "justify": 0, "25%": 0.25,
	} {
		ta, err := ParseTextAlign(s)
		assert.NoError(t, err, s)
		assert.Equal(t, f, ta.Factor(), s)
	}
	_, err := ParseTextAlign("middle")
	assert.Error(t, err)
}

func TestLineHeight(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.style")
	defer teardown()
	//
	fs := 20 * dimen.PX
	for s, h := range map[string]dimen.Dimen{
		"normal": 24 * dimen.PX,
		"1.5":    30 * dimen.PX,
		"150%":   30 * dimen.PX,
		"18px":   18 * dimen.PX,
		"2em":    40 * dimen.PX,
	} {
		lh, err := ParseLineHeight(s, fs, 16*dimen.PX)
		assert.NoError(t, err, s)
		assert.Equal(t, h, lh.Resolve(fs), s)
	}
	_, err := ParseLineHeight("-1", fs, fs)
	assert.Error(t, err)
}

func TestVerticalAlign(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.style")
	defer teardown()
	//
	va, err := ParseVerticalAlign("super", 0, 0)
	assert.NoError(t, err)
	assert.Equal(t, VerticalAlignSuper, va.Kind)
	va, _ = ParseVerticalAlign("-3px", 0, 0)
	assert.Equal(t, VerticalAlignLength, va.Kind)
	assert.Equal(t, -3*dimen.PX, va.Length)
	va, _ = ParseVerticalAlign("50%", 0, 0)
	assert.Equal(t, VerticalAlignPercentage, va.Kind)
	assert.Equal(t, 50.0, va.Percent)
	assert.Equal(t, "text-bottom", VerticalAlign{Kind: VerticalAlignTextBottom}.String())
}

func TestKeywordProperties(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.style")
	defer teardown()
	//
	ws, err := ParseWhiteSpace("pre-line")
	assert.NoError(t, err)
	assert.Equal(t, WhiteSpacePreLine, ws)
	assert.True(t, ws.Wraps())
	assert.True(t, ws.PreservesNewlines())
	assert.False(t, WhiteSpacePre.Wraps())
	assert.False(t, WhiteSpaceNowrap.Wraps())
	//
	wm, _ := ParseWritingMode("vertical-rl")
	assert.Equal(t, VerticalRL, wm)
	assert.True(t, wm.IsVertical())
	dir, _ := ParseDirection("rtl")
	assert.Equal(t, RTL, dir)
	ls, _ := ParseLineStyle("dashed")
	assert.Equal(t, LineStyleDashed, ls)
	bw, _ := ParseBorderWidth("thick")
	assert.Equal(t, 5*dimen.PX, bw.Unwrap())
	pos, _ := ParsePosition("absolute")
	assert.True(t, pos.IsOutOfFlow())
	w, _ := ParseFontWeight("700", xfont.WeightNormal)
	assert.Equal(t, xfont.WeightBold, w)
	w, _ = ParseFontWeight("bolder", xfont.WeightBold)
	assert.Equal(t, xfont.WeightBlack, w)
	assert.Equal(t, []string{"Times New Roman", "serif"}, ParseFontFamily(`"Times New Roman", serif`))
}

func TestDisplay(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.style")
	defer teardown()
	//
	d, err := ParseDisplay("inline-block")
	assert.NoError(t, err)
	assert.True(t, d.IsAtomicInline())
	d, _ = ParseDisplay("list-item")
	assert.True(t, d.IsBlockLevel())
	_, err = ParseDisplay("ruby-text")
	assert.Error(t, err)
	assert.Equal(t, DisplayNone, DefaultDisplay("head"))
	assert.True(t, DefaultDisplay("span").Contains(InlineMode))
	assert.True(t, DefaultDisplay("img").IsAtomicInline())
	assert.Equal(t, "flow block", (BlockMode | FlowMode).String())
}

func TestColors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.style")
	defer teardown()
	//
	for s, c := range map[string]color.RGBA{
		"red":                color.RGBA{0xff, 0, 0, 0xff},
		"#0f0":               color.RGBA{0, 0xff, 0, 0xff},
		"#0000ff":            color.RGBA{0, 0, 0xff, 0xff},
		"rgb(255, 255, 255)": color.RGBA{0xff, 0xff, 0xff, 0xff},
		"rgba(0,0,0,0)":      color.RGBA{},
		"transparent":        color.RGBA{},
		"#ff000080":          color.RGBA{0x80, 0, 0, 0x80},
	} {
		parsed, err := ParseColor(s)
		assert.NoError(t, err, s)
		assert.Equal(t, c, parsed, s)
	}
	_, err := ParseColor("#12")
	assert.Error(t, err)
	assert.Equal(t, color.RGBA{A: 0xff}, Property("no-such-color").Color())
}

func TestInheritance(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.style")
	defer teardown()
	//
	parent := InitialValues()
	parent.Color = color.RGBA{0xff, 0, 0, 0xff}
	parent.Font.Size = 20 * dimen.PX
	parent.Padding[Left] = SomeDimen(5 * dimen.PX)
	parent.WhiteSpace = WhiteSpacePre
	child := InheritFrom(parent)
	assert.Equal(t, parent.Color, child.Color)
	assert.Equal(t, parent.Color, child.BorderColor[Top])
	assert.Equal(t, 20*dimen.PX, child.Font.Size)
	assert.Equal(t, WhiteSpacePre, child.WhiteSpace)
	assert.Equal(t, dimen.Zero, child.Padding[Left].Unwrap())
	assert.Equal(t, 24*dimen.PX, child.ResolvedLineHeight())
	assert.Equal(t, dimen.Zero, child.EffectiveBorderWidth(Top).Unwrap())
	assert.True(t, parent.ForAnonymousBox().Display.IsBlockLevel())
}
