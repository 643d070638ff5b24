package render

import (
	"image/color"
	"strings"
	"testing"

	"github.com/npillmayer/boxflow/backend/gfx/recorder"
	"github.com/npillmayer/boxflow/core"
	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/boxflow/engine/dom"
	"github.com/npillmayer/boxflow/engine/dom/style"
	"github.com/npillmayer/boxflow/engine/frame/boxtree"
	"github.com/npillmayer/boxflow/engine/glyphing"
	"github.com/npillmayer/boxflow/engine/glyphing/monospace"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const px = dimen.PX

func testSettings() Settings {
	s := DefaultSettings()
	s.PageSize = dimen.Point{X: 400 * px, Y: 200 * px}
	s.Fonts = boxtree.FontFunc(func(cv *style.ComputedValues) (glyphing.Font, error) {
		return monospace.New(cv.Font.Size), nil
	})
	return s
}

func TestRenderDocument(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.render")
	defer teardown()
	//
	doc, err := dom.ParseString(`<html><body><p style="background: #f00">Hello world</p></body></html>`)
	require.NoError(t, err)
	dev := &recorder.Device{}
	require.NoError(t, Render(doc, nil, dev, testSettings()))
	texts := dev.Filter(recorder.OpText)
	require.NotEmpty(t, texts)
	assert.Equal(t, "Hello world", strings.Join(dev.Texts(), ""))
	assert.Equal(t, 8.0, texts[0].X, "text should start at the body margin")
	rects := dev.Filter(recorder.OpRect)
	require.Len(t, rects, 1)
	assert.Equal(t, color.RGBA{R: 0xff, A: 0xff}, rects[0].Color)
	assert.Equal(t, 8.0, rects[0].X)
	assert.Equal(t, 384.0, rects[0].W)
}

func TestRenderWithAuthorStyleSheet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.render")
	defer teardown()
	//
	doc, err := dom.ParseString(`<p>Hello</p>`)
	require.NoError(t, err)
	dev := &recorder.Device{}
	sheet := "body { margin: 0 } p { margin: 0; padding-left: 10px }"
	require.NoError(t, Render(doc, []string{sheet}, dev, testSettings()))
	texts := dev.Filter(recorder.OpText)
	require.Len(t, texts, 1)
	assert.Equal(t, 10.0, texts[0].X)
}

func TestRenderReportsUnsupportedContent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.render")
	defer teardown()
	//
	doc, err := dom.ParseString(`<p>An image: <img src="x.png"></p>`)
	require.NoError(t, err)
	err = Render(doc, nil, &recorder.Device{}, testSettings())
	require.Error(t, err)
	assert.Equal(t, core.EUNSUPPORTED, core.Code(err))
}

func TestRenderMissingInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.render")
	defer teardown()
	//
	err := Render(nil, nil, &recorder.Device{}, testSettings())
	assert.Equal(t, core.EMISSING, core.Code(err))
	doc, _ := dom.ParseString(`<p>x</p>`)
	err = Render(doc, nil, nil, testSettings())
	assert.Equal(t, core.EMISSING, core.Code(err))
}

func TestGuardRecoversPanic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.render")
	defer teardown()
	//
	err := guard(func() error {
		panic("box tree corrupted")
	})
	require.Error(t, err)
	assert.Equal(t, core.EINTERNAL, core.Code(err))
	assert.NoError(t, guard(func() error { return nil }))
}

func TestHostEntryPointsNeverFail(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.render")
	defer teardown()
	//
	conf := testconfig.Conf{"max-inline-depth": "none"}
	assert.NotPanics(t, func() {
		RenderHTML("<p>Hello</p>", "", nil, dimen.Point{}, nil)
		RenderHTML("<p>Hello</p>", "", &recorder.Device{}, dimen.Point{}, conf)
		RenderMarkdown("# Title", "", nil, dimen.Point{}, nil)
	})
}

func TestRenderMarkdownWithGoFonts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.render")
	defer teardown()
	//
	conf := testconfig.Conf{"system-fonts": "false"}
	dev := &recorder.Device{}
	RenderMarkdown("# Title\n\nSome *text*.\n", "h1 { color: #00f }", dev, dimen.Point{X: 300 * px, Y: 200 * px}, conf)
	texts := dev.Filter(recorder.OpText)
	require.NotEmpty(t, texts)
	assert.Equal(t, "Title", texts[0].Text)
	assert.Equal(t, color.RGBA{B: 0xff, A: 0xff}, texts[0].Color)
	assert.Contains(t, strings.Join(dev.Texts(), ""), "text")
}

func TestSettingsFromConfiguration(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.render")
	defer teardown()
	//
	s, err := SettingsFrom(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultPageSize, s.PageSize)
	conf := testconfig.Conf{
		"page-width":        "400",
		"page-height":       "300px",
		"default-font-size": "12px",
		"max-inline-depth":  "8",
	}
	s, err = SettingsFrom(conf)
	require.NoError(t, err)
	assert.Equal(t, dimen.Point{X: 400 * px, Y: 300 * px}, s.PageSize)
	assert.Equal(t, 12*px, s.DefaultFontSize)
	assert.Equal(t, 8, s.MaxInlineDepth)
	for key, value := range map[string]string{
		"page-width":       "wide",
		"page-height":      "50%",
		"max-inline-depth": "-1",
	} {
		_, err = SettingsFrom(testconfig.Conf{key: value})
		assert.Equal(t, core.EINVALID, core.Code(err), "key %s = %q", key, value)
	}
}
