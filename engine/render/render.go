package render

import (
	"fmt"
	"strings"

	"github.com/npillmayer/boxflow/backend/gfx"
	"github.com/npillmayer/boxflow/core"
	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/boxflow/engine/dom"
	"github.com/npillmayer/boxflow/engine/dom/style/css"
	"github.com/npillmayer/boxflow/engine/frame"
	"github.com/npillmayer/boxflow/engine/frame/boxtree"
	"github.com/npillmayer/boxflow/engine/frame/layout"
	"github.com/npillmayer/boxflow/engine/paint"
	"github.com/npillmayer/boxflow/input/markdown"
	"github.com/npillmayer/schuko"
)

// RenderHTML renders an HTML document onto a device. stylesheet holds an author
// style sheet in addition to the style sheets embedded in the document; it
// may be empty. If page is non-zero, it overrides the page size of the
// configuration. conf may be nil.
//
// Failures are logged and never reported back to the caller.
func RenderHTML(markup, stylesheet string, dev gfx.RenderDevice, page dimen.Point, conf schuko.Configuration) {
	report(guard(func() error {
		doc, err := dom.ParseString(markup)
		if err != nil {
			return err
		}
		return renderWithConfig(doc, stylesheet, dev, page, conf)
	}))
}

// RenderMarkdown converts Markdown input to HTML and renders it like
// RenderHTML does.
func RenderMarkdown(source, stylesheet string, dev gfx.RenderDevice, page dimen.Point, conf schuko.Configuration) {
	report(guard(func() error {
		doc, err := markdown.Parse(strings.NewReader(source))
		if err != nil {
			return err
		}
		return renderWithConfig(doc, stylesheet, dev, page, conf)
	}))
}

func renderWithConfig(doc *dom.Document, stylesheet string, dev gfx.RenderDevice, page dimen.Point,
	conf schuko.Configuration) error {
	//
	settings, err := SettingsFrom(conf)
	if err != nil {
		return err
	}
	if page.X > 0 && page.Y > 0 {
		settings.PageSize = page
	}
	var sheets []string
	if strings.TrimSpace(stylesheet) != "" {
		sheets = append(sheets, stylesheet)
	}
	return Render(doc, sheets, dev, settings)
}

// Render styles, lays out and paints a document onto a device. sheets are
// author style sheets which are applied after the style sheets embedded in
// the document.
func Render(doc *dom.Document, sheets []string, dev gfx.RenderDevice, settings Settings) error {
	if dev == nil {
		return core.Error(core.EMISSING, "no render device")
	}
	fragments, page, err := Layout(doc, sheets, settings)
	if err != nil {
		return err
	}
	paint.Paint(dev, fragments, page)
	tracer().Infof("document rendered")
	return nil
}

// Layout styles a document and lays it out. It returns the fragment tree
// together with the page rect the fragments are positioned in.
func Layout(doc *dom.Document, sheets []string, settings Settings) ([]frame.Fragment, dimen.Rect, error) {
	if doc == nil {
		return nil, dimen.Rect{}, core.Error(core.EMISSING, "no document to render")
	}
	if settings.Fonts == nil {
		settings.Fonts = boxtree.RegistryFonts{}
	}
	tracer().Infof("layout of document on page %s x %s", settings.PageSize.X, settings.PageSize.Y)
	resolver := css.ResolverForDocument(doc, settings.PageSize, sheets...)
	resolver.SetDefaultFontSize(settings.DefaultFontSize)
	boxes, err := boxtree.Build(doc, resolver, settings.Fonts)
	if err != nil {
		return nil, dimen.Rect{}, err
	}
	page := layout.NewPage(settings.PageSize)
	fragments, err := layout.LayoutDocument(boxes, page, layout.Options{
		MaxInlineDepth: settings.MaxInlineDepth,
	})
	if err != nil {
		return nil, dimen.Rect{}, err
	}
	return fragments, page.Rect, nil
}

// guard calls f and turns a panic into an error.
func guard(f func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = core.WrapError(fmt.Errorf("%v", r), core.EINTERNAL, "rendering aborted: %v", r)
		}
	}()
	return f()
}

func report(err error) {
	if err == nil {
		return
	}
	tracer().Errorf("cannot render document: %s (%v)", core.UserMessage(err), err)
}
