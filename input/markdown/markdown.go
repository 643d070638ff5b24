package markdown

import (
	"bytes"
	"io"

	"github.com/npillmayer/boxflow/core"
	"github.com/npillmayer/boxflow/engine/dom"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var converter = goldmark.New(
	goldmark.WithExtensions(extension.Strikethrough, extension.Linkify),
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

// ToHTML converts Markdown source to a complete HTML document.
func ToHTML(source []byte) (string, error) {
	var body bytes.Buffer
	if err := converter.Convert(source, &body); err != nil {
		return "", core.WrapError(err, core.EINVALID, "cannot convert Markdown input")
	}
	tracer().Debugf("converted %d bytes of Markdown to %d bytes of HTML", len(source), body.Len())
	var doc bytes.Buffer
	doc.WriteString("<!DOCTYPE html>\n<html><head></head><body>\n")
	doc.Write(body.Bytes())
	doc.WriteString("</body></html>\n")
	return doc.String(), nil
}

// Parse reads Markdown input and returns it as an HTML document.
func Parse(r io.Reader) (*dom.Document, error) {
	source, err := io.ReadAll(r)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot read Markdown input")
	}
	markup, err := ToHTML(source)
	if err != nil {
		return nil, err
	}
	return dom.ParseString(markup)
}
