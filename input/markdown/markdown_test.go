package markdown

import (
	"strings"
	"testing"

	"github.com/npillmayer/boxflow/engine/dom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html/atom"
)

func TestToHTML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.input")
	defer teardown()
	//
	markup, err := ToHTML([]byte("# Title\n\nSome *emphasized* ~~old~~ text.\n"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(markup, "<!DOCTYPE html>"))
	assert.Contains(t, markup, "<h1>Title</h1>")
	assert.Contains(t, markup, "<em>emphasized</em>")
	assert.Contains(t, markup, "<del>old</del>")
}

func TestParseKeepsRawHTML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.input")
	defer teardown()
	//
	src := "<style>p { color: red }</style>\n\nHello <span>world</span>\n"
	doc, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	body, err := doc.Body()
	require.NoError(t, err)
	p := dom.FindElement(body, atom.P)
	require.NotNil(t, p)
	assert.Equal(t, "Hello world", dom.TextContent(p))
	assert.Equal(t, []string{"p { color: red }"}, doc.StyleSheets())
}
