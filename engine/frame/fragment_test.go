package frame

import (
	"strings"
	"testing"

	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/boxflow/engine/glyphing"
	"github.com/npillmayer/boxflow/engine/glyphing/monospace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func sampleTree(t *testing.T) []Fragment {
	seg, err := glyphing.Shape("Hello", monospace.New(10*dimen.PX))
	assert.NoError(t, err)
	text := &TextFragment{ContentRect: rect(0, 0, 25, 10), Text: seg}
	box := &BoxFragment{ContentRect: rect(5, 0, 25, 10), Children: []Fragment{text}}
	line := &AnonymousFragment{Rect: rect(0, 0, 100, 12), Children: []Fragment{box}}
	return []Fragment{line}
}

func TestTranslateBlock(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.frame")
	defer teardown()
	//
	tree := sampleTree(t)
	line := tree[0].(*AnonymousFragment)
	box := line.Children[0].(*BoxFragment)
	box.TranslateBlock(3 * dimen.PX)
	line.TranslateBlock(12 * dimen.PX)
	assert.Equal(t, 3*dimen.PX, box.ContentRect.StartCorner.Block)
	assert.Equal(t, 12*dimen.PX, line.Rect.StartCorner.Block)
	assert.Equal(t, dimen.Zero, box.Children[0].(*TextFragment).ContentRect.StartCorner.Block)
}

func TestDump(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.frame")
	defer teardown()
	//
	var b strings.Builder
	Dump(&b, sampleTree(t))
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	assert.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "Line"))
	assert.True(t, strings.HasPrefix(lines[1], "   Box"))
	assert.Contains(t, lines[2], `Text "Hello"`)
	assert.Nil(t, Children(&TextFragment{}))
}
