package framedebug

import (
	"strings"
	"testing"

	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/boxflow/engine/frame"
	"github.com/npillmayer/boxflow/engine/glyphing"
	"github.com/npillmayer/boxflow/engine/glyphing/monospace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestGraphViz(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.frame")
	defer teardown()
	//
	seg, err := glyphing.Shape("a rather long text", monospace.New(10*dimen.PX))
	assert.NoError(t, err)
	text := &frame.TextFragment{Text: seg}
	box := &frame.BoxFragment{Children: []frame.Fragment{text}}
	line := &frame.AnonymousFragment{Children: []frame.Fragment{box}}
	var b strings.Builder
	err = ToGraphViz([]frame.Fragment{line}, &b)
	assert.NoError(t, err)
	dot := b.String()
	assert.True(t, strings.HasPrefix(dot, "digraph g {"))
	assert.Contains(t, dot, "node00001 -> node00002")
	assert.Contains(t, dot, "node00002 -> node00003")
	assert.Contains(t, dot, "a␣rather␣l…")
	assert.True(t, strings.HasSuffix(dot, "}\n"))
}
