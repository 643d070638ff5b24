package monospace

import (
	"testing"

	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestMonospaceMeasure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.glyphs")
	defer teardown()
	//
	f := WithMetrics(20*dimen.PX, 20*dimen.PX, 10*dimen.PX, 16*dimen.PX, 4*dimen.PX)
	w, err := f.MeasureString("aa bb")
	assert.NoError(t, err)
	assert.Equal(t, 90*dimen.PX, w)
	w, _ = f.MeasureString("")
	assert.Equal(t, dimen.Zero, w)
	w, _ = f.MeasureString("世界")
	assert.Equal(t, 80*dimen.PX, w, "wide graphemes advance twice")
	assert.Equal(t, 10*dimen.PX, f.Ex())
}

func TestMonospaceDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.glyphs")
	defer teardown()
	//
	f := New(0)
	assert.Equal(t, 10*dimen.PX, f.Size())
	w, _ := f.MeasureString("ab c")
	assert.Equal(t, 4*f.Advance, w)
	assert.Equal(t, f.Size(), f.Ascent()+f.Descent())
}
