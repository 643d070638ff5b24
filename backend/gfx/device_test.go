package gfx

import (
	"testing"

	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestDashPattern(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.gfx")
	defer teardown()
	//
	assert.Empty(t, DashPattern(LineSolid, 2*dimen.PX))
	assert.Equal(t, []float64{2, 2}, DashPattern(LineDotted, 2*dimen.PX))
	assert.Equal(t, []float64{6, 6}, DashPattern(LineDashed, 2*dimen.PX))
	assert.Equal(t, []float64{1, 1}, DashPattern(LineDotted, dimen.PX/2))
	assert.Empty(t, DashPattern(LineNone, dimen.PX))
}
