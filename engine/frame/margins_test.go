package frame

import (
	"testing"

	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestCollapsedMargin(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.frame")
	defer teardown()
	//
	a := NewCollapsedMargin(10 * dimen.PX).Adjoin(NewCollapsedMargin(-5 * dimen.PX))
	b := NewCollapsedMargin(20 * dimen.PX).Adjoin(NewCollapsedMargin(-15 * dimen.PX))
	assert.Equal(t, 5*dimen.PX, a.Solve())
	assert.Equal(t, 5*dimen.PX, a.Adjoin(b).Solve())
	a.AdjoinAssign(NewCollapsedMargin(30 * dimen.PX))
	assert.Equal(t, 25*dimen.PX, a.Solve())
	assert.Equal(t, dimen.Zero, CollapsedMargin{}.Solve())
}

func TestCollapsedBlockMargins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.frame")
	defer teardown()
	//
	m := CollapsedBlockMarginsFromMargin(Sides{BlockStart: 8 * dimen.PX, BlockEnd: -4 * dimen.PX})
	assert.Equal(t, 8*dimen.PX, m.Start.Solve())
	assert.Equal(t, -4*dimen.PX, m.End.Solve())
	assert.False(t, m.CollapsedThrough)
	assert.Equal(t, dimen.Zero, ZeroCollapsedBlockMargins().End.Solve())
}
