package frame

import (
	"fmt"

	"github.com/npillmayer/boxflow/core/dimen"
)

// CollapsedMargin tracks a set of adjoining margins, following the rules of
// CSS 2.2 §8.3.1: the resulting margin is the maximum of the positive
// margins plus the minimum of the negative margins.
type CollapsedMargin struct {
	maxPositive dimen.Dimen
	minNegative dimen.Dimen
}

// NewCollapsedMargin creates a collapsed margin from a single margin.
func NewCollapsedMargin(m dimen.Dimen) CollapsedMargin {
	return CollapsedMargin{
		maxPositive: dimen.Max(m, 0),
		minNegative: dimen.Min(m, 0),
	}
}

// Adjoin returns the collapsed margin of c and other.
func (c CollapsedMargin) Adjoin(other CollapsedMargin) CollapsedMargin {
	return CollapsedMargin{
		maxPositive: dimen.Max(c.maxPositive, other.maxPositive),
		minNegative: dimen.Min(c.minNegative, other.minNegative),
	}
}

// AdjoinAssign adjoins other to c.
func (c *CollapsedMargin) AdjoinAssign(other CollapsedMargin) {
	*c = c.Adjoin(other)
}

// Solve returns the resulting margin.
func (c CollapsedMargin) Solve() dimen.Dimen {
	return c.maxPositive + c.minNegative
}

func (c CollapsedMargin) String() string {
	return fmt.Sprintf("margin{+%s %s}", c.maxPositive, c.minNegative)
}

// CollapsedBlockMargins holds the block-start and block-end margins of a box,
// as seen by margin collapsing. If CollapsedThrough is set, start and end
// margin adjoin each other.
type CollapsedBlockMargins struct {
	CollapsedThrough bool
	Start            CollapsedMargin
	End              CollapsedMargin
}

// CollapsedBlockMarginsFromMargin creates the collapsed margins for a box
// with margins m.
func CollapsedBlockMarginsFromMargin(m Sides) CollapsedBlockMargins {
	return CollapsedBlockMargins{
		Start: NewCollapsedMargin(m.BlockStart),
		End:   NewCollapsedMargin(m.BlockEnd),
	}
}

// ZeroCollapsedBlockMargins returns block margins of zero size.
func ZeroCollapsedBlockMargins() CollapsedBlockMargins {
	return CollapsedBlockMargins{}
}
