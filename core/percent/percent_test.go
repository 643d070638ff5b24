package percent

import (
	"testing"

	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/stretchr/testify/assert"
)

func TestPercentClamping(t *testing.T) {
	assert.Equal(t, Percent(0), FromInt(-4))
	assert.Equal(t, Percent(100), FromInt(170))
	assert.Equal(t, Percent(50), FromFloat(49.6))
	p, err := FromString(" 25% ")
	assert.NoError(t, err)
	assert.Equal(t, Percent(25), p)
	_, err = FromString("abc")
	assert.Error(t, err)
}

func TestPercentOf(t *testing.T) {
	assert.Equal(t, 50*dimen.PX, Percent(50).Of(100*dimen.PX))
	assert.Equal(t, 0.25, Percent(25).Fraction())
	assert.Equal(t, "75%", Percent(75).String())
}
