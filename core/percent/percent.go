// Package percent implements a simple and straightforward type for percentage values.
package percent

import (
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/boxflow/core/dimen"
)

// Percent is a simple and straightforward type for percentage values.
// Values are clamped to 0…100.
type Percent uint8

func FromInt(n int) Percent {
	switch {
	case n <= 0:
		return Percent(0)
	case n >= 100:
		return Percent(100)
	}
	return Percent(n)
}

func FromFloat(f float64) Percent {
	switch {
	case f <= 0 || math.IsNaN(f) || math.IsInf(f, -1):
		return Percent(0)
	case f >= 100 || math.IsInf(f, 1):
		return Percent(100)
	}
	return Percent(math.Round(f))
}

func FromString(s string) (Percent, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "%")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return FromFloat(f), nil
}

// Fraction returns p as a factor between 0 and 1.
func (p Percent) Fraction() float64 {
	return float64(p) / 100
}

// Of returns p percent of d.
func (p Percent) Of(d dimen.Dimen) dimen.Dimen {
	return d.Scale(p.Fraction())
}

func (p Percent) String() string {
	return strconv.Itoa(int(p)) + "%"
}
