/*
Package option implements matching of optional values, as used for style
properties which may be unset, `auto`, or carry a concrete value.

Option types implement interface Type. Clients match against a map of
choices:

	v, err := d.Match(option.Of{
	    option.None: dimen.Zero,
	    style.Auto:  dimen.Zero,
	    option.Some: func(x interface{}) (interface{}, error) { … },
	})
*/
package option

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxflow.core'.
func tracer() tracing.Trace {
	return tracing.Select("boxflow.core")
}
