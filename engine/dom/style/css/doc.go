/*
Package css resolves CSS style sheets to computed styles.

Style sheets are parsed with github.com/aymerick/douceur, selectors are
matched against HTML nodes with github.com/andybalholm/cascadia. The
Resolver implements the cascade (origin, importance, specificity, source
order), inheritance, and computation of values, producing a
style.ComputedValues record per element.

Supported are the properties layout reads: display, position, float,
offsets, width, height, fonts, colors, padding, margins, borders,
text-align, white-space, line-height, vertical-align, writing-mode and
direction, together with the usual shorthands. At-rules are ignored.

_________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2024 Norbert Pillmayer <norbert@pillmayer.com>
*/
package css

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxflow.style'.
func tracer() tracing.Trace {
	return tracing.Select("boxflow.style")
}
