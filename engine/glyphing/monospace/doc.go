/*
Package monospace implements a simple font for monospace output.

Every grapheme advances by a fixed amount, multiplied by its East Asian
width. Spaces may be given a separate advance. Monospace fonts do not need
font files and produce reproducible layouts, which makes them a good fit
for terminal-like output and for testing.

_________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2024 Norbert Pillmayer <norbert@pillmayer.com>
*/
package monospace

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxflow.glyphs'.
func tracer() tracing.Trace {
	return tracing.Select("boxflow.glyphs")
}
