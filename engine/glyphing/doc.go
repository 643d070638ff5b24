/*
Package glyphing is about measuring runs of text in a font.

Glyph-level shaping is not modelled. Text is accumulated into segments,
and the advance width of a segment is measured as a whole by the font
backend. Segments support snapshots, which lets line breaking try to
extend a segment and roll back to an earlier break opportunity without
re-measuring.

_________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2024 Norbert Pillmayer <norbert@pillmayer.com>
*/
package glyphing

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxflow.glyphs'.
func tracer() tracing.Trace {
	return tracing.Select("boxflow.glyphs")
}
