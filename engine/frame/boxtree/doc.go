/*
Package boxtree produces a box tree from a styled tree (DOM).

Every element of the DOM generates zero or more boxes, depending on its
computed display mode. Block-level elements generate block boxes, inline
elements generate inline boxes and text generates text runs. Block
containers hold either block-level boxes only or a single inline formatting
context. If a block container has both kinds of children, consecutive
inline-level content is wrapped into anonymous block boxes. An inline box
interrupted by a block-level box is split into two inline boxes; the first
one does not own the inline-end edges, the second one does not own the
inline-start edges.

White space is processed according to CSS property "white-space" while the
tree is built, and text is normalized to NFC.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package boxtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxflow.frame.box'.
func tracer() tracing.Trace {
	return tracing.Select("boxflow.frame.box")
}
