/*
Package layout lays out a box tree into fragments.

Block-level boxes are stacked along the block axis of their containing
block. Boxes with width `auto` fill their containing block, and auto
margins resolve to zero. Adjoining block margins of siblings collapse
(CSS 2.2 §8.3.1); margins of a parent and its first or last child do not.
Block containers with inline content delegate to package inline, which
breaks the content into lines.

Absolutely positioned boxes are laid out like blocks at their static
position, moved to `top` and `left` (or their logical counterparts) where
these are given. Their fragments are appended to the children of the
box which contains them. Floats are not supported and are skipped.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package layout

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxflow.layout'.
func tracer() tracing.Trace {
	return tracing.Select("boxflow.layout")
}
