/*
Package frame holds the output data model of layout: fragments.

Layout places boxes within larger boxes. Every box generated from the box
tree ends up as one or more fragments, i.e. positioned and sized
rectangles. An inline box broken across three lines will produce three
box fragments. Fragments form a tree with exclusive ownership, top-down.

Geometry in this package is logical: a rectangle has a start corner and a
size along the inline and block axes. Mapping to physical coordinates
(x to the right, y downwards) depends on writing mode and direction and
is done with Rect.ToPhysical.

Margin collapsing (CSS 2.2 §8.3.1) is supported by CollapsedMargin, which
records the maximum positive and the minimum negative margin of a set of
adjoining margins.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package frame

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxflow.frame'.
func tracer() tracing.Trace {
	return tracing.Select("boxflow.frame")
}
