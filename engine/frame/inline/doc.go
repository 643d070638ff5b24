/*
Package inline lays out inline formatting contexts.

An inline formatting context holds a sequence of inline-level boxes, i.e.
text runs and inline boxes, which may nest. Layout breaks the text into
lines which fit the inline size of the containing block. Every completed
line is represented by an anonymous fragment, which holds the text and box
fragments of the line. Inline boxes which are broken across lines produce
one box fragment per line; inline-start edges (padding, border, margin) are
applied to the first of them only, inline-end edges to the last.

Lines are broken at spaces only. A single word wider than the line will
overflow. Every line box is as tall as the maximum ascent plus the maximum
descent of its contents, taking vertical-align shifts into account; after
a line is complete, its fragments are moved down so that they share a
common baseline.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package inline

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxflow.frame'.
func tracer() tracing.Trace {
	return tracing.Select("boxflow.frame")
}
