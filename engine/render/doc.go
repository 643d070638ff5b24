/*
Package render is the entry point for hosts which want to render documents.

It connects the stages of the engine: an HTML document (or Markdown input,
converted to HTML) is styled, transformed into a box tree, laid out onto a
page and painted onto a render device.

RenderHTML and RenderMarkdown are the failure boundary of the engine.
Errors of any stage, including panics, are caught there and logged; the
host will always get back control. Clients interested in errors call
Render.

# Configuration

Rendering reads the following keys from a schuko.Configuration:

	page-width        width of the page, e.g. "800px"
	page-height       height of the page
	default-font-size initial font size of the root element, e.g. "16px"
	max-inline-depth  maximum nesting depth of inline boxes, e.g. "256"
	system-fonts      "false" restricts fonts to the bundled Go fonts

Missing keys fall back to defaults.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package render

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxflow.render'.
func tracer() tracing.Trace {
	return tracing.Select("boxflow.render")
}
