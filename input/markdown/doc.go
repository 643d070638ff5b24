/*
Package markdown converts Markdown input to HTML documents.

Conversion is done by github.com/yuin/goldmark, with the GitHub flavoured
extensions for strikethrough and autolinks enabled. Raw HTML within the
Markdown source is passed through, which allows authors to add <style>
elements.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package markdown

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxflow.input'.
func tracer() tracing.Trace {
	return tracing.Select("boxflow.input")
}
