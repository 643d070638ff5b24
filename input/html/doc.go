/*
Package html reads HTML input documents from files.

Besides parsing a document, it loads the style sheets a document links to
with <link rel="stylesheet">. Linked files are resolved relative to the
directory of the document. Remote style sheets are not fetched.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package html

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxflow.input'.
func tracer() tracing.Trace {
	return tracing.Select("boxflow.input")
}
