/*
Package dom provides read-only access to an HTML document.

Documents are parsed with golang.org/x/net/html. Layout never changes a
document; it reads elements, attributes and text, and extracts style sheets
embedded with <style> elements.

_________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2024 Norbert Pillmayer <norbert@pillmayer.com>
*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxflow.dom'.
func tracer() tracing.Trace {
	return tracing.Select("boxflow.dom")
}
