/*
Package style holds computed style values.

A ComputedValues record is produced for every element of a document by the
style resolver (see package css). Layout and painting read computed values
only; values are never changed once computed.

Lengths which may be relative to a containing block (percentages) or
which may be `auto` are held in option type DimenT. Font-relative units
(`em`, `ex`, `rem`) and viewport units are resolved during computation.

_________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2024 Norbert Pillmayer <norbert@pillmayer.com>
*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxflow.style'.
func tracer() tracing.Trace {
	return tracing.Select("boxflow.style")
}
