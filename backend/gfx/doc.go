/*
Package gfx defines the capabilities layout requires from a render backend.

A render device draws text, filled rectangles and straight lines at
physical positions, i.e. with x running to the right and y running
downwards, in units of CSS pixels. Devices are used synchronously from a
single goroutine and are assumed not to fail; a device which cannot draw
should record the problem itself.

Sub-packages provide a raster device (ggadapter) and a device recording
draw calls (recorder).

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package gfx

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxflow.gfx'.
func tracer() tracing.Trace {
	return tracing.Select("boxflow.gfx")
}
