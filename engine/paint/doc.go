/*
Package paint draws fragment trees onto render devices.

The painter walks a fragment tree depth-first. Fragments are positioned in
logical coordinates relative to their containing block; the painter maps
them to physical coordinates, honoring writing mode and direction, and
emits draw calls. Box fragments paint their background, then their
borders, then their children. Line fragments paint nothing themselves.
For text fragments, the baseline is placed at the top of the content rect
plus the ascent of the font.

Every painted fragment reports its bounding box to the device.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package paint

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxflow.paint'.
func tracer() tracing.Trace {
	return tracing.Select("boxflow.paint")
}
