/*
Package channel implements the typed channels of InkML trace formats.

Overview

Every sample of a trace carries one value per channel declared in the
trace's format. A channel has a name (X, Y, T, F, …), a kind which governs
how values are read from and written to markup, a default value, and
optional lower and upper bounds.

The set of kinds is closed:

   Integer    whole numbers
   Decimal    fractional numbers, written in fixed notation
   Double     fractional numbers, written in shortest notation
   Boolean    T or F

Values are held as a sealed sum type (Int, Float, Bool). For geometric
computations every value is converted to a canonical float64. Converting
back from the canonical number is the exact inverse for all values which
Parse produces; for Integer channels the conversion truncates.

Bounds and defaults

In markup, an empty 'min' or 'max' attribute means "no constraint", not
"constraint of zero". A channel therefore keeps min and max as
maybe.Maybe values. An empty 'default' resets the default to the zero value
of the channel's kind; on export, a default equal to this zero value is
omitted.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package channel

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'inkml.channel'.
func tracer() tracing.Trace {
	return tracing.Select("inkml.channel")
}
