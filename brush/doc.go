/*
Package brush implements brushes and style contexts of InkML documents.

Overview

A brush is a set of drawing properties (color, width, transparency, tip
shape). Brushes may reference a parent brush; properties not set on a brush
cascade to its parent. A context bundles a brush under an identifier; trace
views reference contexts by id.

A Registry holds the brushes and contexts of a document, together with the
ambient (current) context.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package brush

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'inkml.brush'.
func tracer() tracing.Trace {
	return tracing.Select("inkml.brush")
}
