/*
Package trace implements the canonical traces of an InkML document and the
store of definitions through which they are referenced.

Overview

A trace is an immutable sequence of samples. Every sample holds one
canonical number per channel of the trace's format; formats are shared
between traces, never copied. Trace groups bundle traces (and other
groups) under a common identifier. Trace views are registered in the same
namespace, as InkML lets a 'traceDataRef' point to any of the three; the
store only records that an identifier denotes a view.

The store is the single owner of trace data. Trace views refer to traces
by identifier and resolve them on demand.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package trace

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'inkml.trace'.
func tracer() tracing.Trace {
	return tracing.Select("inkml.trace")
}
