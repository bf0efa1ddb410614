/*
Package inkml holds the core of a model for InkML documents: raw pen samples
(traces) together with alternative hierarchical groupings of these samples
(trace views).

Status

Early draft: API may change frequently. Please stay patient.

Overview

An InkML document contains a set of canonical traces. Each trace is a
sequence of samples, with one value per channel declared in the trace's
format (X, Y, pressure, time, …). On top of the traces an application
builds one or more trees of trace views, for example strokes grouped into
words and words grouped into lines. Every node of such a tree may carry
annotations.

The sub-packages are layered as follows:

   channel     typed channels and trace formats
   geom        geometry over point sequences
   trace       canonical traces and the definitions store
   brush       brushes and style contexts
   markup      the XML element shape read and written by the core
   tree        a general purpose single-writer tree
   notify      aspects, observers and batched notification
   view        the trace-view tree

Package inkml itself defines the error taxonomy shared by all sub-packages
and the configuration type.

Concurrency

None of the types in this module are safe for concurrent mutation. A
document and all of its trees are owned by a single writer; clients
sharing a document between goroutines have to synchronize access
themselves.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package inkml

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'inkml'.
func tracer() tracing.Trace {
	return tracing.Select("inkml")
}
