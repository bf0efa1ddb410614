/*
Package view implements trees of trace views.

Overview

A trace view groups the canonical traces of a document hierarchically, for
example strokes into words and words into lines. A document may hold any
number of such trees side by side. Every node of a tree is a View of one of
two kinds:

   Leaf        references exactly one canonical trace
   Container   holds an ordered list of child views

Views carry annotations (key/value pairs) and may override the style
context of their sub-tree. Geometric queries (bounds, timespan, distances)
are computed from the current trace data whenever they are called.

Change notification

Every mutation of a view tree is announced to observers, classified by an
aspect of package notify. A parent relays the Change and DataChange
notifications of its children, so observing a root view catches all activity
in the tree. Mutations consisting of several steps run within a batch of
the document (see Document.Begin); observers are notified when the outermost
batch ends.

Views are not safe for concurrent use. A document and its trees are owned by
a single writer.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package view

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'inkml.view'.
func tracer() tracing.Trace {
	return tracing.Select("inkml.view")
}
