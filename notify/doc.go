/*
Package notify implements change notification for trees of mutable nodes.

Overview

Nodes announce changes to observers, classified by an Aspect. Every node owns
a Registry of observers. Observers are either external (editors, renderers)
or relays: a parent node registers a relay with each of its children and
re-announces whatever it receives from them, so an observer of any node
sees the activity of the whole sub-tree below it.

A Dispatcher delivers notifications. Mutations which consist of several
steps are wrapped into a batch:

	batch := dispatcher.Begin()
	defer batch.End()

Relays are delivered synchronously, even within a batch. Deliveries to
external observers are held back until the outermost batch ends, then
released in the order they were emitted. Equal notifications to the same
observer are delivered only once per batch.

Dispatchers and registries are not safe for concurrent use.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package notify

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'inkml.notify'.
func tracer() tracing.Trace {
	return tracing.Select("inkml.notify")
}
