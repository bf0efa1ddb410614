/*
Package tree implements a general purpose tree of nodes with a parent
back-reference and an ordered list of children.

Clients usually compose their own node type on top of tree.Node, setting
the payload to the composing node itself:

	type MyNode struct {
	    tree.Node[*MyNode]
	    ...
	}

	n := &MyNode{}
	n.Payload = n

Trees are not safe for concurrent modification. Walkers offer a small DSL to
select nodes and to perform actions on them, see type Walker.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'inkml.tree'.
func tracer() tracing.Trace {
	return tracing.Select("inkml.tree")
}
