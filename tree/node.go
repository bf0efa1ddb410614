package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
)

/*
We manage a tree of mutable nodes. Each nodes carries a payload of type parameter T.
Nodes maintain a slice of children and a back-reference to their parent.

Trees are single-writer: nodes do not lock. Clients sharing a tree between
goroutines have to serialize access themselves.
*/

// Node is the base type our tree is built of.
type Node[T comparable] struct {
	parent   *Node[T]   // parent node of this node
	children []*Node[T] // ordered children, never containing nil
	Payload  T          // nodes may carry a payload of arbitrary type
	Rank     uint32     // size of the sub-tree, see CalcRank
}

// NewNode creates a new tree node with a given payload.
func NewNode[T comparable](payload T) *Node[T] {
	return &Node[T]{Payload: payload}
}

func (node *Node[T]) String() string {
	return fmt.Sprintf("(Node #ch=%d %v)", node.ChildCount(), node.Payload)
}

// AddChild appends a child node. If ch is currently attached to another
// parent, it is isolated first.
// It returns the parent node to allow for chaining.
//
// AddChild does not check for cycles, see IsAncestorOf.
func (node *Node[T]) AddChild(ch *Node[T]) *Node[T] {
	if ch != nil {
		ch.Isolate()
		node.children = append(node.children, ch)
		ch.parent = node
	}
	return node
}

// InsertChildAt inserts a child node at position i, shifting children at
// later positions. Positions beyond the end append ch.
// It returns the parent node to allow for chaining.
func (node *Node[T]) InsertChildAt(i int, ch *Node[T]) *Node[T] {
	if ch == nil {
		return node
	}
	ch.Isolate()
	if i < 0 {
		i = 0
	}
	if i >= len(node.children) {
		node.children = append(node.children, ch)
	} else {
		node.children = append(node.children, nil)   // make room for one child
		copy(node.children[i+1:], node.children[i:]) // shift i+1..n
		node.children[i] = ch
	}
	ch.parent = node
	return node
}

// Parent returns the parent node or nil (for the root of the tree).
func (node *Node[T]) Parent() *Node[T] {
	return node.parent
}

// Isolate removes a node from its parent. The parent's children are
// compacted, i.e. later siblings move up by one position.
// Isolate returns the isolated node.
func (node *Node[T]) Isolate() *Node[T] {
	if node == nil || node.parent == nil {
		return node
	}
	p := node.parent
	if i := p.IndexOfChild(node); i >= 0 {
		copy(p.children[i:], p.children[i+1:])
		p.children[len(p.children)-1] = nil
		p.children = p.children[:len(p.children)-1]
	}
	node.parent = nil
	return node
}

// ChildCount returns the number of children-nodes for a node.
func (node *Node[T]) ChildCount() int {
	if node == nil {
		return 0
	}
	return len(node.children)
}

// Child gets the children-node at position n.
func (node *Node[T]) Child(n int) (*Node[T], bool) {
	if n < 0 || node.ChildCount() <= n {
		return nil, false
	}
	return node.children[n], true
}

// Children returns a slice with all children of a node. The slice is
// a copy and may be modified by the caller.
func (node *Node[T]) Children() []*Node[T] {
	children := make([]*Node[T], len(node.children))
	copy(children, node.children)
	return children
}

// IndexOfChild returns the index of a child within the list of children
// of its parent, or -1.
func (node *Node[T]) IndexOfChild(ch *Node[T]) int {
	for i, child := range node.children {
		if ch == child {
			return i
		}
	}
	return -1
}

// IsAncestorOf is a predicate wether node is n or one of n's ancestors.
func (node *Node[T]) IsAncestorOf(n *Node[T]) bool {
	for ; n != nil; n = n.parent {
		if n == node {
			return true
		}
	}
	return false
}

// Root walks up the chain of parents and returns the topmost node.
func (node *Node[T]) Root() *Node[T] {
	r := node
	for r.parent != nil {
		r = r.parent
	}
	return r
}
