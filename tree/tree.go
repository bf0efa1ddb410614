package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
)

// ErrInvalidFilter is thrown if a filter step is defunct.
var ErrInvalidFilter = errors.New("filter stage is invalid")

// ErrEmptyTree is thrown if a Walker is called with an empty tree. Refer to
// the documentation of NewWalker() for details about this scenario.
var ErrEmptyTree = errors.New("cannot walk empty tree")

// Walker holds information for operating on trees: finding nodes and
// doing work on them. Clients usually create a Walker for a (sub-)tree
// to search for a selection of nodes matching certain criteria, and
// then perform some operation on this selection.
//
// A typical usage of a Walker looks like this ("FindNodesAndDoSomething()" is
// a placeholder for a sequence of function calls, see below):
//
//	w := NewWalker(node)
//	futureResult := w.FindNodesAndDoSomething(...).Promise()
//	nodes, err := futureResult()
//
// You may think of the set of operations to form a small
// Domain Specific Language (DSL), similar in concept to JQuery.
//
// Walkers operate synchronously on the calling goroutine: every step of the
// chain has finished when it returns. The tree must not be modified by other
// goroutines meanwhile.
type Walker[T comparable] struct {
	selection []*Node[T] // current selection of nodes
	err       error      // first error occured
}

// NewWalker creates a Walker for the initial node of a (sub-)tree.
// The first subsequent call to a node filter function will have this
// initial node as input.
//
// If initial is nil, NewWalker will return a nil-Walker, resulting
// in a NOP-chain of operations, resulting in an empty set of nodes
// and an error (ErrEmptyTree).
func NewWalker[T comparable](initial *Node[T]) *Walker[T] {
	if initial == nil {
		return nil
	}
	return &Walker[T]{selection: []*Node[T]{initial}}
}

// Promise returns the resulting selection of nodes and the first error
// which occured during the chain of operations. The name is kept for
// symmetry with asynchronous walkers; the result is available immediately.
func (w *Walker[T]) Promise() func() ([]*Node[T], error) {
	if w == nil {
		return func() ([]*Node[T], error) {
			return nil, ErrEmptyTree
		}
	}
	return func() ([]*Node[T], error) {
		return w.selection, w.err
	}
}

// apply maps every node of the selection to zero or more result nodes.
// Duplicates are removed, keeping the first occurence.
func (w *Walker[T]) apply(step func(*Node[T]) ([]*Node[T], error)) *Walker[T] {
	if w == nil || w.err != nil {
		return w
	}
	seen := make(map[*Node[T]]bool)
	var result []*Node[T]
	for _, n := range w.selection {
		found, err := step(n)
		if err != nil {
			tracer().Debugf("walker: step aborted at %s: %v", n, err)
			w.err = err
			break
		}
		for _, f := range found {
			if !seen[f] {
				seen[f] = true
				result = append(result, f)
			}
		}
	}
	w.selection = result
	return w
}

// ----------------------------------------------------------------------

// Predicate is a function type to match against nodes of a tree.
// Is is used as an argument for various Walker functions to
// collect a selection of nodes.
// test is the node under test, node is the input node.
type Predicate[T comparable] func(test *Node[T], node *Node[T]) (match *Node[T], err error)

// Whatever is a predicate to match anything (see type Predicate).
// It is useful to match the first node in a given direction.
func Whatever[T comparable]() Predicate[T] {
	return func(test *Node[T], node *Node[T]) (*Node[T], error) {
		return test, nil
	}
}

// NodeIsLeaf is a predicate to match leafs of a tree.
func NodeIsLeaf[T comparable]() Predicate[T] {
	return func(test *Node[T], node *Node[T]) (match *Node[T], err error) {
		if test.ChildCount() == 0 {
			return test, nil
		}
		return nil, nil
	}
}

// ----------------------------------------------------------------------

// AncestorWith finds an ancestor matching the given predicate.
// The search does not include the start node.
//
// If w is nil, AncestorWith will return nil.
func (w *Walker[T]) AncestorWith(predicate Predicate[T]) *Walker[T] {
	if predicate == nil {
		return w.fail(ErrInvalidFilter)
	}
	return w.apply(func(n *Node[T]) ([]*Node[T], error) {
		for a := n.parent; a != nil; a = a.parent {
			match, err := predicate(a, n)
			if err != nil {
				return nil, err
			}
			if match != nil {
				return []*Node[T]{match}, nil
			}
		}
		return nil, nil
	})
}

// DescendentsWith finds descendents matching a predicate, in depth-first
// document order. The search does not include the start node.
//
// If w is nil, DescendentsWith will return nil.
func (w *Walker[T]) DescendentsWith(predicate Predicate[T]) *Walker[T] {
	if predicate == nil {
		return w.fail(ErrInvalidFilter)
	}
	return w.apply(func(n *Node[T]) ([]*Node[T], error) {
		var found []*Node[T]
		var descend func(*Node[T]) error
		descend = func(node *Node[T]) error {
			for _, ch := range node.children {
				match, err := predicate(ch, n)
				if err != nil {
					return err
				}
				if match != nil {
					found = append(found, match)
				}
				if err = descend(ch); err != nil {
					return err
				}
			}
			return nil
		}
		err := descend(n)
		return found, err
	})
}

// AllDescendents traverses all descendents.
// The traversal does not include the start node.
// This is just a wrapper around `w.DescendentsWith(Whatever)`.
//
// If w is nil, AllDescendents will return nil.
func (w *Walker[T]) AllDescendents() *Walker[T] {
	return w.DescendentsWith(Whatever[T]())
}

// Filter calls a client-provided function on each node of the selection.
// The user function should return the input node if it is accepted and
// nil otherwise.
//
// If w is nil, Filter will return nil.
func (w *Walker[T]) Filter(f Predicate[T]) *Walker[T] {
	if f == nil {
		return w.fail(ErrInvalidFilter)
	}
	return w.apply(func(n *Node[T]) ([]*Node[T], error) {
		match, err := f(n, n)
		if err != nil || match == nil {
			return nil, err
		}
		return []*Node[T]{match}, nil
	})
}

func (w *Walker[T]) fail(err error) *Walker[T] {
	if w != nil && w.err == nil {
		w.err = err
	}
	return w
}

// Action is a function type to operate on tree nodes.
// Resulting nodes will be part of the next selection, if
// no error occured.
type Action[T comparable] func(n *Node[T], parent *Node[T], position int) (*Node[T], error)

// TopDown traverses a tree starting at (and including) the nodes of the
// current selection. The traversal guarantees that parents are always
// processed before their children.
//
// If the action function returns an error for a node,
// descending the branch below this node is aborted. The first such error
// is reported by the Promise; other branches are processed regardless.
//
// If w is nil, TopDown will return nil.
func (w *Walker[T]) TopDown(action Action[T]) *Walker[T] {
	if action == nil {
		return w.fail(ErrInvalidFilter)
	}
	var firstErr error
	w = w.apply(func(n *Node[T]) ([]*Node[T], error) {
		var results []*Node[T]
		var visit func(node, parent *Node[T], position int)
		visit = func(node, parent *Node[T], position int) {
			result, err := action(node, parent, position)
			tracer().Debugf("Action for node %s returned: %v, err=%v", node, result, err)
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return // do not descend further
			}
			if result != nil {
				results = append(results, result)
			}
			for i, ch := range node.Children() {
				visit(ch, node, i)
			}
		}
		visit(n, n.parent, n.position())
		return results, nil
	})
	return w.fail(firstErr)
}

// BottomUp traverses a tree starting at (and including) the nodes of the
// current selection. The traversal guarantees that parents are not
// processed before all of their children.
//
// If the action function returns an error for a node,
// the parent is processed regardless. The first error is reported
// by the Promise.
//
// If w is nil, BottomUp will return nil.
func (w *Walker[T]) BottomUp(action Action[T]) *Walker[T] {
	if action == nil {
		return w.fail(ErrInvalidFilter)
	}
	var firstErr error
	w = w.apply(func(n *Node[T]) ([]*Node[T], error) {
		var results []*Node[T]
		var visit func(node, parent *Node[T], position int)
		visit = func(node, parent *Node[T], position int) {
			for i, ch := range node.Children() {
				visit(ch, node, i)
			}
			result, err := action(node, parent, position)
			if err != nil && firstErr == nil {
				firstErr = err
			}
			if err == nil && result != nil {
				results = append(results, result)
			}
		}
		visit(n, n.parent, n.position())
		return results, nil
	})
	return w.fail(firstErr)
}

func (node *Node[T]) position() int {
	if node.parent == nil {
		return 0
	}
	return node.parent.IndexOfChild(node)
}

// CalcRank is an action for bottom-up processing. It Calculates the 'rank'-member
// for each node, meaning: the number of child-nodes + 1.
// The root node will hold the number of nodes in the entire tree.
// Leaf nodes will have a rank of 1.
func CalcRank[T comparable](n *Node[T], parent *Node[T], position int) (*Node[T], error) {
	//
	r := uint32(1)
	for i := 0; i < n.ChildCount(); i++ {
		ch, ok := n.Child(i)
		if ok {
			r += ch.Rank
		}
	}
	n.Rank = r
	return n, nil
}
