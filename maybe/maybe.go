/*
Package maybe implements an option type.

Geometric queries on ink frequently have no answer: an empty trace group has no
bounding box, a trace without a time channel has no timespan, a view without a
style context has no brush. Functions of this module return a Maybe in these
cases instead of a nil pointer or a sentinel value.

	switch m := view.TimeSpan().Match(); m {
	case m.Just(&span):
		…
	case m.Nothing():
		…
	}

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package maybe

// Maybe is either Just(x) or Nothing.
type Maybe[T any] interface {
	Match() Matcher[T]
	WithDefault(T) T
	Map(func(T) T) Maybe[T]
	Get() (T, bool)
	IsNothing() bool
}

type maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps x.
func Just[T any](x T) Maybe[T] {
	return maybe[T]{value: x, tag: true}
}

// Nothing is the empty option.
func Nothing[T any]() Maybe[T] {
	return maybe[T]{tag: false}
}

// FromPair converts the common Go idiom (value, ok) into a Maybe.
func FromPair[T any](x T, ok bool) Maybe[T] {
	if ok {
		return Just(x)
	}
	return Nothing[T]()
}

func (m maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: m}
}

func (m maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

func (m maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

func (m maybe[T]) Get() (T, bool) {
	return m.value, m.tag
}

func (m maybe[T]) IsNothing() bool {
	return !m.tag
}

// AndThen chains a computation which may itself produce Nothing.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		return f(v)
	case m.Nothing():
	}
	return Nothing[S]()
}

// Map2 combines two options. If either of them is Nothing, the result is
// Nothing.
func Map2[T any](f func(T, T) T, x, y Maybe[T]) Maybe[T] {
	a, ok := x.Get()
	if !ok {
		return x
	}
	b, ok := y.Get()
	if !ok {
		return y
	}
	return Just(f(a, b))
}

// Merge combines two options, keeping a present value if the other one is
// missing. This is the usual aggregation for bounding boxes: the union of
// "no box" and a box is the box.
func Merge[T any](f func(T, T) T, x, y Maybe[T]) Maybe[T] {
	if x.IsNothing() {
		return y
	}
	if y.IsNothing() {
		return x
	}
	return Map2(f, x, y)
}

// --- Matching --------------------------------------------------------------

type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	m maybe[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}
