package view

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sort"

	"github.com/npillmayer/inkml"
	"github.com/npillmayer/inkml/brush"
	"github.com/npillmayer/inkml/geom"
	"github.com/npillmayer/inkml/maybe"
	"github.com/npillmayer/inkml/notify"
	"github.com/npillmayer/inkml/trace"
	"github.com/npillmayer/inkml/tree"
)

// Kind is the kind of a view.
type Kind int8

// Kinds of views.
const (
	Container Kind = iota // view with child views
	Leaf                  // view referencing a single trace
)

func (k Kind) String() string {
	if k == Leaf {
		return "leaf"
	}
	return "container"
}

// View is a node of a trace-view tree.
type View struct {
	ID          string // optional id of the view
	node        tree.Node[*View]
	doc         *Document
	kind        Kind
	serial      uint64
	traceRef    string // leaf: the trace; container: the group it was seeded from
	contextRef  string
	annotations map[string]string
	observers   notify.Registry[*TreeEvent]
	relays      []string // relays of the parent, registered with observers
}

func newView(doc *Document, kind Kind) *View {
	v := &View{
		doc:    doc,
		kind:   kind,
		serial: doc.nextSerial(),
	}
	v.node.Payload = v // Payload will always reference the view itself
	return v
}

// NewContainer creates a container view. If parent is not nil, the new view
// is appended to parent's children.
func NewContainer(doc *Document, parent *View) (*View, error) {
	v := newView(doc, Container)
	if parent != nil {
		if err := parent.Add(v); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// NewLeaf creates a leaf view for a trace of the document. If parent is
// not nil, the new view is appended to parent's children.
func NewLeaf(doc *Document, parent *View, traceRef string) (*View, error) {
	t, err := doc.Store.Get(traceRef)
	if err != nil {
		return nil, err
	}
	if !t.IsLeaf() {
		return nil, inkml.Compliance("traceView", "%s is not a trace", t)
	}
	v := newView(doc, Leaf)
	v.traceRef = t.ID
	if parent != nil {
		if err := parent.Add(v); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// Kind returns the kind of the view.
func (v *View) Kind() Kind {
	return v.kind
}

// IsLeaf is true for views referencing a single trace.
func (v *View) IsLeaf() bool {
	return v.kind == Leaf
}

// Serial returns the creation number of the view, unique within its document.
func (v *View) Serial() uint64 {
	return v.serial
}

// Document returns the document of the view.
func (v *View) Document() *Document {
	return v.doc
}

// String returns the transcription of the view, if it is annotated with one.
// Otherwise it returns "root" for root views and the empty string for others.
func (v *View) String() string {
	if t, ok := v.annotations["transcription"]; ok {
		return t
	}
	if v.IsRoot() {
		return "root"
	}
	return ""
}

// --- Tree structure --------------------------------------------------------

// Parent returns the parent view, or nil for root views.
func (v *View) Parent() *View {
	if p := v.node.Parent(); p != nil {
		return p.Payload
	}
	return nil
}

// IsRoot is true for views without a parent.
func (v *View) IsRoot() bool {
	return v.node.Parent() == nil
}

// Root returns the root of the view's tree.
func (v *View) Root() *View {
	return v.node.Root().Payload
}

// Children returns the child views of a container.
func (v *View) Children() []*View {
	children := make([]*View, v.node.ChildCount())
	for i, ch := range v.node.Children() {
		children[i] = ch.Payload
	}
	return children
}

// ChildCount returns the number of children.
func (v *View) ChildCount() int {
	return v.node.ChildCount()
}

// Add appends child to the children of v. See Insert.
func (v *View) Add(child *View) error {
	return v.Insert(-1, child)
}

// Insert inserts child at position i of the children of v; a negative i
// appends child. If child is currently part of a tree, it is removed from
// its former parent first. Leaves cannot hold children, and a view may not
// become a child of itself or of one of its descendants.
func (v *View) Insert(i int, child *View) error {
	switch {
	case v.kind == Leaf:
		return &inkml.TreeManipulationError{Op: "insert", Msg: "leaf views cannot have children"}
	case child.doc != v.doc:
		return &inkml.TreeManipulationError{Op: "insert", Msg: "views belong to different documents"}
	case child.node.IsAncestorOf(&v.node):
		return &inkml.TreeManipulationError{Op: "insert", Msg: fmt.Sprintf("view #%d would become its own descendant", child.serial)}
	}
	b := v.doc.Begin()
	defer b.End()
	if !child.IsRoot() {
		if j := v.node.IndexOfChild(&child.node); j >= 0 && j < i {
			i-- // siblings behind child move up
		}
		child.Remove()
	}
	child.attachTo(v, i)
	v.notify(notify.Change, &TreeEvent{Aspect: notify.ChildAdd, Target: v, Children: []*View{child}})
	tracer().Debugf("view #%d: added child #%d", v.serial, child.serial)
	return nil
}

func (v *View) attachTo(parent *View, i int) {
	if i < 0 {
		parent.node.AddChild(&v.node)
	} else {
		parent.node.InsertChildAt(i, &v.node)
	}
	relay := parent.relay()
	v.relays = []string{
		v.observers.Relay(notify.Change, relay),
		v.observers.Relay(notify.DataChange, relay),
	}
}

func (v *View) detach() {
	v.node.Isolate()
	for _, id := range v.relays {
		v.observers.Unregister(id)
	}
	v.relays = nil
}

// relay returns an observer which re-announces notifications at v.
func (v *View) relay() Observer {
	return ObserverFunc(func(n Notification) {
		v.doc.dispatcher.Notify(&v.observers, n)
	})
}

// Remove detaches v from its parent. Calling Remove on a root view has no
// effect. The parent emits a ChildPreRemove and a ChildRemove notification,
// both carrying the same event. ChildPreRemove reaches all observers before
// v is detached, even within a batch.
func (v *View) Remove() {
	parent := v.Parent()
	if parent == nil {
		return
	}
	b := v.doc.Begin()
	defer b.End()
	ev := &TreeEvent{Aspect: notify.ChildRemove, Target: parent, Children: []*View{v}}
	v.doc.dispatcher.Announce(&parent.observers, Notification{Aspect: notify.Change, Detail: notify.ChildPreRemove, Event: ev})
	v.detach()
	v.doc.dispatcher.Notify(&parent.observers, Notification{Aspect: notify.Change, Detail: notify.ChildRemove, Event: ev})
	tracer().Debugf("view #%d: removed from #%d", v.serial, parent.serial)
}

// RemoveCompletely removes v like Remove. Additionally, the traces and
// trace groups referenced by v and its descendants are deleted from the
// document. Calling RemoveCompletely on a root view has no effect.
func (v *View) RemoveCompletely() {
	if v.IsRoot() {
		return
	}
	b := v.doc.Begin()
	defer b.End()
	var refs []string
	collect := func(n, parent *tree.Node[*View], position int) (*tree.Node[*View], error) {
		if n.Payload.traceRef != "" {
			refs = append(refs, n.Payload.traceRef)
		}
		if n.Payload.ID != "" {
			refs = append(refs, n.Payload.ID)
		}
		return nil, nil
	}
	tree.NewWalker(&v.node).BottomUp(collect).Promise()()
	v.Remove()
	for _, ref := range refs {
		v.doc.Store.Delete(ref)
	}
	tracer().Debugf("view #%d: deleted %d definitions", v.serial, len(refs))
}

// Find returns the descendants of v for which pred is true, in document
// order. v itself is not included.
func (v *View) Find(pred func(*View) bool) []*View {
	match := func(test, node *tree.Node[*View]) (*tree.Node[*View], error) {
		if pred(test.Payload) {
			return test, nil
		}
		return nil, nil
	}
	nodes, _ := tree.NewWalker(&v.node).AllDescendents().Filter(match).Promise()()
	views := make([]*View, len(nodes))
	for i, n := range nodes {
		views[i] = n.Payload
	}
	return views
}

// Walk calls f for v and all of its descendants, parents before children.
// If f returns an error for a view, the views below it are skipped. Walk
// returns the first error.
func (v *View) Walk(f func(w, parent *View, position int) error) error {
	action := func(n, parent *tree.Node[*View], position int) (*tree.Node[*View], error) {
		var p *View
		if parent != nil {
			p = parent.Payload
		}
		return n, f(n.Payload, p, position)
	}
	_, err := tree.NewWalker(&v.node).TopDown(action).Promise()()
	return err
}

// Size returns the number of views in the sub-tree of v, including v.
func (v *View) Size() int {
	tree.NewWalker(&v.node).BottomUp(tree.CalcRank[*View]).Promise()()
	return int(v.node.Rank)
}

// --- Notification ----------------------------------------------------------

func (v *View) notify(aspect notify.Aspect, ev *TreeEvent) {
	v.doc.dispatcher.Notify(&v.observers, Notification{Aspect: aspect, Detail: ev.Aspect, Event: ev})
}

// Observe registers an observer for an aspect of v and its sub-tree. It
// returns an id for Unobserve.
func (v *View) Observe(aspect notify.Aspect, obs Observer) string {
	return v.observers.Register(aspect, obs)
}

// Unobserve unregisters an observer.
func (v *View) Unobserve(id string) bool {
	return v.observers.Unregister(id)
}

// --- Annotations -----------------------------------------------------------

// Annotate sets an annotation. Observers are notified only if the
// annotation actually changes.
func (v *View) Annotate(key, value string) {
	if old, ok := v.annotations[key]; ok && old == value {
		return
	}
	if v.annotations == nil {
		v.annotations = make(map[string]string)
	}
	v.annotations[key] = value
	v.notify(notify.Change, &TreeEvent{Aspect: notify.NodeChange, Target: v})
}

// RemoveAnnotation removes an annotation, if present.
func (v *View) RemoveAnnotation(key string) {
	if _, ok := v.annotations[key]; !ok {
		return
	}
	delete(v.annotations, key)
	v.notify(notify.Change, &TreeEvent{Aspect: notify.NodeChange, Target: v})
}

// Annotation returns the value of an annotation.
func (v *View) Annotation(key string) (string, bool) {
	a, ok := v.annotations[key]
	return a, ok
}

// AnnotationKeys returns the keys of all annotations, sorted.
func (v *View) AnnotationKeys() []string {
	keys := make([]string, 0, len(v.annotations))
	for k := range v.annotations {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// --- Traces ----------------------------------------------------------------

// Trace returns the trace of a leaf view. It is nil for containers and for
// leaves whose trace has been deleted from the document.
func (v *View) Trace() *trace.Trace {
	if v.kind != Leaf {
		return nil
	}
	t, err := v.doc.Store.Get(v.traceRef)
	if err != nil {
		return nil
	}
	return t
}

// SetTrace replaces the trace of a leaf view.
func (v *View) SetTrace(traceRef string) error {
	if v.kind != Leaf {
		return &inkml.TreeManipulationError{Op: "set trace", Msg: "container views have no trace"}
	}
	t, err := v.doc.Store.Get(traceRef)
	if err != nil {
		return err
	}
	if !t.IsLeaf() {
		return inkml.Compliance("traceView", "%s is not a trace", t)
	}
	if t.ID == v.traceRef {
		return nil
	}
	v.traceRef = t.ID
	v.notify(notify.DataChange, &TreeEvent{Aspect: notify.DataChange, Target: v})
	return nil
}

// Leaves returns the leaf views of the sub-tree of v, in document order.
// A leaf view is its own only leaf.
func (v *View) Leaves() []*View {
	if v.kind == Leaf {
		return []*View{v}
	}
	nodes, _ := tree.NewWalker(&v.node).DescendentsWith(tree.NodeIsLeaf[*View]()).Promise()()
	var leaves []*View
	for _, n := range nodes {
		if n.Payload.kind == Leaf { // skip empty containers
			leaves = append(leaves, n.Payload)
		}
	}
	return leaves
}

// Points returns the points of all traces represented by v, in document order.
func (v *View) Points() []geom.Point {
	var pts []geom.Point
	for _, l := range v.Leaves() {
		if t := l.Trace(); t != nil {
			pts = append(pts, t.Points()...)
		}
	}
	return pts
}

// PointCount returns the number of samples represented by v.
func (v *View) PointCount() int {
	n := 0
	for _, l := range v.Leaves() {
		if t := l.Trace(); t != nil {
			n += t.PointCount()
		}
	}
	return n
}

// IsEmpty is true if v represents no samples.
func (v *View) IsEmpty() bool {
	return v.PointCount() == 0
}

// --- Geometry --------------------------------------------------------------

// DistanceToPoint returns the distance between the traces of v and p.
func (v *View) DistanceToPoint(p geom.Point) float64 {
	return geom.DistanceToPoint(v.Points(), p)
}

// DistanceToView returns the distance between the traces of v and of o.
func (v *View) DistanceToView(o *View) float64 {
	if v == o {
		return 0
	}
	return geom.DistanceTraceToTrace(v.Points(), o.Points())
}

// CenterOfGravity returns the center of all points of v.
func (v *View) CenterOfGravity() maybe.Maybe[geom.Point] {
	return geom.CenterOfGravity(v.Points())
}

// Bounds returns the bounding box of v, or Nothing if v is empty.
func (v *View) Bounds() maybe.Maybe[geom.Rect] {
	if v.kind == Leaf {
		return geom.BoundsOf(v.Points())
	}
	bounds := maybe.Nothing[geom.Rect]()
	for _, ch := range v.Children() {
		bounds = geom.UnionBounds(bounds, ch.Bounds())
	}
	return bounds
}

// TimeSpan returns the time interval covered by v, or Nothing if v holds no
// timed samples.
func (v *View) TimeSpan() maybe.Maybe[geom.Timespan] {
	if v.kind == Leaf {
		return geom.TimespanOf(v.Points())
	}
	span := maybe.Nothing[geom.Timespan]()
	for _, ch := range v.Children() {
		span = geom.UnionTimespans(span, ch.TimeSpan())
	}
	return span
}

// --- Style -----------------------------------------------------------------

// SetContext sets the local style context of v. An empty reference removes it.
func (v *View) SetContext(contextRef string) error {
	if contextRef == "" {
		v.contextRef = ""
		return nil
	}
	ctx, err := v.doc.Brushes.Context(contextRef)
	if err != nil {
		return err
	}
	v.contextRef = ctx.ID
	return nil
}

// HasLocalContext is true if v sets a style context of its own.
func (v *View) HasLocalContext() bool {
	return v.localContext() != nil
}

func (v *View) localContext() *brush.Context {
	if v.contextRef == "" {
		return nil
	}
	ctx, err := v.doc.Brushes.Context(v.contextRef)
	if err != nil {
		return nil
	}
	return ctx
}

// Context returns the style context in effect for v: its local context, the
// context of the nearest ancestor setting one, or the document's current
// context.
func (v *View) Context() *brush.Context {
	if ctx := v.localContext(); ctx != nil {
		return ctx
	}
	if a := v.ancestorWith(func(w *View) bool { return w.localContext() != nil }); a != nil {
		return a.localContext()
	}
	return v.doc.Brushes.Current
}

// Brush returns the brush of the local context of v, if it has one.
// Otherwise the lookup continues with the parent. Root views without a local
// brush have no brush.
func (v *View) Brush() maybe.Maybe[*brush.Brush] {
	hasBrush := func(w *View) bool { return w.localContext().HasBrush() }
	if hasBrush(v) {
		return maybe.Just(v.localContext().Brush())
	}
	if a := v.ancestorWith(hasBrush); a != nil {
		return maybe.Just(a.localContext().Brush())
	}
	return maybe.Nothing[*brush.Brush]()
}

// ancestorWith returns the nearest ancestor of v matching pred, or nil.
func (v *View) ancestorWith(pred func(*View) bool) *View {
	match := func(test, node *tree.Node[*View]) (*tree.Node[*View], error) {
		if pred(test.Payload) {
			return test, nil
		}
		return nil, nil
	}
	nodes, _ := tree.NewWalker(&v.node).AncestorWith(match).Promise()()
	if len(nodes) == 0 {
		return nil
	}
	return nodes[0].Payload
}
