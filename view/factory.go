package view

import (
	"fmt"
	"strings"

	"github.com/npillmayer/inkml"
	"github.com/npillmayer/inkml/markup"
	"github.com/npillmayer/inkml/trace"
	"github.com/npillmayer/inkml/tree"
)

// CreateView builds a view (and its sub-tree) from a <traceView> element.
//
// If the element references trace data (attribute traceDataRef), the
// reference is resolved with the document's store: a trace results in a
// leaf, a trace group in a container holding a view for each member of the
// group. References to other trace views are not supported. Elements
// without a reference result in a container holding the views of the
// nested <traceView> elements.
//
// If parent is not nil, the new view is appended to parent's children.
// Identifiers of the new views are registered with the document's store
// only if the complete sub-tree could be built.
func CreateView(doc *Document, parent *View, el markup.Element) (*View, error) {
	v, err := build(doc, el)
	if err != nil {
		return nil, err
	}
	ids, err := v.register()
	if err != nil {
		return nil, err
	}
	if parent != nil {
		if err = parent.Add(v); err != nil {
			unregister(doc, ids)
			return nil, err
		}
	}
	return v, nil
}

func build(doc *Document, el markup.Element) (*View, error) {
	if el.Tag() != "traceView" {
		return nil, inkml.Compliance(el.Tag(), "expected <traceView>")
	}
	var v *View
	if ref, ok := el.Attr("traceDataRef"); ok {
		t, err := doc.Store.Get(ref)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", inkml.Compliance("traceView", "traceDataRef %q", ref), err)
		}
		switch {
		case t.IsView():
			tracer().Errorf("traceView references trace view %q", t.ID)
			return nil, &inkml.UnsupportedReferenceError{Ref: ref}
		case t.IsLeaf():
			tracer().Debugf("factory: leaf for %s", t)
			v = newView(doc, Leaf)
			v.traceRef = t.ID
		default:
			tracer().Debugf("factory: container for %s", t)
			if v, err = seed(doc, t); err != nil {
				return nil, err
			}
		}
	} else {
		v = newView(doc, Container)
	}
	if err := v.readMarkup(el); err != nil {
		return nil, err
	}
	return v, nil
}

// seed creates a container mirroring the structure of a trace group.
func seed(doc *Document, group *trace.Trace) (*View, error) {
	v := newView(doc, Container)
	v.traceRef = group.ID
	for _, m := range group.Members() {
		var ch *View
		var err error
		if m.IsLeaf() {
			ch = newView(doc, Leaf)
			ch.traceRef = m.ID
		} else if ch, err = seed(doc, m); err != nil {
			return nil, err
		}
		if err = v.Add(ch); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// readMarkup reads id, context, annotations and nested views of el.
// Identifiers are not registered here, see register.
func (v *View) readMarkup(el markup.Element) error {
	v.ID = markup.ID(el)
	if ctx, ok := el.Attr("contextRef"); ok {
		if err := v.SetContext(ctx); err != nil {
			return fmt.Errorf("%w: %w", inkml.Compliance("traceView", "contextRef %q", ctx), err)
		}
	}
	for _, ch := range el.Children() {
		switch ch.Tag() {
		case "annotation":
			key, ok := ch.Attr("type")
			if !ok {
				return inkml.Compliance("annotation", "annotation without type")
			}
			if v.annotations == nil {
				v.annotations = make(map[string]string)
			}
			v.annotations[key] = strings.TrimSpace(ch.Text())
		case "traceView":
			if v.kind == Leaf {
				return inkml.Compliance("traceView", "view of a trace cannot contain other views")
			}
			sub, err := build(v.doc, ch)
			if err != nil {
				return err
			}
			if err = v.Add(sub); err != nil {
				return err
			}
		default:
			tracer().Debugf("factory: ignoring <%s> in <traceView>", ch.Tag())
		}
	}
	return nil
}

// register enters the identifiers of v and its descendants into the store.
// On failure, identifiers registered so far are removed again.
func (v *View) register() ([]string, error) {
	var ids []string
	mark := func(n, parent *tree.Node[*View], position int) (*tree.Node[*View], error) {
		id := n.Payload.ID
		if id == "" {
			return nil, nil
		}
		if err := v.doc.Store.MarkView(id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
		return n, nil
	}
	if _, err := tree.NewWalker(&v.node).TopDown(mark).Promise()(); err != nil {
		tracer().Errorf("factory: %v", err)
		unregister(v.doc, ids)
		return nil, err
	}
	return ids, nil
}

func unregister(doc *Document, ids []string) {
	for _, id := range ids {
		doc.Store.Delete(id)
	}
}
