/*
Package markup defines the shape of InkML elements as consumed and produced by
the trace-view core.

Status

Early draft: API may change frequently. Please stay patient.

Overview

Loading and storing whole InkML files is not a concern of this module. The
core only needs to look at single elements: their tag, attributes, nested
elements and text content. Element is an interface for exactly this; the
default implementation wraps elements of github.com/beevik/etree, which is
also used as the output model when exporting.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package markup

import (
	"errors"
	"strings"

	"github.com/beevik/etree"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'inkml.markup'.
func tracer() tracing.Trace {
	return tracing.Select("inkml.markup")
}

// Element represents an XML element of an InkML document.
type Element interface {
	Tag() string                    // local name of the element
	Attr(key string) (string, bool) // attribute value and wether it is present
	Attrs() []Attr                  // all attributes in document order
	Children() []Element            // nested elements, without text nodes
	Text() string                   // character data directly inside the element
}

// Attr is a key/value attribute of an element.
type Attr struct {
	Key   string
	Value string
}

// ErrEmptyDocument is flagged if a markup string contains no root element.
var ErrEmptyDocument = errors.New("markup contains no root element")

// Wrap makes an etree element available as an Element.
// Wrap(nil) returns nil.
func Wrap(e *etree.Element) Element {
	if e == nil {
		return nil
	}
	return node{e}
}

// Parse reads a markup fragment and returns its root element.
func Parse(s string) (Element, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(s); err != nil {
		tracer().Errorf("markup: %v", err)
		return nil, err
	}
	if doc.Root() == nil {
		return nil, ErrEmptyDocument
	}
	return Wrap(doc.Root()), nil
}

// MustParse is like Parse, but panics on error. It is intended for tests and
// for markup literals.
func MustParse(s string) Element {
	el, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return el
}

// StripRef removes the fragment marker from an URI-style reference:
//
//	StripRef("#t1") => "t1"
func StripRef(ref string) string {
	return strings.ReplaceAll(strings.TrimSpace(ref), "#", "")
}

// ID returns the identifier of an element. InkML elements are identified
// by attribute xml:id; plain id attributes are accepted as well.
func ID(el Element) string {
	if id, ok := el.Attr("xml:id"); ok {
		return id
	}
	id, _ := el.Attr("id")
	return id
}

// Ref creates a local reference for an id, i.e. prefixes it with '#'.
func Ref(id string) string {
	return "#" + id
}

// Create adds a new child element to parent. If parent is nil, a free-standing
// element is created.
func Create(parent *etree.Element, tag string) *etree.Element {
	if parent == nil {
		return etree.NewElement(tag)
	}
	return parent.CreateElement(tag)
}

// ToString serializes an element, indented by two spaces.
func ToString(e *etree.Element) string {
	doc := etree.NewDocument()
	doc.SetRoot(e.Copy())
	doc.Indent(2)
	s, err := doc.WriteToString()
	if err != nil {
		tracer().Errorf("markup: %v", err)
		return ""
	}
	return s
}

// --- etree adapter ---------------------------------------------------------

type node struct {
	e *etree.Element
}

func (n node) Tag() string {
	return n.e.Tag
}

func (n node) Attr(key string) (string, bool) {
	if a := n.e.SelectAttr(key); a != nil {
		return a.Value, true
	}
	return "", false
}

func (n node) Attrs() []Attr {
	attrs := make([]Attr, len(n.e.Attr))
	for i, a := range n.e.Attr {
		attrs[i] = Attr{Key: a.Key, Value: a.Value}
	}
	return attrs
}

func (n node) Children() []Element {
	chs := n.e.ChildElements()
	r := make([]Element, len(chs))
	for i, ch := range chs {
		r[i] = node{ch}
	}
	return r
}

func (n node) Text() string {
	return n.e.Text()
}

var _ Element = node{}
