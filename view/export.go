package view

import (
	"github.com/beevik/etree"
	"github.com/npillmayer/inkml/markup"
)

// ExportTo appends a <traceView> element for v and its sub-tree to parent.
//
// A root view exported into an <ink> element first exports its style
// context, if that differs from the document's current context. Leaves
// reference their trace; containers list their children explicitly.
func (v *View) ExportTo(parent *etree.Element) *etree.Element {
	if v.IsRoot() && parent != nil && parent.Tag == "ink" {
		if ctx := v.Context(); ctx != v.doc.Brushes.Current {
			tracer().Debugf("export: flushing %s before view #%d", ctx, v.serial)
			ctx.ExportTo(parent)
		}
	}
	el := markup.Create(parent, "traceView")
	if v.ID != "" {
		el.CreateAttr("xml:id", v.ID)
	}
	if v.kind == Leaf {
		el.CreateAttr("traceDataRef", markup.Ref(v.traceRef))
	}
	if v.contextRef != "" {
		el.CreateAttr("contextRef", markup.Ref(v.contextRef))
	}
	for _, k := range v.AnnotationKeys() {
		a := el.CreateElement("annotation")
		a.CreateAttr("type", k)
		a.SetText(v.annotations[k])
	}
	for _, ch := range v.Children() {
		ch.ExportTo(el)
	}
	return el
}
