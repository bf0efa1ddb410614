package brush

import (
	"fmt"

	"github.com/beevik/etree"
	"github.com/npillmayer/inkml"
	"github.com/npillmayer/inkml/markup"
)

// Context is a style context, i.e. a named reference to a brush.
// A context may have no brush.
type Context struct {
	ID    string
	brush *Brush
}

// NewContext creates a context. b may be nil.
func NewContext(id string, b *Brush) *Context {
	return &Context{ID: id, brush: b}
}

func (ctx *Context) String() string {
	if ctx.brush == nil {
		return fmt.Sprintf("context(%s)", ctx.ID)
	}
	return fmt.Sprintf("context(%s, brush=%s)", ctx.ID, ctx.brush.ID)
}

// HasBrush is a predicate wether a brush is set for this context.
func (ctx *Context) HasBrush() bool {
	return ctx != nil && ctx.brush != nil
}

// Brush returns the brush of this context or nil.
func (ctx *Context) Brush() *Brush {
	if ctx == nil {
		return nil
	}
	return ctx.brush
}

// SetBrush sets the brush of this context.
func (ctx *Context) SetBrush(b *Brush) {
	ctx.brush = b
}

// ContextFromMarkup reads a <context> element. Brushes are either nested
// or referenced by brushRef; nested brushes are added to reg.
func ContextFromMarkup(el markup.Element, reg *Registry) (*Context, error) {
	if el.Tag() != "context" {
		return nil, inkml.Compliance(el.Tag(), "expected <context>")
	}
	ctx := NewContext(markup.ID(el), nil)
	if ref, ok := el.Attr("brushRef"); ok {
		b, err := reg.Brush(ref)
		if err != nil {
			return nil, err
		}
		ctx.brush = b
	}
	for _, ch := range el.Children() {
		if ch.Tag() != "brush" {
			continue
		}
		b, err := FromMarkup(ch, reg)
		if err != nil {
			return nil, err
		}
		if b.ID != "" {
			reg.AddBrush(b)
		}
		ctx.brush = b
	}
	return ctx, nil
}

// ExportTo appends a <context> element to parent. Brushes registered with
// an id are referenced, anonymous brushes are nested.
func (ctx *Context) ExportTo(parent *etree.Element) *etree.Element {
	el := markup.Create(parent, "context")
	if ctx.ID != "" {
		el.CreateAttr("xml:id", ctx.ID)
	}
	if ctx.brush != nil {
		if ctx.brush.ID != "" {
			el.CreateAttr("brushRef", markup.Ref(ctx.brush.ID))
		} else {
			ctx.brush.ExportTo(el)
		}
	}
	return el
}
