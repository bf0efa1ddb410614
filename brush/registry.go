package brush

import (
	"fmt"

	"github.com/npillmayer/inkml"
	"github.com/npillmayer/inkml/markup"
)

// DefaultContextID is the id of the context in effect if a document does
// not set one.
const DefaultContextID = "DefaultContext"

// Registry holds the brushes and contexts of a document. Current is the
// ambient context, i.e. the context any element without an explicit context
// reference is drawn with.
type Registry struct {
	Current  *Context
	brushes  map[string]*Brush
	contexts map[string]*Context
}

// NewRegistry creates a registry with a default context as its current context.
func NewRegistry() *Registry {
	reg := &Registry{
		brushes:  make(map[string]*Brush),
		contexts: make(map[string]*Context),
	}
	reg.Current = NewContext(DefaultContextID, nil)
	reg.contexts[DefaultContextID] = reg.Current
	return reg
}

// AddBrush registers a brush under its id.
func (reg *Registry) AddBrush(b *Brush) {
	reg.brushes[b.ID] = b
}

// Brush resolves a brush reference.
func (reg *Registry) Brush(ref string) (*Brush, error) {
	id := markup.StripRef(ref)
	if b, ok := reg.brushes[id]; ok {
		return b, nil
	}
	return nil, fmt.Errorf("brush %q: %w", id, inkml.ErrNotFound)
}

// AddContext registers a context under its id.
func (reg *Registry) AddContext(ctx *Context) {
	reg.contexts[ctx.ID] = ctx
}

// Context resolves a context reference.
func (reg *Registry) Context(ref string) (*Context, error) {
	id := markup.StripRef(ref)
	if ctx, ok := reg.contexts[id]; ok {
		return ctx, nil
	}
	return nil, fmt.Errorf("context %q: %w", id, inkml.ErrNotFound)
}

// Read reads a <brush> or <context> element and registers the result.
// Other elements are ignored.
func (reg *Registry) Read(el markup.Element) error {
	switch el.Tag() {
	case "brush":
		b, err := FromMarkup(el, reg)
		if err != nil {
			return err
		}
		reg.AddBrush(b)
	case "context":
		ctx, err := ContextFromMarkup(el, reg)
		if err != nil {
			return err
		}
		reg.AddContext(ctx)
	default:
		tracer().Debugf("brush registry: ignoring <%s>", el.Tag())
	}
	return nil
}
