package brush

import (
	"fmt"
	"image/color"
	"sort"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/npillmayer/inkml"
	"github.com/npillmayer/inkml/markup"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
)

// Brush is a collection of drawing properties. A brush may be linked to
// a parent brush (InkML attribute brushRef); properties not set for a brush
// cascade to its parent.
type Brush struct {
	ID        string
	Parent    *Brush
	propsDict map[string]Property
}

// New creates a new empty brush.
func New(id string) *Brush {
	return &Brush{ID: id}
}

// Stringer for brushes; used for debugging.
func (b *Brush) String() string {
	s := "[" + b.ID + "] ="
	for _, kv := range b.Properties() {
		s += fmt.Sprintf(" %s=%s", kv.Key, kv.Value)
	}
	return s
}

// Properties returns the local properties of a brush, sorted by key.
func (b *Brush) Properties() []KeyValue {
	r := make([]KeyValue, 0, len(b.propsDict))
	for k, v := range b.propsDict {
		r = append(r, KeyValue{k, v})
	}
	sort.Slice(r, func(i, j int) bool { return r[i].Key < r[j].Key })
	return r
}

// IsSet is a predicated wether a property is set for this brush, not
// considering parents.
func (b *Brush) IsSet(key string) bool {
	if b.propsDict == nil {
		return false
	}
	v, ok := b.propsDict[key]
	return ok && !v.IsEmpty()
}

// Set a property's value. Overwrites an existing value, if present.
//
// Property values are always converted to lower case.
func (b *Brush) Set(key string, p Property) *Brush {
	p = Property(strings.ToLower(strings.TrimSpace(string(p))))
	if b.propsDict == nil {
		b.propsDict = make(map[string]Property)
	}
	b.propsDict[key] = p
	return b
}

// Cascade finds the brush in the chain of parents which sets the given
// property-key, or nil.
func (b *Brush) Cascade(key string) *Brush {
	it := b
	for it != nil && !it.IsSet(key) {
		it = it.Parent
	}
	return it
}

// Get a property's value, cascading to parent brushes.
func (b *Brush) Get(key string) (Property, bool) {
	if c := b.Cascade(key); c != nil {
		return c.propsDict[key], true
	}
	return NullStyle, false
}

// Color returns the drawing color. The default is black.
func (b *Brush) Color() color.Color {
	if p, ok := b.Get(KeyColor); ok {
		return p.Color()
	}
	return color.Black
}

// Width returns the width of the pen tip. Width properties are
// given in points; the default is 1pt.
func (b *Brush) Width() dimen.DU {
	if p, ok := b.Get(KeyWidth); ok {
		if w, ok := p.Float(); ok {
			return dimen.DU(w * float64(dimen.PT))
		}
		tracer().Infof("brush %s: cannot interpret width %q", b.ID, p)
	}
	return dimen.PT
}

// Transparency returns the transparency of the ink. Transparency properties
// range from 0 (opaque) to 255 (invisible).
func (b *Brush) Transparency() percent.Percent {
	if p, ok := b.Get(KeyTransparency); ok {
		if n, err := strconv.Atoi(p.String()); err == nil && n >= 0 && n <= 255 {
			return percent.FromInt(n * 100 / 255)
		}
		tracer().Infof("brush %s: cannot interpret transparency %q", b.ID, p)
	}
	return percent.FromInt(0)
}

// Tip returns the shape of the pen tip, "ellipse" by default.
func (b *Brush) Tip() string {
	if p, ok := b.Get(KeyTip); ok {
		return p.String()
	}
	return "ellipse"
}

// --- Markup ----------------------------------------------------------------

// FromMarkup reads a <brush> element. A brushRef is resolved with reg,
// which may be nil for free-standing brushes.
func FromMarkup(el markup.Element, reg *Registry) (*Brush, error) {
	if el.Tag() != "brush" {
		return nil, inkml.Compliance(el.Tag(), "expected <brush>")
	}
	b := New(markup.ID(el))
	if ref, ok := el.Attr("brushRef"); ok && reg != nil {
		parent, err := reg.Brush(ref)
		if err != nil {
			return nil, err
		}
		b.Parent = parent
	}
	for _, ch := range el.Children() {
		if ch.Tag() != "brushProperty" {
			continue
		}
		name, ok := ch.Attr("name")
		if !ok {
			return nil, inkml.Compliance("brushProperty", "property without a name in brush %q", b.ID)
		}
		value, _ := ch.Attr("value")
		b.Set(name, Property(value))
	}
	tracer().Debugf("brush: read %s", b)
	return b, nil
}

// ExportTo appends a <brush> element to parent.
func (b *Brush) ExportTo(parent *etree.Element) *etree.Element {
	el := markup.Create(parent, "brush")
	if b.ID != "" {
		el.CreateAttr("xml:id", b.ID)
	}
	if b.Parent != nil && b.Parent.ID != "" {
		el.CreateAttr("brushRef", markup.Ref(b.Parent.ID))
	}
	for _, kv := range b.Properties() {
		p := el.CreateElement("brushProperty")
		p.CreateAttr("name", kv.Key)
		p.CreateAttr("value", kv.Value.String())
	}
	return el
}
