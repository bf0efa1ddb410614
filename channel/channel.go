package channel

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"github.com/npillmayer/inkml"
	"github.com/npillmayer/inkml/maybe"
	"github.com/npillmayer/inkml/markup"
)

// Channel is a typed per-sample attribute of a trace format.
// Channels are created once per document and shared by reference.
type Channel struct {
	Name     string // X, Y, T, F, …
	Kind     Kind
	Required bool   // intermittent channels are not required
	Units    string // optional unit of measurement
	def      Value
	min, max maybe.Maybe[Value]
}

// New creates a required channel with zero default and no bounds.
func New(name string, kind Kind) *Channel {
	return &Channel{
		Name:     name,
		Kind:     kind,
		Required: true,
		def:      kind.Zero(),
		min:      maybe.Nothing[Value](),
		max:      maybe.Nothing[Value](),
	}
}

func (c *Channel) String() string {
	return fmt.Sprintf("channel(%s:%s)", c.Name, c.Kind)
}

// Default returns the default value of the channel.
func (c *Channel) Default() Value {
	if c.def == nil {
		return c.Kind.Zero()
	}
	return c.def
}

// SetDefault sets the default value from its textual form. An empty string
// resets the default to the zero value of the channel's kind.
func (c *Channel) SetDefault(text string) error {
	if text == "" {
		c.def = c.Kind.Zero()
		return nil
	}
	v, err := c.Parse(text)
	if err != nil {
		return err
	}
	c.def = v
	return nil
}

// SetMin sets the lower bound from its textual form. An empty string clears
// the bound.
func (c *Channel) SetMin(text string) error {
	b, err := c.bound(text)
	if err != nil {
		return err
	}
	c.min = b
	return nil
}

// SetMax sets the upper bound from its textual form. An empty string clears
// the bound.
func (c *Channel) SetMax(text string) error {
	b, err := c.bound(text)
	if err != nil {
		return err
	}
	c.max = b
	return nil
}

func (c *Channel) bound(text string) (maybe.Maybe[Value], error) {
	if text == "" {
		return maybe.Nothing[Value](), nil
	}
	v, err := c.Parse(text)
	if err != nil {
		return maybe.Nothing[Value](), err
	}
	return maybe.Just(v), nil
}

// Min returns the lower bound, if set.
func (c *Channel) Min() maybe.Maybe[Value] {
	if c.min == nil {
		return maybe.Nothing[Value]()
	}
	return c.min
}

// Max returns the upper bound, if set.
func (c *Channel) Max() maybe.Maybe[Value] {
	if c.max == nil {
		return maybe.Nothing[Value]()
	}
	return c.max
}

// MinSet is a predicate wether a lower bound is set.
func (c *Channel) MinSet() bool { return !c.Min().IsNothing() }

// MaxSet is a predicate wether an upper bound is set.
func (c *Channel) MaxSet() bool { return !c.Max().IsNothing() }

// Parse reads a value of this channel from text.
func (c *Channel) Parse(text string) (Value, error) {
	v, err := c.Kind.Parse(text)
	if err != nil {
		var perr *inkml.ParseError
		if errors.As(err, &perr) {
			perr.Channel = c.Name
		}
		tracer().Debugf("%s: %v", c, err)
		return v, err
	}
	return v, nil
}

// Format writes a value of this channel in canonical textual form.
func (c *Channel) Format(v Value) string {
	return c.Kind.Format(v)
}

// ToCanonical converts a value of this channel to float64.
func (c *Channel) ToCanonical(v Value) float64 {
	return c.Kind.ToCanonical(v)
}

// FromCanonical converts a canonical number to a value of this channel.
func (c *Channel) FromCanonical(d float64) Value {
	return c.Kind.FromCanonical(d)
}

// Validate checks the channel declaration itself: if both bounds are set,
// min must not exceed max.
func (c *Channel) Validate() error {
	lo, okLo := c.Min().Get()
	hi, okHi := c.Max().Get()
	if okLo && okHi && c.ToCanonical(lo) > c.ToCanonical(hi) {
		return inkml.Compliance("channel", "channel %s: min %s > max %s", c.Name,
			c.Format(lo), c.Format(hi))
	}
	return nil
}

// Check tests a value against the bounds of the channel.
func (c *Channel) Check(v Value) error {
	return c.CheckCanonical(c.ToCanonical(v))
}

// CheckCanonical tests a canonical number against the bounds of the channel.
func (c *Channel) CheckCanonical(d float64) error {
	if lo, ok := c.Min().Get(); ok && d < c.ToCanonical(lo) {
		return inkml.Compliance("trace", "channel %s: value %s below minimum %s", c.Name,
			c.Format(c.FromCanonical(d)), c.Format(lo))
	}
	if hi, ok := c.Max().Get(); ok && d > c.ToCanonical(hi) {
		return inkml.Compliance("trace", "channel %s: value %s above maximum %s", c.Name,
			c.Format(c.FromCanonical(d)), c.Format(hi))
	}
	return nil
}

// --- Markup ----------------------------------------------------------------

// FromMarkup creates a channel from a <channel> element. Absent or empty
// 'default', 'min' and 'max' attributes leave the respective property unset.
func FromMarkup(el markup.Element) (*Channel, error) {
	if el.Tag() != "channel" {
		return nil, inkml.Compliance(el.Tag(), "expected <channel>")
	}
	name, ok := el.Attr("name")
	if !ok || name == "" {
		return nil, inkml.Compliance("channel", "missing attribute 'name'")
	}
	t, _ := el.Attr("type")
	kind, err := KindFromString(t)
	if err != nil {
		return nil, err
	}
	c := New(name, kind)
	if req, ok := el.Attr("required"); ok {
		r, err := Boolean.Parse(req)
		if err != nil {
			return nil, inkml.Compliance("channel", "channel %s: illegal value for 'required': %q", name, req)
		}
		c.Required = bool(r.(Bool))
	}
	c.Units, _ = el.Attr("units")
	def, _ := el.Attr("default")
	if err := c.SetDefault(def); err != nil {
		return nil, err
	}
	lo, _ := el.Attr("min")
	if err := c.SetMin(lo); err != nil {
		return nil, err
	}
	hi, _ := el.Attr("max")
	if err := c.SetMax(hi); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	tracer().Debugf("read %s, default=%s, min set=%v, max set=%v", c, c.Format(c.Default()),
		c.MinSet(), c.MaxSet())
	return c, nil
}

// ExportTo appends a <channel> element to parent. With sparse set, a default
// value equal to the zero value of the channel's kind is omitted.
func (c *Channel) ExportTo(parent *etree.Element, sparse bool) *etree.Element {
	el := markup.Create(parent, "channel")
	el.CreateAttr("name", c.Name)
	el.CreateAttr("type", c.Kind.String())
	if !sparse || !c.Kind.IsZero(c.Default()) {
		el.CreateAttr("default", c.Format(c.Default()))
	}
	if lo, ok := c.Min().Get(); ok {
		el.CreateAttr("min", c.Format(lo))
	}
	if hi, ok := c.Max().Get(); ok {
		el.CreateAttr("max", c.Format(hi))
	}
	if !c.Required {
		el.CreateAttr("required", "F")
	}
	if c.Units != "" {
		el.CreateAttr("units", c.Units)
	}
	return el
}

// canonicalName normalizes well-known channel names.
func canonicalName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}
