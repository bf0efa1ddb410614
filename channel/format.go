package channel

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"github.com/npillmayer/inkml"
	"github.com/npillmayer/inkml/markup"
)

// Format is an ordered set of channels, as declared by an InkML <traceFormat>.
// Samples of a trace hold one canonical number per channel of its format, in
// channel order.
type Format struct {
	ID       string
	channels []*Channel
	index    map[string]int
}

// NewFormat creates a trace format from channels. Channels are shared, not copied.
func NewFormat(id string, channels ...*Channel) *Format {
	f := &Format{ID: id, index: make(map[string]int, len(channels))}
	for _, c := range channels {
		f.add(c)
	}
	return f
}

// DefaultFormat returns the format in effect if a document does not declare
// one: decimal X and Y channels.
func DefaultFormat() *Format {
	return NewFormat("DefaultTraceFormat", New("X", Decimal), New("Y", Decimal))
}

func (f *Format) add(c *Channel) {
	f.index[canonicalName(c.Name)] = len(f.channels)
	f.channels = append(f.channels, c)
}

func (f *Format) String() string {
	names := make([]string, len(f.channels))
	for i, c := range f.channels {
		names[i] = c.Name
	}
	return fmt.Sprintf("format(%s: %s)", f.ID, strings.Join(names, " "))
}

// Len returns the number of channels.
func (f *Format) Len() int {
	return len(f.channels)
}

// Channels returns the channels in declaration order.
func (f *Format) Channels() []*Channel {
	return f.channels
}

// Index returns the position of a channel by name, or -1. Channel names are
// matched case-insensitively.
func (f *Format) Index(name string) int {
	if i, ok := f.index[canonicalName(name)]; ok {
		return i
	}
	return -1
}

// Channel looks up a channel by name.
func (f *Format) Channel(name string) (*Channel, bool) {
	i := f.Index(name)
	if i < 0 {
		return nil, false
	}
	return f.channels[i], true
}

// ParseSample reads a single sample, i.e. whitespace separated values in
// channel order. Trailing values may be omitted for channels which are not
// required; they take the channel's default. With strict set, every value is
// checked against its channel's bounds.
func (f *Format) ParseSample(text string, strict bool) ([]float64, error) {
	fields := strings.Fields(text)
	if len(fields) > len(f.channels) {
		return nil, inkml.Compliance("trace", "sample %q has %d values, format %s has %d channels",
			text, len(fields), f.ID, len(f.channels))
	}
	sample := make([]float64, len(f.channels))
	for i, c := range f.channels {
		if i >= len(fields) {
			if c.Required {
				return nil, inkml.Compliance("trace", "sample %q lacks required channel %s", text, c.Name)
			}
			sample[i] = c.ToCanonical(c.Default())
			continue
		}
		v, err := c.Parse(fields[i])
		if err != nil {
			return nil, err
		}
		sample[i] = c.ToCanonical(v)
		if strict {
			if err := c.CheckCanonical(sample[i]); err != nil {
				return nil, err
			}
		}
	}
	return sample, nil
}

// FormatSample writes a sample in canonical textual form.
func (f *Format) FormatSample(sample []float64) string {
	var b strings.Builder
	for i, c := range f.channels {
		if i >= len(sample) {
			break
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(c.Format(c.FromCanonical(sample[i])))
	}
	return b.String()
}

// FormatFromMarkup reads a <traceFormat> element. Channels nested in
// <intermittentChannels> are not required.
func FormatFromMarkup(el markup.Element) (*Format, error) {
	if el.Tag() != "traceFormat" {
		return nil, inkml.Compliance(el.Tag(), "expected <traceFormat>")
	}
	id := markup.ID(el)
	f := NewFormat(id)
	for _, ch := range el.Children() {
		switch ch.Tag() {
		case "channel":
			c, err := FromMarkup(ch)
			if err != nil {
				return nil, err
			}
			f.add(c)
		case "intermittentChannels":
			for _, ich := range ch.Children() {
				c, err := FromMarkup(ich)
				if err != nil {
					return nil, err
				}
				c.Required = false
				f.add(c)
			}
		default:
			tracer().Infof("ignoring <%s> in <traceFormat>", ch.Tag())
		}
	}
	if f.Len() == 0 {
		return nil, inkml.Compliance("traceFormat", "format %q declares no channels", id)
	}
	return f, nil
}

// ExportTo appends a <traceFormat> element to parent.
func (f *Format) ExportTo(parent *etree.Element, sparse bool) *etree.Element {
	el := markup.Create(parent, "traceFormat")
	if f.ID != "" {
		el.CreateAttr("xml:id", f.ID)
	}
	var intermittent *etree.Element
	for _, c := range f.channels {
		if c.Required {
			c.ExportTo(el, sparse)
			continue
		}
		if intermittent == nil {
			intermittent = el.CreateElement("intermittentChannels")
		}
		c.ExportTo(intermittent, sparse)
	}
	return el
}
