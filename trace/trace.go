package trace

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"github.com/npillmayer/inkml/channel"
	"github.com/npillmayer/inkml/geom"
	"github.com/npillmayer/inkml/markup"
)

// Kind classifies the entries of a definitions store.
type Kind int8

// Kinds of entries.
const (
	KindTrace Kind = iota // a leaf trace holding samples
	KindGroup             // a trace group
	KindView              // a trace view, known by identifier only
)

func (k Kind) String() string {
	switch k {
	case KindTrace:
		return "trace"
	case KindGroup:
		return "traceGroup"
	case KindView:
		return "traceView"
	}
	return "?"
}

// Trace is an entry of the definitions store. Samples of a trace are written
// once, at construction time.
type Trace struct {
	ID         string
	ContextRef string // optional reference to a style context
	kind       Kind
	format     *channel.Format
	samples    [][]float64
	members    []*Trace
}

// New creates a leaf trace. If format is nil, the InkML default format is used.
// The trace takes ownership of samples.
func New(id string, format *channel.Format, samples [][]float64) *Trace {
	if format == nil {
		format = channel.DefaultFormat()
	}
	return &Trace{ID: id, kind: KindTrace, format: format, samples: samples}
}

// NewGroup creates a trace group.
func NewGroup(id string, members ...*Trace) *Trace {
	return &Trace{ID: id, kind: KindGroup, members: members}
}

// NewViewEntry creates a placeholder entry for a trace view.
func NewViewEntry(id string) *Trace {
	return &Trace{ID: id, kind: KindView}
}

func (t *Trace) String() string {
	switch t.kind {
	case KindGroup:
		return fmt.Sprintf("traceGroup(%s, #members=%d)", t.ID, len(t.members))
	case KindView:
		return fmt.Sprintf("traceView(%s)", t.ID)
	}
	return fmt.Sprintf("trace(%s, #samples=%d)", t.ID, len(t.samples))
}

// Kind returns the kind of this entry.
func (t *Trace) Kind() Kind { return t.kind }

// IsLeaf is true for traces which hold samples.
func (t *Trace) IsLeaf() bool { return t.kind == KindTrace }

// IsView is true for entries denoting trace views.
func (t *Trace) IsView() bool { return t.kind == KindView }

// Format returns the trace format. Groups and views have no format.
func (t *Trace) Format() *channel.Format { return t.format }

// Members returns the members of a trace group.
func (t *Trace) Members() []*Trace { return t.members }

// PointCount returns the number of samples, for groups summed over all members.
func (t *Trace) PointCount() int {
	if t.kind == KindGroup {
		n := 0
		for _, m := range t.members {
			n += m.PointCount()
		}
		return n
	}
	return len(t.samples)
}

// Sample returns a copy of sample i of a leaf trace.
func (t *Trace) Sample(i int) []float64 {
	s := make([]float64, len(t.samples[i]))
	copy(s, t.samples[i])
	return s
}

// Value returns the canonical value of channel name in sample i.
func (t *Trace) Value(i int, name string) (float64, bool) {
	if t.format == nil || i < 0 || i >= len(t.samples) {
		return 0, false
	}
	c := t.format.Index(name)
	if c < 0 || c >= len(t.samples[i]) {
		return 0, false
	}
	return t.samples[i][c], true
}

// Points returns the samples as points, using the X, Y and T channels.
// For groups, the points of all members are concatenated.
func (t *Trace) Points() []geom.Point {
	switch t.kind {
	case KindGroup:
		var pts []geom.Point
		for _, m := range t.members {
			pts = append(pts, m.Points()...)
		}
		return pts
	case KindView:
		return nil
	}
	xi, yi, ti := t.format.Index("X"), t.format.Index("Y"), t.format.Index("T")
	pts := make([]geom.Point, len(t.samples))
	for i, s := range t.samples {
		p := geom.Point{}
		if xi >= 0 && xi < len(s) {
			p.X = s[xi]
		}
		if yi >= 0 && yi < len(s) {
			p.Y = s[yi]
		}
		if ti >= 0 && ti < len(s) {
			p.T, p.Timed = s[ti], true
		}
		pts[i] = p
	}
	return pts
}

// Leaves returns all leaf traces of a group, depth first. For a leaf trace
// the result contains the trace itself.
func (t *Trace) Leaves() []*Trace {
	switch t.kind {
	case KindTrace:
		return []*Trace{t}
	case KindGroup:
		var leaves []*Trace
		for _, m := range t.members {
			leaves = append(leaves, m.Leaves()...)
		}
		return leaves
	}
	return nil
}

// ExportTo appends a <trace> or <traceGroup> element to parent.
func (t *Trace) ExportTo(parent *etree.Element) *etree.Element {
	var el *etree.Element
	switch t.kind {
	case KindTrace:
		el = markup.Create(parent, "trace")
		el.CreateAttr("xml:id", t.ID)
		samples := make([]string, len(t.samples))
		for i, s := range t.samples {
			samples[i] = t.format.FormatSample(s)
		}
		el.SetText(strings.Join(samples, ", "))
	case KindGroup:
		el = markup.Create(parent, "traceGroup")
		el.CreateAttr("xml:id", t.ID)
		for _, m := range t.members {
			m.ExportTo(el)
		}
	default:
		return nil
	}
	if t.ContextRef != "" {
		el.CreateAttr("contextRef", markup.Ref(t.ContextRef))
	}
	return el
}
