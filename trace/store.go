package trace

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/npillmayer/inkml"
	"github.com/npillmayer/inkml/channel"
	"github.com/npillmayer/inkml/markup"
)

// Store holds the definitions of a document: traces, trace groups, view
// identifiers and trace formats, each addressable by identifier.
type Store struct {
	Strict  bool // check sample values against channel bounds when reading
	entries map[string]*Trace
	order   []string
	formats map[string]*channel.Format
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		entries: make(map[string]*Trace),
		formats: make(map[string]*channel.Format),
	}
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// IDs returns the identifiers of all entries in insertion order.
func (s *Store) IDs() []string {
	ids := make([]string, len(s.order))
	copy(ids, s.order)
	return ids
}

// Has is a predicate wether ref resolves to an entry.
func (s *Store) Has(ref string) bool {
	_, ok := s.entries[markup.StripRef(ref)]
	return ok
}

// Get resolves a reference. A leading '#' is ignored. Unknown references
// result in an error matching inkml.ErrNotFound.
func (s *Store) Get(ref string) (*Trace, error) {
	id := markup.StripRef(ref)
	if t, ok := s.entries[id]; ok {
		return t, nil
	}
	return nil, fmt.Errorf("trace %q: %w", id, inkml.ErrNotFound)
}

// Put adds an entry. Entries without an identifier get a generated one.
// Identifiers must be unique within a document.
func (s *Store) Put(t *Trace) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if _, exists := s.entries[t.ID]; exists {
		return inkml.Compliance(t.kind.String(), "duplicate id %q", t.ID)
	}
	s.entries[t.ID] = t
	s.order = append(s.order, t.ID)
	tracer().Debugf("store: put %s", t)
	return nil
}

// Delete removes an entry and detaches it from all groups of the store.
// It returns false if ref does not resolve.
func (s *Store) Delete(ref string) bool {
	id := markup.StripRef(ref)
	t, ok := s.entries[id]
	if !ok {
		return false
	}
	delete(s.entries, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	for _, e := range s.entries {
		if e.kind == KindGroup {
			e.members = without(e.members, t)
		}
	}
	tracer().Debugf("store: deleted %s", t)
	return true
}

// without returns a copy of ts not containing t. Slices handed out by
// Members stay untouched.
func without(ts []*Trace, t *Trace) []*Trace {
	r := make([]*Trace, 0, len(ts))
	for _, x := range ts {
		if x != t {
			r = append(r, x)
		}
	}
	return r
}

// MarkView registers an identifier as denoting a trace view.
func (s *Store) MarkView(id string) error {
	return s.Put(NewViewEntry(markup.StripRef(id)))
}

// --- Formats ---------------------------------------------------------------

// AddFormat registers a trace format under its identifier.
func (s *Store) AddFormat(f *channel.Format) {
	s.formats[f.ID] = f
}

// Format resolves a trace format. An empty reference denotes the default format.
func (s *Store) Format(ref string) (*channel.Format, error) {
	id := markup.StripRef(ref)
	if f, ok := s.formats[id]; ok {
		return f, nil
	}
	if id == "" {
		f := channel.DefaultFormat()
		f.ID = ""
		s.formats[""] = f
		return f, nil
	}
	return nil, fmt.Errorf("traceFormat %q: %w", id, inkml.ErrNotFound)
}

// --- Reading markup --------------------------------------------------------

// ReadTrace reads a <trace> element and adds it to the store. Samples are
// separated by commas, values within a sample by white space. If format is
// nil, the default format is used.
func (s *Store) ReadTrace(el markup.Element, format *channel.Format) (*Trace, error) {
	if el.Tag() != "trace" {
		return nil, inkml.Compliance(el.Tag(), "expected <trace>")
	}
	if format == nil {
		var err error
		if format, err = s.Format(""); err != nil {
			return nil, err
		}
	}
	var samples [][]float64
	for _, text := range strings.Split(el.Text(), ",") {
		if strings.TrimSpace(text) == "" {
			continue
		}
		sample, err := format.ParseSample(text, s.Strict)
		if err != nil {
			return nil, err
		}
		samples = append(samples, sample)
	}
	t := New(markup.ID(el), format, samples)
	if ctx, ok := el.Attr("contextRef"); ok {
		t.ContextRef = markup.StripRef(ctx)
	}
	if err := s.Put(t); err != nil {
		return nil, err
	}
	return t, nil
}

// ReadGroup reads a <traceGroup> element, including nested traces and groups,
// and adds all of them to the store.
func (s *Store) ReadGroup(el markup.Element, format *channel.Format) (*Trace, error) {
	if el.Tag() != "traceGroup" {
		return nil, inkml.Compliance(el.Tag(), "expected <traceGroup>")
	}
	g := NewGroup(markup.ID(el))
	if ctx, ok := el.Attr("contextRef"); ok {
		g.ContextRef = markup.StripRef(ctx)
	}
	for _, ch := range el.Children() {
		var m *Trace
		var err error
		switch ch.Tag() {
		case "trace":
			m, err = s.ReadTrace(ch, format)
		case "traceGroup":
			m, err = s.ReadGroup(ch, format)
		default:
			tracer().Infof("ignoring <%s> in <traceGroup>", ch.Tag())
			continue
		}
		if err != nil {
			return nil, err
		}
		g.members = append(g.members, m)
	}
	if err := s.Put(g); err != nil {
		return nil, err
	}
	return g, nil
}
