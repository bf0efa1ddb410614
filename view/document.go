package view

import (
	"github.com/beevik/etree"
	"github.com/npillmayer/inkml"
	"github.com/npillmayer/inkml/brush"
	"github.com/npillmayer/inkml/channel"
	"github.com/npillmayer/inkml/markup"
	"github.com/npillmayer/inkml/notify"
	"github.com/npillmayer/inkml/trace"
)

// Document is the context of view trees: it holds the canonical traces,
// the brushes and contexts, the settings, and the state of change
// notification.
type Document struct {
	Config     inkml.Config
	Store      *trace.Store
	Brushes    *brush.Registry
	Format     *channel.Format // format for reading traces
	dispatcher *notify.Dispatcher[*TreeEvent]
	serial     uint64
	formats    []*channel.Format // in order of reading
	roots      []*View
}

// NewDocument creates an empty document.
func NewDocument(conf inkml.Config) *Document {
	doc := &Document{
		Config:     conf,
		Store:      trace.NewStore(),
		Brushes:    brush.NewRegistry(),
		Format:     channel.DefaultFormat(),
		dispatcher: notify.NewDispatcher(eventsEqual),
	}
	doc.Store.Strict = conf.Strict
	return doc
}

// Begin opens a batch of mutations. Notifications to observers are held
// back until the outermost batch ends:
//
//	b := doc.Begin()
//	defer b.End()
func (doc *Document) Begin() *notify.Batch[*TreeEvent] {
	return doc.dispatcher.Begin()
}

// Batch runs f within a batch of mutations.
func (doc *Document) Batch(f func() error) error {
	b := doc.Begin()
	defer b.End()
	return f()
}

// Roots returns the root views read by Read.
func (doc *Document) Roots() []*View {
	return doc.roots
}

func (doc *Document) nextSerial() uint64 {
	doc.serial++
	return doc.serial
}

// Read reads the content of an <ink> or <definitions> element: trace formats,
// traces, trace groups, brushes, contexts and trace views. Traces are read
// with the most recently declared trace format. Other elements are ignored.
func (doc *Document) Read(el markup.Element) error {
	for _, ch := range el.Children() {
		var err error
		switch ch.Tag() {
		case "definitions":
			err = doc.Read(ch)
		case "traceFormat":
			var f *channel.Format
			if f, err = channel.FormatFromMarkup(ch); err == nil {
				doc.Store.AddFormat(f)
				doc.formats = append(doc.formats, f)
				doc.Format = f
			}
		case "trace":
			_, err = doc.Store.ReadTrace(ch, doc.Format)
		case "traceGroup":
			_, err = doc.Store.ReadGroup(ch, doc.Format)
		case "brush", "context":
			err = doc.Brushes.Read(ch)
		case "traceView":
			var v *View
			if v, err = CreateView(doc, nil, ch); err == nil {
				doc.roots = append(doc.roots, v)
			}
		default:
			tracer().Debugf("document: ignoring <%s>", ch.Tag())
		}
		if err != nil {
			tracer().Errorf("document: %v", err)
			return err
		}
	}
	return nil
}

// Export writes the document as an <ink> element: the trace formats read,
// the traces and trace groups of the store, and the root views. Channel
// defaults are written as configured with Config.SparseExport.
func (doc *Document) Export() *etree.Element {
	ink := markup.Create(nil, "ink")
	for _, f := range doc.formats {
		f.ExportTo(ink, doc.Config.SparseExport)
	}
	var entries []*trace.Trace
	nested := make(map[*trace.Trace]bool)
	for _, id := range doc.Store.IDs() {
		t, err := doc.Store.Get(id)
		if err != nil || t.IsView() {
			continue
		}
		for _, m := range t.Members() {
			nested[m] = true
		}
		entries = append(entries, t)
	}
	for _, t := range entries {
		if !nested[t] {
			t.ExportTo(ink)
		}
	}
	for _, r := range doc.roots {
		r.ExportTo(ink)
	}
	return ink
}
