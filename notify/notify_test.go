package notify

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

type event struct {
	target string
}

func sameTarget(a, b *event) bool {
	return a.target == b.target
}

type recorder struct {
	got []Notification[*event]
}

func (r *recorder) Notify(n Notification[*event]) {
	r.got = append(r.got, n)
}

func TestImmediateDelivery(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inkml.notify")
	defer teardown()
	//
	d := NewDispatcher(sameTarget)
	var reg Registry[*event]
	rec := &recorder{}
	reg.Register(Change, rec)
	d.Notify(&reg, Notification[*event]{Aspect: Change, Detail: NodeChange, Event: &event{"a"}})
	d.Notify(&reg, Notification[*event]{Aspect: DataChange, Detail: DataChange, Event: &event{"a"}})
	if len(rec.got) != 1 {
		t.Fatalf("expected 1 notification, have %d", len(rec.got))
	}
	if rec.got[0].Detail != NodeChange {
		t.Errorf("expected detail NODE_CHANGE, have %s", rec.got[0].Detail)
	}
}

func TestBatchHoldsBack(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inkml.notify")
	defer teardown()
	//
	d := NewDispatcher(sameTarget)
	var reg Registry[*event]
	rec := &recorder{}
	reg.Register(Change, rec)
	outer := d.Begin()
	d.Notify(&reg, Notification[*event]{Aspect: Change, Detail: ChildPreRemove, Event: &event{"a"}})
	inner := d.Begin()
	d.Notify(&reg, Notification[*event]{Aspect: Change, Detail: ChildRemove, Event: &event{"a"}})
	inner.End()
	if len(rec.got) != 0 || d.Pending() != 2 {
		t.Errorf("expected notifications to be held back by the outer batch")
	}
	inner.End() // idempotent
	if d.Depth() != 1 {
		t.Errorf("expected depth 1, have %d", d.Depth())
	}
	outer.End()
	if len(rec.got) != 2 {
		t.Fatalf("expected 2 notifications after end of batch, have %d", len(rec.got))
	}
	if rec.got[0].Detail != ChildPreRemove || rec.got[1].Detail != ChildRemove {
		t.Errorf("expected emission order to be preserved, have %s, %s",
			rec.got[0].Detail, rec.got[1].Detail)
	}
}

func TestBatchCoalesces(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inkml.notify")
	defer teardown()
	//
	d := NewDispatcher(sameTarget)
	var reg Registry[*event]
	rec := &recorder{}
	reg.Register(Change, rec)
	b := d.Begin()
	d.Notify(&reg, Notification[*event]{Aspect: Change, Detail: NodeChange, Event: &event{"a"}})
	d.Notify(&reg, Notification[*event]{Aspect: Change, Detail: NodeChange, Event: &event{"a"}})
	d.Notify(&reg, Notification[*event]{Aspect: Change, Detail: NodeChange, Event: &event{"b"}})
	b.End()
	if len(rec.got) != 2 {
		t.Errorf("expected equal notifications to coalesce into 2, have %d", len(rec.got))
	}
}

func TestRelayIsSynchronous(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inkml.notify")
	defer teardown()
	//
	d := NewDispatcher[*event](nil)
	var parent, child Registry[*event]
	rec := &recorder{}
	parent.Register(Change, rec)
	relayed := 0
	child.Relay(Change, Func[*event](func(n Notification[*event]) {
		relayed++
		d.Notify(&parent, n)
	}))
	b := d.Begin()
	d.Notify(&child, Notification[*event]{Aspect: Change, Detail: NodeChange, Event: &event{"c"}})
	if relayed != 1 {
		t.Errorf("expected relay to be delivered within the batch")
	}
	if len(rec.got) != 0 {
		t.Errorf("expected external observer to wait for the end of the batch")
	}
	b.End()
	if len(rec.got) != 1 || rec.got[0].Event.target != "c" {
		t.Errorf("expected relayed notification at parent, have %v", rec.got)
	}
}

func TestUnregister(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inkml.notify")
	defer teardown()
	//
	d := NewDispatcher(sameTarget)
	var reg Registry[*event]
	rec := &recorder{}
	id := reg.Register(Change, rec)
	reg.Register(DataChange, rec)
	if reg.Len() != 2 {
		t.Fatalf("expected 2 observers, have %d", reg.Len())
	}
	b := d.Begin()
	d.Notify(&reg, Notification[*event]{Aspect: Change, Detail: NodeChange, Event: &event{"a"}})
	if !reg.Unregister(id) {
		t.Errorf("expected observer to be found")
	}
	b.End()
	if len(rec.got) != 0 {
		t.Errorf("expected pending notification of unregistered observer to be dropped")
	}
	if reg.Unregister(id) {
		t.Errorf("expected second unregister to fail")
	}
	reg.UnregisterAll()
	if reg.Len() != 0 {
		t.Errorf("expected no observers left")
	}
	if Change.String() != "CHANGE" || ChildPreRemove.String() != "CHILD_PRE_REMOVE" {
		t.Errorf("unexpected aspect names")
	}
}

func TestBatchKeepsSeparatedRepetitions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inkml.notify")
	defer teardown()
	//
	d := NewDispatcher(sameTarget)
	var reg Registry[*event]
	rec := &recorder{}
	reg.Register(Change, rec)
	b := d.Begin()
	d.Notify(&reg, Notification[*event]{Aspect: Change, Detail: ChildRemove, Event: &event{"a"}})
	d.Notify(&reg, Notification[*event]{Aspect: Change, Detail: ChildAdd, Event: &event{"a"}})
	d.Notify(&reg, Notification[*event]{Aspect: Change, Detail: ChildRemove, Event: &event{"a"}})
	b.End()
	if len(rec.got) != 3 {
		t.Fatalf("expected 3 notifications, have %d", len(rec.got))
	}
	if rec.got[2].Detail != ChildRemove {
		t.Errorf("expected last notification to be CHILD_REMOVE, is %s", rec.got[2].Detail)
	}
}

func TestAnnounceWithinBatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inkml.notify")
	defer teardown()
	//
	d := NewDispatcher(sameTarget)
	var parent, child Registry[*event]
	rec := &recorder{}
	parent.Register(Change, rec)
	child.Relay(Change, Func[*event](func(n Notification[*event]) {
		d.Notify(&parent, n)
	}))
	b := d.Begin()
	d.Notify(&parent, Notification[*event]{Aspect: Change, Detail: ChildAdd, Event: &event{"a"}})
	d.Announce(&child, Notification[*event]{Aspect: Change, Detail: ChildPreRemove, Event: &event{"b"}})
	if len(rec.got) != 2 {
		t.Fatalf("expected announcement to be delivered at once, have %d notifications", len(rec.got))
	}
	if rec.got[0].Detail != ChildAdd || rec.got[1].Detail != ChildPreRemove {
		t.Errorf("expected held back notification first, have %s, %s", rec.got[0].Detail, rec.got[1].Detail)
	}
	d.Notify(&parent, Notification[*event]{Aspect: Change, Detail: ChildRemove, Event: &event{"b"}})
	if len(rec.got) != 2 || d.Pending() != 1 {
		t.Errorf("expected batch to hold back notifications after an announcement")
	}
	b.End()
	if len(rec.got) != 3 {
		t.Errorf("expected 3 notifications after end of batch, have %d", len(rec.got))
	}
}
