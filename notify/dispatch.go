package notify

// Dispatcher delivers notifications to the observers of registries, holding
// back deliveries to external observers while a batch is open.
type Dispatcher[E any] struct {
	equal   func(a, b E) bool
	depth   int
	urgent  int // > 0 while an announcement is delivered
	pending []delivery[E]
}

type delivery[E any] struct {
	sub *subscription[E]
	n   Notification[E]
}

// NewDispatcher creates a dispatcher. equal decides wether two events are
// equal for the purpose of coalescing pending notifications; if it is nil,
// no coalescing takes place.
func NewDispatcher[E any](equal func(a, b E) bool) *Dispatcher[E] {
	return &Dispatcher[E]{equal: equal}
}

// Batch is a scope of mutations. See Dispatcher.Begin.
type Batch[E any] struct {
	d    *Dispatcher[E]
	done bool
}

// Begin opens a batch. Batches nest; pending notifications are released when
// the outermost batch ends.
func (d *Dispatcher[E]) Begin() *Batch[E] {
	d.depth++
	return &Batch[E]{d: d}
}

// End closes a batch. Calling End more than once has no effect.
func (b *Batch[E]) End() {
	if b == nil || b.done {
		return
	}
	b.done = true
	b.d.depth--
	if b.d.depth == 0 {
		b.d.flush()
	}
}

// Depth returns the number of open batches.
func (d *Dispatcher[E]) Depth() int {
	return d.depth
}

// Pending returns the number of deliveries held back.
func (d *Dispatcher[E]) Pending() int {
	return len(d.pending)
}

// Notify delivers n to all observers of reg registered for n.Aspect.
// Within a batch, deliveries to external observers are held back.
func (d *Dispatcher[E]) Notify(reg *Registry[E], n Notification[E]) {
	if reg == nil {
		return
	}
	for _, sub := range reg.observing(n.Aspect) {
		if !sub.active {
			continue // unregistered by a preceding observer
		}
		if sub.relay || d.depth == 0 || d.urgent > 0 {
			sub.obs.Notify(n)
			continue
		}
		if d.repeats(sub, n) {
			tracer().Debugf("notify: coalescing %s/%s", n.Aspect, n.Detail)
			continue
		}
		d.pending = append(d.pending, delivery[E]{sub: sub, n: n})
	}
}

// Announce delivers n to all observers of reg before returning, even
// within a batch. Notifications held back so far are released first, so
// observers see them in emission order. Announce is used for notifications
// which have to reach observers before the state they describe changes.
func (d *Dispatcher[E]) Announce(reg *Registry[E], n Notification[E]) {
	d.flush()
	d.urgent++
	defer func() { d.urgent-- }()
	d.Notify(reg, n)
}

// repeats is true if the latest delivery pending for sub equals n.
// Only adjacent repetitions coalesce; emission order is never changed.
func (d *Dispatcher[E]) repeats(sub *subscription[E], n Notification[E]) bool {
	if d.equal == nil {
		return false
	}
	for i := len(d.pending) - 1; i >= 0; i-- {
		p := d.pending[i]
		if p.sub != sub {
			continue
		}
		return p.n.Aspect == n.Aspect && p.n.Detail == n.Detail && d.equal(p.n.Event, n.Event)
	}
	return false
}

func (d *Dispatcher[E]) flush() {
	if len(d.pending) == 0 {
		return
	}
	pending := d.pending
	d.pending = nil
	tracer().Debugf("notify: releasing %d notifications", len(pending))
	for _, p := range pending {
		if p.sub.active {
			p.sub.obs.Notify(p.n)
		}
	}
}
