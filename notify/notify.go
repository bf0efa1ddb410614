package notify

import (
	"github.com/google/uuid"
)

// Aspect classifies a notification.
type Aspect int8

// Aspects of changes in a tree.
const (
	DataChange     Aspect = iota + 1 // underlying data changed, shape of the tree unchanged
	ChildPreRemove                   // a child is about to be removed
	ChildAdd                         // a child has been added
	NodeChange                       // annotations of a single node changed
	ChildRemove                      // a child has been removed
	Change                           // envelope, carrying one of the above as detail
)

func (a Aspect) String() string {
	switch a {
	case DataChange:
		return "DATA_CHANGE"
	case ChildPreRemove:
		return "CHILD_PRE_REMOVE"
	case ChildAdd:
		return "CHILD_ADD"
	case NodeChange:
		return "NODE_CHANGE"
	case ChildRemove:
		return "CHILD_REMOVE"
	case Change:
		return "CHANGE"
	}
	return "?"
}

// Notification is delivered to observers. Detail is the specific aspect of
// the change as of emission time. For notifications which are not envelopes,
// Detail equals Aspect.
type Notification[E any] struct {
	Aspect Aspect
	Detail Aspect
	Event  E
}

// Observer receives notifications.
type Observer[E any] interface {
	Notify(Notification[E])
}

// Func adapts a function to an Observer.
type Func[E any] func(Notification[E])

// Notify calls f(n).
func (f Func[E]) Notify(n Notification[E]) {
	f(n)
}

type subscription[E any] struct {
	id     string
	aspect Aspect
	obs    Observer[E]
	relay  bool
	active bool
}

// Registry holds the observers of a single node, in order of registration.
// The zero value is an empty registry.
type Registry[E any] struct {
	subs []*subscription[E]
}

// Register adds an external observer for an aspect and returns an id for
// unregistering it.
func (reg *Registry[E]) Register(aspect Aspect, obs Observer[E]) string {
	return reg.add(aspect, obs, false)
}

// Relay adds an observer which re-announces notifications of a child node.
// Relays are delivered synchronously.
func (reg *Registry[E]) Relay(aspect Aspect, obs Observer[E]) string {
	return reg.add(aspect, obs, true)
}

func (reg *Registry[E]) add(aspect Aspect, obs Observer[E], relay bool) string {
	sub := &subscription[E]{
		id:     uuid.NewString(),
		aspect: aspect,
		obs:    obs,
		relay:  relay,
		active: true,
	}
	reg.subs = append(reg.subs, sub)
	return sub.id
}

// Unregister removes an observer. Notifications pending for it in a batch
// are dropped. It returns false if id is unknown.
func (reg *Registry[E]) Unregister(id string) bool {
	for i, sub := range reg.subs {
		if sub.id == id {
			sub.active = false
			reg.subs = append(reg.subs[:i], reg.subs[i+1:]...)
			return true
		}
	}
	return false
}

// UnregisterAll removes all observers.
func (reg *Registry[E]) UnregisterAll() {
	for _, sub := range reg.subs {
		sub.active = false
	}
	reg.subs = nil
}

// Len returns the number of registered observers.
func (reg *Registry[E]) Len() int {
	return len(reg.subs)
}

// observing returns a snapshot of the subscriptions for an aspect.
func (reg *Registry[E]) observing(aspect Aspect) []*subscription[E] {
	var subs []*subscription[E]
	for _, sub := range reg.subs {
		if sub.aspect == aspect {
			subs = append(subs, sub)
		}
	}
	return subs
}
