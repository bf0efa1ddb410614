package view

import (
	"fmt"

	"github.com/npillmayer/inkml/notify"
)

// TreeEvent describes a change of a view tree. Target is the view the event
// concerns, Children are the views added or removed, if any.
//
// The event for the removal of a child is emitted twice, with detail
// ChildPreRemove before and with detail ChildRemove after the tree is
// modified. Both notifications carry the identical event, whose Aspect is
// ChildRemove; consumers may use it to correlate the state before and
// after the removal. Events are not modified after emission.
type TreeEvent struct {
	Aspect   notify.Aspect
	Target   *View
	Children []*View
}

// Notification is a change notification of a view tree.
type Notification = notify.Notification[*TreeEvent]

// Observer is an observer of view trees.
type Observer = notify.Observer[*TreeEvent]

// ObserverFunc adapts a function to an Observer.
type ObserverFunc = notify.Func[*TreeEvent]

func (ev *TreeEvent) String() string {
	return fmt.Sprintf("event(%s, %v, #children=%d)", ev.Aspect, ev.Target, len(ev.Children))
}

// Equal reports wether two events have the same aspect, the same target
// and the same set of children.
func (ev *TreeEvent) Equal(other *TreeEvent) bool {
	if ev == other {
		return true
	}
	if ev == nil || other == nil {
		return false
	}
	if ev.Aspect != other.Aspect || ev.Target != other.Target || len(ev.Children) != len(other.Children) {
		return false
	}
	set := make(map[*View]bool, len(ev.Children))
	for _, ch := range ev.Children {
		set[ch] = true
	}
	for _, ch := range other.Children {
		if !set[ch] {
			return false
		}
	}
	return true
}

func eventsEqual(a, b *TreeEvent) bool {
	return a.Equal(b)
}
