package view

import (
	"sort"

	"github.com/npillmayer/inkml"
)

// Compare orders views chronologically by the start time of their earliest
// sample. Views without timed samples sort first. Distinct views starting at
// the same time are ordered by creation, as configured with the document's
// tie-break policy; Compare returns 0 only for identical views.
func Compare(a, b *View) int {
	if a == b {
		return 0
	}
	sa, oka := a.TimeSpan().Get()
	sb, okb := b.TimeSpan().Get()
	switch {
	case !oka && !okb:
		return tieBreak(a, b)
	case !oka:
		return -1
	case !okb:
		return 1
	case sa.Start < sb.Start:
		return -1
	case sa.Start > sb.Start:
		return 1
	}
	return tieBreak(a, b)
}

func tieBreak(a, b *View) int {
	c := 0
	if a.serial < b.serial {
		c = -1
	} else if a.serial > b.serial {
		c = 1
	}
	if a.doc.Config.TieBreak == inkml.TieBreakReverse {
		return -c
	}
	return c
}

// CompareTo compares v to o, see Compare.
func (v *View) CompareTo(o *View) int {
	return Compare(v, o)
}

// Sort sorts views chronologically, see Compare.
func Sort(views []*View) {
	sort.SliceStable(views, func(i, j int) bool {
		return Compare(views[i], views[j]) < 0
	})
}
