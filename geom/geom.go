/*
Package geom implements geometric helpers over sequences of ink points.

All functions are pure and operate on slices of points, which callers
usually get by flattening a trace or a whole trace-view subtree. Nothing is
cached; results reflect the points as they are passed in.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package geom

import (
	"fmt"
	"math"

	"github.com/npillmayer/inkml/maybe"
)

// Point is a position on the writing surface, optionally with a timestamp.
type Point struct {
	X, Y  float64
	T     float64
	Timed bool // T is valid
}

// Pt creates an untimed point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// TPt creates a timed point.
func TPt(x, y, t float64) Point {
	return Point{X: x, Y: y, T: t, Timed: true}
}

func (p Point) String() string {
	if p.Timed {
		return fmt.Sprintf("(%g,%g @%g)", p.X, p.Y, p.T)
	}
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Rect is an axis-aligned bounding box.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Width of the box.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height of the box.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Union returns the smallest box containing r and s.
func (r Rect) Union(s Rect) Rect {
	return Rect{
		MinX: math.Min(r.MinX, s.MinX),
		MinY: math.Min(r.MinY, s.MinY),
		MaxX: math.Max(r.MaxX, s.MaxX),
		MaxY: math.Max(r.MaxY, s.MaxY),
	}
}

// Contains is a predicate wether p lies inside r (borders included).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

func (r Rect) String() string {
	return fmt.Sprintf("[%g,%g – %g,%g]", r.MinX, r.MinY, r.MaxX, r.MaxY)
}

// Timespan is a closed interval of time.
type Timespan struct {
	Start, End float64
}

// Union returns the smallest timespan containing s and u.
func (s Timespan) Union(u Timespan) Timespan {
	return Timespan{Start: math.Min(s.Start, u.Start), End: math.Max(s.End, u.End)}
}

// Duration returns End - Start.
func (s Timespan) Duration() float64 {
	return s.End - s.Start
}

func (s Timespan) String() string {
	return fmt.Sprintf("[%g,%g]", s.Start, s.End)
}

// --- Aggregation over point sequences --------------------------------------

// DistanceToPoint returns the smallest distance between any point of pts and p.
// For an empty sequence the distance is +Inf.
func DistanceToPoint(pts []Point, p Point) float64 {
	d := math.Inf(1)
	for _, q := range pts {
		d = math.Min(d, q.Distance(p))
	}
	return d
}

// DistanceTraceToTrace returns the smallest distance between any point of a
// and any point of b. If one of the sequences is empty, the distance is +Inf.
func DistanceTraceToTrace(a, b []Point) float64 {
	d := math.Inf(1)
	for _, p := range a {
		d = math.Min(d, DistanceToPoint(b, p))
	}
	return d
}

// CenterOfGravity returns the mean position of pts.
func CenterOfGravity(pts []Point) maybe.Maybe[Point] {
	if len(pts) == 0 {
		return maybe.Nothing[Point]()
	}
	var sx, sy float64
	for _, p := range pts {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(pts))
	return maybe.Just(Pt(sx/n, sy/n))
}

// BoundsOf returns the bounding box of pts, or Nothing for an empty sequence.
func BoundsOf(pts []Point) maybe.Maybe[Rect] {
	if len(pts) == 0 {
		return maybe.Nothing[Rect]()
	}
	r := Rect{MinX: pts[0].X, MinY: pts[0].Y, MaxX: pts[0].X, MaxY: pts[0].Y}
	for _, p := range pts[1:] {
		r = r.Union(Rect{p.X, p.Y, p.X, p.Y})
	}
	return maybe.Just(r)
}

// TimespanOf returns the interval covered by the timed points of pts. If no
// point carries a timestamp, the result is Nothing.
func TimespanOf(pts []Point) maybe.Maybe[Timespan] {
	span := maybe.Nothing[Timespan]()
	for _, p := range pts {
		if p.Timed {
			span = maybe.Merge(Timespan.Union, span, maybe.Just(Timespan{p.T, p.T}))
		}
	}
	return span
}

// UnionBounds aggregates optional bounding boxes.
func UnionBounds(a, b maybe.Maybe[Rect]) maybe.Maybe[Rect] {
	return maybe.Merge(Rect.Union, a, b)
}

// UnionTimespans aggregates optional timespans.
func UnionTimespans(a, b maybe.Maybe[Timespan]) maybe.Maybe[Timespan] {
	return maybe.Merge(Timespan.Union, a, b)
}
