// seehuhn.de/go/tiling - substitution tilings for plotter art
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package plot

import (
	"math"
	"slices"

	"github.com/jbeda/geom"
	"github.com/jbeda/geom/qtree"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Eps is the tolerance used when comparing segment end points.
const Eps = 1e-9

// Segment is a straight line from A to B.
type Segment struct {
	A, B vec.Vec2
}

// Equal reports whether s and o connect the same two points, in either
// direction, up to Eps.
func (s Segment) Equal(o Segment) bool {
	return (near(s.A, o.A) && near(s.B, o.B)) ||
		(near(s.A, o.B) && near(s.B, o.A))
}

func near(a, b vec.Vec2) bool {
	return math.Abs(a.X-b.X) < Eps && math.Abs(a.Y-b.Y) < Eps
}

// Segments splits the straight parts of p into individual segments,
// including the closing segment of every closed subpath. Curves and
// zero-length segments are skipped.
func Segments(p *path.Data) []Segment {
	var res []Segment
	var current, subpath vec.Vec2
	for cmd, pts := range p.Iter() {
		switch cmd {
		case path.CmdMoveTo:
			current = pts[0]
			subpath = current
		case path.CmdLineTo:
			if pts[0] != current {
				res = append(res, Segment{A: current, B: pts[0]})
			}
			current = pts[0]
		case path.CmdQuadTo, path.CmdCubeTo:
			current = pts[len(pts)-1]
		case path.CmdClose:
			if current != subpath {
				res = append(res, Segment{A: current, B: subpath})
			}
			current = subpath
		}
	}
	return res
}

// segItem is a segment stored in the quadtree. The sequence number
// records the position of the segment in the input.
type segItem struct {
	Segment
	seq int
}

func coord(v vec.Vec2) geom.Coord {
	return geom.Coord{X: v.X, Y: v.Y}
}

// Bounds returns the bounding box of the segment, widened by Eps so that
// nearly equal segments are found by the quadtree.
func (s segItem) Bounds() geom.Rect {
	r := geom.Rect{Min: coord(s.A), Max: coord(s.A)}
	r.ExpandToContainCoord(coord(s.B))
	r.Min = geom.Coord{X: r.Min.X - Eps, Y: r.Min.Y - Eps}
	r.Max = geom.Coord{X: r.Max.X + Eps, Y: r.Max.Y + Eps}
	return r
}

func (s segItem) Equals(oi interface{}) bool {
	o, ok := oi.(segItem)
	return ok && s.Segment.Equal(o.Segment)
}

// Dedupe removes repeated segments, so that edges shared by neighbouring
// tiles are drawn only once. Two segments are the same if they connect
// the same points, in either direction. The first occurrence of every
// segment is kept, and the input order is preserved.
func Dedupe(segs []Segment) []Segment {
	if len(segs) == 0 {
		return nil
	}

	allBounds := geom.NilRect()
	items := make([]segItem, len(segs))
	for i, s := range segs {
		items[i] = segItem{Segment: s, seq: i}
		allBounds.ExpandToContainRect(items[i].Bounds())
	}
	// keep the root cell non-degenerate for axis-parallel input
	allBounds.Min = geom.Coord{X: allBounds.Min.X - 1, Y: allBounds.Min.Y - 1}
	allBounds.Max = geom.Coord{X: allBounds.Max.X + 1, Y: allBounds.Max.Y + 1}

	qt := qtree.New(qtree.ConfigDefault(), allBounds)
	for _, it := range items {
		qt.FindOrInsert(it)
	}

	col := make(map[qtree.Item]bool)
	qt.Enumerate(col)
	kept := make([]segItem, 0, len(col))
	for item := range col {
		kept = append(kept, item.(segItem))
	}
	slices.SortFunc(kept, func(a, b segItem) int { return a.seq - b.seq })

	res := make([]Segment, len(kept))
	for i, it := range kept {
		res[i] = it.Segment
	}
	return res
}

// Chains joins consecutive segments which share an end point into
// polylines. The first point of every chain is followed by the end
// points of its segments.
func Chains(segs []Segment) [][]vec.Vec2 {
	var res [][]vec.Vec2
	var cur []vec.Vec2
	for _, s := range segs {
		if len(cur) > 0 && near(cur[len(cur)-1], s.A) {
			cur = append(cur, s.B)
			continue
		}
		if len(cur) > 0 {
			res = append(res, cur)
		}
		cur = []vec.Vec2{s.A, s.B}
	}
	if len(cur) > 0 {
		res = append(res, cur)
	}
	return res
}
