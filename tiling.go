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

// Package tiling generates self-similar substitution tilings.
//
// A [Step] holds one [Rule] per tile type. Each rule lists the child
// placements which replace one instance of its tile in the next generation.
// [Step.Expand] applies the rules generation by generation, and [Step.Path]
// turns the resulting placements into closed polygon outlines.
//
// Transformations use the PDF convention of [matrix.Matrix]: A.Mul(B) maps
// a point by A first and then by B.
package tiling

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Tile is a polygon outline, given by its corners in winding order.
// The outline is closed implicitly.
//
// A tile without corners is a structural placeholder which takes part in
// the substitution but has no visible outline.
type Tile struct {
	Corners []vec.Vec2
}

// NewRhombus returns a rhombus with side length l and opening angle
// angleDeg (in degrees) at the origin. The rhombus is symmetric about the
// y-axis and extends upwards from the origin.
func NewRhombus(l, angleDeg float64) Tile {
	half := angleDeg * math.Pi / 360
	dx := math.Sin(half) * l
	dy := math.Cos(half) * l
	return Tile{
		Corners: []vec.Vec2{
			{X: 0, Y: 0},
			{X: -dx, Y: dy},
			{X: 0, Y: 2 * dy},
			{X: dx, Y: dy},
		},
	}
}

// IsEmpty reports whether the tile is a placeholder without outline.
func (t Tile) IsEmpty() bool {
	return len(t.Corners) == 0
}

// Bounds returns the tight bounding box of the tile corners after
// transformation by m. The result is the zero rectangle for empty tiles.
func (t Tile) Bounds(m matrix.Matrix) rect.Rect {
	if t.IsEmpty() {
		return rect.Rect{}
	}
	x, y := m.Apply(t.Corners[0].X, t.Corners[0].Y)
	r := rect.Rect{LLx: x, LLy: y, URx: x, URy: y}
	for _, c := range t.Corners[1:] {
		r.Add(m.Apply(c.X, c.Y))
	}
	return r
}

// Contains reports whether the point pt lies inside the tile outline,
// after transformation of the tile by m. The even-odd rule is used, so
// self-intersecting outlines are handled consistently.
func (t Tile) Contains(pt vec.Vec2, m matrix.Matrix) bool {
	n := len(t.Corners)
	if n < 3 {
		return false
	}

	inside := false
	prev := apply(m, t.Corners[n-1])
	for _, c := range t.Corners {
		cur := apply(m, c)
		if (cur.Y > pt.Y) != (prev.Y > pt.Y) {
			x := cur.X + (pt.Y-cur.Y)*(prev.X-cur.X)/(prev.Y-cur.Y)
			if pt.X < x {
				inside = !inside
			}
		}
		prev = cur
	}
	return inside
}

// Placement is a positioned instance of a tile type.
//
// TileID indexes the Rules of the owning [Step]. Transform maps the
// tile's local coordinates into the coordinate frame of the parent.
type Placement struct {
	TileID    int
	Transform matrix.Matrix
}

// Rule describes the substitution for one tile type.
//
// The transforms in Result are relative to the frame of the tile being
// replaced. A rule may refer to its own tile type.
type Rule struct {
	Tile   Tile
	Result []Placement
}

// Step is a complete substitution rule set.
type Step struct {
	// Rules holds one rule per tile type, indexed by tile id.
	Rules []Rule

	// ExpansionFactor is the linear growth ratio of one generation.
	// It is used by [Step.ExpandRoot] to keep the apparent tile size
	// independent of the number of generations.
	ExpansionFactor float64
}

// NewStep returns an empty rule set with expansion factor 1.
func NewStep() *Step {
	return &Step{ExpansionFactor: 1}
}

// InvalidTileError reports a child placement which refers to a tile type
// outside the rule set.
type InvalidTileError struct {
	Rule   int // index of the rule containing the placement
	Child  int // index of the placement within Rule.Result
	TileID int
}

func (err *InvalidTileError) Error() string {
	return fmt.Sprintf("rule %d, child %d: invalid tile id %d",
		err.Rule, err.Child, err.TileID)
}

// Check verifies that all tile ids used in the rule set are valid.
// Expansion and path generation panic on invalid ids, so rule sets from
// untrusted sources should be checked first.
func (s *Step) Check() error {
	if !(s.ExpansionFactor > 0) {
		return fmt.Errorf("invalid expansion factor %g", s.ExpansionFactor)
	}
	for i, rule := range s.Rules {
		for j, child := range rule.Result {
			if child.TileID < 0 || child.TileID >= len(s.Rules) {
				return &InvalidTileError{Rule: i, Child: j, TileID: child.TileID}
			}
		}
	}
	return nil
}

func apply(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	x, y := m.Apply(p.X, p.Y)
	return vec.Vec2{X: x, Y: y}
}

// overlaps reports whether a and b share a region of positive area.
func overlaps(a, b rect.Rect) bool {
	return min(a.URx, b.URx) > max(a.LLx, b.LLx) &&
		min(a.URy, b.URy) > max(a.LLy, b.LLy)
}
