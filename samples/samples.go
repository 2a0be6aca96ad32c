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

// Package samples provides ready-made substitution rule sets.
//
// Every sample keeps tile 0 as an empty placeholder and uses tile 1
// (tiling.RootTileID) as the seed.
package samples

import (
	"maps"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/tiling"
)

// Sample is a named rule set together with suggested drawing parameters.
type Sample struct {
	Name         string // lowercase a-z only
	Levels       int    // suggested number of generations
	InitialScale float64

	// New returns a fresh copy of the rule set, which the caller may
	// modify.
	New func() *tiling.Step
}

// All contains all samples, keyed by name.
var All = map[string]Sample{
	"square":   {Name: "square", Levels: 5, InitialScale: 1, New: Square},
	"rhombus":  {Name: "rhombus", Levels: 5, InitialScale: 1, New: Rhombus},
	"triangle": {Name: "triangle", Levels: 10, InitialScale: 1, New: Triangle},
	"chair":    {Name: "chair", Levels: 5, InitialScale: 0.5, New: Chair},
}

// Names returns the sample names in sorted order.
func Names() []string {
	return slices.Sorted(maps.Keys(All))
}

// Square splits the unit square into four half-size squares.
func Square() *tiling.Step {
	return selfSimilar(2, tiling.Tile{
		Corners: []vec.Vec2{pt(0, 0), pt(0, 1), pt(1, 1), pt(1, 0)},
	},
		scaled(0.5, 0, 0),
		scaled(0.5, 0.5, 0),
		scaled(0.5, 0, 0.5),
		scaled(0.5, 0.5, 0.5),
	)
}

// Rhombus splits a 60° rhombus into four half-size copies.
func Rhombus() *tiling.Step {
	tile := tiling.NewRhombus(1, 60)
	u := tile.Corners[1] // left edge
	v := tile.Corners[3] // right edge
	w := u.Add(v)
	return selfSimilar(2, tile,
		scaled(0.5, 0, 0),
		scaled(0.5, u.X/2, u.Y/2),
		scaled(0.5, v.X/2, v.Y/2),
		scaled(0.5, w.X/2, w.Y/2),
	)
}

// Triangle splits a right isosceles triangle along its altitude into two
// smaller copies. One of the children is mirrored.
func Triangle() *tiling.Step {
	return selfSimilar(math.Sqrt2, tiling.Tile{
		Corners: []vec.Vec2{pt(0, 0), pt(1, 0), pt(0, 1)},
	},
		matrix.Matrix{0.5, -0.5, -0.5, -0.5, 0.5, 0.5},
		matrix.Matrix{-0.5, 0.5, -0.5, -0.5, 0.5, 0.5},
	)
}

// Chair implements the L-tromino ("chair") substitution: an L of three
// unit squares is split into four half-size L shapes, two of them
// rotated by a quarter turn.
func Chair() *tiling.Step {
	return selfSimilar(2, tiling.Tile{
		Corners: []vec.Vec2{pt(0, 0), pt(2, 0), pt(2, 1), pt(1, 1), pt(1, 2), pt(0, 2)},
	},
		scaled(0.5, 0, 0),
		scaled(0.5, 0.5, 0.5),
		matrix.Matrix{0, 0.5, -0.5, 0, 2, 0},
		matrix.Matrix{0, -0.5, 0.5, 0, 0, 2},
	)
}

// selfSimilar builds a rule set with a placeholder tile 0 and a single
// tile type 1 which is replaced by copies of itself.
func selfSimilar(factor float64, tile tiling.Tile, children ...matrix.Matrix) *tiling.Step {
	s := tiling.NewStep()
	s.ExpansionFactor = factor
	rule := tiling.Rule{Tile: tile}
	for _, m := range children {
		rule.Result = append(rule.Result, tiling.Placement{
			TileID:    tiling.RootTileID,
			Transform: m,
		})
	}
	s.Rules = []tiling.Rule{{}, rule}
	return s
}

// scaled returns a uniform scaling by f, followed by a translation.
func scaled(f, dx, dy float64) matrix.Matrix {
	return matrix.Matrix{f, 0, 0, f, dx, dy}
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
