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

package editor

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/tiling"
)

// snapPoints returns the candidate points for snapping, in model
// coordinates. Targets are the corners of the rule's own tile and of all
// placements not being dragged; movable points are the corners of the
// dragged placements at their current position.
func snapPoints(step *tiling.Step, rule *tiling.Rule, items []dragItem) (targets, movable []vec.Vec2) {
	dragged := make(map[int]bool, len(items))
	for _, it := range items {
		dragged[it.shape] = true
	}

	targets = appendCorners(targets, rule.Tile, matrix.Identity)
	for j, pl := range rule.Result {
		tile := step.Rules[pl.TileID].Tile
		if dragged[j] {
			movable = appendCorners(movable, tile, pl.Transform)
		} else {
			targets = appendCorners(targets, tile, pl.Transform)
		}
	}
	return targets, movable
}

func appendCorners(pts []vec.Vec2, tile tiling.Tile, m matrix.Matrix) []vec.Vec2 {
	for _, c := range tile.Corners {
		pts = append(pts, apply(m, c))
	}
	return pts
}

// snapOffset finds the closest pair of a movable point and a target point
// with squared distance below SnapRadius². It returns the translation
// which moves the movable point onto the target, and the target itself.
// On ties, the first pair found wins.
func snapOffset(step *tiling.Step, rule *tiling.Rule, items []dragItem) (off, target vec.Vec2, ok bool) {
	targets, movable := snapPoints(step, rule, items)

	best := SnapRadius * SnapRadius
	for _, m := range movable {
		for _, t := range targets {
			d := t.Sub(m)
			if d2 := d.Dot(d); d2 < best {
				best = d2
				off, target, ok = d, t, true
			}
		}
	}
	return off, target, ok
}
