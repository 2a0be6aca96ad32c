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
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/tiling"
)

// CornerSize is the side length, in screen units, of the square hit
// region around each corner.
const CornerSize = 8.0

// TargetKind identifies the type of an interactive region.
type TargetKind int

const (
	TargetNone   TargetKind = iota // the background
	TargetCorner                   // a corner of a placement
	TargetShape                    // the silhouette of a placement
)

// Target is an interactive region of the editor canvas.
type Target struct {
	Kind   TargetKind
	Shape  int // index into Rule.Result
	Corner int // corner index, for TargetCorner only

	// Box is the screen-space bounding box of the region. For shapes,
	// the silhouette itself is smaller than the box.
	Box rect.Rect
}

// Targets lists the interactive regions of the edited rule, in drawing
// order: the corners of all placements first, followed by the
// silhouettes of all placements. The result is empty if Current is out
// of range.
func (s *Session) Targets(step *tiling.Step, view matrix.Matrix) []Target {
	rule := s.rule(step)
	if rule == nil {
		return nil
	}

	var res []Target
	for j, pl := range rule.Result {
		for i, c := range step.Rules[pl.TileID].Tile.Corners {
			p := apply(view, apply(pl.Transform, c))
			res = append(res, Target{
				Kind:   TargetCorner,
				Shape:  j,
				Corner: i,
				Box: rect.Rect{
					LLx: p.X - CornerSize/2,
					LLy: p.Y - CornerSize/2,
					URx: p.X + CornerSize/2,
					URy: p.Y + CornerSize/2,
				},
			})
		}
	}
	for j, pl := range rule.Result {
		tile := step.Rules[pl.TileID].Tile
		if tile.IsEmpty() {
			continue
		}
		res = append(res, Target{
			Kind:  TargetShape,
			Shape: j,
			Box:   tile.Bounds(pl.Transform.Mul(view)),
		})
	}
	return res
}

// HitTest returns the topmost interactive region under the screen
// position pt. Corners take precedence over silhouettes, and later
// placements over earlier ones. If nothing is hit, the result has kind
// TargetNone.
func (s *Session) HitTest(step *tiling.Step, view matrix.Matrix, pt vec.Vec2) Target {
	rule := s.rule(step)
	if rule == nil {
		return Target{}
	}

	targets := s.Targets(step, view)
	for k := len(targets) - 1; k >= 0; k-- {
		t := targets[k]
		if t.Kind == TargetCorner && inside(t.Box, pt) {
			return t
		}
	}

	model := apply(view.Inv(), pt)
	for k := len(targets) - 1; k >= 0; k-- {
		t := targets[k]
		if t.Kind != TargetShape || !inside(t.Box, pt) {
			continue
		}
		pl := rule.Result[t.Shape]
		if step.Rules[pl.TileID].Tile.Contains(model, pl.Transform) {
			return t
		}
	}
	return Target{}
}

func inside(r rect.Rect, p vec.Vec2) bool {
	return p.X >= r.LLx && p.X <= r.URx && p.Y >= r.LLy && p.Y <= r.URy
}
