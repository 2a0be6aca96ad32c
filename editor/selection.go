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

import "slices"

// Selection is the set of selected elements of the edited rule.
// It is one of [NoSelection], [PointSelection] or [ShapeSelection].
type Selection interface {
	isSelection()
}

// NoSelection means that nothing is selected.
type NoSelection struct{}

func (NoSelection) isSelection() {}

// PointSelection is a set of corners of a single placement.
type PointSelection struct {
	Shape   int   // index into Rule.Result
	Corners []int // corner indices, in the order they were selected
}

func (PointSelection) isSelection() {}

// ShapeSelection is a set of placements.
type ShapeSelection struct {
	Shapes []int // indices into Rule.Result, in the order they were selected
}

func (ShapeSelection) isSelection() {}

// shapeSelected reports whether placement j is part of a shape selection.
func shapeSelected(sel Selection, j int) bool {
	s, ok := sel.(ShapeSelection)
	return ok && slices.Contains(s.Shapes, j)
}

// cornerSelected reports whether corner i of placement j is part of a
// point selection.
func cornerSelected(sel Selection, j, i int) bool {
	s, ok := sel.(PointSelection)
	return ok && s.Shape == j && slices.Contains(s.Corners, i)
}

// toggle adds x to list if missing, and removes it otherwise.
// The input slice is not modified.
func toggle(list []int, x int) []int {
	if idx := slices.Index(list, x); idx >= 0 {
		return slices.Delete(slices.Clone(list), idx, idx+1)
	}
	return append(slices.Clone(list), x)
}
