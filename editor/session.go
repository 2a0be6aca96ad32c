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

// Package editor implements the interaction logic of the rule editor.
//
// A [Session] edits the child placements of one rule of a [tiling.Step].
// The hosting GUI calls [Session.Update] once per frame, passing the
// pointer state and the hit test results for all interactive regions in
// a [Frame]. The session updates its selection, moves dragged placements,
// and returns an [Overlay] describing the visual feedback.
//
// A Session is not safe for concurrent use.
package editor

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/tiling"
)

// DragThreshold is the pointer travel, in screen units, which turns a
// press into a drag.
const DragThreshold = 5.0

// SnapRadius is the maximal distance, in model units, over which a
// dragged selection is snapped onto a nearby corner.
const SnapRadius = 0.04

// Session holds the editing state which persists between frames.
type Session struct {
	// Current is the index of the edited rule. Use SetCurrent to change
	// the edited rule.
	Current int

	// Selection is the current selection. It is never nil after the
	// first call to Update.
	Selection Selection

	// Snap enables snapping of dragged placements to nearby corners.
	// Holding shift suppresses snapping.
	Snap bool

	drag *dragState
}

// dragState records a drag gesture in progress.
type dragState struct {
	start  vec.Vec2 // pointer position at drag start, in screen coordinates
	items  []dragItem
	active bool // the pointer has left the threshold circle
}

// dragItem is the transform of a selected placement at drag start.
type dragItem struct {
	shape     int
	transform matrix.Matrix
}

// NewSession returns a session editing rule 0, with snapping enabled.
func NewSession() *Session {
	return &Session{
		Selection: NoSelection{},
		Snap:      true,
	}
}

// SetCurrent switches to editing rule i. The selection is cleared and
// any drag in progress is abandoned.
func (s *Session) SetCurrent(i int) {
	s.Current = i
	s.Selection = NoSelection{}
	s.drag = nil
}

// Dragging reports whether a drag has moved placements in the current
// gesture.
func (s *Session) Dragging() bool {
	return s.drag != nil && s.drag.active
}

// CancelDrag restores the placements moved by the current drag to their
// positions at drag start, and ends the drag.
func (s *Session) CancelDrag(step *tiling.Step) {
	if s.drag == nil {
		return
	}
	if rule := s.rule(step); rule != nil {
		for _, it := range s.drag.items {
			if it.shape < len(rule.Result) {
				rule.Result[it.shape].Transform = it.transform
			}
		}
	}
	s.drag = nil
}

// rule returns the edited rule, or nil if Current is out of range.
func (s *Session) rule(step *tiling.Step) *tiling.Rule {
	if step == nil || s.Current < 0 || s.Current >= len(step.Rules) {
		return nil
	}
	return &step.Rules[s.Current]
}

// Update processes one frame of user input and returns the visual
// feedback for the frame.
//
// Corner clicks are processed first, followed by clicks and drags on
// placements, the movement of dragged placements (including snapping),
// and finally clicks on the background.
//
// If Current does not refer to a rule of step, nothing is changed and
// the returned overlay is empty.
func (s *Session) Update(step *tiling.Step, f *Frame) *Overlay {
	ov := &Overlay{}
	if s.Selection == nil {
		s.Selection = NoSelection{}
	}
	rule := s.rule(step)
	if rule == nil {
		s.drag = nil
		return ov
	}

	handled := false

	var hovered [][2]int
	for j, pl := range rule.Result {
		tile := step.Rules[pl.TileID].Tile
		for i := range tile.Corners {
			r := f.corner(j, i)
			if r.Hovered {
				hovered = append(hovered, [2]int{j, i})
			}
			if r.Clicked {
				s.clickCorner(j, i, f.Shift)
				handled = true
			}
		}
	}

	dragging := false
	for j := range rule.Result {
		r := f.shape(j)
		if r.Clicked {
			s.clickShape(j, f.Shift)
			handled = true
		}
		if r.DragStarted {
			s.startDrag(rule, j, f)
			handled = true
		}
		if r.Dragging || r.DragStarted {
			dragging = true
			handled = true
		}
	}

	if s.drag != nil {
		if dragging {
			s.applyDrag(step, rule, f, ov)
		} else {
			s.drag = nil
		}
	}

	if f.Background.Clicked && !f.Shift && !handled {
		s.Selection = NoSelection{}
	}

	ov.addOutline(rule.Tile, matrix.Identity, f.View, StyleBase)
	for j, pl := range rule.Result {
		style := StylePlacement
		if shapeSelected(s.Selection, j) {
			style = StyleSelected
		}
		ov.addOutline(step.Rules[pl.TileID].Tile, pl.Transform, f.View, style)
	}
	for _, h := range hovered {
		ov.Rings = append(ov.Rings, Ring{
			Center: s.cornerPos(step, rule, h[0], h[1], f.View),
			Radius: hoverRadius,
			Style:  RingHover,
		})
	}
	for j, pl := range rule.Result {
		for i := range step.Rules[pl.TileID].Tile.Corners {
			if !cornerSelected(s.Selection, j, i) {
				continue
			}
			ov.Rings = append(ov.Rings, Ring{
				Center: s.cornerPos(step, rule, j, i, f.View),
				Radius: selectedRadius,
				Style:  RingSelected,
			})
		}
	}

	return ov
}

// cornerPos returns the screen position of corner i of placement j.
func (s *Session) cornerPos(step *tiling.Step, rule *tiling.Rule, j, i int, view matrix.Matrix) vec.Vec2 {
	pl := rule.Result[j]
	c := step.Rules[pl.TileID].Tile.Corners[i]
	return apply(view, apply(pl.Transform, c))
}

// clickCorner updates the selection after a click on corner i of
// placement j. With shift, the corner is toggled within the selected
// corners of the same placement.
func (s *Session) clickCorner(j, i int, shift bool) {
	sel, ok := s.Selection.(PointSelection)
	if !shift || !ok || sel.Shape != j {
		s.Selection = PointSelection{Shape: j, Corners: []int{i}}
		return
	}

	corners := toggle(sel.Corners, i)
	if len(corners) == 0 {
		s.Selection = NoSelection{}
		return
	}
	s.Selection = PointSelection{Shape: j, Corners: corners}
}

// clickShape updates the selection after a click on placement j.
// With shift, the placement is toggled within the shape selection.
func (s *Session) clickShape(j int, shift bool) {
	sel, ok := s.Selection.(ShapeSelection)
	if !shift || !ok {
		s.Selection = ShapeSelection{Shapes: []int{j}}
		return
	}

	shapes := toggle(sel.Shapes, j)
	if len(shapes) == 0 {
		s.Selection = NoSelection{}
		return
	}
	s.Selection = ShapeSelection{Shapes: shapes}
}

// startDrag begins dragging the selection after a drag gesture started
// on placement j. An unselected placement replaces the selection, unless
// shift is held, in which case no drag is started.
func (s *Session) startDrag(rule *tiling.Rule, j int, f *Frame) {
	sel, ok := s.Selection.(ShapeSelection)
	if !ok || !shapeSelected(sel, j) {
		if f.Shift {
			return
		}
		sel = ShapeSelection{Shapes: []int{j}}
		s.Selection = sel
	}

	d := &dragState{start: f.Pointer}
	for _, k := range sel.Shapes {
		if k < len(rule.Result) {
			d.items = append(d.items, dragItem{shape: k, transform: rule.Result[k].Transform})
		}
	}
	s.drag = d
}

// applyDrag moves the dragged placements according to the pointer
// position of the frame. Placements are always positioned relative to
// their transform at drag start.
func (s *Session) applyDrag(step *tiling.Step, rule *tiling.Rule, f *Frame, ov *Overlay) {
	d := s.drag
	if !d.active {
		if f.Pointer.Sub(d.start).Length() <= DragThreshold {
			return
		}
		d.active = true
	}

	inv := f.View.Inv()
	delta := apply(inv, f.Pointer).Sub(apply(inv, d.start))
	for _, it := range d.items {
		if it.shape < len(rule.Result) {
			rule.Result[it.shape].Transform = it.transform.Translate(delta.X, delta.Y)
		}
	}

	if !s.Snap || f.Shift {
		return
	}
	off, target, ok := snapOffset(step, rule, d.items)
	if !ok {
		return
	}
	for _, it := range d.items {
		if it.shape < len(rule.Result) {
			pl := &rule.Result[it.shape]
			pl.Transform = pl.Transform.Translate(off.X, off.Y)
		}
	}
	screen := apply(f.View, target)
	ov.SnapTarget = &screen
}

func apply(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	x, y := m.Apply(p.X, p.Y)
	return vec.Vec2{X: x, Y: y}
}
