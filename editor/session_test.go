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
	"slices"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/tiling"
)

// view maps model (x, y) to screen (64x+256, 256-64y). All coordinates
// used in the tests are dyadic, so that the arithmetic is exact.
var view = matrix.Matrix{64, 0, 0, -64, 256, 256}

// testStep returns a rule set with one rule: the unit square, split into
// four half-size squares at (0,0), (0.5,0), (0,0.5) and (0.5,0.5).
func testStep() *tiling.Step {
	rule := tiling.Rule{
		Tile: tiling.Tile{Corners: []vec.Vec2{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}}},
	}
	for _, off := range []vec.Vec2{{X: 0, Y: 0}, {X: 0.5, Y: 0}, {X: 0, Y: 0.5}, {X: 0.5, Y: 0.5}} {
		rule.Result = append(rule.Result, tiling.Placement{
			TileID:    0,
			Transform: matrix.Matrix{0.5, 0, 0, 0.5, off.X, off.Y},
		})
	}
	s := tiling.NewStep()
	s.ExpansionFactor = 2
	s.Rules = []tiling.Rule{rule}
	return s
}

func screen(x, y float64) vec.Vec2 {
	return apply(view, vec.Vec2{X: x, Y: y})
}

// clickShape returns a frame in which placement j is clicked.
func clickShape(j int, shift bool) *Frame {
	return &Frame{
		View:  view,
		Shift: shift,
		Shape: func(k int) Response { return Response{Clicked: k == j} },
	}
}

func clickCorner(j, i int, shift bool) *Frame {
	return &Frame{
		View:   view,
		Shift:  shift,
		Corner: func(k, l int) Response { return Response{Clicked: k == j && l == i} },
	}
}

// dragFrame returns a frame in which a drag on placement j is in
// progress, with the pointer at ptr.
func dragFrame(j int, ptr vec.Vec2, started, shift bool) *Frame {
	return &Frame{
		Pointer: ptr,
		View:    view,
		Shift:   shift,
		Shape: func(k int) Response {
			if k != j {
				return Response{}
			}
			return Response{DragStarted: started, Dragging: true}
		},
	}
}

func shapes(t *testing.T, sel Selection) []int {
	t.Helper()
	s, ok := sel.(ShapeSelection)
	if !ok {
		t.Fatalf("expected shape selection, got %#v", sel)
	}
	return s.Shapes
}

func TestShapeSelection(t *testing.T) {
	step := testStep()
	s := NewSession()

	s.Update(step, clickShape(1, false))
	if got := shapes(t, s.Selection); !slices.Equal(got, []int{1}) {
		t.Fatalf("after click: %v", got)
	}

	s.Update(step, clickShape(3, true))
	if got := shapes(t, s.Selection); !slices.Equal(got, []int{1, 3}) {
		t.Fatalf("after shift-click: %v", got)
	}

	s.Update(step, clickShape(1, true))
	if got := shapes(t, s.Selection); !slices.Equal(got, []int{3}) {
		t.Fatalf("after second shift-click: %v", got)
	}

	s.Update(step, clickShape(2, false))
	if got := shapes(t, s.Selection); !slices.Equal(got, []int{2}) {
		t.Fatalf("after plain click: %v", got)
	}

	s.Update(step, clickShape(2, true))
	if _, ok := s.Selection.(NoSelection); !ok {
		t.Errorf("expected empty selection, got %#v", s.Selection)
	}
}

func TestCornerSelection(t *testing.T) {
	step := testStep()
	s := NewSession()

	check := func(shape int, corners ...int) {
		t.Helper()
		sel, ok := s.Selection.(PointSelection)
		if !ok {
			t.Fatalf("expected point selection, got %#v", s.Selection)
		}
		if sel.Shape != shape || !slices.Equal(sel.Corners, corners) {
			t.Fatalf("got shape %d corners %v, want shape %d corners %v",
				sel.Shape, sel.Corners, shape, corners)
		}
	}

	s.Update(step, clickCorner(2, 1, false))
	check(2, 1)

	s.Update(step, clickCorner(2, 3, true))
	check(2, 1, 3)

	s.Update(step, clickCorner(2, 0, true))
	check(2, 1, 3, 0)

	s.Update(step, clickCorner(2, 3, true))
	check(2, 1, 0)

	// shift on a different placement starts a new selection
	s.Update(step, clickCorner(1, 2, true))
	check(1, 2)

	s.Update(step, clickCorner(0, 0, false))
	check(0, 0)
}

func TestBackgroundClick(t *testing.T) {
	step := testStep()
	s := NewSession()
	s.Update(step, clickShape(0, false))

	// background and shape clicked in the same frame: the shape wins
	f := clickShape(1, false)
	f.Background = Response{Clicked: true}
	s.Update(step, f)
	if got := shapes(t, s.Selection); !slices.Equal(got, []int{1}) {
		t.Fatalf("got %v", got)
	}

	// shift-click on the background keeps the selection
	s.Update(step, &Frame{View: view, Shift: true, Background: Response{Clicked: true}})
	if _, ok := s.Selection.(ShapeSelection); !ok {
		t.Fatalf("selection lost: %#v", s.Selection)
	}

	s.Update(step, &Frame{View: view, Background: Response{Clicked: true}})
	if _, ok := s.Selection.(NoSelection); !ok {
		t.Errorf("expected empty selection, got %#v", s.Selection)
	}
}

func TestDragThreshold(t *testing.T) {
	step := testStep()
	s := NewSession()
	s.Snap = false
	orig := step.Rules[0].Result[3].Transform

	start := vec.Vec2{X: 300, Y: 200}
	s.Update(step, dragFrame(3, start, true, false))
	if got := shapes(t, s.Selection); !slices.Equal(got, []int{3}) {
		t.Fatalf("drag did not select: %v", got)
	}

	for _, d := range []vec.Vec2{{X: 1, Y: 0}, {X: 2, Y: 1}, {X: 3, Y: -2}, {X: 4, Y: 3}, {X: 0, Y: 5}} {
		s.Update(step, dragFrame(3, start.Add(d), false, false))
		if step.Rules[0].Result[3].Transform != orig {
			t.Fatalf("placement moved below threshold at %v", d)
		}
		if s.Dragging() {
			t.Fatalf("drag activated below threshold at %v", d)
		}
	}

	// crossing the threshold applies the full displacement
	s.Update(step, dragFrame(3, start.Add(vec.Vec2{X: 6, Y: -4}), false, false))
	want := orig.Translate(6.0/64, 4.0/64)
	if got := step.Rules[0].Result[3].Transform; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}

	// moving back inside the threshold circle keeps the drag active
	s.Update(step, dragFrame(3, start.Add(vec.Vec2{X: 2, Y: 0}), false, false))
	want = orig.Translate(2.0/64, 0)
	if got := step.Rules[0].Result[3].Transform; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}

	// repeating a frame gives the same result
	s.Update(step, dragFrame(3, start.Add(vec.Vec2{X: 2, Y: 0}), false, false))
	if got := step.Rules[0].Result[3].Transform; got != want {
		t.Fatalf("repeated frame: got %v, want %v", got, want)
	}

	// releasing ends the drag
	s.Update(step, &Frame{View: view})
	if s.drag != nil {
		t.Error("drag state not cleared")
	}
}

func TestDragSelection(t *testing.T) {
	step := testStep()
	s := NewSession()
	s.Snap = false
	s.Update(step, clickShape(0, false))
	s.Update(step, clickShape(2, true))

	orig := slices.Clone(step.Rules[0].Result)
	start := screen(0.25, 0.25)
	s.Update(step, dragFrame(0, start, true, false))
	s.Update(step, dragFrame(0, start.Add(vec.Vec2{X: 32, Y: 0}), false, false))

	for j, pl := range step.Rules[0].Result {
		want := orig[j].Transform
		if j == 0 || j == 2 {
			want = want.Translate(0.5, 0)
		}
		if pl.Transform != want {
			t.Errorf("placement %d: got %v, want %v", j, pl.Transform, want)
		}
	}
	if got := shapes(t, s.Selection); !slices.Equal(got, []int{0, 2}) {
		t.Errorf("selection changed: %v", got)
	}
}

func TestShiftDragRefused(t *testing.T) {
	step := testStep()
	s := NewSession()
	s.Snap = false
	s.Update(step, clickShape(0, false))
	orig := step.Rules[0].Result[1].Transform

	start := screen(0.75, 0.25)
	s.Update(step, dragFrame(1, start, true, true))
	s.Update(step, dragFrame(1, start.Add(vec.Vec2{X: 20, Y: 0}), false, true))

	if step.Rules[0].Result[1].Transform != orig {
		t.Error("shift-drag moved an unselected placement")
	}
	if got := shapes(t, s.Selection); !slices.Equal(got, []int{0}) {
		t.Errorf("selection changed: %v", got)
	}
}

func TestCancelDrag(t *testing.T) {
	step := testStep()
	s := NewSession()
	s.Snap = false
	orig := step.Rules[0].Result[3].Transform

	start := screen(0.75, 0.75)
	s.Update(step, dragFrame(3, start, true, false))
	s.Update(step, dragFrame(3, start.Add(vec.Vec2{X: 40, Y: 10}), false, false))
	if step.Rules[0].Result[3].Transform == orig {
		t.Fatal("placement did not move")
	}

	s.CancelDrag(step)
	if step.Rules[0].Result[3].Transform != orig {
		t.Error("placement not restored")
	}
	if s.Dragging() {
		t.Error("drag still active")
	}
}

func TestSnap(t *testing.T) {
	step := testStep()
	s := NewSession()

	start := screen(0.75, 0.75)
	s.Update(step, dragFrame(3, start, true, false))

	// move by (0.515625, 0.03125) in model space: the corner at (0.5, 0.5)
	// ends up near (1, 0.5)
	ov := s.Update(step, dragFrame(3, start.Add(vec.Vec2{X: 33, Y: -2}), false, false))
	m := step.Rules[0].Result[3].Transform
	corner := apply(m, vec.Vec2{X: 0, Y: 0})
	if d := corner.Sub(vec.Vec2{X: 1, Y: 0.5}).Length(); d > 1e-12 {
		t.Errorf("corner at %v, distance %g from target", corner, d)
	}
	if ov.SnapTarget == nil {
		t.Fatal("snap target not reported")
	}
	if *ov.SnapTarget != screen(1, 0.5) && *ov.SnapTarget != screen(1, 1) {
		t.Errorf("unexpected snap target %v", *ov.SnapTarget)
	}

	// with shift held, the raw drag position stands
	ov = s.Update(step, dragFrame(3, start.Add(vec.Vec2{X: 33, Y: -2}), false, true))
	if ov.SnapTarget != nil {
		t.Error("snapped with shift held")
	}
	want := matrix.Matrix{0.5, 0, 0, 0.5, 0.5, 0.5}.Translate(33.0/64, 2.0/64)
	if got := step.Rules[0].Result[3].Transform; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestNoSnapOutsideRadius(t *testing.T) {
	step := testStep()
	s := NewSession()

	start := screen(0.75, 0.75)
	s.Update(step, dragFrame(3, start, true, false))

	// (0.15625, 0) away from the original position: the nearest
	// candidate pair is 0.15625 apart
	ov := s.Update(step, dragFrame(3, start.Add(vec.Vec2{X: 10, Y: 0}), false, false))
	if ov.SnapTarget != nil {
		t.Errorf("unexpected snap to %v", *ov.SnapTarget)
	}
	want := matrix.Matrix{0.5, 0, 0, 0.5, 0.5, 0.5}.Translate(10.0/64, 0)
	if got := step.Rules[0].Result[3].Transform; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSnapOffset(t *testing.T) {
	step := testStep()
	rule := &step.Rules[0]
	rule.Result[3].Transform = matrix.Matrix{0.5, 0, 0, 0.5, 0.5 + 0.03, 0.5}
	items := []dragItem{{shape: 3}}

	off, target, ok := snapOffset(step, rule, items)
	if !ok {
		t.Fatal("expected snap")
	}
	if off.X > -0.029 || off.X < -0.031 || off.Y != 0 {
		t.Errorf("unexpected offset %v", off)
	}
	if target.X != 0.5 && target.X != 1 {
		t.Errorf("unexpected target %v", target)
	}

	// well outside the snap radius
	rule.Result[3].Transform = matrix.Matrix{0.5, 0, 0, 0.5, 0.5 + 0.25, 0.5}
	if _, _, ok := snapOffset(step, rule, items); ok {
		t.Error("unexpected snap")
	}
}

func TestOutOfRange(t *testing.T) {
	step := testStep()
	s := NewSession()
	for _, cur := range []int{-1, 1, 5} {
		s.Current = cur
		ov := s.Update(step, clickShape(0, false))
		if len(ov.Outlines) != 0 || len(ov.Rings) != 0 {
			t.Errorf("current=%d: expected empty overlay", cur)
		}
		if _, ok := s.Selection.(NoSelection); !ok {
			t.Errorf("current=%d: selection changed", cur)
		}
		if s.Targets(step, view) != nil {
			t.Errorf("current=%d: expected no targets", cur)
		}
	}
	s.Update(nil, &Frame{View: view})
}

func TestOverlay(t *testing.T) {
	step := testStep()
	s := NewSession()
	s.Update(step, clickShape(2, false))

	f := &Frame{
		View:   view,
		Corner: func(j, i int) Response { return Response{Hovered: j == 1 && i == 2} },
	}
	ov := s.Update(step, f)
	if len(ov.Outlines) != 5 {
		t.Fatalf("expected 5 outlines, got %d", len(ov.Outlines))
	}
	if ov.Outlines[0].Style != StyleBase {
		t.Error("first outline should be the base tile")
	}
	for j, o := range ov.Outlines[1:] {
		want := StylePlacement
		if j == 2 {
			want = StyleSelected
		}
		if o.Style != want {
			t.Errorf("outline %d: style %d, want %d", j, o.Style, want)
		}
	}
	if len(ov.Rings) != 1 || ov.Rings[0].Style != RingHover || ov.Rings[0].Center != screen(1, 0.5) {
		t.Errorf("unexpected rings %v", ov.Rings)
	}

	s.Update(step, clickCorner(0, 1, false))
	ov = s.Update(step, &Frame{View: view})
	if len(ov.Rings) != 1 || ov.Rings[0].Style != RingSelected || ov.Rings[0].Center != screen(0, 0.5) {
		t.Errorf("unexpected rings %v", ov.Rings)
	}
}

func TestSetCurrent(t *testing.T) {
	step := testStep()
	step.Rules = append(step.Rules, step.Rules[0])
	s := NewSession()
	s.Update(step, clickShape(1, false))
	s.Update(step, dragFrame(1, screen(0.75, 0.25), true, false))

	s.SetCurrent(1)
	if _, ok := s.Selection.(NoSelection); !ok {
		t.Error("selection not cleared")
	}
	if s.drag != nil {
		t.Error("drag not cleared")
	}
}
