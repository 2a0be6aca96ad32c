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

package main

import (
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/tiling/editor"
)

// pointer tracks the state of the left mouse button between frames and
// turns it into the per-region responses expected by the editor.
type pointer struct {
	down     bool
	start    vec.Vec2      // position at press time
	target   editor.Target // region under the pointer at press time
	dragging bool          // moved beyond the dead zone since the press
}

// update advances the pointer state by one frame. The region under the
// pointer is given by hit.
//
// A press on a placement starts a drag gesture immediately, the editor
// applies its own dead zone. A release without leaving the dead zone is
// a click on the region which was pressed.
func (p *pointer) update(pos vec.Vec2, pressed, shift bool, hit editor.Target) *editor.Frame {
	region := p.target
	var clicked, started, held bool

	switch {
	case pressed && !p.down:
		p.down = true
		p.start = pos
		p.target = hit
		p.dragging = false
		region = hit
		started = hit.Kind == editor.TargetShape
		held = started
	case pressed && p.down:
		if pos.Sub(p.start).Length() > editor.DragThreshold {
			p.dragging = true
		}
		held = p.target.Kind == editor.TargetShape
	case !pressed && p.down:
		clicked = !p.dragging
		p.down = false
		p.dragging = false
		p.target = editor.Target{}
	}
	hovering := !pressed && !clicked

	return &editor.Frame{
		Pointer: pos,
		Shift:   shift,
		Background: editor.Response{
			Hovered: hovering && hit.Kind == editor.TargetNone,
			Clicked: clicked && region.Kind == editor.TargetNone,
		},
		Corner: func(j, i int) editor.Response {
			var r editor.Response
			if hit.Kind == editor.TargetCorner && hit.Shape == j && hit.Corner == i {
				r.Hovered = hovering
			}
			if region.Kind == editor.TargetCorner && region.Shape == j && region.Corner == i {
				r.Clicked = clicked
			}
			return r
		},
		Shape: func(j int) editor.Response {
			var r editor.Response
			if hit.Kind == editor.TargetShape && hit.Shape == j {
				r.Hovered = hovering
			}
			if region.Kind == editor.TargetShape && region.Shape == j {
				r.Clicked = clicked
				r.DragStarted = started
				r.Dragging = held
			}
			return r
		},
	}
}
