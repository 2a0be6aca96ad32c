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
)

// Response is the state of one interactive region during one frame, as
// reported by the GUI toolkit hosting the editor.
type Response struct {
	Hovered     bool // the pointer is over the region
	Clicked     bool // the region was clicked (pressed and released without dragging)
	DragStarted bool // a drag gesture started on the region
	Dragging    bool // a drag gesture which started on the region is in progress
}

// Frame collects the input for one call to [Session.Update].
type Frame struct {
	// Pointer is the pointer position in screen coordinates.
	Pointer vec.Vec2

	// Shift is set while a shift key is held down.
	Shift bool

	// View maps model coordinates to screen coordinates.
	// It must be invertible.
	View matrix.Matrix

	// Background is the response of the empty canvas area.
	Background Response

	// Corner returns the response for corner i of placement j of the
	// edited rule. A nil function means no interaction.
	Corner func(j, i int) Response

	// Shape returns the response for the silhouette of placement j.
	// A nil function means no interaction.
	Shape func(j int) Response
}

func (f *Frame) corner(j, i int) Response {
	if f.Corner == nil {
		return Response{}
	}
	return f.Corner(j, i)
}

func (f *Frame) shape(j int) Response {
	if f.Shape == nil {
		return Response{}
	}
	return f.Shape(j)
}
