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

// Style selects how an outline is drawn.
type Style int

const (
	StyleBase      Style = iota // the tile of the edited rule
	StylePlacement              // an unselected child placement
	StyleSelected               // a child placement in the shape selection
)

// RingStyle selects how a corner marker is drawn.
type RingStyle int

const (
	RingHover RingStyle = iota
	RingSelected
)

// Radii of the corner markers, in screen units.
const (
	hoverRadius    = 7
	selectedRadius = 8
)

// Outline is a closed polygon in screen coordinates.
type Outline struct {
	Points []vec.Vec2
	Style  Style
}

// Ring is a circular corner marker in screen coordinates.
type Ring struct {
	Center vec.Vec2
	Radius float64
	Style  RingStyle
}

// Overlay is the visual feedback for one frame. All coordinates are in
// screen space. The overlay does not influence the editing state.
type Overlay struct {
	Outlines []Outline
	Rings    []Ring

	// SnapTarget is the point the selection was snapped to in this frame,
	// or nil if no snapping took place.
	SnapTarget *vec.Vec2
}

func (ov *Overlay) addOutline(tile tiling.Tile, m, view matrix.Matrix, style Style) {
	if tile.IsEmpty() {
		return
	}
	pts := make([]vec.Vec2, len(tile.Corners))
	for i, c := range tile.Corners {
		pts[i] = apply(view, apply(m, c))
	}
	ov.Outlines = append(ov.Outlines, Outline{Points: pts, Style: style})
}
