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

package tiling

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
)

// AppendPath adds the outline of t, transformed by m, to p as a closed
// subpath and returns p. Empty tiles leave p unchanged.
func (t Tile) AppendPath(p *path.Data, m matrix.Matrix) *path.Data {
	if t.IsEmpty() {
		return p
	}
	p = p.MoveTo(apply(m, t.Corners[0]))
	for _, c := range t.Corners[1:] {
		p = p.LineTo(apply(m, c))
	}
	return p.Close()
}

// Path returns the outline of t, transformed by m.
func (t Tile) Path(m matrix.Matrix) *path.Data {
	return t.AppendPath(&path.Data{}, m)
}

// AppendPath adds one closed subpath per placement to p and returns p.
// Subpaths appear in the order of tiles. Placements of empty tiles
// contribute nothing.
func (s *Step) AppendPath(p *path.Data, tiles []Placement) *path.Data {
	for _, pl := range tiles {
		p = s.Rules[pl.TileID].Tile.AppendPath(p, pl.Transform)
	}
	return p
}

// Path returns the outlines of all placements as a single path.
func (s *Step) Path(tiles []Placement) *path.Data {
	return s.AppendPath(&path.Data{}, tiles)
}

// Bounds returns the bounding box of the outlines of all placements.
// The second return value is false if no placement has a visible tile.
func (s *Step) Bounds(tiles []Placement) (rect.Rect, bool) {
	var r rect.Rect
	found := false
	for _, pl := range tiles {
		tile := s.Rules[pl.TileID].Tile
		if tile.IsEmpty() {
			continue
		}
		b := tile.Bounds(pl.Transform)
		if !found {
			r = b
			found = true
			continue
		}
		r.Add(b.LLx, b.LLy)
		r.Add(b.URx, b.URy)
	}
	return r, found
}

// LoopCount returns the number of closed subpaths in p.
func LoopCount(p *path.Data) int {
	n := 0
	for _, cmd := range p.Cmds {
		if cmd == path.CmdClose {
			n++
		}
	}
	return n
}
