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
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
)

// DefaultPolygonLimit is the number of placements per generation after
// which expansion stops, unless [Options.MaxTiles] says otherwise.
const DefaultPolygonLimit = 1_000_000

// RootTileID is the tile type used as the seed by [Step.ExpandRoot].
// All sample rule sets keep their main tile at this index.
const RootTileID = 1

// Options controls [Step.Expand].
type Options struct {
	// Bounds, if non-nil, restricts expansion to placements whose estimated
	// extent intersects this rectangle. Placements outside are dropped
	// together with all their descendants.
	Bounds *rect.Rect

	// Margin scales the padding used by [Step.EstimateBounds].
	// Zero selects the default of 1.
	Margin float64

	// MaxTiles limits the size of a generation. Zero selects
	// DefaultPolygonLimit, negative values disable the limit.
	MaxTiles int
}

// Stats describes the outcome of an expansion.
type Stats struct {
	// Levels is the number of generations which were computed.
	Levels int

	// Culled counts placements which were dropped because their
	// estimated bounds did not intersect Options.Bounds.
	Culled int

	// Truncated is set if at least one generation was cut short
	// because it reached Options.MaxTiles.
	Truncated bool
}

// ExpandTile appends the children of p to out and returns the extended
// slice. The transform of each child is the rule's relative transform
// followed by the transform of p.
func (s *Step) ExpandTile(p Placement, out []Placement) []Placement {
	rule := &s.Rules[p.TileID]
	for _, child := range rule.Result {
		out = append(out, Placement{
			TileID:    child.TileID,
			Transform: child.Transform.Mul(p.Transform),
		})
	}
	return out
}

// Expand applies the substitution rules levels times, starting from
// input, and returns the final generation. Intermediate generations are
// discarded. The input slice is not modified.
//
// Expansion panics if a placement refers to an invalid tile id.
func (s *Step) Expand(input []Placement, levels int, opt *Options) ([]Placement, Stats) {
	if opt == nil {
		opt = &Options{}
	}
	limit := opt.MaxTiles
	if limit == 0 {
		limit = DefaultPolygonLimit
	}
	margin := opt.Margin
	if margin == 0 {
		margin = 1
	}

	var stats Stats
	cur := append([]Placement(nil), input...)
	var next []Placement
	for range levels {
		next = next[:0]
		for _, p := range cur {
			if opt.Bounds != nil && !overlaps(s.EstimateBounds(p, margin), *opt.Bounds) {
				stats.Culled++
				continue
			}
			next = s.ExpandTile(p, next)
			if limit > 0 && len(next) > limit {
				stats.Truncated = true
				break
			}
		}
		cur, next = next, cur
		stats.Levels++
	}
	return cur, stats
}

// EstimateBounds returns a rectangle which is expected to contain p and
// all of its descendants.
//
// The tight box around the transformed corners (and the origin of the
// placement) is inflated on every side by margin times its own largest
// dimension. This is a heuristic: rule sets whose children reach far
// outside their parent can escape the estimate, in which case bounded
// expansion drops visible tiles. Increase the margin for such rule sets.
func (s *Step) EstimateBounds(p Placement, margin float64) rect.Rect {
	tile := s.Rules[p.TileID].Tile
	m := p.Transform
	r := rect.Rect{LLx: m[4], LLy: m[5], URx: m[4], URy: m[5]}
	if !tile.IsEmpty() {
		b := tile.Bounds(m)
		r.LLx = min(r.LLx, b.LLx)
		r.LLy = min(r.LLy, b.LLy)
		r.URx = max(r.URx, b.URx)
		r.URy = max(r.URy, b.URy)
	}

	pad := margin * max(r.URx-r.LLx, r.URy-r.LLy)
	r.LLx -= pad
	r.LLy -= pad
	r.URx += pad
	r.URy += pad
	return r
}

// RootOptions controls [Step.ExpandRoot].
type RootOptions struct {
	// InitialScale is the scale of the root placement. Zero means 1.
	InitialScale float64

	// ConstantGrain multiplies the initial scale by
	// ExpansionFactor^levels, so that tiles of the final generation have
	// the same size regardless of the number of levels.
	ConstantGrain bool

	// Bounds, if non-nil, is passed on to [Options.Bounds].
	Bounds *rect.Rect

	// Margin is passed on to [Options.Margin].
	Margin float64

	// MaxTiles is passed on to [Options.MaxTiles].
	MaxTiles int
}

// RootScale returns the scale of the root placement used by ExpandRoot.
func (s *Step) RootScale(levels int, opt *RootOptions) float64 {
	scale := 1.0
	if opt != nil && opt.InitialScale != 0 {
		scale = opt.InitialScale
	}
	if opt != nil && opt.ConstantGrain {
		scale *= math.Pow(s.ExpansionFactor, float64(levels))
	}
	return scale
}

// ExpandRoot expands a single placement of tile type RootTileID, scaled
// uniformly about the origin, by the given number of levels.
func (s *Step) ExpandRoot(levels int, opt *RootOptions) ([]Placement, Stats) {
	scale := s.RootScale(levels, opt)
	root := []Placement{{
		TileID:    RootTileID,
		Transform: matrix.Scale(scale, scale),
	}}

	expandOpt := &Options{}
	if opt != nil {
		expandOpt.Bounds = opt.Bounds
		expandOpt.Margin = opt.Margin
		expandOpt.MaxTiles = opt.MaxTiles
	}
	return s.Expand(root, levels, expandOpt)
}
