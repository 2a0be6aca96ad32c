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

package plot

import (
	"fmt"
	"io"

	"github.com/jbeda/geom"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// DefaultSVGStyle is the style attribute used for all outlines.
const DefaultSVGStyle = "fill: none; stroke: black; stroke-width: 0.5; stroke-linecap: round; stroke-linejoin: round"

// SVG writes SVG elements to an io.Writer. The first write error is
// kept and returned by End.
type SVG struct {
	w   io.Writer
	err error
}

// NewSVG returns a new SVG writer.
func NewSVG(w io.Writer) *SVG {
	return &SVG{w: w}
}

func (svg *SVG) printf(format string, a ...any) {
	if svg.err != nil {
		return
	}
	_, svg.err = fmt.Fprintf(svg.w, format, a...)
}

// Start writes the document header.
func (svg *SVG) Start(viewBox geom.Rect) {
	svg.printf(`<?xml version="1.0"?>
<svg version="1.1"
     width="%gpt" height="%gpt"
     viewBox="%f %f %f %f"
     xmlns="http://www.w3.org/2000/svg">
`, viewBox.Width(), viewBox.Height(),
		viewBox.Min.X, viewBox.Min.Y, viewBox.Width(), viewBox.Height())
}

// Polyline writes an open polyline through pts. A polyline which ends
// at its first point is written as a closed path.
func (svg *SVG) Polyline(pts []vec.Vec2, style string) {
	if len(pts) < 2 {
		return
	}
	svg.printf("<path style='%s' d='M%f,%f", style, pts[0].X, pts[0].Y)
	closed := len(pts) > 2 && near(pts[0], pts[len(pts)-1])
	if closed {
		pts = pts[:len(pts)-1]
	}
	for _, p := range pts[1:] {
		svg.printf("\n  L%f,%f", p.X, p.Y)
	}
	if closed {
		svg.printf(" Z")
	}
	svg.printf("'/>\n")
}

// End writes the document trailer and returns the first error
// encountered.
func (svg *SVG) End() error {
	svg.printf("</svg>\n")
	return svg.err
}

// WriteSVG writes the segments as an SVG document. Consecutive segments
// sharing an end point are joined into a single path element. The
// segments are expected in page coordinates.
func WriteSVG(w io.Writer, segs []Segment, viewBox rect.Rect) error {
	svg := NewSVG(w)
	svg.Start(geom.Rect{
		Min: geom.Coord{X: viewBox.LLx, Y: viewBox.LLy},
		Max: geom.Coord{X: viewBox.URx, Y: viewBox.URy},
	})
	for _, chain := range Chains(segs) {
		svg.Polyline(chain, DefaultSVGStyle)
	}
	return svg.End()
}
