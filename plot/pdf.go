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

// Package plot writes tile outlines to files: PDF and SVG for pen
// plotters, and PNG for quick previews.
//
// Page coordinates have the origin in the top-left corner and the y-axis
// pointing down. Use [FitPage] to map model coordinates onto a page.
package plot

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"
)

// DefaultLineWidth is the pen width in points used when
// PageOptions.LineWidth is zero.
const DefaultLineWidth = 0.5

// PageOptions describes the page for [WritePDF].
type PageOptions struct {
	Width, Height float64 // page size in points

	// LineWidth is the stroke width in points.
	LineWidth float64

	// Transform maps path coordinates to page coordinates. The zero
	// matrix is treated as the identity.
	Transform matrix.Matrix
}

// FitPage returns a transformation which maps the model rectangle bounds
// onto a page of the given size, leaving at least margin points on every
// side. The aspect ratio is preserved and the model y-axis is flipped, so
// that model "up" is up on the page.
func FitPage(bounds rect.Rect, width, height, margin float64) matrix.Matrix {
	bw := bounds.URx - bounds.LLx
	bh := bounds.URy - bounds.LLy
	if !(bw > 0) || !(bh > 0) {
		return matrix.Identity
	}
	s := math.Min((width-2*margin)/bw, (height-2*margin)/bh)
	ox := (width - s*bw) / 2
	oy := (height - s*bh) / 2
	return matrix.Matrix{s, 0, 0, -s, ox - s*bounds.LLx, oy + s*bounds.URy}
}

// WritePDF writes the outline p to a single-page PDF file.
func WritePDF(fileName string, p *path.Data, opt PageOptions) error {
	paper := &pdf.Rectangle{
		URx: opt.Width,
		URy: opt.Height,
	}
	page, err := document.CreateSinglePage(fileName, paper, pdf.V1_7, nil)
	if err != nil {
		return fmt.Errorf("create %q: %w", fileName, err)
	}

	// PDF origin is bottom-left, page coordinates are top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, opt.Height})

	lw := opt.LineWidth
	if lw <= 0 {
		lw = DefaultLineWidth
	}
	page.SetStrokeColor(color.DeviceGray(0))
	page.SetLineWidth(lw)
	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)

	m := opt.Transform
	if m == (matrix.Matrix{}) {
		m = matrix.Identity
	}

	// The transformation is applied to the coordinates instead of the
	// graphics state, so that the line width is not scaled.
	if drawPath(page, p, m) {
		page.Stroke()
	}

	if err := page.Close(); err != nil {
		return fmt.Errorf("write %q: %w", fileName, err)
	}
	return nil
}

// pathBuilder receives the path construction operators of a PDF content
// stream.
type pathBuilder interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CurveTo(x1, y1, x2, y2, x3, y3 float64)
	ClosePath()
}

// drawPath emits p, transformed by m, to b. Quadratic segments are
// converted to cubic ones, since PDF has no quadratic curves.
// The return value reports whether anything was emitted.
func drawPath(b pathBuilder, p *path.Data, m matrix.Matrix) bool {
	if len(p.Cmds) == 0 {
		return false
	}
	for cmd, pts := range p.Iter().Transform(m).ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			b.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			b.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			b.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			b.ClosePath()
		}
	}
	return true
}
