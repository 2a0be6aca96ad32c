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
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"slices"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/tiling"
)

// Palette holds the fill colours of the preview, indexed by tile id
// modulo the palette length.
var Palette = []color.RGBA{
	{0x4e, 0x79, 0xa7, 0xff},
	{0xf2, 0x8e, 0x2b, 0xff},
	{0xe1, 0x57, 0x59, 0xff},
	{0x76, 0xb7, 0xb2, 0xff},
	{0x59, 0xa1, 0x4f, 0xff},
	{0xed, 0xc9, 0x48, 0xff},
	{0xb0, 0x7a, 0xa1, 0xff},
	{0xff, 0x9d, 0xa7, 0xff},
}

// Preview renders the placements as filled polygons on a white
// background. The matrix view maps model coordinates to pixel
// coordinates, with the y-axis pointing down. All placements of the same
// tile type are drawn in one pass, in the colour Palette[id%len(Palette)].
func Preview(step *tiling.Step, tiles []tiling.Placement, width, height int, view matrix.Matrix) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	if width <= 0 || height <= 0 {
		return img
	}

	byID := make(map[int][]matrix.Matrix)
	for _, pl := range tiles {
		byID[pl.TileID] = append(byID[pl.TileID], pl.Transform)
	}
	ids := make([]int, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	r := vector.NewRasterizer(width, height)
	for _, id := range ids {
		tile := step.Rules[id].Tile
		if tile.IsEmpty() {
			continue
		}

		r.Reset(width, height)
		for _, m := range byID[id] {
			m = m.Mul(view)
			x, y := m.Apply(tile.Corners[0].X, tile.Corners[0].Y)
			r.MoveTo(float32(x), float32(y))
			for _, c := range tile.Corners[1:] {
				x, y = m.Apply(c.X, c.Y)
				r.LineTo(float32(x), float32(y))
			}
			r.ClosePath()
		}

		src := image.NewUniform(Palette[id%len(Palette)])
		r.Draw(img, img.Bounds(), src, image.Point{})
	}
	return img
}

// WritePNG encodes img as a PNG image.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
