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

// Command tiling expands one of the sample rule sets and writes the
// resulting tile outlines as PDF, SVG, PNG or JSON.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/tiling"
	"seehuhn.de/go/tiling/plot"
	"seehuhn.de/go/tiling/samples"
)

func main() {
	sampleName := flag.String("sample", "square", "rule set, one of "+strings.Join(samples.Names(), ", "))
	levels := flag.Int("levels", -1, "number of generations (default: per sample)")
	scale := flag.Float64("scale", 0, "scale of the root tile (default: per sample)")
	constantGrain := flag.Bool("constant-grain", false, "keep the final tile size independent of the number of levels")
	boundsFlag := flag.String("bounds", "", "only expand tiles near the rectangle `x0,y0,x1,y1`")
	marginFactor := flag.Float64("margin-factor", 0, "padding of the culling estimate, in multiples of the tile size (0: default)")
	maxTiles := flag.Int("max", 0, "maximal number of tiles per generation (0: default, <0: unlimited)")
	format := flag.String("format", "pdf", "output format: pdf, svg, png or json")
	width := flag.Float64("width", 595, "page width in points (pixels for png)")
	height := flag.Float64("height", 842, "page height in points (pixels for png)")
	margin := flag.Float64("margin", 36, "page margin in points")
	lineWidth := flag.Float64("line-width", plot.DefaultLineWidth, "pen width in points")
	outName := flag.String("o", "", "output file name (default: tiling.<format>)")
	flag.Parse()

	log.SetFlags(0)

	sample, ok := samples.All[*sampleName]
	if !ok {
		log.Fatalf("unknown sample %q", *sampleName)
	}
	step := sample.New()
	if err := step.Check(); err != nil {
		log.Fatal(err)
	}

	if *levels < 0 {
		*levels = sample.Levels
	}
	if *scale == 0 {
		*scale = sample.InitialScale
	}
	opt := &tiling.RootOptions{
		InitialScale:  *scale,
		ConstantGrain: *constantGrain,
		Margin:        *marginFactor,
		MaxTiles:      *maxTiles,
	}
	if *boundsFlag != "" {
		r, err := parseRect(*boundsFlag)
		if err != nil {
			log.Fatal(err)
		}
		opt.Bounds = &r
	}

	tiles, stats := step.ExpandRoot(*levels, opt)
	outline := step.Path(tiles)
	log.Printf("%s: %d levels, %d tiles (%d outlines), %d culled",
		sample.Name, stats.Levels, len(tiles), tiling.LoopCount(outline), stats.Culled)
	if stats.Truncated {
		log.Printf("warning: tile limit reached, output is incomplete")
	}

	if *outName == "" {
		*outName = "tiling." + *format
	}

	// the page shows the requested region, or everything that was generated
	var view rect.Rect
	if opt.Bounds != nil {
		view = *opt.Bounds
	} else if r, ok := step.Bounds(tiles); ok {
		view = r
	} else {
		log.Fatal("nothing to draw")
	}
	pageMatrix := plot.FitPage(view, *width, *height, *margin)

	var err error
	switch *format {
	case "pdf":
		err = plot.WritePDF(*outName, outline, plot.PageOptions{
			Width:     *width,
			Height:    *height,
			LineWidth: *lineWidth,
			Transform: pageMatrix,
		})
	case "svg":
		err = writeSVG(*outName, outline, pageMatrix, *width, *height)
	case "png":
		err = writePNG(*outName, step, tiles, pageMatrix, *width, *height)
	case "json":
		err = writeJSON(*outName, sample.Name, step, tiles, stats)
	default:
		err = fmt.Errorf("unknown format %q", *format)
	}
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s", *outName)
}

// parseRect parses a rectangle given as "x0,y0,x1,y1".
func parseRect(s string) (rect.Rect, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return rect.Rect{}, fmt.Errorf("invalid bounds %q: need four numbers", s)
	}
	var v [4]float64
	for i, p := range parts {
		x, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return rect.Rect{}, fmt.Errorf("invalid bounds %q: %w", s, err)
		}
		v[i] = x
	}
	r := rect.Rect{
		LLx: min(v[0], v[2]),
		LLy: min(v[1], v[3]),
		URx: max(v[0], v[2]),
		URy: max(v[1], v[3]),
	}
	if r.URx == r.LLx || r.URy == r.LLy {
		return rect.Rect{}, fmt.Errorf("invalid bounds %q: empty rectangle", s)
	}
	return r, nil
}

func writeSVG(fileName string, outline *path.Data, m matrix.Matrix, w, h float64) (err error) {
	segs := plot.Segments(path.DataFromPath(outline.Iter().Transform(m)))
	uniq := plot.Dedupe(segs)
	log.Printf("%d segments, %d after removing shared edges", len(segs), len(uniq))

	f, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	return plot.WriteSVG(f, uniq, rect.Rect{URx: w, URy: h})
}

func writePNG(fileName string, step *tiling.Step, tiles []tiling.Placement, m matrix.Matrix, w, h float64) (err error) {
	img := plot.Preview(step, tiles, int(w), int(h), m)

	f, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	return plot.WritePNG(f, img)
}

type jsonOutput struct {
	Sample    string         `json:"sample"`
	Levels    int            `json:"levels"`
	Culled    int            `json:"culled,omitempty"`
	Truncated bool           `json:"truncated,omitempty"`
	Tiles     []jsonTile     `json:"tiles"`
	Shapes    [][][2]float64 `json:"shapes"`
}

type jsonTile struct {
	ID        int        `json:"id"`
	Transform [6]float64 `json:"transform"`
}

func writeJSON(fileName, name string, step *tiling.Step, tiles []tiling.Placement, stats tiling.Stats) (err error) {
	out := jsonOutput{
		Sample:    name,
		Levels:    stats.Levels,
		Culled:    stats.Culled,
		Truncated: stats.Truncated,
		Tiles:     make([]jsonTile, len(tiles)),
	}
	for i, pl := range tiles {
		out.Tiles[i] = jsonTile{ID: pl.TileID, Transform: pl.Transform}
	}
	for _, rule := range step.Rules {
		corners := make([][2]float64, len(rule.Tile.Corners))
		for i, c := range rule.Tile.Corners {
			corners[i] = [2]float64{c.X, c.Y}
		}
		out.Shapes = append(out.Shapes, corners)
	}

	f, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
