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

// Command tileedit is an interactive editor for substitution rules.
//
// The window shows the tile of one rule together with its child
// placements. Placements are selected by clicking and moved by dragging;
// dragged placements snap onto nearby corners unless shift is held.
//
// Keys: Tab edits the next rule, S toggles snapping, P writes the
// expansion of the edited rule set to a PDF file, Escape cancels a drag.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/tiling"
	"seehuhn.de/go/tiling/editor"
	"seehuhn.de/go/tiling/plot"
	"seehuhn.de/go/tiling/samples"
)

const (
	screenW = 800
	screenH = 800
	margin  = 80

	snapFade = 0.6 // seconds
)

var (
	backgroundColor = color.RGBA{0xfa, 0xfa, 0xf5, 0xff}
	baseColor       = color.RGBA{0x80, 0x80, 0x80, 0xff}
	placementColor  = color.RGBA{0x20, 0x40, 0x80, 0xff}
	selectedColor   = color.RGBA{0xe0, 0x60, 0x10, 0xff}
	hoverColor      = color.RGBA{0x40, 0x40, 0x40, 0xff}
	snapColor       = color.RGBA{0x10, 0xa0, 0x40, 0xff}
)

type game struct {
	step    *tiling.Step
	session *editor.Session
	ptr     pointer
	view    matrix.Matrix
	overlay *editor.Overlay

	levels  int
	scale   float64
	pdfName string
	status  string

	snapTween *gween.Tween
	snapPos   vec.Vec2
	snapAlpha float32
}

func main() {
	sampleName := flag.String("sample", "chair", "rule set to edit")
	pdfName := flag.String("o", "tiling.pdf", "file name used by the P key")
	flag.Parse()

	sample, ok := samples.All[*sampleName]
	if !ok {
		log.Fatalf("unknown sample %q", *sampleName)
	}

	g := &game{
		step:    sample.New(),
		session: editor.NewSession(),
		levels:  sample.Levels,
		scale:   sample.InitialScale,
		pdfName: *pdfName,
	}
	g.selectRule(tiling.RootTileID)

	ebiten.SetWindowTitle("tileedit: " + sample.Name)
	ebiten.SetWindowSize(screenW, screenH)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

// selectRule switches to editing rule i and fits the view to its tile.
func (g *game) selectRule(i int) {
	g.session.SetCurrent(i)
	g.ptr = pointer{}

	bounds := rect.Rect{URx: 1, URy: 1}
	if i >= 0 && i < len(g.step.Rules) && !g.step.Rules[i].Tile.IsEmpty() {
		bounds = g.step.Rules[i].Tile.Bounds(matrix.Identity)
	}
	g.view = plot.FitPage(bounds, screenW, screenH, margin)
}

// nextRule returns the index of the first rule after cur whose tile is
// not a placeholder. If there is no other such rule, cur is returned.
func nextRule(step *tiling.Step, cur int) int {
	n := len(step.Rules)
	for k := 1; k <= n; k++ {
		next := (cur + k) % n
		if next < 0 {
			next += n
		}
		if !step.Rules[next].Tile.IsEmpty() {
			return next
		}
	}
	return cur
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) && !g.session.Dragging() {
		g.selectRule(nextRule(g.step, g.session.Current))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.session.Snap = !g.session.Snap
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.session.CancelDrag(g.step)
		g.ptr = pointer{}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		if err := g.writePDF(); err != nil {
			g.status = err.Error()
			log.Print(err)
		} else {
			g.status = "wrote " + g.pdfName
			log.Print(g.status)
		}
	}

	cx, cy := ebiten.CursorPosition()
	pos := vec.Vec2{X: float64(cx), Y: float64(cy)}
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	hit := g.session.HitTest(g.step, g.view, pos)
	f := g.ptr.update(pos, pressed, shift, hit)
	f.View = g.view
	g.overlay = g.session.Update(g.step, f)

	if g.overlay.SnapTarget != nil {
		g.snapPos = *g.overlay.SnapTarget
		g.snapTween = gween.New(1, 0, snapFade, ease.OutQuad)
	}
	if g.snapTween != nil {
		alpha, done := g.snapTween.Update(1 / float32(ebiten.TPS()))
		g.snapAlpha = alpha
		if done {
			g.snapTween = nil
		}
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	if g.overlay == nil {
		return
	}

	for _, o := range g.overlay.Outlines {
		var clr color.Color
		width := float32(1.5)
		switch o.Style {
		case editor.StyleBase:
			clr = baseColor
			width = 3
		case editor.StyleSelected:
			clr = selectedColor
			width = 2.5
		default:
			clr = placementColor
		}
		drawPolygon(screen, o.Points, width, clr)
	}

	for _, r := range g.overlay.Rings {
		clr := hoverColor
		if r.Style == editor.RingSelected {
			clr = selectedColor
		}
		vector.StrokeCircle(screen, float32(r.Center.X), float32(r.Center.Y), float32(r.Radius), 1.5, clr, true)
	}

	if g.snapAlpha > 0 {
		c := snapColor
		c.A = uint8(255 * g.snapAlpha)
		c.R = uint8(float32(c.R) * g.snapAlpha)
		c.G = uint8(float32(c.G) * g.snapAlpha)
		c.B = uint8(float32(c.B) * g.snapAlpha)
		vector.StrokeCircle(screen, float32(g.snapPos.X), float32(g.snapPos.Y), 12, 2, c, true)
	}

	snap := "off"
	if g.session.Snap {
		snap = "on"
	}
	msg := fmt.Sprintf("rule %d, snapping %s\n[Tab] next rule  [S] snapping  [P] write PDF  [Esc] cancel drag",
		g.session.Current, snap)
	if g.status != "" {
		msg += "\n" + g.status
	}
	ebitenutil.DebugPrint(screen, msg)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenW, screenH
}

func drawPolygon(dst *ebiten.Image, pts []vec.Vec2, width float32, clr color.Color) {
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		vector.StrokeLine(dst, float32(p.X), float32(p.Y), float32(q.X), float32(q.Y), width, clr, true)
	}
}

// writePDF expands the rule set from the root tile and writes the result
// to an A4 page.
func (g *game) writePDF() error {
	if err := g.step.Check(); err != nil {
		return err
	}
	tiles, stats := g.step.ExpandRoot(g.levels, &tiling.RootOptions{InitialScale: g.scale})
	if stats.Truncated {
		log.Printf("warning: tile limit reached, output is incomplete")
	}
	bounds, ok := g.step.Bounds(tiles)
	if !ok {
		return fmt.Errorf("nothing to draw")
	}

	const pageW, pageH = 595, 842
	return plot.WritePDF(g.pdfName, g.step.Path(tiles), plot.PageOptions{
		Width:     pageW,
		Height:    pageH,
		Transform: plot.FitPage(bounds, pageW, pageH, 36),
	})
}
