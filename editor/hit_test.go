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
	"testing"

	"seehuhn.de/go/geom/vec"
)

func TestTargets(t *testing.T) {
	step := testStep()
	s := NewSession()

	targets := s.Targets(step, view)
	if len(targets) != 20 {
		t.Fatalf("got %d targets, want 20", len(targets))
	}
	for k, tg := range targets {
		want := TargetCorner
		if k >= 16 {
			want = TargetShape
		}
		if tg.Kind != want {
			t.Errorf("target %d: kind %d, want %d", k, tg.Kind, want)
		}
	}

	box := targets[16+3].Box
	if box.LLx != 288 || box.URx != 320 || box.LLy != 192 || box.URy != 224 {
		t.Errorf("unexpected box for placement 3: %v", box)
	}
}

func TestHitTest(t *testing.T) {
	step := testStep()
	s := NewSession()

	type testCase struct {
		name   string
		pt     vec.Vec2
		kind   TargetKind
		shape  int
		corner int
	}
	cases := []testCase{
		{"inside placement 0", screen(0.25, 0.25), TargetShape, 0, 0},
		{"inside placement 3", screen(0.75, 0.875), TargetShape, 3, 0},
		{"shared corner", screen(0.5, 0.5), TargetCorner, 3, 0},
		{"near corner", screen(0.5, 0.5).Add(vec.Vec2{X: 3, Y: -3}), TargetCorner, 3, 0},
		{"outer corner", screen(1, 0), TargetCorner, 1, 3},
		{"background", screen(3, 3), TargetNone, 0, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := s.HitTest(step, view, c.pt)
			if got.Kind != c.kind {
				t.Fatalf("kind %d, want %d", got.Kind, c.kind)
			}
			if got.Kind == TargetNone {
				return
			}
			if got.Shape != c.shape {
				t.Errorf("shape %d, want %d", got.Shape, c.shape)
			}
			if got.Kind == TargetCorner && got.Corner != c.corner {
				t.Errorf("corner %d, want %d", got.Corner, c.corner)
			}
		})
	}
}

func TestHitTestOutOfRange(t *testing.T) {
	step := testStep()
	s := NewSession()
	s.SetCurrent(5)
	if got := s.HitTest(step, view, screen(0.25, 0.25)); got.Kind != TargetNone {
		t.Errorf("got %#v", got)
	}
	if targets := s.Targets(step, view); targets != nil {
		t.Errorf("got %d targets", len(targets))
	}
}
