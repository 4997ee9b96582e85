// seehuhn.de/go/certificate - render certificates from a template image
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

package raster

import (
	"math"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// TestTriangleCoverage checks exact coverage for the triangle
// (0,0)→(10,0)→(10,1). The diagonal edge is y = x/10, so pixel X
// is covered by (2X+1)/20.
func TestTriangleCoverage(t *testing.T) {
	tri := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 1}).
		Close()

	f := NewFiller(rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 1})

	coverage := make([]float32, 10)
	f.FillNonZero(tri, func(y, xMin int, cov []float32) {
		if y == 0 {
			copy(coverage[xMin:], cov)
		}
	})

	for x := range 10 {
		want := float32(2*x+1) / 20
		if math.Abs(float64(coverage[x]-want)) > 1e-6 {
			t.Errorf("pixel %d: expected coverage %.4f, got %.4f", x, want, coverage[x])
		}
	}
}

func square(x0, y0, x1, y1 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: x0, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y1}).
		LineTo(vec.Vec2{X: x0, Y: y1}).
		Close()
}

// ring returns two nested squares with the same orientation.
func ring() *path.Data {
	p := square(0, 0, 10, 10)
	p.MoveTo(vec.Vec2{X: 3, Y: 3}).
		LineTo(vec.Vec2{X: 7, Y: 3}).
		LineTo(vec.Vec2{X: 7, Y: 7}).
		LineTo(vec.Vec2{X: 3, Y: 7}).
		Close()
	return p
}

func TestFillRules(t *testing.T) {
	clip := rect.Rect{URx: 10, URy: 10}
	tests := []struct {
		name   string
		fill   func(f *Filler, p *path.Data, emit EmitFunc)
		center float32
	}{
		{"nonzero", (*Filler).FillNonZero, 1},
		{"evenodd", (*Filler).FillEvenOdd, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			grid := make([]float32, 100)
			tc.fill(NewFiller(clip), ring(), func(y, xMin int, cov []float32) {
				copy(grid[y*10+xMin:], cov)
			})
			if got := grid[5*10+5]; got != tc.center {
				t.Errorf("centre coverage: got %g, want %g", got, tc.center)
			}
			if got := grid[1*10+1]; got != 1 {
				t.Errorf("ring coverage: got %g, want 1", got)
			}
		})
	}
}

func TestClipAndTransform(t *testing.T) {
	f := NewFiller(rect.Rect{URx: 4, URy: 4})
	f.CTM = matrix.Matrix{1, 0, 0, 1, 2, 2}

	var rows []int
	total := float32(0)
	f.FillNonZero(square(0, 0, 4, 4), func(y, xMin int, cov []float32) {
		if xMin < 2 {
			t.Errorf("row %d starts at %d, outside the translated square", y, xMin)
		}
		rows = append(rows, y)
		for _, c := range cov {
			total += c
		}
	})

	if len(rows) != 2 || rows[0] != 2 || rows[1] != 3 {
		t.Errorf("rows: got %v, want [2 3]", rows)
	}
	if math.Abs(float64(total-4)) > 1e-5 {
		t.Errorf("total coverage: got %g, want 4", total)
	}
}

func TestCurvesAreFlattened(t *testing.T) {
	// A quarter disc of radius 8, approximated by a single cubic.
	const r = 8.0
	const k = 0.5522847498
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: r, Y: 0}).
		CubeTo(vec.Vec2{X: r, Y: r * k}, vec.Vec2{X: r * k, Y: r}, vec.Vec2{X: 0, Y: r}).
		Close()
	want := math.Pi * r * r / 4
	arc := math.Pi * r / 2

	prev := 0.0
	for _, flatness := range []float64{DefaultFlatness, 0.05, 0.01} {
		f := NewFiller(rect.Rect{URx: r, URy: r})
		f.Flatness = flatness
		var area float64
		f.FillNonZero(p, func(_, _ int, cov []float32) {
			for _, c := range cov {
				area += float64(c)
			}
		})

		// Chords lie inside the arc. Each one cuts off a segment of at
		// most 2/3 of its length times the flatness.
		lost := 2.0 / 3.0 * arc * flatness
		if area < want-lost || area > want+0.05 {
			t.Errorf("flatness %g: area %.3f, want %.3f (-%.3f)", flatness, area, want, lost)
		}
		if area < prev {
			t.Errorf("flatness %g: area %.3f shrank from %.3f", flatness, area, prev)
		}
		prev = area
	}
}

func TestEmptyPath(t *testing.T) {
	f := NewFiller(rect.Rect{URx: 10, URy: 10})
	f.FillNonZero(&path.Data{}, func(int, int, []float32) {
		t.Error("emit called for an empty path")
	})
	// Entirely outside the clip rectangle.
	f.FillNonZero(square(20, 20, 30, 30), func(int, int, []float32) {
		t.Error("emit called for a clipped path")
	})
}
