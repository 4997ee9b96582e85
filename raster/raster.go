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

// Package raster fills vector outlines with anti-aliased coverage.
//
// The certificate renderer uses it to paint TrueType glyph outlines: a whole
// line of text is collected into one path and filled in a single pass, so
// overlapping glyphs never darken each other.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// EmitFunc receives the coverage of one scanline, starting at pixel xMin.
// Values range from 0 (outside) to 1 (inside). The slice is only valid
// for the duration of the call.
type EmitFunc func(y, xMin int, coverage []float32)

type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64
}

// Filler converts paths to per-pixel coverage.
// A Filler keeps its buffers between calls and is not safe for concurrent
// use; the renderer creates one per drawn line.
type Filler struct {
	// CTM maps path coordinates to device pixels.
	CTM matrix.Matrix

	// Clip limits output to this device rectangle.
	// Coordinates must be integers.
	Clip rect.Rect

	// Flatness is the maximal deviation, in device pixels, when curves
	// are replaced by line segments.
	Flatness float64

	cover  []float32
	area   []float32
	edges  []edge
	active []int

	bboxEmpty    bool
	bxMin, bxMax float64
	byMin, byMax float64
}

// NewFiller returns a Filler for the given clip rectangle, with the identity
// transformation and the default flatness.
func NewFiller(clip rect.Rect) *Filler {
	return &Filler{
		CTM:      matrix.Identity,
		Clip:     clip,
		Flatness: DefaultFlatness,
	}
}

// Reset changes the clip rectangle and restores the identity transformation.
// Internal buffers are kept.
func (f *Filler) Reset(clip rect.Rect) {
	f.CTM = matrix.Identity
	f.Clip = clip
	if f.Flatness <= 0 {
		f.Flatness = DefaultFlatness
	}
}

// FillNonZero fills p using the nonzero winding rule.
func (f *Filler) FillNonZero(p *path.Data, emit EmitFunc) {
	f.fill(p, integrateNonZero, emit)
}

// FillEvenOdd fills p using the even-odd rule.
func (f *Filler) FillEvenOdd(p *path.Data, emit EmitFunc) {
	f.fill(p, integrateEvenOdd, emit)
}

func (f *Filler) fill(p *path.Data, integrate func(cover, area []float32), emit EmitFunc) {
	xMin, xMax, yMin, yMax, ok := f.collect(p)
	if !ok {
		return
	}
	width := xMax - xMin
	f.cover = slices.Grow(f.cover[:0], width)[:width]
	f.area = slices.Grow(f.area[:0], width)[:width]

	slices.SortFunc(f.edges, func(a, b edge) int {
		return cmp.Compare(min(a.y0, a.y1), min(b.y0, b.y1))
	})

	f.active = f.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		top, bot := float64(y), float64(y+1)

		for next < len(f.edges) && min(f.edges[next].y0, f.edges[next].y1) < bot {
			f.active = append(f.active, next)
			next++
		}
		if len(f.active) == 0 {
			continue
		}

		clear(f.cover)
		clear(f.area)
		touched := false
		for i := 0; i < len(f.active); {
			e := &f.edges[f.active[i]]
			if max(e.y0, e.y1) <= top {
				f.active[i] = f.active[len(f.active)-1]
				f.active = f.active[:len(f.active)-1]
				continue
			}
			if accumulate(e, y, f.cover, f.area, xMin, xMax) {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		integrate(f.cover, f.area)
		if row, offset := trim(f.cover); row != nil {
			emit(y, xMin+offset, row)
		}
	}
}

// collect flattens p into device-space edges and returns the integer
// bounding box of the result, clamped to the clip rectangle.
func (f *Filler) collect(p *path.Data) (xMin, xMax, yMin, yMax int, ok bool) {
	f.edges = f.edges[:0]
	f.bboxEmpty = true

	var cur, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			cur = p.Coords[k]
			start = cur
			k++
		case path.CmdLineTo:
			f.addEdge(cur, p.Coords[k])
			cur = p.Coords[k]
			k++
		case path.CmdQuadTo:
			f.flattenQuad(cur, p.Coords[k], p.Coords[k+1])
			cur = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			f.flattenCube(cur, p.Coords[k], p.Coords[k+1], p.Coords[k+2])
			cur = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if cur != start {
				f.addEdge(cur, start)
			}
			cur = start
		}
	}
	if len(f.edges) == 0 {
		return 0, 0, 0, 0, false
	}

	xMin = max(int(math.Floor(f.bxMin)), int(f.Clip.LLx))
	xMax = min(int(math.Floor(f.bxMax))+1, int(f.Clip.URx))
	yMin = max(int(math.Floor(f.byMin)), int(f.Clip.LLy))
	yMax = min(int(math.Floor(f.byMax))+1, int(f.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

func (f *Filler) device(p vec.Vec2) vec.Vec2 {
	m := f.CTM
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

func (f *Filler) linear(v vec.Vec2) vec.Vec2 {
	m := f.CTM
	return vec.Vec2{X: m[0]*v.X + m[2]*v.Y, Y: m[1]*v.X + m[3]*v.Y}
}

func (f *Filler) addEdge(from, to vec.Vec2) {
	a := f.device(from)
	b := f.device(to)
	dy := b.Y - a.Y
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	f.edges = append(f.edges, edge{
		x0: a.X, y0: a.Y,
		x1: b.X, y1: b.Y,
		dxdy: (b.X - a.X) / dy,
	})

	if f.bboxEmpty {
		f.bxMin, f.bxMax = a.X, a.X
		f.byMin, f.byMax = a.Y, a.Y
		f.bboxEmpty = false
	}
	f.bxMin = min(f.bxMin, a.X, b.X)
	f.bxMax = max(f.bxMax, a.X, b.X)
	f.byMin = min(f.byMin, a.Y, b.Y)
	f.byMax = max(f.byMax, a.Y, b.Y)
}

// flattenQuad replaces a quadratic Bézier by line segments.
func (f *Filler) flattenQuad(p0, p1, p2 vec.Vec2) {
	dev := f.linear(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)).Length()
	n := 1
	if dev > f.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / f.Flatness)))
	}
	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		q := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		f.addEdge(prev, q)
		prev = q
	}
}

// flattenCube replaces a cubic Bézier by line segments, using Wang's
// formula for the segment count.
func (f *Filler) flattenCube(p0, p1, p2, p3 vec.Vec2) {
	d1 := f.linear(p0.Sub(p1.Mul(2)).Add(p2)).Length()
	d2 := f.linear(p1.Sub(p2.Mul(2)).Add(p3)).Length()
	n := 1
	if m := max(d1, d2); m > 0 {
		if k := math.Sqrt(3 * m / (4 * f.Flatness)); k > 1 {
			n = int(math.Ceil(k))
		}
	}
	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		q := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		f.addEdge(prev, q)
		prev = q
	}
}

// accumulate adds the part of e inside scanline y to the cover and area
// buffers, which are indexed by x-xMin. Contributions left of the buffer
// are folded into the first cell. It reports whether anything was added.
//
// For every pixel crossed, cover receives the signed vertical extent of
// the crossing and area receives cover weighted by the uncovered fraction
// of the pixel to the left of the edge. Integration from the left then
// gives the signed area of the shape inside each pixel.
func accumulate(e *edge, y int, cover, area []float32, xMin, xMax int) bool {
	top := max(float64(y), min(e.y0, e.y1))
	bot := min(float64(y+1), max(e.y0, e.y1))
	if bot <= top {
		return false
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xa := e.x0 + e.dxdy*(top-e.y0)
	xb := e.x0 + e.dxdy*(bot-e.y0)
	pl := int(math.Floor(min(xa, xb)))
	pr := int(math.Floor(max(xa, xb)))

	if pr < xMin {
		c := sign * float32(bot-top)
		cover[0] += c
		area[0] += c
		return true
	}
	if pl >= xMax {
		return false
	}

	add := func(pix int, y0, y1 float64) {
		c := sign * float32(y1-y0)
		switch {
		case pix < xMin:
			cover[0] += c
			area[0] += c
		case pix < xMax:
			xm := e.x0 + e.dxdy*((y0+y1)/2-e.y0)
			cover[pix-xMin] += c
			area[pix-xMin] += c * float32(1-(xm-float64(pix)))
		}
	}

	if pl == pr {
		add(pl, top, bot)
		return true
	}

	dydx := 1 / e.dxdy
	for pix := pl; pix <= pr; pix++ {
		ya := e.y0 + dydx*(float64(pix)-e.x0)
		yb := e.y0 + dydx*(float64(pix+1)-e.x0)
		lo := max(min(ya, yb), top)
		hi := min(max(ya, yb), bot)
		if hi > lo {
			add(pix, lo, hi)
		}
	}
	return true
}

// integrateNonZero turns cover/area into coverage in place.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		cover[i] = min(v, 1)
	}
}

// integrateEvenOdd turns cover/area into coverage in place.
func integrateEvenOdd(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		m := v - 2*float32(int(v/2))
		d := 1 - m
		if d < 0 {
			d = -d
		}
		cover[i] = 1 - d
	}
}

// trim strips zero coverage from both ends of a row.
func trim(row []float32) ([]float32, int) {
	lo, hi := 0, len(row)
	for lo < hi && row[lo] == 0 {
		lo++
	}
	if lo == hi {
		return nil, 0
	}
	for row[hi-1] == 0 {
		hi--
	}
	return row[lo:hi], lo
}

// DefaultFlatness is the curve tolerance in device pixels used by NewFiller.
const DefaultFlatness = 0.25

// horizontalEdgeThreshold is the smallest vertical extent of an edge that
// still contributes coverage.
const horizontalEdgeThreshold = 1e-10
