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

package certificate

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/certificate/raster"
)

// face measures and draws single lines of text.
// Implementations must be safe for concurrent use.
type face interface {
	size() float64
	metrics() font.Metrics
	advance(s string) fixed.Int26_6
	draw(dst *image.RGBA, s string, dot fixed.Point26_6, col color.RGBA)
}

// outlineFace draws glyph outlines of a scalable font.
// Scratch buffers are allocated per call, so the face can be shared.
type outlineFace struct {
	font *sfnt.Font
	px   float64
	ppem fixed.Int26_6
	m    font.Metrics
}

func (f *outlineFace) size() float64 { return f.px }

func (f *outlineFace) metrics() font.Metrics { return f.m }

func (f *outlineFace) advance(s string) fixed.Int26_6 {
	var buf sfnt.Buffer
	var total fixed.Int26_6
	prev := sfnt.GlyphIndex(0)
	for i, r := range s {
		gid, _ := f.font.GlyphIndex(&buf, r)
		if i > 0 {
			if k, err := f.font.Kern(&buf, prev, gid, f.ppem, font.HintingNone); err == nil {
				total += k
			}
		}
		if a, err := f.font.GlyphAdvance(&buf, gid, f.ppem, font.HintingNone); err == nil {
			total += a
		}
		prev = gid
	}
	return total
}

// outline appends the glyph outlines of s to p, with the pen starting at
// (x, y) on the baseline.
func (f *outlineFace) outline(p *path.Data, s string, x, y float64) {
	var buf sfnt.Buffer
	pen := 0.0
	prev := sfnt.GlyphIndex(0)
	pt := func(q fixed.Point26_6) vec.Vec2 {
		return vec.Vec2{X: x + pen + float64(q.X)/64, Y: y + float64(q.Y)/64}
	}

	for i, r := range s {
		gid, _ := f.font.GlyphIndex(&buf, r)
		if i > 0 {
			if k, err := f.font.Kern(&buf, prev, gid, f.ppem, font.HintingNone); err == nil {
				pen += float64(k) / 64
			}
		}

		segs, err := f.font.LoadGlyph(&buf, gid, f.ppem, nil)
		if err == nil {
			open := false
			for _, seg := range segs {
				switch seg.Op {
				case sfnt.SegmentOpMoveTo:
					if open {
						p.Close()
					}
					p.MoveTo(pt(seg.Args[0]))
					open = true
				case sfnt.SegmentOpLineTo:
					p.LineTo(pt(seg.Args[0]))
				case sfnt.SegmentOpQuadTo:
					p.QuadTo(pt(seg.Args[0]), pt(seg.Args[1]))
				case sfnt.SegmentOpCubeTo:
					p.CubeTo(pt(seg.Args[0]), pt(seg.Args[1]), pt(seg.Args[2]))
				}
			}
			if open {
				p.Close()
			}
		}

		if a, err := f.font.GlyphAdvance(&buf, gid, f.ppem, font.HintingNone); err == nil {
			pen += float64(a) / 64
		}
		prev = gid
	}
}

func (f *outlineFace) draw(dst *image.RGBA, s string, dot fixed.Point26_6, col color.RGBA) {
	p := &path.Data{}
	f.outline(p, s, float64(dot.X)/64, float64(dot.Y)/64)

	b := dst.Bounds()
	filler := raster.NewFiller(rect.Rect{
		LLx: float64(b.Min.X),
		LLy: float64(b.Min.Y),
		URx: float64(b.Max.X),
		URy: float64(b.Max.Y),
	})
	filler.FillNonZero(p, func(y, xMin int, coverage []float32) {
		blend(dst, y, xMin, coverage, col)
	})
}

// blend paints col over one row of dst, using coverage as the alpha mask.
func blend(dst *image.RGBA, y, xMin int, coverage []float32, col color.RGBA) {
	i := dst.PixOffset(xMin, y)
	for _, c := range coverage {
		a := c * float32(col.A) / 255
		px := dst.Pix[i : i+4 : i+4]
		px[0] = mix(col.R, px[0], a)
		px[1] = mix(col.G, px[1], a)
		px[2] = mix(col.B, px[2], a)
		px[3] = mix(0xff, px[3], a)
		i += 4
	}
}

func mix(src, dst uint8, a float32) uint8 {
	return uint8(float32(src)*a + float32(dst)*(1-a) + 0.5)
}

// bitmapFace draws with a fixed-size bitmap font.
type bitmapFace struct {
	face font.Face
}

func (f bitmapFace) size() float64 {
	return float64(f.face.Metrics().Height) / 64
}

func (f bitmapFace) metrics() font.Metrics { return f.face.Metrics() }

func (f bitmapFace) advance(s string) fixed.Int26_6 {
	return font.MeasureString(f.face, s)
}

func (f bitmapFace) draw(dst *image.RGBA, s string, dot fixed.Point26_6, col color.RGBA) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: f.face,
		Dot:  dot,
	}
	d.DrawString(s)
}

// anchorDot returns the pen position for drawing s so that the point
// (x, y) lies on the text's anchor: horizontally at the start, middle or
// end of the advance width depending on align, and vertically half way
// between the ascender and the descender line.
func anchorDot(f face, s string, x, y float64, align Align) fixed.Point26_6 {
	m := f.metrics()
	width := float64(f.advance(s)) / 64
	switch align {
	case AlignCenter:
		x -= width / 2
	case AlignRight:
		x -= width
	}
	baseline := y + float64(m.Ascent-m.Descent)/128
	return fixed.Point26_6{
		X: fixed.Int26_6(math.Round(x * 64)),
		Y: fixed.Int26_6(math.Round(baseline * 64)),
	}
}
