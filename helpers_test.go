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

package certificate_test

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/image/draw"
	"golang.org/x/image/font/gofont/goregular"

	"seehuhn.de/go/certificate"
)

var colorBlack = color.RGBA{A: 0xff}

// whiteImage returns an opaque white image of the given size.
func whiteImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return img
}

// writeTemplate stores a white PNG template in a temporary directory.
func writeTemplate(t testing.TB, w, h int) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "template.png")
	f, err := os.Create(p)
	if err != nil {
		t.Fatal(err)
	}
	err = png.Encode(f, whiteImage(w, h))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		t.Fatal(err)
	}
	return p
}

// writeFont stores the Go Regular font in a temporary directory.
func writeFont(t testing.TB) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "goregular.ttf")
	if err := os.WriteFile(p, goregular.TTF, 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

// newRenderer builds a renderer for a white w×h template. An empty
// fontPath selects a file which does not exist.
func newRenderer(t testing.TB, w, h int, fontPath string, opts ...certificate.Option) *certificate.Renderer {
	t.Helper()
	tmpl, err := certificate.LoadTemplate(writeTemplate(t, w, h))
	if err != nil {
		t.Fatal(err)
	}
	if fontPath == "" {
		fontPath = filepath.Join(t.TempDir(), "missing.ttf")
	}
	fonts := certificate.ResolveFonts(fontPath, certificate.DefaultFontSizes(), zerolog.Nop())
	r, err := certificate.NewRenderer(tmpl, fonts, opts...)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

// inkBounds returns the bounding box of all non-white pixels inside area.
func inkBounds(img *image.RGBA, area image.Rectangle) image.Rectangle {
	var box image.Rectangle
	area = area.Intersect(img.Bounds())
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			c := img.RGBAAt(x, y)
			if c.R == 0xff && c.G == 0xff && c.B == 0xff {
				continue
			}
			box = box.Union(image.Rect(x, y, x+1, y+1))
		}
	}
	return box
}

// singleLine returns a layout with one centred line at the given
// fractional height.
func singleLine(t *testing.T, text string, role certificate.Role, y float64) *certificate.Layout {
	t.Helper()
	l, err := certificate.NewLayout([]certificate.Line{{
		Key:   "line",
		Text:  text,
		X:     0.5,
		Y:     y,
		Color: colorBlack,
		Role:  role,
	}})
	if err != nil {
		t.Fatal(err)
	}
	return l
}
