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
	"errors"
	"image"
	_ "image/gif"  // register GIF templates
	_ "image/jpeg" // register JPEG templates
	_ "image/png"  // register PNG templates
	"os"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"  // register BMP templates
	_ "golang.org/x/image/tiff" // register TIFF templates
	_ "golang.org/x/image/webp" // register WebP templates
)

// Template is a decoded background image.
// A Template is never modified after loading.
type Template struct {
	img    image.Image
	format string
	path   string
}

// LoadTemplate opens and decodes the background image at path.
// On failure, the error is a *[TemplateNotFoundError].
func LoadTemplate(path string) (*Template, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &TemplateNotFoundError{Path: path, Err: err}
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, &TemplateNotFoundError{Path: path, Err: err}
	}
	if b := img.Bounds(); b.Empty() {
		return nil, &TemplateNotFoundError{Path: path, Err: errors.New("empty image")}
	}
	return &Template{img: img, format: format, path: path}, nil
}

// NewTemplate wraps an already decoded image.
func NewTemplate(img image.Image) *Template {
	return &Template{img: img}
}

// Bounds returns the size of the template.
func (t *Template) Bounds() image.Rectangle {
	return t.img.Bounds()
}

// Format returns the name of the image format the template was decoded
// from, or "" for templates created by NewTemplate.
func (t *Template) Format() string {
	return t.format
}

// Path returns the file the template was loaded from.
func (t *Template) Path() string {
	return t.path
}

// canvas returns a fresh RGBA copy of the template, with its top-left
// corner moved to the origin.
func (t *Template) canvas() *image.RGBA {
	b := t.img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), t.img, b.Min, draw.Src)
	return dst
}
