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
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	pdfimage "seehuhn.de/go/pdf/graphics/image"
)

// Page sizes in PDF points.
const (
	A4Width  = 595.276
	A4Height = 841.89
)

// DocumentOptions controls the PDF produced by [ConvertToPDF].
type DocumentOptions struct {
	// PageWidth and PageHeight give the page size in PDF points.
	// The default is landscape A4.
	PageWidth, PageHeight float64

	// Author is stored in the document information dictionary.
	Author string

	// TitlePrefix is prepended to the recipient name to form the title.
	TitlePrefix string
}

// DefaultDocumentOptions returns the settings of the reference documents.
func DefaultDocumentOptions() *DocumentOptions {
	return &DocumentOptions{
		PageWidth:   A4Height,
		PageHeight:  A4Width,
		Author:      "New Zealand Qualifications Authority",
		TitlePrefix: "NZQA Certificate - ",
	}
}

// ConvertToPDF places the rendered certificate image on a single page
// and returns the PDF file. The image is scaled to fit the page, keeping
// its aspect ratio, and centred. The document title names the recipient,
// and the subject is set to the qualification.
//
// If opt is nil, [DefaultDocumentOptions] are used. Malformed image data
// results in a *[DocumentConversionError].
func ConvertToPDF(imageData []byte, recipient, qualification string, opt *DocumentOptions) ([]byte, error) {
	if opt == nil {
		opt = DefaultDocumentOptions()
	}
	if opt.PageWidth <= 0 || opt.PageHeight <= 0 {
		return nil, &DocumentConversionError{Err: fmt.Errorf("invalid page size %gx%g", opt.PageWidth, opt.PageHeight)}
	}

	img, _, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, &DocumentConversionError{Err: err}
	}
	if img.Bounds().Empty() {
		return nil, &DocumentConversionError{Err: errors.New("empty image")}
	}

	var out bytes.Buffer
	if err := writePDF(&out, img, recipient, qualification, opt); err != nil {
		return nil, &DocumentConversionError{Err: err}
	}
	return out.Bytes(), nil
}

func writePDF(w io.Writer, img image.Image, recipient, qualification string, opt *DocumentOptions) error {
	paper := &pdf.Rectangle{URx: opt.PageWidth, URy: opt.PageHeight}
	page, err := document.WriteSinglePage(w, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// Transparent template areas get a soft mask, so the page shows through.
	xobj, err := pdfimage.PNG(img, nil)
	if err != nil {
		return err
	}

	b := img.Bounds()
	x, y, dw, dh := fitRect(float64(b.Dx()), float64(b.Dy()), opt.PageWidth, opt.PageHeight)
	page.PushGraphicsState()
	page.Transform(matrix.Matrix{dw, 0, 0, dh, x, y})
	page.DrawXObject(xobj)
	page.PopGraphicsState()

	page.Out.GetMeta().Info = &pdf.Info{
		Title:   pdf.TextString(opt.TitlePrefix + recipient),
		Subject: pdf.TextString(qualification),
		Author:  pdf.TextString(opt.Author),
	}
	return page.Close()
}

// fitRect scales a w×h image to fit a pageW×pageH page, keeping the aspect
// ratio, and centres it. It returns the lower left corner and the size of
// the image on the page.
func fitRect(w, h, pageW, pageH float64) (x, y, dw, dh float64) {
	scale := min(pageW/w, pageH/h)
	dw, dh = w*scale, h*scale
	return (pageW - dw) / 2, (pageH - dh) / 2, dw, dh
}
