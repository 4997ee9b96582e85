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
	"errors"
	"image"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"

	"seehuhn.de/go/certificate"
)

func TestLoadTemplate(t *testing.T) {
	tmpl, err := certificate.LoadTemplate(writeTemplate(t, 120, 80))
	if err != nil {
		t.Fatal(err)
	}
	if tmpl.Bounds() != image.Rect(0, 0, 120, 80) {
		t.Errorf("bounds %v", tmpl.Bounds())
	}
	if tmpl.Format() != "png" {
		t.Errorf("format %q", tmpl.Format())
	}
}

func TestLoadTemplateBMP(t *testing.T) {
	p := filepath.Join(t.TempDir(), "before.bmp")
	f, err := os.Create(p)
	if err != nil {
		t.Fatal(err)
	}
	err = bmp.Encode(f, whiteImage(10, 6))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		t.Fatal(err)
	}

	tmpl, err := certificate.LoadTemplate(p)
	if err != nil {
		t.Fatal(err)
	}
	if tmpl.Format() != "bmp" || tmpl.Bounds().Dx() != 10 {
		t.Errorf("got %s template of size %v", tmpl.Format(), tmpl.Bounds())
	}
}

func TestLoadTemplateGarbage(t *testing.T) {
	p := filepath.Join(t.TempDir(), "before.png")
	if err := os.WriteFile(p, []byte("this is not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := certificate.LoadTemplate(p)
	var notFound *certificate.TemplateNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected TemplateNotFoundError, got %v", err)
	}
}

func TestTemplateOffsetOrigin(t *testing.T) {
	bg := whiteImage(60, 40).SubImage(image.Rect(10, 10, 60, 40))
	r, err := certificate.NewRenderer(certificate.NewTemplate(bg), nil)
	if err != nil {
		t.Fatal(err)
	}
	img, err := r.Compose(validRequest(t))
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds() != image.Rect(0, 0, 50, 30) {
		t.Errorf("canvas bounds %v", img.Bounds())
	}
}

func TestNewRendererErrors(t *testing.T) {
	if _, err := certificate.NewRenderer(nil, nil); err == nil {
		t.Error("nil template accepted")
	}
	tmpl := certificate.NewTemplate(whiteImage(10, 10))
	if _, err := certificate.NewRenderer(tmpl, nil, certificate.WithDPI(0)); err == nil {
		t.Error("zero resolution accepted")
	}
	if _, err := certificate.NewRenderer(tmpl, nil, certificate.WithLayout(nil)); err == nil {
		t.Error("nil layout accepted")
	}
}

func validRequest(t *testing.T) certificate.Request {
	t.Helper()
	req, err := certificate.NewRequest("Aroha Te Kanawa",
		"New Zealand Certificate in Health and Wellbeing (Support Work) Level 3",
		certificate.Achieved, "2025-10-10", 3, 60, "Christchurch Health Academy")
	if err != nil {
		t.Fatal(err)
	}
	return req
}
