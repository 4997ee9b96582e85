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

	"github.com/rs/zerolog"
)

// Certificate is a rendered certificate image.
type Certificate struct {
	// PNG holds the encoded image.
	PNG []byte

	Width, Height int

	// FontFallback is set if the text was drawn with the fallback face
	// because the configured font could not be loaded.
	FontFallback bool
}

// Renderer draws certificates onto a template.
// All fields are read-only after construction, so that a Renderer can be
// used concurrently.
type Renderer struct {
	tmpl    *Template
	fonts   *FontSet
	layout  *Layout
	dpi     float64
	doc     *DocumentOptions
	logger  zerolog.Logger
	metrics *Metrics
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLayout replaces the default layout.
func WithLayout(l *Layout) Option {
	return func(r *Renderer) { r.layout = l }
}

// WithDPI sets the resolution recorded in the PNG output.
func WithDPI(dpi float64) Option {
	return func(r *Renderer) { r.dpi = dpi }
}

// WithDocumentOptions sets the options used by Renderer.Document.
func WithDocumentOptions(opt *DocumentOptions) Option {
	return func(r *Renderer) { r.doc = opt }
}

// WithLogger sets the logger. By default nothing is logged.
func WithLogger(l zerolog.Logger) Option {
	return func(r *Renderer) { r.logger = l }
}

// WithMetrics enables counting of renders and conversions.
func WithMetrics(m *Metrics) Option {
	return func(r *Renderer) { r.metrics = m }
}

// NewRenderer returns a Renderer for the given template and fonts.
// If fonts is nil, the fallback face is used for all roles.
func NewRenderer(tmpl *Template, fonts *FontSet, opts ...Option) (*Renderer, error) {
	if tmpl == nil {
		return nil, errors.New("missing template")
	}
	if fonts == nil {
		fonts = FallbackFonts(errors.New("no fonts configured"))
	}
	r := &Renderer{
		tmpl:   tmpl,
		fonts:  fonts,
		layout: DefaultLayout(),
		dpi:    DefaultDPI,
		doc:    DefaultDocumentOptions(),
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.dpi <= 0 {
		return nil, errors.New("resolution must be positive")
	}
	if r.layout == nil {
		return nil, errors.New("missing layout")
	}
	return r, nil
}

// Fonts returns the font set used by r.
func (r *Renderer) Fonts() *FontSet {
	return r.fonts
}

// Compose draws the certificate text for req onto a copy of the template.
// The template itself is not modified.
func (r *Renderer) Compose(req Request) (*image.RGBA, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	dst := r.tmpl.canvas()
	b := dst.Bounds()
	placed, err := r.layout.Place(req, b.Dx(), b.Dy(), r.fonts)
	if err != nil {
		return nil, err
	}
	for _, p := range placed {
		f := r.fonts.lookup(p.Role)
		dot := anchorDot(f, p.Text, float64(p.X), float64(p.Y), p.Align)
		f.draw(dst, p.Text, dot, p.Color)
	}
	return dst, nil
}

// Render draws the certificate for req and encodes it as PNG.
func (r *Renderer) Render(req Request) (*Certificate, error) {
	cert, err := r.render(req)
	if r.metrics != nil {
		r.metrics.Renders.WithLabelValues(outcome(err)).Inc()
		if err == nil && cert.FontFallback {
			r.metrics.FontFallbacks.Inc()
		}
	}
	if err != nil {
		r.logger.Error().Err(err).Str("recipient", req.RecipientName).Msg("certificate render failed")
		return nil, err
	}

	ev := r.logger.Info()
	if cert.FontFallback {
		ev = r.logger.Warn().AnErr("font_error", r.fonts.FallbackReason())
	}
	ev.Str("recipient", req.RecipientName).
		Int("width", cert.Width).
		Int("height", cert.Height).
		Int("bytes", len(cert.PNG)).
		Bool("font_fallback", cert.FontFallback).
		Msg("certificate rendered")
	return cert, nil
}

func (r *Renderer) render(req Request) (*Certificate, error) {
	img, err := r.Compose(req)
	if err != nil {
		return nil, err
	}
	data, err := EncodePNG(img, r.dpi)
	if err != nil {
		return nil, err
	}
	return &Certificate{
		PNG:          data,
		Width:        img.Bounds().Dx(),
		Height:       img.Bounds().Dy(),
		FontFallback: r.fonts.Fallback(),
	}, nil
}

// Document converts a rendered certificate into a PDF file, using the
// renderer's document options.
func (r *Renderer) Document(cert *Certificate, req Request) ([]byte, error) {
	if cert == nil {
		return nil, &DocumentConversionError{Err: errors.New("no certificate")}
	}
	out, err := ConvertToPDF(cert.PNG, req.RecipientName, req.QualificationName, r.doc)
	if r.metrics != nil {
		r.metrics.Documents.WithLabelValues(outcome(err)).Inc()
	}
	if err != nil {
		r.logger.Error().Err(err).Str("recipient", req.RecipientName).Msg("document conversion failed")
		return nil, err
	}
	r.logger.Info().Str("recipient", req.RecipientName).Int("bytes", len(out)).Msg("document written")
	return out, nil
}
