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
	"fmt"
	"image/color"
	"math"
	"strings"
	"text/template"
)

// Align selects which point of a text line is placed on the anchor.
type Align int

// These are the supported horizontal alignments.
const (
	AlignCenter Align = iota
	AlignLeft
	AlignRight
)

// ReferenceHeight is the template height, in pixels, assumed by
// [DefaultLines]. The reference layout gives its line offsets in pixels;
// they are stored relative to this height, so a template of a different
// height gets the offsets scaled. Use [DefaultLinesAt] with the template's
// own height to keep the offsets as absolute pixel rows instead.
const ReferenceHeight = 1000

// Line describes one text line of the layout.
type Line struct {
	// Key identifies the line, e.g. "recipient" or "credits".
	Key string

	// Text is a text/template source. It is executed with a [Fields]
	// value, e.g. "NZQA Level {{.Level}}".
	Text string

	// X and Y locate the anchor as fractions of the template width and
	// height.
	X, Y float64

	Color color.RGBA
	Role  Role
	Align Align

	// WrapChars, if positive, splits the text into lines of at most this
	// many characters using [WrapText]. The lines are stacked, centred
	// vertically on the anchor.
	WrapChars int
}

// Fields is the data a Line's text template is executed with.
type Fields struct {
	Name          string
	Qualification string
	Result        string
	Date          string
	Level         int
	Credits       int
	Provider      string
}

func fieldsOf(req Request) Fields {
	return Fields{
		Name:          req.RecipientName,
		Qualification: req.QualificationName,
		Result:        req.Result.String(),
		Date:          req.CompletionDate,
		Level:         int(req.Level),
		Credits:       req.Credits,
		Provider:      req.ProviderName,
	}
}

// Layout is an ordered list of lines with compiled text templates.
// A Layout is immutable and safe for concurrent use.
type Layout struct {
	lines []Line
	tmpl  []*template.Template
}

// NewLayout compiles the text templates of all lines.
func NewLayout(lines []Line) (*Layout, error) {
	l := &Layout{
		lines: make([]Line, len(lines)),
		tmpl:  make([]*template.Template, len(lines)),
	}
	copy(l.lines, lines)
	for i, line := range lines {
		if line.Y < 0 || line.Y > 1 || line.X < 0 || line.X > 1 {
			return nil, fmt.Errorf("line %q: anchor (%g, %g) outside the template", line.Key, line.X, line.Y)
		}
		t, err := template.New(line.Key).Option("missingkey=error").Parse(line.Text)
		if err != nil {
			return nil, fmt.Errorf("line %q: %w", line.Key, err)
		}
		l.tmpl[i] = t
	}
	return l, nil
}

// Lines returns a copy of the layout's line descriptions.
func (l *Layout) Lines() []Line {
	res := make([]Line, len(l.lines))
	copy(res, l.lines)
	return res
}

var (
	colorTitle  = color.RGBA{0x2c, 0x3e, 0x50, 0xff}
	colorBody   = color.RGBA{0x1a, 0x1a, 0x1a, 0xff}
	colorMuted  = color.RGBA{0x55, 0x55, 0x55, 0xff}
	colorFaint  = color.RGBA{0x88, 0x88, 0x88, 0xff}
	colorFooter = color.RGBA{0xaa, 0xaa, 0xaa, 0xff}
	colorAccent = color.RGBA{0xc4, 0x1e, 0x3a, 0xff}
)

// DefaultLines returns the lines of the reference certificate layout for
// a template of [ReferenceHeight] pixels. On other template sizes the
// anchors keep their relative position.
func DefaultLines() []Line {
	return DefaultLinesAt(ReferenceHeight)
}

// DefaultLinesAt returns the reference layout with the pixel offsets of
// the lines taken relative to a template of height refHeight. Passing the
// height of the actual template places every line at its absolute pixel
// row, as long as the template is at least 800 pixels tall. A refHeight
// which is not positive selects ReferenceHeight.
func DefaultLinesAt(refHeight float64) []Line {
	if refHeight <= 0 {
		refHeight = ReferenceHeight
	}
	at := func(px float64) float64 { return min(px/refHeight, 1) }
	return []Line{
		{Key: "title", Text: "Certificate of Achievement", X: 0.5, Y: at(250), Color: colorTitle, Role: RoleBody},
		{Key: "preamble", Text: "This is to certify that", X: 0.5, Y: at(300), Color: colorMuted, Role: RoleSubtitle},
		{Key: "recipient", Text: "{{.Name}}", X: 0.5, Y: at(350), Color: colorBody, Role: RoleName},
		{Key: "completed", Text: "has successfully completed", X: 0.5, Y: at(425), Color: colorMuted, Role: RoleSubtitle},
		{Key: "qualification", Text: "{{.Qualification}}", X: 0.5, Y: at(450), Color: colorBody, Role: RoleQualification},
		{Key: "level", Text: "NZQA Level {{.Level}}", X: 0.5, Y: at(500), Color: colorBody, Role: RoleQualification},
		{Key: "credits", Text: "{{.Credits}} Credits", X: 0.5, Y: at(550), Color: colorMuted, Role: RoleQualification},
		{Key: "result", Text: "Result: {{.Result}}", X: 0.5, Y: at(600), Color: colorAccent, Role: RoleQualification},
		{Key: "date", Text: "Issuing Date: {{.Date}}", X: 0.5, Y: at(650), Color: colorMuted, Role: RoleSubtitle},
		{Key: "provider", Text: "Awarded through: {{.Provider}}", X: 0.5, Y: at(700), Color: colorFaint, Role: RoleSubtitle},
		{Key: "authority", Text: "This certificate is awarded under the authority of the New Zealand Qualifications Authority", X: 0.5, Y: at(750), Color: colorFooter, Role: RoleSubtitle},
		{Key: "authority_mi", Text: "Te Tari Tarakehi Matauranga o Aotearoa", X: 0.5, Y: at(800), Color: colorFooter, Role: RoleSubtitle},
	}
}

// DefaultLayout returns the compiled reference layout.
func DefaultLayout() *Layout {
	l, err := NewLayout(DefaultLines())
	if err != nil {
		panic(err)
	}
	return l
}

// Placement is a line of text with its final position on the image.
type Placement struct {
	Key   string
	Text  string
	X, Y  int // anchor, in pixels
	Color color.RGBA
	Role  Role
	Align Align
}

// Place expands the layout for req on a template of the given size.
// Lines with WrapChars set produce one placement per wrapped line; fonts
// supplies the line height for these and may be nil otherwise.
func (l *Layout) Place(req Request, width, height int, fonts *FontSet) ([]Placement, error) {
	data := fieldsOf(req)
	res := make([]Placement, 0, len(l.lines))
	var sb strings.Builder
	for i, line := range l.lines {
		sb.Reset()
		if err := l.tmpl[i].Execute(&sb, data); err != nil {
			return nil, fmt.Errorf("line %q: %w", line.Key, err)
		}
		x := pixel(line.X, width)
		y := pixel(line.Y, height)

		texts := []string{sb.String()}
		if line.WrapChars > 0 {
			texts = WrapText(texts[0], line.WrapChars)
		}
		step := 0.0
		if len(texts) > 1 && fonts != nil {
			step = float64(fonts.Metrics(line.Role).Height) / 64
		}
		top := float64(y) - step*float64(len(texts)-1)/2
		for k, text := range texts {
			res = append(res, Placement{
				Key:   line.Key,
				Text:  text,
				X:     x,
				Y:     int(math.Round(top + step*float64(k))),
				Color: line.Color,
				Role:  line.Role,
				Align: line.Align,
			})
		}
	}
	return res, nil
}

// pixel converts a fractional anchor to a pixel index, rounding down so
// that the centre of an odd-sized template is size/2.
func pixel(frac float64, size int) int {
	return int(math.Floor(frac*float64(size) + 1e-6))
}
