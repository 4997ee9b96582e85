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

// Package certificate renders certificates of achievement.
//
// A certificate is produced by drawing the fields of a [Request] onto a
// copy of a fixed background [Template]. The result is encoded as a PNG
// image carrying a resolution tag and can be wrapped into a single-page
// PDF document with [ConvertToPDF].
//
// The pipeline has no shared mutable state. A [Renderer] built from a
// loaded template and a resolved [FontSet] can be used from many goroutines
// at once.
package certificate

import (
	"encoding"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Result is the grade awarded for a qualification.
type Result int

// These are the possible results.
const (
	Achieved Result = iota + 1
	AchievedWithMerit
	AchievedWithExcellence
)

var resultNames = map[Result]string{
	Achieved:               "Achieved",
	AchievedWithMerit:      "Achieved with Merit",
	AchievedWithExcellence: "Achieved with Excellence",
}

// String returns the text printed on the certificate.
func (r Result) String() string {
	if s, ok := resultNames[r]; ok {
		return s
	}
	return fmt.Sprintf("Result(%d)", int(r))
}

// Valid reports whether r is one of the defined results.
func (r Result) Valid() bool {
	_, ok := resultNames[r]
	return ok
}

// ParseResult converts the printed form of a result back to a Result.
func ParseResult(s string) (Result, error) {
	for r, name := range resultNames {
		if name == s {
			return r, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown result %q", ErrInvalidRequest, s)
}

// MarshalText implements [encoding.TextMarshaler].
func (r Result) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%w: unknown result %d", ErrInvalidRequest, int(r))
	}
	return []byte(r.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (r *Result) UnmarshalText(text []byte) error {
	v, err := ParseResult(string(text))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

var (
	_ encoding.TextMarshaler   = Result(0)
	_ encoding.TextUnmarshaler = (*Result)(nil)
)

// Level is a qualification level on the ten-step framework.
type Level int

// The range of valid levels.
const (
	MinLevel Level = 1
	MaxLevel Level = 10
)

// Valid reports whether l lies in the range MinLevel to MaxLevel.
func (l Level) Valid() bool {
	return l >= MinLevel && l <= MaxLevel
}

// Request holds the field values for one certificate.
// Use [NewRequest] to obtain a validated value.
type Request struct {
	RecipientName     string `json:"recipient_name" yaml:"recipient_name" validate:"required"`
	QualificationName string `json:"qualification_name" yaml:"qualification_name" validate:"required"`
	Result            Result `json:"result" yaml:"result" validate:"result"`
	CompletionDate    string `json:"completion_date" yaml:"completion_date" validate:"required,datetime=2006-01-02"`
	Level             Level  `json:"level" yaml:"level" validate:"level"`
	Credits           int    `json:"credits" yaml:"credits" validate:"gte=0"`
	ProviderName      string `json:"provider_name" yaml:"provider_name" validate:"required"`
}

var validate = validator.New()

func init() {
	validate.RegisterValidation("result", func(fl validator.FieldLevel) bool {
		return Result(fl.Field().Int()).Valid()
	})
	validate.RegisterValidation("level", func(fl validator.FieldLevel) bool {
		return Level(fl.Field().Int()).Valid()
	})
}

// NewRequest returns a validated certificate request.
func NewRequest(name, qualification string, result Result, date string, level Level, credits int, provider string) (Request, error) {
	req := Request{
		RecipientName:     name,
		QualificationName: qualification,
		Result:            result,
		CompletionDate:    date,
		Level:             level,
		Credits:           credits,
		ProviderName:      provider,
	}
	if err := req.Validate(); err != nil {
		return Request{}, err
	}
	return req, nil
}

// Validate checks that all fields are present and in range.
// The returned error wraps [ErrInvalidRequest].
func (r Request) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	return nil
}

var unsafeFileChars = regexp.MustCompile(`[^\p{L}\p{N}_.-]+`)

// FileName returns the name under which the certificate for the given
// recipient is delivered, e.g. "NZQA_certificate_Emma_Wilson.pdf".
// Characters which are unsafe in file names are dropped.
func FileName(recipient, ext string) string {
	name := strings.ReplaceAll(strings.TrimSpace(recipient), " ", "_")
	name = unsafeFileChars.ReplaceAllString(name, "")
	return "NZQA_certificate_" + name + "." + strings.TrimPrefix(ext, ".")
}
