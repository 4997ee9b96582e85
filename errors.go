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
	"fmt"
)

// ErrInvalidRequest is wrapped by all request validation failures.
var ErrInvalidRequest = errors.New("invalid certificate request")

// TemplateNotFoundError is returned when the template image cannot be
// opened or decoded. No output is produced in this case.
type TemplateNotFoundError struct {
	Path string
	Err  error
}

func (e *TemplateNotFoundError) Error() string {
	return fmt.Sprintf("template %q not found: %v", e.Path, e.Err)
}

func (e *TemplateNotFoundError) Unwrap() error {
	return e.Err
}

// DocumentConversionError is returned when rendered image data cannot be
// turned into a PDF document.
type DocumentConversionError struct {
	Err error
}

func (e *DocumentConversionError) Error() string {
	return "document conversion failed: " + e.Err.Error()
}

func (e *DocumentConversionError) Unwrap() error {
	return e.Err
}
