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

// Package testcases holds the reference certificate records.
//
// The records reproduce the sample student data of the demonstration
// application. They are used by the tests and by the commands which
// generate reference output.
package testcases

import "seehuhn.de/go/certificate"

// TestCase is a single certificate record.
type TestCase struct {
	Name      string // lowercase a-z and _ only
	StudentID string
	Request   certificate.Request
}

// req builds a request without validation; the records are checked by the
// tests.
func req(name, qual string, res certificate.Result, date string, level, credits int, provider string) certificate.Request {
	return certificate.Request{
		RecipientName:     name,
		QualificationName: qual,
		Result:            res,
		CompletionDate:    date,
		Level:             certificate.Level(level),
		Credits:           credits,
		ProviderName:      provider,
	}
}
