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
	"strings"
	"unicode/utf8"
)

// WrapText greedily packs the words of text into lines of at most maxChars
// characters, counting runes. Words are separated by single spaces.
// A word longer than maxChars is placed on a line of its own and is not
// split. Values of maxChars below 1 are treated as 1.
func WrapText(text string, maxChars int) []string {
	maxChars = max(maxChars, 1)

	var lines []string
	var cur strings.Builder
	n := 0
	for _, word := range strings.Fields(text) {
		w := utf8.RuneCountInString(word)
		if n > 0 && n+1+w <= maxChars {
			cur.WriteByte(' ')
			cur.WriteString(word)
			n += 1 + w
			continue
		}
		if n > 0 {
			lines = append(lines, cur.String())
			cur.Reset()
		}
		cur.WriteString(word)
		n = w
	}
	if n > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}
