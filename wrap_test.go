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
	"math/rand"
	"strings"
	"testing"
	"unicode/utf8"

	"seehuhn.de/go/certificate"
)

func TestWrapText(t *testing.T) {
	tests := []struct {
		text     string
		maxChars int
		want     []string
	}{
		{"", 10, nil},
		{"   ", 10, nil},
		{"short", 10, []string{"short"}},
		{"one two three", 7, []string{"one two", "three"}},
		{"one two three", 13, []string{"one two three"}},
		{"one  two\tthree", 100, []string{"one two three"}},
		{"a extraordinarily b", 5, []string{"a", "extraordinarily", "b"}},
		{"a b c", 0, []string{"a", "b", "c"}},
		{"Tūhono ā-rohe", 6, []string{"Tūhono", "ā-rohe"}},
		{
			"New Zealand Certificate in Business (Administration and Technology) Level 4",
			30,
			[]string{
				"New Zealand Certificate in",
				"Business (Administration and",
				"Technology) Level 4",
			},
		},
	}
	for _, tc := range tests {
		got := certificate.WrapText(tc.text, tc.maxChars)
		if len(got) != len(tc.want) {
			t.Errorf("WrapText(%q, %d) = %q, want %q", tc.text, tc.maxChars, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("WrapText(%q, %d) = %q, want %q", tc.text, tc.maxChars, got, tc.want)
				break
			}
		}
	}
}

// TestWrapTextProperties checks random inputs: the words are kept in order,
// lines respect the limit unless they hold a single long word, and no line
// could take the first word of the next one.
func TestWrapTextProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	letters := []rune("abcdefghāēīōū")
	for range 500 {
		nWords := rng.Intn(20)
		words := make([]string, nWords)
		for i := range words {
			w := make([]rune, 1+rng.Intn(12))
			for j := range w {
				w[j] = letters[rng.Intn(len(letters))]
			}
			words[i] = string(w)
		}
		maxChars := 1 + rng.Intn(25)
		lines := certificate.WrapText(strings.Join(words, " "), maxChars)

		var rejoined []string
		for i, line := range lines {
			lw := strings.Split(line, " ")
			rejoined = append(rejoined, lw...)
			n := utf8.RuneCountInString(line)
			if n > maxChars && len(lw) > 1 {
				t.Fatalf("line %q exceeds %d characters", line, maxChars)
			}
			if i+1 < len(lines) {
				next := strings.SplitN(lines[i+1], " ", 2)[0]
				if n+1+utf8.RuneCountInString(next) <= maxChars {
					t.Fatalf("%q could have been appended to %q", next, line)
				}
			}
		}
		if strings.Join(rejoined, " ") != strings.Join(words, " ") {
			t.Fatalf("words changed: %q -> %q", words, lines)
		}
	}
}
