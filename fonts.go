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
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Role names the purpose a font is used for in the layout.
type Role string

// The font roles used by the layout.
const (
	RoleName          Role = "name"
	RoleBody          Role = "body"
	RoleQualification Role = "qualification"
	RoleSubtitle      Role = "subtitle"
)

// Roles lists all font roles in a fixed order.
var Roles = []Role{RoleName, RoleBody, RoleQualification, RoleSubtitle}

// FontSizes gives the size, in pixels, to use for each font role.
type FontSizes map[Role]float64

// DefaultFontSizes returns the sizes of the reference layout.
func DefaultFontSizes() FontSizes {
	return FontSizes{
		RoleName:          70,
		RoleBody:          55,
		RoleQualification: 30,
		RoleSubtitle:      20,
	}
}

// FontSet maps every role to a face.
//
// Either every role uses the requested TrueType font at its own size, or
// all roles share the same built-in fallback face. The fallback case is
// reported by Fallback and FallbackReason.
type FontSet struct {
	faces  map[Role]face
	reason error
}

// Fallback reports whether the built-in fallback face is used for all
// roles.
func (fs *FontSet) Fallback() bool {
	return fs.reason != nil
}

// FallbackReason returns the error which caused the fallback, or nil.
func (fs *FontSet) FallbackReason() error {
	return fs.reason
}

// Size returns the nominal pixel size of the face for the given role.
func (fs *FontSet) Size(r Role) float64 {
	return fs.lookup(r).size()
}

// Metrics returns the vertical metrics of the face for the given role.
func (fs *FontSet) Metrics(r Role) font.Metrics {
	return fs.lookup(r).metrics()
}

// MeasureString returns the advance width of s, in pixels, for the given
// role.
func (fs *FontSet) MeasureString(r Role, s string) fixed.Int26_6 {
	return fs.lookup(r).advance(s)
}

func (fs *FontSet) lookup(r Role) face {
	if f, ok := fs.faces[r]; ok {
		return f
	}
	return fs.faces[RoleSubtitle]
}

// ResolveFonts loads the TrueType or OpenType font at path for every role
// in sizes. Roles missing from sizes use the default sizes.
//
// ResolveFonts never fails. If the file cannot be read or parsed, or if
// any size cannot be instantiated, all roles fall back to one built-in
// bitmap face. The fallback is logged at warn level.
func ResolveFonts(path string, sizes FontSizes, logger zerolog.Logger) *FontSet {
	fs, err := loadOutlineFonts(path, sizes)
	if err == nil {
		logger.Debug().Str("font", path).Msg("fonts resolved")
		return fs
	}

	logger.Warn().Err(err).Str("font", path).Msg("using fallback font for all roles")
	return FallbackFonts(err)
}

// FallbackFonts returns a FontSet which uses the built-in bitmap face for
// every role. The reason is reported by FallbackReason; a nil reason is
// replaced by a generic error.
func FallbackFonts(reason error) *FontSet {
	if reason == nil {
		reason = errors.New("fallback font requested")
	}
	f := bitmapFace{face: basicfont.Face7x13}
	fs := &FontSet{faces: make(map[Role]face, len(Roles)), reason: reason}
	for _, r := range Roles {
		fs.faces[r] = f
	}
	return fs
}

func loadOutlineFonts(path string, sizes FontSizes) (*FontSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	fs := &FontSet{faces: make(map[Role]face, len(Roles))}
	defaults := DefaultFontSizes()
	for _, r := range Roles {
		size, ok := sizes[r]
		if !ok {
			size = defaults[r]
		}
		f, err := newOutlineFace(parsed, size)
		if err != nil {
			return nil, fmt.Errorf("%s font at %gpx: %w", r, size, err)
		}
		fs.faces[r] = f
	}
	return fs, nil
}

// newOutlineFace checks that the font can be instantiated at the given size
// and records its metrics.
func newOutlineFace(f *sfnt.Font, size float64) (*outlineFace, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid size %g", size)
	}
	probe, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}
	m := probe.Metrics()
	if err := probe.Close(); err != nil {
		return nil, err
	}

	return &outlineFace{
		font: f,
		px:   size,
		ppem: fixed.Int26_6(size*64 + 0.5),
		m:    m,
	}, nil
}
