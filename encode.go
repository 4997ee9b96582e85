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
	"encoding/binary"
	"errors"
	"hash/crc32"
	"image"
	"image/png"
	"math"
)

// DefaultDPI is the resolution recorded in rendered images.
const DefaultDPI = 300

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

// EncodePNG encodes img as a PNG file which records a resolution of dpi
// dots per inch in a pHYs chunk. The output only depends on the pixel
// data and dpi.
func EncodePNG(img image.Image, dpi float64) ([]byte, error) {
	if dpi <= 0 {
		return nil, errors.New("resolution must be positive")
	}

	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.DefaultCompression}
	if err := enc.Encode(&buf, img); err != nil {
		return nil, err
	}
	return withResolution(buf.Bytes(), dpi)
}

// withResolution inserts a pHYs chunk directly after the IHDR chunk.
func withResolution(data []byte, dpi float64) ([]byte, error) {
	// signature, then IHDR: length(4) type(4) data(13) crc(4)
	ihdrEnd := len(pngSignature) + 4 + 4 + 13 + 4
	if len(data) < ihdrEnd || !bytes.Equal(data[:len(pngSignature)], pngSignature) ||
		string(data[len(pngSignature)+4:len(pngSignature)+8]) != "IHDR" {
		return nil, errors.New("malformed PNG stream")
	}

	ppm := uint32(math.Round(dpi / 0.0254))
	var body [9]byte
	binary.BigEndian.PutUint32(body[0:4], ppm)
	binary.BigEndian.PutUint32(body[4:8], ppm)
	body[8] = 1 // unit: metre

	out := make([]byte, 0, len(data)+21)
	out = append(out, data[:ihdrEnd]...)
	out = appendChunk(out, "pHYs", body[:])
	out = append(out, data[ihdrEnd:]...)
	return out, nil
}

func appendChunk(out []byte, typ string, body []byte) []byte {
	out = binary.BigEndian.AppendUint32(out, uint32(len(body)))
	start := len(out)
	out = append(out, typ...)
	out = append(out, body...)
	return binary.BigEndian.AppendUint32(out, crc32.ChecksumIEEE(out[start:]))
}

// Resolution returns the horizontal resolution, in dots per inch, recorded
// in the pHYs chunk of a PNG file. The second return value is false if the
// file has no such chunk or the unit is not the metre.
func Resolution(data []byte) (float64, bool) {
	if len(data) < len(pngSignature) || !bytes.Equal(data[:len(pngSignature)], pngSignature) {
		return 0, false
	}
	pos := len(pngSignature)
	for pos+8 <= len(data) {
		n := int(binary.BigEndian.Uint32(data[pos:]))
		typ := string(data[pos+4 : pos+8])
		end := pos + 8 + n + 4
		if n < 0 || end > len(data) {
			return 0, false
		}
		switch typ {
		case "pHYs":
			if n != 9 || data[pos+16] != 1 {
				return 0, false
			}
			ppm := binary.BigEndian.Uint32(data[pos+8:])
			return float64(ppm) * 0.0254, true
		case "IDAT", "IEND":
			return 0, false
		}
		pos = end
	}
	return 0, false
}
