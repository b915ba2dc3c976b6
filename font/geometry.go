// seehuhn.de/go/pdfsample - draw onto existing PDF pages
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

package font

import "math"

// Geometry collects the overall dimensions of a font.
// All values are in PDF glyph space units (1000 units per em),
// as in the font descriptor.
type Geometry struct {
	Ascent      float64
	Descent     float64 // negative
	CapHeight   float64
	XHeight     float64
	ItalicAngle float64
}

// Metrics describes the vertical extent of a font at a given size,
// in PDF text space units.
type Metrics struct {
	Ascent  float64
	Descent float64 // negative
}

// Height returns the distance between the ascent and descent lines.
// This is used as the line spacing in multi-line text.
func (m Metrics) Height() float64 {
	return math.Abs(m.Descent - m.Ascent)
}

// GetMetrics returns the font metrics for text set in font f at the given
// size.
func GetMetrics(f Font, size float64) Metrics {
	g := f.Geometry()
	return Metrics{
		Ascent:  g.Ascent * size / 1000,
		Descent: g.Descent * size / 1000,
	}
}

// StringWidth returns the width of s when set in font f at the given size.
func StringWidth(f Font, s string, size float64) (float64, error) {
	_, w, err := f.Encode(s)
	if err != nil {
		return 0, err
	}
	return w * size / 1000, nil
}
