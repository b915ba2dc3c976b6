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

package graphics

import (
	"fmt"
	"image/color"

	"seehuhn.de/go/pdfsample/internal/float"
)

// DeviceRGB is a color in the DeviceRGB color space.
// The components are red, green and blue, in the range [0, 1].
type DeviceRGB [3]float64

// Some commonly used colors.
var (
	Black = DeviceRGB{0, 0, 0}
	White = DeviceRGB{1, 1, 1}
	Red   = DeviceRGB{1, 0, 0}
	Green = DeviceRGB{0, 1, 0}
	Blue  = DeviceRGB{0, 0, 1}
)

// RGBA implements the [color.Color] interface.
func (c DeviceRGB) RGBA() (r, g, b, a uint32) {
	conv := func(x float64) uint32 {
		x = min(max(x, 0), 1)
		return uint32(x*0xffff + 0.5)
	}
	return conv(c[0]), conv(c[1]), conv(c[2]), 0xffff
}

// ToRGB converts a Go color to DeviceRGB.  Any transparency is
// discarded.
func ToRGB(c color.Color) DeviceRGB {
	if rgb, ok := c.(DeviceRGB); ok {
		return rgb
	}
	r, g, b, a := c.RGBA()
	if a == 0 {
		return Black
	}
	// un-premultiply
	return DeviceRGB{
		float64(r) / float64(a),
		float64(g) / float64(a),
		float64(b) / float64(a),
	}
}

func (c DeviceRGB) values() []any {
	return []any{float.Format(c[0], 3), float.Format(c[1], 3), float.Format(c[2], 3)}
}

// SetStrokeColor sets the color to use for stroking operations.
//
// This implements the PDF graphics operator "RG".
func (w *Writer) SetStrokeColor(c color.Color) {
	if !w.isValid("SetStrokeColor", objPage|objText) {
		return
	}
	rgb := ToRGB(c)
	if w.isSet(StateStrokeColor) && rgb == w.StrokeColor {
		return
	}

	w.StrokeColor = rgb
	w.Set |= StateStrokeColor

	_, w.Err = fmt.Fprintln(w.Content, append(rgb.values(), "RG")...)
}

// SetFillColor sets the color to use for non-stroking operations.
//
// This implements the PDF graphics operator "rg".
func (w *Writer) SetFillColor(c color.Color) {
	if !w.isValid("SetFillColor", objPage|objText) {
		return
	}
	rgb := ToRGB(c)
	if w.isSet(StateFillColor) && rgb == w.FillColor {
		return
	}

	w.FillColor = rgb
	w.Set |= StateFillColor

	_, w.Err = fmt.Fprintln(w.Content, append(rgb.values(), "rg")...)
}
