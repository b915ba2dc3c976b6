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

// Package float formats numbers for use in PDF content streams.
package float

import (
	"strconv"
	"strings"
)

// Format formats x with at most the given number of digits after the
// decimal point.  Trailing zeros are removed, and a leading zero before the
// decimal point is omitted.
func Format(x float64, precision int) string {
	out := strconv.FormatFloat(x, 'f', precision, 64)
	if strings.ContainsRune(out, '.') {
		out = strings.TrimRight(out, "0")
		out = strings.TrimSuffix(out, ".")
	}
	switch {
	case out == "-0" || out == "":
		out = "0"
	case strings.HasPrefix(out, "0."):
		out = out[1:]
	case strings.HasPrefix(out, "-0."):
		out = "-" + out[2:]
	}
	return out
}
