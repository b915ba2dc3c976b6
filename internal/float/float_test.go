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

package float

import "testing"

func TestFormat(t *testing.T) {
	cases := []struct {
		in   float64
		prec int
		want string
	}{
		{0, 3, "0"},
		{1, 3, "1"},
		{-1, 3, "-1"},
		{0.5, 3, ".5"},
		{-0.5, 3, "-.5"},
		{12.3400, 3, "12.34"},
		{1.0004, 3, "1"},
		{-0.0001, 3, "0"},
		{595.276, 2, "595.28"},
		{100, 0, "100"},
	}
	for _, c := range cases {
		got := Format(c.in, c.prec)
		if got != c.want {
			t.Errorf("Format(%g, %d) = %q, want %q", c.in, c.prec, got, c.want)
		}
	}
}
