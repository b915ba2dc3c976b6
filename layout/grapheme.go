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

// Package layout shows text using a list of fonts, one grapheme cluster at
// a time.
//
// For every cluster, the fonts are tried in order and the first font which
// has glyphs for the whole cluster is used.  Clusters which none of the
// fonts can show are passed to a [Fallback], which typically draws them as
// images.
package layout

import (
	"github.com/clipperhouse/uax29/v2/graphemes"
)

// Clusters splits s into extended grapheme clusters, as defined in Unicode
// Standard Annex #29.  Concatenating the returned strings gives s.
func Clusters(s string) []string {
	var res []string
	g := graphemes.FromString(s)
	for g.Next() {
		res = append(res, g.Value())
	}
	return res
}
