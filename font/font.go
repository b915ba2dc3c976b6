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

// Package font defines the fonts which can be used to show text in a
// content stream.
//
// A [Font] knows how to convert a Unicode string into the character codes
// used in the PDF file, how wide the resulting text is, and how to embed
// itself into a PDF document.  Implementations are in the sub-packages
// "standard" (the 14 standard PDF fonts) and "truetype" (embedded
// TrueType fonts).
package font

import (
	"seehuhn.de/go/pdfsample/document"
)

// Font is a font which can be used in a PDF content stream.
//
// Implementations must be comparable, since fonts are used as map keys
// when allocating resource names.
type Font interface {
	document.Embedder

	// PostScriptName returns the PostScript name of the font.
	PostScriptName() string

	// Geometry returns the overall dimensions of the font.
	Geometry() *Geometry

	// Encode converts s into a PDF string for the "Tj" operator.  The
	// second return value is the width of the text in glyph space units,
	// i.e. for a font size of 1000.
	//
	// If some characters of s cannot be shown with this font, a
	// *MissingGlyphError is returned and the font is left unchanged.
	Encode(s string) ([]byte, float64, error)
}
