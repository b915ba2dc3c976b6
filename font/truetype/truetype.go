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

// Package truetype implements composite PDF fonts based on TrueType font
// files.
//
// The fonts are embedded as Type 0 fonts with Identity-H encoding and a
// CIDFontType2 descendant font.  Every glyph is shown using a two-byte
// character code equal to its glyph ID in the original font file.  When the
// font is embedded, only the glyphs which have actually been used are
// included.
package truetype

import (
	"bytes"
	"errors"
	"fmt"

	"golang.org/x/text/unicode/norm"

	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/pdfsample/font"
)

// Instance is a TrueType font which can be used in a content stream.
type Instance struct {
	info     *sfnt.Font
	cmap     cmap.Subtable
	geometry *font.Geometry

	// used maps the glyphs shown so far to the text they represent.
	used map[glyph.ID]string
}

var _ font.Font = (*Instance)(nil)

// Parse reads a TrueType font file and returns a new font instance.
func Parse(data []byte) (*Instance, error) {
	info, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("truetype: %w", err)
	}
	return New(info)
}

// New makes a PDF font from a sfnt.Font.
// The font must be an OpenType/TrueType font with glyf outlines.
func New(info *sfnt.Font) (*Instance, error) {
	if !info.IsGlyf() {
		return nil, errors.New("truetype: no glyf outlines in font")
	}

	subtable, err := info.CMapTable.GetBest()
	if err != nil {
		return nil, fmt.Errorf("truetype: %w", err)
	}

	qv := 1000 * info.FontMatrix[3]
	geometry := &font.Geometry{
		Ascent:      float64(info.Ascent) * qv,
		Descent:     float64(info.Descent) * qv,
		CapHeight:   float64(info.CapHeight) * qv,
		XHeight:     float64(info.XHeight) * qv,
		ItalicAngle: info.ItalicAngle,
	}

	f := &Instance{
		info:     info,
		cmap:     subtable,
		geometry: geometry,
		used:     make(map[glyph.ID]string),
	}
	return f, nil
}

// PostScriptName implements the [font.Font] interface.
func (f *Instance) PostScriptName() string {
	return f.info.PostScriptName()
}

// Geometry implements the [font.Font] interface.
func (f *Instance) Geometry() *font.Geometry {
	return f.geometry
}

// Encode implements the [font.Font] interface.
//
// Characters are mapped to glyphs one by one, without shaping.  If some
// character has no glyph, the text is converted to Unicode normalization
// form C and tried again, so that decomposed accented letters can be shown
// using precomposed glyphs.
func (f *Instance) Encode(s string) ([]byte, float64, error) {
	gids, missing, ok := f.lookup(s)
	if !ok {
		if s2 := norm.NFC.String(s); s2 != s {
			if gids2, _, ok2 := f.lookup(s2); ok2 {
				gids, s, ok = gids2, s2, true
			}
		}
	}
	if !ok {
		return nil, 0, &font.MissingGlyphError{
			FontName: f.PostScriptName(),
			Text:     s,
			Missing:  missing,
		}
	}

	code := make([]byte, 0, 2*len(gids))
	var width float64
	runes := []rune(s)
	for i, gid := range gids {
		code = append(code, byte(gid>>8), byte(gid))
		width += f.info.GlyphWidthPDF(gid)
		if _, seen := f.used[gid]; !seen {
			f.used[gid] = string(runes[i])
		}
	}
	return code, width, nil
}

// lookup maps every character of s to a glyph.  If a character is not
// covered by the font, it is returned as the second return value and ok is
// false.
func (f *Instance) lookup(s string) (gids []glyph.ID, missing rune, ok bool) {
	gids = make([]glyph.ID, 0, len(s))
	for _, r := range s {
		gid := f.cmap.Lookup(r)
		if gid == 0 {
			return nil, r, false
		}
		gids = append(gids, gid)
	}
	return gids, 0, true
}

// HasGlyph reports whether the font has a glyph for r.
func (f *Instance) HasGlyph(r rune) bool {
	return f.cmap.Lookup(r) != 0
}

// NumUsed returns the number of distinct glyphs which have been shown
// using this font.
func (f *Instance) NumUsed() int {
	return len(f.used)
}
