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

// Package standard provides access to the standard PDF fonts.
//
// These fonts are not embedded into the PDF file; every PDF viewer is
// required to provide them.  Text is encoded using WinAnsiEncoding, so only
// the characters of the Windows-1252 character set can be shown.
//
// The Symbol and ZapfDingbats fonts use their own built-in encodings, and
// are not supported by this package.
package standard

import (
	"fmt"

	pdfcpufont "github.com/pdfcpu/pdfcpu/pkg/font"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
	"golang.org/x/text/encoding/charmap"

	"seehuhn.de/go/pdfsample/document"
	"seehuhn.de/go/pdfsample/font"
)

// Font identifies the individual fonts.
type Font string

// Constants for the standard PDF fonts with a Latin character set.
const (
	Courier              Font = "Courier"
	CourierBold          Font = "Courier-Bold"
	CourierBoldOblique   Font = "Courier-BoldOblique"
	CourierOblique       Font = "Courier-Oblique"
	Helvetica            Font = "Helvetica"
	HelveticaBold        Font = "Helvetica-Bold"
	HelveticaBoldOblique Font = "Helvetica-BoldOblique"
	HelveticaOblique     Font = "Helvetica-Oblique"
	TimesRoman           Font = "Times-Roman"
	TimesBold            Font = "Times-Bold"
	TimesBoldItalic      Font = "Times-BoldItalic"
	TimesItalic          Font = "Times-Italic"
)

// All lists the fonts defined in this package.
var All = []Font{
	Courier,
	CourierBold,
	CourierBoldOblique,
	CourierOblique,
	Helvetica,
	HelveticaBold,
	HelveticaBoldOblique,
	HelveticaOblique,
	TimesRoman,
	TimesBold,
	TimesBoldItalic,
	TimesItalic,
}

// Instance is a standard font which can be used in a content stream.
type Instance struct {
	name     Font
	geometry *font.Geometry
}

var _ font.Font = (*Instance)(nil)

// New returns a new font instance for the given standard font.
func (f Font) New() (*Instance, error) {
	g, ok := afmGeometry[f]
	if !ok {
		return nil, fmt.Errorf("unknown standard font %q", string(f))
	}
	if !pdfcpufont.IsCoreFont(string(f)) {
		return nil, fmt.Errorf("no metrics for standard font %q", string(f))
	}
	return &Instance{
		name:     f,
		geometry: &g,
	}, nil
}

// Must returns a new font instance for the given standard font.
// It panics if there is an error.
func (f Font) Must() *Instance {
	inst, err := f.New()
	if err != nil {
		panic(err)
	}
	return inst
}

// PostScriptName implements the [font.Font] interface.
func (f *Instance) PostScriptName() string {
	return string(f.name)
}

// Geometry implements the [font.Font] interface.
func (f *Instance) Geometry() *font.Geometry {
	return f.geometry
}

// Encode implements the [font.Font] interface.
func (f *Instance) Encode(s string) ([]byte, float64, error) {
	code := make([]byte, 0, len(s))
	for _, r := range s {
		c, ok := encodeRune(r)
		if !ok {
			return nil, 0, &font.MissingGlyphError{
				FontName: string(f.name),
				Text:     s,
				Missing:  r,
			}
		}
		code = append(code, c)
	}

	// With a font size of 1000, the text width is in glyph space units.
	width := pdfcpufont.TextWidth(string(code), string(f.name), 1000)
	return code, width, nil
}

// encodeRune maps r to its WinAnsiEncoding code.  Control characters and
// the C1 range have no glyphs in the standard fonts.
func encodeRune(r rune) (byte, bool) {
	if r < 0x20 || r >= 0x7F && r < 0xA0 {
		return 0, false
	}
	return charmap.Windows1252.EncodeRune(r)
}

// Embed implements the [document.Embedder] interface.
//
// See section 9.6.2.1 of ISO 32000-2:2020.
func (f *Instance) Embed(out *document.Out) (types.Object, error) {
	dict := types.Dict{
		"Type":     types.Name("Font"),
		"Subtype":  types.Name("Type1"),
		"BaseFont": types.Name(f.name),
		"Encoding": types.Name("WinAnsiEncoding"),
	}
	return out.Add(dict)
}

// afmGeometry gives the font-wide metrics from the Adobe Font Metrics files
// of the standard fonts.
var afmGeometry = map[Font]font.Geometry{
	Courier:              {Ascent: 629, Descent: -157, CapHeight: 562, XHeight: 426},
	CourierBold:          {Ascent: 629, Descent: -157, CapHeight: 562, XHeight: 439},
	CourierBoldOblique:   {Ascent: 629, Descent: -157, CapHeight: 562, XHeight: 439, ItalicAngle: -12},
	CourierOblique:       {Ascent: 629, Descent: -157, CapHeight: 562, XHeight: 426, ItalicAngle: -12},
	Helvetica:            {Ascent: 718, Descent: -207, CapHeight: 718, XHeight: 523},
	HelveticaBold:        {Ascent: 718, Descent: -207, CapHeight: 718, XHeight: 532},
	HelveticaBoldOblique: {Ascent: 718, Descent: -207, CapHeight: 718, XHeight: 532, ItalicAngle: -12},
	HelveticaOblique:     {Ascent: 718, Descent: -207, CapHeight: 718, XHeight: 523, ItalicAngle: -12},
	TimesRoman:           {Ascent: 683, Descent: -217, CapHeight: 662, XHeight: 450},
	TimesBold:            {Ascent: 683, Descent: -217, CapHeight: 676, XHeight: 461},
	TimesBoldItalic:      {Ascent: 683, Descent: -217, CapHeight: 669, XHeight: 462, ItalicAngle: -15},
	TimesItalic:          {Ascent: 683, Descent: -217, CapHeight: 653, XHeight: 441, ItalicAngle: -15.5},
}
