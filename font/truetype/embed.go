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

package truetype

import (
	"bytes"
	"crypto/sha256"
	"math"
	"slices"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/pdfsample/document"
)

// Embed implements the [document.Embedder] interface.
//
// The font file is subsetted to the glyphs used so far.  Text shown after
// the font has been embedded is not covered by the embedded subset.
//
// See sections 9.7.4 and 9.7.6 of ISO 32000-2:2020.
func (f *Instance) Embed(out *document.Out) (types.Object, error) {
	// Glyphs in the subset are arranged in order of increasing original
	// GID, which is also the CID.
	gids := make([]glyph.ID, 0, len(f.used)+1)
	gids = append(gids, 0)
	for gid := range f.used {
		gids = append(gids, gid)
	}
	slices.Sort(gids)

	origFont := f.info.Clone()
	origFont.CMapTable = nil
	origFont.Gdef = nil
	origFont.Gsub = nil
	origFont.Gpos = nil
	subsetFont := origFont.Subset(gids)

	tag := subsetTag(gids, f.info.NumGlyphs())
	baseFont := types.Name(tag + "+" + f.info.PostScriptName())

	fontFile := &bytes.Buffer{}
	length1, err := subsetFont.WriteTrueTypePDF(fontFile)
	if err != nil {
		return nil, err
	}
	fontFileRef, err := out.AddStream(types.Dict{
		"Length1": types.Integer(length1),
	}, fontFile.Bytes())
	if err != nil {
		return nil, err
	}

	fdRef, err := out.Add(f.fontDescriptor(baseFont, fontFileRef))
	if err != nil {
		return nil, err
	}

	cidToGIDRef, err := out.AddStream(nil, cidToGIDMap(gids))
	if err != nil {
		return nil, err
	}

	cidFont := types.Dict{
		"Type":     types.Name("Font"),
		"Subtype":  types.Name("CIDFontType2"),
		"BaseFont": baseFont,
		"CIDSystemInfo": types.Dict{
			"Registry":   types.StringLiteral("Adobe"),
			"Ordering":   types.StringLiteral("Identity"),
			"Supplement": types.Integer(0),
		},
		"FontDescriptor": fdRef,
		"DW":             types.Integer(math.Round(f.info.GlyphWidthPDF(0))),
		"CIDToGIDMap":    cidToGIDRef,
	}
	if w := f.widths(gids); len(w) > 0 {
		cidFont["W"] = w
	}
	cidFontRef, err := out.Add(cidFont)
	if err != nil {
		return nil, err
	}

	toUni := &bytes.Buffer{}
	if err := writeToUnicode(toUni, f.used); err != nil {
		return nil, err
	}
	toUniRef, err := out.AddStream(nil, toUni.Bytes())
	if err != nil {
		return nil, err
	}

	fontDict := types.Dict{
		"Type":            types.Name("Font"),
		"Subtype":         types.Name("Type0"),
		"BaseFont":        baseFont,
		"Encoding":        types.Name("Identity-H"),
		"DescendantFonts": types.Array{cidFontRef},
		"ToUnicode":       toUniRef,
	}
	return out.Add(fontDict)
}

// Font descriptor flags.
//
// See section 9.8.2 of ISO 32000-2:2020.
const (
	flagFixedPitch = 1 << 0
	flagSerif      = 1 << 1
	flagSymbolic   = 1 << 2
	flagScript     = 1 << 3
	flagItalic     = 1 << 6
)

func (f *Instance) fontDescriptor(baseFont types.Name, fontFile types.IndirectRef) types.Dict {
	info := f.info

	flags := flagSymbolic
	if info.IsFixedPitch() {
		flags |= flagFixedPitch
	}
	if info.IsSerif {
		flags |= flagSerif
	}
	if info.IsScript {
		flags |= flagScript
	}
	if info.IsItalic {
		flags |= flagItalic
	}

	bbox := info.FontBBoxPDF()
	g := f.geometry
	return types.Dict{
		"Type":     types.Name("FontDescriptor"),
		"FontName": baseFont,
		"Flags":    types.Integer(flags),
		"FontBBox": types.Array{
			types.Integer(math.Round(bbox.LLx)),
			types.Integer(math.Round(bbox.LLy)),
			types.Integer(math.Round(bbox.URx)),
			types.Integer(math.Round(bbox.URy)),
		},
		"ItalicAngle": types.Float(math.Round(g.ItalicAngle*10) / 10),
		"Ascent":      types.Integer(math.Round(g.Ascent)),
		"Descent":     types.Integer(math.Round(g.Descent)),
		"CapHeight":   types.Integer(math.Round(g.CapHeight)),
		"StemV":       types.Integer(0),
		"FontFile2":   fontFile,
	}
}

// widths returns the W array for the given glyphs, grouping runs of
// consecutive CIDs.
//
// See section 9.7.4.3 of ISO 32000-2:2020.
func (f *Instance) widths(gids []glyph.ID) types.Array {
	dw := math.Round(f.info.GlyphWidthPDF(0))

	var res types.Array
	var run types.Array
	var start, prev glyph.ID
	flush := func() {
		if len(run) > 0 {
			res = append(res, types.Integer(start), run)
			run = nil
		}
	}
	for _, gid := range gids {
		w := math.Round(f.info.GlyphWidthPDF(gid))
		if w == dw {
			continue
		}
		if len(run) == 0 || gid != prev+1 {
			flush()
			start = gid
		}
		run = append(run, types.Integer(w))
		prev = gid
	}
	flush()
	return res
}

// cidToGIDMap maps each CID (the original GID) to the GID in the subset.
// The map is stored as two bytes per CID, in big-endian order.
func cidToGIDMap(gids []glyph.ID) []byte {
	maxCID := gids[len(gids)-1]
	res := make([]byte, 2*(int(maxCID)+1))
	for subsetGID, cid := range gids {
		res[2*int(cid)] = byte(subsetGID >> 8)
		res[2*int(cid)+1] = byte(subsetGID)
	}
	return res
}

// subsetTag returns a six-letter tag which identifies the glyph subset.
//
// See section 9.9.2 of ISO 32000-2:2020.
func subsetTag(gids []glyph.ID, numGlyphs int) string {
	h := sha256.New()
	buf := make([]byte, 2)
	for _, gid := range gids {
		buf[0], buf[1] = byte(gid>>8), byte(gid)
		h.Write(buf)
	}
	buf[0], buf[1] = byte(numGlyphs>>8), byte(numGlyphs)
	h.Write(buf)
	sum := h.Sum(nil)

	tag := make([]byte, 6)
	for i := range tag {
		tag[i] = 'A' + sum[i]%26
	}
	return string(tag)
}
