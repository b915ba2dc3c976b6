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
	"bytes"
	"errors"
	"fmt"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/pdfsample/font"
)

// This file implements the text-related PDF operators.  The operators
// implemented here are defined in tables 103, 105, 106 and 107 of ISO
// 32000-2:2020.

// TextStart starts a new text object.
//
// This implements the PDF graphics operator "BT".
func (w *Writer) TextStart() {
	if !w.isValid("TextStart", objPage) {
		return
	}
	w.currentObject = objText

	w.nesting = append(w.nesting, pairTypeBT)

	w.State.TextMatrix = matrix.Identity
	w.State.TextLineMatrix = matrix.Identity
	w.Set |= StateTextMatrix

	_, w.Err = fmt.Fprintln(w.Content, "BT")
}

// TextEnd ends the current text object.
//
// This implements the PDF graphics operator "ET".
func (w *Writer) TextEnd() {
	if !w.isValid("TextEnd", objText) {
		return
	}
	w.currentObject = objPage

	if len(w.nesting) == 0 || w.nesting[len(w.nesting)-1] != pairTypeBT {
		w.Err = errors.New("TextEnd: no matching TextStart")
		return
	}
	w.nesting = w.nesting[:len(w.nesting)-1]

	w.Set &= ^StateTextMatrix

	_, w.Err = fmt.Fprintln(w.Content, "ET")
}

// TextSetLeading sets the leading.
// The leading is the distance between the baselines of two consecutive lines of text.
// Positive values indicate that the next line of text is below the current line.
//
// This implements the PDF graphics operator "TL".
func (w *Writer) TextSetLeading(leading float64) {
	if !w.isValid("TextSetLeading", objText|objPage) {
		return
	}
	if w.isSet(StateTextLeading) && nearlyEqual(leading, w.State.TextLeading) {
		return
	}

	w.State.TextLeading = leading
	w.Set |= StateTextLeading

	_, w.Err = fmt.Fprintln(w.Content, w.coord(leading), "TL")
}

// TextSetFont sets the font and font size.
//
// This implements the PDF graphics operator "Tf".
func (w *Writer) TextSetFont(F font.Font, size float64) {
	if !w.isValid("TextSetFont", objText|objPage) {
		return
	}
	if w.isSet(StateTextFont) && w.State.TextFont == F && nearlyEqual(w.State.TextFontSize, size) {
		return
	}

	w.State.TextFont = F
	w.State.TextFontSize = size
	w.State.Set |= StateTextFont

	name := w.getResourceName(catFont, F)
	_, w.Err = fmt.Fprintln(w.Content, "/"+name, w.coord(size), "Tf")
}

// TextFirstLine moves to the start of the next line of text.
//
// This implements the PDF graphics operator "Td".
func (w *Writer) TextFirstLine(dx, dy float64) {
	if !w.isValid("TextFirstLine", objText) {
		return
	}

	w.TextLineMatrix = matrix.Translate(dx, dy).Mul(w.TextLineMatrix)
	w.TextMatrix = w.TextLineMatrix

	_, w.Err = fmt.Fprintln(w.Content, w.coord(dx), w.coord(dy), "Td")
}

// TextSetMatrix replaces the current text matrix and line matrix with M.
//
// This implements the PDF graphics operator "Tm".
func (w *Writer) TextSetMatrix(M matrix.Matrix) {
	if !w.isValid("TextSetMatrix", objText) {
		return
	}

	w.TextMatrix = M
	w.TextLineMatrix = M
	w.Set |= StateTextMatrix

	_, w.Err = fmt.Fprintln(w.Content, w.coord(M[0]), w.coord(M[1]), w.coord(M[2]), w.coord(M[3]), w.coord(M[4]), w.coord(M[5]), "Tm")
}

// TextNextLine moves to the start of the next line of text.
//
// This implements the PDF graphics operator "T*".
func (w *Writer) TextNextLine() {
	if !w.isValid("TextNextLine", objText) {
		return
	}
	if err := w.mustBeSet(StateTextMatrix | StateTextLeading); err != nil {
		w.Err = err
		return
	}

	w.TextLineMatrix = matrix.Translate(0, -w.TextLeading).Mul(w.TextLineMatrix)
	w.TextMatrix = w.TextLineMatrix

	_, w.Err = fmt.Fprintln(w.Content, "T*")
}

// TextShow shows a string using the current font.  The return value is
// the width of the text, in text space units.
//
// If the current font cannot show s, a *font.MissingGlyphError is
// returned.  In this case nothing is written, and the writer remains
// usable.  All other errors are also stored in w.Err.
//
// This implements the PDF graphics operator "Tj".
func (w *Writer) TextShow(s string) (float64, error) {
	if !w.isValid("TextShow", objText) {
		return 0, w.Err
	}
	if err := w.mustBeSet(StateTextFont | StateTextMatrix); err != nil {
		w.Err = err
		return 0, err
	}

	code, width, err := w.TextFont.Encode(s)
	if font.IsMissingGlyph(err) {
		return 0, err
	} else if err != nil {
		w.Err = err
		return 0, err
	}

	tx := width * w.TextFontSize / 1000
	w.TextMatrix = matrix.Translate(tx, 0).Mul(w.TextMatrix)

	_, w.Err = fmt.Fprintln(w.Content, formatString(code), "Tj")
	return tx, w.Err
}

// formatString formats a PDF string for use in a content stream.  Strings
// consisting mostly of printable ASCII are written as literal strings,
// everything else is written in hexadecimal.
//
// See section 7.3.4 of ISO 32000-2:2020.
func formatString(s []byte) string {
	printable := 0
	for _, c := range s {
		if c >= 0x20 && c < 0x7F {
			printable++
		}
	}
	if len(s) > 0 && 2*printable <= len(s) {
		return fmt.Sprintf("<%X>", s)
	}

	buf := &bytes.Buffer{}
	buf.WriteByte('(')
	for _, c := range s {
		switch c {
		case '(', ')', '\\':
			buf.WriteByte('\\')
			buf.WriteByte(c)
		case '\r':
			buf.WriteString(`\r`)
		case '\n':
			buf.WriteString(`\n`)
		default:
			if c < 0x20 || c >= 0x7F {
				fmt.Fprintf(buf, "\\%03o", c)
			} else {
				buf.WriteByte(c)
			}
		}
	}
	buf.WriteByte(')')
	return buf.String()
}
