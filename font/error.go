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

import (
	"errors"
	"fmt"
)

// MissingGlyphError indicates that a font has no glyph for a character.
type MissingGlyphError struct {
	FontName string
	Text     string // the text which could not be encoded
	Missing  rune   // the first character without a glyph
}

func (err *MissingGlyphError) Error() string {
	return fmt.Sprintf("font %s: no glyph for %q in %q", err.FontName, err.Missing, err.Text)
}

// IsMissingGlyph returns true if err is, or wraps, a *MissingGlyphError.
func IsMissingGlyph(err error) bool {
	var e *MissingGlyphError
	return errors.As(err, &e)
}
