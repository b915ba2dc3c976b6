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

	"seehuhn.de/go/pdfsample/document"
)

// DrawXObject draws an XObject, for example an image.
// The object is drawn into the unit square of the current user space.
//
// This implements the PDF graphics operator "Do".
func (w *Writer) DrawXObject(obj document.Embedder) {
	if !w.isValid("DrawXObject", objPage) {
		return
	}

	name := w.getResourceName(catXObject, obj)
	_, w.Err = fmt.Fprintln(w.Content, "/"+name, "Do")
}
