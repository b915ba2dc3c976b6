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

package document

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// Rectangle is a PDF rectangle, given by the coordinates of the lower-left
// and upper-right corners.
type Rectangle struct {
	LLx, LLy, URx, URy float64
}

// Common paper sizes, in PDF units.
var (
	A4     = &Rectangle{URx: 595.276, URy: 841.890}
	A5     = &Rectangle{URx: 419.528, URy: 595.276}
	Letter = &Rectangle{URx: 612, URy: 792}
)

// Dx returns the width of the rectangle.
func (r *Rectangle) Dx() float64 {
	return r.URx - r.LLx
}

// Dy returns the height of the rectangle.
func (r *Rectangle) Dy() float64 {
	return r.URy - r.LLy
}

func (r *Rectangle) String() string {
	return fmt.Sprintf("[%g %g %g %g]", r.LLx, r.LLy, r.URx, r.URy)
}

// Array returns the rectangle as a PDF array.
func (r *Rectangle) Array() types.Array {
	return types.NewNumberArray(r.LLx, r.LLy, r.URx, r.URy)
}

// fromPDFRect converts a pdfcpu rectangle into a Rectangle.
// The corners are normalized, so that LLx <= URx and LLy <= URy.
func fromPDFRect(r *types.Rectangle) *Rectangle {
	return &Rectangle{
		LLx: min(r.LL.X, r.UR.X),
		LLy: min(r.LL.Y, r.UR.Y),
		URx: max(r.LL.X, r.UR.X),
		URy: max(r.LL.Y, r.UR.Y),
	}
}
