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

// Package affine converts between raster-style affine transformations and
// PDF transformation matrices.
//
// Raster graphics libraries, like golang.org/x/image, store affine
// transformations as the first two rows of a 3x3 matrix, in row-major
// order:
//
//	a b c
//	d e f
//	0 0 1
//
// so that a point (x, y) is mapped to (a*x + b*y + c, d*x + e*y + f).
// PDF stores the same transformation as the six numbers [a d b e c f].
package affine

import (
	"golang.org/x/image/math/f64"

	"seehuhn.de/go/geom/matrix"
)

// Identity is the identity transformation.
var Identity = f64.Aff3{1, 0, 0, 0, 1, 0}

// Builder accumulates transformations.  Every Post* method appends a
// transformation which is applied after all previous ones.
//
// The zero value is not usable; use [NewBuilder].
type Builder struct {
	M f64.Aff3
}

// NewBuilder returns a Builder which starts with the identity
// transformation.
func NewBuilder() *Builder {
	return &Builder{M: Identity}
}

// PostTranslate appends a translation by (dx, dy).
func (b *Builder) PostTranslate(dx, dy float64) *Builder {
	return b.post(matrix.Translate(dx, dy))
}

// PostScale appends a scaling by sx horizontally and sy vertically.
func (b *Builder) PostScale(sx, sy float64) *Builder {
	return b.post(matrix.Scale(sx, sy))
}

// PostRotate appends a rotation around the origin.  The angle is given in
// degrees; positive angles rotate the x-axis towards the y-axis.
func (b *Builder) PostRotate(degrees float64) *Builder {
	return b.post(matrix.RotateDeg(degrees))
}

// PDF returns the accumulated transformation as a PDF matrix.
func (b *Builder) PDF() matrix.Matrix {
	return ToPDF(b.M)
}

// post applies m after the accumulated transformation.
func (b *Builder) post(m matrix.Matrix) *Builder {
	b.M = FromPDF(ToPDF(b.M).Mul(m))
	return b
}

// Apply maps the point (x, y) using m.
func Apply(m f64.Aff3, x, y float64) (float64, float64) {
	return m[0]*x + m[1]*y + m[2], m[3]*x + m[4]*y + m[5]
}

// ToPDF converts a raster-style transformation to a PDF matrix.
func ToPDF(m f64.Aff3) matrix.Matrix {
	return matrix.Matrix{m[0], m[3], m[1], m[4], m[2], m[5]}
}

// FromPDF converts a PDF matrix to a raster-style transformation.
// This is the inverse of [ToPDF].
func FromPDF(m matrix.Matrix) f64.Aff3 {
	return f64.Aff3{m[0], m[2], m[4], m[1], m[3], m[5]}
}
