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

// Package textimage draws text as an image, for text which no PDF font
// can show.
package textimage

import (
	"errors"
	"image"
	"image/color"
	"math"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/pdfsample/emoji"
	"seehuhn.de/go/pdfsample/graphics"
	pdfimage "seehuhn.de/go/pdfsample/graphics/image"
)

// oversample is the resolution of the bitmap, relative to the size of the
// text on the page.
const oversample = 3

// Painter is a rendered piece of text, ready to be placed on a page.
type Painter struct {
	// X and Y give the position of the lower left corner of the image in
	// user space.
	X, Y float64

	// Width is the advance width of the text and Height is the sum of
	// ascent and descent, in user space units.
	Width, Height float64

	// Descent is the distance between the baseline and the bottom of the
	// image.
	Descent float64

	Image *pdfimage.XObject
}

// New renders text into a bitmap.  The text is drawn at the given size and
// colour, with the start of its baseline at (x, y).
func New(text string, size float64, c color.Color, x, y float64, proc *emoji.Processor) (*Painter, error) {
	if text == "" {
		return nil, errors.New("textimage: empty text")
	}
	if proc == nil {
		var err error
		proc, err = emoji.New()
		if err != nil {
			return nil, err
		}
	}

	ext, err := proc.Measure(text, size)
	if err != nil {
		return nil, err
	}
	big, err := proc.Measure(text, size*oversample)
	if err != nil {
		return nil, err
	}

	width := max(int(math.Ceil(big.Width)), 1)
	height := max(int(math.Ceil(big.Height())), 1)
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	if _, err := proc.Draw(img, text, size*oversample, c); err != nil {
		return nil, err
	}

	p := &Painter{
		X:       x,
		Y:       y - ext.Descent,
		Width:   ext.Width,
		Height:  ext.Height(),
		Descent: ext.Descent,
		Image:   pdfimage.FromImage(img),
	}
	return p, nil
}

// Draw places the image on the page.  This must be called outside text
// objects.
func (p *Painter) Draw(w *graphics.Writer) {
	w.PushGraphicsState()
	w.Transform(matrix.Matrix{p.Width, 0, 0, p.Height, p.X, p.Y})
	w.DrawXObject(p.Image)
	w.PopGraphicsState()
}
