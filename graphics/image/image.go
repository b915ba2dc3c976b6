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

// Package image embeds raster images into PDF files.
package image

import (
	"image"
	gocolor "image/color"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"seehuhn.de/go/pdfsample/document"
)

// XObject is an image which is stored losslessly in the PDF file.
// Transparent images are embedded with a soft mask.
type XObject struct {
	Data image.Image
}

var _ document.Embedder = (*XObject)(nil)

// FromImage wraps a Go image for use in a content stream.
func FromImage(img image.Image) *XObject {
	return &XObject{Data: img}
}

// Width returns the width of the image in pixels.
func (im *XObject) Width() int {
	return im.Data.Bounds().Dx()
}

// Height returns the height of the image in pixels.
func (im *XObject) Height() int {
	return im.Data.Bounds().Dy()
}

// Embed adds the image to a PDF file.
// This implements the [document.Embedder] interface.
//
// See section 8.9.5 of ISO 32000-2:2020.
func (im *XObject) Embed(out *document.Out) (types.Object, error) {
	src := im.Data
	bounds := src.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	withAlpha := needsAlphaChannel(src)

	// write the image data
	// (and gather the alpha values at the same time)
	pix := make([]byte, 0, 3*width*height)
	var alpha []byte
	if withAlpha {
		alpha = make([]byte, 0, width*height)
	}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := gocolor.NRGBAModel.Convert(src.At(x, y)).(gocolor.NRGBA)
			pix = append(pix, c.R, c.G, c.B)
			if withAlpha {
				alpha = append(alpha, c.A)
			}
		}
	}

	// see Table 87 of ISO 32000-2:2020
	imDict := types.Dict{
		"Type":             types.Name("XObject"),
		"Subtype":          types.Name("Image"),
		"Width":            types.Integer(width),
		"Height":           types.Integer(height),
		"ColorSpace":       types.Name("DeviceRGB"),
		"BitsPerComponent": types.Integer(8),
	}

	if withAlpha {
		maskDict := types.Dict{
			"Type":             types.Name("XObject"),
			"Subtype":          types.Name("Image"),
			"Width":            types.Integer(width),
			"Height":           types.Integer(height),
			"ColorSpace":       types.Name("DeviceGray"),
			"BitsPerComponent": types.Integer(8),
		}
		maskRef, err := out.AddStream(maskDict, alpha)
		if err != nil {
			return nil, err
		}
		imDict["SMask"] = maskRef
	}

	return out.AddStream(imDict, pix)
}

func needsAlphaChannel(img image.Image) bool {
	switch img.ColorModel() {
	case gocolor.GrayModel, gocolor.Gray16Model, gocolor.CMYKModel, gocolor.YCbCrModel:
		return false

	case gocolor.AlphaModel, gocolor.Alpha16Model:
		return true

	default:
		// check all pixels to see whether the alpha channel is actually used
		bounds := img.Bounds()
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				_, _, _, a := img.At(x, y).RGBA()
				if a != 0xffff { // not fully opaque
					return true
				}
			}
		}
		return false
	}
}
