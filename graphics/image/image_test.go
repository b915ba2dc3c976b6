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

package image

import (
	"bytes"
	"image"
	gocolor "image/color"
	"testing"

	"seehuhn.de/go/pdfsample/document"
)

func TestNeedsAlpha(t *testing.T) {
	opaque := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	for i := 3; i < len(opaque.Pix); i += 4 {
		opaque.Pix[i] = 255
	}
	transparent := image.NewNRGBA(image.Rect(0, 0, 4, 3))

	cases := []struct {
		name string
		img  image.Image
		want bool
	}{
		{"gray", image.NewGray(image.Rect(0, 0, 2, 2)), false},
		{"alpha", image.NewAlpha(image.Rect(0, 0, 2, 2)), true},
		{"opaque NRGBA", opaque, false},
		{"transparent NRGBA", transparent, true},
	}
	for _, c := range cases {
		if got := needsAlphaChannel(c.img); got != c.want {
			t.Errorf("%s: got %t, want %t", c.name, got, c.want)
		}
	}
}

func TestEmbed(t *testing.T) {
	img := image.NewNRGBA(image.Rect(10, 20, 17, 25))
	img.Set(12, 21, gocolor.NRGBA{R: 255, A: 128})

	im := FromImage(img)
	if im.Width() != 7 || im.Height() != 5 {
		t.Errorf("wrong size %dx%d", im.Width(), im.Height())
	}

	buf := &bytes.Buffer{}
	if err := document.WriteBlank(buf, nil); err != nil {
		t.Fatal(err)
	}
	doc, err := document.Open(bytes.NewReader(buf.Bytes()), nil)
	if err != nil {
		t.Fatal(err)
	}
	obj, err := im.Embed(doc.Out())
	if err != nil {
		t.Fatal(err)
	}
	if obj == nil {
		t.Fatal("no object returned")
	}
}
