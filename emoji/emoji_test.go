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

package emoji

import (
	"image"
	"image/color"
	"math"
	"testing"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

func TestIsEmoji(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"a", false},
		{"\u3042", false},
		{"\U0001F600", true},
		{"\U0001FAE0", true},
		{"\U0001F44D\U0001F3FD", true},
		{"\U0001F1EF\U0001F1F5", true},
		{"1\uFE0F\u20E3", true},
		{"\u2764\uFE0F", true},
		{"\U0001F3FB", false}, // a lone modifier
		{"", false},
	}
	for _, c := range cases {
		if got := IsEmoji(c.in); got != c.want {
			t.Errorf("IsEmoji(%q) = %t, want %t", c.in, got, c.want)
		}
	}
}

func TestSimplify(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"abc", "abc"},
		{"é", "é"},
		{"\U0001F600", "\U0001F600"},
		{"\U0001F44D\U0001F3FD", "\U0001F44D"},
		{"\u2764\uFE0F", "\u2764"},
		{"\U0001F468\u200D\U0001F469\u200D\U0001F467", "\U0001F468"},
		{"\U0001F1EF\U0001F1F5", "\U0001F1EF\U0001F1F5"},
		{"1\uFE0F\u20E3", "1"},
		{"\U0001F3F4\U000E0067\U000E0062\U000E0073\U000E0063\U000E0074\U000E007F", "\U0001F3F4"},
	}
	for _, c := range cases {
		if got := Simplify(c.in); got != c.want {
			t.Errorf("Simplify(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFaceOrder(t *testing.T) {
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		t.Fatal(err)
	}
	p, err := New(bold)
	if err != nil {
		t.Fatal(err)
	}
	if len(p.fonts) != 2 {
		t.Fatalf("got %d fonts, want 2", len(p.fonts))
	}
	if i := p.faceFor('A'); i != 0 {
		t.Errorf("'A' drawn with font %d, want 0", i)
	}
	if i := p.faceFor('\U0001F600'); i != 1 {
		t.Errorf("emoji drawn with font %d, want the last font", i)
	}
}

func TestMeasure(t *testing.T) {
	p, err := New()
	if err != nil {
		t.Fatal(err)
	}

	small, err := p.Measure("x", 10)
	if err != nil {
		t.Fatal(err)
	}
	large, err := p.Measure("x", 20)
	if err != nil {
		t.Fatal(err)
	}
	if small.Width <= 0 || small.Ascent <= 0 || small.Descent <= 0 {
		t.Fatalf("unexpected extent %v", small)
	}
	if math.Abs(2*small.Width-large.Width) > 1.0/32 {
		t.Errorf("width does not scale: %g vs %g", small.Width, large.Width)
	}
	if math.Abs(2*small.Height()-large.Height()) > 1.0/32 {
		t.Errorf("height does not scale: %g vs %g", small.Height(), large.Height())
	}

	plain, err := p.Measure("\U0001F44D", 16)
	if err != nil {
		t.Fatal(err)
	}
	toned, err := p.Measure("\U0001F44D\U0001F3FD", 16)
	if err != nil {
		t.Fatal(err)
	}
	if plain != toned {
		t.Errorf("modifier changes the extent: %v vs %v", plain, toned)
	}

	if _, err := p.Measure("x", 0); err == nil {
		t.Error("size 0 accepted")
	}
}

func TestDraw(t *testing.T) {
	p, err := New()
	if err != nil {
		t.Fatal(err)
	}
	img := image.NewNRGBA(image.Rect(0, 0, 40, 40))
	ext, err := p.Draw(img, "H", 30, color.Black)
	if err != nil {
		t.Fatal(err)
	}
	if ext.Width <= 0 || ext.Width > 40 {
		t.Fatalf("unexpected width %g", ext.Width)
	}

	var inked int
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			inked++
		}
	}
	if inked == 0 {
		t.Error("nothing was drawn")
	}

	// nothing must be drawn below the descent line
	bottom := int(math.Ceil(ext.Height()))
	for y := bottom + 1; y < 40; y++ {
		for x := 0; x < 40; x++ {
			if img.NRGBAAt(x, y).A != 0 {
				t.Fatalf("pixel (%d, %d) drawn below the text", x, y)
			}
		}
	}

	if _, err := p.Draw(img, "\uFE0F", 30, color.Black); err == nil {
		t.Error("drawing an empty sequence succeeded")
	}
}
