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
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/pdfsample/document"
	"seehuhn.de/go/pdfsample/font"
)

// testFont maps ASCII letters to themselves, with every glyph 500 units
// wide.  All other characters are missing.
type testFont struct{ name string }

func (f *testFont) PostScriptName() string { return f.name }

func (f *testFont) Geometry() *font.Geometry {
	return &font.Geometry{Ascent: 750, Descent: -250}
}

func (f *testFont) Encode(s string) ([]byte, float64, error) {
	for _, r := range s {
		if r < 0x20 || r >= 0x7F {
			return nil, 0, &font.MissingGlyphError{FontName: f.name, Text: s, Missing: r}
		}
	}
	return []byte(s), 500 * float64(len(s)), nil
}

func (f *testFont) Embed(*document.Out) (types.Object, error) {
	return nil, nil
}

type testImage struct{}

func (testImage) Embed(*document.Out) (types.Object, error) {
	return nil, nil
}

func TestPath(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)
	w.SetStrokeColor(Red)
	w.SetLineWidth(2)
	w.MoveTo(0, 0)
	w.LineTo(297.638, 841.89)
	w.LineTo(595.276, 0)
	w.Stroke()
	w.Rectangle(10, 20, 100, 150)
	w.FillAndStroke()
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	want := "1 0 0 RG\n2 w\n0 0 m\n297.638 841.89 l\n595.276 0 l\nS\n10 20 100 150 re\nB\n"
	if d := cmp.Diff(want, buf.String()); d != "" {
		t.Errorf("content mismatch (-want +got):\n%s", d)
	}
}

func TestRedundantState(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)
	w.SetLineWidth(1) // the default
	w.SetFillColor(Black)
	w.SetFillColor(Green)
	w.SetFillColor(Green)
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff("0 1 0 rg\n", buf.String()); d != "" {
		t.Errorf("content mismatch (-want +got):\n%s", d)
	}
}

func TestStateStack(t *testing.T) {
	w := NewWriter(&bytes.Buffer{})
	w.PushGraphicsState()
	w.Transform(matrix.Translate(10, 20))
	w.SetLineWidth(4)
	if d := cmp.Diff(matrix.Translate(10, 20), w.CTM); d != "" {
		t.Errorf("CTM mismatch (-want +got):\n%s", d)
	}
	w.PopGraphicsState()
	if w.LineWidth != 1 || w.CTM != matrix.Identity {
		t.Error("graphics state not restored")
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestNesting(t *testing.T) {
	type testCase struct {
		name string
		ops  func(w *Writer)
	}
	cases := []testCase{
		{"unbalanced q", func(w *Writer) { w.PushGraphicsState() }},
		{"unbalanced BT", func(w *Writer) { w.TextStart() }},
		{"Q without q", func(w *Writer) { w.PopGraphicsState() }},
		{"ET without BT", func(w *Writer) { w.TextEnd() }},
		{"LineTo without MoveTo", func(w *Writer) { w.LineTo(1, 2) }},
		{"Do inside BT", func(w *Writer) {
			w.TextStart()
			w.DrawXObject(testImage{})
			w.TextEnd()
		}},
		{"q inside BT", func(w *Writer) {
			w.TextStart()
			w.PushGraphicsState()
		}},
		{"cm inside path", func(w *Writer) {
			w.MoveTo(0, 0)
			w.Transform(matrix.Identity)
		}},
	}
	for _, c := range cases {
		w := NewWriter(&bytes.Buffer{})
		c.ops(w)
		if err := w.Close(); err == nil {
			t.Errorf("%s: no error", c.name)
		}
	}
}

func TestText(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)
	F := &testFont{name: "Test"}

	w.TextStart()
	w.SetFillColor(Red)
	w.TextSetFont(F, 10)
	w.TextFirstLine(0, 2.5)
	width, err := w.TextShow("Hi (there)")
	if err != nil {
		t.Fatal(err)
	}
	w.TextEnd()
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	if width != 50 {
		t.Errorf("width = %g, want 50", width)
	}
	want := "BT\n1 0 0 rg\n/F1 10 Tf\n0 2.5 Td\n(Hi \\(there\\)) Tj\nET\n"
	if d := cmp.Diff(want, buf.String()); d != "" {
		t.Errorf("content mismatch (-want +got):\n%s", d)
	}
	if w.Resources.Font["F1"] != F {
		t.Error("font not in resources")
	}
}

func TestTextMatrix(t *testing.T) {
	w := NewWriter(&bytes.Buffer{})
	F := &testFont{name: "Test"}

	w.TextStart()
	w.TextSetFont(F, 20)
	w.TextSetMatrix(matrix.Translate(100, 200))
	if _, err := w.TextShow("ab"); err != nil {
		t.Fatal(err)
	}
	// 2 glyphs, 500 units each, at 20pt
	want := matrix.Translate(120, 200)
	if d := cmp.Diff(want, w.TextMatrix, cmpopts.EquateApprox(0, 1e-9)); d != "" {
		t.Errorf("text matrix (-want +got):\n%s", d)
	}

	w.TextSetLeading(24)
	w.TextNextLine()
	want = matrix.Translate(100, 176)
	if d := cmp.Diff(want, w.TextMatrix, cmpopts.EquateApprox(0, 1e-9)); d != "" {
		t.Errorf("text matrix after T* (-want +got):\n%s", d)
	}
	w.TextEnd()
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestTextShowMissing(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)
	w.TextStart()
	w.TextSetFont(&testFont{name: "Test"}, 12)
	before := buf.Len()

	_, err := w.TextShow("😀")
	if !font.IsMissingGlyph(err) {
		t.Fatalf("expected MissingGlyphError, got %v", err)
	}
	if buf.Len() != before {
		t.Error("output written for missing glyph")
	}
	if w.Err != nil {
		t.Errorf("writer error set: %v", w.Err)
	}

	if _, err := w.TextShow("ok"); err != nil {
		t.Error(err)
	}
	w.TextEnd()
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestTextShowNoFont(t *testing.T) {
	w := NewWriter(&bytes.Buffer{})
	w.TextStart()
	if _, err := w.TextShow("abc"); err == nil {
		t.Error("TextShow without font succeeded")
	}
}

func TestResourceNames(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)
	w.Reserve(CategoryFont, "F1", "F3")
	w.Reserve(CategoryXObject, "Im1")

	F1 := &testFont{name: "A"}
	F2 := &testFont{name: "B"}
	w.TextStart()
	w.TextSetFont(F1, 10)
	w.TextSetFont(F2, 10)
	w.TextSetFont(F1, 12)
	w.TextEnd()
	w.DrawXObject(testImage{})
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	var names []string
	for name := range w.Resources.Font {
		names = append(names, name)
	}
	if d := cmp.Diff([]string{"F2", "F4"}, names, cmpopts.SortSlices(func(a, b string) bool { return a < b })); d != "" {
		t.Errorf("font names (-want +got):\n%s", d)
	}
	if _, ok := w.Resources.XObject["Im2"]; !ok {
		t.Errorf("unexpected XObject names %v", w.Resources.XObject)
	}
	if !strings.Contains(buf.String(), "/F2 12 Tf") {
		t.Errorf("font name not reused:\n%s", buf.String())
	}
}

func TestFormatString(t *testing.T) {
	cases := []struct {
		in   []byte
		want string
	}{
		{[]byte("abc"), "(abc)"},
		{[]byte(`a\b`), `(a\\b)`},
		{[]byte("é"), "<C3A9>"},
		{[]byte{0x00, 0x24, 0x00, 0x25}, "<00240025>"},
		{[]byte{'a', 'b', 0xFC}, `(ab\374)`},
		{nil, "()"},
	}
	for _, c := range cases {
		if got := formatString(c.in); got != c.want {
			t.Errorf("formatString(%q) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestToRGB(t *testing.T) {
	got := ToRGB(White)
	if got != White {
		t.Errorf("ToRGB(White) = %v", got)
	}
	r, g, b, a := Blue.RGBA()
	if r != 0 || g != 0 || b != 0xffff || a != 0xffff {
		t.Errorf("Blue.RGBA() = %d %d %d %d", r, g, b, a)
	}
}
