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

package layout

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"seehuhn.de/go/pdfsample/document"
	"seehuhn.de/go/pdfsample/font"
	"seehuhn.de/go/pdfsample/graphics"
)

func TestClusters(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"abc", []string{"a", "b", "c"}},
		{"e\u0301x", []string{"e\u0301", "x"}},
		{"\u0e2a\u0e27\u0e31\u0e2a\u0e14\u0e35", []string{"\u0e2a", "\u0e27\u0e31", "\u0e2a", "\u0e14\u0e35"}},
		{"a\U0001F600b", []string{"a", "\U0001F600", "b"}},
		{"\U0001F44D\U0001F3FD!", []string{"\U0001F44D\U0001F3FD", "!"}},
		{"\U0001F468\u200D\U0001F469\u200D\U0001F467", []string{"\U0001F468\u200D\U0001F469\u200D\U0001F467"}},
		{"\U0001F1EF\U0001F1F5\U0001F1F0\U0001F1F7", []string{"\U0001F1EF\U0001F1F5", "\U0001F1F0\U0001F1F7"}},
		{"\U00029E3D", []string{"\U00029E3D"}},
		{"a\r\nb", []string{"a", "\r\n", "b"}},
	}
	for _, c := range cases {
		got := Clusters(c.in)
		if d := cmp.Diff(c.want, got); d != "" {
			t.Errorf("Clusters(%q) (-want +got):\n%s", c.in, d)
		}
		if strings.Join(got, "") != c.in {
			t.Errorf("Clusters(%q) does not cover the input", c.in)
		}
	}
}

// rangeFont can show the characters in [lo, hi], each 1000 units wide.
type rangeFont struct {
	name   string
	lo, hi rune
}

func (f *rangeFont) PostScriptName() string { return f.name }

func (f *rangeFont) Geometry() *font.Geometry {
	return &font.Geometry{Ascent: 800, Descent: -200}
}

func (f *rangeFont) Encode(s string) ([]byte, float64, error) {
	var n int
	for _, r := range s {
		if r < f.lo || r > f.hi {
			return nil, 0, &font.MissingGlyphError{FontName: f.name, Text: s, Missing: r}
		}
		n++
	}
	return []byte(strings.Repeat("x", n)), 1000 * float64(n), nil
}

func (f *rangeFont) Embed(*document.Out) (types.Object, error) {
	return nil, nil
}

type call struct {
	Cluster string
	X       float64
}

type recorder struct {
	calls []call
	width float64
	err   error
}

func (r *recorder) Paint(cluster string, x float64) (float64, error) {
	r.calls = append(r.calls, call{cluster, x})
	return r.width, r.err
}

func TestShow(t *testing.T) {
	latin := &rangeFont{name: "Latin", lo: 'a', hi: 'z'}
	kana := &rangeFont{name: "Kana", lo: 'ぁ', hi: 'ん'}
	fonts := []font.Font{latin, kana}

	buf := &bytes.Buffer{}
	w := graphics.NewWriter(buf)
	w.TextStart()
	fb := &recorder{width: 5}
	total, err := Show(w, "aあ😀b", fonts, 10, fb)
	if err != nil {
		t.Fatal(err)
	}
	w.TextEnd()
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	if total != 35 {
		t.Errorf("total width %g, want 35", total)
	}
	if d := cmp.Diff([]call{{"😀", 20}}, fb.calls); d != "" {
		t.Errorf("fallback calls (-want +got):\n%s", d)
	}

	want := "BT\n/F1 10 Tf\n(x) Tj\n10 0 Td\n/F2 10 Tf\n(x) Tj\n10 0 Td\n5 0 Td\n/F1 10 Tf\n(x) Tj\n10 0 Td\nET\n"
	if d := cmp.Diff(want, buf.String()); d != "" {
		t.Errorf("content (-want +got):\n%s", d)
	}
}

func TestShowNoFallback(t *testing.T) {
	latin := &rangeFont{name: "Latin", lo: 'a', hi: 'z'}

	w := graphics.NewWriter(&bytes.Buffer{})
	w.TextStart()
	total, err := Show(w, "a1b2", []font.Font{latin}, 10, nil)
	if total != 20 {
		t.Errorf("total width %g, want 20", total)
	}
	if !font.IsMissingGlyph(err) {
		t.Errorf("expected MissingGlyphError, got %v", err)
	}
	if n := strings.Count(err.Error(), "no glyph"); n != 2 {
		t.Errorf("got %d errors, want 2: %v", n, err)
	}
	if w.Err != nil {
		t.Errorf("writer error: %v", w.Err)
	}
}

func TestShowFallbackError(t *testing.T) {
	latin := &rangeFont{name: "Latin", lo: 'a', hi: 'z'}
	errTest := errors.New("test")
	fb := &recorder{err: errTest}

	w := graphics.NewWriter(&bytes.Buffer{})
	w.TextStart()
	_, err := Show(w, "-a-", []font.Font{latin}, 10, fb)
	if !errors.Is(err, errTest) {
		t.Errorf("expected fallback error, got %v", err)
	}
	// processing continues after a failed cluster
	if d := cmp.Diff([]call{{"-", 0}, {"-", 10}}, fb.calls); d != "" {
		t.Errorf("fallback calls (-want +got):\n%s", d)
	}
}

func TestShowOutsideText(t *testing.T) {
	latin := &rangeFont{name: "Latin", lo: 'a', hi: 'z'}
	w := graphics.NewWriter(&bytes.Buffer{})
	_, err := Show(w, "abc", []font.Font{latin}, 10, nil)
	if err == nil {
		t.Error("Show outside a text object succeeded")
	}
}

func TestFallbackFunc(t *testing.T) {
	var fb Fallback = FallbackFunc(func(cluster string, x float64) (float64, error) {
		return float64(len(cluster)) + x, nil
	})
	w, err := fb.Paint("abc", 1)
	if err != nil || w != 4 {
		t.Errorf("got %g, %v", w, err)
	}
}
