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
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"seehuhn.de/go/pdfsample/document"
)

// monoFont is a test font where every ASCII letter is 500 units wide.
type monoFont struct{}

func (monoFont) PostScriptName() string { return "Mono" }

func (monoFont) Geometry() *Geometry {
	return &Geometry{Ascent: 800, Descent: -200}
}

func (monoFont) Encode(s string) ([]byte, float64, error) {
	for _, r := range s {
		if r < 'A' || r > 'z' {
			return nil, 0, &MissingGlyphError{FontName: "Mono", Text: s, Missing: r}
		}
	}
	return []byte(s), 500 * float64(len(s)), nil
}

func (monoFont) Embed(*document.Out) (types.Object, error) {
	return nil, nil
}

func TestGetMetrics(t *testing.T) {
	cases := []struct {
		size float64
		want Metrics
	}{
		{10, Metrics{Ascent: 8, Descent: -2}},
		{32, Metrics{Ascent: 25.6, Descent: -6.4}},
		{0, Metrics{}},
	}
	for _, c := range cases {
		got := GetMetrics(monoFont{}, c.size)
		if d := cmp.Diff(c.want, got, cmpopts.EquateApprox(0, 1e-9)); d != "" {
			t.Errorf("size %g (-want +got):\n%s", c.size, d)
		}
	}

	m := GetMetrics(monoFont{}, 32)
	if h := m.Height(); h < 31.999 || h > 32.001 {
		t.Errorf("Height() = %g, want 32", h)
	}
}

func TestStringWidth(t *testing.T) {
	w, err := StringWidth(monoFont{}, "Hello", 12)
	if err != nil {
		t.Fatal(err)
	}
	if w != 30 {
		t.Errorf("StringWidth = %g, want 30", w)
	}

	_, err = StringWidth(monoFont{}, "Hello, world", 12)
	if !IsMissingGlyph(err) {
		t.Errorf("expected MissingGlyphError, got %v", err)
	}
	wrapped := fmt.Errorf("layout: %w", err)
	if !IsMissingGlyph(wrapped) {
		t.Error("wrapped MissingGlyphError not detected")
	}
	if IsMissingGlyph(nil) {
		t.Error("nil reported as missing glyph")
	}
}
