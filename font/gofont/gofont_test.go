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

package gofont

import (
	"testing"

	"seehuhn.de/go/pdfsample/font"
)

func TestAll(t *testing.T) {
	for _, f := range All {
		F, err := f.New()
		if err != nil {
			t.Errorf("font %d: %v", f, err)
			continue
		}
		if F.PostScriptName() == "" {
			t.Errorf("font %d: empty PostScript name", f)
		}
		if _, err := f.Raster(); err != nil {
			t.Errorf("font %d: %v", f, err)
		}
	}

	if _, err := Font(100).New(); err == nil {
		t.Error("unknown font accepted")
	}
}

func TestCoverage(t *testing.T) {
	F, err := Regular.New()
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range "Aéß" {
		if !F.HasGlyph(r) {
			t.Errorf("no glyph for %q", r)
		}
	}
	if _, _, err := F.Encode("😀"); !font.IsMissingGlyph(err) {
		t.Errorf("expected missing glyph, got %v", err)
	}
}
