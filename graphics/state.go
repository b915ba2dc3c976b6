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
	"fmt"
	"math"
	"strings"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/pdfsample/font"
)

// State collects the parts of the graphics state which are tracked by
// the Writer.
//
// See section 8.4 of ISO 32000-2:2020.
type State struct {
	CTM matrix.Matrix

	StrokeColor DeviceRGB
	FillColor   DeviceRGB
	LineWidth   float64

	TextFont     font.Font
	TextFontSize float64
	TextLeading  float64

	// TextMatrix and TextLineMatrix are only valid inside a text object.
	TextMatrix     matrix.Matrix
	TextLineMatrix matrix.Matrix

	// Set lists the parameters which have been set explicitly.
	Set StateBits
}

// NewState returns the graphics state at the start of a content stream.
//
// See table 51 of ISO 32000-2:2020.
func NewState() State {
	return State{
		CTM:       matrix.Identity,
		LineWidth: 1,
		Set:       StateLineWidth | StateStrokeColor | StateFillColor | StateTextLeading,
	}
}

// StateBits is used to indicate which graphics state parameters have a
// known value.
type StateBits uint16

// Possible values for StateBits.
const (
	StateStrokeColor StateBits = 1 << iota
	StateFillColor
	StateLineWidth
	StateTextFont
	StateTextLeading
	StateTextMatrix

	stateFirstUnused
)

var stateNames = []string{
	"StrokeColor",
	"FillColor",
	"LineWidth",
	"TextFont",
	"TextLeading",
	"TextMatrix",
}

func (b StateBits) String() string {
	var parts []string
	for i, name := range stateNames {
		if b&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	if b >= stateFirstUnused {
		parts = append(parts, fmt.Sprintf("0x%x", uint16(b&^(stateFirstUnused-1))))
	}
	return strings.Join(parts, "|")
}

func (w *Writer) isSet(bits StateBits) bool {
	return w.Set&bits == bits
}

// mustBeSet returns an error if not all of the given parameters are set.
func (w *Writer) mustBeSet(bits StateBits) error {
	missing := bits &^ w.Set
	if missing == 0 {
		return nil
	}
	return fmt.Errorf("parameters %s not set", missing)
}

func nearlyEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}
