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

// Package gofont provides access to the Go font family.
//
// The fonts can be used both as embedded PDF fonts, and as raster fonts
// for rendering text into images.  Since the fonts are compiled into the
// binary, they are always available.
package gofont

import (
	"fmt"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"seehuhn.de/go/pdfsample/font/truetype"
)

// Font identifies individual fonts in the Go font family.
type Font int

// Constants for the available fonts in the Go font family.
const (
	Regular Font = iota // Go Regular
	Bold                // Go Semi Bold
	Italic              // Go Italic
	Mono                // Go Mono Regular
)

// All contains all the Go font family fonts available in this package.
var All = []Font{Regular, Bold, Italic, Mono}

var ttf = map[Font][]byte{
	Regular: goregular.TTF,
	Bold:    gobold.TTF,
	Italic:  goitalic.TTF,
	Mono:    gomono.TTF,
}

// TTF returns the font file data.
func (f Font) TTF() []byte {
	return ttf[f]
}

// New returns a new PDF font instance for the given Go font.
func (f Font) New() (*truetype.Instance, error) {
	data, ok := ttf[f]
	if !ok {
		return nil, fmt.Errorf("gofont: unknown font %d", f)
	}

	F, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("gofont: %w", err)
	}
	return F, nil
}

// Raster returns the font in the form used for rendering text into images.
func (f Font) Raster() (*opentype.Font, error) {
	data, ok := ttf[f]
	if !ok {
		return nil, fmt.Errorf("gofont: unknown font %d", f)
	}
	return opentype.Parse(data)
}

// Gopher is the Unicode code point for the gopher symbol in the Go fonts.
const Gopher = '\uF800'
