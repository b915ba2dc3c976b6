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

// Package emoji renders grapheme clusters, including emoji, into raster
// images.
//
// Text is drawn with the first face of a [Processor] which has a glyph for
// each character.  Emoji sequences are reduced to their base pictograph
// first, since the available fonts normally only have monochrome outlines
// for single code points.
package emoji

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"strings"
	"unicode"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Processor measures and draws grapheme clusters using a list of fonts.
type Processor struct {
	fonts []*opentype.Font
}

// New returns a Processor which uses the given fonts, in order, to draw
// text.  Go Regular is always appended as the last font.
func New(fonts ...*opentype.Font) (*Processor, error) {
	last, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	p := &Processor{}
	for _, f := range fonts {
		if f != nil {
			p.fonts = append(p.fonts, f)
		}
	}
	p.fonts = append(p.fonts, last)
	return p, nil
}

// Parse is like [New], but takes font files instead of parsed fonts.
func Parse(data ...[]byte) (*Processor, error) {
	var fonts []*opentype.Font
	for i, d := range data {
		f, err := opentype.Parse(d)
		if err != nil {
			return nil, fmt.Errorf("emoji font %d: %w", i+1, err)
		}
		fonts = append(fonts, f)
	}
	return New(fonts...)
}

// Extent describes the size of a rendered cluster, in pixels (equal to
// points, for the unscaled size).
type Extent struct {
	Width   float64
	Ascent  float64 // above the baseline, positive
	Descent float64 // below the baseline, positive
}

// Height returns Ascent+Descent.
func (e Extent) Height() float64 {
	return e.Ascent + e.Descent
}

// run is a sequence of characters drawn with the same face.
type run struct {
	face font.Face
	text string
}

// layout assigns a face to each character of the cluster.
// The caller must close the returned faces.
func (p *Processor) layout(cluster string, size float64) ([]run, []font.Face, error) {
	if size <= 0 || math.IsNaN(size) || math.IsInf(size, 0) {
		return nil, nil, fmt.Errorf("invalid font size %g", size)
	}

	faces := make([]font.Face, len(p.fonts))
	for i, f := range p.fonts {
		face, err := opentype.NewFace(f, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingNone,
		})
		if err != nil {
			closeAll(faces)
			return nil, nil, err
		}
		faces[i] = face
	}

	var runs []run
	var buf strings.Builder
	var cur font.Face
	for _, r := range Simplify(cluster) {
		face := faces[p.faceFor(r)]
		if face != cur && buf.Len() > 0 {
			runs = append(runs, run{cur, buf.String()})
			buf.Reset()
		}
		cur = face
		buf.WriteRune(r)
	}
	if buf.Len() > 0 {
		runs = append(runs, run{cur, buf.String()})
	}
	return runs, faces, nil
}

// faceFor returns the index of the first font with a glyph for r.  If no
// font has one, the last font is used.
func (p *Processor) faceFor(r rune) int {
	var buf sfnt.Buffer
	for i, f := range p.fonts {
		gid, err := f.GlyphIndex(&buf, r)
		if err == nil && gid != 0 {
			return i
		}
	}
	return len(p.fonts) - 1
}

func closeAll(faces []font.Face) {
	for _, face := range faces {
		if face != nil {
			face.Close()
		}
	}
}

// Measure returns the size of the cluster when drawn at the given font size.
func (p *Processor) Measure(cluster string, size float64) (Extent, error) {
	runs, faces, err := p.layout(cluster, size)
	if err != nil {
		return Extent{}, err
	}
	defer closeAll(faces)
	return measure(runs), nil
}

func measure(runs []run) Extent {
	var width fixed.Int26_6
	var ext Extent
	for _, r := range runs {
		width += font.MeasureString(r.face, r.text)
		m := r.face.Metrics()
		ext.Ascent = math.Max(ext.Ascent, fromFixed(m.Ascent))
		ext.Descent = math.Max(ext.Descent, fromFixed(m.Descent))
	}
	ext.Width = fromFixed(width)
	return ext
}

// Draw draws the cluster onto dst.  The text starts at the left edge of the
// image and the baseline is placed at the ascent of the fonts used.
func (p *Processor) Draw(dst draw.Image, cluster string, size float64, c color.Color) (Extent, error) {
	runs, faces, err := p.layout(cluster, size)
	if err != nil {
		return Extent{}, err
	}
	defer closeAll(faces)
	if len(runs) == 0 {
		return Extent{}, errors.New("nothing to draw")
	}

	ext := measure(runs)
	b := dst.Bounds()
	d := &font.Drawer{
		Dst: dst,
		Src: image.NewUniform(c),
		Dot: fixed.Point26_6{
			X: fixed.I(b.Min.X),
			Y: fixed.I(b.Min.Y) + toFixed(ext.Ascent),
		},
	}
	for _, r := range runs {
		d.Face = r.face
		d.DrawString(r.text)
	}
	return ext, nil
}

func fromFixed(x fixed.Int26_6) float64 {
	return float64(x) / 64
}

func toFixed(x float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(x * 64))
}

// IsEmoji reports whether the cluster is an emoji sequence.
func IsEmoji(cluster string) bool {
	for i, r := range cluster {
		if i == 0 && unicode.Is(pictographic, r) {
			return true
		}
		if r == variationEmoji || r == keycap {
			return true
		}
	}
	return false
}

// Simplify reduces an emoji sequence to the characters which carry its
// meaning without colour glyphs: the base pictograph, or both regional
// indicators for a flag.  Other text is returned unchanged.
func Simplify(cluster string) string {
	if !IsEmoji(cluster) {
		return cluster
	}
	var b strings.Builder
	for _, r := range cluster {
		if r == zwj {
			break
		}
		switch {
		case r == variationText, r == variationEmoji, r == keycap:
			// drop
		case r >= 0x1F3FB && r <= 0x1F3FF: // skin tone modifiers
			// drop
		case r >= 0xE0020 && r <= 0xE007F: // tag characters
			// drop
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

const (
	zwj            = '\u200D'
	variationText  = '\uFE0E'
	variationEmoji = '\uFE0F'
	keycap         = '\u20E3'
)
