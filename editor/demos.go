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

package editor

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"strings"

	"seehuhn.de/go/pdfsample/affine"
	"seehuhn.de/go/pdfsample/emoji"
	pdffont "seehuhn.de/go/pdfsample/font"
	"seehuhn.de/go/pdfsample/font/standard"
	"seehuhn.de/go/pdfsample/graphics"
	"seehuhn.de/go/pdfsample/layout"
	"seehuhn.de/go/pdfsample/textimage"
)

// Demo is a drawing demonstration.
type Demo struct {
	Name  string
	Title string
	Run   func(e *Editor, w io.Writer) error
}

// Demos lists all available demonstrations.
var Demos = []Demo{
	{"lines", "Draw lines", (*Editor).DrawLines},
	{"rect", "Draw transformed rect", (*Editor).DrawTransformedRect},
	{"texts", "Draw texts", (*Editor).DrawTexts},
	{"transformed-text", "Draw transformed text", (*Editor).DrawTransformedText},
	{"japanese", "Draw japanese texts", (*Editor).DrawJapaneseTexts},
	{"multilang", "Draw multiple languages text", (*Editor).DrawMultipleLanguagesText},
	{"emoji", "Draw emoji text", (*Editor).DrawEmojiText},
}

// Lookup finds a demonstration by name.
func Lookup(name string) (Demo, bool) {
	for _, d := range Demos {
		if d.Name == name {
			return d, true
		}
	}
	return Demo{}, false
}

const helloText = "Hello, PdfBox-Android!!!"

// DrawLines draws two zig-zag lines across the page.
func (e *Editor) DrawLines(w io.Writer) error {
	return e.edit(w, func(p *page) error {
		p.SetStrokeColor(graphics.Red)
		p.SetLineWidth(2)

		p.MoveTo(0, 0)
		p.LineTo(p.Width/2, p.Height)
		p.LineTo(p.Width, 0)
		p.Stroke()

		p.SetStrokeColor(graphics.Blue)

		p.MoveTo(0, p.Height)
		p.LineTo(p.Width/2, 0)
		p.LineTo(p.Width, p.Height)
		p.Stroke()
		return nil
	})
}

// DrawTransformedRect draws a scaled and rotated rectangle in the centre
// of the page.
func (e *Editor) DrawTransformedRect(w io.Writer) error {
	return e.edit(w, func(p *page) error {
		p.SetStrokeColor(graphics.Blue)
		p.SetFillColor(graphics.Red)
		p.SetLineWidth(4)

		const width, height = 100, 150
		M := affine.NewBuilder().
			PostTranslate(-width/2, -height/2).
			PostScale(2, 2).
			PostRotate(30).
			PostTranslate(p.Width/2, p.Height/2).
			PDF()
		p.Transform(M)

		p.Rectangle(0, 0, width, height)
		p.FillAndStroke()
		return nil
	})
}

// DrawTexts shows text using two of the standard fonts.  The second text
// contains a line break.
func (e *Editor) DrawTexts(w io.Writer) error {
	helvetica, err := standard.HelveticaBold.New()
	if err != nil {
		return err
	}
	times, err := standard.TimesBold.New()
	if err != nil {
		return err
	}

	return e.edit(w, func(p *page) error {
		p.TextStart()

		p.TextSetFont(helvetica, 32)
		p.SetFillColor(graphics.Red)
		m1 := pdffont.GetMetrics(helvetica, 32)
		p.TextFirstLine(0, -m1.Descent)
		if _, err := p.TextShow(helloText); err != nil {
			return err
		}

		p.TextSetFont(times, 64)
		p.SetFillColor(graphics.Green)
		p.TextFirstLine(p.Width/2, p.Height/2)
		m2 := pdffont.GetMetrics(times, 64)
		p.TextSetLeading(m2.Height())
		for _, line := range strings.Split("AAAAA\nBBBBB", "\n") {
			if _, err := p.TextShow(line); err != nil {
				return err
			}
			p.TextNextLine()
		}

		p.TextEnd()
		return nil
	})
}

// DrawTransformedText shows a line of text, rotated around the centre of
// the page.
func (e *Editor) DrawTransformedText(w io.Writer) error {
	F, err := standard.HelveticaBold.New()
	if err != nil {
		return err
	}
	const size = 32

	return e.edit(w, func(p *page) error {
		p.TextStart()
		p.TextSetFont(F, size)
		p.SetFillColor(graphics.Red)

		m := pdffont.GetMetrics(F, size)
		textWidth, err := pdffont.StringWidth(F, helloText, size)
		if err != nil {
			return err
		}
		textHeight := m.Height()

		M := affine.NewBuilder().
			PostTranslate(-textWidth/2, -textHeight/2).
			PostRotate(135).
			PostTranslate(p.Width/2, p.Height/2).
			PDF()
		p.TextSetMatrix(M)
		p.TextFirstLine(0, -m.Descent)
		if _, err := p.TextShow(helloText); err != nil {
			return err
		}

		p.TextEnd()
		return nil
	})
}

// japaneseLines are the texts shown by DrawJapaneseTexts.
var japaneseLines = [3]string{"こんにちは, PdfBox-Android!!!", "あいうえお", "かきくけこ"}

// DrawJapaneseTexts shows Japanese text using an embedded TrueType font.
func (e *Editor) DrawJapaneseTexts(w io.Writer) error {
	F, err := e.japaneseFont()
	if err != nil {
		return err
	}
	return e.showLines(w, F, japaneseLines)
}

// showLines shows lines[0] at the bottom of the page, and the other two
// lines starting at the centre of the page.
func (e *Editor) showLines(w io.Writer, F pdffont.Font, lines [3]string) error {
	const size = 32

	return e.edit(w, func(p *page) error {
		m := pdffont.GetMetrics(F, size)

		p.TextStart()
		p.TextSetFont(F, size)
		p.SetFillColor(graphics.Red)
		p.TextFirstLine(0, -m.Descent)
		if _, err := p.TextShow(lines[0]); err != nil {
			return err
		}

		p.SetFillColor(graphics.Green)
		p.TextFirstLine(p.Width/2, p.Height/2)
		if _, err := p.TextShow(lines[1]); err != nil {
			return err
		}
		p.TextSetLeading(m.Height())
		p.TextNextLine()

		p.SetFillColor(graphics.Blue)
		if _, err := p.TextShow(lines[2]); err != nil {
			return err
		}

		p.TextEnd()
		return nil
	})
}

// MultiLangText is the text shown by DrawMultipleLanguagesText.
// The last character is U+29E3D, outside the Basic Multilingual Plane.
const MultiLangText = "こんにちは、สวัสดี\nปลาแมคเคอเรลอัตกะ、\U00029E3D"

// DrawMultipleLanguagesText shows Japanese and Thai text.  Every grapheme
// cluster is shown using the first of the two fonts which supports it.
// Clusters which neither font can show are drawn as images.
func (e *Editor) DrawMultipleLanguagesText(w io.Writer) error {
	jp, err := e.japaneseFont()
	if err != nil {
		return err
	}
	thai, err := e.thaiFont()
	if err != nil {
		return err
	}
	return e.drawMultiLang(w, MultiLangText, []pdffont.Font{jp, thai})
}

// drawMultiLang shows the lines of text, one below the other, starting at
// the left edge of the page half way up.  The line height is taken from the
// first font.
func (e *Editor) drawMultiLang(w io.Writer, text string, fonts []pdffont.Font) error {
	proc, err := e.processor()
	if err != nil {
		return err
	}
	const size = 32

	return e.edit(w, func(p *page) error {
		m := pdffont.GetMetrics(fonts[0], size)

		fb := &imageFallback{log: e.log, proc: proc, size: size, color: graphics.Red}
		for i, line := range strings.Split(text, "\n") {
			y := p.Height/2 - float64(i)*m.Height()

			p.TextStart()
			p.SetFillColor(graphics.Red)
			p.TextFirstLine(0, y)
			fb.y = y
			_, err := layout.Show(p.Writer, line, fonts, size, fb)
			if p.Err != nil {
				return p.Err
			} else if err != nil {
				e.log.Print(err)
			}
			p.TextEnd()
		}
		return fb.drawAll(p.Writer)
	})
}

// EmojiText is the text shown by DrawEmojiText.
const EmojiText = "こんにちは\U0001F600안녕하세요\U0001FAE0あいうえお"

// DrawEmojiText shows text with emoji.  Clusters which the Japanese font
// cannot show are drawn as images, after the text object has ended.
func (e *Editor) DrawEmojiText(w io.Writer) error {
	F, err := e.japaneseFont()
	if err != nil {
		return err
	}
	return e.drawEmoji(w, EmojiText, F)
}

// drawEmoji shows text at the bottom of the page.  The font is selected
// only when the first cluster it can show is reached, so F is not added to
// the page resources if all of text is drawn as images.
func (e *Editor) drawEmoji(w io.Writer, text string, F pdffont.Font) error {
	proc, err := e.processor()
	if err != nil {
		return err
	}
	const size = 32

	return e.edit(w, func(p *page) error {
		m := pdffont.GetMetrics(F, size)
		baseline := -m.Descent

		p.TextStart()
		p.SetFillColor(graphics.Red)
		p.TextFirstLine(0, baseline)

		fb := &imageFallback{log: e.log, proc: proc, size: size, color: graphics.Red, y: baseline}
		_, err := layout.Show(p.Writer, text, []pdffont.Font{F}, size, fb)
		if p.Err != nil {
			return p.Err
		} else if err != nil {
			e.log.Print(err)
		}

		p.TextEnd()
		return fb.drawAll(p.Writer)
	})
}

// imageFallback renders clusters which no font can show into images.
// Images cannot be drawn inside a text object, so the images are collected
// and drawn by drawAll once the text object has ended.
type imageFallback struct {
	log   *log.Logger
	proc  *emoji.Processor
	size  float64
	color color.Color

	y        float64 // baseline of the current text line
	painters []*textimage.Painter
}

func (f *imageFallback) Paint(cluster string, x float64) (float64, error) {
	f.log.Printf("text output failed: %q", cluster)

	painter, err := textimage.New(cluster, f.size, f.color, x, f.y, f.proc)
	if err != nil {
		return 0, err
	}
	f.painters = append(f.painters, painter)
	return painter.Width, nil
}

func (f *imageFallback) drawAll(w *graphics.Writer) error {
	for _, painter := range f.painters {
		painter.Draw(w)
	}
	if w.Err != nil {
		return fmt.Errorf("drawing fallback images: %w", w.Err)
	}
	return nil
}
