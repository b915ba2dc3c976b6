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

// Package editor draws onto the first page of an existing PDF document.
//
// Each drawing demonstration opens the template document, appends a new
// content stream to its first page, and writes the modified document.
// The existing page content is enclosed in q/Q, so that the new content
// starts with the default graphics state.
package editor

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/pdfsample/document"
	"seehuhn.de/go/pdfsample/emoji"
	"seehuhn.de/go/pdfsample/font/truetype"
	"seehuhn.de/go/pdfsample/graphics"
)

// ErrFontMissing is returned by demonstrations which need a font that was
// not configured in the Options.
var ErrFontMissing = errors.New("font not configured")

// Options configure an Editor.  All fields are optional.
type Options struct {
	// JapaneseFont and ThaiFont contain TrueType font files.
	JapaneseFont []byte
	ThaiFont     []byte

	// EmojiFont and FallbackFonts contain font files which are used,
	// in this order, to render text which the PDF fonts cannot show.
	// Go Regular is always used as the last fallback font.
	EmojiFont     []byte
	FallbackFonts [][]byte

	// Password is used to open encrypted templates.  If ReadPassword is
	// not nil, it is called to ask for a password when Password does not
	// work.
	Password     string
	ReadPassword func(try int) string

	// Log receives warnings.  If this is nil, warnings are discarded.
	Log *log.Logger
}

// Editor applies drawing demonstrations to a template document.
type Editor struct {
	template []byte
	opt      Options
	log      *log.Logger

	proc *emoji.Processor
}

// New creates an Editor for the given template PDF file.  If template is
// nil, a blank A4 page is used.
func New(template []byte, opt *Options) (*Editor, error) {
	if opt == nil {
		opt = &Options{}
	}
	if template == nil {
		buf := &bytes.Buffer{}
		if err := document.WriteBlank(buf, nil); err != nil {
			return nil, err
		}
		template = buf.Bytes()
	}

	e := &Editor{
		template: template,
		opt:      *opt,
		log:      opt.Log,
	}
	if e.log == nil {
		e.log = log.New(io.Discard, "", 0)
	}
	return e, nil
}

// page describes the page being drawn on.
type page struct {
	*graphics.Writer
	Width, Height float64
}

// edit opens the template, calls draw to add content to the first page,
// and writes the resulting document to w.
func (e *Editor) edit(w io.Writer, draw func(p *page) error) error {
	doc, err := document.Open(bytes.NewReader(e.template), &document.ReaderOptions{
		Password:     e.opt.Password,
		ReadPassword: e.opt.ReadPassword,
	})
	if err != nil {
		return fmt.Errorf("template: %w", err)
	}
	pdfPage, err := doc.Page(0)
	if err != nil {
		return fmt.Errorf("template: %w", err)
	}

	buf := &bytes.Buffer{}
	gw := graphics.NewWriter(buf)
	for _, cat := range []string{graphics.CategoryFont, graphics.CategoryXObject} {
		names, err := pdfPage.ResourceNames(cat)
		if err != nil {
			return fmt.Errorf("template: %w", err)
		}
		gw.Reserve(cat, names...)
	}

	mb := pdfPage.MediaBox
	if mb.LLx != 0 || mb.LLy != 0 {
		gw.Transform(matrix.Translate(mb.LLx, mb.LLy))
	}

	p := &page{
		Writer: gw,
		Width:  mb.Dx(),
		Height: mb.Dy(),
	}
	err = draw(p)
	if err != nil {
		return err
	}
	err = gw.Close()
	if err != nil {
		return err
	}

	err = pdfPage.Append(buf.Bytes(), gw.Resources, true)
	if err != nil {
		return err
	}
	return doc.Save(w)
}

// japaneseFont returns a new PDF font instance for the Japanese font.
// Every document needs its own instance.
func (e *Editor) japaneseFont() (*truetype.Instance, error) {
	return loadFont(e.opt.JapaneseFont, "JapaneseFont")
}

func (e *Editor) thaiFont() (*truetype.Instance, error) {
	return loadFont(e.opt.ThaiFont, "ThaiFont")
}

func loadFont(data []byte, option string) (*truetype.Instance, error) {
	if data == nil {
		return nil, fmt.Errorf("%w: %s", ErrFontMissing, option)
	}
	F, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", option, err)
	}
	return F, nil
}

// processor returns the renderer for text which cannot be shown using
// PDF fonts.
func (e *Editor) processor() (*emoji.Processor, error) {
	if e.proc != nil {
		return e.proc, nil
	}

	var data [][]byte
	if e.opt.EmojiFont != nil {
		data = append(data, e.opt.EmojiFont)
	}
	data = append(data, e.opt.FallbackFonts...)
	proc, err := emoji.Parse(data...)
	if err != nil {
		return nil, err
	}
	e.proc = proc
	return proc, nil
}
