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

// Package document reads PDF files, appends content streams to their pages,
// and writes the modified files back out.
//
// Reading, validation, page tree traversal and writing are done by
// pdfcpu.  This package merges new resources and content into an existing
// page.
package document

import (
	"errors"
	"io"
	"sync"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// maxPasswordTries limits the number of calls to ReaderOptions.ReadPassword.
const maxPasswordTries = 3

// ReaderOptions control how a document is opened.
type ReaderOptions struct {
	// Password is tried first, if the file is encrypted.
	Password string

	// ReadPassword, if not nil, is called when the file is encrypted and
	// the previous password did not work.  The argument try counts earlier
	// calls.  Returning the empty string gives up.
	ReadPassword func(try int) string
}

// Document is a PDF file which has been read into memory.
type Document struct {
	ctx *model.Context
	out *Out
}

var configOnce sync.Once

func newConfig() *model.Configuration {
	// All configuration we need is built into pdfcpu.  Make sure pdfcpu
	// does not try to create its configuration directory.
	configOnce.Do(api.DisableConfigDir)
	return model.NewDefaultConfiguration()
}

// Open reads a PDF document.
// The document is validated and optimized on the way in.
func Open(r io.ReadSeeker, opt *ReaderOptions) (*Document, error) {
	if opt == nil {
		opt = &ReaderOptions{}
	}

	passwd := opt.Password
	for try := 0; ; try++ {
		conf := newConfig()
		if passwd != "" {
			p, err := normalizePassword(passwd)
			if err != nil {
				return nil, err
			}
			conf.UserPW = p
			conf.OwnerPW = p
		}

		if _, err := r.Seek(0, io.SeekStart); err != nil {
			return nil, err
		}
		ctx, err := api.ReadValidateAndOptimize(r, conf)
		if err == nil {
			d := &Document{ctx: ctx}
			d.out = &Out{ctx: ctx}
			return d, nil
		}

		if !errors.Is(err, pdfcpu.ErrWrongPassword) || opt.ReadPassword == nil || try >= maxPasswordTries {
			return nil, err
		}
		passwd = opt.ReadPassword(try)
		if passwd == "" {
			return nil, err
		}
	}
}

// NumPages returns the number of pages in the document.
func (d *Document) NumPages() int {
	return d.ctx.PageCount
}

// Out returns the object writer for the document.
// This is used to embed fonts, images and content streams.
func (d *Document) Out() *Out {
	return d.out
}

// Save writes the document, including all changes, to w.
func (d *Document) Save(w io.Writer) error {
	return api.WriteContext(d.ctx, w)
}
