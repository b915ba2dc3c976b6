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

package document

import (
	"github.com/pdfcpu/pdfcpu/pkg/filter"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// Embedder is implemented by objects which can be written into a PDF file,
// for example fonts and images.
type Embedder interface {
	// Embed writes the object to the file and returns the PDF object
	// which refers to it, normally an indirect reference.
	Embed(out *Out) (types.Object, error)
}

// Resources lists the objects a content stream refers to, by resource
// category and name.
type Resources struct {
	Font    map[string]Embedder
	XObject map[string]Embedder
}

// IsEmpty reports whether no resources are listed.
func (r *Resources) IsEmpty() bool {
	return r == nil || len(r.Font) == 0 && len(r.XObject) == 0
}

// Out adds new objects to a document.
type Out struct {
	ctx *model.Context
}

// Add stores obj as a new indirect object and returns a reference to it.
func (o *Out) Add(obj types.Object) (types.IndirectRef, error) {
	ref, err := o.ctx.IndRefForNewObject(obj)
	if err != nil {
		return types.IndirectRef{}, err
	}
	return *ref, nil
}

// AddStream stores a new Flate-compressed stream.  The entries in dict are
// copied into the stream dictionary; Filter and Length are set
// automatically.
func (o *Out) AddStream(dict types.Dict, data []byte) (types.IndirectRef, error) {
	d := types.NewDict()
	for key, val := range dict {
		d[key] = val
	}
	d["Filter"] = types.Name(filter.Flate)

	sd := types.NewStreamDict(d, 0, nil, nil, []types.PDFFilter{{Name: filter.Flate}})
	sd.Content = data
	if err := sd.Encode(); err != nil {
		return types.IndirectRef{}, err
	}
	n := int64(len(sd.Raw))
	sd.StreamLength = &n
	sd.Dict["Length"] = types.Integer(n)

	return o.Add(sd)
}
