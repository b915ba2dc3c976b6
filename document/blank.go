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
	"fmt"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"seehuhn.de/go/pdfsample/internal/float"
)

// WriteBlank writes a minimal one-page PDF file with the given paper size.
// The page shows a thin grey border, so that the page boundary is visible
// when the file is used as a template.  If paper is nil, A4 is used.
func WriteBlank(w io.Writer, paper *Rectangle) error {
	if paper == nil {
		paper = A4
	}

	ctx, err := pdfcpu.CreateContextWithXRefTable(newConfig(), &types.Dim{Width: paper.Dx(), Height: paper.Dy()})
	if err != nil {
		return err
	}
	pagesRef, err := ctx.Pages()
	if err != nil {
		return err
	}
	pagesDict, err := ctx.DereferenceDict(*pagesRef)
	if err != nil {
		return err
	}

	const inset = 10
	content := fmt.Sprintf("0.8 G\n0.5 w\n%s %s %s %s re\nS\n",
		float.Format(paper.LLx+inset, 3), float.Format(paper.LLy+inset, 3),
		float.Format(paper.Dx()-2*inset, 3), float.Format(paper.Dy()-2*inset, 3))
	out := &Out{ctx: ctx}
	contentRef, err := out.AddStream(nil, []byte(content))
	if err != nil {
		return err
	}

	pageDict := types.Dict{
		"Type":      types.Name("Page"),
		"Parent":    *pagesRef,
		"MediaBox":  paper.Array(),
		"Resources": types.NewDict(),
		"Contents":  contentRef,
	}
	pageRef, err := ctx.IndRefForNewObject(pageDict)
	if err != nil {
		return err
	}
	if err := model.AppendPageTree(pageRef, 1, pagesDict); err != nil {
		return err
	}
	ctx.PageCount++

	return api.WriteContext(ctx, w)
}
