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
	"slices"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// Page is a page of a Document.
type Page struct {
	doc  *Document
	dict types.Dict
	ref  *types.IndirectRef

	// MediaBox is the effective media box of the page, taking inherited
	// attributes into account.
	MediaBox *Rectangle

	resources types.Dict
}

// Page returns the page with the given index.  The first page has index 0.
func (d *Document) Page(i int) (*Page, error) {
	if i < 0 || i >= d.ctx.PageCount {
		return nil, fmt.Errorf("page %d not found (document has %d pages)", i, d.ctx.PageCount)
	}

	dict, ref, inh, err := d.ctx.PageDict(i+1, false)
	if err != nil {
		return nil, err
	}
	if dict == nil || inh == nil {
		return nil, fmt.Errorf("page %d: missing page dictionary", i)
	}
	if inh.MediaBox == nil {
		return nil, fmt.Errorf("page %d: missing MediaBox", i)
	}

	p := &Page{
		doc:       d,
		dict:      dict,
		ref:       ref,
		MediaBox:  fromPDFRect(inh.MediaBox),
		resources: inh.Resources,
	}
	return p, nil
}

// ResourceNames returns the names already used in the given resource
// category (for example "Font" or "XObject") of the page.
func (p *Page) ResourceNames(category string) ([]string, error) {
	obj, ok := p.resources[category]
	if !ok {
		return nil, nil
	}
	dict, err := p.doc.ctx.DereferenceDict(obj)
	if err != nil {
		return nil, err
	}
	var names []string
	for name := range dict {
		names = append(names, name)
	}
	slices.Sort(names)
	return names, nil
}

// Append adds a content stream to the page.
//
// The objects listed in res are embedded in the file and added to the
// page's resource dictionary, which becomes a page-local dictionary if it
// was previously inherited or shared.  If reset is true, the existing
// page contents are enclosed in q/Q, so that the new content starts with
// the default graphics state.
func (p *Page) Append(content []byte, res *Resources, reset bool) error {
	out := p.doc.out

	newRes := types.NewDict()
	for key, val := range p.resources {
		newRes[key] = val
	}
	if !res.IsEmpty() {
		if err := p.mergeResources(newRes, "Font", res.Font); err != nil {
			return err
		}
		if err := p.mergeResources(newRes, "XObject", res.XObject); err != nil {
			return err
		}
	}

	parts, err := p.contentParts()
	if err != nil {
		return err
	}
	if reset && len(parts) > 0 {
		qRef, err := out.AddStream(nil, []byte("q\n"))
		if err != nil {
			return err
		}
		QRef, err := out.AddStream(nil, []byte("\nQ\n"))
		if err != nil {
			return err
		}
		parts = append(types.Array{qRef}, parts...)
		parts = append(parts, QRef)
	}
	ref, err := out.AddStream(nil, content)
	if err != nil {
		return err
	}
	parts = append(parts, ref)

	p.dict["Contents"] = parts
	p.dict["Resources"] = newRes
	p.resources = newRes

	if p.ref != nil {
		entry, ok := p.doc.ctx.FindTableEntryForIndRef(p.ref)
		if !ok {
			return fmt.Errorf("page object %s not found", p.ref)
		}
		entry.Object = p.dict
	}
	return nil
}

// mergeResources embeds the given objects and adds them to the category
// dictionary in res.  Existing entries are kept.
func (p *Page) mergeResources(res types.Dict, category string, objs map[string]Embedder) error {
	if len(objs) == 0 {
		return nil
	}

	catDict := types.NewDict()
	if old, ok := res[category]; ok {
		oldDict, err := p.doc.ctx.DereferenceDict(old)
		if err != nil {
			return fmt.Errorf("%s resources: %w", category, err)
		}
		for key, val := range oldDict {
			catDict[key] = val
		}
	}

	names := make([]string, 0, len(objs))
	for name := range objs {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		if _, exists := catDict[name]; exists {
			return fmt.Errorf("%s resource %q already in use", category, name)
		}
		obj, err := objs[name].Embed(p.doc.out)
		if err != nil {
			return fmt.Errorf("%s resource %q: %w", category, name, err)
		}
		catDict[name] = obj
	}
	res[category] = catDict
	return nil
}

// contentParts returns the existing content streams of the page, as a list
// of references.
func (p *Page) contentParts() (types.Array, error) {
	obj, ok := p.dict["Contents"]
	if !ok || obj == nil {
		return nil, nil
	}

	if ref, isRef := obj.(types.IndirectRef); isRef {
		target, err := p.doc.ctx.Dereference(ref)
		if err != nil {
			return nil, err
		}
		if a, isArray := target.(types.Array); isArray {
			return slices.Clone(a), nil
		}
		return types.Array{ref}, nil
	}

	if a, isArray := obj.(types.Array); isArray {
		return slices.Clone(a), nil
	}
	return nil, fmt.Errorf("unexpected page Contents of type %T", obj)
}
