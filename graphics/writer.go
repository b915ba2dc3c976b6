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

// Package graphics writes PDF content streams.
//
// A [Writer] provides one method for every supported PDF graphics operator.
// The writer keeps track of the graphics state and of the current graphics
// object, so that operators used in the wrong context are detected.  The
// first error is stored in the Err field, and all later operations are
// ignored.
package graphics

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"seehuhn.de/go/pdfsample/document"
	"seehuhn.de/go/pdfsample/internal/float"
)

// Writer writes a PDF content stream.
type Writer struct {
	Content   io.Writer
	Resources *document.Resources
	Err       error

	currentObject objectType

	State
	stack []State

	nesting []pairType

	resName map[catRes]string
	used    map[resourceCategory]map[string]bool
}

type catRes struct {
	cat resourceCategory
	res document.Embedder
}

type resourceCategory byte

// The supported resource categories.
// These corresponds to fields in the Resources dictionary.
//
// See section 7.8.3 of ISO 32000-2:2020.
const (
	catFont resourceCategory = iota + 1
	catXObject
)

// Resource category names, as used in the page resource dictionary.
const (
	CategoryFont    = "Font"
	CategoryXObject = "XObject"
)

type pairType byte

const (
	pairTypeQ  pairType = iota + 1 // q ... Q
	pairTypeBT                     // BT ... ET
)

// NewWriter allocates a new Writer object.
func NewWriter(out io.Writer) *Writer {
	return &Writer{
		Content:       out,
		Resources:     &document.Resources{},
		currentObject: objPage,

		State: NewState(),

		resName: make(map[catRes]string),
		used:    make(map[resourceCategory]map[string]bool),
	}
}

// Reserve marks resource names as being in use, for example because they
// are already present in the resource dictionary of the page the content
// stream is appended to.  Automatically generated names will avoid these.
// The category must be one of CategoryFont or CategoryXObject.
func (w *Writer) Reserve(category string, names ...string) {
	var cat resourceCategory
	switch category {
	case CategoryFont:
		cat = catFont
	case CategoryXObject:
		cat = catXObject
	default:
		return
	}
	for _, name := range names {
		w.usedNames(cat)[name] = true
	}
}

// Close checks that all q/Q and BT/ET pairs have been closed.
// The return value is the first error encountered while writing the content
// stream, if any.
func (w *Writer) Close() error {
	if w.Err != nil {
		return w.Err
	}
	if len(w.nesting) > 0 {
		switch w.nesting[len(w.nesting)-1] {
		case pairTypeQ:
			w.Err = errors.New("unbalanced PushGraphicsState")
		case pairTypeBT:
			w.Err = errors.New("unterminated text object")
		}
	}
	return w.Err
}

// isValid returns true, if the current graphics object is one of the given types
// and if w.Err is nil.  Otherwise it sets w.Err and returns false.
func (w *Writer) isValid(cmd string, ss objectType) bool {
	if w.Err != nil {
		return false
	}

	if w.currentObject&ss != 0 {
		return true
	}

	w.Err = fmt.Errorf("unexpected state %q for %q", w.currentObject, cmd)
	return false
}

func (w *Writer) coord(x float64) string {
	return float.Format(x, 3)
}

// getResourceName returns a name which can be used to refer to a resource from
// within the content stream.  If needed, the resource is added to the resource
// dictionary.
func (w *Writer) getResourceName(cat resourceCategory, resource document.Embedder) string {
	key := catRes{cat, resource}
	if name, ok := w.resName[key]; ok {
		return name
	}

	used := w.usedNames(cat)
	prefix := getCategoryPrefix(cat)
	var name string
	for k := len(w.categoryMap(cat)) + 1; ; k++ {
		name = prefix + strconv.Itoa(k)
		if !used[name] {
			break
		}
	}
	used[name] = true

	w.categoryMap(cat)[name] = resource
	w.resName[key] = name
	return name
}

func (w *Writer) usedNames(cat resourceCategory) map[string]bool {
	m := w.used[cat]
	if m == nil {
		m = make(map[string]bool)
		w.used[cat] = m
	}
	return m
}

func (w *Writer) categoryMap(cat resourceCategory) map[string]document.Embedder {
	var field *map[string]document.Embedder
	switch cat {
	case catFont:
		field = &w.Resources.Font
	case catXObject:
		field = &w.Resources.XObject
	default:
		panic("invalid resource category")
	}
	if *field == nil {
		*field = make(map[string]document.Embedder)
	}
	return *field
}

func getCategoryPrefix(cat resourceCategory) string {
	switch cat {
	case catFont:
		return "F"
	case catXObject:
		return "Im"
	default:
		panic("invalid resource category")
	}
}

// See Figure 9 (p. 113) of PDF 32000-1:2008.
type objectType int

const (
	objPage objectType = 1 << iota
	objPath
	objText
)

func (s objectType) String() string {
	switch s {
	case objPage:
		return "page"
	case objPath:
		return "path"
	case objText:
		return "text"
	default:
		return fmt.Sprintf("objectType(%d)", s)
	}
}
