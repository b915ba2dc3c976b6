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

package layout

import (
	"errors"
	"fmt"

	"seehuhn.de/go/pdfsample/font"
	"seehuhn.de/go/pdfsample/graphics"
)

// Fallback draws text which none of the available fonts can show.
type Fallback interface {
	// Paint is called for a grapheme cluster which could not be shown.
	// The argument x is the horizontal offset of the cluster from the
	// start of the current text line, in text space units.  The return
	// value is the advance width of the cluster.
	Paint(cluster string, x float64) (float64, error)
}

// FallbackFunc is an adapter to allow the use of ordinary functions as
// a Fallback.
type FallbackFunc func(cluster string, x float64) (float64, error)

// Paint implements the [Fallback] interface.
func (f FallbackFunc) Paint(cluster string, x float64) (float64, error) {
	return f(cluster, x)
}

// Show shows text inside a text object, starting at the current text
// position.  The clusters of text are shown in order, each using the first
// font in fonts which can show it, at the given size.  After each cluster,
// the start of the text line is moved to the right by the width of the
// cluster.
//
// Clusters which no font can show are passed to fb.  If fb is nil, these
// clusters are omitted and the corresponding errors are returned, joined
// by [errors.Join], once the whole text has been processed.  Errors from
// fb are collected in the same way.
//
// The return value is the total advance width of the text.
func Show(w *graphics.Writer, text string, fonts []font.Font, size float64, fb Fallback) (float64, error) {
	var errs []error
	var total float64

	for _, cluster := range Clusters(text) {
		width, ok := showCluster(w, cluster, fonts, size)
		if w.Err != nil {
			return total, w.Err
		}

		if !ok {
			if fb == nil {
				errs = append(errs, &font.MissingGlyphError{
					FontName: fontNames(fonts),
					Text:     cluster,
					Missing:  []rune(cluster)[0],
				})
				continue
			}
			var err error
			width, err = fb.Paint(cluster, total)
			if err != nil {
				errs = append(errs, fmt.Errorf("cluster %q: %w", cluster, err))
				continue
			}
		}

		if width != 0 {
			w.TextFirstLine(width, 0)
			total += width
		}
	}
	if w.Err != nil {
		return total, w.Err
	}
	return total, errors.Join(errs...)
}

// showCluster shows a cluster using the first font in fonts which has
// glyphs for all characters of the cluster.
func showCluster(w *graphics.Writer, cluster string, fonts []font.Font, size float64) (float64, bool) {
	for _, F := range fonts {
		if _, _, err := F.Encode(cluster); err != nil {
			continue
		}
		w.TextSetFont(F, size)
		width, err := w.TextShow(cluster)
		if err != nil {
			return 0, false
		}
		return width, true
	}
	return 0, false
}

func fontNames(fonts []font.Font) string {
	switch len(fonts) {
	case 0:
		return "(none)"
	case 1:
		return fonts[0].PostScriptName()
	}
	res := fonts[0].PostScriptName()
	for _, F := range fonts[1:] {
		res += "," + F.PostScriptName()
	}
	return res
}
