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

package truetype

import (
	"fmt"
	"io"
	"slices"
	"text/template"
	"unicode/utf16"

	"seehuhn.de/go/sfnt/glyph"
)

type bfChar struct {
	Code glyph.ID
	Text string
}

// writeToUnicode writes a ToUnicode CMap which maps the two-byte character
// codes of the used glyphs to their text content.
//
// See section 9.10.3 of ISO 32000-2:2020.
func writeToUnicode(w io.Writer, used map[glyph.ID]string) error {
	var singles []bfChar
	for gid, text := range used {
		singles = append(singles, bfChar{Code: gid, Text: text})
	}
	slices.SortFunc(singles, func(a, b bfChar) int {
		return int(a.Code) - int(b.Code)
	})

	var chunks [][]bfChar
	for len(singles) > chunkSize {
		chunks = append(chunks, singles[:chunkSize])
		singles = singles[chunkSize:]
	}
	if len(singles) > 0 {
		chunks = append(chunks, singles)
	}

	return toUnicodeTmpl.Execute(w, chunks)
}

const chunkSize = 100

func formatText(s string) string {
	var text []byte
	for _, x := range utf16.Encode([]rune(s)) {
		text = append(text, byte(x>>8), byte(x))
	}
	return fmt.Sprintf("<%02X>", text)
}

var toUnicodeTmpl = template.Must(template.New("tounicode").Funcs(template.FuncMap{
	"Text": formatText,
}).Parse(`/CIDInit /ProcSet findresource begin
12 dict begin
begincmap
/CMapType 2 def
/CMapName /Adobe-Identity-UCS def
/CIDSystemInfo <<
/Registry (Adobe)
/Ordering (UCS)
/Supplement 0
>> def
1 begincodespacerange
<0000> <FFFF>
endcodespacerange
{{range . -}}
{{len .}} beginbfchar
{{range . -}}
<{{printf "%04X" .Code}}> {{Text .Text}}
{{end -}}
endbfchar
{{end -}}
endcmap
CMapName currentdict /CMap defineresource pop
end
end
`))
