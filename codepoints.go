// seehuhn.de/go/glyphmap - glyph maps for font files
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

package glyphmap

import (
	"fmt"
	"slices"
)

// IsRenderable reports whether cp can be shown as a single character.
// This excludes negative values, values beyond U+10FFFF, and surrogates.
func IsRenderable(cp rune) bool {
	return cp >= 0 && cp <= 0x10FFFF && !(cp >= 0xD800 && cp <= 0xDFFF)
}

// Codepoints returns the renderable codepoints of m in increasing order.
func Codepoints(m Mapping) []rune {
	res := make([]rune, 0, len(m))
	for cp := range m {
		if IsRenderable(cp) {
			res = append(res, cp)
		}
	}
	slices.Sort(res)
	return res
}

// Label returns the text shown when hovering over the tile for cp.
// This is the glyph name, if one is known, and "U+XXXX" otherwise.
func Label(m Mapping, cp rune) string {
	if name, ok := m[cp]; ok && name != "" {
		return name
	}
	return CodeLabel(cp)
}

// CodeLabel formats cp as "U+" followed by at least four upper case hex
// digits.
func CodeLabel(cp rune) string {
	return fmt.Sprintf("U+%04X", cp)
}
