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

// Package testfont creates font files with prescribed character maps, for
// use in unit tests.
//
// [TrueType] starts from the Go Regular font and replaces its "cmap" table
// and some of its glyph names.  [CFF] builds a small OpenType font with CFF
// outlines from scratch.  [Format4] and [Format12] encode cmap subtables
// which can be used as values in a [cmap.Table].
package testfont

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"slices"

	"golang.org/x/image/font/gofont/goregular"

	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyf"
	"seehuhn.de/go/sfnt/glyph"
)

// GoRegular returns a freshly parsed copy of the Go Regular font.
func GoRegular() *sfnt.Font {
	info, err := sfnt.Read(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	return info
}

// GlyphFor returns the glyph used for r in the Go Regular font.
func GlyphFor(r rune) glyph.ID {
	subtable, err := GoRegular().CMapTable.GetBest()
	if err != nil {
		panic(err)
	}
	return subtable.Lookup(r)
}

// TrueType returns a TrueType font file based on Go Regular.
//
// The "cmap" table of the font is replaced by cmaps, which may be nil.
// The glyphs listed in names are renamed.  Other glyphs keep their names;
// if a name is taken by one of the renamed glyphs, or if there was no
// name, the glyph is called "gNNN" where NNN is the glyph ID.
func TrueType(cmaps cmap.Table, names map[glyph.ID]string) []byte {
	info := GoRegular()

	taken := make(map[string]bool, len(names))
	for _, name := range names {
		taken[name] = true
	}
	numGlyphs := info.NumGlyphs()
	newNames := make([]string, numGlyphs)
	for i := range newNames {
		gid := glyph.ID(i)
		name, ok := names[gid]
		if !ok {
			name = info.GlyphName(gid)
			if name == "" || taken[name] {
				name = fmt.Sprintf("g%d", i)
			}
		}
		newNames[i] = name
	}
	if _, renamed := names[0]; !renamed {
		newNames[0] = ".notdef"
	}

	info.Outlines.(*glyf.Outlines).Names = newNames
	info.CMapTable = cmaps
	return encode(info)
}

// Format4 encodes a format 4 cmap subtable.
func Format4(m map[uint16]glyph.ID) []byte {
	return cmap.Format4(m).Encode(0)
}

// Format12 encodes a format 12 cmap subtable.
// Each codepoint is stored in a separate group.
func Format12(m map[rune]glyph.ID) []byte {
	codes := make([]rune, 0, len(m))
	for code := range m {
		codes = append(codes, code)
	}
	slices.Sort(codes)

	length := 16 + 12*len(codes)
	res := make([]byte, 16, length)
	binary.BigEndian.PutUint16(res[0:], 12)
	// res[2:4] is reserved
	binary.BigEndian.PutUint32(res[4:], uint32(length))
	// res[8:12] is the language
	binary.BigEndian.PutUint32(res[12:], uint32(len(codes)))
	for _, code := range codes {
		res = binary.BigEndian.AppendUint32(res, uint32(code))
		res = binary.BigEndian.AppendUint32(res, uint32(code))
		res = binary.BigEndian.AppendUint32(res, uint32(m[code]))
	}
	return res
}

func encode(info *sfnt.Font) []byte {
	buf := &bytes.Buffer{}
	_, err := info.Write(buf)
	if err != nil {
		panic(err)
	}
	return buf.Bytes()
}
