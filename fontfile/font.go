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

// Package fontfile generates glyph maps for TrueType and OpenType font
// files.
//
// Fonts are read using seehuhn.de/go/sfnt, and [Font] makes their
// character maps available as a [glyphmap.CMapSource].
package fontfile

import (
	"bytes"
	"errors"
	"fmt"
	"maps"
	"slices"
	"unicode"

	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/glyphmap"
)

// Font is a parsed font file.
type Font struct {
	*sfnt.Font
}

var _ glyphmap.CMapSource = (*Font)(nil)

// Read parses a font file.
func Read(data []byte) (*Font, error) {
	info, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return &Font{Font: info}, nil
}

// ReadFile parses the font file with the given name.
func ReadFile(fname string) (*Font, error) {
	info, err := sfnt.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	return &Font{Font: info}, nil
}

// Subtables lists the subtables of the font's "cmap" table, ordered
// by platform ID, encoding ID and language.
func (f *Font) Subtables() []glyphmap.SubtableInfo {
	keys := slices.SortedFunc(maps.Keys(f.CMapTable), compareKeys)

	res := make([]glyphmap.SubtableInfo, 0, len(keys))
	for _, key := range keys {
		data := f.CMapTable[key]
		if len(data) < 2 {
			continue
		}
		res = append(res, glyphmap.SubtableInfo{
			Format:     uint16(data[0])<<8 | uint16(data[1]),
			PlatformID: key.PlatformID,
			EncodingID: key.EncodingID,
			Language:   key.Language,
		})
	}
	return res
}

// Mapping decodes a subtable and resolves the glyph names.
func (f *Font) Mapping(info glyphmap.SubtableInfo) (glyphmap.Mapping, error) {
	key := cmap.Key{
		PlatformID: info.PlatformID,
		EncodingID: info.EncodingID,
		Language:   info.Language,
	}
	subtable, err := f.CMapTable.Get(key)
	if err != nil {
		return nil, err
	}
	return f.names(subtable), nil
}

// BestMapping returns the subtable chosen by the font library.
// If the library does not find any of its preferred subtables, the first
// subtable which can be decoded is used.
func (f *Font) BestMapping() (glyphmap.Mapping, error) {
	if len(f.CMapTable) == 0 {
		return nil, errNoSubtables
	}

	subtable, err := f.CMapTable.GetBest()
	if err == nil {
		return f.names(subtable), nil
	}

	for _, key := range slices.SortedFunc(maps.Keys(f.CMapTable), compareKeys) {
		subtable, err2 := f.CMapTable.Get(key)
		if err2 != nil {
			continue
		}
		return f.names(subtable), nil
	}
	return nil, err
}

// names converts a cmap subtable into a mapping from codepoints to glyph
// names.  Codepoints mapped to the .notdef glyph are omitted.
func (f *Font) names(subtable cmap.Subtable) glyphmap.Mapping {
	numGlyphs := f.NumGlyphs()
	res := make(glyphmap.Mapping)
	add := func(r rune, gid glyph.ID) {
		if gid == 0 || int(gid) >= numGlyphs {
			return
		}
		res[r] = f.GlyphName(gid)
	}

	switch subtable := subtable.(type) {
	case cmap.Format4:
		for code, gid := range subtable {
			add(rune(code), gid)
		}
	default:
		low, high := subtable.CodeRange()
		low = max(low, 0)
		high = min(high, unicode.MaxRune)
		for r := low; r <= high; r++ {
			add(r, subtable.Lookup(r))
		}
	}
	return res
}

// Format returns the font file format for use in CSS: "opentype" for
// fonts with CFF outlines, "truetype" otherwise.
func (f *Font) Format() string {
	if f.IsCFF() {
		return "opentype"
	}
	return "truetype"
}

func compareKeys(a, b cmap.Key) int {
	if a.PlatformID != b.PlatformID {
		return int(a.PlatformID) - int(b.PlatformID)
	}
	if a.EncodingID != b.EncodingID {
		return int(a.EncodingID) - int(b.EncodingID)
	}
	return int(a.Language) - int(b.Language)
}

var errNoSubtables = errors.New("fontfile: font has no cmap subtables")

// Describe returns a one-line summary of the font, for diagnostics.
func (f *Font) Describe() string {
	return fmt.Sprintf("%s, %d glyphs, %d cmap subtables",
		f.PostScriptName(), f.NumGlyphs(), len(f.CMapTable))
}
