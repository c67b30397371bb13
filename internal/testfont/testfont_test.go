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

package testfont

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyph"
)

func TestTrueType(t *testing.T) {
	gidA := GlyphFor('A')
	if gidA == 0 {
		t.Fatal("no glyph for 'A'")
	}
	data := TrueType(cmap.Table{
		{PlatformID: 3, EncodingID: 10}: Format12(map[rune]glyph.ID{0x1F600: gidA}),
	}, map[glyph.ID]string{gidA: "smiley"})

	info, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if name := info.GlyphName(gidA); name != "smiley" {
		t.Errorf("glyph %d is called %q", gidA, name)
	}
	if name := info.GlyphName(0); name != ".notdef" {
		t.Errorf("glyph 0 is called %q", name)
	}

	subtable, err := info.CMapTable.Get(cmap.Key{PlatformID: 3, EncodingID: 10})
	if err != nil {
		t.Fatal(err)
	}
	if gid := subtable.Lookup(0x1F600); gid != gidA {
		t.Errorf("U+1F600 maps to glyph %d, want %d", gid, gidA)
	}
	if gid := subtable.Lookup('A'); gid != 0 {
		t.Errorf("'A' maps to glyph %d, want 0", gid)
	}
}

func TestFormat12(t *testing.T) {
	m := map[rune]glyph.ID{
		'A':      1,
		0x1F600:  2,
		0x10FFFF: 3,
	}
	key := cmap.Key{PlatformID: 3, EncodingID: 10}
	subtable, err := cmap.Table{key: Format12(m)}.Get(key)
	if err != nil {
		t.Fatal(err)
	}
	got := make(map[rune]glyph.ID)
	for r := range m {
		got[r] = subtable.Lookup(r)
	}
	if d := cmp.Diff(m, got); d != "" {
		t.Errorf("wrong lookups (-want +got):\n%s", d)
	}
	low, high := subtable.CodeRange()
	if low != 'A' || high != 0x10FFFF {
		t.Errorf("code range is %04X-%04X", low, high)
	}
}

func TestCFF(t *testing.T) {
	names := []string{"A", "B", "smiley"}
	data := CFF(names, cmap.Table{
		{PlatformID: 3, EncodingID: 1}: Format4(map[uint16]glyph.ID{'A': 1, 'B': 2}),
	})

	info, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if !info.IsCFF() {
		t.Error("font does not have CFF outlines")
	}
	if info.NumGlyphs() != len(names)+1 {
		t.Errorf("font has %d glyphs, want %d", info.NumGlyphs(), len(names)+1)
	}
	for i, name := range names {
		gid := glyph.ID(i + 1)
		if got := info.GlyphName(gid); got != name {
			t.Errorf("glyph %d is called %q, want %q", gid, got, name)
		}
	}

	subtable, err := info.CMapTable.GetBest()
	if err != nil {
		t.Fatal(err)
	}
	if gid := subtable.Lookup('B'); gid != 2 {
		t.Errorf("'B' maps to glyph %d, want 2", gid)
	}
}
