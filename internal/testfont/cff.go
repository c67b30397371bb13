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
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/postscript/type1"

	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/cff"
	"seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyph"
	"seehuhn.de/go/sfnt/os2"
)

// Metrics of the CFF test font, in design units (1000 units per em).
const (
	Ascent    = 800
	Descent   = -200
	LineGap   = 200
	BoxWidth  = 600
	BoxLeft   = 100
	BoxRight  = 500
	BoxBottom = 0
	BoxTop    = 700
)

// CFF returns an OpenType font file with CFF outlines.
//
// The font has a ".notdef" glyph, followed by one glyph for each of the
// given names.  Glyph i+1 is called names[i] and is drawn as a filled
// box.  The "cmap" table of the font is set to cmaps.
func CFF(names []string, cmaps cmap.Table) []byte {
	fontMatrix := matrix.Matrix{0.001, 0, 0, 0.001, 0, 0}

	glyphs := make([]*cff.Glyph, 0, len(names)+1)
	glyphs = append(glyphs, &cff.Glyph{Name: ".notdef", Width: BoxWidth})
	for _, name := range names {
		g := cff.NewGlyph(name, BoxWidth)
		g.MoveTo(BoxLeft, BoxBottom)
		g.LineTo(BoxRight, BoxBottom)
		g.LineTo(BoxRight, BoxTop)
		g.LineTo(BoxLeft, BoxTop)
		glyphs = append(glyphs, g)
	}

	encoding := make([]glyph.ID, 256)
	for i := range glyphs {
		if i < len(encoding) {
			encoding[i] = glyph.ID(i)
		}
	}

	outlines := &cff.Outlines{
		Glyphs: glyphs,
		Private: []*type1.PrivateDict{
			{
				BlueValues: []funit.Int16{-10, 0, BoxTop, BoxTop + 10},
				BlueScale:  0.039625,
				BlueShift:  7,
				BlueFuzz:   1,
				StdHW:      50,
				StdVW:      50,
			},
		},
		FDSelect: func(glyph.ID) int { return 0 },
		Encoding: encoding,
	}

	info := &sfnt.Font{
		FamilyName:         "GlyphMapTest",
		Ascent:             Ascent,
		Descent:            Descent,
		LineGap:            LineGap,
		UnderlinePosition:  -100,
		UnderlineThickness: 50,
		CapHeight:          BoxTop,
		XHeight:            500,
		Outlines:           outlines,
		Width:              os2.WidthNormal,
		Weight:             os2.WeightNormal,
		IsRegular:          true,
		PermUse:            os2.PermInstall,
		UnitsPerEm:         1000,
		FontMatrix:         fontMatrix,
		CMapTable:          cmaps,
	}
	return encode(info)
}
