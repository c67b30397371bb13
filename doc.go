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

// Package glyphmap builds glyph maps for fonts.
//
// A glyph map is a standalone HTML page which shows every character of a
// font on a tile.  Hovering over a tile shows the name of the glyph, and
// clicking on a tile copies the character to the clipboard.
//
// Generating a glyph map takes the following steps:
//
//  1. [SelectCMap] chooses one subtable from the font's "cmap" table.
//     Format 12 subtables are preferred over format 4 subtables, and
//     only Unicode subtables are considered.  If there are no such
//     subtables, the font library makes the choice.
//  2. [Codepoints] lists the characters to show, in increasing order.
//  3. [Label] gives the tool tip for each tile.
//  4. The page is assembled by package [seehuhn.de/go/glyphmap/sheet].
//
// [Build] combines these steps.  Fonts are accessed through the
// [CMapSource] interface; package [seehuhn.de/go/glyphmap/fontfile]
// implements this interface for TrueType and OpenType files and provides
// a function to convert a font file into a glyph map file.
package glyphmap
