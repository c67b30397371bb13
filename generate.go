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
	"os"

	"seehuhn.de/go/glyphmap/sheet"
)

// Options control the generation of a glyph map.
// A nil *Options is equivalent to the zero value, which selects the
// defaults given below.
type Options struct {
	// FontSize is the size of the glyphs in CSS pixels.
	// The default is 24.
	FontSize int

	// FontFamily is the CSS font family name of the embedded font.
	// The default is "GlyphMap".
	FontFamily string

	// Title is the HTML page title.  The default is "Glyph Map".
	Title string

	// FontFormat is the CSS font format of the font data, either
	// "truetype" or "opentype".  The default is "truetype".
	FontFormat string

	// Minify, if set, removes redundant white space from the output.
	Minify bool
}

// Default values for the fields in [Options].
const (
	DefaultFontSize   = 24
	DefaultFontFamily = "GlyphMap"
	DefaultTitle      = "Glyph Map"
)

func (opt *Options) withDefaults() *Options {
	res := &Options{}
	if opt != nil {
		*res = *opt
	}
	if res.FontSize <= 0 {
		res.FontSize = DefaultFontSize
	}
	if res.FontFamily == "" {
		res.FontFamily = DefaultFontFamily
	}
	if res.Title == "" {
		res.Title = DefaultTitle
	}
	return res
}

// Document is a rendered glyph map.
type Document struct {
	HTML []byte

	// Selection is the character map the page was built from.
	Selection *Selection

	// Tiles is the number of characters shown on the page.
	Tiles int
}

// WriteFile writes the document to the named file.
// An existing file is overwritten.
func (doc *Document) WriteFile(fname string) error {
	err := os.WriteFile(fname, doc.HTML, 0o644)
	if err != nil {
		return &GenerationError{Stage: StageWrite, Path: fname, Err: err}
	}
	return nil
}

// Build renders the glyph map for a font.  The character map is taken from
// src, and fontData is embedded into the page.
//
// Build does not perform any I/O.  Equal inputs give byte-identical output.
func Build(src CMapSource, fontData []byte, opt *Options) (*Document, error) {
	opt = opt.withDefaults()

	sel, err := SelectCMap(src)
	if err != nil {
		return nil, &GenerationError{Stage: StageSelect, Err: err}
	}

	codes := Codepoints(sel.Mapping)
	tiles := make([]sheet.Tile, len(codes))
	for i, cp := range codes {
		tiles[i] = sheet.Tile{
			Codepoint: cp,
			Label:     Label(sel.Mapping, cp),
		}
	}

	page := &sheet.Sheet{
		Title:      opt.Title,
		FontFamily: opt.FontFamily,
		FontFormat: opt.FontFormat,
		FontData:   fontData,
		FontSize:   opt.FontSize,
		Tiles:      tiles,
	}
	var body []byte
	if opt.Minify {
		body, err = page.MinifiedBytes()
	} else {
		body, err = page.Bytes()
	}
	if err != nil {
		return nil, &GenerationError{Stage: StageRender, Err: err}
	}

	doc := &Document{
		HTML:      body,
		Selection: sel,
		Tiles:     len(tiles),
	}
	return doc, nil
}
