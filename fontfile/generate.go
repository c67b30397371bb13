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

package fontfile

import (
	"os"

	"seehuhn.de/go/glyphmap"
)

// Load reads and parses a font file.
// It returns the parsed font together with the unmodified file contents.
func Load(fontPath string) (*Font, []byte, error) {
	data, err := os.ReadFile(fontPath)
	if err != nil {
		return nil, nil, &glyphmap.GenerationError{Stage: glyphmap.StageLoad, Path: fontPath, Err: err}
	}
	font, err := Read(data)
	if err != nil {
		return nil, nil, &glyphmap.GenerationError{Stage: glyphmap.StageLoad, Path: fontPath, Err: err}
	}
	return font, data, nil
}

// Build renders the glyph map for an already loaded font.
// If opt does not specify a font format, the format is taken from the font.
func Build(font *Font, data []byte, opt *glyphmap.Options) (*glyphmap.Document, error) {
	o := &glyphmap.Options{}
	if opt != nil {
		*o = *opt
	}
	if o.FontFormat == "" {
		o.FontFormat = font.Format()
	}
	return glyphmap.Build(font, data, o)
}

// Generate reads the font file fontPath, renders its glyph map and writes
// the result to outputPath.  If an error occurs, outputPath is not
// touched.
func Generate(fontPath, outputPath string, opt *glyphmap.Options) (*glyphmap.Document, error) {
	font, data, err := Load(fontPath)
	if err != nil {
		return nil, err
	}

	doc, err := Build(font, data, opt)
	if err != nil {
		if genErr, ok := err.(*glyphmap.GenerationError); ok && genErr.Path == "" {
			genErr.Path = fontPath
		}
		return nil, err
	}

	err = doc.WriteFile(outputPath)
	if err != nil {
		return nil, err
	}
	return doc, nil
}
