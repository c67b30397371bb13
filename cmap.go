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
	"errors"
	"fmt"
)

// SubtableInfo identifies one subtable of a font's "cmap" table.
type SubtableInfo struct {
	Format     uint16
	PlatformID uint16 // Platform ID.
	EncodingID uint16 // Platform-specific encoding ID.
	Language   uint16
}

func (info SubtableInfo) String() string {
	return fmt.Sprintf("format %d, platform %d, encoding %d",
		info.Format, info.PlatformID, info.EncodingID)
}

// Mapping maps codepoints to glyph names.
//
// A codepoint which is present with an empty name is mapped to a glyph
// which has no name.
type Mapping map[rune]string

// CMapSource gives access to the character maps of a font.
type CMapSource interface {
	// Subtables lists all subtables of the font's "cmap" table.
	Subtables() []SubtableInfo

	// Mapping decodes the given subtable.
	Mapping(info SubtableInfo) (Mapping, error)

	// BestMapping returns the mapping which the font library considers
	// the most useful one.  This is used when none of the preferred
	// subtables is present.
	BestMapping() (Mapping, error)
}

// Selection is the outcome of SelectCMap.
type Selection struct {
	Mapping Mapping

	// Subtable describes the subtable the mapping was read from.
	// If Fallback is set, this is the zero value.
	Subtable SubtableInfo
	Fallback bool
}

func (sel *Selection) String() string {
	if sel.Fallback {
		return "best guess cmap"
	}
	return sel.Subtable.String()
}

// ErrNoCMap indicates that a font has no usable character map.
var ErrNoCMap = errors.New("glyphmap: no usable cmap subtable")

// preferredEncodings lists the (platform ID, encoding ID) pairs of the
// subtables which are considered for the main selection.
var preferredEncodings = []struct {
	PlatformID uint16
	EncodingID uint16
}{
	{3, 10}, // Windows, full Unicode
	{0, 4},  // Unicode 2.0, full repertoire
	{0, 6},  // Unicode full repertoire, format 13 style
	{0, 3},  // Unicode 2.0, BMP only
	{3, 1},  // Windows, BMP
}

// preferredFormats lists the subtable formats in order of preference.
// Format 12 covers all of Unicode, format 4 only covers the BMP.
var preferredFormats = []uint16{12, 4}

// SelectCMap chooses the character map used for a glyph map.
//
// Format 12 subtables are preferred over format 4 subtables, and only
// subtables with one of the preferred platform/encoding combinations are
// considered.  If no such subtable can be decoded, the choice is left to
// src.BestMapping.  If this fails too, or gives an empty mapping, the
// returned error wraps [ErrNoCMap].
func SelectCMap(src CMapSource) (*Selection, error) {
	subtables := src.Subtables()
	for _, format := range preferredFormats {
		for _, enc := range preferredEncodings {
			for _, info := range subtables {
				if info.Format != format ||
					info.PlatformID != enc.PlatformID ||
					info.EncodingID != enc.EncodingID {
					continue
				}
				m, err := src.Mapping(info)
				if err != nil {
					continue
				}
				return &Selection{Mapping: m, Subtable: info}, nil
			}
		}
	}

	m, err := src.BestMapping()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoCMap, err)
	}
	if len(m) == 0 {
		return nil, ErrNoCMap
	}
	return &Selection{Mapping: m, Fallback: true}, nil
}
